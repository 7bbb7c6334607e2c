package pricing

import (
	"context"
	"database/sql"
	"errors"

	"github.com/eventosya/marketplace-api/internal/model"
	"github.com/eventosya/marketplace-api/internal/repository"
	"github.com/eventosya/marketplace-api/pkg/apperror"
)

type PricingServicer interface {
	ListByProvider(ctx context.Context, providerID int64) ([]*model.DistancePricing, error)
	Create(ctx context.Context, pricing *model.DistancePricing) (*model.DistancePricing, error)
	Update(ctx context.Context, pricing *model.DistancePricing) (*model.DistancePricing, error)
	Delete(ctx context.Context, id int64) error
}

// Service manages per-provider distance price tiers.
type Service struct {
	repo         repository.DistancePricingRepository
	providerRepo repository.ProviderRepository
}

func NewService(repo repository.DistancePricingRepository, providerRepo repository.ProviderRepository) *Service {
	return &Service{repo: repo, providerRepo: providerRepo}
}

func (s *Service) ListByProvider(ctx context.Context, providerID int64) ([]*model.DistancePricing, error) {
	tiers, err := s.repo.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, apperror.Internal("failed to fetch distance pricing", err)
	}
	return tiers, nil
}

func (s *Service) Create(ctx context.Context, pricing *model.DistancePricing) (*model.DistancePricing, error) {
	provider, err := s.providerRepo.Get(ctx, pricing.ProviderID)
	if err != nil {
		return nil, apperror.Internal("failed to create distance pricing", err)
	}
	if provider == nil {
		return nil, apperror.BadRequest("provider not found")
	}
	if pricing.DistanceKm < 0 {
		return nil, apperror.BadRequest("distanceKm must not be negative")
	}

	if err := s.repo.Create(ctx, pricing); err != nil {
		return nil, apperror.Internal("failed to create distance pricing", err)
	}
	return pricing, nil
}

func (s *Service) Update(ctx context.Context, pricing *model.DistancePricing) (*model.DistancePricing, error) {
	existing, err := s.repo.Get(ctx, pricing.ID)
	if err != nil {
		return nil, apperror.Internal("failed to update distance pricing", err)
	}
	if existing == nil {
		return nil, apperror.NotFound("distance pricing")
	}

	pricing.ProviderID = existing.ProviderID
	pricing.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, pricing); err != nil {
		return nil, apperror.Internal("failed to update distance pricing", err)
	}
	return pricing, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NotFound("distance pricing")
		}
		return apperror.Internal("failed to delete distance pricing", err)
	}
	return nil
}
