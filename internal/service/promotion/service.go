package promotion

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/eventosya/marketplace-api/internal/model"
	"github.com/eventosya/marketplace-api/internal/repository"
	"github.com/eventosya/marketplace-api/pkg/apperror"
)

type PromotionServicer interface {
	ListActive(ctx context.Context) ([]*model.Promotion, error)
	ListByService(ctx context.Context, serviceID int64) ([]*model.Promotion, error)
	ListByProvider(ctx context.Context, providerID int64) ([]*model.Promotion, error)
	Create(ctx context.Context, promotion *model.Promotion) (*model.Promotion, error)
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo        repository.PromotionRepository
	serviceRepo repository.ServiceRepository
	now         func() time.Time
}

func NewService(repo repository.PromotionRepository, serviceRepo repository.ServiceRepository) *Service {
	return &Service{repo: repo, serviceRepo: serviceRepo, now: time.Now}
}

// ListActive returns only promotions whose validity window contains now.
func (s *Service) ListActive(ctx context.Context) ([]*model.Promotion, error) {
	promotions, err := s.repo.ListActive(ctx, s.now())
	if err != nil {
		return nil, apperror.Internal("failed to fetch promotions", err)
	}
	return promotions, nil
}

func (s *Service) ListByService(ctx context.Context, serviceID int64) ([]*model.Promotion, error) {
	promotions, err := s.repo.ListByService(ctx, serviceID)
	if err != nil {
		return nil, apperror.Internal("failed to fetch promotions", err)
	}
	return promotions, nil
}

func (s *Service) ListByProvider(ctx context.Context, providerID int64) ([]*model.Promotion, error) {
	promotions, err := s.repo.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, apperror.Internal("failed to fetch promotions", err)
	}
	return promotions, nil
}

func (s *Service) Create(ctx context.Context, promotion *model.Promotion) (*model.Promotion, error) {
	service, err := s.serviceRepo.Get(ctx, promotion.ServiceID)
	if err != nil {
		return nil, apperror.Internal("failed to create promotion", err)
	}
	if service == nil {
		return nil, apperror.BadRequest("service not found")
	}
	if promotion.ValidUntil.Before(promotion.ValidFrom) {
		return nil, apperror.BadRequest("validUntil must not precede validFrom")
	}

	if err := s.repo.Create(ctx, promotion); err != nil {
		return nil, apperror.Internal("failed to create promotion", err)
	}
	return promotion, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NotFound("promotion")
		}
		return apperror.Internal("failed to delete promotion", err)
	}
	return nil
}
