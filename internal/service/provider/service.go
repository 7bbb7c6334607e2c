package provider

import (
	"context"

	"github.com/eventosya/marketplace-api/internal/model"
	"github.com/eventosya/marketplace-api/internal/repository"
	"github.com/eventosya/marketplace-api/pkg/apperror"
)

type ProviderServicer interface {
	Get(ctx context.Context, id int64) (*model.ProviderWithServices, error)
	Register(ctx context.Context, reg *model.ProviderRegistration) (*model.Provider, error)
	Update(ctx context.Context, provider *model.Provider) (*model.Provider, error)
}

type Service struct {
	repo         repository.ProviderRepository
	userRepo     repository.UserRepository
	serviceRepo  repository.ServiceRepository
	categoryRepo repository.CategoryRepository
}

func NewService(
	repo repository.ProviderRepository,
	userRepo repository.UserRepository,
	serviceRepo repository.ServiceRepository,
	categoryRepo repository.CategoryRepository,
) *Service {
	return &Service{
		repo:         repo,
		userRepo:     userRepo,
		serviceRepo:  serviceRepo,
		categoryRepo: categoryRepo,
	}
}

// Get returns the provider with its services, each joined with its category.
func (s *Service) Get(ctx context.Context, id int64) (*model.ProviderWithServices, error) {
	provider, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperror.Internal("failed to get provider", err)
	}
	if provider == nil {
		return nil, apperror.NotFound("provider")
	}

	services, err := s.serviceRepo.ListByProvider(ctx, id)
	if err != nil {
		return nil, apperror.Internal("failed to get provider services", err)
	}

	categories := map[int64]*model.Category{}
	enriched := make([]*model.ServiceWithCategory, 0, len(services))
	for _, svc := range services {
		category, ok := categories[svc.CategoryID]
		if !ok {
			category, err = s.categoryRepo.Get(ctx, svc.CategoryID)
			if err != nil {
				return nil, apperror.Internal("failed to get provider services", err)
			}
			categories[svc.CategoryID] = category
		}
		enriched = append(enriched, &model.ServiceWithCategory{Service: *svc, Category: category})
	}

	return &model.ProviderWithServices{Provider: *provider, Services: enriched}, nil
}

// Register creates the provider, and the optional initial service, in one
// transaction. The user must already exist and must not own a provider.
func (s *Service) Register(ctx context.Context, reg *model.ProviderRegistration) (*model.Provider, error) {
	user, err := s.userRepo.Get(ctx, reg.Provider.UserID)
	if err != nil {
		return nil, apperror.Internal("failed to register provider", err)
	}
	if user == nil {
		return nil, apperror.BadRequest("user not found")
	}

	existing, err := s.repo.GetByUserID(ctx, reg.Provider.UserID)
	if err != nil {
		return nil, apperror.Internal("failed to register provider", err)
	}
	if existing != nil {
		return nil, apperror.BadRequest("provider already exists for this user")
	}

	if reg.InitialService != nil {
		category, err := s.categoryRepo.Get(ctx, reg.InitialService.CategoryID)
		if err != nil {
			return nil, apperror.Internal("failed to register provider", err)
		}
		if category == nil {
			return nil, apperror.BadRequest("category not found")
		}
	}

	if err := s.repo.Register(ctx, reg); err != nil {
		return nil, apperror.Internal("failed to register provider", err)
	}
	return reg.Provider, nil
}

func (s *Service) Update(ctx context.Context, provider *model.Provider) (*model.Provider, error) {
	existing, err := s.repo.Get(ctx, provider.ID)
	if err != nil {
		return nil, apperror.Internal("failed to update provider", err)
	}
	if existing == nil {
		return nil, apperror.NotFound("provider")
	}

	provider.UserID = existing.UserID
	provider.Rating = existing.Rating
	provider.ReviewCount = existing.ReviewCount
	provider.Verified = existing.Verified
	provider.CreatedAt = existing.CreatedAt
	if provider.SubscriptionPlan == "" {
		provider.SubscriptionPlan = existing.SubscriptionPlan
	}
	if err := s.repo.Update(ctx, provider); err != nil {
		return nil, apperror.Internal("failed to update provider", err)
	}
	return provider, nil
}
