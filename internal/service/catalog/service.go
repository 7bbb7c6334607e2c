package catalog

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/eventosya/marketplace-api/internal/model"
	"github.com/eventosya/marketplace-api/internal/repository"
	"github.com/eventosya/marketplace-api/pkg/apperror"
)

const (
	cacheKeyCategories = "categories"
	cacheKeyFeatured   = "featured_services"
)

type CatalogServicer interface {
	ListCategories(ctx context.Context) ([]*model.Category, error)
	ListServicesByCategory(ctx context.Context, categoryID int64) ([]*model.ServiceWithProvider, error)
	ListFeatured(ctx context.Context) ([]*model.ServiceWithProvider, error)
	Search(ctx context.Context, filters *model.SearchFilters) ([]*model.ServiceWithProvider, error)
	GetService(ctx context.Context, id int64) (*model.ServiceWithProvider, error)
	CreateService(ctx context.Context, service *model.Service) (*model.Service, error)
	UpdateService(ctx context.Context, service *model.Service) (*model.Service, error)
	CreateReview(ctx context.Context, review *model.Review) (*model.Review, error)
}

type Service struct {
	serviceRepo  repository.ServiceRepository
	categoryRepo repository.CategoryRepository
	providerRepo repository.ProviderRepository
	reviewRepo   repository.ReviewRepository
	cache        *gocache.Cache
}

func NewService(
	serviceRepo repository.ServiceRepository,
	categoryRepo repository.CategoryRepository,
	providerRepo repository.ProviderRepository,
	reviewRepo repository.ReviewRepository,
	cacheTTL time.Duration,
) *Service {
	return &Service{
		serviceRepo:  serviceRepo,
		categoryRepo: categoryRepo,
		providerRepo: providerRepo,
		reviewRepo:   reviewRepo,
		cache:        gocache.New(cacheTTL, 2*cacheTTL),
	}
}

func (s *Service) ListCategories(ctx context.Context) ([]*model.Category, error) {
	if cached, ok := s.cache.Get(cacheKeyCategories); ok {
		return cached.([]*model.Category), nil
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal("failed to fetch categories", err)
	}

	s.cache.SetDefault(cacheKeyCategories, categories)
	return categories, nil
}

func (s *Service) ListServicesByCategory(ctx context.Context, categoryID int64) ([]*model.ServiceWithProvider, error) {
	services, err := s.serviceRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, apperror.Internal("failed to fetch services by category", err)
	}
	return s.enrich(ctx, services)
}

func (s *Service) ListFeatured(ctx context.Context) ([]*model.ServiceWithProvider, error) {
	if cached, ok := s.cache.Get(cacheKeyFeatured); ok {
		return cached.([]*model.ServiceWithProvider), nil
	}

	services, err := s.serviceRepo.ListFeatured(ctx)
	if err != nil {
		return nil, apperror.Internal("failed to fetch featured services", err)
	}

	enriched, err := s.enrich(ctx, services)
	if err != nil {
		return nil, err
	}

	s.cache.SetDefault(cacheKeyFeatured, enriched)
	return enriched, nil
}

func (s *Service) Search(ctx context.Context, filters *model.SearchFilters) ([]*model.ServiceWithProvider, error) {
	services, err := s.serviceRepo.Search(ctx, filters)
	if err != nil {
		return nil, apperror.Internal("failed to search services", err)
	}
	return s.enrich(ctx, services)
}

// GetService returns the service joined with its provider, category and reviews.
func (s *Service) GetService(ctx context.Context, id int64) (*model.ServiceWithProvider, error) {
	service, err := s.serviceRepo.Get(ctx, id)
	if err != nil {
		return nil, apperror.Internal("failed to fetch service", err)
	}
	if service == nil {
		return nil, apperror.NotFound("service")
	}

	provider, err := s.providerRepo.Get(ctx, service.ProviderID)
	if err != nil {
		return nil, apperror.Internal("failed to fetch service", err)
	}
	category, err := s.categoryRepo.Get(ctx, service.CategoryID)
	if err != nil {
		return nil, apperror.Internal("failed to fetch service", err)
	}
	reviews, err := s.reviewRepo.ListByService(ctx, id)
	if err != nil {
		return nil, apperror.Internal("failed to fetch service", err)
	}

	return &model.ServiceWithProvider{
		Service:  *service,
		Provider: provider,
		Category: category,
		Reviews:  reviews,
	}, nil
}

func (s *Service) CreateService(ctx context.Context, service *model.Service) (*model.Service, error) {
	provider, err := s.providerRepo.Get(ctx, service.ProviderID)
	if err != nil {
		return nil, apperror.Internal("failed to create service", err)
	}
	if provider == nil {
		return nil, apperror.BadRequest("provider not found")
	}

	category, err := s.categoryRepo.Get(ctx, service.CategoryID)
	if err != nil {
		return nil, apperror.Internal("failed to create service", err)
	}
	if category == nil {
		return nil, apperror.BadRequest("category not found")
	}

	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, apperror.Internal("failed to create service", err)
	}

	// New featured services must show up promptly.
	s.cache.Delete(cacheKeyFeatured)
	return service, nil
}

func (s *Service) UpdateService(ctx context.Context, service *model.Service) (*model.Service, error) {
	existing, err := s.serviceRepo.Get(ctx, service.ID)
	if err != nil {
		return nil, apperror.Internal("failed to update service", err)
	}
	if existing == nil {
		return nil, apperror.NotFound("service")
	}

	service.ProviderID = existing.ProviderID
	service.CategoryID = existing.CategoryID
	service.CreatedAt = existing.CreatedAt
	if err := s.serviceRepo.Update(ctx, service); err != nil {
		return nil, apperror.Internal("failed to update service", err)
	}

	s.cache.Delete(cacheKeyFeatured)
	return service, nil
}

func (s *Service) CreateReview(ctx context.Context, review *model.Review) (*model.Review, error) {
	service, err := s.serviceRepo.Get(ctx, review.ServiceID)
	if err != nil {
		return nil, apperror.Internal("failed to create review", err)
	}
	if service == nil {
		return nil, apperror.BadRequest("service not found")
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, apperror.Internal("failed to create review", err)
	}
	return review, nil
}

// enrich joins each service with its provider and category. Lookups are
// memoized per call since result sets repeat both heavily.
func (s *Service) enrich(ctx context.Context, services []*model.Service) ([]*model.ServiceWithProvider, error) {
	providers := map[int64]*model.Provider{}
	categories := map[int64]*model.Category{}

	enriched := make([]*model.ServiceWithProvider, 0, len(services))
	for _, svc := range services {
		provider, ok := providers[svc.ProviderID]
		if !ok {
			var err error
			provider, err = s.providerRepo.Get(ctx, svc.ProviderID)
			if err != nil {
				return nil, apperror.Internal("failed to fetch services", err)
			}
			providers[svc.ProviderID] = provider
		}

		category, ok := categories[svc.CategoryID]
		if !ok {
			var err error
			category, err = s.categoryRepo.Get(ctx, svc.CategoryID)
			if err != nil {
				return nil, apperror.Internal("failed to fetch services", err)
			}
			categories[svc.CategoryID] = category
		}

		enriched = append(enriched, &model.ServiceWithProvider{
			Service:  *svc,
			Provider: provider,
			Category: category,
		})
	}
	return enriched, nil
}
