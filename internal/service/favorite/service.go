package favorite

import (
	"context"

	"github.com/eventosya/marketplace-api/internal/model"
	"github.com/eventosya/marketplace-api/internal/repository"
	"github.com/eventosya/marketplace-api/pkg/apperror"
)

type FavoriteServicer interface {
	Toggle(ctx context.Context, userID, serviceID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]*model.FavoriteWithService, error)
}

type Service struct {
	repo         repository.FavoriteRepository
	userRepo     repository.UserRepository
	serviceRepo  repository.ServiceRepository
	providerRepo repository.ProviderRepository
}

func NewService(
	repo repository.FavoriteRepository,
	userRepo repository.UserRepository,
	serviceRepo repository.ServiceRepository,
	providerRepo repository.ProviderRepository,
) *Service {
	return &Service{
		repo:         repo,
		userRepo:     userRepo,
		serviceRepo:  serviceRepo,
		providerRepo: providerRepo,
	}
}

// Toggle flips the favorite state and reports the resulting state.
func (s *Service) Toggle(ctx context.Context, userID, serviceID int64) (bool, error) {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return false, apperror.Internal("failed to toggle favorite", err)
	}
	if user == nil {
		return false, apperror.BadRequest("user not found")
	}

	service, err := s.serviceRepo.Get(ctx, serviceID)
	if err != nil {
		return false, apperror.Internal("failed to toggle favorite", err)
	}
	if service == nil {
		return false, apperror.BadRequest("service not found")
	}

	favorited, err := s.repo.Toggle(ctx, userID, serviceID)
	if err != nil {
		return false, apperror.Internal("failed to toggle favorite", err)
	}
	return favorited, nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]*model.FavoriteWithService, error) {
	favorites, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal("failed to fetch favorites", err)
	}

	enriched := make([]*model.FavoriteWithService, 0, len(favorites))
	for _, fav := range favorites {
		service, err := s.serviceRepo.Get(ctx, fav.ServiceID)
		if err != nil {
			return nil, apperror.Internal("failed to fetch favorites", err)
		}

		row := &model.FavoriteWithService{Favorite: *fav, Service: service}
		if service != nil {
			provider, err := s.providerRepo.Get(ctx, service.ProviderID)
			if err != nil {
				return nil, apperror.Internal("failed to fetch favorites", err)
			}
			row.Provider = provider
		}
		enriched = append(enriched, row)
	}
	return enriched, nil
}
