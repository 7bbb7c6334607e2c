package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/eventosya/marketplace-api/internal/model"
	"github.com/eventosya/marketplace-api/internal/repository"
	"github.com/eventosya/marketplace-api/pkg/apperror"
)

type UserServicer interface {
	Register(ctx context.Context, user *model.User, password string) (*model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
}

type Service struct {
	repo repository.UserRepository
}

func NewService(repo repository.UserRepository) *Service {
	return &Service{repo: repo}
}

// Register creates a user with a bcrypt-hashed password. Duplicate emails are
// rejected with a 400, matching the public contract.
func (s *Service) Register(ctx context.Context, user *model.User, password string) (*model.User, error) {
	existing, err := s.repo.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, apperror.Internal("failed to register user", err)
	}
	if existing != nil {
		return nil, apperror.BadRequest("user already exists with this email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal("failed to register user", err)
	}
	user.Password = string(hash)

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apperror.Internal("failed to register user", err)
	}
	return user, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperror.Internal("failed to get user", err)
	}
	if user == nil {
		return nil, apperror.NotFound("user")
	}
	return user, nil
}
