package payment

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/eventosya/marketplace-api/internal/model"
	"github.com/eventosya/marketplace-api/internal/repository"
	"github.com/eventosya/marketplace-api/pkg/apperror"
)

type PaymentServicer interface {
	ListActive(ctx context.Context) ([]*model.PaymentAlias, error)
	Create(ctx context.Context, alias *model.PaymentAlias) (*model.PaymentAlias, error)
	Update(ctx context.Context, alias *model.PaymentAlias) (*model.PaymentAlias, error)
	Delete(ctx context.Context, id int64) error
	// Resolve returns the active alias a /pay redirect should follow.
	Resolve(ctx context.Context, alias string) (*model.PaymentAlias, error)
}

type Service struct {
	repo  repository.PaymentAliasRepository
	cache *gocache.Cache
}

func NewService(repo repository.PaymentAliasRepository, cacheTTL time.Duration) *Service {
	return &Service{
		repo:  repo,
		cache: gocache.New(cacheTTL, 2*cacheTTL),
	}
}

func (s *Service) ListActive(ctx context.Context) ([]*model.PaymentAlias, error) {
	aliases, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, apperror.Internal("failed to fetch payment aliases", err)
	}
	return aliases, nil
}

func (s *Service) Create(ctx context.Context, alias *model.PaymentAlias) (*model.PaymentAlias, error) {
	alias.Alias = normalizeAlias(alias.Alias)
	if alias.Alias == "" {
		return nil, apperror.BadRequest("alias must not be empty")
	}

	existing, err := s.repo.GetByAlias(ctx, alias.Alias)
	if err != nil {
		return nil, apperror.Internal("failed to create payment alias", err)
	}
	if existing != nil {
		return nil, apperror.BadRequest("alias already exists")
	}

	if err := s.repo.Create(ctx, alias); err != nil {
		return nil, apperror.Internal("failed to create payment alias", err)
	}
	s.cache.Flush()
	return alias, nil
}

func (s *Service) Update(ctx context.Context, alias *model.PaymentAlias) (*model.PaymentAlias, error) {
	alias.Alias = normalizeAlias(alias.Alias)
	if err := s.repo.Update(ctx, alias); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("payment alias")
		}
		return nil, apperror.Internal("failed to update payment alias", err)
	}
	s.cache.Flush()
	return alias, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NotFound("payment alias")
		}
		return apperror.Internal("failed to delete payment alias", err)
	}
	s.cache.Flush()
	return nil
}

// Resolve is on the hot redirect path, so hits are served from cache.
func (s *Service) Resolve(ctx context.Context, alias string) (*model.PaymentAlias, error) {
	alias = normalizeAlias(alias)

	if cached, ok := s.cache.Get(alias); ok {
		return cached.(*model.PaymentAlias), nil
	}

	found, err := s.repo.GetByAlias(ctx, alias)
	if err != nil {
		return nil, apperror.Internal("failed to resolve payment alias", err)
	}
	if found == nil || !found.Active {
		return nil, apperror.NotFound("payment alias")
	}

	s.cache.SetDefault(alias, found)
	return found, nil
}

// Aliases match case-insensitively, so they are stored and looked up lowered.
func normalizeAlias(alias string) string {
	return strings.ToLower(strings.TrimSpace(alias))
}
