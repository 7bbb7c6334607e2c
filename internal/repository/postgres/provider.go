package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/eventosya/marketplace-api/internal/model"
	"github.com/eventosya/marketplace-api/internal/repository"
)

type providerRepository struct {
	BaseRepository
}

func NewProviderRepository(base BaseRepository) repository.ProviderRepository {
	return &providerRepository{base}
}

const providerColumns = `
	id, user_id, business_name, description, location, phone, website,
	image_url, rating, review_count, verified, subscription_plan, created_at
`

func (r *providerRepository) Get(ctx context.Context, id int64) (*model.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM providers WHERE id = $1`

	var provider model.Provider
	err := r.db.GetContext(ctx, &provider, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}
	return &provider, nil
}

func (r *providerRepository) GetByUserID(ctx context.Context, userID int64) (*model.Provider, error) {
	query := `SELECT ` + providerColumns + ` FROM providers WHERE user_id = $1`

	var provider model.Provider
	err := r.db.GetContext(ctx, &provider, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get provider by user: %w", err)
	}
	return &provider, nil
}

func (r *providerRepository) Create(ctx context.Context, provider *model.Provider) error {
	provider.CreatedAt = time.Now()
	return r.insertProvider(ctx, r.db, provider)
}

func (r *providerRepository) Update(ctx context.Context, provider *model.Provider) error {
	query := `
		UPDATE providers
		SET business_name = $1, description = $2, location = $3, phone = $4,
		    website = $5, image_url = $6, subscription_plan = $7
		WHERE id = $8
	`
	result, err := r.db.ExecContext(ctx, query,
		provider.BusinessName,
		provider.Description,
		provider.Location,
		provider.Phone,
		provider.Website,
		provider.ImageURL,
		provider.SubscriptionPlan,
		provider.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update provider: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Register writes the provider and its optional initial service inside one
// transaction so a failed service insert cannot leave a half-registered
// provider behind.
func (r *providerRepository) Register(ctx context.Context, reg *model.ProviderRegistration) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		reg.Provider.CreatedAt = time.Now()
		if err := r.insertProvider(ctx, tx, reg.Provider); err != nil {
			return err
		}

		if reg.InitialService == nil {
			return nil
		}

		reg.InitialService.ProviderID = reg.Provider.ID
		reg.InitialService.CreatedAt = time.Now()
		return insertService(ctx, tx, reg.InitialService)
	})
}

func (r *providerRepository) insertProvider(ctx context.Context, q sqlx.ExtContext, provider *model.Provider) error {
	query := `
		INSERT INTO providers (
			user_id, business_name, description, location, phone, website,
			image_url, rating, review_count, verified, subscription_plan, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		RETURNING id
	`
	if provider.Rating == "" {
		provider.Rating = "0"
	}

	err := q.QueryRowxContext(ctx, query,
		provider.UserID,
		provider.BusinessName,
		provider.Description,
		provider.Location,
		provider.Phone,
		provider.Website,
		provider.ImageURL,
		provider.Rating,
		provider.ReviewCount,
		provider.Verified,
		provider.SubscriptionPlan,
		provider.CreatedAt,
	).Scan(&provider.ID)
	if err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}
	return nil
}
