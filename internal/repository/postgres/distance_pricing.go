package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/eventosya/marketplace-api/internal/model"
	"github.com/eventosya/marketplace-api/internal/repository"
)

type distancePricingRepository struct {
	BaseRepository
}

func NewDistancePricingRepository(base BaseRepository) repository.DistancePricingRepository {
	return &distancePricingRepository{base}
}

func (r *distancePricingRepository) ListByProvider(ctx context.Context, providerID int64) ([]*model.DistancePricing, error) {
	query := `
		SELECT id, provider_id, distance_km, price, created_at
		FROM distance_pricing
		WHERE provider_id = $1
		ORDER BY distance_km
	`
	tiers := []*model.DistancePricing{}
	if err := r.db.SelectContext(ctx, &tiers, query, providerID); err != nil {
		return nil, fmt.Errorf("failed to list distance pricing: %w", err)
	}
	return tiers, nil
}

func (r *distancePricingRepository) Get(ctx context.Context, id int64) (*model.DistancePricing, error) {
	query := `
		SELECT id, provider_id, distance_km, price, created_at
		FROM distance_pricing
		WHERE id = $1
	`
	var tier model.DistancePricing
	err := r.db.GetContext(ctx, &tier, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get distance pricing: %w", err)
	}
	return &tier, nil
}

func (r *distancePricingRepository) Create(ctx context.Context, pricing *model.DistancePricing) error {
	query := `
		INSERT INTO distance_pricing (provider_id, distance_km, price, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	pricing.CreatedAt = time.Now()

	err := r.db.QueryRowContext(ctx, query,
		pricing.ProviderID,
		pricing.DistanceKm,
		pricing.Price,
		pricing.CreatedAt,
	).Scan(&pricing.ID)
	if err != nil {
		return fmt.Errorf("failed to create distance pricing: %w", err)
	}
	return nil
}

func (r *distancePricingRepository) Update(ctx context.Context, pricing *model.DistancePricing) error {
	query := `
		UPDATE distance_pricing
		SET distance_km = $1, price = $2
		WHERE id = $3
	`
	result, err := r.db.ExecContext(ctx, query, pricing.DistanceKm, pricing.Price, pricing.ID)
	if err != nil {
		return fmt.Errorf("failed to update distance pricing: %w", err)
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

func (r *distancePricingRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM distance_pricing WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete distance pricing: %w", err)
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
