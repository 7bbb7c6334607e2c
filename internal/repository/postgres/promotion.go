package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/eventosya/marketplace-api/internal/model"
	"github.com/eventosya/marketplace-api/internal/repository"
)

type promotionRepository struct {
	BaseRepository
}

func NewPromotionRepository(base BaseRepository) repository.PromotionRepository {
	return &promotionRepository{base}
}

const promotionColumns = `
	id, service_id, title, description, discount_percentage, original_price,
	promotional_price, valid_from, valid_until, active, created_at
`

func (r *promotionRepository) ListActive(ctx context.Context, now time.Time) ([]*model.Promotion, error) {
	query := `
		SELECT ` + promotionColumns + `
		FROM promotions
		WHERE active = TRUE AND valid_from <= $1 AND valid_until >= $1
		ORDER BY created_at DESC
	`
	promotions := []*model.Promotion{}
	if err := r.db.SelectContext(ctx, &promotions, query, now); err != nil {
		return nil, fmt.Errorf("failed to list active promotions: %w", err)
	}
	return promotions, nil
}

func (r *promotionRepository) ListByService(ctx context.Context, serviceID int64) ([]*model.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE service_id = $1 ORDER BY created_at DESC`

	promotions := []*model.Promotion{}
	if err := r.db.SelectContext(ctx, &promotions, query, serviceID); err != nil {
		return nil, fmt.Errorf("failed to list promotions by service: %w", err)
	}
	return promotions, nil
}

func (r *promotionRepository) ListByProvider(ctx context.Context, providerID int64) ([]*model.Promotion, error) {
	query := `
		SELECT ` + promotionColumns + `
		FROM promotions
		WHERE service_id IN (SELECT id FROM services WHERE provider_id = $1)
		ORDER BY created_at DESC
	`
	promotions := []*model.Promotion{}
	if err := r.db.SelectContext(ctx, &promotions, query, providerID); err != nil {
		return nil, fmt.Errorf("failed to list promotions by provider: %w", err)
	}
	return promotions, nil
}

func (r *promotionRepository) Create(ctx context.Context, promotion *model.Promotion) error {
	query := `
		INSERT INTO promotions (
			service_id, title, description, discount_percentage, original_price,
			promotional_price, valid_from, valid_until, active, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		RETURNING id
	`
	promotion.CreatedAt = time.Now()

	err := r.db.QueryRowContext(ctx, query,
		promotion.ServiceID,
		promotion.Title,
		promotion.Description,
		promotion.DiscountPercentage,
		promotion.OriginalPrice,
		promotion.PromotionalPrice,
		promotion.ValidFrom,
		promotion.ValidUntil,
		promotion.Active,
		promotion.CreatedAt,
	).Scan(&promotion.ID)
	if err != nil {
		return fmt.Errorf("failed to create promotion: %w", err)
	}
	return nil
}

func (r *promotionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete promotion: %w", err)
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
