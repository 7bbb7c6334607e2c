package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/eventosya/marketplace-api/internal/model"
	"github.com/eventosya/marketplace-api/internal/repository"
)

type reviewRepository struct {
	BaseRepository
}

func NewReviewRepository(base BaseRepository) repository.ReviewRepository {
	return &reviewRepository{base}
}

func (r *reviewRepository) ListByService(ctx context.Context, serviceID int64) ([]*model.Review, error) {
	query := `
		SELECT id, service_id, user_id, rating, comment, created_at
		FROM reviews
		WHERE service_id = $1
		ORDER BY created_at DESC
	`
	reviews := []*model.Review{}
	if err := r.db.SelectContext(ctx, &reviews, query, serviceID); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (service_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	review.CreatedAt = time.Now()

	err := r.db.QueryRowContext(ctx, query,
		review.ServiceID,
		review.UserID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	).Scan(&review.ID)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}
