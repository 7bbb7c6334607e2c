package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/eventosya/marketplace-api/internal/model"
	"github.com/eventosya/marketplace-api/internal/repository"
)

type favoriteRepository struct {
	BaseRepository
}

func NewFavoriteRepository(base BaseRepository) repository.FavoriteRepository {
	return &favoriteRepository{base}
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID int64) ([]*model.Favorite, error) {
	query := `
		SELECT id, user_id, service_id, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	favorites := []*model.Favorite{}
	if err := r.db.SelectContext(ctx, &favorites, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favorites, nil
}

// Toggle removes the row when it exists, otherwise inserts it. Both steps run
// in one transaction and the insert relies on the (user_id, service_id)
// unique constraint, so two concurrent toggles cannot duplicate a favorite.
func (r *favoriteRepository) Toggle(ctx context.Context, userID, serviceID int64) (bool, error) {
	var favorited bool

	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			`DELETE FROM favorites WHERE user_id = $1 AND service_id = $2`,
			userID, serviceID,
		)
		if err != nil {
			return fmt.Errorf("failed to delete favorite: %w", err)
		}

		deleted, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if deleted > 0 {
			favorited = false
			return nil
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO favorites (user_id, service_id, created_at)
			 VALUES ($1, $2, NOW())
			 ON CONFLICT (user_id, service_id) DO NOTHING`,
			userID, serviceID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert favorite: %w", err)
		}
		favorited = true
		return nil
	})

	return favorited, err
}
