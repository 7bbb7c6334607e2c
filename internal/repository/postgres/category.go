package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eventosya/marketplace-api/internal/model"
	"github.com/eventosya/marketplace-api/internal/repository"
)

type categoryRepository struct {
	BaseRepository
}

func NewCategoryRepository(base BaseRepository) repository.CategoryRepository {
	return &categoryRepository{base}
}

func (r *categoryRepository) List(ctx context.Context) ([]*model.Category, error) {
	query := `
		SELECT id, name, description, icon, image_url
		FROM categories
		ORDER BY name
	`
	categories := []*model.Category{}
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) Get(ctx context.Context, id int64) (*model.Category, error) {
	query := `
		SELECT id, name, description, icon, image_url
		FROM categories
		WHERE id = $1
	`
	var category model.Category
	err := r.db.GetContext(ctx, &category, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}
