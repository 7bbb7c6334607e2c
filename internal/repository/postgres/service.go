package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/eventosya/marketplace-api/internal/model"
	"github.com/eventosya/marketplace-api/internal/repository"
)

type serviceRepository struct {
	BaseRepository
}

func NewServiceRepository(base BaseRepository) repository.ServiceRepository {
	return &serviceRepository{base}
}

const serviceColumns = `
	s.id, s.provider_id, s.category_id, s.title, s.description, s.price,
	s.price_type, s.min_capacity, s.max_capacity, s.image_url, s.featured,
	s.active, s.created_at
`

func (r *serviceRepository) Get(ctx context.Context, id int64) (*model.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services s WHERE s.id = $1`

	var service model.Service
	err := r.db.GetContext(ctx, &service, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return &service, nil
}

func (r *serviceRepository) ListByProvider(ctx context.Context, providerID int64) ([]*model.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services s WHERE s.provider_id = $1 ORDER BY s.created_at DESC`

	services := []*model.Service{}
	if err := r.db.SelectContext(ctx, &services, query, providerID); err != nil {
		return nil, fmt.Errorf("failed to list services by provider: %w", err)
	}
	return services, nil
}

func (r *serviceRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*model.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services s WHERE s.category_id = $1 ORDER BY s.created_at DESC`

	services := []*model.Service{}
	if err := r.db.SelectContext(ctx, &services, query, categoryID); err != nil {
		return nil, fmt.Errorf("failed to list services by category: %w", err)
	}
	return services, nil
}

func (r *serviceRepository) ListFeatured(ctx context.Context) ([]*model.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services s WHERE s.featured = TRUE ORDER BY s.created_at DESC`

	services := []*model.Service{}
	if err := r.db.SelectContext(ctx, &services, query); err != nil {
		return nil, fmt.Errorf("failed to list featured services: %w", err)
	}
	return services, nil
}

// buildSearchQuery composes the conjunctive WHERE clause and sort order for the
// search endpoint. Absent filter fields add no predicate. The location filter
// matches the owning provider's location, which costs a join.
func buildSearchQuery(filters *model.SearchFilters) (string, []interface{}) {
	var (
		sb   strings.Builder
		args []interface{}
	)

	sb.WriteString(`SELECT ` + serviceColumns + ` FROM services s`)
	if filters.Location != "" {
		sb.WriteString(` JOIN providers p ON p.id = s.provider_id`)
	}

	var conds []string
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filters.Query != "" {
		conds = append(conds, fmt.Sprintf("s.title LIKE %s", arg("%"+filters.Query+"%")))
	}
	if filters.Location != "" {
		conds = append(conds, fmt.Sprintf("p.location ILIKE %s", arg("%"+filters.Location+"%")))
	}
	if filters.CategoryID != nil {
		conds = append(conds, fmt.Sprintf("s.category_id = %s", arg(*filters.CategoryID)))
	}
	if filters.MinPrice != nil {
		conds = append(conds, fmt.Sprintf("s.price >= %s", arg(*filters.MinPrice)))
	}
	if filters.MaxPrice != nil {
		conds = append(conds, fmt.Sprintf("s.price <= %s", arg(*filters.MaxPrice)))
	}

	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	switch filters.SortBy {
	case model.SortPriceAsc:
		sb.WriteString(" ORDER BY s.price ASC")
	case model.SortPriceDesc:
		sb.WriteString(" ORDER BY s.price DESC")
	default:
		sb.WriteString(" ORDER BY s.created_at DESC")
	}

	return sb.String(), args
}

func (r *serviceRepository) Search(ctx context.Context, filters *model.SearchFilters) ([]*model.Service, error) {
	query, args := buildSearchQuery(filters)

	services := []*model.Service{}
	if err := r.db.SelectContext(ctx, &services, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search services: %w", err)
	}
	return services, nil
}

func (r *serviceRepository) Create(ctx context.Context, service *model.Service) error {
	service.CreatedAt = time.Now()
	return insertService(ctx, r.db, service)
}

func (r *serviceRepository) Update(ctx context.Context, service *model.Service) error {
	query := `
		UPDATE services
		SET title = $1, description = $2, price = $3, price_type = $4,
		    min_capacity = $5, max_capacity = $6, image_url = $7,
		    featured = $8, active = $9
		WHERE id = $10
	`
	result, err := r.db.ExecContext(ctx, query,
		service.Title,
		service.Description,
		service.Price,
		service.PriceType,
		service.MinCapacity,
		service.MaxCapacity,
		service.ImageURL,
		service.Featured,
		service.Active,
		service.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
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

// insertService is shared with the provider registration transaction.
func insertService(ctx context.Context, q sqlx.ExtContext, service *model.Service) error {
	query := `
		INSERT INTO services (
			provider_id, category_id, title, description, price, price_type,
			min_capacity, max_capacity, image_url, featured, active, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		RETURNING id
	`
	err := q.QueryRowxContext(ctx, query,
		service.ProviderID,
		service.CategoryID,
		service.Title,
		service.Description,
		service.Price,
		service.PriceType,
		service.MinCapacity,
		service.MaxCapacity,
		service.ImageURL,
		service.Featured,
		service.Active,
		service.CreatedAt,
	).Scan(&service.ID)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}
