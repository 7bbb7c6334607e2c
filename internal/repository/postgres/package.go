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

type packageRepository struct {
	BaseRepository
}

func NewPackageRepository(base BaseRepository) repository.PackageRepository {
	return &packageRepository{base}
}

const packageColumns = `
	id, provider_id, name, description, base_price, price_type, image_url, active, created_at
`

func (r *packageRepository) ListByProvider(ctx context.Context, providerID int64) ([]*model.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE provider_id = $1 ORDER BY created_at DESC`

	packages := []*model.Package{}
	if err := r.db.SelectContext(ctx, &packages, query, providerID); err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	return packages, nil
}

func (r *packageRepository) Get(ctx context.Context, id int64) (*model.Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = $1`

	var pkg model.Package
	err := r.db.GetContext(ctx, &pkg, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	return &pkg, nil
}

func (r *packageRepository) Create(ctx context.Context, pkg *model.Package) error {
	query := `
		INSERT INTO packages (
			provider_id, name, description, base_price, price_type, image_url, active, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		RETURNING id
	`
	pkg.CreatedAt = time.Now()

	err := r.db.QueryRowContext(ctx, query,
		pkg.ProviderID,
		pkg.Name,
		pkg.Description,
		pkg.BasePrice,
		pkg.PriceType,
		pkg.ImageURL,
		pkg.Active,
		pkg.CreatedAt,
	).Scan(&pkg.ID)
	if err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	return nil
}

func (r *packageRepository) Update(ctx context.Context, pkg *model.Package) error {
	query := `
		UPDATE packages
		SET name = $1, description = $2, base_price = $3, price_type = $4,
		    image_url = $5, active = $6
		WHERE id = $7
	`
	result, err := r.db.ExecContext(ctx, query,
		pkg.Name,
		pkg.Description,
		pkg.BasePrice,
		pkg.PriceType,
		pkg.ImageURL,
		pkg.Active,
		pkg.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update package: %w", err)
	}
	return requireRow(result)
}

func (r *packageRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM packages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete package: %w", err)
	}
	return requireRow(result)
}

func (r *packageRepository) ListServices(ctx context.Context, packageID int64) ([]*model.PackageService, error) {
	query := `
		SELECT id, package_id, service_id, included, additional_price, created_at
		FROM package_services
		WHERE package_id = $1
		ORDER BY id
	`
	rows := []*model.PackageService{}
	if err := r.db.SelectContext(ctx, &rows, query, packageID); err != nil {
		return nil, fmt.Errorf("failed to list package services: %w", err)
	}
	return rows, nil
}

func (r *packageRepository) GetService(ctx context.Context, id int64) (*model.PackageService, error) {
	query := `
		SELECT id, package_id, service_id, included, additional_price, created_at
		FROM package_services
		WHERE id = $1
	`
	var ps model.PackageService
	err := r.db.GetContext(ctx, &ps, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get package service: %w", err)
	}
	return &ps, nil
}

func (r *packageRepository) AddService(ctx context.Context, ps *model.PackageService) error {
	query := `
		INSERT INTO package_services (package_id, service_id, included, additional_price, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	ps.CreatedAt = time.Now()

	err := r.db.QueryRowContext(ctx, query,
		ps.PackageID,
		ps.ServiceID,
		ps.Included,
		ps.AdditionalPrice,
		ps.CreatedAt,
	).Scan(&ps.ID)
	if err != nil {
		return fmt.Errorf("failed to add package service: %w", err)
	}
	return nil
}

func (r *packageRepository) UpdateService(ctx context.Context, ps *model.PackageService) error {
	query := `
		UPDATE package_services
		SET included = $1, additional_price = $2
		WHERE id = $3
	`
	result, err := r.db.ExecContext(ctx, query, ps.Included, ps.AdditionalPrice, ps.ID)
	if err != nil {
		return fmt.Errorf("failed to update package service: %w", err)
	}
	return requireRow(result)
}

func (r *packageRepository) RemoveService(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM package_services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to remove package service: %w", err)
	}
	return requireRow(result)
}

// requireRow converts a zero-row update/delete into sql.ErrNoRows so the
// service layer can map it to a 404.
func requireRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
