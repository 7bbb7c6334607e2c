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

type paymentAliasRepository struct {
	BaseRepository
}

func NewPaymentAliasRepository(base BaseRepository) repository.PaymentAliasRepository {
	return &paymentAliasRepository{base}
}

const paymentAliasColumns = `
	id, alias, display_name, description, payment_url, active, created_at
`

func (r *paymentAliasRepository) ListActive(ctx context.Context) ([]*model.PaymentAlias, error) {
	query := `SELECT ` + paymentAliasColumns + ` FROM payment_aliases WHERE active = TRUE ORDER BY alias`

	aliases := []*model.PaymentAlias{}
	if err := r.db.SelectContext(ctx, &aliases, query); err != nil {
		return nil, fmt.Errorf("failed to list payment aliases: %w", err)
	}
	return aliases, nil
}

func (r *paymentAliasRepository) GetByAlias(ctx context.Context, alias string) (*model.PaymentAlias, error) {
	query := `SELECT ` + paymentAliasColumns + ` FROM payment_aliases WHERE alias = $1`

	var pa model.PaymentAlias
	err := r.db.GetContext(ctx, &pa, query, alias)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment alias: %w", err)
	}
	return &pa, nil
}

func (r *paymentAliasRepository) Create(ctx context.Context, alias *model.PaymentAlias) error {
	query := `
		INSERT INTO payment_aliases (alias, display_name, description, payment_url, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	alias.CreatedAt = time.Now()

	err := r.db.QueryRowContext(ctx, query,
		alias.Alias,
		alias.DisplayName,
		alias.Description,
		alias.PaymentURL,
		alias.Active,
		alias.CreatedAt,
	).Scan(&alias.ID)
	if err != nil {
		return fmt.Errorf("failed to create payment alias: %w", err)
	}
	return nil
}

func (r *paymentAliasRepository) Update(ctx context.Context, alias *model.PaymentAlias) error {
	query := `
		UPDATE payment_aliases
		SET alias = $1, display_name = $2, description = $3, payment_url = $4, active = $5
		WHERE id = $6
	`
	result, err := r.db.ExecContext(ctx, query,
		alias.Alias,
		alias.DisplayName,
		alias.Description,
		alias.PaymentURL,
		alias.Active,
		alias.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment alias: %w", err)
	}
	return requireRow(result)
}

func (r *paymentAliasRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payment_aliases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment alias: %w", err)
	}
	return requireRow(result)
}
