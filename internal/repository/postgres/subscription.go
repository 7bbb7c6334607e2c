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

type subscriptionRepository struct {
	BaseRepository
}

func NewSubscriptionRepository(base BaseRepository) repository.SubscriptionRepository {
	return &subscriptionRepository{base}
}

func (r *subscriptionRepository) ListPlans(ctx context.Context) ([]*model.SubscriptionPlan, error) {
	query := `
		SELECT id, name, price, interval, features, active, created_at
		FROM subscription_plans
		WHERE active = TRUE
		ORDER BY price
	`
	plans := []*model.SubscriptionPlan{}
	if err := r.db.SelectContext(ctx, &plans, query); err != nil {
		return nil, fmt.Errorf("failed to list subscription plans: %w", err)
	}
	return plans, nil
}

func (r *subscriptionRepository) GetPlan(ctx context.Context, id int64) (*model.SubscriptionPlan, error) {
	query := `
		SELECT id, name, price, interval, features, active, created_at
		FROM subscription_plans
		WHERE id = $1
	`
	var plan model.SubscriptionPlan
	err := r.db.GetContext(ctx, &plan, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription plan: %w", err)
	}
	return &plan, nil
}

func (r *subscriptionRepository) CreatePlan(ctx context.Context, plan *model.SubscriptionPlan) error {
	query := `
		INSERT INTO subscription_plans (name, price, interval, features, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	plan.CreatedAt = time.Now()

	err := r.db.QueryRowContext(ctx, query,
		plan.Name,
		plan.Price,
		plan.Interval,
		plan.Features,
		plan.Active,
		plan.CreatedAt,
	).Scan(&plan.ID)
	if err != nil {
		return fmt.Errorf("failed to create subscription plan: %w", err)
	}
	return nil
}

func (r *subscriptionRepository) UpdatePlan(ctx context.Context, plan *model.SubscriptionPlan) error {
	query := `
		UPDATE subscription_plans
		SET name = $1, price = $2, interval = $3, features = $4, active = $5
		WHERE id = $6
	`
	result, err := r.db.ExecContext(ctx, query,
		plan.Name,
		plan.Price,
		plan.Interval,
		plan.Features,
		plan.Active,
		plan.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update subscription plan: %w", err)
	}
	return requireRow(result)
}

func (r *subscriptionRepository) DeletePlan(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM subscription_plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subscription plan: %w", err)
	}
	return requireRow(result)
}

func (r *subscriptionRepository) ListByUser(ctx context.Context, userID int64) ([]*model.Subscription, error) {
	query := `
		SELECT id, user_id, plan_id, status, starts_at, ends_at, created_at
		FROM subscriptions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	subs := []*model.Subscription{}
	if err := r.db.SelectContext(ctx, &subs, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subs, nil
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	query := `
		INSERT INTO subscriptions (user_id, plan_id, status, starts_at, ends_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	sub.CreatedAt = time.Now()

	err := r.db.QueryRowContext(ctx, query,
		sub.UserID,
		sub.PlanID,
		sub.Status,
		sub.StartsAt,
		sub.EndsAt,
		sub.CreatedAt,
	).Scan(&sub.ID)
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	return nil
}

func (r *subscriptionRepository) Update(ctx context.Context, sub *model.Subscription) error {
	query := `
		UPDATE subscriptions
		SET status = $1, ends_at = $2
		WHERE id = $3
	`
	result, err := r.db.ExecContext(ctx, query, sub.Status, sub.EndsAt, sub.ID)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	return requireRow(result)
}
