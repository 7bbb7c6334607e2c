package subscription

import (
	"context"
	"database/sql"
	"errors"

	"github.com/eventosya/marketplace-api/internal/model"
	"github.com/eventosya/marketplace-api/internal/repository"
	"github.com/eventosya/marketplace-api/pkg/apperror"
)

type SubscriptionServicer interface {
	ListPlans(ctx context.Context) ([]*model.SubscriptionPlan, error)
	GetPlan(ctx context.Context, id int64) (*model.SubscriptionPlan, error)
	CreatePlan(ctx context.Context, plan *model.SubscriptionPlan) (*model.SubscriptionPlan, error)
	UpdatePlan(ctx context.Context, plan *model.SubscriptionPlan) (*model.SubscriptionPlan, error)
	DeletePlan(ctx context.Context, id int64) error

	ListByUser(ctx context.Context, userID int64) ([]*model.Subscription, error)
	Subscribe(ctx context.Context, sub *model.Subscription) (*model.Subscription, error)
	UpdateSubscription(ctx context.Context, sub *model.Subscription) (*model.Subscription, error)
}

type Service struct {
	repo     repository.SubscriptionRepository
	userRepo repository.UserRepository
}

func NewService(repo repository.SubscriptionRepository, userRepo repository.UserRepository) *Service {
	return &Service{repo: repo, userRepo: userRepo}
}

func (s *Service) ListPlans(ctx context.Context) ([]*model.SubscriptionPlan, error) {
	plans, err := s.repo.ListPlans(ctx)
	if err != nil {
		return nil, apperror.Internal("failed to fetch subscription plans", err)
	}
	return plans, nil
}

func (s *Service) GetPlan(ctx context.Context, id int64) (*model.SubscriptionPlan, error) {
	plan, err := s.repo.GetPlan(ctx, id)
	if err != nil {
		return nil, apperror.Internal("failed to fetch subscription plan", err)
	}
	if plan == nil {
		return nil, apperror.NotFound("subscription plan")
	}
	return plan, nil
}

func (s *Service) CreatePlan(ctx context.Context, plan *model.SubscriptionPlan) (*model.SubscriptionPlan, error) {
	if plan.Interval != model.PlanIntervalMonthly && plan.Interval != model.PlanIntervalYearly {
		return nil, apperror.BadRequest("interval must be monthly or yearly")
	}
	if err := s.repo.CreatePlan(ctx, plan); err != nil {
		return nil, apperror.Internal("failed to create subscription plan", err)
	}
	return plan, nil
}

func (s *Service) UpdatePlan(ctx context.Context, plan *model.SubscriptionPlan) (*model.SubscriptionPlan, error) {
	existing, err := s.repo.GetPlan(ctx, plan.ID)
	if err != nil {
		return nil, apperror.Internal("failed to update subscription plan", err)
	}
	if existing == nil {
		return nil, apperror.NotFound("subscription plan")
	}

	if err := s.repo.UpdatePlan(ctx, plan); err != nil {
		return nil, apperror.Internal("failed to update subscription plan", err)
	}
	return plan, nil
}

func (s *Service) DeletePlan(ctx context.Context, id int64) error {
	if err := s.repo.DeletePlan(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperror.NotFound("subscription plan")
		}
		return apperror.Internal("failed to delete subscription plan", err)
	}
	return nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]*model.Subscription, error) {
	subs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal("failed to fetch subscriptions", err)
	}
	return subs, nil
}

func (s *Service) Subscribe(ctx context.Context, sub *model.Subscription) (*model.Subscription, error) {
	user, err := s.userRepo.Get(ctx, sub.UserID)
	if err != nil {
		return nil, apperror.Internal("failed to create subscription", err)
	}
	if user == nil {
		return nil, apperror.BadRequest("user not found")
	}

	plan, err := s.repo.GetPlan(ctx, sub.PlanID)
	if err != nil {
		return nil, apperror.Internal("failed to create subscription", err)
	}
	if plan == nil {
		return nil, apperror.BadRequest("subscription plan not found")
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, apperror.Internal("failed to create subscription", err)
	}
	return sub, nil
}

func (s *Service) UpdateSubscription(ctx context.Context, sub *model.Subscription) (*model.Subscription, error) {
	if err := s.repo.Update(ctx, sub); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("subscription")
		}
		return nil, apperror.Internal("failed to update subscription", err)
	}
	return sub, nil
}
