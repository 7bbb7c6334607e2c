package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eventosya/marketplace-api/internal/model"
)

// All repository interfaces in one file
type (
	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		Get(ctx context.Context, id int64) (*model.User, error)
		GetByEmail(ctx context.Context, email string) (*model.User, error)
	}

	CategoryRepository interface {
		List(ctx context.Context) ([]*model.Category, error)
		Get(ctx context.Context, id int64) (*model.Category, error)
	}

	ProviderRepository interface {
		Get(ctx context.Context, id int64) (*model.Provider, error)
		GetByUserID(ctx context.Context, userID int64) (*model.Provider, error)
		Create(ctx context.Context, provider *model.Provider) error
		Update(ctx context.Context, provider *model.Provider) error
		// Register creates the provider and its optional initial service in
		// one transaction.
		Register(ctx context.Context, reg *model.ProviderRegistration) error
	}

	ServiceRepository interface {
		Get(ctx context.Context, id int64) (*model.Service, error)
		ListByProvider(ctx context.Context, providerID int64) ([]*model.Service, error)
		ListByCategory(ctx context.Context, categoryID int64) ([]*model.Service, error)
		ListFeatured(ctx context.Context) ([]*model.Service, error)
		Search(ctx context.Context, filters *model.SearchFilters) ([]*model.Service, error)
		Create(ctx context.Context, service *model.Service) error
		Update(ctx context.Context, service *model.Service) error
	}

	ReviewRepository interface {
		ListByService(ctx context.Context, serviceID int64) ([]*model.Review, error)
		Create(ctx context.Context, review *model.Review) error
	}

	FavoriteRepository interface {
		ListByUser(ctx context.Context, userID int64) ([]*model.Favorite, error)
		// Toggle atomically removes the favorite when present, otherwise
		// inserts it. Returns true when the service ends up favorited.
		Toggle(ctx context.Context, userID, serviceID int64) (bool, error)
	}

	PromotionRepository interface {
		ListActive(ctx context.Context, now time.Time) ([]*model.Promotion, error)
		ListByService(ctx context.Context, serviceID int64) ([]*model.Promotion, error)
		ListByProvider(ctx context.Context, providerID int64) ([]*model.Promotion, error)
		Create(ctx context.Context, promotion *model.Promotion) error
		Delete(ctx context.Context, id int64) error
	}

	DistancePricingRepository interface {
		ListByProvider(ctx context.Context, providerID int64) ([]*model.DistancePricing, error)
		Create(ctx context.Context, pricing *model.DistancePricing) error
		Update(ctx context.Context, pricing *model.DistancePricing) error
		Get(ctx context.Context, id int64) (*model.DistancePricing, error)
		Delete(ctx context.Context, id int64) error
	}

	PackageRepository interface {
		ListByProvider(ctx context.Context, providerID int64) ([]*model.Package, error)
		Get(ctx context.Context, id int64) (*model.Package, error)
		Create(ctx context.Context, pkg *model.Package) error
		Update(ctx context.Context, pkg *model.Package) error
		Delete(ctx context.Context, id int64) error

		ListServices(ctx context.Context, packageID int64) ([]*model.PackageService, error)
		GetService(ctx context.Context, id int64) (*model.PackageService, error)
		AddService(ctx context.Context, ps *model.PackageService) error
		UpdateService(ctx context.Context, ps *model.PackageService) error
		RemoveService(ctx context.Context, id int64) error
	}

	SubscriptionRepository interface {
		ListPlans(ctx context.Context) ([]*model.SubscriptionPlan, error)
		GetPlan(ctx context.Context, id int64) (*model.SubscriptionPlan, error)
		CreatePlan(ctx context.Context, plan *model.SubscriptionPlan) error
		UpdatePlan(ctx context.Context, plan *model.SubscriptionPlan) error
		DeletePlan(ctx context.Context, id int64) error

		ListByUser(ctx context.Context, userID int64) ([]*model.Subscription, error)
		Create(ctx context.Context, sub *model.Subscription) error
		Update(ctx context.Context, sub *model.Subscription) error
	}

	PaymentAliasRepository interface {
		ListActive(ctx context.Context) ([]*model.PaymentAlias, error)
		GetByAlias(ctx context.Context, alias string) (*model.PaymentAlias, error)
		Create(ctx context.Context, alias *model.PaymentAlias) error
		Update(ctx context.Context, alias *model.PaymentAlias) error
		Delete(ctx context.Context, id int64) error
	}

	AnalyticsRepository interface {
		Insert(ctx context.Context, event *model.AnalyticsEvent) error
		List(ctx context.Context, filter *model.AnalyticsFilter) ([]*model.AnalyticsEvent, error)
		PageViewStats(ctx context.Context, pagePath string, start, end *time.Time) ([]*model.PageViewStat, error)
		PopularPages(ctx context.Context, limit int, start, end *time.Time) ([]*model.PopularPage, error)
	}

	OutboxRepository interface {
		Create(ctx context.Context, event *model.OutboxEvent) error
		GetPendingWithLock(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.OutboxStatus, errorMessage *string) error
		DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error)
	}
)
