package model

import "time"

type Provider struct {
	ID               int64     `db:"id" json:"id"`
	UserID           int64     `db:"user_id" json:"userId"`
	BusinessName     string    `db:"business_name" json:"businessName"`
	Description      string    `db:"description" json:"description"`
	Location         string    `db:"location" json:"location"`
	Phone            string    `db:"phone" json:"phone,omitempty"`
	Website          string    `db:"website" json:"website,omitempty"`
	ImageURL         string    `db:"image_url" json:"imageUrl,omitempty"`
	Rating           string    `db:"rating" json:"rating"`
	ReviewCount      int       `db:"review_count" json:"reviewCount"`
	Verified         bool      `db:"verified" json:"verified"`
	SubscriptionPlan string    `db:"subscription_plan" json:"subscriptionPlan"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
}

// ProviderWithServices is the detail view returned by GET /api/providers/:id.
type ProviderWithServices struct {
	Provider
	Services []*ServiceWithCategory `json:"services"`
}

// ProviderRegistration bundles the rows written during provider sign-up.
// The initial service is optional.
type ProviderRegistration struct {
	Provider       *Provider
	InitialService *Service
}
