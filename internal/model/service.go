package model

import "time"

// Price type values accepted for services and packages.
const (
	PriceTypePerEvent  = "per_event"
	PriceTypePerPerson = "per_person"
	PriceTypePerHour   = "per_hour"
)

// Sort keys accepted by the search endpoint. Anything else falls back to
// newest-first by creation time.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// Service prices are NUMERIC columns carried as strings end to end, the same
// way the public API has always serialized them.
type Service struct {
	ID          int64     `db:"id" json:"id"`
	ProviderID  int64     `db:"provider_id" json:"providerId"`
	CategoryID  int64     `db:"category_id" json:"categoryId"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description,omitempty"`
	Price       string    `db:"price" json:"price"`
	PriceType   string    `db:"price_type" json:"priceType"`
	MinCapacity *int      `db:"min_capacity" json:"minCapacity,omitempty"`
	MaxCapacity *int      `db:"max_capacity" json:"maxCapacity,omitempty"`
	ImageURL    string    `db:"image_url" json:"imageUrl,omitempty"`
	Featured    bool      `db:"featured" json:"featured"`
	Active      bool      `db:"active" json:"active"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// SearchFilters is the flat filter set of GET /api/services/search. Nil or
// zero fields impose no constraint; supplied fields are conjunctive.
type SearchFilters struct {
	Query      string
	Location   string
	CategoryID *int64
	MinPrice   *float64
	MaxPrice   *float64
	SortBy     string
}

type ServiceWithProvider struct {
	Service
	Provider *Provider `json:"provider,omitempty"`
	Category *Category `json:"category,omitempty"`
	Reviews  []*Review `json:"reviews,omitempty"`
}

type ServiceWithCategory struct {
	Service
	Category *Category `json:"category,omitempty"`
}
