package model

import "time"

type Package struct {
	ID          int64     `db:"id" json:"id"`
	ProviderID  int64     `db:"provider_id" json:"providerId"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description,omitempty"`
	BasePrice   string    `db:"base_price" json:"basePrice"`
	PriceType   string    `db:"price_type" json:"priceType"`
	ImageURL    string    `db:"image_url" json:"imageUrl,omitempty"`
	Active      bool      `db:"active" json:"active"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// PackageService marks a service as part of a package: either included in the
// base price, or selectable for a non-negative additional price.
type PackageService struct {
	ID              int64     `db:"id" json:"id"`
	PackageID       int64     `db:"package_id" json:"packageId"`
	ServiceID       int64     `db:"service_id" json:"serviceId"`
	Included        bool      `db:"included" json:"included"`
	AdditionalPrice string    `db:"additional_price" json:"additionalPrice"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

type PackageServiceWithDetail struct {
	PackageService
	Service *Service `json:"service,omitempty"`
}

// PackageQuote is the server-computed total for a customized package.
type PackageQuote struct {
	PackageID  int64   `json:"packageId"`
	BasePrice  string  `json:"basePrice"`
	Total      string  `json:"total"`
	ServiceIDs []int64 `json:"serviceIds"`
}
