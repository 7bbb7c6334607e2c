package model

import "time"

// DistancePricing is a per-provider price tier for travel distance.
type DistancePricing struct {
	ID         int64     `db:"id" json:"id"`
	ProviderID int64     `db:"provider_id" json:"providerId"`
	DistanceKm int       `db:"distance_km" json:"distanceKm"`
	Price      string    `db:"price" json:"price"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}
