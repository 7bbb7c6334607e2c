package model

import "time"

// Favorite rows are unique per (user, service); the table carries a unique
// constraint so a concurrent double-toggle cannot insert duplicates.
type Favorite struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"userId"`
	ServiceID int64     `db:"service_id" json:"serviceId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// FavoriteWithService is the enriched row returned by GET /api/users/:id/favorites.
type FavoriteWithService struct {
	Favorite
	Service  *Service  `json:"service,omitempty"`
	Provider *Provider `json:"provider,omitempty"`
}
