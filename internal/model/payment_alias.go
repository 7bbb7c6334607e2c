package model

import "time"

// PaymentAlias maps a short slug to an external payment URL. The /pay/:alias
// route redirects to PaymentURL when the alias exists and is active.
type PaymentAlias struct {
	ID          int64     `db:"id" json:"id"`
	Alias       string    `db:"alias" json:"alias"`
	DisplayName string    `db:"display_name" json:"displayName"`
	Description string    `db:"description" json:"description,omitempty"`
	PaymentURL  string    `db:"payment_url" json:"paymentUrl"`
	Active      bool      `db:"active" json:"active"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}
