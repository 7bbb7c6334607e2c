package model

import "time"

type Promotion struct {
	ID                 int64     `db:"id" json:"id"`
	ServiceID          int64     `db:"service_id" json:"serviceId"`
	Title              string    `db:"title" json:"title"`
	Description        string    `db:"description" json:"description,omitempty"`
	DiscountPercentage int       `db:"discount_percentage" json:"discountPercentage"`
	OriginalPrice      string    `db:"original_price" json:"originalPrice"`
	PromotionalPrice   string    `db:"promotional_price" json:"promotionalPrice"`
	ValidFrom          time.Time `db:"valid_from" json:"validFrom"`
	ValidUntil         time.Time `db:"valid_until" json:"validUntil"`
	Active             bool      `db:"active" json:"active"`
	CreatedAt          time.Time `db:"created_at" json:"createdAt"`
}

// IsCurrent reports whether the promotion is live at the given instant:
// the active flag is set and now falls inside [validFrom, validUntil].
func (p *Promotion) IsCurrent(now time.Time) bool {
	return p.Active && !now.Before(p.ValidFrom) && !now.After(p.ValidUntil)
}
