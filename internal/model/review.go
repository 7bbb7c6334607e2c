package model

import "time"

type Review struct {
	ID        int64     `db:"id" json:"id"`
	ServiceID int64     `db:"service_id" json:"serviceId"`
	UserID    int64     `db:"user_id" json:"userId"`
	Rating    int       `db:"rating" json:"rating"`
	Comment   string    `db:"comment" json:"comment,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
