package model

import "time"

type User struct {
	ID         int64     `db:"id" json:"id"`
	Username   string    `db:"username" json:"username"`
	Email      string    `db:"email" json:"email"`
	Password   string    `db:"password" json:"-"`
	FirstName  string    `db:"first_name" json:"firstName"`
	LastName   string    `db:"last_name" json:"lastName"`
	Phone      string    `db:"phone" json:"phone,omitempty"`
	IsProvider bool      `db:"is_provider" json:"isProvider"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}
