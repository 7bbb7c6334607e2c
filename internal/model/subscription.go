package model

import (
	"time"

	"github.com/lib/pq"
)

const (
	PlanIntervalMonthly = "monthly"
	PlanIntervalYearly  = "yearly"
)

type SubscriptionPlan struct {
	ID        int64          `db:"id" json:"id"`
	Name      string         `db:"name" json:"name"`
	Price     string         `db:"price" json:"price"`
	Interval  string         `db:"interval" json:"interval"`
	Features  pq.StringArray `db:"features" json:"features"`
	Active    bool           `db:"active" json:"active"`
	CreatedAt time.Time      `db:"created_at" json:"createdAt"`
}

type Subscription struct {
	ID        int64      `db:"id" json:"id"`
	UserID    int64      `db:"user_id" json:"userId"`
	PlanID    int64      `db:"plan_id" json:"planId"`
	Status    string     `db:"status" json:"status"`
	StartsAt  time.Time  `db:"starts_at" json:"startsAt"`
	EndsAt    *time.Time `db:"ends_at" json:"endsAt,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
}
