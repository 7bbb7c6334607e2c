package model

import (
	"encoding/json"
	"time"
)

// Action types recorded by the tracking endpoint.
const (
	ActionPageView    = "page_view"
	ActionClick       = "click"
	ActionSearch      = "search"
	ActionServiceView = "service_view"
	ActionContact     = "contact"
	ActionFavorite    = "favorite"
	ActionSignup      = "signup"
	ActionLogin       = "login"
)

// AnalyticsEvent is an append-only behavioral event. Rows are never updated
// or deleted through the API.
type AnalyticsEvent struct {
	ID            int64           `db:"id" json:"id"`
	UserID        *int64          `db:"user_id" json:"userId,omitempty"`
	SessionID     string          `db:"session_id" json:"sessionId"`
	PagePath      string          `db:"page_path" json:"pagePath"`
	ActionType    string          `db:"action_type" json:"actionType"`
	ActionDetails json.RawMessage `db:"action_details" json:"actionDetails,omitempty"`
	UserAgent     string          `db:"user_agent" json:"userAgent,omitempty"`
	IPAddress     string          `db:"ip_address" json:"ipAddress,omitempty"`
	Referrer      string          `db:"referrer" json:"referrer,omitempty"`
	CreatedAt     time.Time       `db:"created_at" json:"createdAt"`
}

// AnalyticsFilter narrows raw event queries. Nil fields impose no constraint.
type AnalyticsFilter struct {
	UserID    *int64
	StartDate *time.Time
	EndDate   *time.Time
}

// PageViewStat is a per-page per-day aggregate over page_view events.
type PageViewStat struct {
	PagePath    string `db:"page_path" json:"pagePath"`
	Views       int64  `db:"views" json:"views"`
	UniqueUsers int64  `db:"unique_users" json:"uniqueUsers"`
	Date        string `db:"date" json:"date"`
}

// PopularPage is a page ranked by total views over a window.
type PopularPage struct {
	PagePath    string `db:"page_path" json:"pagePath"`
	Views       int64  `db:"views" json:"views"`
	UniqueUsers int64  `db:"unique_users" json:"uniqueUsers"`
}
