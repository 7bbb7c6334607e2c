package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eventosya/marketplace-api/internal/model"
	"github.com/eventosya/marketplace-api/internal/repository"
)

type analyticsRepository struct {
	BaseRepository
}

func NewAnalyticsRepository(base BaseRepository) repository.AnalyticsRepository {
	return &analyticsRepository{base}
}

func (r *analyticsRepository) Insert(ctx context.Context, event *model.AnalyticsEvent) error {
	query := `
		INSERT INTO user_analytics (
			user_id, session_id, page_path, action_type, action_details,
			user_agent, ip_address, referrer, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		RETURNING id
	`
	event.CreatedAt = time.Now()

	err := r.db.QueryRowContext(ctx, query,
		event.UserID,
		event.SessionID,
		event.PagePath,
		event.ActionType,
		event.ActionDetails,
		event.UserAgent,
		event.IPAddress,
		event.Referrer,
		event.CreatedAt,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("failed to insert analytics event: %w", err)
	}
	return nil
}

func (r *analyticsRepository) List(ctx context.Context, filter *model.AnalyticsFilter) ([]*model.AnalyticsEvent, error) {
	var (
		conds []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.UserID != nil {
		conds = append(conds, "user_id = "+arg(*filter.UserID))
	}
	if filter.StartDate != nil {
		conds = append(conds, "created_at >= "+arg(*filter.StartDate))
	}
	if filter.EndDate != nil {
		conds = append(conds, "created_at <= "+arg(*filter.EndDate))
	}

	query := `
		SELECT id, user_id, session_id, page_path, action_type, action_details,
		       user_agent, ip_address, referrer, created_at
		FROM user_analytics
	`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	events := []*model.AnalyticsEvent{}
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list analytics events: %w", err)
	}
	return events, nil
}

// PageViewStats groups page_view events by page and day, counting views and
// distinct users.
func (r *analyticsRepository) PageViewStats(ctx context.Context, pagePath string, start, end *time.Time) ([]*model.PageViewStat, error) {
	conds := []string{"action_type = 'page_view'"}
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if pagePath != "" {
		conds = append(conds, "page_path = "+arg(pagePath))
	}
	if start != nil {
		conds = append(conds, "created_at >= "+arg(*start))
	}
	if end != nil {
		conds = append(conds, "created_at <= "+arg(*end))
	}

	query := `
		SELECT page_path,
		       COUNT(*) AS views,
		       COUNT(DISTINCT user_id) AS unique_users,
		       TO_CHAR(DATE(created_at), 'YYYY-MM-DD') AS date
		FROM user_analytics
		WHERE ` + strings.Join(conds, " AND ") + `
		GROUP BY page_path, DATE(created_at)
		ORDER BY DATE(created_at) DESC
	`

	stats := []*model.PageViewStat{}
	if err := r.db.SelectContext(ctx, &stats, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get page view stats: %w", err)
	}
	return stats, nil
}

// PopularPages ranks pages by total page_view count over the window.
func (r *analyticsRepository) PopularPages(ctx context.Context, limit int, start, end *time.Time) ([]*model.PopularPage, error) {
	conds := []string{"action_type = 'page_view'"}
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if start != nil {
		conds = append(conds, "created_at >= "+arg(*start))
	}
	if end != nil {
		conds = append(conds, "created_at <= "+arg(*end))
	}

	query := `
		SELECT page_path,
		       COUNT(*) AS views,
		       COUNT(DISTINCT user_id) AS unique_users
		FROM user_analytics
		WHERE ` + strings.Join(conds, " AND ") + `
		GROUP BY page_path
		ORDER BY COUNT(*) DESC
		LIMIT ` + arg(limit)

	pages := []*model.PopularPage{}
	if err := r.db.SelectContext(ctx, &pages, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get popular pages: %w", err)
	}
	return pages, nil
}
