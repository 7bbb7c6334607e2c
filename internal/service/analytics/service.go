package analytics

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/eventosya/marketplace-api/internal/model"
	"github.com/eventosya/marketplace-api/internal/repository"
	"github.com/eventosya/marketplace-api/pkg/apperror"
	"github.com/eventosya/marketplace-api/pkg/metrics"
)

var validActions = map[string]struct{}{
	model.ActionPageView:    {},
	model.ActionClick:       {},
	model.ActionSearch:      {},
	model.ActionServiceView: {},
	model.ActionContact:     {},
	model.ActionFavorite:    {},
	model.ActionSignup:      {},
	model.ActionLogin:       {},
}

type AnalyticsServicer interface {
	Track(ctx context.Context, event *model.AnalyticsEvent) (*model.AnalyticsEvent, error)
	List(ctx context.Context, filter *model.AnalyticsFilter) ([]*model.AnalyticsEvent, error)
	PageViewStats(ctx context.Context, pagePath string, start, end *time.Time) ([]*model.PageViewStat, error)
	PopularPages(ctx context.Context, limit int, start, end *time.Time) ([]*model.PopularPage, error)
}

type Service struct {
	repo       repository.AnalyticsRepository
	outboxRepo repository.OutboxRepository
	metrics    *metrics.Metrics
	logger     zerolog.Logger
}

func NewService(
	repo repository.AnalyticsRepository,
	outboxRepo repository.OutboxRepository,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *Service {
	return &Service{repo: repo, outboxRepo: outboxRepo, metrics: m, logger: logger}
}

// Track persists the event and stages an outbox copy for the worker.
// Outbox staging is best effort: a tracked event is never lost over a
// fan-out hiccup.
func (s *Service) Track(ctx context.Context, event *model.AnalyticsEvent) (*model.AnalyticsEvent, error) {
	if _, ok := validActions[event.ActionType]; !ok {
		return nil, apperror.BadRequest("unknown action type")
	}
	if event.PagePath == "" {
		return nil, apperror.BadRequest("pagePath is required")
	}
	if event.SessionID == "" {
		event.SessionID = uuid.NewString()
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		s.metrics.DatabaseOperations.WithLabelValues("insert_event", "error").Inc()
		return nil, apperror.Internal("failed to track event", err)
	}
	s.metrics.DatabaseOperations.WithLabelValues("insert_event", "success").Inc()
	s.metrics.EventsTracked.WithLabelValues(event.ActionType).Inc()

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Warn().Err(err).Int64("event_id", event.ID).Msg("failed to marshal event for outbox")
		return event, nil
	}
	outboxEvent := &model.OutboxEvent{
		EventType: event.ActionType,
		Payload:   payload,
	}
	if err := s.outboxRepo.Create(ctx, outboxEvent); err != nil {
		s.logger.Warn().Err(err).Int64("event_id", event.ID).Msg("failed to stage outbox event")
	}

	return event, nil
}

func (s *Service) List(ctx context.Context, filter *model.AnalyticsFilter) ([]*model.AnalyticsEvent, error) {
	events, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apperror.Internal("failed to fetch analytics events", err)
	}
	return events, nil
}

func (s *Service) PageViewStats(ctx context.Context, pagePath string, start, end *time.Time) ([]*model.PageViewStat, error) {
	stats, err := s.repo.PageViewStats(ctx, pagePath, start, end)
	if err != nil {
		return nil, apperror.Internal("failed to fetch page view stats", err)
	}
	return stats, nil
}

func (s *Service) PopularPages(ctx context.Context, limit int, start, end *time.Time) ([]*model.PopularPage, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	pages, err := s.repo.PopularPages(ctx, limit, start, end)
	if err != nil {
		return nil, apperror.Internal("failed to fetch popular pages", err)
	}
	return pages, nil
}
