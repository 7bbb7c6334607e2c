package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventosya/marketplace-api/internal/model"
	"github.com/eventosya/marketplace-api/pkg/metrics"
)

type stubAnalyticsRepo struct {
	inserted []*model.AnalyticsEvent
}

func (r *stubAnalyticsRepo) Insert(_ context.Context, event *model.AnalyticsEvent) error {
	event.ID = int64(len(r.inserted) + 1)
	r.inserted = append(r.inserted, event)
	return nil
}

func (r *stubAnalyticsRepo) List(context.Context, *model.AnalyticsFilter) ([]*model.AnalyticsEvent, error) {
	return r.inserted, nil
}

func (r *stubAnalyticsRepo) PageViewStats(context.Context, string, *time.Time, *time.Time) ([]*model.PageViewStat, error) {
	return nil, nil
}

func (r *stubAnalyticsRepo) PopularPages(context.Context, int, *time.Time, *time.Time) ([]*model.PopularPage, error) {
	return nil, nil
}

type stubOutboxRepo struct {
	created []*model.OutboxEvent
}

func (r *stubOutboxRepo) Create(_ context.Context, event *model.OutboxEvent) error {
	r.created = append(r.created, event)
	return nil
}

func (r *stubOutboxRepo) GetPendingWithLock(context.Context, int) ([]*model.OutboxEvent, error) {
	return nil, nil
}

func (r *stubOutboxRepo) UpdateStatus(context.Context, uuid.UUID, model.OutboxStatus, *string) error {
	return nil
}

func (r *stubOutboxRepo) DeleteProcessedBefore(context.Context, time.Time) (int64, error) {
	return 0, nil
}

var testMetrics = metrics.New("marketplace_test")

func newTestService(repo *stubAnalyticsRepo, outbox *stubOutboxRepo) *Service {
	return NewService(repo, outbox, testMetrics, zerolog.Nop())
}

func TestTrackGeneratesSessionID(t *testing.T) {
	repo := &stubAnalyticsRepo{}
	outbox := &stubOutboxRepo{}
	svc := newTestService(repo, outbox)

	event, err := svc.Track(context.Background(), &model.AnalyticsEvent{
		PagePath:   "/servicios",
		ActionType: model.ActionPageView,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, event.SessionID)
	_, parseErr := uuid.Parse(event.SessionID)
	assert.NoError(t, parseErr)
}

func TestTrackKeepsProvidedSessionID(t *testing.T) {
	repo := &stubAnalyticsRepo{}
	svc := newTestService(repo, &stubOutboxRepo{})

	event, err := svc.Track(context.Background(), &model.AnalyticsEvent{
		SessionID:  "session-abc",
		PagePath:   "/",
		ActionType: model.ActionClick,
	})
	require.NoError(t, err)
	assert.Equal(t, "session-abc", event.SessionID)
}

func TestTrackStagesOutboxEvent(t *testing.T) {
	repo := &stubAnalyticsRepo{}
	outbox := &stubOutboxRepo{}
	svc := newTestService(repo, outbox)

	_, err := svc.Track(context.Background(), &model.AnalyticsEvent{
		PagePath:   "/servicios/5",
		ActionType: model.ActionServiceView,
	})
	require.NoError(t, err)

	require.Len(t, repo.inserted, 1)
	require.Len(t, outbox.created, 1)
	assert.Equal(t, model.ActionServiceView, outbox.created[0].EventType)
	assert.NotEmpty(t, outbox.created[0].Payload)
}

func TestTrackRejectsUnknownAction(t *testing.T) {
	svc := newTestService(&stubAnalyticsRepo{}, &stubOutboxRepo{})

	_, err := svc.Track(context.Background(), &model.AnalyticsEvent{
		PagePath:   "/",
		ActionType: "teleport",
	})
	require.Error(t, err)
}

func TestTrackRequiresPagePath(t *testing.T) {
	svc := newTestService(&stubAnalyticsRepo{}, &stubOutboxRepo{})

	_, err := svc.Track(context.Background(), &model.AnalyticsEvent{
		ActionType: model.ActionPageView,
	})
	require.Error(t, err)
}
