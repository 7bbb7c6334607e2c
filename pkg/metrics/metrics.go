package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the analytics pipeline metrics shared by the API and worker.
type Metrics struct {
	EventsTracked     *prometheus.CounterVec
	EventsPublished   prometheus.Counter
	EventsFailed      prometheus.Counter
	PublishRetries    *prometheus.CounterVec
	ProcessingLatency prometheus.Histogram

	DatabaseOperations *prometheus.CounterVec
}

// New creates and registers the pipeline metrics under the given namespace.
func New(namespace string) *Metrics {
	return &Metrics{
		EventsTracked: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_tracked_total",
			Help:      "Total number of analytics events accepted by the tracking endpoint",
		}, []string{"action_type"}),
		EventsPublished: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Total number of outbox events published to the broker",
		}),
		EventsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_failed_total",
			Help:      "Total number of outbox events that failed publishing",
		}),
		PublishRetries: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "publish_retry_attempts_total",
			Help:      "Total number of publish retry attempts",
		}, []string{"event_type"}),
		ProcessingLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "processing_duration_seconds",
			Help:      "Time spent draining a batch of outbox events",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}),
		DatabaseOperations: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "database_operations_total",
			Help:      "Total number of database operations",
		}, []string{"operation", "status"}),
	}
}
