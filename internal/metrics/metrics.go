// Package metrics exposes tracker prometheus metrics.
package metrics

import (
	"strconv"

	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tracker"

// Metrics holds tracker collectors registered in single registry.
type Metrics struct {
	parsings          *prometheus.CounterVec
	failedItems       *prometheus.CounterVec
	notifications     *prometheus.CounterVec
	searchRetries     prometheus.Counter
	responses         *prometheus.CounterVec
	responseDurations *prometheus.HistogramVec
}

// New registers tracker collectors in registerer.
func New(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		parsings: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "parsings_total",
				Help:      "Total number of finished parsings",
			},
			[]string{"type", "status"},
		),
		failedItems: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "failed_items_total",
				Help:      "Total number of items failed during parsings",
			},
			[]string{"type"},
		),
		notifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_total",
				Help:      "Total number of price change notifications",
			},
			[]string{"outcome"},
		),
		searchRetries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_retries_total",
			Help:      "Total number of retried search page requests",
		}),
		responses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_responses_total",
				Help:      "Total number of marketplace responses",
			},
			[]string{"host", "status"},
		),
		responseDurations: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_response_duration_seconds",
				Help:      "Duration of marketplace requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"host"},
		),
	}
}

// ObserveParsing counts finished parsing and its failed items.
func (m *Metrics) ObserveParsing(parsingType models.ParsingType, success bool, failedItems int) {
	status := "success"
	if !success {
		status = "failure"
	}

	m.parsings.With(prometheus.Labels{"type": string(parsingType), "status": status}).Inc()
	m.failedItems.With(prometheus.Labels{"type": string(parsingType)}).Add(float64(failedItems))
}

// ObserveNotifications counts sent and failed notifications.
func (m *Metrics) ObserveNotifications(sent, failed int) {
	m.notifications.With(prometheus.Labels{"outcome": "sent"}).Add(float64(sent))
	m.notifications.With(prometheus.Labels{"outcome": "failed"}).Add(float64(failed))
}

// SearchRetry counts retried search page request.
func (m *Metrics) SearchRetry() {
	m.searchRetries.Inc()
}

// ObserveResponse counts marketplace response.
func (m *Metrics) ObserveResponse(host string, status int, seconds float64) {
	m.responses.With(prometheus.Labels{"host": host, "status": strconv.Itoa(status)}).Inc()
	m.responseDurations.With(prometheus.Labels{"host": host}).Observe(seconds)
}
