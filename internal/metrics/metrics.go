package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"skillswap/internal/store"
)

// Transition outcome label values.
const (
	OutcomeOK                = "ok"
	OutcomeNotFound          = "not_found"
	OutcomeInvalidTransition = "invalid_transition"
	OutcomeInvalidRating     = "invalid_rating"
	OutcomePendingFeedback   = "pending_feedback"
)

var (
	requestsDesc = prometheus.NewDesc(
		"skillswap_requests",
		"Current swap request count by status",
		[]string{"status"},
		nil,
	)

	transitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillswap_request_transitions_total",
			Help: "Total lifecycle transition attempts by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)
)

// StatusCollector is a custom Prometheus collector that reads swap request
// counts from the store on each scrape.
type StatusCollector struct {
	store *store.Store
}

// Describe sends the metric descriptor to the channel.
func (c *StatusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- requestsDesc
}

// Collect counts the stored requests per status and emits them as gauges.
func (c *StatusCollector) Collect(ch chan<- prometheus.Metric) {
	for status, count := range c.store.CountRequestsByStatus() {
		ch <- prometheus.MustNewConstMetric(
			requestsDesc,
			prometheus.GaugeValue,
			float64(count),
			status,
		)
	}
}

var initOnce sync.Once

// Init registers the custom collector and the transition counter.
// Must be called once at startup.
func Init(s *store.Store) {
	initOnce.Do(func() {
		prometheus.MustRegister(&StatusCollector{store: s})
		prometheus.MustRegister(transitionsTotal)
	})
}

// RecordTransition counts one lifecycle transition attempt.
func RecordTransition(operation, outcome string) {
	transitionsTotal.WithLabelValues(operation, outcome).Inc()
}
