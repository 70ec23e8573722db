// Package metrics defines and registers the custom Prometheus metrics of the
// rental API and exposes them to the core through Recorder. It is the single
// source of truth for metric names, labels and help strings.
//
// Metrics register with the default Prometheus registry at package init;
// HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vidly"

// ── Return metrics ────────────────────────────────────────────────────────────

// ReturnsProcessedTotal counts rentals closed by the return workflow.
var ReturnsProcessedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "returns_processed_total",
		Help:      "Total number of rentals successfully returned and restocked.",
	},
)

// ReturnsRejectedTotal counts return requests that did not close a rental.
// Label:
//   - reason: "not_found", "already_processed", "in_progress" or "persistence"
var ReturnsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "returns_rejected_total",
		Help:      "Total number of return requests rejected, by reason.",
	},
	[]string{"reason"},
)

// RentalFeesTotal accumulates the fees charged on return.
var RentalFeesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rental_fees_total",
		Help:      "Sum of rental fees charged by processed returns.",
	},
)

// ReturnProcessingDuration measures the return workflow end-to-end.
// Label:
//   - outcome: "returned" or "rejected"
var ReturnProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "return_processing_duration_seconds",
		Help:      "Duration of the return workflow from lookup to restock.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)

// ── Rental metrics ────────────────────────────────────────────────────────────

// RentalsCreatedTotal counts checkouts.
var RentalsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rentals_created_total",
		Help:      "Total number of rentals checked out.",
	},
)

// Recorder implements ports.Metrics on top of the package metrics.
type Recorder struct{}

func (Recorder) ReturnProcessed(fee float64, elapsed time.Duration) {
	ReturnsProcessedTotal.Inc()
	RentalFeesTotal.Add(fee)
	ReturnProcessingDuration.WithLabelValues("returned").Observe(elapsed.Seconds())
}

func (Recorder) ReturnRejected(reason string, elapsed time.Duration) {
	ReturnsRejectedTotal.WithLabelValues(reason).Inc()
	ReturnProcessingDuration.WithLabelValues("rejected").Observe(elapsed.Seconds())
}

func (Recorder) RentalCreated() {
	RentalsCreatedTotal.Inc()
}
