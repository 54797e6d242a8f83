package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "skyfleet",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		},
		[]string{"route", "code"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "skyfleet",
			Name:      "bookings_created_total",
			Help:      "Bookings confirmed.",
		},
	)

	paymentsVerified = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "skyfleet",
			Name:      "payments_verified_total",
			Help:      "Payment verification outcomes.",
		},
		[]string{"outcome"},
	)

	penaltiesRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "skyfleet",
			Name:      "penalties_recorded_total",
			Help:      "Penalties recorded by reason.",
		},
		[]string{"reason"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated, paymentsVerified, penaltiesRecorded)
	})
}

// IncHTTP increments the request counter for a route and status code.
func IncHTTP(route, code string) {
	httpRequests.WithLabelValues(route, code).Inc()
}

// IncBookingCreated records a confirmed booking.
func IncBookingCreated() {
	bookingsCreated.Inc()
}

// IncPaymentVerified records a verification outcome (success, mismatch,
// duplicate, error).
func IncPaymentVerified(outcome string) {
	paymentsVerified.WithLabelValues(outcome).Inc()
}

// IncPenaltyRecorded records a penalty by reason.
func IncPenaltyRecorded(reason string) {
	penaltiesRecorded.WithLabelValues(reason).Inc()
}
