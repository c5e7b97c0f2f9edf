// Package metrics defines the Prometheus instrumentation for the booking
// engine. All collectors are registered on the default registry and exposed
// by the /metrics endpoint wired in cmd/api/main.go.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TripsPlanned counts planning operations by outcome
	// (planned / rejected).
	TripsPlanned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transport_trips_planned_total",
			Help: "Total number of trip planning operations, by outcome.",
		},
		[]string{"outcome"},
	)

	// TripsCompleted counts successfully completed trips.
	TripsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "transport_trips_completed_total",
			Help: "Total number of trips completed.",
		},
	)
)
