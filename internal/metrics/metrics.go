// Package metrics defines the Prometheus collectors for the allocation
// service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Label values for AllocationsTotal.
const (
	StatusOK      = "ok"
	StatusInvalid = "invalid"
	StatusError   = "error"
)

// Collectors for the allocation service.
var (
	AllocationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "icu_allocations_total",
		Help: "Cumulative number of allocation requests by outcome.",
	}, []string{"status"})
	AllocationDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "icu_allocation_duration_seconds",
		Help:    "Time spent in the allocation solver.",
		Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
	})
	DatasetRowsLoadedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "icu_dataset_rows_loaded_total",
		Help: "Cumulative number of hospital records loaded from the dataset source.",
	})
)

// Collectors returns all service collectors for registration.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		AllocationsTotal,
		AllocationDurationSeconds,
		DatasetRowsLoadedTotal,
	}
}
