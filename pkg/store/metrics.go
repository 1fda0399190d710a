package store

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

const (
	opFetch  = "fetch"
	opStore  = "store"
	opRemove = "remove"
	opClear  = "clear"
	opKeys   = "keys"
)

// Operation metrics are registered on the default registry; exposing them
// (or not) is the embedding application's concern.
var (
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hoard_store_operations_total",
			Help: "Total number of storage operations",
		},
		[]string{"operation", "status"},
	)

	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hoard_store_operation_duration_seconds",
			Help:    "Storage operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// observe records one operation; use with defer and a named error return:
//
//	defer observe(opFetch, time.Now())(&err)
func observe(op string, start time.Time) func(*error) {
	return func(err *error) {
		status := statusSuccess
		if *err != nil {
			status = statusError
		}
		operationsTotal.WithLabelValues(op, status).Inc()
		operationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}
