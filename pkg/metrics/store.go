package metrics

import (
	s3store "github.com/s3fs-go/s3fs/pkg/store/s3"
)

// NewStoreMetrics creates a Prometheus-backed StoreMetrics instance.
//
// Returns nil if metrics are not enabled (InitRegistry not called); a nil
// collector passed to the store disables observation with zero overhead.
//
// Example usage:
//
//	metrics.InitRegistry()
//	st := s3store.New(client, metrics.NewStoreMetrics())
func NewStoreMetrics() s3store.StoreMetrics {
	if !IsEnabled() {
		return nil
	}
	return newPrometheusStoreMetrics()
}

// newPrometheusStoreMetrics is implemented in pkg/metrics/prometheus.
// The indirection avoids an import cycle while keeping the API here.
var newPrometheusStoreMetrics func() s3store.StoreMetrics

// RegisterStoreMetricsConstructor registers the Prometheus constructor.
// Called by pkg/metrics/prometheus during package initialization.
func RegisterStoreMetricsConstructor(constructor func() s3store.StoreMetrics) {
	newPrometheusStoreMetrics = constructor
}
