// Package prometheus implements the store metrics collectors on the
// process Prometheus registry. Importing it registers the constructors
// with pkg/metrics.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/s3fs-go/s3fs/pkg/metrics"
	s3store "github.com/s3fs-go/s3fs/pkg/store/s3"
)

func init() {
	metrics.RegisterStoreMetricsConstructor(newStoreMetrics)
}

// storeMetrics is the Prometheus implementation of s3store.StoreMetrics.
type storeMetrics struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
}

func newStoreMetrics() s3store.StoreMetrics {
	reg := metrics.GetRegistry()

	return &storeMetrics{
		operationsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "s3fs_store_operations_total",
				Help: "Total number of S3 operations by operation type and status",
			},
			[]string{"operation", "status"},
		),
		operationDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "s3fs_store_operation_duration_milliseconds",
				Help: "Duration of S3 operations in milliseconds",
				Buckets: []float64{
					10,   // fast metadata operations
					50,
					100,
					500,
					1000, // slow listings
					5000,
				},
			},
			[]string{"operation"},
		),
	}
}

// ObserveOperation implements s3store.StoreMetrics.
func (m *storeMetrics) ObserveOperation(operation string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.operationsTotal.WithLabelValues(operation, status).Inc()
	m.operationDuration.WithLabelValues(operation).Observe(float64(duration.Milliseconds()))
}
