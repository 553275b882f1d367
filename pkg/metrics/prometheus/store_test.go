package prometheus

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s3fs-go/s3fs/pkg/metrics"
)

func TestObserveOperation(t *testing.T) {
	metrics.InitRegistry()

	m := metrics.NewStoreMetrics()
	require.NotNil(t, m)

	m.ObserveOperation("HeadObject", 12*time.Millisecond, nil)
	m.ObserveOperation("HeadObject", 5*time.Millisecond, errors.New("boom"))

	sm, ok := m.(*storeMetrics)
	require.True(t, ok)

	assert.Equal(t, 1.0, testutil.ToFloat64(sm.operationsTotal.WithLabelValues("HeadObject", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sm.operationsTotal.WithLabelValues("HeadObject", "error")))
}
