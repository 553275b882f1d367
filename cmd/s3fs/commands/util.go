package commands

import (
	"context"

	"github.com/s3fs-go/s3fs/internal/logger"
	"github.com/s3fs-go/s3fs/pkg/metrics"
	s3store "github.com/s3fs-go/s3fs/pkg/store/s3"
)

// newStore builds the S3-backed store from the loaded configuration.
func newStore(ctx context.Context) (*s3store.Store, error) {
	client, err := s3store.NewClient(
		ctx,
		cfg.Store.Endpoint,
		cfg.Store.Region,
		cfg.Store.AccessKeyID,
		cfg.Store.SecretAccessKey,
		cfg.Store.ForcePathStyle,
	)
	if err != nil {
		return nil, err
	}

	return s3store.New(client, metrics.NewStoreMetrics()).
		WithTimeout(cfg.Store.RequestTimeout), nil
}

// reportMetrics logs the gathered store metrics when --metrics is set.
func reportMetrics() {
	reg := metrics.GetRegistry()
	if reg == nil {
		return
	}

	families, err := reg.Gather()
	if err != nil {
		logger.Warn("failed to gather metrics", "error", err)
		return
	}
	for _, mf := range families {
		logger.Info("metric", "name", mf.GetName(), "series", len(mf.GetMetric()))
	}
}
