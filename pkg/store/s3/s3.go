// Package s3 implements the object-store boundary against Amazon S3 or an
// S3-compatible service.
//
// This file contains the store type, client construction and shared
// helpers; the read operations live in stat.go and list.go.
package s3

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/s3fs-go/s3fs/pkg/store"
)

// StoreMetrics observes S3 operations. Implementations must be safe for
// concurrent use. A nil StoreMetrics disables collection with no overhead.
type StoreMetrics interface {
	// ObserveOperation records one S3 call with its duration and outcome.
	ObserveOperation(operation string, duration time.Duration, err error)
}

// Store is the S3-backed ObjectStore. Safe for concurrent use.
type Store struct {
	client  *s3.Client
	metrics StoreMetrics

	// timeout bounds each store operation; zero means no bound beyond the
	// caller's context.
	timeout time.Duration
}

var _ store.ObjectStore = (*Store)(nil)

// New creates a Store around a configured S3 client. metrics may be nil.
func New(client *s3.Client, metrics StoreMetrics) *Store {
	return &Store{client: client, metrics: metrics}
}

// WithTimeout returns a copy of the store with a per-operation timeout
// applied on top of the caller's context. The receiver is unchanged.
func (s *Store) WithTimeout(d time.Duration) *Store {
	clone := *s
	clone.timeout = d
	return &clone
}

// NewClient creates an S3 client from configuration parameters. Empty
// accessKeyID selects the default AWS credential chain; endpoint overrides
// the S3 endpoint for S3-compatible services.
func NewClient(
	ctx context.Context,
	endpoint,
	region,
	accessKeyID,
	secretAccessKey string,
	forcePathStyle bool,
) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if accessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKeyID,
			secretAccessKey,
			"", // session token (empty for static credentials)
		)))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = &endpoint
		}
		o.UsePathStyle = forcePathStyle
	})

	return client, nil
}

// opContext applies the per-operation timeout, when one is set.
func (s *Store) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return ctx, func() {}
}

// observe reports one finished S3 call to the metrics collector.
func (s *Store) observe(operation string, start time.Time, err error) {
	if s.metrics != nil {
		s.metrics.ObserveOperation(operation, time.Since(start), err)
	}
}
