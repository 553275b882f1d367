package s3

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/s3fs-go/s3fs/internal/logger"
	"github.com/s3fs-go/s3fs/pkg/s3path"
	"github.com/s3fs-go/s3fs/pkg/s3path/attribute"
	"github.com/s3fs-go/s3fs/pkg/store"
)

// Stat fetches the attributes behind p and caches them on p.
//
// A bucket-only path stats the bucket itself. For keyed paths HeadObject
// is tried first; when no object exists, a one-key prefix probe decides
// whether the path is a directory-like prefix. Anything else wraps
// store.ErrNotFound.
func (s *Store) Stat(ctx context.Context, p *s3path.S3Path) (*attribute.Attributes, error) {
	if _, err := p.ToAbsolutePath(); err != nil {
		return nil, err
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	bucket := p.Bucket()
	key := p.Key()

	if key == "" {
		start := time.Now()
		_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
		s.observe("HeadBucket", start, err)
		if err != nil {
			var notFound *types.NotFound
			if errors.As(err, &notFound) {
				return nil, fmt.Errorf("%w: %s", store.ErrNotFound, p)
			}
			return nil, fmt.Errorf("head bucket %q: %w", bucket, err)
		}

		attrs := &attribute.Attributes{Directory: true}
		p.SetAttributes(attrs)
		return attrs, nil
	}

	start := time.Now()
	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	s.observe("HeadObject", start, err)

	if err == nil {
		attrs := objectAttributes(key, head.ContentLength, head.LastModified, head.ETag)
		p.SetAttributes(attrs)
		logger.Debug("stat object", "path", p.String(), "size", attrs.Size)
		return attrs, nil
	}

	var notFound *types.NotFound
	if !errors.As(err, &notFound) {
		return nil, fmt.Errorf("head object %q: %w", p, err)
	}

	// No object behind the key; probe for children to detect a prefix.
	prefix := key + "/"
	start = time.Now()
	page, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(bucket),
		Prefix:  aws.String(prefix),
		MaxKeys: aws.Int32(1),
	})
	s.observe("ListObjectsV2", start, err)
	if err != nil {
		return nil, fmt.Errorf("probe prefix %q: %w", prefix, err)
	}

	if aws.ToInt32(page.KeyCount) == 0 {
		return nil, fmt.Errorf("%w: %s", store.ErrNotFound, p)
	}

	attrs := &attribute.Attributes{Key: key, Directory: true}
	p.SetAttributes(attrs)
	logger.Debug("stat prefix", "path", p.String())
	return attrs, nil
}

// objectAttributes maps a HEAD or LIST result onto attribute values.
func objectAttributes(key string, size *int64, lastModified *time.Time, etag *string) *attribute.Attributes {
	return &attribute.Attributes{
		Key:          key,
		Size:         aws.ToInt64(size),
		LastModified: aws.ToTime(lastModified),
		ETag:         aws.ToString(etag),
	}
}
