package s3

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/s3fs-go/s3fs/internal/logger"
	"github.com/s3fs-go/s3fs/pkg/s3path"
	"github.com/s3fs-go/s3fs/pkg/s3path/attribute"
)

// List returns the direct children of the prefix behind p, in the store's
// lexical order. Key prefixes come back as directory-like paths, objects
// as regular ones, each with attributes pre-cached.
func (s *Store) List(ctx context.Context, p *s3path.S3Path) ([]*s3path.S3Path, error) {
	if _, err := p.ToAbsolutePath(); err != nil {
		return nil, err
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	prefix := p.Key()
	if prefix != "" {
		prefix += "/"
	}

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket:    aws.String(p.Bucket()),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String("/"),
	})

	var children []*s3path.S3Path
	for paginator.HasMorePages() {
		start := time.Now()
		page, err := paginator.NextPage(ctx)
		s.observe("ListObjectsV2", start, err)
		if err != nil {
			return nil, fmt.Errorf("list %q: %w", p, err)
		}

		for _, cp := range page.CommonPrefixes {
			name := childName(aws.ToString(cp.Prefix), prefix)
			if name == "" {
				continue
			}
			child, err := resolveChild(p, name)
			if err != nil {
				return nil, err
			}
			child.SetAttributes(&attribute.Attributes{Key: child.Key(), Directory: true})
			children = append(children, child)
		}

		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if key == prefix {
				// directory marker for the listed prefix itself
				continue
			}
			name := childName(key, prefix)
			if name == "" {
				continue
			}
			child, err := resolveChild(p, name)
			if err != nil {
				return nil, err
			}
			child.SetAttributes(objectAttributes(child.Key(), obj.Size, obj.LastModified, obj.ETag))
			children = append(children, child)
		}
	}

	logger.Debug("listed prefix", "path", p.String(), "children", len(children))
	return children, nil
}

// childName extracts the direct-child segment from a listed key or common
// prefix, given the prefix that was listed.
func childName(key, prefix string) string {
	return strings.TrimSuffix(strings.TrimPrefix(key, prefix), "/")
}

// resolveChild resolves the single-segment name against the listed path.
func resolveChild(p *s3path.S3Path, name string) (*s3path.S3Path, error) {
	resolved, err := p.ResolveString(name)
	if err != nil {
		return nil, fmt.Errorf("resolving listed key %q: %w", name, err)
	}
	child, ok := resolved.(*s3path.S3Path)
	if !ok {
		return nil, fmt.Errorf("resolving listed key %q: unexpected path kind %T", name, resolved)
	}
	return child, nil
}
