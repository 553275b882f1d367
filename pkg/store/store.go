// Package store defines the read-only object-store boundary consumed by
// callers that resolve paths against a real store. The path model itself
// never calls this layer; it only receives cached attributes from it.
package store

import (
	"context"
	"errors"

	"github.com/s3fs-go/s3fs/pkg/s3path"
	"github.com/s3fs-go/s3fs/pkg/s3path/attribute"
)

// ErrNotFound indicates no object or key prefix exists behind a path.
var ErrNotFound = errors.New("object not found")

// ObjectStore resolves absolute paths against a store.
//
// Implementations cache fetched attributes on the path values they are
// given or return, via SetAttributes; that cache is the only channel back
// into the path model.
type ObjectStore interface {
	// Stat fetches the attributes of the object or key prefix behind p.
	// p must be absolute. Wraps ErrNotFound when nothing is there.
	Stat(ctx context.Context, p *s3path.S3Path) (*attribute.Attributes, error)

	// List returns the direct children of the prefix behind p, each with
	// attributes pre-cached. p must be absolute.
	List(ctx context.Context, p *s3path.S3Path) ([]*s3path.S3Path, error)
}
