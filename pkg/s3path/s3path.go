// Package s3path implements a hierarchical path value over a flat S3-style
// object store (bucket + object key).
//
// A path is an immutable pair of an optional bucket name and an ordered
// list of non-empty key segments. Absolute paths carry a bucket
// ("/bucket/a/b"); relative paths do not ("a/b"). All algebra operations
// (Resolve, Relativize, Parent, ...) are pure: they only read the receiver
// and allocate new values, so a path is safe for concurrent use. The one
// exception is the attributes cache, which a store-access layer may swap
// in after construction; it is advisory metadata and never participates in
// equality, hashing or ordering.
package s3path

import (
	"hash/fnv"
	"strings"
	"sync/atomic"

	"github.com/s3fs-go/s3fs/pkg/s3path/attribute"
)

// Separator is the path separator character. Segments never contain it.
const Separator = "/"

// Path is the generic hierarchical-path protocol implemented by S3 paths.
//
// Operations taking another Path reject foreign implementations with a
// PathError of code ErrTypeMismatch; there is exactly one concrete kind in
// this package (*S3Path).
type Path interface {
	// IsAbsolute reports whether the path carries a bucket.
	IsAbsolute() bool

	// Root returns the bucket root for absolute paths, nil for relative ones.
	Root() Path

	// FileName returns the last segment as a relative path. For a
	// bucket-only path the bucket name acts as the file name.
	FileName() Path

	// Parent returns the path without its last segment, or nil if there is
	// nothing above the receiver.
	Parent() Path

	// NameCount returns the number of segments. The bucket is not a segment.
	NameCount() int

	// Name returns the segment at index as a relative path.
	Name(index int) (Path, error)

	// Subpath returns the segments in [begin, end) as a relative path.
	Subpath(begin, end int) (Path, error)

	// StartsWith reports whether the receiver begins with other.
	StartsWith(other Path) bool

	// EndsWith reports whether the receiver ends with other.
	EndsWith(other Path) bool

	// Normalize returns the receiver: segments are store keys, never
	// traversal tokens, so there is nothing to normalize away.
	Normalize() Path

	// Resolve resolves other against the receiver.
	Resolve(other Path) (Path, error)

	// ResolveSibling resolves other against the receiver's parent.
	ResolveSibling(other Path) (Path, error)

	// Relativize constructs the relative path from the receiver to other.
	Relativize(other Path) (Path, error)

	// Names returns each segment as a single-segment relative path, in order.
	Names() []Path

	// URI renders the path as "s3://bucket/key". The second return is
	// false when the path has no bucket.
	URI() (string, bool)

	// ToAbsolutePath returns the receiver if absolute and fails otherwise.
	ToAbsolutePath() (Path, error)

	// ToRealPath is ToAbsolutePath; there are no links to resolve.
	ToRealPath() (Path, error)

	// Register would register the path with a watch service. Object stores
	// cannot be watched, so this always fails with ErrNotSupported.
	Register() error

	// ToFile would convert the path to a local filesystem path. There is
	// no local file behind an object-store path; always ErrNotSupported.
	ToFile() (string, error)

	// Compare orders paths lexically by their string form.
	Compare(other Path) int

	// Equal reports bucket and segment equality with a path of the same kind.
	Equal(other Path) bool

	// Hash returns a hash consistent with Equal.
	Hash() uint64

	String() string
}

// S3Path is the concrete Path over an S3 bucket and key. The zero value is
// the empty relative path.
type S3Path struct {
	// bucket is empty for relative paths. Bucket names cannot be empty, so
	// "" uniquely marks a relative path.
	bucket string

	// segments of the key, each non-empty and separator-free.
	segments []string

	// attrs is the advisory metadata cache. Swapped atomically, excluded
	// from Equal/Hash/Compare.
	attrs atomic.Pointer[attribute.Attributes]
}

var _ Path = (*S3Path)(nil)

// New parses a textual path, optionally followed by extra segments to
// append. The first string must be of the form "/bucket", "/bucket/key" or
// just "key" (relative). Repeated separators are collapsed and a trailing
// separator is ignored, so "/bucket//key" and "/bucket/key/" both parse;
// "" parses to the empty relative path. "//key" and "/" fail: the bucket
// name is mandatory in absolute form and must be non-empty.
func New(first string, more ...string) (*S3Path, error) {
	var bucket string
	parts := strings.Split(first, Separator)

	if strings.HasSuffix(first, Separator) {
		parts = parts[:len(parts)-1]
	}

	if strings.HasPrefix(first, Separator) { // absolute path
		parts = parts[1:]
		if len(parts) < 1 {
			return nil, NewInvalidPathError("path must start with bucket name", first)
		}
		if parts[0] == "" {
			return nil, NewInvalidPathError("bucket name must be not empty", first)
		}
		bucket = parts[0]
		parts = parts[1:]
	}

	for _, m := range more {
		parts = append(parts, strings.Split(m, Separator)...)
	}

	return newPath(bucket, normalizeSegments(parts)), nil
}

// NewFromSegments builds a path from an explicit bucket and raw segments.
// An empty bucket yields a relative path. Separator characters are
// stripped from every segment and empty segments are dropped.
func NewFromSegments(bucket string, segments ...string) *S3Path {
	return newPath(strings.ReplaceAll(bucket, Separator, ""), normalizeSegments(segments))
}

// newPath is the canonical constructor. segments must already be
// normalized; ownership transfers to the new value.
func newPath(bucket string, segments []string) *S3Path {
	return &S3Path{bucket: bucket, segments: segments}
}

// normalizeSegments strips separator characters from every raw segment and
// drops the empties, collapsing "a//b" style input to clean key parts.
func normalizeSegments(raw []string) []string {
	segments := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.ReplaceAll(s, Separator, "")
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// Bucket returns the bucket name, or "" for relative paths.
func (p *S3Path) Bucket() string {
	return p.bucket
}

// Key returns the flat object key: the segments joined by the separator,
// with no leading or trailing separator. The bucket is not part of the key.
func (p *S3Path) Key() string {
	return strings.Join(p.segments, Separator)
}

// IsAbsolute reports whether the path carries a bucket.
func (p *S3Path) IsAbsolute() bool {
	return p.bucket != ""
}

// NameCount returns the number of key segments.
func (p *S3Path) NameCount() int {
	return len(p.segments)
}

// String renders "/bucket/seg1/seg2" for absolute paths and
// "seg1/seg2" for relative ones. A bucket-only path renders "/bucket";
// the empty relative path renders "".
func (p *S3Path) String() string {
	if !p.IsAbsolute() {
		return strings.Join(p.segments, Separator)
	}

	var b strings.Builder
	b.WriteString(Separator)
	b.WriteString(p.bucket)
	for _, s := range p.segments {
		b.WriteString(Separator)
		b.WriteString(s)
	}
	return b.String()
}

// URI renders the path as "s3://bucket/seg1/seg2". A bucket-only path
// renders "s3://bucket/". Relative paths have no URI: the second return
// is false.
func (p *S3Path) URI() (string, bool) {
	if !p.IsAbsolute() {
		return "", false
	}
	return "s3://" + p.bucket + Separator + strings.Join(p.segments, Separator), true
}

// ToAbsolutePath returns the receiver if it is absolute.
func (p *S3Path) ToAbsolutePath() (Path, error) {
	if p.IsAbsolute() {
		return p, nil
	}
	return nil, NewIllegalStateError("relative path cannot be made absolute", p)
}

// ToRealPath is ToAbsolutePath: object stores have no links to resolve.
func (p *S3Path) ToRealPath() (Path, error) {
	return p.ToAbsolutePath()
}

// Register always fails: object-store paths cannot be watched.
func (p *S3Path) Register() error {
	return NewNotSupportedError("watch registration")
}

// ToFile always fails: there is no local file behind an object-store path.
func (p *S3Path) ToFile() (string, error) {
	return "", NewNotSupportedError("local file conversion")
}

// Compare orders paths lexically by their string form.
func (p *S3Path) Compare(other Path) int {
	return strings.Compare(p.String(), other.String())
}

// Equal reports whether other is an *S3Path with the same bucket (both may
// be absent) and the same segments in the same order. The attributes cache
// is ignored.
func (p *S3Path) Equal(other Path) bool {
	o, ok := other.(*S3Path)
	if !ok || o == nil {
		return false
	}
	if p.bucket != o.bucket || len(p.segments) != len(o.segments) {
		return false
	}
	for i := range p.segments {
		if p.segments[i] != o.segments[i] {
			return false
		}
	}
	return true
}

// Hash returns an FNV-1a hash of the bucket and segments, consistent with
// Equal. The attributes cache is ignored.
func (p *S3Path) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(p.bucket))
	h.Write([]byte{0})
	for _, s := range p.segments {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// Attributes returns the cached object metadata, or nil when nothing has
// been cached. The value may be stale; it is advisory only.
func (p *S3Path) Attributes() *attribute.Attributes {
	return p.attrs.Load()
}

// SetAttributes replaces the cached object metadata. Pass nil to
// invalidate. Intended for the store-access layer that fetched them.
func (p *S3Path) SetAttributes(attrs *attribute.Attributes) {
	p.attrs.Store(attrs)
}
