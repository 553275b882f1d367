package s3path

// This file holds the pure hierarchy algebra. Every operation reads the
// receiver and returns a new value; the receiver is never mutated.

// Root returns the bucket root (same bucket, no segments) for absolute
// paths. Relative paths have no root: nil.
func (p *S3Path) Root() Path {
	if p.IsAbsolute() {
		return newPath(p.bucket, nil)
	}
	return nil
}

// FileName returns the last segment as a relative single-segment path.
// A bucket-only path has no key segments, so the bucket name acts as its
// file name; the empty relative path yields an empty relative path.
func (p *S3Path) FileName() Path {
	if len(p.segments) > 0 {
		return newPath("", p.segments[len(p.segments)-1:])
	}
	if p.bucket != "" {
		return newPath("", []string{p.bucket})
	}
	return newPath("", nil)
}

// Parent returns the path without its last segment. There is no parent
// when there are no segments, or when a bare relative segment has nothing
// above it: nil.
func (p *S3Path) Parent() Path {
	if len(p.segments) == 0 {
		return nil
	}
	if len(p.segments) == 1 && p.bucket == "" {
		return nil
	}
	return newPath(p.bucket, p.segments[:len(p.segments)-1])
}

// Name returns the segment at index as a relative single-segment path.
func (p *S3Path) Name(index int) (Path, error) {
	if index < 0 || index >= len(p.segments) {
		return nil, NewIndexOutOfRangeError(index, len(p.segments))
	}
	return newPath("", p.segments[index:index+1]), nil
}

// Subpath returns the segments in [begin, end) as a relative path. The
// bucket is stripped from the result.
func (p *S3Path) Subpath(begin, end int) (Path, error) {
	if begin < 0 || end > len(p.segments) || begin > end {
		return nil, NewSubpathOutOfRangeError(begin, end, len(p.segments))
	}
	return newPath("", p.segments[begin:end]), nil
}

// StartsWith reports whether the receiver begins with other: same bucket
// situation (both absent, or both present and equal) and other's segments
// matching the receiver's head position by position. The empty relative
// path is a prefix only of itself. Foreign Path kinds never match.
func (p *S3Path) StartsWith(other Path) bool {
	if other.NameCount() > p.NameCount() {
		return false
	}

	o, ok := other.(*S3Path)
	if !ok {
		return false
	}

	if len(o.segments) == 0 && o.bucket == "" && (len(p.segments) != 0 || p.bucket != "") {
		return false
	}

	if (o.bucket != "" && o.bucket != p.bucket) || (o.bucket == "" && p.bucket != "") {
		return false
	}

	for i := range o.segments {
		if o.segments[i] != p.segments[i] {
			return false
		}
	}
	return true
}

// StartsWithString parses other and reports whether the receiver begins
// with it.
func (p *S3Path) StartsWithString(other string) (bool, error) {
	o, err := New(other)
	if err != nil {
		return false, err
	}
	return p.StartsWith(o), nil
}

// EndsWith reports whether the receiver ends with other, comparing
// segments from the tail backward. A bucket on other must match the
// receiver's; a bucket only on the receiver is allowed. The empty relative
// path is a suffix only of an empty receiver.
func (p *S3Path) EndsWith(other Path) bool {
	if other.NameCount() > p.NameCount() {
		return false
	}

	if other.NameCount() == 0 && p.NameCount() != 0 {
		return false
	}

	o, ok := other.(*S3Path)
	if !ok {
		return false
	}

	if o.bucket != "" && o.bucket != p.bucket {
		return false
	}

	for i, j := len(o.segments)-1, len(p.segments)-1; i >= 0 && j >= 0; i, j = i-1, j-1 {
		if o.segments[i] != p.segments[j] {
			return false
		}
	}
	return true
}

// EndsWithString parses other and reports whether the receiver ends
// with it.
func (p *S3Path) EndsWithString(other string) (bool, error) {
	o, err := New(other)
	if err != nil {
		return false, err
	}
	return p.EndsWith(o), nil
}

// Normalize returns the receiver unchanged: segments are opaque store
// keys, "." and ".." are never interpreted as traversal tokens.
func (p *S3Path) Normalize() Path {
	return p
}

// Resolve resolves other against the receiver. An absolute other wins
// unchanged; a relative other's segments are appended to the receiver's;
// an empty relative other yields the receiver.
func (p *S3Path) Resolve(other Path) (Path, error) {
	o, ok := other.(*S3Path)
	if !ok {
		return nil, NewTypeMismatchError(other)
	}

	if o.IsAbsolute() {
		return o, nil
	}
	if len(o.segments) == 0 {
		return p, nil
	}

	return newPath(p.bucket, concatSegments(p.segments, o.segments)), nil
}

// ResolveString parses other and resolves it against the receiver.
func (p *S3Path) ResolveString(other string) (Path, error) {
	o, err := New(other)
	if err != nil {
		return nil, err
	}
	return p.Resolve(o)
}

// ResolveSibling resolves other against the receiver's parent. When the
// receiver has no parent, or other is absolute, other wins unchanged; an
// empty relative other yields the parent itself.
func (p *S3Path) ResolveSibling(other Path) (Path, error) {
	o, ok := other.(*S3Path)
	if !ok {
		return nil, NewTypeMismatchError(other)
	}

	parent := p.Parent()
	if parent == nil || o.IsAbsolute() {
		return o, nil
	}
	if len(o.segments) == 0 {
		return parent, nil
	}

	return newPath(p.bucket, concatSegments(p.segments[:len(p.segments)-1], o.segments)), nil
}

// ResolveSiblingString parses other and resolves it against the
// receiver's parent.
func (p *S3Path) ResolveSiblingString(other string) (Path, error) {
	o, err := New(other)
	if err != nil {
		return nil, err
	}
	return p.ResolveSibling(o)
}

// Relativize constructs the relative path from the receiver to other, so
// that p.Resolve(p.Relativize(q)) equals q for a descendant q. Equal paths
// relativize to the empty relative path. Both paths must be absolute,
// share a bucket, and the receiver must not have more segments than other.
//
// The common-prefix length counts position-wise equal segments over the
// whole receiver rather than stopping at the first mismatch; for genuine
// ancestor/descendant pairs the two are identical.
func (p *S3Path) Relativize(other Path) (Path, error) {
	o, ok := other.(*S3Path)
	if !ok {
		return nil, NewTypeMismatchError(other)
	}

	if p.Equal(o) {
		return newPath("", nil), nil
	}

	if !p.IsAbsolute() {
		return nil, NewIllegalRelativeError("path is already relative", p)
	}
	if !o.IsAbsolute() {
		return nil, NewIllegalRelativeError("cannot relativize against a relative path", o)
	}
	if p.bucket != o.bucket {
		return nil, NewBucketMismatchError(p, o)
	}
	if len(p.segments) > len(o.segments) {
		return nil, NewNotAncestorError(p, o)
	}

	start := 0
	for i := range p.segments {
		if p.segments[i] == o.segments[i] {
			start++
		}
	}
	return newPath("", o.segments[start:]), nil
}

// Names returns each segment as a single-segment relative path, in order.
// The returned slice is fresh; iterating it and resolving each element in
// turn rebuilds the receiver's segment list.
func (p *S3Path) Names() []Path {
	names := make([]Path, len(p.segments))
	for i := range p.segments {
		names[i] = newPath("", p.segments[i:i+1])
	}
	return names
}

// concatSegments returns a fresh slice holding a followed by b, so the
// result never aliases a stored segment slice.
func concatSegments(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
