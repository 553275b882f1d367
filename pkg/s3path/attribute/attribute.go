// Package attribute holds the opaque object metadata that a store-access
// layer may cache on a path value. The path algebra never reads these
// fields; they exist so callers can avoid repeated HEAD requests when a
// path has already been resolved against the store.
package attribute

import "time"

// Attributes describes one object (or key prefix) as last observed in the
// store. Instances are immutable once built; a fresh value replaces a stale
// one wholesale.
type Attributes struct {
	// Key is the flat object key the attributes were fetched for.
	Key string

	// Size is the object size in bytes. Zero for key prefixes.
	Size int64

	// LastModified is the store's modification timestamp. Zero for key
	// prefixes, which have no object behind them.
	LastModified time.Time

	// ETag is the store's entity tag, when the store reported one.
	ETag string

	// Directory reports whether the key acts as a prefix with children
	// rather than an object.
	Directory bool
}

// IsDirectory reports whether the attributes describe a key prefix.
func (a *Attributes) IsDirectory() bool {
	return a.Directory
}

// IsRegular reports whether the attributes describe a plain object.
func (a *Attributes) IsRegular() bool {
	return !a.Directory
}
