package s3path

import (
	"errors"
	"fmt"
)

// PathError represents a contract violation in the path algebra.
//
// These are pure precondition failures (malformed input, incompatible
// operands, out-of-range indices) as opposed to infrastructure errors;
// nothing in this package performs I/O. Callers decide any recovery
// policy, this layer never retries or coerces.
type PathError struct {
	// Code is the error category
	Code ErrorCode

	// Message is a human-readable error description
	Message string

	// Path is the string form of the path the operation was invoked on
	Path string

	// Other is the string form of the second operand (if applicable)
	Other string
}

// Error implements the error interface.
func (e *PathError) Error() string {
	switch {
	case e.Path != "" && e.Other != "":
		return fmt.Sprintf("%s: %q, %q", e.Message, e.Path, e.Other)
	case e.Path != "":
		return fmt.Sprintf("%s: %q", e.Message, e.Path)
	default:
		return e.Message
	}
}

// ErrorCode represents the category of a path algebra error.
type ErrorCode int

const (
	// ErrInvalidPath indicates malformed textual input: a path marked
	// absolute with no bucket name, or an empty bucket name.
	ErrInvalidPath ErrorCode = iota

	// ErrTypeMismatch indicates an operation received a Path of a foreign
	// concrete kind (not an *S3Path).
	ErrTypeMismatch

	// ErrIllegalRelative indicates Relativize was invoked on or against a
	// relative path.
	ErrIllegalRelative

	// ErrBucketMismatch indicates Relativize was given paths from
	// different buckets.
	ErrBucketMismatch

	// ErrNotAncestor indicates Relativize was asked to relativize against
	// a path above the receiver.
	ErrNotAncestor

	// ErrIllegalState indicates an operation that requires an absolute
	// path was invoked on a relative one.
	ErrIllegalState

	// ErrNotSupported indicates an operation with no object-store
	// counterpart (watch registration, local file conversion).
	ErrNotSupported

	// ErrIndexOutOfRange indicates a name index outside the segment range.
	ErrIndexOutOfRange
)

// NewInvalidPathError creates a PathError for malformed textual input.
func NewInvalidPathError(message, raw string) *PathError {
	return &PathError{
		Code:    ErrInvalidPath,
		Message: message,
		Path:    raw,
	}
}

// NewTypeMismatchError creates a PathError for a foreign Path kind.
func NewTypeMismatchError(other Path) *PathError {
	return &PathError{
		Code:    ErrTypeMismatch,
		Message: fmt.Sprintf("other must be an s3 path, got %T", other),
		Other:   other.String(),
	}
}

// NewIllegalRelativeError creates a PathError for a Relativize operand
// that must be absolute but is not.
func NewIllegalRelativeError(message string, p Path) *PathError {
	return &PathError{
		Code:    ErrIllegalRelative,
		Message: message,
		Path:    p.String(),
	}
}

// NewBucketMismatchError creates a PathError for cross-bucket Relativize.
func NewBucketMismatchError(p, other Path) *PathError {
	return &PathError{
		Code:    ErrBucketMismatch,
		Message: "cannot relativize paths with different buckets",
		Path:    p.String(),
		Other:   other.String(),
	}
}

// NewNotAncestorError creates a PathError for Relativize against a parent.
func NewNotAncestorError(p, other Path) *PathError {
	return &PathError{
		Code:    ErrNotAncestor,
		Message: "cannot relativize against a parent path",
		Path:    p.String(),
		Other:   other.String(),
	}
}

// NewIllegalStateError creates a PathError for operations that require an
// absolute path.
func NewIllegalStateError(message string, p Path) *PathError {
	return &PathError{
		Code:    ErrIllegalState,
		Message: message,
		Path:    p.String(),
	}
}

// NewNotSupportedError creates a PathError for operations object-store
// paths cannot provide.
func NewNotSupportedError(operation string) *PathError {
	return &PathError{
		Code:    ErrNotSupported,
		Message: operation + " is not supported on s3 paths",
	}
}

// NewIndexOutOfRangeError creates a PathError for a bad name index.
func NewIndexOutOfRangeError(index, count int) *PathError {
	return &PathError{
		Code:    ErrIndexOutOfRange,
		Message: fmt.Sprintf("name index %d out of range [0, %d)", index, count),
	}
}

// NewSubpathOutOfRangeError creates a PathError for a bad subpath range.
func NewSubpathOutOfRangeError(begin, end, count int) *PathError {
	return &PathError{
		Code:    ErrIndexOutOfRange,
		Message: fmt.Sprintf("subpath range [%d, %d) out of range [0, %d]", begin, end, count),
	}
}

// CodeOf extracts the ErrorCode from err. The second return is false when
// err is not a *PathError.
func CodeOf(err error) (ErrorCode, bool) {
	var pe *PathError
	if errors.As(err, &pe) {
		return pe.Code, true
	}
	return 0, false
}
