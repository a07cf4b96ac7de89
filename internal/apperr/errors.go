// Package apperr provides the error kinds surfaced to callers of the
// analyzer core.
//
// It re-exports github.com/cockroachdb/errors so call sites get stack
// traces and wrapping from one import:
//
//	if _, err := store.Get(name); err != nil {
//	    return errors.Wrapf(err, "report %q", name)
//	}
//
//	if errors.Is(err, apperr.ErrNotFound) {
//	    // render "no such dataset"
//	}
package apperr

import (
	crdb "github.com/cockroachdb/errors"
)

var (
	New    = crdb.New
	Newf   = crdb.Newf
	Wrap   = crdb.Wrap
	Wrapf  = crdb.Wrapf
	Is     = crdb.Is
	As     = crdb.As
	Unwrap = crdb.Unwrap

	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	GetAllHints = crdb.GetAllHints
)

// Error kinds. Wrap these to add context; test with Is.
var (
	// ErrNotFound means the dataset name is not registered.
	ErrNotFound = New("not found")

	// ErrSchemaMismatch means a required column is absent or has the
	// wrong kind for the requested operation.
	ErrSchemaMismatch = New("schema mismatch")

	// ErrInvalidArgument means a parameter is out of range (bin count < 1,
	// unknown export format).
	ErrInvalidArgument = New("invalid argument")
)

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...interface{}) error {
	return Wrapf(ErrNotFound, format, args...)
}

// SchemaMismatchf wraps ErrSchemaMismatch with a formatted message.
func SchemaMismatchf(format string, args ...interface{}) error {
	return Wrapf(ErrSchemaMismatch, format, args...)
}

// InvalidArgumentf wraps ErrInvalidArgument with a formatted message.
func InvalidArgumentf(format string, args ...interface{}) error {
	return Wrapf(ErrInvalidArgument, format, args...)
}

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsSchemaMismatch reports whether err is or wraps ErrSchemaMismatch.
func IsSchemaMismatch(err error) bool {
	return err != nil && Is(err, ErrSchemaMismatch)
}

// IsInvalidArgument reports whether err is or wraps ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	return err != nil && Is(err, ErrInvalidArgument)
}
