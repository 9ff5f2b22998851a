// Package errors provides error handling for attrgraph.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for callers
//
// Usage:
//
//	// Wrap with context
//	if err := reg.Register(kind); err != nil {
//	    return errors.Wrap(err, "failed to register kind")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrConflict) {
//	    // duplicate type identity
//	}
//
// Attribute downcasts never produce errors; absence is reported with
// (zero, false). Errors here only come from the registry and graph rewrites.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// AssertionFailedf reports a broken internal invariant.
var AssertionFailedf = crdb.AssertionFailedf

// Sentinel errors. Wrap them with errors.Wrap() to add context while
// keeping errors.Is() working.
var (
	// ErrNotFound indicates an unknown type identity or attribute
	ErrNotFound = New("not found")

	// ErrInvalidRequest indicates malformed input (bad constraint, empty node set)
	ErrInvalidRequest = New("invalid request")

	// ErrConflict indicates two kinds claimed the same type identity
	ErrConflict = New("type identity conflict")

	// ErrTypeMismatch indicates a payload of the wrong Go type for a kind
	ErrTypeMismatch = New("type mismatch")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsInvalidRequestError checks if an error is or wraps ErrInvalidRequest
func IsInvalidRequestError(err error) bool {
	return err != nil && Is(err, ErrInvalidRequest)
}

// IsConflictError checks if an error is or wraps ErrConflict
func IsConflictError(err error) bool {
	return err != nil && Is(err, ErrConflict)
}

// IsTypeMismatchError checks if an error is or wraps ErrTypeMismatch
func IsTypeMismatchError(err error) bool {
	return err != nil && Is(err, ErrTypeMismatch)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrapf(ErrNotFound, format, args...)
}

// NewInvalidRequestError creates an invalid-request error with a formatted message
func NewInvalidRequestError(format string, args ...interface{}) error {
	return Wrapf(ErrInvalidRequest, format, args...)
}

// NewConflictError creates a conflict error with a formatted message
func NewConflictError(format string, args ...interface{}) error {
	return Wrapf(ErrConflict, format, args...)
}

// NewTypeMismatchError creates a type-mismatch error with a formatted message
func NewTypeMismatchError(format string, args ...interface{}) error {
	return Wrapf(ErrTypeMismatch, format, args...)
}
