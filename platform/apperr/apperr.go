// Package apperr provides standardized domain error types for the application.
// Core services return these typed errors and the per-record pipeline boundary
// decides whether to continue, abandon the record, or abort the run.
package apperr

import (
	"errors"
	"fmt"
)

// Kind represents the category of error.
type Kind int

const (
	// KindUnknown is the default error kind when none is specified.
	KindUnknown Kind = iota
	// KindNotFound indicates a directory entry was not found.
	KindNotFound
	// KindTransient indicates a network or service failure on a read
	// operation; the lookup result is treated as empty and processing continues.
	KindTransient
	// KindRejected indicates a write operation was rejected by the directory
	// service; the record is abandoned and logged to the failure artifact.
	KindRejected
	// KindEmailConflict indicates an email could be registered neither as
	// secondary nor as primary; fatal for the record, never for the run.
	KindEmailConflict
	// KindConfig indicates invalid or missing configuration; fatal at startup.
	KindConfig
	// KindInternal indicates an unexpected internal error.
	KindInternal
)

// Error is a domain error with a typed Kind for boundary handling.
type Error struct {
	Kind    Kind
	Message string
	Op      string      // Operation that failed (optional)
	Err     error       // Underlying error (optional)
	Details interface{} // Raw service response context (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new domain error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithOp returns the error with the operation set.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// WithDetails returns the error with raw response context attached.
func (e *Error) WithDetails(details interface{}) *Error {
	e.Details = details
	return e
}

// KindOf extracts the Kind from an error chain, KindUnknown if untyped.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// IsTransient reports whether the error is a transient read failure.
func IsTransient(err error) bool {
	return KindOf(err) == KindTransient
}

// IsNotFound reports whether the error indicates a missing entry.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// Convenience constructors for common error types.

// NotFound creates a not found error.
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Transient creates a transient read-failure error.
func Transient(message string, err error) *Error {
	return Wrap(KindTransient, message, err)
}

// Rejected creates a rejected-write error.
func Rejected(message string, err error) *Error {
	return Wrap(KindRejected, message, err)
}

// EmailConflict creates an unrecoverable email-assignment error.
func EmailConflict(message string) *Error {
	return New(KindEmailConflict, message)
}

// Config creates a configuration or input error.
func Config(message string, err error) *Error {
	return Wrap(KindConfig, message, err)
}

// Internal creates an internal error.
func Internal(message string, err error) *Error {
	return Wrap(KindInternal, message, err)
}
