// VideoTube - Video Sharing Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videotube

package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an AppError. The API layer maps each kind to a status.
type ErrorKind int

const (
	// KindInternal is a persistence failure or anything unexpected.
	KindInternal ErrorKind = iota
	// KindValidation is missing or malformed input.
	KindValidation
	// KindNotFound is a referenced entity that does not exist.
	KindNotFound
	// KindForbidden is a mutation by someone other than the owner.
	KindForbidden
	// KindConflict is a duplicate name or membership.
	KindConflict
	// KindUnauthorized is a missing or invalid access token.
	KindUnauthorized
	// KindUpstream is a media store failure.
	KindUpstream
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindUpstream:
		return "upstream"
	default:
		return "internal"
	}
}

// AppError is an operation failure carrying a client-facing message, the
// operation that failed and the wrapped cause. Details holds per-field
// validation messages.
type AppError struct {
	Kind    ErrorKind
	Message string
	Op      string
	Err     error
	Details []string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// InvalidInput reports missing or malformed input.
func InvalidInput(op, message string, details ...string) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Op: op, Details: details}
}

// NotFound reports a missing entity.
func NotFound(op, message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message, Op: op}
}

// Forbidden reports an ownership violation.
func Forbidden(op, message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message, Op: op}
}

// Conflict reports a uniqueness violation.
func Conflict(op, message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message, Op: op}
}

// Unauthorized reports a missing or rejected access token.
func Unauthorized(op, message string, err error) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message, Op: op, Err: err}
}

// Upstream reports a media store failure.
func Upstream(op string, err error, message string) *AppError {
	return &AppError{Kind: KindUpstream, Message: message, Op: op, Err: err}
}

// Internal reports a persistence or unexpected failure.
func Internal(op string, err error, message string) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Op: op, Err: err}
}

// KindOf returns the kind of the first AppError in err's chain, or
// KindInternal when there is none.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
