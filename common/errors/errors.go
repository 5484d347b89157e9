// Package errors defines the typed error kinds shared across the relay.
// Handlers map kinds to HTTP status codes at the boundary; everything in
// between wraps and propagates.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an error for boundary handling
type Kind string

const (
	// Upstream covers transport failures, non-2xx responses and undecodable
	// payloads from the hosted image service
	Upstream Kind = "upstream"
	// NotFound covers unresolvable lookups: unknown image or unknown variant
	NotFound Kind = "not_found"
	// Config covers missing or unusable credentials and settings
	Config Kind = "config"
	// CacheRead covers cache store read failures (distinct from a miss)
	CacheRead Kind = "cache_read"
)

// Error carries a kind alongside the underlying error
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// Unwrap exposes the underlying error to errors.Is/As
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a kinded error from a message
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Err: stderrors.New(msg)}
}

// Newf creates a kinded error from a format string
func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Wrap annotates err with a message and a kind. Returns nil if err is nil.
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: fmt.Errorf("%s: %w", msg, err)}
}

// KindOf returns the kind of err, or "" when err carries none
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsNotFound reports whether err is a NotFound-kind error
func IsNotFound(err error) bool {
	return KindOf(err) == NotFound
}

// IsUpstream reports whether err is an Upstream-kind error
func IsUpstream(err error) bool {
	return KindOf(err) == Upstream
}

// IsConfig reports whether err is a Config-kind error
func IsConfig(err error) bool {
	return KindOf(err) == Config
}

// IsCacheRead reports whether err is a CacheRead-kind error
func IsCacheRead(err error) bool {
	return KindOf(err) == CacheRead
}
