package domain

import "errors"

// Domain errors (no external dependencies). Handlers map these to HTTP
// status codes.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrDuplicate    = errors.New("duplicate resource")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("access denied")
)

// kindError attaches a caller-facing message to a sentinel while keeping
// errors.Is matching against the sentinel.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// NotFound returns an ErrNotFound with a specific message.
func NotFound(msg string) error { return &kindError{kind: ErrNotFound, msg: msg} }

// Duplicate returns an ErrDuplicate with a specific message.
func Duplicate(msg string) error { return &kindError{kind: ErrDuplicate, msg: msg} }

// Invalid returns an ErrInvalidInput with a specific message.
func Invalid(msg string) error { return &kindError{kind: ErrInvalidInput, msg: msg} }

// Unauthorized returns an ErrUnauthorized with a specific message.
func Unauthorized(msg string) error { return &kindError{kind: ErrUnauthorized, msg: msg} }

// Forbidden returns an ErrForbidden with a specific message.
func Forbidden(msg string) error { return &kindError{kind: ErrForbidden, msg: msg} }
