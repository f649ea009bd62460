package omdb

import (
	"errors"
	"fmt"
)

// Error kinds returned by this package. Match them with errors.Is.
var (
	// ErrMissingAPIKey indicates the client was built without an API key.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrMissingCriteria indicates a request without enough criteria to
	// identify a title or run a search.
	ErrMissingCriteria = errors.New("missing criteria")

	// ErrRemote indicates the OMDb API itself reported a failure.
	ErrRemote = errors.New("remote API error")

	// ErrUnrecognizedType indicates a single-title response whose type
	// discriminator matched none of the known media types.
	ErrUnrecognizedType = errors.New("unrecognized media type")

	// ErrInvalidField indicates a required field failed parsing during
	// record construction.
	ErrInvalidField = errors.New("invalid field")
)

// Error is the single error type produced by this package. It carries a
// human-readable message and wraps one of the kind sentinels above.
type Error struct {
	Kind    error
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the kind sentinel to errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
