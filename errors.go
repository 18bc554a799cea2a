package guard

import (
	"errors"
	"fmt"
)

// Error kinds. Every error built by this package without a custom factory
// wraps exactly one of them, so callers can branch with errors.Is.
var (
	// ErrNullArgument is returned when a required value is nil.
	ErrNullArgument = errors.New("null argument")

	// ErrArgumentOutOfRange is returned when a numeric comparison fails.
	ErrArgumentOutOfRange = errors.New("argument out of range")

	// ErrInvalidArgument is returned when a value has the wrong shape:
	// empty, blank, or of invalid length.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ArgumentError describes a violated precondition.
type ArgumentError struct {
	Kind    error
	Name    string
	Message string
}

// Error formats the message followed by the parameter annotation,
// e.g. "'port' must not be zero. (Parameter 'port')".
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s (Parameter '%s')", e.Message, e.Name)
}

func (e *ArgumentError) Unwrap() error {
	return e.Kind
}

// Kind returns the error kind carried by err, or nil when err was not
// produced by a default guard failure.
func Kind(err error) error {
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return argErr.Kind
	}
	return nil
}

// IsArgumentError reports whether err is or wraps an *ArgumentError.
func IsArgumentError(err error) bool {
	if err == nil {
		return false
	}

	var argErr *ArgumentError
	return errors.As(err, &argErr)
}
