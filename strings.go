package guard

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Unbounded disables the upper bound of ValidLength.
const Unbounded = math.MaxInt

const (
	emptyDescription = "must not be empty."
	blankDescription = "must not be empty or whitespace."
)

// NotEmpty fails when value has zero length.
func NotEmpty[S ~string](name string, value S, opts ...Option) (S, error) {
	if len(value) > 0 {
		return value, nil
	}
	return value, fail(ErrInvalidArgument, identify(name, "NotEmpty"), emptyDescription, opts)
}

// NotEmptyPtr fails when value is nil or points to an empty string.
func NotEmptyPtr[S ~string](name string, value *S, opts ...Option) (*S, error) {
	if value != nil && len(*value) > 0 {
		return value, nil
	}
	name = identify(name, "NotEmptyPtr")
	if value == nil {
		return value, failNull(name, opts)
	}
	return value, fail(ErrInvalidArgument, name, emptyDescription, opts)
}

// NotBlank fails when value is empty or consists only of white space
// as defined by unicode.IsSpace.
func NotBlank[S ~string](name string, value S, opts ...Option) (S, error) {
	if !isBlank(value) {
		return value, nil
	}
	return value, fail(ErrInvalidArgument, identify(name, "NotBlank"), blankDescription, opts)
}

// NotBlankPtr is NotBlank for a string pointer; nil fails first.
func NotBlankPtr[S ~string](name string, value *S, opts ...Option) (*S, error) {
	if value != nil && !isBlank(*value) {
		return value, nil
	}
	name = identify(name, "NotBlankPtr")
	if value == nil {
		return value, failNull(name, opts)
	}
	return value, fail(ErrInvalidArgument, name, blankDescription, opts)
}

// ValidLength fails when value is longer than maxLength or shorter than
// minLength, measured in runes. The upper bound is checked first, so with
// minLength > maxLength a short value still reports the maximum.
// Use Unbounded for no upper limit and 0 for no lower limit.
func ValidLength[S ~string](name string, value S, minLength, maxLength int, opts ...Option) (S, error) {
	description := lengthViolation(value, minLength, maxLength)
	if description == "" {
		return value, nil
	}
	return value, fail(ErrInvalidArgument, identify(name, "ValidLength"), description, opts)
}

// ValidLengthPtr is ValidLength for a string pointer; nil fails first.
func ValidLengthPtr[S ~string](name string, value *S, minLength, maxLength int, opts ...Option) (*S, error) {
	if value == nil {
		return value, failNull(identify(name, "ValidLengthPtr"), opts)
	}
	description := lengthViolation(*value, minLength, maxLength)
	if description == "" {
		return value, nil
	}
	return value, fail(ErrInvalidArgument, identify(name, "ValidLengthPtr"), description, opts)
}

func isBlank[S ~string](value S) bool {
	return strings.TrimSpace(string(value)) == ""
}

func lengthViolation[S ~string](value S, minLength, maxLength int) string {
	length := utf8.RuneCountInString(string(value))
	if length > maxLength {
		return fmt.Sprintf("must not be longer than %d characters.", maxLength)
	}
	if length < minLength {
		return fmt.Sprintf("must not be shorter than %d characters.", minLength)
	}
	return ""
}
