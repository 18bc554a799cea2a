package guard

import "fmt"

// Each check returns as soon as its success condition holds, so a NaN
// operand fails every ordering check.

// NotZero fails when value is zero.
func NotZero[T Numeric](name string, value T, opts ...Option) (T, error) {
	var zero T
	if value != zero {
		return value, nil
	}
	return value, fail(ErrArgumentOutOfRange, identify(name, "NotZero"), "must not be zero.", opts)
}

// NotNegative fails when value is below zero.
func NotNegative[T Numeric](name string, value T, opts ...Option) (T, error) {
	var zero T
	if value >= zero {
		return value, nil
	}
	return value, fail(ErrArgumentOutOfRange, identify(name, "NotNegative"), "must not be negative.", opts)
}

// Positive fails when value is zero or below.
func Positive[T Numeric](name string, value T, opts ...Option) (T, error) {
	var zero T
	if value > zero {
		return value, nil
	}
	return value, fail(ErrArgumentOutOfRange, identify(name, "Positive"), "must be positive.", opts)
}

// NotEqualTo fails when value equals other.
func NotEqualTo[T Numeric](name string, value, other T, opts ...Option) (T, error) {
	if value != other {
		return value, nil
	}
	return value, fail(ErrArgumentOutOfRange, identify(name, "NotEqualTo"),
		fmt.Sprintf("must not be equal to '%v'.", other), opts)
}

// EqualTo fails when value differs from other. Its default message is the
// same as NotEqualTo's; pass WithMessage for a more precise description.
func EqualTo[T Numeric](name string, value, other T, opts ...Option) (T, error) {
	if value == other {
		return value, nil
	}
	return value, fail(ErrArgumentOutOfRange, identify(name, "EqualTo"),
		fmt.Sprintf("must not be equal to '%v'.", other), opts)
}

// NotLessThan fails when value < other.
func NotLessThan[T Numeric](name string, value, other T, opts ...Option) (T, error) {
	if value >= other {
		return value, nil
	}
	return value, fail(ErrArgumentOutOfRange, identify(name, "NotLessThan"),
		fmt.Sprintf("must not be less than '%v'.", other), opts)
}

// GreaterThan fails when value <= other.
func GreaterThan[T Numeric](name string, value, other T, opts ...Option) (T, error) {
	if value > other {
		return value, nil
	}
	return value, fail(ErrArgumentOutOfRange, identify(name, "GreaterThan"),
		fmt.Sprintf("must not be less than or equal to '%v'.", other), opts)
}

// NotGreaterThan fails when value > other.
func NotGreaterThan[T Numeric](name string, value, other T, opts ...Option) (T, error) {
	if value <= other {
		return value, nil
	}
	return value, fail(ErrArgumentOutOfRange, identify(name, "NotGreaterThan"),
		fmt.Sprintf("must not be greater than '%v'.", other), opts)
}

// LessThan fails when value >= other.
func LessThan[T Numeric](name string, value, other T, opts ...Option) (T, error) {
	if value < other {
		return value, nil
	}
	return value, fail(ErrArgumentOutOfRange, identify(name, "LessThan"),
		fmt.Sprintf("must not be greater than or equal to '%v'.", other), opts)
}
