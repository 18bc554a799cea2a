package guard

// NotDefault fails when value equals the zero value of its type,
// e.g. uuid.Nil or an empty struct key.
func NotDefault[T comparable](name string, value T, opts ...Option) (T, error) {
	var zero T
	if value != zero {
		return value, nil
	}
	return value, fail(ErrInvalidArgument, identify(name, "NotDefault"), "must not be default.", opts)
}
