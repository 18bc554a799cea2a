package guard

import "iter"

// NotEmptySlice fails with ErrNullArgument when value is nil and with
// ErrInvalidArgument when it has no elements.
func NotEmptySlice[S ~[]E, E any](name string, value S, opts ...Option) (S, error) {
	if len(value) > 0 {
		return value, nil
	}
	name = identify(name, "NotEmptySlice")
	if value == nil {
		return value, failNull(name, opts)
	}
	return value, fail(ErrInvalidArgument, name, emptyDescription, opts)
}

// NotEmptyMap fails with ErrNullArgument when value is nil and with
// ErrInvalidArgument when it has no entries.
func NotEmptyMap[M ~map[K]V, K comparable, V any](name string, value M, opts ...Option) (M, error) {
	if len(value) > 0 {
		return value, nil
	}
	name = identify(name, "NotEmptyMap")
	if value == nil {
		return value, failNull(name, opts)
	}
	return value, fail(ErrInvalidArgument, name, emptyDescription, opts)
}

// NotEmptySeq fails with ErrNullArgument when value is nil and with
// ErrInvalidArgument when it yields nothing. At most one element is pulled
// to decide, then iteration stops. The returned sequence is value itself,
// so value must be safe to iterate again; single-use sequences lose the
// probed element.
func NotEmptySeq[T any](name string, value iter.Seq[T], opts ...Option) (iter.Seq[T], error) {
	if value == nil {
		return value, failNull(identify(name, "NotEmptySeq"), opts)
	}
	for range value {
		return value, nil
	}
	return value, fail(ErrInvalidArgument, identify(name, "NotEmptySeq"), emptyDescription, opts)
}

// NotEmptySeq2 is NotEmptySeq for key-value sequences.
func NotEmptySeq2[K, V any](name string, value iter.Seq2[K, V], opts ...Option) (iter.Seq2[K, V], error) {
	if value == nil {
		return value, failNull(identify(name, "NotEmptySeq2"), opts)
	}
	for range value {
		return value, nil
	}
	return value, fail(ErrInvalidArgument, identify(name, "NotEmptySeq2"), emptyDescription, opts)
}
