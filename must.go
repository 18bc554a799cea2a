package guard

// Must returns value, or panics with err when err is non-nil. It wraps any
// check for package initialization and tests:
//
//	var port = guard.Must(guard.Positive("port", cfg.Port))
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}
