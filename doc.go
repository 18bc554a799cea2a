// Package guard provides generic precondition checks for function and method
// boundaries, replacing repeated manual if-blocks with one-line guard
// clauses.
//
// Every check takes the name of the argument, the value, optional
// constraint parameters and Options. It returns the value unchanged together
// with a nil error when the precondition holds, and the value together with
// a descriptive error otherwise:
//
//	func NewServer(addr string, port int, handler http.Handler) (*Server, error) {
//	    if _, err := guard.NotBlank("addr", addr); err != nil {
//	        return nil, err
//	    }
//	    if _, err := guard.Positive("port", port); err != nil {
//	        return nil, err
//	    }
//	    if _, err := guard.NotNil("handler", handler); err != nil {
//	        return nil, err
//	    }
//	    ...
//	}
//
// # Checks
//
//   - Presence: NotNil
//   - Numbers: NotZero, NotNegative, Positive, NotEqualTo, EqualTo,
//     NotLessThan, GreaterThan, NotGreaterThan, LessThan
//   - Comparable values: NotDefault
//   - Strings: NotEmpty, NotBlank, ValidLength and their *Ptr forms
//   - Collections: NotEmptySlice, NotEmptyMap, NotEmptySeq, NotEmptySeq2
//
// Checks that need a value to be present (pointer string checks and all
// collection checks) report nil before anything else.
//
// # Argument names
//
// The name is used only for messages. When it is empty the package recovers
// the source text of the value argument from the caller's source file, so
//
//	guard.NotZero("", cfg.Retries)
//
// fails with "'cfg.Retries' must not be zero. (Parameter 'cfg.Retries')".
// Recovery runs on the failure path only and needs the source file on disk;
// when it is not available, or when several calls to the same check share
// a line, DefaultName ("value") is used. Each source file is parsed on its
// first failure and the syntax tree is kept in memory for the life of the
// process. Pass explicit names in code that ships without sources and in
// hot paths that reject untrusted input.
//
// # Error Handling
//
// Without options a failure is an *ArgumentError whose Kind is one of
// ErrNullArgument, ErrArgumentOutOfRange or ErrInvalidArgument:
//
//	_, err := guard.NotEmptySlice("items", items)
//	switch {
//	case errors.Is(err, guard.ErrNullArgument):
//	    // items was nil
//	case errors.Is(err, guard.ErrInvalidArgument):
//	    // items was empty
//	}
//
// WithMessage replaces the message but keeps the parameter annotation.
// WithErrorFactory replaces the error entirely: whatever the factory
// returns is returned as is, bypassing the kinds above.
// WithLogger reports every violation to a *slog.Logger at debug level.
//
// Must turns any check into an assertion that panics:
//
//	var workers = guard.Must(guard.Positive("workers", runtime.NumCPU()))
//
// # Concurrency
//
// Checks keep no state and are safe for concurrent use.
package guard
