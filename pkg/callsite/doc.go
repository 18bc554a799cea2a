// Package callsite recovers the source text of an argument at a call site.
//
// Go has no compile-time way to capture the text of the expression passed to
// a function. This package approximates it at run time: the caller frame is
// resolved with runtime.Caller, the caller's source file is parsed, and the
// call expression on that line is located with an ast inspector. The
// argument is printed back with go/printer, so `cfg.Port` or `len(items)`
// come back as written (modulo gofmt spacing).
//
// # Usage
//
//	func NotZero(name string, v int) error {
//	    if v != 0 {
//	        return nil
//	    }
//	    if name == "" {
//	        // skip 1: the caller of NotZero
//	        name = callsite.Argument(1, "NotZero", 1)
//	    }
//	    return fmt.Errorf("'%s' must not be zero", name)
//	}
//
// # Limitations
//
// Resolution needs the source file on disk at the path recorded in the
// binary. Builds using -trimpath, binaries shipped without sources, and
// calls made through function values all resolve to the empty string.
// When several calls to the same function share a line, the call cannot be
// identified and the result is the empty string as well. Callers are
// expected to fall back to a placeholder name.
//
// Each source file is parsed once and kept in memory for the life of the
// process; later lookups only walk the cached syntax tree. Argument still
// resolves a stack frame and walks the tree, so it belongs on failure paths.
package callsite
