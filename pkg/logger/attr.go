package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Argument records the name of a checked argument under the key "argument".
func Argument(name string) slog.Attr {
	return slog.String("argument", name)
}

// Kind records an error category under the key "kind".
// If kind is nil, it returns an empty Attr.
func Kind(kind error) slog.Attr {
	if kind == nil {
		return slog.Attr{}
	}
	return slog.String("kind", kind.Error())
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
