package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for local debugging.
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*config)

// WithLevel sets the minimum level of a handler built by New.
func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets output format.
// Panics for invalid formats: a misconfigured logger should stop startup.
func WithFormat(f Format) Option {
	return func(c *config) {
		if f != FormatJSON && f != FormatText {
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
		c.format = f
	}
}

// WithTextFormatter is WithFormat(FormatText).
func WithTextFormatter() Option {
	return WithFormat(FormatText)
}

// WithJSONFormatter is WithFormat(FormatJSON).
func WithJSONFormatter() Option {
	return WithFormat(FormatJSON)
}

// WithOutput sets the destination of a handler built by New.
// Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithHandler makes New wrap h instead of building a handler, so records
// keep the destination, level and attributes h already has. Level, format
// and output options are then ignored. Nil handlers are ignored.
func WithHandler(h slog.Handler) Option {
	return func(c *config) {
		if h != nil {
			c.handler = h
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithComponent tags every record with the component name.
func WithComponent(name string) Option {
	return func(c *config) {
		if name != "" {
			c.attrs = append(c.attrs, Component(name))
		}
	}
}

type config struct {
	handler slog.Handler
	level   slog.Level
	format  Format
	output  io.Writer
	attrs   []slog.Attr
}

// New creates a slog.Logger. Without WithHandler it writes JSON at INFO
// level to os.Stdout unless options say otherwise.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	handler := cfg.handler
	if handler == nil {
		handler = cfg.newHandler()
	}
	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}
	return slog.New(handler)
}

func (c *config) newHandler() slog.Handler {
	opts := &slog.HandlerOptions{Level: c.level}
	if c.format == FormatText {
		return slog.NewTextHandler(c.output, opts)
	}
	return slog.NewJSONHandler(c.output, opts)
}
