// Package logger builds *slog.Logger values with functional options and
// provides attribute helpers that keep key names consistent.
//
// The guard package accepts a logger through guard.WithLogger. On each
// violated precondition it derives a logger from that one with
//
//	logger.New(logger.WithHandler(l.Handler()), logger.WithComponent("guard"))
//
// and writes a debug record keyed by the helpers in attr.go (Argument, Kind,
// Error, Component), so log pipelines can filter on them.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(slog.String("service", "billing")),
//	)
//
//	amount, err := guard.Positive("amount", amount, guard.WithLogger(log))
//
// # Configuration
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format (JSON by default).
//   - WithLevel – minimum slog.Level (INFO by default).
//   - WithOutput – destination writer (os.Stdout by default).
//   - WithHandler – wrap an existing slog.Handler instead of building one.
//   - WithAttr / WithComponent – static attributes attached to every record.
//
// # Error Handling
//
// Error produces an attribute only when the supplied error is non-nil, so
//
//	log.Debug("check finished", logger.Error(err))
//
// needs no surrounding nil check.
package logger
