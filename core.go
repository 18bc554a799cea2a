package guard

import (
	"fmt"

	"github.com/dmitrymomot/guard/pkg/callsite"
	"github.com/dmitrymomot/guard/pkg/logger"
)

// DefaultName is used in messages when no name was given and the call-site
// expression could not be recovered.
const DefaultName = "value"

// Numeric is the constraint satisfied by every built-in integer and floating
// point type and by named types derived from them.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// identify returns name, or the source text of the value argument of the
// exported check fn when name is empty. It must be called directly from the
// body of fn so the caller frame is at a fixed depth.
func identify(name, fn string) string {
	if name != "" {
		return name
	}
	// frames: callsite.Argument, identify, fn, caller of fn
	if expr := callsite.Argument(2, fn, 1); expr != "" {
		return expr
	}
	return DefaultName
}

// fail builds the error for a violated precondition. description is the
// default message without the quoted name prefix.
func fail(kind error, name, description string, opts []Option) error {
	cfg := newConfig(opts)

	message := cfg.message
	if message == "" {
		message = fmt.Sprintf("'%s' %s", name, description)
	}

	var err error
	if cfg.factory != nil {
		err = cfg.factory(name, message)
	}
	if err == nil {
		err = &ArgumentError{Kind: kind, Name: name, Message: message}
	}

	if cfg.logger != nil {
		log := logger.New(logger.WithHandler(cfg.logger.Handler()), logger.WithComponent("guard"))
		log.Debug("precondition violated",
			logger.Argument(name),
			logger.Kind(kind),
			logger.Error(err),
		)
	}

	return err
}

const nullDescription = "must not be null."

func failNull(name string, opts []Option) error {
	return fail(ErrNullArgument, name, nullDescription, opts)
}
