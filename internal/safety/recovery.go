// Package safety guards batch and goroutine work in the CLI so a single
// malformed header set cannot take down a whole run.
package safety

import (
	"runtime/debug"

	"go.uber.org/zap"
)

// Recoverer wraps goroutines with panic recovery, logging the panic and
// stack trace via zap instead of letting it crash the process.
type Recoverer struct {
	logger *zap.Logger
}

// NewRecoverer builds a Recoverer that logs to logger.
func NewRecoverer(logger *zap.Logger) *Recoverer {
	return &Recoverer{logger: logger}
}

// SafeGo runs fn in its own goroutine, recovering and logging any panic
// under the given name instead of propagating it.
func (r *Recoverer) SafeGo(name string, fn func()) {
	go r.wrap(name, fn)()
}

func (r *Recoverer) wrap(name string, fn func()) func() {
	return func() {
		defer func() {
			if p := recover(); p != nil {
				r.logger.Error("goroutine panic recovered",
					zap.String("goroutine", name),
					zap.Any("panic", p),
					zap.ByteString("stack", debug.Stack()),
				)
			}
		}()
		fn()
	}
}

// Recover is called via defer in a non-goroutine context (e.g. a single
// header set within a batch) to stop a panic from aborting the whole run.
func (r *Recoverer) Recover(location string) {
	if p := recover(); p != nil {
		r.logger.Error("panic recovered",
			zap.String("location", location),
			zap.Any("panic", p),
			zap.ByteString("stack", debug.Stack()),
		)
	}
}
