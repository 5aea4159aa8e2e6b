// Package observe provides subscriber decorators for storex stores.
package observe

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/comalice/storex"
)

// LoggingSubscriber wraps inner and logs every transition it is handed.
// A nil inner is allowed; the transition is then only logged.
func LoggingSubscriber[S, C any](inner storex.Subscriber[S, C], log *zap.SugaredLogger) storex.Subscriber[S, C] {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return func(state, previous S, command C) {
		log.Debugw("State transition",
			"previous", previous,
			"state", state,
			"command", fmt.Sprintf("%T", command),
		)
		if inner == nil {
			return
		}
		start := time.Now()
		inner(state, previous, command)
		log.Debugw("Subscriber completed", "elapsed", time.Since(start))
	}
}
