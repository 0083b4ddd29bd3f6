//go:build dequedebug

package deque

import (
	"fmt"

	"github.com/lucasgdosr/deque/v2/internal/logger"
)

// debugChecks enables header validation, mutability assertions and Debug
// logging of growth and gap plans.
const debugChecks = true

// assertf panics when cond is false.
func assertf(cond bool, msg string, args ...any) {
	if cond {
		return
	}
	logger.Error("deque: invariant violated: "+msg, args...)
	panic(fmt.Sprintf("deque: invariant violated: %s %v", msg, args))
}

func debugLog(msg string, args ...any) {
	logger.Debug("deque: "+msg, args...)
}
