//go:build !dequedebug

package deque

const debugChecks = false

// Call sites are guarded by debugChecks, so these never run.
func assertf(bool, string, ...any) {}

func debugLog(string, ...any) {}
