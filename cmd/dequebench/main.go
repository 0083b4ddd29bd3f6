// Command dequebench measures the cost model of the copy-on-write deque:
// amortized appends while shared references come and go, and interior edits at
// different offsets.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
