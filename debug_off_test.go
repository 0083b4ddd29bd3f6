//go:build !dequedebug

package deque

import (
	"go/build"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestNormalBuildDoesNotImportLogger(t *testing.T) {
	c := qt.New(t)
	pkg, err := build.ImportDir(".", 0)
	c.Assert(err, qt.IsNil)
	c.Assert(pkg.Imports, qt.Not(qt.Contains), "github.com/lucasgdosr/deque/v2/internal/logger")
}
