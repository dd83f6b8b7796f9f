// Package diag is the repository's one logging seam: a package-level
// verbosity level, read once from TACFG_DEBUG, gating fmt.Printf-style
// tracing the way the teacher gates likelyadjust.go's logLoopStats behind
// f.pass.debug levels. There is no structured logger here because this
// output is read by the person running a cmd/* binary, not by machines.
package diag

import (
	"fmt"
	"os"
	"strconv"
)

var level int

// SetLevel sets the package-level verbosity. cmd/* mains call this once,
// at the start of main, with the level read from TACFG_DEBUG.
func SetLevel(n int) { level = n }

// LevelFromEnv parses TACFG_DEBUG, defaulting to 0 (no tracing) if unset or
// unparseable.
func LevelFromEnv() int {
	n, err := strconv.Atoi(os.Getenv("TACFG_DEBUG"))
	if err != nil {
		return 0
	}
	return n
}

// Printf writes to stderr iff the current level is at least lvl. It never
// touches stdout, which golden-file tests diff byte-for-byte.
func Printf(lvl int, format string, args ...any) {
	if level < lvl {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
