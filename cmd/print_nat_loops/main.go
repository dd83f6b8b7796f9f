// Command print_nat_loops prints one line "Loop: %header <- %latch" per
// discovered natural loop, followed by an indented space-separated list of
// body block IDs, per spec §6.
package main

import (
	"fmt"
	"os"

	"tacfg/internal/diag"
	"tacfg/internal/dom"
	"tacfg/internal/irparser"
	"tacfg/internal/loopnest"
	"tacfg/internal/render"
)

func main() {
	diag.SetLevel(diag.LevelFromEnv())

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: print_nat_loops <file>")
		os.Exit(1)
	}
	path := os.Args[1]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %s\n", err)
		os.Exit(1)
	}

	cfg, err := irparser.ParseString(path, string(source))
	if err != nil {
		irparser.ReportFatal(string(source), err)
	}

	tree := dom.BuildCHK(cfg)
	info := loopnest.Discover(cfg, tree)
	diag.Printf(1, "found %d natural loops\n", len(info.Loops))

	fmt.Print(render.NatLoops(info))
}
