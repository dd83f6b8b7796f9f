// Command print_dom_fronts prints dominators, then each block's dominance
// frontier, per spec §6: "n: b1 b2 …" (space-separated member block IDs).
package main

import (
	"fmt"
	"os"

	"tacfg/internal/diag"
	"tacfg/internal/dom"
	"tacfg/internal/domfront"
	"tacfg/internal/irparser"
	"tacfg/internal/render"
)

func main() {
	diag.SetLevel(diag.LevelFromEnv())

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: print_dom_fronts <file>")
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
	fronts := domfront.Compute(cfg, tree)
	defer fronts.Free()
	diag.Printf(1, "computed dominance frontiers over %d blocks\n", cfg.NumBlocks())

	fmt.Print(render.DomFronts(cfg, tree, fronts))
}
