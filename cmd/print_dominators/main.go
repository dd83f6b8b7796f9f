// Command print_dominators prints each reachable block's dominator chain,
// per spec §6: "b: b idom(b) idom(idom(b)) … 0".
package main

import (
	"fmt"
	"os"

	"tacfg/internal/diag"
	"tacfg/internal/dom"
	"tacfg/internal/irparser"
	"tacfg/internal/render"
)

func main() {
	diag.SetLevel(diag.LevelFromEnv())

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: print_dominators <file>")
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
	diag.Printf(1, "computed dominator tree over %d blocks\n", cfg.NumBlocks())

	fmt.Print(render.Dominators(cfg, tree))
}
