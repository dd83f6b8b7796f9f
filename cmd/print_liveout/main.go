// Command print_liveout prints the LiveOut sets of every fixed-point
// iteration, per spec §6: "prints per-iteration LiveOut sets; the final
// iteration's output is the answer."
package main

import (
	"fmt"
	"os"

	"tacfg/internal/diag"
	"tacfg/internal/irparser"
	"tacfg/internal/liveness"
	"tacfg/internal/render"
)

func main() {
	diag.SetLevel(diag.LevelFromEnv())

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: print_liveout <file>")
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

	init := liveness.ComputeInitial(cfg, cfg.MaxRegister)
	defer init.Free()

	text, result := render.LiveOut(cfg, init)
	defer result.Free()
	fmt.Print(text)
}
