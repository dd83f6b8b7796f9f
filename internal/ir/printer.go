package ir

import (
	"fmt"
	"strings"
)

// Print renders a CFG back into the textual IR grammar from spec §6, one
// block label per line followed by its instructions, in block-index order.
// This is the format apply_lvn reprints after rewriting, and what golden
// files under testdata/ are diffed against byte-for-byte.
func Print(c *CFG) string {
	var sb strings.Builder
	for _, b := range c.Blocks {
		fmt.Fprintf(&sb, ".%d:\n", b.ID)
		for _, inst := range b.Insts {
			fmt.Fprintf(&sb, "%s\n", inst)
		}
	}
	return sb.String()
}
