// Package loopnest discovers natural loops from back edges (spec §4.6).
// It is grounded on the teacher's own loop-nest file (likelyadjust.go),
// adapted from Bourdoncle's SCC-based construction down to spec §4.6's
// simpler back-edge + predecessor-walk formulation — the teacher's own
// SCC machinery (scc.go) is kept alongside as SCCs, used only as a
// cross-check (see VerifySCCConsistency), per SPEC_FULL.md §7.
package loopnest

import (
	"tacfg/internal/dom"
	"tacfg/internal/ir"
)

// Loop is a natural loop induced by a single back edge Latch -> Header.
type Loop struct {
	Header ir.BlockId
	Latch  ir.BlockId
	Body   map[ir.BlockId]bool
}

// Info is the ordered sequence of loops discovered in a CFG. Two loops may
// share a header (one per back edge) — spec §4.6/§9 leaves them
// unmerged, a documented future improvement rather than an invariant.
type Info struct {
	Loops []*Loop
}

// Discover finds every natural loop in cfg, given its dominator tree.
// Discovery order is outer loop over header ascending, inner loop over
// preds in listed order (spec §4.6), which callers rely on for
// deterministic diffs.
func Discover(cfg *ir.CFG, tree *dom.Tree) *Info {
	info := &Info{}
	for _, header := range cfg.Blocks {
		for _, latch := range header.Preds {
			if !tree.ReachableFromEntry(latch) {
				continue
			}
			if !tree.Dominates(header.ID, latch) {
				continue
			}
			info.Loops = append(info.Loops, &Loop{
				Header: header.ID,
				Latch:  latch,
				Body:   naturalLoopBody(cfg, header.ID, latch),
			})
		}
	}
	return info
}

// naturalLoopBody computes the natural loop's body: start with {header},
// push latch, and repeatedly pop a block, add it if new, and push its
// predecessors — the set of all blocks on any path from latch back to
// header without crossing header (spec §4.6).
func naturalLoopBody(cfg *ir.CFG, header, latch ir.BlockId) map[ir.BlockId]bool {
	body := map[ir.BlockId]bool{header: true}
	stack := []ir.BlockId{latch}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if body[p] {
			continue
		}
		body[p] = true
		for _, pred := range cfg.Block(p).Preds {
			stack = append(stack, pred)
		}
	}
	return body
}
