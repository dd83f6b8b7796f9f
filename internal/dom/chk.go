// Package dom builds dominator trees over a CFG via two independent
// algorithms — Cooper/Harvey/Kennedy's iterative data-flow fixed point
// (this file) and Lengauer-Tarjan's semidominator-based construction
// (lt.go) — so the benchmark harness (bench_test.go) can cross-check them
// against each other, per spec §4.3/§4.4.
package dom

import (
	"tacfg/internal/dfs"
	"tacfg/internal/ir"
)

// Tree is the result of a dominator-tree construction: Idom[b] is b's
// immediate dominator for every reachable non-entry b; Idom[0] == 0 (the
// entry self-dominates); unreachable blocks retain ir.UNDEFINED.
type Tree struct {
	cfg  *ir.CFG
	idom []ir.BlockId
}

// BuildCHK computes the dominator tree via the Cooper/Harvey/Kennedy
// iterative algorithm (spec §4.3). It requires every block be reachable
// from the entry; callers that cannot guarantee this should use only the
// reachable subgraph, since unreached blocks are never visited by
// postorder and so never get a defined Idom.
func BuildCHK(cfg *ir.CFG) *Tree {
	n := cfg.NumBlocks()
	rpo := dfs.ReversePostOrder(cfg)
	poNum := dfs.Numbering(cfg)

	idom := make([]ir.BlockId, n)
	for i := range idom {
		idom[i] = ir.UNDEFINED
	}
	entry := ir.BlockId(0)
	idom[entry] = entry

	intersect := func(b, c ir.BlockId) ir.BlockId {
		for b != c {
			for poNum[b] < poNum[c] {
				b = idom[b]
			}
			for poNum[c] < poNum[b] {
				c = idom[c]
			}
		}
		return b
	}

	changed := true
	for changed {
		changed = false
		for _, b := range rpo {
			if b == entry {
				continue
			}
			preds := cfg.Block(b).Preds
			if len(preds) == 0 {
				continue
			}
			// Seeded with the first predecessor whose Idom is already
			// defined (spec §4.3 step 3 / §9): in reverse postorder a
			// reachable b always has one (its DFS parent), while preds[0]
			// itself may still be undefined if it reaches b by a back edge.
			newIdom := ir.UNDEFINED
			for _, p := range preds {
				if idom[p] == ir.UNDEFINED {
					continue
				}
				if newIdom == ir.UNDEFINED {
					newIdom = p
				} else {
					newIdom = intersect(p, newIdom)
				}
			}
			if newIdom != idom[b] {
				idom[b] = newIdom
				changed = true
			}
		}
	}
	return &Tree{cfg: cfg, idom: idom}
}

// Idom returns b's immediate dominator.
func (t *Tree) Idom(b ir.BlockId) ir.BlockId { return t.idom[b] }

// IdomSlice returns the raw idom array, indexed by BlockId. Callers must
// not mutate it.
func (t *Tree) IdomSlice() []ir.BlockId { return t.idom }

// Dominates reports whether a dominates b, walking idom links from b up to
// the entry. The entry dominates only itself and reachable blocks;
// unreachable b (idom[b] == ir.UNDEFINED) is dominated by nothing.
func (t *Tree) Dominates(a, b ir.BlockId) bool {
	if t.idom[b] == ir.UNDEFINED {
		return false
	}
	for {
		if b == a {
			return true
		}
		if b == 0 {
			return a == 0
		}
		b = t.idom[b]
	}
}

// ReachableFromEntry reports whether b is reachable from the entry, i.e.
// dominates(entry, b).
func (t *Tree) ReachableFromEntry(b ir.BlockId) bool {
	return t.Dominates(0, b)
}
