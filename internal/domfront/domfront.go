// Package domfront computes dominance frontiers from a dominator tree,
// the classical insertion-site set for SSA phi functions (spec §4.5).
package domfront

import (
	"tacfg/internal/bitset"
	"tacfg/internal/dom"
	"tacfg/internal/ir"
)

// Frontiers holds one bitset per block, all carved from a single arena
// (spec §3's "one backing allocation" requirement for sets-of-sets).
type Frontiers struct {
	arena *bitset.Arena
	sets  []*bitset.BitSet
}

// Of returns block n's dominance frontier.
func (f *Frontiers) Of(n ir.BlockId) *bitset.BitSet { return f.sets[n] }

// Free releases the frontiers' single backing allocation.
func (f *Frontiers) Free() { f.arena.Free() }

// Compute builds DF[n] for every block n, per spec §4.5: for each join
// point n (more than one predecessor), walk upward from each predecessor p
// via idom, adding n to DF[runner] for every runner visited until
// runner == idom[n]. Non-join blocks contribute nothing.
func Compute(cfg *ir.CFG, tree *dom.Tree) *Frontiers {
	n := cfg.NumBlocks()
	arena := bitset.NewArena(n, n)
	sets := make([]*bitset.BitSet, n)
	for i := range sets {
		sets[i] = arena.View(i)
	}

	for _, b := range cfg.Blocks {
		if len(b.Preds) <= 1 {
			continue
		}
		idomN := tree.Idom(b.ID)
		for _, p := range b.Preds {
			if !tree.ReachableFromEntry(p) {
				continue
			}
			for runner := p; runner != idomN; runner = tree.Idom(runner) {
				sets[runner].Add(int(b.ID))
			}
		}
	}

	return &Frontiers{arena: arena, sets: sets}
}
