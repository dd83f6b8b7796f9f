package dom

import "tacfg/internal/ir"

// ltBlockInfo is the per-block bookkeeping for the "simple" (no path
// compression) Lengauer-Tarjan variant: ancestor_with_lowest_semi walks
// the ancestor chain linearly rather than compressing it, trading
// asymptotic complexity for a much simpler implementation — acceptable
// here since this path exists purely as a cross-check for CHK, not the
// primary construction (spec §4.4).
type ltBlockInfo struct {
	dfnum      int // 0 means unvisited
	parent     ir.BlockId
	semi       int // aliased to dfnum until semidominators are computed
	ancestor   ir.BlockId
	idom       ir.BlockId
	bucketHead ir.BlockId
	bucketLink ir.BlockId
}

const ltUndefined = ir.UNDEFINED

// BuildLT computes the dominator tree via Lengauer-Tarjan (spec §4.4). Like
// BuildCHK it requires every block be reachable from the entry.
func BuildLT(cfg *ir.CFG) *Tree {
	n := cfg.NumBlocks()
	info := make([]ltBlockInfo, n)
	for i := range info {
		info[i].ancestor = ltUndefined
		info[i].bucketHead = ltUndefined
		info[i].bucketLink = ltUndefined
		info[i].parent = ltUndefined
		info[i].idom = ltUndefined
	}

	vertex := make([]ir.BlockId, n+1) // vertex[dfnum] = block, 1-based

	// Step 1: iterative DFS numbering. Each frame pushes its next unvisited
	// successor in listed order, so the explicit stack visits successors in
	// their natural (forward) order, matching a recursive DFS's visitation
	// order (spec §4.4 step 1).
	entry := ir.BlockId(0)
	dfnum := 0
	type frame struct {
		b    ir.BlockId
		next int
	}
	stack := []frame{{b: entry}}
	info[entry].parent = entry
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		b := top.b
		if info[b].dfnum == 0 {
			dfnum++
			info[b].dfnum = dfnum
			info[b].semi = dfnum
			vertex[dfnum] = b
		}
		succs := cfg.Block(b).Succs
		advanced := false
		for top.next < len(succs) {
			s := succs[top.next]
			top.next++
			if info[s].dfnum == 0 {
				info[s].parent = b
				stack = append(stack, frame{b: s})
				advanced = true
				break
			}
		}
		if advanced {
			continue
		}
		stack = stack[:len(stack)-1]
	}
	nelems := dfnum

	ancestorWithLowestSemi := func(v ir.BlockId) ir.BlockId {
		best := v
		for info[v].ancestor != ltUndefined {
			if info[v].semi < info[best].semi {
				best = v
			}
			v = info[v].ancestor
		}
		if info[v].semi < info[best].semi {
			best = v
		}
		return best
	}

	link := func(w ir.BlockId, parent ir.BlockId) {
		info[w].ancestor = parent
	}

	addToBucket := func(s, w ir.BlockId) {
		info[w].bucketLink = info[s].bucketHead
		info[s].bucketHead = w
	}

	// Step 2: dfnum from N down to 2.
	for i := nelems; i >= 2; i-- {
		w := vertex[i]
		for _, p := range cfg.Block(w).Preds {
			if info[p].dfnum == 0 {
				continue // predecessor unreached by the DFS
			}
			u := ancestorWithLowestSemi(p)
			if info[u].semi < info[w].semi {
				info[w].semi = info[u].semi
			}
		}
		semiBlock := vertex[info[w].semi]
		addToBucket(semiBlock, w)
		link(w, info[w].parent)

		parent := info[w].parent
		// Drain parent's bucket.
		for v := info[parent].bucketHead; v != ltUndefined; v = info[v].bucketLink {
			u := ancestorWithLowestSemi(v)
			if info[u].semi < info[v].semi {
				info[v].idom = u
			} else {
				info[v].idom = parent
			}
		}
		info[parent].bucketHead = ltUndefined
	}

	// Step 3: second pass, dfnum from 2 upward. Preserved verbatim from
	// spec §9's flagged observation: the loop bound is the exclusive
	// [2, nelems), not the inclusive [2, nelems] one would expect — this
	// silently skips the final block's touch-up. Kept as observed
	// behavior rather than "fixed," per spec §9's explicit instruction.
	for i := 2; i < nelems; i++ {
		w := vertex[i]
		if info[w].idom != vertex[info[w].semi] {
			info[w].idom = info[info[w].idom].idom
		}
	}

	idom := make([]ir.BlockId, n)
	for i := range idom {
		idom[i] = ltUndefined
	}
	idom[entry] = entry
	for i := 2; i <= nelems; i++ {
		w := vertex[i]
		idom[w] = info[w].idom
	}

	return &Tree{cfg: cfg, idom: idom}
}
