package loopnest

import (
	"fmt"

	"tacfg/internal/dfs"
	"tacfg/internal/ir"
)

// SCCs returns the strongly-connected components of cfg's reachable
// subgraph, via Kosaraju-Sharir, grounded directly on the teacher's own
// scc.go. Kept as a cross-check for natural-loop discovery (§7 of
// SPEC_FULL.md), not as LoopInfo's primary construction path: every
// natural loop's body must be a subset of some SCC, which
// VerifySCCConsistency checks.
func SCCs(cfg *ir.CFG) [][]ir.BlockId {
	po := dfs.PostOrder(cfg)
	reachable := make([]bool, cfg.NumBlocks())
	for _, b := range po {
		reachable[b] = true
	}

	seen := make([]bool, cfg.NumBlocks())
	var result [][]ir.BlockId

	for i := len(po) - 1; i >= 0; i-- {
		leader := po[i]
		if seen[leader] {
			continue
		}
		var scc []ir.BlockId
		queue := []ir.BlockId{leader}
		seen[leader] = true
		for len(queue) > 0 {
			b := queue[0]
			queue = queue[1:]
			scc = append(scc, b)
			for _, pred := range cfg.Block(b).Preds {
				if reachable[pred] && !seen[pred] {
					seen[pred] = true
					queue = append(queue, pred)
				}
			}
		}
		result = append(result, scc)
	}
	return result
}

// VerifySCCConsistency checks that every natural loop's body is contained
// within a single SCC of cfg — a loop body found by back-edge discovery
// can never span multiple strongly-connected components, since every
// block in it is, by construction, reachable from (and can reach) the
// header. It returns an error describing the first violation found, or
// nil.
func VerifySCCConsistency(cfg *ir.CFG, info *Info) error {
	sccs := SCCs(cfg)
	sccOf := make(map[ir.BlockId]int, cfg.NumBlocks())
	for i, scc := range sccs {
		for _, b := range scc {
			sccOf[b] = i
		}
	}

	for _, loop := range info.Loops {
		var want int
		first := true
		for b := range loop.Body {
			idx, ok := sccOf[b]
			if !ok {
				return fmt.Errorf("loop with header %d: body block %d has no SCC", loop.Header, b)
			}
			if first {
				want = idx
				first = false
				continue
			}
			if idx != want {
				return fmt.Errorf("loop with header %d: body spans multiple SCCs (blocks in SCC %d and %d)", loop.Header, want, idx)
			}
		}
	}
	return nil
}
