// Package render formats each analysis's result into the exact textual
// shapes spec §6 assigns to the cmd/* drivers. Factored out of cmd/* so the
// golden-file comparisons in this repository's own tests can exercise the
// same code path the binaries print from, without spawning a subprocess.
package render

import (
	"fmt"
	"sort"
	"strings"

	"tacfg/internal/bitset"
	"tacfg/internal/dom"
	"tacfg/internal/domfront"
	"tacfg/internal/ir"
	"tacfg/internal/liveness"
	"tacfg/internal/loopnest"
)

// Dominators renders each reachable block's dominator chain:
// "b: b idom(b) idom(idom(b)) … 0".
func Dominators(cfg *ir.CFG, tree *dom.Tree) string {
	var sb strings.Builder
	for _, b := range cfg.Blocks {
		if !tree.ReachableFromEntry(b.ID) {
			continue
		}
		fmt.Fprintf(&sb, "%d:", b.ID)
		for cur := b.ID; ; cur = tree.Idom(cur) {
			fmt.Fprintf(&sb, " %d", cur)
			if cur == 0 {
				break
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DomFronts renders Dominators followed by "n: b1 b2 …" per block's
// dominance frontier.
func DomFronts(cfg *ir.CFG, tree *dom.Tree, fronts *domfront.Frontiers) string {
	var sb strings.Builder
	sb.WriteString(Dominators(cfg, tree))
	for _, b := range cfg.Blocks {
		fmt.Fprintf(&sb, "%d:", b.ID)
		fronts.Of(b.ID).Each(func(m int) { fmt.Fprintf(&sb, " %d", m) })
		sb.WriteByte('\n')
	}
	return sb.String()
}

// NatLoops renders one "Loop: %header <- %latch" line per discovered loop,
// followed by an indented, sorted, space-separated list of body block IDs.
func NatLoops(info *loopnest.Info) string {
	var sb strings.Builder
	for _, l := range info.Loops {
		fmt.Fprintf(&sb, "Loop: %%%d <- %%%d\n", l.Header, l.Latch)
		var body []ir.BlockId
		for b := range l.Body {
			body = append(body, b)
		}
		sort.Slice(body, func(i, j int) bool { return body[i] < body[j] })
		sb.WriteByte(' ')
		for i, b := range body {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", b)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// LiveOut runs liveness.ComputeTraced and renders every iteration's LiveOut
// snapshot, per spec §6 ("prints per-iteration LiveOut sets; the final
// iteration's output is the answer"). It returns both the rendered text and
// the converged Result, so callers that only want the final sets don't have
// to re-run the analysis.
func LiveOut(cfg *ir.CFG, init *liveness.Initial) (string, *liveness.Result) {
	var sb strings.Builder
	result := liveness.ComputeTraced(cfg, init, func(iter int, liveOut []*bitset.BitSet) {
		fmt.Fprintf(&sb, "iteration %d:\n", iter)
		for i, s := range liveOut {
			fmt.Fprintf(&sb, "%d:", i)
			s.Each(func(r int) { fmt.Fprintf(&sb, " %d", r) })
			sb.WriteByte('\n')
		}
	})
	return sb.String(), result
}
