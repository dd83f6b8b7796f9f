// Package testir provides a small literal-CFG construction DSL used by
// this repository's own tests, adapted from the teacher's hand-built
// test-fixture style (cmd/compile/internal/ssa's "fun"/Bloc/Valu helpers):
// a test names blocks and edges directly instead of parsing IR text,
// keeping analysis tests independent of the irparser package.
package testir

import "tacfg/internal/ir"

// Edges builds a CFG with n blocks and wires the given (from, to) edges in
// the order given, via ir.CFG.AddEdge — preds/succs order therefore
// matches edge listing order, which is what determinism-sensitive tests
// (loop discovery order, DF contents) need to control.
func Edges(n int, edges [][2]int) *ir.CFG {
	cfg := ir.NewCFG(n)
	for _, e := range edges {
		cfg.AddEdge(ir.BlockId(e[0]), ir.BlockId(e[1]))
	}
	return cfg
}

// Straight builds the n-block straight-line chain 0->1->...->(n-1).
func Straight(n int) *ir.CFG {
	edges := make([][2]int, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	return Edges(n, edges)
}

// Diamond builds scenario B from spec §8: 0->1, 0->2, 1->3, 2->3.
func Diamond() *ir.CFG {
	return Edges(4, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
}

// SimpleLoop builds scenario C from spec §8: 0->1, 1->2, 2->1, 2->3.
func SimpleLoop() *ir.CFG {
	return Edges(4, [][2]int{{0, 1}, {1, 2}, {2, 1}, {2, 3}})
}

// SharedHeaderLoops builds scenario F from spec §8: two back edges into
// block 1, from blocks 2 and 3 respectively.
func SharedHeaderLoops() *ir.CFG {
	return Edges(5, [][2]int{
		{0, 1}, {1, 2}, {2, 1}, {1, 3}, {3, 1}, {1, 4},
	})
}
