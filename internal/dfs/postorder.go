// Package dfs computes post-order and reverse-postorder numberings of a
// CFG, the numbering every later analysis (CHK dominators, LiveOut) walks
// in. Grounded directly on the teacher's own postorderWithNumbering
// (dom.go in cmd/compile/internal/ssa): an explicit stack of
// (block, next-successor-index) pairs rather than recursion, so that deep
// CFGs don't blow the Go stack, and successors are explored in their
// listed order so the traversal is deterministic (spec §4.2, §5).
package dfs

import "tacfg/internal/ir"

type blockAndIndex struct {
	b     ir.BlockId
	index int
}

// PostOrder returns the blocks reachable from cfg's entry (block 0) in
// post-order: a block is appended to the result only after every one of
// its unvisited successors has been. The entry is always last.
func PostOrder(cfg *ir.CFG) []ir.BlockId {
	seen := make([]bool, cfg.NumBlocks())
	order := make([]ir.BlockId, 0, cfg.NumBlocks())

	stack := make([]blockAndIndex, 0, 32)
	entry := ir.BlockId(0)
	stack = append(stack, blockAndIndex{b: entry})
	seen[entry] = true

	for len(stack) > 0 {
		top := len(stack) - 1
		cur := stack[top]
		b := cfg.Block(cur.b)
		if cur.index < len(b.Succs) {
			stack[top].index++
			succ := b.Succs[cur.index]
			if !seen[succ] {
				seen[succ] = true
				stack = append(stack, blockAndIndex{b: succ})
			}
			continue
		}
		stack = stack[:top]
		order = append(order, cur.b)
	}
	return order
}

// ReversePostOrder returns PostOrder's result read back-to-front: in
// reverse postorder a block precedes all its non-back-edge successors,
// which is the traversal CHK's fixed-point iteration relies on.
func ReversePostOrder(cfg *ir.CFG) []ir.BlockId {
	po := PostOrder(cfg)
	rpo := make([]ir.BlockId, len(po))
	for i, b := range po {
		rpo[len(po)-1-i] = b
	}
	return rpo
}

// Numbering returns po_num such that po_num[b] is b's index in PostOrder's
// result, for every reachable b. Unreachable blocks are left at -1. Larger
// po_num values mean "later in postorder" (earlier in reverse postorder),
// i.e. closer to the entry (spec §4.3 step 1).
func Numbering(cfg *ir.CFG) []int {
	num := make([]int, cfg.NumBlocks())
	for i := range num {
		num[i] = -1
	}
	for i, b := range PostOrder(cfg) {
		num[b] = i
	}
	return num
}
