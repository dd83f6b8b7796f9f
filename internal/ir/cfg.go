package ir

import "fmt"

// CFG is a control-flow graph: an ordered sequence of basic blocks, indexed
// by BlockId, with Blocks[0] always the entry. Every analysis in this
// repository is a pure, read-only consumer of a CFG except LVN, which
// mutates Instruction.Op in place (spec §5) — callers must not interleave
// LVN with other readers of the same block.
type CFG struct {
	Blocks []*BasicBlock

	// MaxRegister is the highest register number that appears anywhere in
	// the program; set by the parser (or test harness) to size the
	// liveness bitset arenas.
	MaxRegister uint32
}

// NewCFG allocates n empty, unconnected blocks with sequential IDs
// 0..n-1. Block 0 is the entry by convention.
func NewCFG(n int) *CFG {
	blocks := make([]*BasicBlock, n)
	for i := range blocks {
		blocks[i] = &BasicBlock{ID: BlockId(i)}
	}
	return &CFG{Blocks: blocks}
}

// NumBlocks returns the number of blocks in the CFG, reachable or not.
func (c *CFG) NumBlocks() int { return len(c.Blocks) }

// Block returns the block with the given id. It panics if id is out of
// range — an out-of-range BlockId reaching here is a construction bug, not
// a recoverable condition (spec §7).
func (c *CFG) Block(id BlockId) *BasicBlock {
	if id < 0 || int(id) >= len(c.Blocks) {
		panic(fmt.Sprintf("ir: block id %d out of range [0,%d)", id, len(c.Blocks)))
	}
	return c.Blocks[id]
}

// AddEdge records a control-flow edge a -> b, appending b to a's successors
// and a to b's predecessors atomically (spec §4.9). It does not deduplicate:
// calling it twice for the same pair, or for a BrCond whose then and else
// targets coincide, legitimately produces parallel edges (spec §9's open
// question on duplicate preds/succs is resolved by allowing them).
func (c *CFG) AddEdge(a, b BlockId) {
	from := c.Block(a)
	to := c.Block(b)
	from.Succs = append(from.Succs, b)
	to.Preds = append(to.Preds, a)
}

// AddEdgesForTerminator wires the successor edges implied by b's terminator
// instruction, per spec §4.9: BrUncond.Target yields one edge, BrCond's
// Then/Else yield two (possibly identical) edges, and a block with no
// terminator (Def/Print-only) gets no edge here — callers must add
// fallthrough edges explicitly via AddEdge.
func (c *CFG) AddEdgesForTerminator(b BlockId) {
	term, ok := c.Block(b).Terminator()
	if !ok {
		return
	}
	switch term.Kind {
	case InstBrUncond:
		c.AddEdge(b, term.Target)
	case InstBrCond:
		c.AddEdge(b, term.Then)
		c.AddEdge(b, term.Else)
	}
}
