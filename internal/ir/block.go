package ir

// BasicBlock is a straight-line run of instructions with a single entry
// and single exit. preds/succs are ordered and may contain duplicates if
// the IR has multi-edges (a BrCond whose then and else targets coincide);
// every analysis that walks them must tolerate that multiplicity rather
// than assume set semantics.
type BasicBlock struct {
	ID    BlockId
	Preds []BlockId
	Succs []BlockId
	Insts []Instruction
}

// Append adds inst to the end of the block's instruction sequence. A
// terminator (BrUncond/BrCond) may only be appended once; appending after
// one already exists is a programmer error.
func (b *BasicBlock) Append(inst Instruction) {
	if n := len(b.Insts); n > 0 && b.Insts[n-1].IsTerminator() {
		panic("ir: block already has a terminator; cannot append past it")
	}
	b.Insts = append(b.Insts, inst)
}

// Terminator returns the block's branch instruction and true, or the zero
// Instruction and false if the block falls through (Def/Print-only).
func (b *BasicBlock) Terminator() (Instruction, bool) {
	if n := len(b.Insts); n > 0 && b.Insts[n-1].IsTerminator() {
		return b.Insts[n-1], true
	}
	return Instruction{}, false
}
