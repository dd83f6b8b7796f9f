package ir

import "fmt"

// BlockId indexes into CFG.Blocks. The entry block is always BlockId 0.
type BlockId int

// UNDEFINED is the sentinel used by analyses that have not (or could not)
// assign a block a meaningful value — e.g. an unreached block's immediate
// dominator.
const UNDEFINED BlockId = -1

// InstKind discriminates the four Instruction variants.
type InstKind uint8

const (
	InstDef InstKind = iota
	InstPrint
	InstBrUncond
	InstBrCond
)

// Instruction is a single three-address-IR statement. Exactly one of the
// field groups below is meaningful, selected by Kind; BrUncond/BrCond, when
// present, are always the last instruction in their block.
type Instruction struct {
	Kind InstKind

	// InstDef
	Reg uint32
	Op  Operation

	// InstBrUncond
	Target BlockId

	// InstBrCond
	Cond       Value
	Then, Else BlockId
}

// Def builds a Def instruction defining reg with op.
func Def(reg uint32, op Operation) Instruction {
	return Instruction{Kind: InstDef, Reg: reg, Op: op}
}

// Print builds a Print instruction over op. op.Kind must be OpSimple; the
// caller (parser or test harness) is responsible for that invariant, per
// spec — this constructor does not itself validate it.
func Print(op Operation) Instruction {
	return Instruction{Kind: InstPrint, Op: op}
}

// BrUncond builds an unconditional branch to target.
func BrUncond(target BlockId) Instruction {
	return Instruction{Kind: InstBrUncond, Target: target}
}

// BrCond builds a two-way conditional branch.
func BrCond(cond Value, then, els BlockId) Instruction {
	return Instruction{Kind: InstBrCond, Cond: cond, Then: then, Else: els}
}

// IsTerminator reports whether i is a branch, and therefore must be the
// last instruction of its block.
func (i Instruction) IsTerminator() bool {
	return i.Kind == InstBrUncond || i.Kind == InstBrCond
}

func (i Instruction) String() string {
	switch i.Kind {
	case InstDef:
		return fmt.Sprintf("%%%d <- %s", i.Reg, i.Op)
	case InstPrint:
		return fmt.Sprintf("PRINT %s", i.Op)
	case InstBrUncond:
		return fmt.Sprintf("BR .%d", i.Target)
	case InstBrCond:
		return fmt.Sprintf("BR %s, .%d, .%d", i.Cond, i.Then, i.Else)
	default:
		return "<invalid instruction>"
	}
}
