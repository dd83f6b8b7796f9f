// Package lvn implements local value numbering over a single basic block
// (spec §4.8): a per-block rewrite that replaces a redundant Add with a
// copy of an earlier equivalent definition. State is cleared between
// blocks — there is no cross-block analysis.
package lvn

import "tacfg/internal/ir"

// number is a fresh, monotonically-increasing equivalence class id.
type number int

// addKey is the LVNAdd equality key: structural and order-sensitive (a+b
// and b+a get different numbers; commutativity is not exploited, per
// spec).
type addKey struct {
	lnum, rnum number
}

// state holds one block's running tables, reset for every new block via
// Apply. Per spec §4.8, "binding reg's number" is recorded as a
// (val_reg(reg), n) pair in the same numberForValue table used for
// ordinary values — val_reg(reg) and val_imm(reg) are distinct Values
// (spec's closing note on Value semantics), so a register's binding never
// collides with an immediate sharing its payload.
type state struct {
	// valueNumbers pairs a Value with its assigned number, newest-last;
	// lookup is a linear scan, matching the small, single-block scale
	// this analysis runs at — no map is warranted.
	valueNumbers []valueNum
	addNumbers   []addNum
	counter      number
}

type valueNum struct {
	v ir.Value
	n number
}

type addNum struct {
	key addKey
	n   number
}

// numberFor looks up v's number, assigning a fresh one if v has never been
// seen in this block.
func (s *state) numberFor(v ir.Value) number {
	for _, vn := range s.valueNumbers {
		if vn.v == v {
			return vn.n
		}
	}
	n := s.counter
	s.counter++
	s.valueNumbers = append(s.valueNumbers, valueNum{v: v, n: n})
	return n
}

// bind records that register reg now carries number n, overwriting any
// prior binding for reg (spec §4.8).
func (s *state) bind(reg uint32, n number) {
	key := ir.ValReg(reg)
	for i, vn := range s.valueNumbers {
		if vn.v == key {
			s.valueNumbers[i].n = n
			return
		}
	}
	s.valueNumbers = append(s.valueNumbers, valueNum{v: key, n: n})
}

func (s *state) numberForAdd(key addKey) (number, bool) {
	for _, an := range s.addNumbers {
		if an.key == key {
			return an.n, true
		}
	}
	return 0, false
}

func (s *state) recordAdd(key addKey, n number) {
	s.addNumbers = append(s.addNumbers, addNum{key: key, n: n})
}

// valueNumbered returns some Value already carrying number n, if any — used
// to rewrite a redundant Add into a Simple copy of an equivalent earlier
// value. The first match (in insertion order) is the earliest value to
// have carried n, which is what makes "%4 <- %3" (not "%4 <- %4") come out
// of spec §8 scenario E.
func (s *state) valueNumbered(n number) (ir.Value, bool) {
	for _, vn := range s.valueNumbers {
		if vn.n == n {
			return vn.v, true
		}
	}
	return 0, false
}

// Apply rewrites every block of cfg in place, clearing LVN state between
// blocks (spec §4.8). It is the sole analysis in this repository that
// mutates Instruction.Op; callers must not interleave it with other
// readers of the same block (spec §5).
func Apply(cfg *ir.CFG) {
	for _, b := range cfg.Blocks {
		applyBlock(b)
	}
}

func applyBlock(b *ir.BasicBlock) {
	s := &state{}
	for i := range b.Insts {
		inst := &b.Insts[i]
		if inst.Kind != ir.InstDef {
			continue
		}
		switch inst.Op.Kind {
		case ir.OpSimple:
			n := s.numberFor(inst.Op.Lhs)
			s.bind(inst.Reg, n)
		case ir.OpAdd:
			nl := s.numberFor(inst.Op.Lhs)
			nr := s.numberFor(inst.Op.Rhs)
			key := addKey{lnum: nl, rnum: nr}
			if k, ok := s.numberForAdd(key); ok {
				s.bind(inst.Reg, k)
				if v, ok := s.valueNumbered(k); ok {
					inst.Op = ir.Simple(v)
				}
				continue
			}
			k := s.counter
			s.counter++
			s.recordAdd(key, k)
			s.bind(inst.Reg, k)
		}
	}
}
