// Package ir defines the three-address intermediate representation that
// every analysis in this repository operates on: values, operations,
// instructions, basic blocks, and the control-flow graph that owns them.
package ir

import "fmt"

// maxPayload bounds both Value payloads, since a Value packs its kind into
// the MSB of a 32-bit word.
const maxPayload = 1<<31 - 1

// Value is a tagged operand: either a literal Immediate or a virtual
// Register. The MSB of the 32-bit encoding distinguishes the two; stripping
// it yields the numeric payload. Values are small and copied by value.
type Value uint32

const regBit Value = 1 << 31

// ValImm builds an immediate Value from a literal.
func ValImm(n uint32) Value {
	if n > maxPayload {
		panic(fmt.Sprintf("ir: immediate %d exceeds payload width", n))
	}
	return Value(n)
}

// ValReg builds a register Value from a register number.
func ValReg(n uint32) Value {
	if n > maxPayload {
		panic(fmt.Sprintf("ir: register %d exceeds payload width", n))
	}
	return regBit | Value(n)
}

// IsRegister reports whether v names a register rather than a literal.
func (v Value) IsRegister() bool { return v&regBit != 0 }

// Payload returns the numeric payload, stripped of the kind bit.
func (v Value) Payload() uint32 { return uint32(v &^ regBit) }

func (v Value) String() string {
	if v.IsRegister() {
		return fmt.Sprintf("%%%d", v.Payload())
	}
	return fmt.Sprintf("%d", v.Payload())
}
