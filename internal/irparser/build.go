package irparser

import (
	"strconv"

	"github.com/pkg/errors"

	"tacfg/internal/ir"
)

// build lowers a parsed File into a CFG, checking the one structural rule
// the grammar itself cannot express: block labels must be 0,1,2,… in file
// order (spec §6). It also tracks the highest register number used, for
// sizing the LiveOut bitsets downstream (spec §6, §4.7).
func build(file *File) (*ir.CFG, error) {
	cfg := ir.NewCFG(len(file.Blocks))
	var maxRegister uint32
	var sawRegister bool

	for i, block := range file.Blocks {
		label, err := parseLabel(block.Label)
		if err != nil {
			return nil, err
		}
		if label != i {
			return nil, errors.Errorf("block labeled .%d out of order: expected .%d", label, i)
		}

		b := cfg.Block(ir.BlockId(i))
		for _, inst := range block.Insts {
			built, err := buildInstruction(inst, &maxRegister, &sawRegister)
			if err != nil {
				return nil, err
			}
			b.Append(built)
		}
		cfg.AddEdgesForTerminator(ir.BlockId(i))
	}

	if sawRegister {
		cfg.MaxRegister = maxRegister
	}
	return cfg, nil
}

func buildInstruction(inst *Instruction, maxRegister *uint32, sawRegister *bool) (ir.Instruction, error) {
	switch {
	case inst.Def != nil:
		reg, err := parseReg(inst.Def.Reg)
		if err != nil {
			return ir.Instruction{}, err
		}
		trackRegister(reg, maxRegister, sawRegister)
		op, err := buildOperation(inst.Def.Op, maxRegister, sawRegister)
		if err != nil {
			return ir.Instruction{}, err
		}
		return ir.Def(reg, op), nil

	case inst.Print != nil:
		op, err := buildOperation(inst.Print.Op, maxRegister, sawRegister)
		if err != nil {
			return ir.Instruction{}, err
		}
		return ir.Print(op), nil

	case inst.Br != nil:
		return buildBranch(inst.Br, maxRegister, sawRegister)

	default:
		return ir.Instruction{}, errors.New("empty instruction")
	}
}

func buildBranch(br *BrInst, maxRegister *uint32, sawRegister *bool) (ir.Instruction, error) {
	if br.Uncond != nil {
		target, err := parseLabel(br.Uncond.Target)
		if err != nil {
			return ir.Instruction{}, err
		}
		return ir.BrUncond(ir.BlockId(target)), nil
	}

	cond := br.Cond
	value, err := buildOperand(cond.Value, maxRegister, sawRegister)
	if err != nil {
		return ir.Instruction{}, err
	}
	then, err := parseLabel(cond.Then)
	if err != nil {
		return ir.Instruction{}, err
	}
	els, err := parseLabel(cond.Else)
	if err != nil {
		return ir.Instruction{}, err
	}
	return ir.BrCond(value, ir.BlockId(then), ir.BlockId(els)), nil
}

func buildOperation(op Operation, maxRegister *uint32, sawRegister *bool) (ir.Operation, error) {
	lhs, err := buildOperand(op.Lhs, maxRegister, sawRegister)
	if err != nil {
		return ir.Operation{}, err
	}
	if op.Rhs == nil {
		return ir.Simple(lhs), nil
	}
	rhs, err := buildOperand(*op.Rhs, maxRegister, sawRegister)
	if err != nil {
		return ir.Operation{}, err
	}
	return ir.Add(lhs, rhs), nil
}

func buildOperand(v Operand, maxRegister *uint32, sawRegister *bool) (ir.Value, error) {
	if v.Reg != nil {
		reg, err := parseReg(*v.Reg)
		if err != nil {
			return 0, err
		}
		trackRegister(reg, maxRegister, sawRegister)
		return ir.ValReg(reg), nil
	}
	n, err := strconv.ParseUint(*v.Int, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "integer literal %q", *v.Int)
	}
	return ir.ValImm(uint32(n)), nil
}

func trackRegister(reg uint32, maxRegister *uint32, sawRegister *bool) {
	if !*sawRegister || reg > *maxRegister {
		*maxRegister = reg
	}
	*sawRegister = true
}

// parseLabel strips the leading '.' from a LABEL token and parses the
// remainder as a non-negative integer.
func parseLabel(tok string) (int, error) {
	n, err := strconv.Atoi(tok[1:])
	if err != nil {
		return 0, errors.Wrapf(err, "label %q", tok)
	}
	return n, nil
}

// parseReg strips the leading '%' from a REG token and parses the
// remainder as a register number.
func parseReg(tok string) (uint32, error) {
	n, err := strconv.ParseUint(tok[1:], 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "register %q", tok)
	}
	return uint32(n), nil
}
