// Package liveness computes LiveOut via the classical two-set UEVar/VarKill
// backward dataflow analysis (spec §4.7), grounded on the same
// iterative-fixed-point shape the teacher uses for its own register
// liveness (regalloc.go's computeLiveIterative) but over the register
// namespace directly, with no value-numbering or remat concerns — this
// package answers only "what registers are live," not "with what
// distance to next use."
package liveness

import (
	"tacfg/internal/bitset"
	"tacfg/internal/dfs"
	"tacfg/internal/ir"
)

// Initial holds each block's local UEVar and VarKill sets (spec §3, §4.7
// pass 1), computed once and then fed into the fixed-point loop below.
type Initial struct {
	arena          *bitset.Arena
	UEVar, VarKill []*bitset.BitSet
}

// Free releases Initial's backing allocation.
func (in *Initial) Free() { in.arena.Free() }

func addIfNotInVarKill(v ir.Value, ue, kill *bitset.BitSet) {
	if !v.IsRegister() {
		return
	}
	r := int(v.Payload())
	if !kill.Contains(r) {
		ue.Add(r)
	}
}

// ComputeInitial walks each block once, in program order, building UEVar
// and VarKill per the per-instruction rules of spec §4.7 pass 1.
func ComputeInitial(cfg *ir.CFG, maxRegister uint32) *Initial {
	n := cfg.NumBlocks()
	regSpace := int(maxRegister) + 1
	arena := bitset.NewArena(2*n, regSpace)
	ue := make([]*bitset.BitSet, n)
	kill := make([]*bitset.BitSet, n)
	for i := 0; i < n; i++ {
		ue[i] = arena.View(2 * i)
		kill[i] = arena.View(2*i + 1)
	}

	for _, b := range cfg.Blocks {
		u, k := ue[b.ID], kill[b.ID]
		for _, inst := range b.Insts {
			switch inst.Kind {
			case ir.InstDef:
				addIfNotInVarKill(inst.Op.Lhs, u, k)
				if inst.Op.Kind == ir.OpAdd {
					addIfNotInVarKill(inst.Op.Rhs, u, k)
				}
				k.Add(int(inst.Reg))
			case ir.InstPrint:
				addIfNotInVarKill(inst.Op.Lhs, u, k)
			case ir.InstBrCond:
				addIfNotInVarKill(inst.Cond, u, k)
			case ir.InstBrUncond:
				// no operand to account for
			}
		}
	}

	return &Initial{arena: arena, UEVar: ue, VarKill: kill}
}

// Result holds the converged LiveOut set for every block.
type Result struct {
	arena   *bitset.Arena
	LiveOut []*bitset.BitSet
}

// Free releases Result's backing allocation.
func (r *Result) Free() { r.arena.Free() }

// Compute runs the backward fixed-point iteration of spec §4.7 pass 2:
// LiveOut[b] = union over successors s of (UEVar[s] ∪ (LiveOut[s] ∩ ¬VarKill[s])),
// iterating blocks in post-order (not reverse-postorder — for a backward
// analysis, processing successors before their predecessors converges in
// fewer passes) until a full pass makes no change. Two scratch bitsets are
// reused across iterations to avoid allocation in the hot loop, per spec.
func Compute(cfg *ir.CFG, init *Initial) *Result {
	return ComputeTraced(cfg, init, nil)
}

// ComputeTraced is Compute with an optional onIteration callback invoked
// after every full pass over the blocks, given the pass number (starting
// at 1) and the current LiveOut snapshot — used by cmd/print_liveout to
// print the running sets per spec §6 ("prints per-iteration LiveOut sets;
// the final iteration's output is the answer"). Passing a nil callback
// makes this identical to Compute.
func ComputeTraced(cfg *ir.CFG, init *Initial, onIteration func(iter int, liveOut []*bitset.BitSet)) *Result {
	n := cfg.NumBlocks()
	regSpace := init.UEVar[0].Cap()

	arena := bitset.NewArena(n, regSpace)
	liveOut := make([]*bitset.BitSet, n)
	for i := 0; i < n; i++ {
		liveOut[i] = arena.View(i)
	}

	po := dfs.PostOrder(cfg)

	scratchA := bitset.New(regSpace)
	scratchB := bitset.New(regSpace)

	for iter, changed := 1, true; changed; iter++ {
		changed = false
		for _, b := range po {
			newSet := scratchA
			newSet.Clear()
			for _, s := range cfg.Block(b).Succs {
				bitset.Copy(scratchB, init.VarKill[s])
				scratchB.Complement()
				bitset.IntersectInto(scratchB, liveOut[s])
				bitset.UnionInto(newSet, scratchB)
				bitset.UnionInto(newSet, init.UEVar[s])
			}
			if !bitset.Equal(newSet, liveOut[b]) {
				bitset.Copy(liveOut[b], newSet)
				changed = true
			}
		}
		if onIteration != nil {
			onIteration(iter, liveOut)
		}
	}

	return &Result{arena: arena, LiveOut: liveOut}
}
