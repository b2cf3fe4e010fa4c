package lir

import (
	"github.com/fanyi-zhao/solang/internal/ice"
)

// Validate checks the structural well-formedness of a function's IR:
//
//  1. Every block reads, in order, zero or more phis, then zero or more
//     non-terminators, then exactly one terminator.
//  2. Every branch, switch and phi references an existing block.
//  3. Phi inputs name actual predecessors of their block.
//  4. Single static assignment: no identity is defined by more than one
//     instruction.
//
// Any violation is an internal compiler error carrying the function,
// block and instruction where it was found: it signals a bug in the pass
// that built the IR, never a user-facing condition.
//
// Representational edge cases (an out-of-range Trunc, an
// AllocDynamicBytes initializer disagreeing with a constant size) are
// deliberately not checked; the lowering pass that emits those
// instructions owns any runtime guard.
func (c *Cfg) Validate() error {
	v := &validator{cfg: c, defined: map[int]bool{}}

	if c.Block(c.Entry) == nil {
		return ice.Errorf("entry block#%d does not exist", c.Entry).InFunction(c.Name)
	}
	preds := c.Predecessors()

	for no, block := range c.Blocks {
		if err := v.validateBlock(no, block, preds[no]); err != nil {
			return err
		}
	}
	return nil
}

// validator accumulates definition sites while traversing blocks.
type validator struct {
	cfg     *Cfg
	defined map[int]bool
}

func (v *validator) errf(blockNo, insnIdx int, format string, args ...any) error {
	return ice.Errorf(format, args...).InFunction(v.cfg.Name).InBlock(blockNo).AtInsn(insnIdx)
}

func (v *validator) validateBlock(no int, block *Block, preds map[int]bool) error {
	if len(block.Insns) == 0 {
		return ice.Errorf("block has no terminator").InFunction(v.cfg.Name).InBlock(no)
	}

	phisDone := false
	for i, insn := range block.Insns {
		last := i == len(block.Insns)-1

		if _, isTerm := insn.(Terminator); isTerm != last {
			if isTerm {
				return v.errf(no, i, "terminator before end of block")
			}
			return v.errf(no, i, "block does not end in a terminator")
		}

		if phi, ok := insn.(*Phi); ok {
			if phisDone {
				return v.errf(no, i, "phi after non-phi instruction")
			}
			if err := v.validatePhi(no, i, phi, preds); err != nil {
				return err
			}
		} else {
			phisDone = true
		}

		for _, res := range insnResults(insn) {
			if v.defined[res] {
				return v.errf(no, i, "variable %%%d defined more than once", res)
			}
			v.defined[res] = true
		}

		if err := v.validateTargets(no, i, insn); err != nil {
			return err
		}
	}
	return nil
}

func (v *validator) validatePhi(blockNo, insnIdx int, phi *Phi, preds map[int]bool) error {
	for _, in := range phi.Vars {
		if v.cfg.Block(in.BlockNo) == nil {
			return v.errf(blockNo, insnIdx, "phi input references missing block#%d", in.BlockNo)
		}
		if !preds[in.BlockNo] {
			return v.errf(blockNo, insnIdx, "phi input from block#%d which is not a predecessor", in.BlockNo)
		}
	}
	return nil
}

func (v *validator) validateTargets(blockNo, insnIdx int, insn Insn) error {
	switch t := insn.(type) {
	case *Branch:
		return v.checkTarget(blockNo, insnIdx, t.Block)
	case *BranchCond:
		if err := v.checkTarget(blockNo, insnIdx, t.TrueBlock); err != nil {
			return err
		}
		return v.checkTarget(blockNo, insnIdx, t.FalseBlock)
	case *Switch:
		for _, c := range t.Cases {
			if err := v.checkTarget(blockNo, insnIdx, c.Block); err != nil {
				return err
			}
		}
		return v.checkTarget(blockNo, insnIdx, t.Default)
	}
	return nil
}

func (v *validator) checkTarget(blockNo, insnIdx, target int) error {
	if v.cfg.Block(target) == nil {
		return v.errf(blockNo, insnIdx, "branch to missing block#%d", target)
	}
	return nil
}

// insnResults lists the identities an instruction defines.
func insnResults(insn Insn) []int {
	switch t := insn.(type) {
	case *Set:
		return []int{t.Res}
	case *LoadStorage:
		return []int{t.Res}
	case *PushStorage:
		return []int{t.Res}
	case *PopStorage:
		if t.Res != nil {
			return []int{*t.Res}
		}
	case *PushMemory:
		return []int{t.Res}
	case *PopMemory:
		return []int{t.Res}
	case *Call:
		return t.Res
	case *ExternalCall:
		if t.Success != nil {
			return []int{*t.Success}
		}
	case *Constructor:
		res := []int{t.Res}
		if t.Success != nil {
			res = append(res, *t.Success)
		}
		return res
	case *ValueTransfer:
		if t.Success != nil {
			return []int{*t.Success}
		}
	case *Phi:
		return []int{t.Res}
	}
	return nil
}
