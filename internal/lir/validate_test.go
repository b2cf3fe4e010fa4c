package lir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fanyi-zhao/solang/internal/ice"
)

// diamond builds the classic four-block shape:
//
//	0 -> 1, 2; 1 -> 3; 2 -> 3
//
// with a phi in block 3 merging the two paths.
func diamond(t *testing.T) *Cfg {
	t.Helper()

	cfg := NewCfg(0, "diamond")
	entry := cfg.AddBlock("entry")
	left := cfg.AddBlock("left")
	right := cfg.AddBlock("right")
	exit := cfg.AddBlock("exit")
	cfg.Entry = entry

	cond := cfg.Vars.Declare(Bool{}, "cond")
	a := cfg.Vars.Declare(Uint{Width: 8}, "a")
	b := cfg.Vars.Declare(Uint{Width: 8}, "b")
	merged := cfg.Vars.Declare(Uint{Width: 8}, "merged")

	cfg.Blocks[entry].Insns = []Insn{
		&Set{Res: cond, Expr: &BoolLiteral{Value: true}},
		&BranchCond{Cond: identifier(cond), TrueBlock: left, FalseBlock: right},
	}
	cfg.Blocks[left].Insns = []Insn{
		&Set{Res: a, Expr: uintLit(8, 1)},
		&Branch{Block: exit},
	}
	cfg.Blocks[right].Insns = []Insn{
		&Set{Res: b, Expr: uintLit(8, 2)},
		&Branch{Block: exit},
	}
	cfg.Blocks[exit].Insns = []Insn{
		&Phi{Res: merged, Vars: []PhiInput{
			NewPhiInput(identifier(a), left),
			NewPhiInput(identifier(b), right),
		}},
		&Return{Value: []Operand{identifier(merged)}},
	}
	return cfg
}

func TestValidateWellFormed(t *testing.T) {
	require.NoError(t, diamond(t).Validate())
}

func TestValidateViolations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Cfg)
		wantMsg string
	}{
		{
			"missing_entry",
			func(cfg *Cfg) { cfg.Entry = 99 },
			"entry block#99 does not exist",
		},
		{
			"empty_block",
			func(cfg *Cfg) { cfg.Blocks[1].Insns = nil },
			"no terminator",
		},
		{
			"no_terminator",
			func(cfg *Cfg) {
				cfg.Blocks[1].Insns = []Insn{&Set{Res: 10, Expr: uintLit(8, 1)}}
			},
			"does not end in a terminator",
		},
		{
			"terminator_mid_block",
			func(cfg *Cfg) {
				cfg.Blocks[1].Insns = []Insn{
					&Branch{Block: 3},
					&Branch{Block: 3},
				}
			},
			"terminator before end of block",
		},
		{
			"phi_after_non_phi",
			func(cfg *Cfg) {
				exit := cfg.Blocks[3]
				exit.Insns = []Insn{
					&Set{Res: 10, Expr: uintLit(8, 9)},
					exit.Insns[0],
					exit.Insns[1],
				}
			},
			"phi after non-phi",
		},
		{
			"phi_missing_block",
			func(cfg *Cfg) {
				phi := cfg.Blocks[3].Insns[0].(*Phi)
				phi.Vars[0].BlockNo = 42
			},
			"missing block#42",
		},
		{
			"phi_non_predecessor",
			func(cfg *Cfg) {
				phi := cfg.Blocks[3].Insns[0].(*Phi)
				phi.Vars[0].BlockNo = 0
			},
			"not a predecessor",
		},
		{
			"branch_missing_target",
			func(cfg *Cfg) {
				cfg.Blocks[1].Insns[1] = &Branch{Block: 42}
			},
			"branch to missing block#42",
		},
		{
			"double_definition",
			func(cfg *Cfg) {
				left := cfg.Blocks[1]
				dup := left.Insns[0].(*Set).Res
				left.Insns = []Insn{
					left.Insns[0],
					&Set{Res: dup, Expr: uintLit(8, 3)},
					left.Insns[1],
				}
			},
			"defined more than once",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := diamond(t)
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, ice.Is(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidateSwitchTargets(t *testing.T) {
	cfg := NewCfg(0, "sw")
	entry := cfg.AddBlock("")
	a := cfg.AddBlock("")
	cfg.Entry = entry

	cfg.Blocks[a].Insns = []Insn{&Return{}}
	cfg.Blocks[entry].Insns = []Insn{
		&Switch{
			Cond:    identifier(0),
			Cases:   []SwitchCase{{Value: uintLit(8, 1), Block: 9}},
			Default: a,
		},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "block#9")
}

func TestReachable(t *testing.T) {
	cfg := diamond(t)
	dead := cfg.AddBlock("dead")
	cfg.Blocks[dead].Insns = []Insn{&Return{}}

	reach := cfg.Reachable()
	assert.True(t, reach[0])
	assert.True(t, reach[1])
	assert.True(t, reach[2])
	assert.True(t, reach[3])
	assert.False(t, reach[dead])
}

func TestPredecessors(t *testing.T) {
	cfg := diamond(t)
	preds := cfg.Predecessors()

	assert.Empty(t, preds[0])
	assert.Equal(t, map[int]bool{0: true}, preds[1])
	assert.Equal(t, map[int]bool{0: true}, preds[2])
	assert.Equal(t, map[int]bool{1: true, 2: true}, preds[3])
}

func TestBlockSuccessors(t *testing.T) {
	cfg := diamond(t)

	assert.Equal(t, []int{1, 2}, cfg.Blocks[0].Successors())
	assert.Equal(t, []int{3}, cfg.Blocks[1].Successors())
	assert.Nil(t, cfg.Blocks[3].Successors())
}
