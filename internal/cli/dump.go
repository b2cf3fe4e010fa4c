package cli

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/fanyi-zhao/solang/internal/lir"
)

// DumpResult is the JSON shape of a dumped function.
type DumpResult struct {
	Text string `json:"text"`
	Hash string `json:"hash,omitempty"`
}

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	var withHash bool

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump a sample function in canonical IR text",
		Long: `Build the sample counter function, validate its structure, and print
it in canonical text form. With --hash, also print the content hash of
the canonical rendering.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(rootOpts, withHash, cmd)
		},
	}

	cmd.Flags().BoolVar(&withHash, "hash", false, "include the content hash")
	return cmd
}

// sampleCfg builds a storage counter: load the current value, add the
// argument, store it back unless it would exceed the cap.
func sampleCfg() *lir.Cfg {
	cfg := lir.NewCfg(0, "increment")
	cfg.Params = []lir.Type{lir.Uint{Width: 64}}
	cfg.Returns = []lir.Type{lir.Uint{Width: 64}}

	entry := cfg.AddBlock("entry")
	store := cfg.AddBlock("store")
	capped := cfg.AddBlock("capped")
	cfg.Entry = entry

	slot := cfg.Vars.Declare(lir.StoragePtr{To: lir.Uint{Width: 64}}, "slot")
	current := cfg.Vars.Declare(lir.Uint{Width: 64}, "current")
	next := cfg.Vars.Declare(lir.Uint{Width: 64}, "next")
	over := cfg.Vars.Declare(lir.Bool{}, "over")

	u64 := func(v int64) *lir.NumberLiteral {
		return &lir.NumberLiteral{Ty: lir.Uint{Width: 64}, Value: big.NewInt(v)}
	}
	ref := func(id int) *lir.Id { return &lir.Id{ID: id} }

	cfg.Blocks[entry].Insns = []lir.Insn{
		&lir.Set{Res: slot, Expr: u64(0)},
		&lir.LoadStorage{Res: current, Storage: ref(slot)},
		&lir.Set{Res: next, Expr: &lir.BinaryExpr{
			Op:    lir.BinaryOperator{Op: lir.BinAdd},
			Left:  ref(current),
			Right: &lir.FunctionArg{ArgNo: 0, Ty: lir.Uint{Width: 64}},
		}},
		&lir.Set{Res: over, Expr: &lir.BinaryExpr{
			Op:    lir.BinaryOperator{Op: lir.BinUGt},
			Left:  ref(next),
			Right: u64(1000000),
		}},
		&lir.BranchCond{Cond: ref(over), TrueBlock: capped, FalseBlock: store},
	}
	cfg.Blocks[store].Insns = []lir.Insn{
		&lir.SetStorage{Storage: ref(slot), Value: ref(next)},
		&lir.Return{Value: []lir.Operand{ref(next)}},
	}
	cfg.Blocks[capped].Insns = []lir.Insn{
		&lir.AssertFailure{},
	}
	return cfg
}

func runDump(opts *RootOptions, withHash bool, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg := sampleCfg()
	if err := cfg.Validate(); err != nil {
		_ = formatter.Error("E003", err.Error(), nil)
		return WrapExitError(ExitFailure, "malformed IR", err)
	}
	formatter.VerboseLog("Validated %d block(s)", len(cfg.Blocks))

	printer := lir.NewPrinter(cfg.Vars)
	text, err := printer.CfgString(cfg)
	if err != nil {
		_ = formatter.Error("E003", err.Error(), nil)
		return WrapExitError(ExitFailure, "printing failed", err)
	}

	result := DumpResult{Text: text}
	if withHash {
		hash, err := printer.CfgHash(cfg)
		if err != nil {
			_ = formatter.Error("E003", err.Error(), nil)
			return WrapExitError(ExitFailure, "hashing failed", err)
		}
		result.Hash = hash
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprint(formatter.Writer, result.Text)
	if result.Hash != "" {
		fmt.Fprintf(formatter.Writer, "hash: %s\n", result.Hash)
	}
	return nil
}
