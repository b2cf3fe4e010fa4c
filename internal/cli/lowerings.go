package cli

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/fanyi-zhao/solang/internal/lower"
	"github.com/fanyi-zhao/solang/internal/platform"
	"github.com/fanyi-zhao/solang/internal/sema"
)

// Lowering is the JSON shape of one source-to-IR type mapping.
type Lowering struct {
	Source  string `json:"source"`
	Lowered string `json:"lowered"`
}

// representativeTypes covers every source type family whose lowering is
// worth inspecting per target, including the platform-width ones.
func representativeTypes() []sema.Type {
	return []sema.Type{
		sema.Bool{},
		sema.Uint{Width: 256},
		sema.Int{Width: 128},
		sema.Bytes{Width: 32},
		sema.Address{},
		sema.Address{Payable: true},
		sema.Value{},
		sema.FunctionSelector{},
		sema.String{},
		sema.DynamicBytes{},
		sema.Enum{No: 0},
		sema.Array{Elem: sema.Uint{Width: 8}, Dims: []sema.ArrayLength{sema.Fixed{N: big.NewInt(4)}}},
		sema.Array{Elem: sema.Uint{Width: 8}, Dims: []sema.ArrayLength{sema.Dynamic{}}},
		sema.Struct{Tag: sema.UserDefined{No: 0}},
		sema.Mapping{Key: sema.Uint{Width: 256}, Value: sema.Bool{}},
		sema.Ref{To: sema.Uint{Width: 8}},
		sema.StorageRef{To: sema.Uint{Width: 256}},
		sema.Slice{Elem: sema.Bytes{Width: 1}},
		sema.BufferPointer{},
		sema.ExternalFunction{},
	}
}

// NewLoweringsCommand creates the lowerings command.
func NewLoweringsCommand(rootOpts *RootOptions) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "lowerings",
		Short: "Show how source types lower for a target",
		Long: `Show the IR type each representative source type lowers to under the
given target's width parameters.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLowerings(rootOpts, target, cmd)
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "solana", "platform target")
	return cmd
}

func runLowerings(opts *RootOptions, targetName string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	target, err := platform.ByName(targetName)
	if err != nil {
		_ = formatter.Error("E001", err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	l := lower.New(target)
	sources := representativeTypes()
	formatter.VerboseLog("Lowering %d type(s) for %s", len(sources), target.Name)

	lowerings := make([]Lowering, 0, len(sources))
	for _, src := range sources {
		lowered, err := l.LowerType(src)
		if err != nil {
			_ = formatter.Error("E002", err.Error(), src.String())
			return WrapExitError(ExitFailure, "lowering failed", err)
		}
		lowerings = append(lowerings, Lowering{Source: src.String(), Lowered: lowered.String()})
	}

	if formatter.Format == "json" {
		return formatter.Success(lowerings)
	}

	for _, lw := range lowerings {
		fmt.Fprintf(formatter.Writer, "%-32s -> %s\n", lw.Source, lw.Lowered)
	}
	return nil
}
