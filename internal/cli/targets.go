package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fanyi-zhao/solang/internal/platform"
)

// TargetInfo is the JSON shape of one platform target.
type TargetInfo struct {
	Name           string `json:"name"`
	AddressLength  int    `json:"address_length"`
	ValueLength    int    `json:"value_length"`
	SelectorLength int    `json:"selector_length"`
	PointerWidth   int    `json:"pointer_width"`
}

// NewTargetsCommand creates the targets command.
func NewTargetsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List supported platform targets",
		Long: `List the platform targets the compiler can lower for, with the
type-width parameters each one fixes (address, value, selector, pointer).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTargets(rootOpts, cmd)
		},
	}
}

func runTargets(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	targets, err := platform.Targets()
	if err != nil {
		_ = formatter.Error("E001", err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading targets failed", err)
	}
	formatter.VerboseLog("Loaded %d target(s)", len(targets))

	if formatter.Format == "json" {
		infos := make([]TargetInfo, len(targets))
		for i, t := range targets {
			infos[i] = TargetInfo{
				Name:           t.Name,
				AddressLength:  t.AddressLength,
				ValueLength:    t.ValueLength,
				SelectorLength: t.SelectorLength,
				PointerWidth:   t.PointerWidth,
			}
		}
		return formatter.Success(infos)
	}

	for _, t := range targets {
		fmt.Fprintf(formatter.Writer, "%-10s address:%d value:%d selector:%d pointer:%d\n",
			t.Name, t.AddressLength, t.ValueLength, t.SelectorLength, t.PointerWidth)
	}
	return nil
}
