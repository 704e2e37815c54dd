package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hotedit.dev/pkg/hotedit/internal/domain"
	m "hotedit.dev/pkg/hotedit/internal/model"
)

var remapParallelFlag int
var remapMatchingFlag []string
var remapDryRunFlag bool

// remapCmd represents the remap command.
var remapCmd = newRemapCmd()

func newRemapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remap <session.yaml>",
		Short: "Compute the updates for the edit of a session",
		Long: `Compute active statement updates for recompiled methods and exception
region updates for the others, starting from the ledger saved in the output
directory. The new ledger replaces the saved one and the edit is appended to
the journal, unless --dry-run is given.

` + sessionFileHelp,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Remap(cmd.Context(), domain.RemapArgs{
				SessionArgs: sessionArgs(args[0], remapMatchingFlag),
				Output:      m.Path(viper.GetString(outputFlagName)),
				DryRun:      remapDryRunFlag,
			})
		},
	}

	configureSessionFlags(cmd, &remapParallelFlag, &remapMatchingFlag)
	cmd.Flags().BoolVar(&remapDryRunFlag, dryRunFlagName, false, "compute and show the updates without saving the ledger")

	return cmd
}

func init() {
	rootCmd.AddCommand(remapCmd)
}
