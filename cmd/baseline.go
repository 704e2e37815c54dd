package cmd

import (
	"github.com/spf13/cobra"

	"hotedit.dev/pkg/hotedit/internal/domain"
)

var baselineParallelFlag int
var baselineMatchingFlag []string

// baselineCmd represents the baseline command.
var baselineCmd = newBaselineCmd()

func newBaselineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "baseline <session.yaml>",
		Short: "Resolve the active statements of a session",
		Long: `Resolve the frames reported in a session file into the baseline of active
statements: one per instruction, ordered by the debugger's statement id,
with the documents each statement appears in.

` + sessionFileHelp,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Baseline(cmd.Context(), domain.BaselineArgs{
				SessionArgs: sessionArgs(args[0], baselineMatchingFlag),
			})
		},
	}

	configureSessionFlags(cmd, &baselineParallelFlag, &baselineMatchingFlag)

	return cmd
}

func init() {
	rootCmd.AddCommand(baselineCmd)
}
