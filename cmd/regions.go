package cmd

import (
	"github.com/spf13/cobra"

	"hotedit.dev/pkg/hotedit/internal/domain"
)

var regionsParallelFlag int
var regionsMatchingFlag []string

// regionsCmd represents the regions command.
var regionsCmd = newRegionsCmd()

func newRegionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regions <session.yaml>",
		Short: "Show the exception regions enclosing each active statement",
		Long: `Show, for every active statement of a session, the exception handler
regions that enclose it, innermost first. Statements in documents that are
not known to match the running code are reported as unavailable; use
--matching to mark documents as matching.

` + sessionFileHelp,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Regions(cmd.Context(), domain.RegionsArgs{
				SessionArgs: sessionArgs(args[0], regionsMatchingFlag),
			})
		},
	}

	configureSessionFlags(cmd, &regionsParallelFlag, &regionsMatchingFlag)

	return cmd
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}
