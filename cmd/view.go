package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hotedit.dev/pkg/hotedit/internal/domain"
	m "hotedit.dev/pkg/hotedit/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the saved ledger and applied edits",
		Long:  "View the non-remappable region ledger and the journal of applied edits from an output directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			output := m.Path(viper.GetString(outputFlagName))
			return workflow.View(cmd.Context(), domain.ViewArgs{Output: output})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
