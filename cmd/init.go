package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "hotedit.dev/pkg/hotedit/internal/model"
)

const forceFlagName = "force"

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write hotedit.yaml and create the ledger directory",
		Long: `Write hotedit.yaml in the current working directory with the current
defaults (output directory, resolve parallelism, logging) and create the output
directory that remap uses for the ledger and the edit journal.

An existing hotedit.yaml is kept unless --force is given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			write := viper.SafeWriteConfigAs
			if force {
				write = viper.WriteConfigAs
			}

			if err := write(targetPath); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			output := viper.GetString(outputFlagName)
			if err := fsAdapter.MkdirAll(cmd.Context(), m.Path(output)); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			cmd.Printf("Wrote %s\n", targetPath)
			cmd.Printf("Ledger and journal go to %s\n", output)

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, forceFlagName, false, "overwrite an existing hotedit.yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}
