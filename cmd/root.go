// Package cmd provides the root command and CLI setup for hotedit.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"hotedit.dev/pkg/hotedit/internal/adapter"
	"hotedit.dev/pkg/hotedit/internal/controller"
	"hotedit.dev/pkg/hotedit/internal/domain"
	m "hotedit.dev/pkg/hotedit/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var goFileAdapter adapter.GoFileAdapter
var sessionLoader adapter.SessionLoader
var ledgerStore adapter.LedgerStore
var editJournal adapter.EditJournal
var remapper domain.Remapper
var workflow domain.Workflow
var ui controller.UI

// outputDirFlag is a root-level flag shared by commands that read/write the ledger.
var outputDirFlag string

// verboseFlag forces debug logging.
var verboseFlag bool

// logFileFlag overrides the configured log file.
var logFileFlag string

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	goFileAdapter = adapter.NewLocalGoFileAdapter()
	sessionLoader = adapter.NewSessionLoader(fsAdapter)
	ledgerStore = adapter.NewLedgerStore(fsAdapter)
	editJournal = adapter.NewEditJournal(fsAdapter)
	remapper = domain.NewRemapper()
	workflow = domain.NewWorkflow(
		sessionLoader,
		ledgerStore,
		editJournal,
		fsAdapter,
		goFileAdapter,
		ui,
		remapper,
	)
}

const sessionFileHelp = `A session file is a YAML document describing what the debugger reported:
the module, its projects and documents, the active stack frames and,
optionally, the edit that was applied and which methods were recompiled.`

const rootLongDescription = `Hotedit tracks active statements and exception regions of a paused program
across edit-and-continue edits. It resolves the baseline of active
statements, locates their enclosing exception regions, and remaps spans
after each edit while accumulating line deltas for methods that were not
recompiled.

` + sessionFileHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hotedit",
		Short: "Edit-and-continue active statement tracking",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for the ledger and edit journal",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFlagName), logFilenameKey)
}

// configureSessionFlags adds the flags shared by commands reading a session file.
func configureSessionFlags(cmd *cobra.Command, parallel *int, matching *[]string) {
	cmd.Flags().IntVarP(parallel, parallelFlagName, "p", viper.GetInt(resolveParallelConfigKey), "number of concurrent document lookups")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), resolveParallelConfigKey)
	cmd.Flags().StringSliceVar(matching, matchingFlagName, nil, "document ids to treat as matching the running code (can be repeated)")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func sessionArgs(path string, matching []string) domain.SessionArgs {
	docs := make([]m.DocumentID, 0, len(matching))
	for _, doc := range matching {
		docs = append(docs, m.DocumentID(doc))
	}

	return domain.SessionArgs{
		Session:  m.Path(path),
		Matching: docs,
		Parallel: resolveParallelism(viper.GetViper()),
	}
}
