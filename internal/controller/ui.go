// Package controller renders baselines, updates and ledgers for the user.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	m "hotedit.dev/pkg/hotedit/internal/model"
)

// UI defines the interface for displaying engine results. Implementations can
// use different output methods (simple text, TUI).
type UI interface {
	DisplayBaseline(ctx context.Context, baseline *m.Baseline) error
	DisplayExceptionRegions(ctx context.Context, baseline *m.Baseline, regions map[int]m.ExceptionRegions) error
	DisplayUpdates(ctx context.Context, result m.UpdateResult, ledgerDiff string) error
	DisplayLedger(ctx context.Context, ledger m.Ledger) error
	DisplayJournal(ctx context.Context, records []m.EditRecord) error
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
