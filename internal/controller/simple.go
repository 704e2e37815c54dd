package controller

import (
	"context"

	"github.com/spf13/cobra"

	m "hotedit.dev/pkg/hotedit/internal/model"
)

// SimpleUI implements UI using cobra Command's Printf.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayBaseline prints the active statements table.
func (s *SimpleUI) DisplayBaseline(ctx context.Context, baseline *m.Baseline) error {
	return s.print(ctx, renderBaseline(baseline))
}

// DisplayExceptionRegions prints the regions of every statement.
func (s *SimpleUI) DisplayExceptionRegions(ctx context.Context, baseline *m.Baseline, regions map[int]m.ExceptionRegions) error {
	return s.print(ctx, renderExceptionRegions(baseline, regions))
}

// DisplayUpdates prints the update records, the new ledger and its diff.
func (s *SimpleUI) DisplayUpdates(ctx context.Context, result m.UpdateResult, ledgerDiff string) error {
	return s.print(ctx, renderUpdates(result, ledgerDiff))
}

// DisplayLedger prints the persisted ledger.
func (s *SimpleUI) DisplayLedger(ctx context.Context, ledger m.Ledger) error {
	return s.print(ctx, renderLedger(ledger))
}

// DisplayJournal prints the applied edits.
func (s *SimpleUI) DisplayJournal(ctx context.Context, records []m.EditRecord) error {
	return s.print(ctx, renderJournal(records))
}

func (s *SimpleUI) print(ctx context.Context, sections []section) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, sec := range sections {
		s.cmd.Printf("\n%s\n\n%s", sec.title, sec.body)
	}

	return nil
}
