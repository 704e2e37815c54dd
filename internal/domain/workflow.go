package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hotedit.dev/pkg/hotedit/internal/adapter"
	"hotedit.dev/pkg/hotedit/internal/controller"
	m "hotedit.dev/pkg/hotedit/internal/model"
)

// ErrNoEdit is returned by Remap when the session file carries no edit.
var ErrNoEdit = errors.New("session has no edit")

// SessionArgs selects the session file and how to read it.
type SessionArgs struct {
	Session m.Path
	// Matching lists documents whose state is forced to matching, as if the
	// debugger had confirmed them.
	Matching []m.DocumentID
	Parallel int
}

// BaselineArgs contains the arguments for showing the baseline.
type BaselineArgs struct {
	SessionArgs
}

// RegionsArgs contains the arguments for showing base exception regions.
type RegionsArgs struct {
	SessionArgs
}

// RemapArgs contains the arguments for remapping the session's edit.
type RemapArgs struct {
	SessionArgs
	Output m.Path
	DryRun bool
}

// ViewArgs contains the arguments for viewing the persisted ledger and journal.
type ViewArgs struct {
	Output m.Path
}

// Workflow drives the engine for each CLI command.
type Workflow interface {
	Baseline(ctx context.Context, args BaselineArgs) error
	Regions(ctx context.Context, args RegionsArgs) error
	Remap(ctx context.Context, args RemapArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.SessionLoader
	adapter.LedgerStore
	adapter.EditJournal
	controller.UI
	Remapper

	fs      adapter.SourceFSAdapter
	goFiles adapter.GoFileAdapter
	now     func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	loader adapter.SessionLoader,
	ledgerStore adapter.LedgerStore,
	journal adapter.EditJournal,
	fs adapter.SourceFSAdapter,
	goFiles adapter.GoFileAdapter,
	ui controller.UI,
	remapper Remapper,
) Workflow {
	return &workflow{
		SessionLoader: loader,
		LedgerStore:   ledgerStore,
		EditJournal:   journal,
		UI:            ui,
		Remapper:      remapper,
		fs:            fs,
		goFiles:       goFiles,
		now:           time.Now,
	}
}

// openedSession bundles a loaded session with the edit session built over it.
type openedSession struct {
	session *m.Session
	edit    *EditSession
}

func (w *workflow) openSession(ctx context.Context, args SessionArgs) (*openedSession, error) {
	session, err := w.LoadSession(ctx, args.Session)
	if err != nil {
		slog.Error("Failed to load session", "path", args.Session, "error", err)
		return nil, fmt.Errorf("load session: %w", err)
	}

	workspace := adapter.NewSessionWorkspace(session)
	oracle := adapter.NewChecksumStateOracle(w.fs, session.Documents)

	for _, doc := range args.Matching {
		if _, ok := workspace.Document(doc); !ok {
			return nil, fmt.Errorf("unknown document %q", doc)
		}

		oracle.Transition(doc, m.DocumentMatching)
	}

	parallel := args.Parallel
	if parallel <= 0 {
		parallel = DefaultResolveParallelism
	}

	locator := NewRegionLocator(oracle, adapter.NewSessionRegionDiscovery(w.fs, w.goFiles, workspace))
	edit := NewEditSession(session.Name, workspace, workspace, NewResolver(parallel), locator)

	slog.Debug("Opened session", "name", session.Name, "documents", len(session.Documents), "frames", len(session.Frames))

	return &openedSession{session: session, edit: edit}, nil
}

func (w *workflow) Baseline(ctx context.Context, args BaselineArgs) error {
	opened, err := w.openSession(ctx, args.SessionArgs)
	if err != nil {
		return err
	}

	baseline, err := opened.edit.Baseline(ctx)
	if err != nil {
		return err
	}

	if err := w.DisplayBaseline(ctx, baseline); err != nil {
		slog.Error("Failed to display baseline", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) Regions(ctx context.Context, args RegionsArgs) error {
	opened, err := w.openSession(ctx, args.SessionArgs)
	if err != nil {
		return err
	}

	baseline, err := opened.edit.Baseline(ctx)
	if err != nil {
		return err
	}

	regions, err := opened.edit.BaseExceptionRegions(ctx)
	if err != nil {
		return fmt.Errorf("exception regions: %w", err)
	}

	if err := w.DisplayExceptionRegions(ctx, baseline, regions); err != nil {
		slog.Error("Failed to display exception regions", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// Remap computes the updates for the session's edit against the ledger saved
// in the output directory. Unless DryRun is set the new ledger replaces the
// saved one and the edit is journaled; nothing is written when computing the
// updates fails.
func (w *workflow) Remap(ctx context.Context, args RemapArgs) error {
	opened, err := w.openSession(ctx, args.SessionArgs)
	if err != nil {
		return err
	}

	edit := opened.session.Edit
	if edit == nil {
		return fmt.Errorf("%s: %w", args.Session, ErrNoEdit)
	}

	baseline, err := opened.edit.Baseline(ctx)
	if err != nil {
		return err
	}

	regions, err := opened.edit.BaseExceptionRegions(ctx)
	if err != nil {
		return fmt.Errorf("exception regions: %w", err)
	}

	prior, err := w.LoadLedger(ctx, args.Output)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}

	result, err := w.ComputeUpdates(
		opened.session.Module,
		baseline,
		regions,
		m.NewTokenSet(edit.Recompiled...),
		prior,
		edit.Documents,
	)
	if err != nil {
		slog.Error("Failed to compute updates", "session", opened.session.Name, "error", err)
		return fmt.Errorf("compute updates: %w", err)
	}

	diff, err := LedgerDiff(prior, result.Ledger)
	if err != nil {
		return fmt.Errorf("ledger diff: %w", err)
	}

	if !args.DryRun {
		if err := w.publish(ctx, args.Output, opened.session, result); err != nil {
			return err
		}
	}

	if err := w.DisplayUpdates(ctx, result, diff); err != nil {
		slog.Error("Failed to display updates", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) publish(ctx context.Context, output m.Path, session *m.Session, result m.UpdateResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := w.SaveLedger(ctx, output, result.Ledger); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}

	record := m.EditRecord{
		Session:          session.Name,
		AppliedAt:        w.now().UTC(),
		Module:           session.Module,
		Recompiled:       append([]uint32(nil), session.Edit.Recompiled...),
		ActiveStatements: result.ActiveStatements,
		ExceptionRegions: result.ExceptionRegions,
		Ledger:           result.Ledger.Entries(),
	}

	if err := w.AppendEdit(ctx, output, record); err != nil {
		return fmt.Errorf("journal edit: %w", err)
	}

	slog.Info("Applied edit",
		"session", session.Name,
		"statements", len(result.ActiveStatements),
		"regions", len(result.ExceptionRegions),
		"methods", result.Ledger.Len())

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	ledger, err := w.LoadLedger(ctx, args.Output)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}

	records, err := w.Edits(ctx, args.Output)
	if err != nil {
		return fmt.Errorf("load journal: %w", err)
	}

	if err := w.DisplayLedger(ctx, ledger); err != nil {
		slog.Error("Failed to display ledger", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	if err := w.DisplayJournal(ctx, records); err != nil {
		slog.Error("Failed to display journal", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}
