package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	m "hotedit.dev/pkg/hotedit/internal/model"
	"hotedit.dev/pkg/hotedit/pkg"
)

// JournalFileName is the name of the edit journal inside the output directory.
const JournalFileName = "journal.gob"

// EditJournal records every applied edit in the output directory.
type EditJournal interface {
	AppendEdit(ctx context.Context, dir m.Path, record m.EditRecord) error
	Edits(ctx context.Context, dir m.Path) ([]m.EditRecord, error)
}

type gobEditJournal struct {
	fs SourceFSAdapter
}

// NewEditJournal constructs an EditJournal backed by a gob journal file.
func NewEditJournal(fs SourceFSAdapter) EditJournal {
	return &gobEditJournal{fs: fs}
}

func (j *gobEditJournal) AppendEdit(ctx context.Context, dir m.Path, record m.EditRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	journal, err := pkg.OpenJournal[m.EditRecord](string(j.fs.JoinPath(ctx, string(dir), JournalFileName)))
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}

	if err := journal.Append(record); err != nil {
		_ = journal.Close()

		slog.Error("Failed to append edit", "path", journal.Path(), "error", err)

		return fmt.Errorf("append edit: %w", err)
	}

	return journal.Close()
}

// Edits returns the recorded edits in the order they were applied. A missing
// journal yields no edits.
func (j *gobEditJournal) Edits(ctx context.Context, dir m.Path) ([]m.EditRecord, error) {
	path := j.fs.JoinPath(ctx, string(dir), JournalFileName)

	if _, err := j.fs.FileInfo(ctx, path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		slog.Error("Failed to stat journal", "path", path, "error", err)

		return nil, fmt.Errorf("stat journal: %w", err)
	}

	journal, err := pkg.OpenJournal[m.EditRecord](string(path))
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	defer func() { _ = journal.Close() }()

	records := make([]m.EditRecord, 0, journal.Len())

	err = journal.Range(func(_ uint64, record m.EditRecord) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		records = append(records, record)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}

	return records, nil
}
