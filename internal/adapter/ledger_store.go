package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"gopkg.in/yaml.v3"

	m "hotedit.dev/pkg/hotedit/internal/model"
)

// LedgerFileName is the file, inside the output directory, holding the
// non-remappable region ledger carried between edit sessions.
const LedgerFileName = "ledger.yaml"

const ledgerFormatVersion = 1

// LedgerStore persists and retrieves the ledger handed from one edit session
// to the next.
type LedgerStore interface {
	SaveLedger(ctx context.Context, dir m.Path, ledger m.Ledger) error
	LoadLedger(ctx context.Context, dir m.Path) (m.Ledger, error)
}

type ledgerDocument struct {
	Version int             `yaml:"version"`
	Methods []m.LedgerEntry `yaml:"methods"`
}

type yamlLedgerStore struct {
	fs SourceFSAdapter
}

// NewLedgerStore constructs a YAML backed LedgerStore.
func NewLedgerStore(fs SourceFSAdapter) LedgerStore {
	return &yamlLedgerStore{fs: fs}
}

// SaveLedger writes the ledger to a temporary file and renames it into place,
// so readers never observe a partially written ledger.
func (s *yamlLedgerStore) SaveLedger(ctx context.Context, dir m.Path, ledger m.Ledger) error {
	if err := s.fs.MkdirAll(ctx, dir); err != nil {
		slog.Error("Failed to create ledger directory", "dir", dir, "error", err)
		return fmt.Errorf("create ledger directory: %w", err)
	}

	content, err := yaml.Marshal(ledgerDocument{Version: ledgerFormatVersion, Methods: ledger.Entries()})
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}

	target := s.fs.JoinPath(ctx, string(dir), LedgerFileName)
	tmp := target + ".tmp"

	if err := s.fs.WriteFile(ctx, tmp, content, 0o600); err != nil {
		slog.Error("Failed to write ledger", "path", tmp, "error", err)
		return fmt.Errorf("write ledger: %w", err)
	}

	if err := s.fs.Rename(ctx, tmp, target); err != nil {
		slog.Error("Failed to publish ledger", "path", target, "error", err)
		return fmt.Errorf("publish ledger: %w", err)
	}

	slog.Debug("Saved ledger", "path", target, "methods", ledger.Len())

	return nil
}

// LoadLedger returns an empty ledger when none was saved yet.
func (s *yamlLedgerStore) LoadLedger(ctx context.Context, dir m.Path) (m.Ledger, error) {
	path := s.fs.JoinPath(ctx, string(dir), LedgerFileName)

	content, err := s.fs.ReadFile(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		return m.Ledger{}, nil
	}

	if err != nil {
		slog.Error("Failed to read ledger", "path", path, "error", err)
		return m.Ledger{}, fmt.Errorf("read ledger: %w", err)
	}

	var doc ledgerDocument
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return m.Ledger{}, fmt.Errorf("parse ledger %s: %w", path, err)
	}

	if doc.Version != ledgerFormatVersion {
		return m.Ledger{}, fmt.Errorf("ledger %s has unsupported version %d", path, doc.Version)
	}

	return m.NewLedger(doc.Methods...), nil
}
