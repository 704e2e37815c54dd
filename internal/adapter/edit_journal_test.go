package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "hotedit.dev/pkg/hotedit/internal/model"
)

func TestEditJournal_AppendAndRead(t *testing.T) {
	dir := m.Path(t.TempDir())
	journal := NewEditJournal(NewLocalSourceFSAdapter())
	ctx := context.Background()

	method := m.MethodID{Module: "app", Token: 0x06000001, Version: 1}
	first := m.EditRecord{
		Session:    "first",
		AppliedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Module:     "app",
		Recompiled: []uint32{0x06000002},
		ExceptionRegions: []m.ExceptionRegionUpdate{
			{Method: method, NewSpan: m.NewSpan(5, 0, 8, 1), Delta: 1},
		},
		Ledger: []m.LedgerEntry{{Method: method, Regions: []m.NonRemappableRegion{{OldSpan: m.NewSpan(4, 0, 7, 1), Delta: 1}}}},
	}
	second := m.EditRecord{Session: "second", AppliedAt: first.AppliedAt.Add(time.Minute), Module: "app"}

	require.NoError(t, journal.AppendEdit(ctx, dir, first))
	require.NoError(t, journal.AppendEdit(ctx, dir, second))

	records, err := journal.Edits(ctx, dir)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, first, records[0])
	assert.Equal(t, "second", records[1].Session)
}

func TestEditJournal_MissingJournal(t *testing.T) {
	journal := NewEditJournal(NewLocalSourceFSAdapter())

	records, err := journal.Edits(context.Background(), m.Path(t.TempDir()))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestEditJournal_Cancelled(t *testing.T) {
	journal := NewEditJournal(NewLocalSourceFSAdapter())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := journal.AppendEdit(ctx, m.Path(t.TempDir()), m.EditRecord{Session: "x"})
	require.ErrorIs(t, err, context.Canceled)
}
