package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "hotedit.dev/pkg/hotedit/internal/model"
)

func TestLedgerStore_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	store := NewLedgerStore(NewLocalSourceFSAdapter())
	ctx := context.Background()

	method := m.MethodID{Module: "app", Token: 0x06000003, Version: 1}
	ledger := m.NewLedger(m.LedgerEntry{
		Method: method,
		Regions: []m.NonRemappableRegion{
			{OldSpan: m.NewSpan(10, 4, 10, 20), Delta: 2},
			{OldSpan: m.NewSpan(8, 0, 12, 1), Delta: 0, IsExceptionRegion: true},
		},
	})

	require.NoError(t, store.SaveLedger(ctx, m.Path(dir), ledger))

	_, err := os.Stat(filepath.Join(dir, LedgerFileName+".tmp"))
	assert.True(t, os.IsNotExist(err), "temporary ledger must be renamed away")

	loaded, err := store.LoadLedger(ctx, m.Path(dir))
	require.NoError(t, err)
	assert.True(t, ledger.Equal(loaded))
	assert.Equal(t, ledger.Entries(), loaded.Entries())
}

func TestLedgerStore_MissingLedgerIsEmpty(t *testing.T) {
	store := NewLedgerStore(NewLocalSourceFSAdapter())

	ledger, err := store.LoadLedger(context.Background(), m.Path(t.TempDir()))
	require.NoError(t, err)
	assert.True(t, ledger.IsEmpty())
}

func TestLedgerStore_RejectsUnknownVersion(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, LedgerFileName), "version: 9\nmethods: []\n")

	store := NewLedgerStore(NewLocalSourceFSAdapter())

	_, err := store.LoadLedger(context.Background(), m.Path(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported version")
}

func TestLedgerStore_RejectsMalformedLedger(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, LedgerFileName), "version: 1\nmethods:\n  - regions:\n      - oldSpan: nope\n")

	store := NewLedgerStore(NewLocalSourceFSAdapter())

	_, err := store.LoadLedger(context.Background(), m.Path(dir))
	require.Error(t, err)
}
