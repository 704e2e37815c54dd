package adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "hotedit.dev/pkg/hotedit/internal/model"
)

func TestSessionRegionDiscovery_HandlerRegions(t *testing.T) {
	dir := t.TempDir()
	goPath := filepath.Join(dir, "main.go")
	writeTestFile(t, goPath, deferSource)

	session := &m.Session{
		Projects: []m.SessionProject{
			{ID: "cs", Language: "csharp", EditAndContinue: true},
			{ID: "go", Language: "go", EditAndContinue: true},
		},
		Documents: []m.SessionDocument{
			{ID: "declared", Path: "/src/Program.cs", Project: "cs", Version: "v7", Handlers: []m.Span{m.NewSpan(2, 4, 6, 5)}},
			{ID: "bare", Path: "/src/Other.cs", Project: "cs"},
			{ID: "discovered", Path: m.Path(goPath), Project: "go", Checksum: "abc"},
			{ID: "by-extension", Path: m.Path(goPath)},
			{ID: "missing", Path: m.Path(filepath.Join(dir, "missing.go")), Project: "go"},
		},
	}

	discovery := NewSessionRegionDiscovery(NewLocalSourceFSAdapter(), NewLocalGoFileAdapter(), NewSessionWorkspace(session))
	ctx := context.Background()

	t.Run("declared handlers are served as is", func(t *testing.T) {
		version, spans, err := discovery.HandlerRegions(ctx, "declared")
		require.NoError(t, err)
		assert.Equal(t, "v7", version)
		assert.Equal(t, []m.Span{m.NewSpan(2, 4, 6, 5)}, spans)
	})

	t.Run("non-Go document without handlers has none", func(t *testing.T) {
		version, spans, err := discovery.HandlerRegions(ctx, "bare")
		require.NoError(t, err)
		assert.Equal(t, "static", version)
		assert.Empty(t, spans)
	})

	t.Run("Go document regions come from defers", func(t *testing.T) {
		version, spans, err := discovery.HandlerRegions(ctx, "discovered")
		require.NoError(t, err)
		assert.Equal(t, "abc", version)
		assert.Len(t, spans, 3)
	})

	t.Run("Go language inferred from extension", func(t *testing.T) {
		version, spans, err := discovery.HandlerRegions(ctx, "by-extension")
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("len:%d", len(deferSource)), version)
		assert.Len(t, spans, 3)
	})

	t.Run("unreadable Go document fails", func(t *testing.T) {
		_, _, err := discovery.HandlerRegions(ctx, "missing")
		require.Error(t, err)
	})

	t.Run("unknown document fails", func(t *testing.T) {
		_, _, err := discovery.HandlerRegions(ctx, "ghost")
		require.Error(t, err)
	})
}
