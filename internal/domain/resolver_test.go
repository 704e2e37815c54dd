package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "hotedit.dev/pkg/hotedit/internal/adapter/mocks"
	"hotedit.dev/pkg/hotedit/internal/domain"
	m "hotedit.dev/pkg/hotedit/internal/model"
)

func TestResolver_OrdersByStatementID(t *testing.T) {
	lookup := adaptermocks.NewMockDocumentLookup(t)
	lookup.EXPECT().Documents(mock.Anything, m.Path("/src/a.go")).
		Return([]m.DocumentInfo{doc("a", "/src/a.go", "p", true)}, nil).Once()

	reports := []m.ActiveStatementReport{
		frame(3, 1, 0, "/src/a.go", m.NewSpan(5, 0, 5, 9), m.FlagLeafFrame),
		frame(1, 2, 4, "/src/a.go", m.NewSpan(9, 0, 9, 9), m.FlagNonLeafFrame),
		frame(2, 3, 8, "/src/a.go", m.NewSpan(1, 0, 1, 9), m.FlagNonLeafFrame),
	}

	baseline, err := domain.NewResolver(2).ResolveBaseline(context.Background(), reports, lookup)
	require.NoError(t, err)
	require.Equal(t, 3, baseline.Len())

	statements := baseline.Statements()
	assert.Equal(t, method(2), statements[0].Method())
	assert.Equal(t, method(3), statements[1].Method())
	assert.Equal(t, method(1), statements[2].Method())

	for i, statement := range statements {
		assert.Equal(t, i, statement.Ordinal)
		assert.Equal(t, m.DocumentID("a"), statement.Document)
	}
}

func TestResolver_MergesFramesOfSameInstruction(t *testing.T) {
	lookup := adaptermocks.NewMockDocumentLookup(t)
	lookup.EXPECT().Documents(mock.Anything, m.Path("/src/a.go")).
		Return([]m.DocumentInfo{doc("a", "/src/a.go", "p", true)}, nil)

	span := m.NewSpan(4, 2, 4, 20)
	reports := []m.ActiveStatementReport{
		frame(7, 1, 16, "/src/a.go", span, m.FlagLeafFrame),
		frame(2, 1, 16, "/src/a.go", span, m.FlagNonLeafFrame|m.FlagMethodUpToDate),
		frame(5, 4, 0, "/src/a.go", m.NewSpan(8, 0, 8, 1), m.FlagLeafFrame),
	}

	baseline, err := domain.NewResolver(0).ResolveBaseline(context.Background(), reports, lookup)
	require.NoError(t, err)
	require.Equal(t, 2, baseline.Len())

	merged, ok := baseline.Statement(0)
	require.True(t, ok)
	assert.Equal(t, method(1), merged.Method())
	assert.Equal(t, m.FlagLeafFrame|m.FlagNonLeafFrame|m.FlagMethodUpToDate, merged.Flags)
	assert.True(t, merged.IsLeaf())
	assert.True(t, merged.IsNonLeaf())
}

func TestResolver_DropsUnmappableFrames(t *testing.T) {
	lookup := adaptermocks.NewMockDocumentLookup(t)
	lookup.EXPECT().Documents(mock.Anything, m.Path("/src/a.go")).
		Return([]m.DocumentInfo{doc("a", "/src/a.go", "p", true)}, nil)
	lookup.EXPECT().Documents(mock.Anything, m.Path("/src/unknown.go")).Return(nil, nil)
	lookup.EXPECT().Documents(mock.Anything, m.Path("/src/tool.go")).
		Return([]m.DocumentInfo{doc("tool", "/src/tool.go", "tools", false)}, nil)

	noSpan := frame(1, 1, 0, "/src/a.go", m.NewSpan(0, 0, 0, 1), m.FlagLeafFrame)
	noSpan.Span = nil

	reports := []m.ActiveStatementReport{
		noSpan,
		frame(2, 2, 0, "/src/unknown.go", m.NewSpan(1, 0, 1, 1), m.FlagLeafFrame),
		frame(3, 3, 0, "/src/tool.go", m.NewSpan(2, 0, 2, 1), m.FlagLeafFrame),
		frame(4, 4, 0, "/src/a.go", m.NewSpan(3, 0, 3, 1), m.FlagLeafFrame),
	}

	baseline, err := domain.NewResolver(4).ResolveBaseline(context.Background(), reports, lookup)
	require.NoError(t, err)
	require.Equal(t, 1, baseline.Len())

	only, _ := baseline.Statement(0)
	assert.Equal(t, method(4), only.Method())
}

func TestResolver_LinkedDocuments(t *testing.T) {
	lookup := adaptermocks.NewMockDocumentLookup(t)
	lookup.EXPECT().Documents(mock.Anything, m.Path("/src/shared.go")).Return([]m.DocumentInfo{
		doc("p1/shared", "/src/shared.go", "p1", true),
		doc("p2/shared", "/src/shared.go", "p2", false),
		doc("p3/shared", "/src/shared.go", "p3", true),
	}, nil)

	reports := []m.ActiveStatementReport{
		frame(1, 1, 0, "/src/shared.go", m.NewSpan(3, 0, 3, 1), m.FlagLeafFrame),
	}

	baseline, err := domain.NewResolver(1).ResolveBaseline(context.Background(), reports, lookup)
	require.NoError(t, err)

	statement, _ := baseline.Statement(0)
	assert.Equal(t, m.DocumentID("p1/shared"), statement.Document)
	assert.Equal(t, []m.DocumentID{"p1/shared", "p3/shared"}, statement.Documents)
	assert.Len(t, baseline.ByDocument("p3/shared"), 1)
}

func TestResolver_LinkedDocumentOfAnotherModule(t *testing.T) {
	foreign := doc("lib/shared", "/src/shared.go", "lib", true)
	foreign.Module = "other"

	lookup := adaptermocks.NewMockDocumentLookup(t)
	lookup.EXPECT().Documents(mock.Anything, m.Path("/src/shared.go")).Return([]m.DocumentInfo{
		doc("app/shared", "/src/shared.go", "app", true),
		foreign,
	}, nil)

	reports := []m.ActiveStatementReport{
		frame(1, 1, 0, "/src/shared.go", m.NewSpan(3, 0, 3, 1), m.FlagLeafFrame),
	}

	baseline, err := domain.NewResolver(1).ResolveBaseline(context.Background(), reports, lookup)
	require.NoError(t, err)
	require.Equal(t, 1, baseline.Len())

	statement, _ := baseline.Statement(0)
	assert.Equal(t, testModule, statement.Method().Module)
	assert.Equal(t, m.DocumentID("app/shared"), statement.Document)
	assert.Equal(t, []m.DocumentID{"app/shared", "lib/shared"}, statement.Documents)

	linked := baseline.ByDocument("lib/shared")
	require.Len(t, linked, 1)
	assert.Equal(t, 0, linked[0].Ordinal)
}

func TestResolver_InconsistentSpan(t *testing.T) {
	lookup := adaptermocks.NewMockDocumentLookup(t)
	lookup.EXPECT().Documents(mock.Anything, mock.Anything).
		Return([]m.DocumentInfo{doc("a", "/src/a.go", "p", true)}, nil)

	reports := []m.ActiveStatementReport{
		frame(1, 1, 8, "/src/a.go", m.NewSpan(3, 0, 3, 9), m.FlagLeafFrame),
		frame(2, 1, 8, "/src/a.go", m.NewSpan(4, 0, 4, 9), m.FlagNonLeafFrame),
	}

	_, err := domain.NewResolver(1).ResolveBaseline(context.Background(), reports, lookup)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInconsistentSpan))
}

func TestResolver_LookupFailureDropsOnlyThatPath(t *testing.T) {
	lookup := adaptermocks.NewMockDocumentLookup(t)
	lookup.EXPECT().Documents(mock.Anything, m.Path("/src/a.go")).
		Return([]m.DocumentInfo{doc("a", "/src/a.go", "p", true)}, nil)
	lookup.EXPECT().Documents(mock.Anything, m.Path("/src/broken.go")).
		Return(nil, errors.New("workspace unavailable"))

	reports := []m.ActiveStatementReport{
		frame(1, 1, 0, "/src/broken.go", m.NewSpan(1, 0, 1, 1), m.FlagLeafFrame),
		frame(2, 2, 0, "/src/a.go", m.NewSpan(2, 0, 2, 1), m.FlagLeafFrame),
	}

	baseline, err := domain.NewResolver(2).ResolveBaseline(context.Background(), reports, lookup)
	require.NoError(t, err)
	require.Equal(t, 1, baseline.Len())

	statement, _ := baseline.Statement(0)
	assert.Equal(t, method(2), statement.Method())
}

func TestResolver_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	lookup := adaptermocks.NewMockDocumentLookup(t)
	lookup.EXPECT().Documents(mock.Anything, mock.Anything).
		Run(func(context.Context, m.Path) { cancel() }).
		Return(nil, context.Canceled).Maybe()

	reports := []m.ActiveStatementReport{
		frame(1, 1, 0, "/src/a.go", m.NewSpan(1, 0, 1, 1), m.FlagLeafFrame),
	}

	_, err := domain.NewResolver(1).ResolveBaseline(ctx, reports, lookup)
	require.ErrorIs(t, err, context.Canceled)
}

func TestResolver_Deterministic(t *testing.T) {
	lookup := adaptermocks.NewMockDocumentLookup(t)
	lookup.EXPECT().Documents(mock.Anything, m.Path("/src/a.go")).
		Return([]m.DocumentInfo{doc("a", "/src/a.go", "p", true)}, nil)
	lookup.EXPECT().Documents(mock.Anything, m.Path("/src/b.go")).
		Return([]m.DocumentInfo{doc("b", "/src/b.go", "p", true)}, nil)

	reports := []m.ActiveStatementReport{
		frame(4, 1, 0, "/src/b.go", m.NewSpan(1, 0, 1, 1), m.FlagLeafFrame),
		frame(2, 2, 0, "/src/a.go", m.NewSpan(2, 0, 2, 1), m.FlagNonLeafFrame),
		frame(3, 3, 0, "/src/b.go", m.NewSpan(3, 0, 3, 1), m.FlagNonLeafFrame),
	}

	resolver := domain.NewResolver(3)

	first, err := resolver.ResolveBaseline(context.Background(), reports, lookup)
	require.NoError(t, err)

	for range 5 {
		again, err := resolver.ResolveBaseline(context.Background(), reports, lookup)
		require.NoError(t, err)
		assert.Equal(t, first.Statements(), again.Statements())
	}
}
