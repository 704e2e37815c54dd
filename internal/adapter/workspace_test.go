package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "hotedit.dev/pkg/hotedit/internal/model"
)

func linkedSession() *m.Session {
	span := m.NewSpan(1, 0, 1, 10)

	return &m.Session{
		Module: "app",
		Projects: []m.SessionProject{
			{ID: "a", Module: "app", Language: "go", EditAndContinue: true},
			{ID: "b", Module: "lib", Language: "go", EditAndContinue: true},
			{ID: "c", Module: "tool", Language: "go"},
		},
		Documents: []m.SessionDocument{
			{ID: "a/shared", Path: "/src/shared.go", Project: "a"},
			{ID: "b/shared", Path: "/src/./shared.go", Project: "b"},
			{ID: "c/shared", Path: "/src/shared.go", Project: "c"},
			{ID: "orphan", Path: "/src/orphan.go", Project: "missing"},
		},
		Frames: []m.ActiveStatementReport{
			{StatementID: 1, DocumentPath: "/src/shared.go", Span: &span, Flags: m.FlagLeafFrame},
		},
	}
}

func TestSessionWorkspace_DocumentsForLinkedFile(t *testing.T) {
	ws := NewSessionWorkspace(linkedSession())

	docs, err := ws.Documents(context.Background(), "/src/shared.go")
	require.NoError(t, err)
	require.Len(t, docs, 3)

	assert.Equal(t, m.DocumentID("a/shared"), docs[0].ID)
	assert.True(t, docs[0].SupportsEditAndContinue)
	assert.Equal(t, m.ModuleID("lib"), docs[1].Module)
	assert.True(t, docs[1].SupportsEditAndContinue)
	assert.False(t, docs[2].SupportsEditAndContinue)
}

func TestSessionWorkspace_UnknownProjectDoesNotSupportEdits(t *testing.T) {
	ws := NewSessionWorkspace(linkedSession())

	docs, err := ws.Documents(context.Background(), "/src/orphan.go")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.False(t, docs[0].SupportsEditAndContinue)
}

func TestSessionWorkspace_UnknownPath(t *testing.T) {
	ws := NewSessionWorkspace(linkedSession())

	docs, err := ws.Documents(context.Background(), "/elsewhere.go")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestSessionWorkspace_ActiveStatementsReturnsCopy(t *testing.T) {
	session := linkedSession()
	ws := NewSessionWorkspace(session)

	frames, err := ws.ActiveStatements(context.Background())
	require.NoError(t, err)
	require.Len(t, frames, 1)

	frames[0].StatementID = 99
	assert.Equal(t, 1, session.Frames[0].StatementID)
}

func TestSessionWorkspace_Cancelled(t *testing.T) {
	ws := NewSessionWorkspace(linkedSession())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ws.ActiveStatements(ctx)
	require.ErrorIs(t, err, context.Canceled)

	_, err = ws.Documents(ctx, "/src/shared.go")
	require.ErrorIs(t, err, context.Canceled)
}

func TestSessionWorkspace_DocumentAndProject(t *testing.T) {
	ws := NewSessionWorkspace(linkedSession())

	doc, ok := ws.Document("b/shared")
	require.True(t, ok)
	assert.Equal(t, m.ProjectID("b"), doc.Project)

	_, ok = ws.Document("ghost")
	assert.False(t, ok)

	project, ok := ws.Project("c")
	require.True(t, ok)
	assert.False(t, project.EditAndContinue)
}
