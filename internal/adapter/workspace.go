package adapter

import (
	"context"

	m "hotedit.dev/pkg/hotedit/internal/model"
)

// ActiveStatementProvider yields the frames of the stopped threads.
type ActiveStatementProvider interface {
	ActiveStatements(ctx context.Context) ([]m.ActiveStatementReport, error)
}

// DocumentLookup resolves a file path to the documents exposing it. Linked
// files resolve to several documents; unknown paths resolve to none.
type DocumentLookup interface {
	Documents(ctx context.Context, path m.Path) ([]m.DocumentInfo, error)
}

// SessionWorkspace serves frames and documents recorded in a session.
type SessionWorkspace struct {
	session  *m.Session
	projects map[m.ProjectID]m.SessionProject
	byPath   map[m.Path][]m.SessionDocument
}

// NewSessionWorkspace indexes session for lookups.
func NewSessionWorkspace(session *m.Session) *SessionWorkspace {
	ws := &SessionWorkspace{
		session:  session,
		projects: make(map[m.ProjectID]m.SessionProject, len(session.Projects)),
		byPath:   make(map[m.Path][]m.SessionDocument, len(session.Documents)),
	}

	for _, project := range session.Projects {
		ws.projects[project.ID] = project
	}

	for _, doc := range session.Documents {
		key := doc.Path.Clean()
		ws.byPath[key] = append(ws.byPath[key], doc)
	}

	return ws
}

// ActiveStatements returns the frames recorded in the session.
func (ws *SessionWorkspace) ActiveStatements(ctx context.Context) ([]m.ActiveStatementReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return append([]m.ActiveStatementReport(nil), ws.session.Frames...), nil
}

// Documents returns every document declared for path, in declaration order.
func (ws *SessionWorkspace) Documents(ctx context.Context, path m.Path) ([]m.DocumentInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	docs := ws.byPath[path.Clean()]
	infos := make([]m.DocumentInfo, 0, len(docs))

	for _, doc := range docs {
		project, ok := ws.projects[doc.Project]

		infos = append(infos, m.DocumentInfo{
			ID:                      doc.ID,
			Path:                    doc.Path,
			Project:                 doc.Project,
			Module:                  project.Module,
			Language:                project.Language,
			SupportsEditAndContinue: ok && project.EditAndContinue,
		})
	}

	return infos, nil
}

// Document returns the session entry for a document id.
func (ws *SessionWorkspace) Document(id m.DocumentID) (m.SessionDocument, bool) {
	for _, doc := range ws.session.Documents {
		if doc.ID == id {
			return doc, true
		}
	}

	return m.SessionDocument{}, false
}

// Project returns the session entry for a project id.
func (ws *SessionWorkspace) Project(id m.ProjectID) (m.SessionProject, bool) {
	project, ok := ws.projects[id]
	return project, ok
}
