package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "hotedit.dev/pkg/hotedit/internal/model"
)

// SessionLoader reads the collaborator data of an edit session.
type SessionLoader interface {
	LoadSession(ctx context.Context, path m.Path) (*m.Session, error)
}

type yamlSessionLoader struct {
	fs SourceFSAdapter
}

// NewSessionLoader returns a SessionLoader for YAML session files. Relative
// document paths are resolved against the session file's directory.
func NewSessionLoader(fs SourceFSAdapter) SessionLoader {
	return &yamlSessionLoader{fs: fs}
}

func (l *yamlSessionLoader) LoadSession(ctx context.Context, path m.Path) (*m.Session, error) {
	content, err := l.fs.ReadFile(ctx, path)
	if err != nil {
		slog.Error("Failed to read session file", "path", path, "error", err)
		return nil, fmt.Errorf("read session %s: %w", path, err)
	}

	var session m.Session
	if err := yaml.Unmarshal(content, &session); err != nil {
		slog.Error("Failed to parse session file", "path", path, "error", err)
		return nil, fmt.Errorf("parse session %s: %w", path, err)
	}

	if err := validateSession(&session); err != nil {
		return nil, fmt.Errorf("session %s: %w", path, err)
	}

	base := filepath.Dir(string(path))
	resolve := func(p m.Path) m.Path {
		if p == "" || filepath.IsAbs(string(p)) {
			return p
		}

		return l.fs.JoinPath(ctx, base, string(p))
	}

	for i := range session.Documents {
		session.Documents[i].Path = resolve(session.Documents[i].Path)
	}

	for i := range session.Frames {
		session.Frames[i].DocumentPath = resolve(session.Frames[i].DocumentPath)
	}

	if session.Name == "" {
		session.Name = filepath.Base(string(path))
	}

	slog.Debug("Loaded session", "path", path, "frames", len(session.Frames), "documents", len(session.Documents))

	return &session, nil
}

func validateSession(session *m.Session) error {
	seenDocs := make(map[m.DocumentID]struct{}, len(session.Documents))

	for _, doc := range session.Documents {
		if doc.ID == "" {
			return fmt.Errorf("document with path %q has no id", doc.Path)
		}

		if _, ok := seenDocs[doc.ID]; ok {
			return fmt.Errorf("duplicate document id %q", doc.ID)
		}

		seenDocs[doc.ID] = struct{}{}
	}

	seenProjects := make(map[m.ProjectID]struct{}, len(session.Projects))

	for _, project := range session.Projects {
		if _, ok := seenProjects[project.ID]; ok {
			return fmt.Errorf("duplicate project id %q", project.ID)
		}

		seenProjects[project.ID] = struct{}{}
	}

	if session.Edit == nil {
		return nil
	}

	for _, edit := range session.Edit.Documents {
		if _, ok := seenDocs[edit.Document]; !ok {
			return fmt.Errorf("edit references unknown document %q", edit.Document)
		}
	}

	return nil
}
