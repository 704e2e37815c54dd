package adapter

import (
	"context"
	"fmt"
	"go/token"
	"log/slog"
	"path/filepath"
	"strings"

	m "hotedit.dev/pkg/hotedit/internal/model"
)

// RegionDiscovery returns the raw handler region geometry of a document's
// current text, together with an identifier of that text version.
type RegionDiscovery interface {
	HandlerRegions(ctx context.Context, doc m.DocumentID) (version string, spans []m.Span, err error)
}

// SessionRegionDiscovery serves the handler spans recorded in a session and
// discovers them from source for Go documents that do not list any.
type SessionRegionDiscovery struct {
	fs        SourceFSAdapter
	goFiles   GoFileAdapter
	workspace *SessionWorkspace
}

// NewSessionRegionDiscovery builds a discovery over workspace.
func NewSessionRegionDiscovery(fs SourceFSAdapter, goFiles GoFileAdapter, workspace *SessionWorkspace) *SessionRegionDiscovery {
	return &SessionRegionDiscovery{
		fs:        fs,
		goFiles:   goFiles,
		workspace: workspace,
	}
}

// HandlerRegions implements RegionDiscovery.
func (d *SessionRegionDiscovery) HandlerRegions(ctx context.Context, doc m.DocumentID) (string, []m.Span, error) {
	info, ok := d.workspace.Document(doc)
	if !ok {
		return "", nil, fmt.Errorf("unknown document %q", doc)
	}

	if len(info.Handlers) > 0 || !d.isGoDocument(info) {
		return d.versionOf(info, ""), append([]m.Span(nil), info.Handlers...), nil
	}

	content, err := d.fs.ReadFile(ctx, info.Path)
	if err != nil {
		slog.Error("Failed to read document", "document", doc, "path", info.Path, "error", err)
		return "", nil, fmt.Errorf("read document %q: %w", doc, err)
	}

	fset := token.NewFileSet()

	file, err := d.goFiles.Parse(ctx, fset, string(info.Path), content)
	if err != nil {
		slog.Warn("Failed to parse Go document", "document", doc, "path", info.Path, "error", err)
		return "", nil, fmt.Errorf("parse document %q: %w", doc, err)
	}

	spans := d.goFiles.HandlerRegions(fset, file)
	slog.Debug("Discovered Go handler regions", "document", doc, "count", len(spans))

	return d.versionOf(info, string(content)), spans, nil
}

func (d *SessionRegionDiscovery) isGoDocument(info m.SessionDocument) bool {
	if project, ok := d.workspace.Project(info.Project); ok && project.Language != "" {
		return strings.EqualFold(project.Language, "go")
	}

	return filepath.Ext(string(info.Path)) == ".go"
}

// versionOf prefers the declared version, then the recorded checksum, then the
// length of the loaded text.
func (d *SessionRegionDiscovery) versionOf(info m.SessionDocument, content string) string {
	switch {
	case info.Version != "":
		return info.Version
	case info.Checksum != "":
		return info.Checksum
	case content != "":
		return fmt.Sprintf("len:%d", len(content))
	}

	return "static"
}
