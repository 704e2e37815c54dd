package model

import "path/filepath"

// Path represents a file system path.
type Path string

// Clean returns the lexically shortest equivalent path. The empty path stays
// empty.
func (p Path) Clean() Path {
	if p == "" {
		return ""
	}

	return Path(filepath.Clean(string(p)))
}

// DocumentID identifies a document inside a project. The same file on disk may
// be exposed as several documents (linked documents).
type DocumentID string

// ProjectID identifies a project in the workspace.
type ProjectID string

// DocumentInfo describes one document that a file path resolves to.
type DocumentInfo struct {
	ID                      DocumentID
	Path                    Path
	Project                 ProjectID
	Module                  ModuleID
	Language                string
	SupportsEditAndContinue bool
}

// DocumentState tells whether a document's text is known to match the code
// the debuggee is running.
type DocumentState int

// Possible DocumentState values.
const (
	DocumentUndetermined DocumentState = iota
	DocumentMatching
	DocumentOutOfSync
)

func (s DocumentState) String() string {
	switch s {
	case DocumentMatching:
		return "matching"
	case DocumentOutOfSync:
		return "out-of-sync"
	case DocumentUndetermined:
		return "undetermined"
	}

	return "unknown"
}
