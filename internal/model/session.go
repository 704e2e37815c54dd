package model

// Session is the collaborator data for one edit session: what the debuggee
// reported, which documents and projects exist, and optionally the edit that
// was made.
type Session struct {
	Name      string                  `yaml:"name"`
	Module    ModuleID                `yaml:"module"`
	Projects  []SessionProject        `yaml:"projects"`
	Documents []SessionDocument       `yaml:"documents"`
	Frames    []ActiveStatementReport `yaml:"frames"`
	Edit      *SessionEdit            `yaml:"edit,omitempty"`
}

// SessionProject describes a project of the workspace.
type SessionProject struct {
	ID              ProjectID `yaml:"id"`
	Module          ModuleID  `yaml:"module"`
	Language        string    `yaml:"language"`
	EditAndContinue bool      `yaml:"editAndContinue"`
}

// SessionDocument describes one document. Checksum is the SHA-256 of the text
// the running binary was built from; Handlers lists handler region spans for
// languages whose regions are not discovered from source.
type SessionDocument struct {
	ID       DocumentID `yaml:"id"`
	Path     Path       `yaml:"path"`
	Project  ProjectID  `yaml:"project"`
	Version  string     `yaml:"version,omitempty"`
	Checksum string     `yaml:"checksum,omitempty"`
	Handlers []Span     `yaml:"handlers,omitempty"`
}

// SessionEdit is the edit applied during the session.
type SessionEdit struct {
	Recompiled []uint32       `yaml:"recompiled"`
	Documents  []DocumentEdit `yaml:"documents"`
}

// DocumentEdit carries the new spans of every active statement found in one
// changed document.
type DocumentEdit struct {
	Document   DocumentID      `yaml:"document"`
	Statements []StatementEdit `yaml:"statements"`
}

// StatementEdit is the new location of an active statement and of its
// exception regions. ExceptionRegions is aligned with the base regions of the
// statement.
type StatementEdit struct {
	Ordinal          int    `yaml:"ordinal"`
	Span             Span   `yaml:"span"`
	ExceptionRegions []Span `yaml:"exceptionRegions,omitempty"`
}
