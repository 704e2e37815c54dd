package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	m "hotedit.dev/pkg/hotedit/internal/model"
)

// DocumentStateOracle reports whether a document's text matches the code the
// debuggee runs. It may block while the check runs.
type DocumentStateOracle interface {
	DocumentState(ctx context.Context, doc m.DocumentID) (m.DocumentState, error)
}

// ChecksumStateOracle compares the SHA-256 of a document's file with the
// checksum recorded for the running binary. Documents without a checksum are
// undetermined until Transition is called for them.
type ChecksumStateOracle struct {
	fs        SourceFSAdapter
	documents map[m.DocumentID]m.SessionDocument

	mu          sync.RWMutex
	transitions map[m.DocumentID]m.DocumentState
}

// NewChecksumStateOracle builds an oracle for the documents of a session.
func NewChecksumStateOracle(fs SourceFSAdapter, documents []m.SessionDocument) *ChecksumStateOracle {
	index := make(map[m.DocumentID]m.SessionDocument, len(documents))
	for _, doc := range documents {
		index[doc.ID] = doc
	}

	return &ChecksumStateOracle{
		fs:          fs,
		documents:   index,
		transitions: make(map[m.DocumentID]m.DocumentState),
	}
}

// DocumentState returns the explicit state set by Transition if any,
// otherwise the checksum comparison result.
func (o *ChecksumStateOracle) DocumentState(ctx context.Context, doc m.DocumentID) (m.DocumentState, error) {
	o.mu.RLock()
	state, ok := o.transitions[doc]
	o.mu.RUnlock()

	if ok {
		return state, nil
	}

	info, ok := o.documents[doc]
	if !ok {
		return m.DocumentUndetermined, fmt.Errorf("unknown document %q", doc)
	}

	if info.Checksum == "" {
		return m.DocumentUndetermined, nil
	}

	actual, err := o.fs.HashFile(ctx, info.Path)
	if err != nil {
		slog.Warn("Failed to hash document", "document", doc, "path", info.Path, "error", err)
		return m.DocumentUndetermined, fmt.Errorf("hash document %q: %w", doc, err)
	}

	if strings.EqualFold(actual, info.Checksum) {
		return m.DocumentMatching, nil
	}

	slog.Debug("Document is out of sync", "document", doc, "expected", info.Checksum, "actual", actual)

	return m.DocumentOutOfSync, nil
}

// Transition records an externally observed state for doc. It takes
// precedence over the checksum from then on.
func (o *ChecksumStateOracle) Transition(doc m.DocumentID, state m.DocumentState) {
	o.mu.Lock()
	defer o.mu.Unlock()

	slog.Debug("Document state transition", "document", doc, "state", state)
	o.transitions[doc] = state
}
