package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"hotedit.dev/pkg/hotedit/internal/adapter"
	m "hotedit.dev/pkg/hotedit/internal/model"
)

// RegionLocator finds the handler regions enclosing active statements.
type RegionLocator interface {
	// GetExceptionRegions returns the regions enclosing statement in its
	// primary document, or UnavailableRegions when the document is not known
	// to match the running code.
	GetExceptionRegions(ctx context.Context, baseline *m.Baseline, statement m.ActiveStatement) (m.ExceptionRegions, error)

	// DocumentRegions returns the regions of every statement whose primary
	// document is doc, keyed by ordinal.
	DocumentRegions(ctx context.Context, baseline *m.Baseline, doc m.DocumentID) (map[int]m.ExceptionRegions, error)
}

type regionCacheKey struct {
	baseline *m.Baseline
	document m.DocumentID
	version  string
}

type regionLocator struct {
	oracle    adapter.DocumentStateOracle
	discovery adapter.RegionDiscovery

	mu    sync.Mutex
	cache map[regionCacheKey]map[int]m.ExceptionRegions
}

// NewRegionLocator creates a RegionLocator. Results for matching documents
// are cached per document version; unavailable results are never cached.
func NewRegionLocator(oracle adapter.DocumentStateOracle, discovery adapter.RegionDiscovery) RegionLocator {
	return &regionLocator{
		oracle:    oracle,
		discovery: discovery,
		cache:     make(map[regionCacheKey]map[int]m.ExceptionRegions),
	}
}

func (l *regionLocator) GetExceptionRegions(ctx context.Context, baseline *m.Baseline, statement m.ActiveStatement) (m.ExceptionRegions, error) {
	regions, err := l.DocumentRegions(ctx, baseline, statement.Document)
	if err != nil {
		return m.UnavailableRegions, err
	}

	result, ok := regions[statement.Ordinal]
	if !ok {
		return m.UnavailableRegions, fmt.Errorf("statement %d is not owned by document %q", statement.Ordinal, statement.Document)
	}

	return result, nil
}

func (l *regionLocator) DocumentRegions(ctx context.Context, baseline *m.Baseline, doc m.DocumentID) (map[int]m.ExceptionRegions, error) {
	statements := primaryStatements(baseline, doc)

	state, err := l.oracle.DocumentState(ctx, doc)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		slog.Warn("Document state unavailable", "document", doc, "error", err)

		state = m.DocumentUndetermined
	}

	if state != m.DocumentMatching {
		slog.Debug("Exception regions unavailable", "document", doc, "state", state)
		return unavailableFor(statements), nil
	}

	version, handlers, err := l.discovery.HandlerRegions(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("discover handler regions of %q: %w", doc, err)
	}

	key := regionCacheKey{baseline: baseline, document: doc, version: version}

	l.mu.Lock()
	defer l.mu.Unlock()

	if cached, ok := l.cache[key]; ok {
		return cached, nil
	}

	regions := make(map[int]m.ExceptionRegions, len(statements))
	for _, statement := range statements {
		regions[statement.Ordinal] = m.AvailableRegions(enclosingRegions(handlers, statement.Span))
	}

	l.cache[key] = regions
	slog.Debug("Computed exception regions", "document", doc, "version", version, "statements", len(statements))

	return regions, nil
}

// enclosingRegions returns the handler spans containing span, innermost
// first.
func enclosingRegions(handlers []m.Span, span m.Span) []m.Span {
	enclosing := make([]m.Span, 0, len(handlers))

	for _, handler := range handlers {
		if handler.Contains(span) {
			enclosing = append(enclosing, handler)
		}
	}

	sort.SliceStable(enclosing, func(i, j int) bool {
		if c := enclosing[i].Start.Compare(enclosing[j].Start); c != 0 {
			return c > 0
		}

		return enclosing[i].End.Compare(enclosing[j].End) < 0
	})

	return enclosing
}

func primaryStatements(baseline *m.Baseline, doc m.DocumentID) []m.ActiveStatement {
	var statements []m.ActiveStatement

	for _, statement := range baseline.ByDocument(doc) {
		if statement.Document == doc {
			statements = append(statements, statement)
		}
	}

	return statements
}

func unavailableFor(statements []m.ActiveStatement) map[int]m.ExceptionRegions {
	regions := make(map[int]m.ExceptionRegions, len(statements))
	for _, statement := range statements {
		regions[statement.Ordinal] = m.UnavailableRegions
	}

	return regions
}
