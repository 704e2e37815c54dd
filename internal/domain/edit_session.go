package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"hotedit.dev/pkg/hotedit/internal/adapter"
	m "hotedit.dev/pkg/hotedit/internal/model"
)

const baselineFlightKey = "baseline"

// EditSession scopes the computations of one edit session. The baseline is
// computed at most once: concurrent callers share the in-flight computation
// and later callers get the cached value. A failed computation is not cached.
type EditSession struct {
	name     string
	provider adapter.ActiveStatementProvider
	lookup   adapter.DocumentLookup
	resolver Resolver
	locator  RegionLocator

	flight   singleflight.Group
	mu       sync.Mutex
	baseline *m.Baseline
}

// NewEditSession creates an edit session over the given collaborators.
func NewEditSession(
	name string,
	provider adapter.ActiveStatementProvider,
	lookup adapter.DocumentLookup,
	resolver Resolver,
	locator RegionLocator,
) *EditSession {
	return &EditSession{
		name:     name,
		provider: provider,
		lookup:   lookup,
		resolver: resolver,
		locator:  locator,
	}
}

// Name returns the session name.
func (s *EditSession) Name() string {
	return s.name
}

// Baseline returns the session's baseline, computing it on first use. The
// shared computation keeps the values of the caller that started it but not
// its cancellation, so every attached caller gets the same result; each
// caller stops waiting when its own ctx is done.
func (s *EditSession) Baseline(ctx context.Context) (*m.Baseline, error) {
	if baseline := s.cachedBaseline(); baseline != nil {
		return baseline, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	flightCtx := context.WithoutCancel(ctx)

	ch := s.flight.DoChan(baselineFlightKey, func() (interface{}, error) {
		if baseline := s.cachedBaseline(); baseline != nil {
			return baseline, nil
		}

		baseline, err := s.computeBaseline(flightCtx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.baseline = baseline
		s.mu.Unlock()

		return baseline, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-ch:
		if result.Err != nil {
			return nil, result.Err
		}

		baseline, ok := result.Val.(*m.Baseline)
		if !ok {
			return nil, fmt.Errorf("unexpected baseline type %T", result.Val)
		}

		return baseline, nil
	}
}

func (s *EditSession) cachedBaseline() *m.Baseline {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.baseline
}

func (s *EditSession) computeBaseline(ctx context.Context) (*m.Baseline, error) {
	reports, err := s.provider.ActiveStatements(ctx)
	if err != nil {
		slog.Error("Failed to read active statements", "session", s.name, "error", err)
		return nil, fmt.Errorf("read active statements: %w", err)
	}

	baseline, err := s.resolver.ResolveBaseline(ctx, reports, s.lookup)
	if err != nil {
		slog.Error("Failed to resolve baseline", "session", s.name, "error", err)
		return nil, fmt.Errorf("resolve baseline: %w", err)
	}

	return baseline, nil
}

// BaseExceptionRegions returns the exception regions of every baseline
// statement, keyed by ordinal. Documents are processed concurrently; a
// document whose regions cannot be discovered leaves its statements
// unavailable without failing the others.
func (s *EditSession) BaseExceptionRegions(ctx context.Context) (map[int]m.ExceptionRegions, error) {
	baseline, err := s.Baseline(ctx)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex

	result := make(map[int]m.ExceptionRegions, baseline.Len())

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(DefaultResolveParallelism)

	for _, doc := range primaryDocuments(baseline) {
		group.Go(func() error {
			regions, err := s.locator.DocumentRegions(groupCtx, baseline, doc)
			if err != nil {
				if ctxErr := groupCtx.Err(); ctxErr != nil {
					return ctxErr
				}

				slog.Warn("Exception regions unavailable", "session", s.name, "document", doc, "error", err)
				regions = unavailableFor(primaryStatements(baseline, doc))
			}

			mu.Lock()
			defer mu.Unlock()

			for ordinal, region := range regions {
				result[ordinal] = region
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// ExceptionRegions returns the regions of one statement.
func (s *EditSession) ExceptionRegions(ctx context.Context, statement m.ActiveStatement) (m.ExceptionRegions, error) {
	baseline, err := s.Baseline(ctx)
	if err != nil {
		return m.UnavailableRegions, err
	}

	return s.locator.GetExceptionRegions(ctx, baseline, statement)
}

func primaryDocuments(baseline *m.Baseline) []m.DocumentID {
	seen := make(map[m.DocumentID]struct{})

	var docs []m.DocumentID

	for _, statement := range baseline.Statements() {
		if _, ok := seen[statement.Document]; ok {
			continue
		}

		seen[statement.Document] = struct{}{}
		docs = append(docs, statement.Document)
	}

	return docs
}
