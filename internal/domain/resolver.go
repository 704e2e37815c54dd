// Package domain contains the active statement tracking and span remapping
// engine used by edit-and-continue.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"hotedit.dev/pkg/hotedit/internal/adapter"
	m "hotedit.dev/pkg/hotedit/internal/model"
)

// ErrInconsistentSpan is returned when the same instruction is reported with
// different spans. Merging such reports would corrupt the ledger.
var ErrInconsistentSpan = errors.New("instruction reported with inconsistent spans")

// DefaultResolveParallelism bounds concurrent document lookups.
const DefaultResolveParallelism = 4

// Resolver turns raw frame reports into a baseline.
type Resolver interface {
	ResolveBaseline(ctx context.Context, reports []m.ActiveStatementReport, lookup adapter.DocumentLookup) (*m.Baseline, error)
}

type resolver struct {
	parallel int
}

// NewResolver creates a Resolver that looks up at most parallel document
// paths at a time.
func NewResolver(parallel int) Resolver {
	if parallel <= 0 {
		parallel = DefaultResolveParallelism
	}

	return &resolver{parallel: parallel}
}

// pendingStatement accumulates the frames reported for one instruction.
type pendingStatement struct {
	instruction m.InstructionID
	span        m.Span
	flags       m.ActiveStatementFlags
	firstID     int
	documents   []m.DocumentInfo
}

// ResolveBaseline drops frames that cannot be mapped to a supported document,
// merges frames of the same instruction and assigns ordinals in statement id
// order.
func (r *resolver) ResolveBaseline(ctx context.Context, reports []m.ActiveStatementReport, lookup adapter.DocumentLookup) (*m.Baseline, error) {
	documentsByPath, err := r.lookupDocuments(ctx, lookup, r.distinctPaths(reports))
	if err != nil {
		return nil, err
	}

	byInstruction := make(map[m.InstructionID]*pendingStatement, len(reports))
	pending := make([]*pendingStatement, 0, len(reports))

	for _, report := range reports {
		if report.Span == nil {
			slog.Debug("Dropping frame without source span", "instruction", report.Instruction)
			continue
		}

		documents := documentsByPath[report.DocumentPath.Clean()]
		if len(documents) == 0 {
			slog.Debug("Dropping frame outside of supported documents", "instruction", report.Instruction, "document", report.DocumentPath)
			continue
		}

		if existing, ok := byInstruction[report.Instruction]; ok {
			if existing.span != *report.Span {
				slog.Error("Instruction reported with different spans",
					"instruction", report.Instruction, "span", existing.span, "other", *report.Span)

				return nil, fmt.Errorf("%w: %s at %s and %s", ErrInconsistentSpan, report.Instruction, existing.span, *report.Span)
			}

			existing.flags |= report.Flags
			existing.firstID = min(existing.firstID, report.StatementID)

			continue
		}

		statement := &pendingStatement{
			instruction: report.Instruction,
			span:        *report.Span,
			flags:       report.Flags,
			firstID:     report.StatementID,
			documents:   documents,
		}
		byInstruction[report.Instruction] = statement
		pending = append(pending, statement)
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].firstID < pending[j].firstID
	})

	statements := make([]m.ActiveStatement, 0, len(pending))

	for ordinal, statement := range pending {
		ids := make([]m.DocumentID, 0, len(statement.documents))
		for _, doc := range statement.documents {
			ids = append(ids, doc.ID)
		}

		statements = append(statements, m.ActiveStatement{
			Ordinal:     ordinal,
			Instruction: statement.instruction,
			Span:        statement.span,
			Flags:       statement.flags,
			Document:    ids[0],
			Documents:   ids,
		})
	}

	slog.Debug("Resolved baseline", "reports", len(reports), "statements", len(statements))

	return m.NewBaseline(statements)
}

func (r *resolver) distinctPaths(reports []m.ActiveStatementReport) []m.Path {
	seen := make(map[m.Path]struct{}, len(reports))
	paths := make([]m.Path, 0, len(reports))

	for _, report := range reports {
		if report.Span == nil || report.DocumentPath == "" {
			continue
		}

		path := report.DocumentPath.Clean()
		if _, ok := seen[path]; ok {
			continue
		}

		seen[path] = struct{}{}
		paths = append(paths, path)
	}

	return paths
}

// lookupDocuments resolves paths concurrently. A failing lookup only drops
// its own path; cancellation aborts the whole resolution.
func (r *resolver) lookupDocuments(ctx context.Context, lookup adapter.DocumentLookup, paths []m.Path) (map[m.Path][]m.DocumentInfo, error) {
	var mu sync.Mutex

	result := make(map[m.Path][]m.DocumentInfo, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.parallel)

	for _, path := range paths {
		group.Go(func() error {
			docs, err := lookup.Documents(groupCtx, path)
			if err != nil {
				if ctxErr := groupCtx.Err(); ctxErr != nil {
					return ctxErr
				}

				slog.Warn("Failed to resolve document", "path", path, "error", err)

				return nil
			}

			supported := make([]m.DocumentInfo, 0, len(docs))

			for _, doc := range docs {
				if !doc.SupportsEditAndContinue {
					slog.Debug("Skipping document of unsupported project", "document", doc.ID, "project", doc.Project)
					continue
				}

				supported = append(supported, doc)
			}

			mu.Lock()
			result[path] = supported
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}
