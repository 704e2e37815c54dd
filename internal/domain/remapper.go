package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	m "hotedit.dev/pkg/hotedit/internal/model"
)

// ErrInvalidEdit is returned when the new spans supplied for an edit do not
// fit the baseline they are applied to.
var ErrInvalidEdit = errors.New("invalid edit")

// Remapper computes the updates the debuggee needs after an edit.
type Remapper interface {
	ComputeUpdates(
		module m.ModuleID,
		baseline *m.Baseline,
		baseRegions map[int]m.ExceptionRegions,
		recompiled m.TokenSet,
		prior m.Ledger,
		edits []m.DocumentEdit,
	) (m.UpdateResult, error)
}

type remapper struct{}

// NewRemapper creates a Remapper. It holds no state: every call is a pure
// function of its arguments.
func NewRemapper() Remapper {
	return &remapper{}
}

// statementChange is the new geometry of one active statement.
type statementChange struct {
	statement  m.ActiveStatement
	newSpan    m.Span
	oldRegions []m.Span
	newRegions []m.Span
}

// ComputeUpdates produces active statement updates for recompiled methods and
// non-remappable regions plus exception region updates for the others. The
// prior ledger is not modified.
func (r *remapper) ComputeUpdates(
	module m.ModuleID,
	baseline *m.Baseline,
	baseRegions map[int]m.ExceptionRegions,
	recompiled m.TokenSet,
	prior m.Ledger,
	edits []m.DocumentEdit,
) (m.UpdateResult, error) {
	changes, err := collectChanges(module, baseline, baseRegions, edits)
	if err != nil {
		return m.UpdateResult{}, err
	}

	result := m.UpdateResult{
		ActiveStatements: activeStatementUpdates(module, baseline, recompiled, changes),
		Ledger:           prior.WithoutMethods(module, recompiled),
	}

	accumulators := make(map[m.MethodID]*methodRegions)

	for _, ordinal := range sortedOrdinals(changes) {
		change := changes[ordinal]
		method := change.statement.Method()

		if recompiled.Contains(method.Token) {
			continue
		}

		acc, ok := accumulators[method]
		if !ok {
			acc = newMethodRegions(prior.Regions(method))
			accumulators[method] = acc
		}

		acc.add(change.statement.Span, change.newSpan, false)

		for i := range change.oldRegions {
			acc.add(change.oldRegions[i], change.newRegions[i], true)
		}
	}

	for method, acc := range accumulators {
		addUnchangedStatements(acc, method, baseline.ByMethod(module, method.Token), baseRegions, changes)
	}

	for method, acc := range accumulators {
		if !acc.moved && !prior.Has(method) {
			continue
		}

		result.Ledger = result.Ledger.Merge(method, acc.regions)

		for _, region := range acc.regions {
			if !region.IsExceptionRegion {
				continue
			}

			result.ExceptionRegions = append(result.ExceptionRegions, m.ExceptionRegionUpdate{
				Method:  method,
				NewSpan: region.NewSpan(),
				Delta:   region.Delta,
			})
		}
	}

	sortActiveStatementUpdates(result.ActiveStatements)
	sortExceptionRegionUpdates(result.ExceptionRegions)

	slog.Debug("Computed updates",
		"module", module,
		"activeStatements", len(result.ActiveStatements),
		"exceptionRegions", len(result.ExceptionRegions),
		"ledgerMethods", result.Ledger.Len(),
	)

	return result, nil
}

// collectChanges validates the edits and returns one change per edited
// statement of module. Linked documents may mention the same statement; they
// must agree on its new span.
func collectChanges(
	module m.ModuleID,
	baseline *m.Baseline,
	baseRegions map[int]m.ExceptionRegions,
	edits []m.DocumentEdit,
) (map[int]statementChange, error) {
	changes := make(map[int]statementChange)

	for _, edit := range edits {
		for _, statementEdit := range edit.Statements {
			statement, ok := baseline.Statement(statementEdit.Ordinal)
			if !ok || !statement.InDocument(edit.Document) {
				return nil, fmt.Errorf("%w: document %q has no active statement %d", ErrInvalidEdit, edit.Document, statementEdit.Ordinal)
			}

			if statement.Method().Module != module {
				continue
			}

			if err := statementEdit.Span.Validate(); err != nil {
				return nil, fmt.Errorf("%w: statement %d: %w", ErrInvalidEdit, statementEdit.Ordinal, err)
			}

			if existing, ok := changes[statementEdit.Ordinal]; ok {
				if existing.newSpan != statementEdit.Span {
					return nil, fmt.Errorf("%w: statement %d moved to %s and %s in linked documents",
						ErrInvalidEdit, statementEdit.Ordinal, existing.newSpan, statementEdit.Span)
				}

				continue
			}

			oldRegions, err := alignRegions(statementEdit, baseRegions[statementEdit.Ordinal])
			if err != nil {
				return nil, err
			}

			changes[statementEdit.Ordinal] = statementChange{
				statement:  statement,
				newSpan:    statementEdit.Span,
				oldRegions: oldRegions,
				newRegions: statementEdit.ExceptionRegions,
			}
		}
	}

	return changes, nil
}

func alignRegions(edit m.StatementEdit, base m.ExceptionRegions) ([]m.Span, error) {
	if !base.Available {
		if len(edit.ExceptionRegions) > 0 {
			return nil, fmt.Errorf("%w: exception regions of statement %d are unavailable", ErrInvalidEdit, edit.Ordinal)
		}

		return nil, nil
	}

	if len(base.Spans) != len(edit.ExceptionRegions) {
		return nil, fmt.Errorf("%w: statement %d has %d exception regions, edit supplies %d",
			ErrInvalidEdit, edit.Ordinal, len(base.Spans), len(edit.ExceptionRegions))
	}

	return base.Spans, nil
}

// activeStatementUpdates emits one update per active statement of every
// recompiled method, using the edited span when one was supplied.
func activeStatementUpdates(module m.ModuleID, baseline *m.Baseline, recompiled m.TokenSet, changes map[int]statementChange) []m.ActiveStatementUpdate {
	var updates []m.ActiveStatementUpdate

	for _, token := range recompiled.Sorted() {
		for _, statement := range baseline.ByMethod(module, token) {
			newSpan := statement.Span
			if change, ok := changes[statement.Ordinal]; ok {
				newSpan = change.newSpan
			}

			updates = append(updates, m.ActiveStatementUpdate{
				Method:  statement.Method(),
				Offset:  statement.Instruction.Offset,
				NewSpan: newSpan,
			})
		}
	}

	return updates
}

// methodRegions accumulates the regions of one method that was not
// recompiled.
type methodRegions struct {
	prior   []m.NonRemappableRegion
	regions []m.NonRemappableRegion
	keys    map[regionIdentity]struct{}
	moved   bool
}

type regionIdentity struct {
	span      m.Span
	exception bool
}

func newMethodRegions(prior []m.NonRemappableRegion) *methodRegions {
	return &methodRegions{
		prior: prior,
		keys:  make(map[regionIdentity]struct{}),
	}
}

// add records the region at oldSpan that now starts at newSpan. The delta is
// measured from the pre-edit span the method was compiled with: a region
// already in the prior ledger keeps its original OldSpan.
func (mr *methodRegions) add(oldSpan, newSpan m.Span, isExceptionRegion bool) {
	preEdit := mr.preEditSpan(oldSpan, isExceptionRegion)

	key := regionIdentity{span: preEdit, exception: isExceptionRegion}
	if _, ok := mr.keys[key]; ok {
		return
	}

	mr.keys[key] = struct{}{}

	region := m.NonRemappableRegion{
		OldSpan:           preEdit,
		Delta:             preEdit.LineDelta(newSpan),
		IsExceptionRegion: isExceptionRegion,
	}

	if region.Delta != 0 {
		mr.moved = true
	}

	mr.regions = append(mr.regions, region)
}

// addUnchangedStatements records the statements of method that no edit
// mentions, together with their available exception regions, as staying
// where they are.
func addUnchangedStatements(
	acc *methodRegions,
	method m.MethodID,
	statements []m.ActiveStatement,
	baseRegions map[int]m.ExceptionRegions,
	changes map[int]statementChange,
) {
	for _, statement := range statements {
		if statement.Method() != method {
			continue
		}

		if _, ok := changes[statement.Ordinal]; ok {
			continue
		}

		acc.add(statement.Span, statement.Span, false)

		regions := baseRegions[statement.Ordinal]
		if !regions.Available {
			continue
		}

		for _, span := range regions.Spans {
			acc.add(span, span, true)
		}
	}
}

func (mr *methodRegions) preEditSpan(span m.Span, isExceptionRegion bool) m.Span {
	for _, region := range mr.prior {
		if region.IsExceptionRegion == isExceptionRegion && region.OldSpan == span {
			return region.OldSpan
		}
	}

	for _, region := range mr.prior {
		if region.IsExceptionRegion == isExceptionRegion && region.NewSpan() == span {
			return region.OldSpan
		}
	}

	return span
}

func sortedOrdinals(changes map[int]statementChange) []int {
	ordinals := make([]int, 0, len(changes))
	for ordinal := range changes {
		ordinals = append(ordinals, ordinal)
	}

	sort.Ints(ordinals)

	return ordinals
}

func sortActiveStatementUpdates(updates []m.ActiveStatementUpdate) {
	sort.SliceStable(updates, func(i, j int) bool {
		if c := updates[i].NewSpan.Compare(updates[j].NewSpan); c != 0 {
			return c < 0
		}

		return updates[i].Method.Compare(updates[j].Method) < 0
	})
}

func sortExceptionRegionUpdates(updates []m.ExceptionRegionUpdate) {
	sort.SliceStable(updates, func(i, j int) bool {
		if c := updates[i].NewSpan.Compare(updates[j].NewSpan); c != 0 {
			return c < 0
		}

		return updates[i].Method.Compare(updates[j].Method) < 0
	})
}
