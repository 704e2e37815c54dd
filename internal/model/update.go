package model

import "time"

// ActiveStatementUpdate tells the debuggee the new span of an active
// statement whose method was recompiled.
type ActiveStatementUpdate struct {
	Method  MethodID
	Offset  int
	NewSpan Span
}

// ExceptionRegionUpdate tells the debuggee where a handler region of a method
// that was not recompiled now lives, and by how many lines it moved.
type ExceptionRegionUpdate struct {
	Method  MethodID
	NewSpan Span
	Delta   int
}

// UpdateResult is the outcome of remapping one edit.
type UpdateResult struct {
	ActiveStatements []ActiveStatementUpdate
	ExceptionRegions []ExceptionRegionUpdate
	Ledger           Ledger
}

// EditRecord is the journal entry written after each applied edit.
type EditRecord struct {
	Session          string
	AppliedAt        time.Time
	Module           ModuleID
	Recompiled       []uint32
	ActiveStatements []ActiveStatementUpdate
	ExceptionRegions []ExceptionRegionUpdate
	Ledger           []LedgerEntry
}
