package model

import (
	"fmt"
	"sort"
)

// Baseline is the set of active statements captured at the start of an edit
// session, indexed by instruction and by document. It is read only once
// built.
type Baseline struct {
	statements    []ActiveStatement
	byInstruction map[InstructionID]int
	byDocument    map[DocumentID][]int
}

// NewBaseline indexes statements. Statements must carry ordinals 0..n-1 in
// slice order and distinct instructions.
func NewBaseline(statements []ActiveStatement) (*Baseline, error) {
	baseline := &Baseline{
		statements:    make([]ActiveStatement, len(statements)),
		byInstruction: make(map[InstructionID]int, len(statements)),
		byDocument:    make(map[DocumentID][]int),
	}

	for i, statement := range statements {
		if statement.Ordinal != i {
			return nil, fmt.Errorf("statement %s has ordinal %d at position %d", statement.Instruction, statement.Ordinal, i)
		}

		if _, ok := baseline.byInstruction[statement.Instruction]; ok {
			return nil, fmt.Errorf("duplicate active statement for instruction %s", statement.Instruction)
		}

		statement.Documents = append([]DocumentID(nil), statement.Documents...)
		baseline.statements[i] = statement
		baseline.byInstruction[statement.Instruction] = i

		for _, doc := range statement.Documents {
			baseline.byDocument[doc] = append(baseline.byDocument[doc], i)
		}
	}

	return baseline, nil
}

// EmptyBaseline returns a baseline without statements.
func EmptyBaseline() *Baseline {
	baseline, _ := NewBaseline(nil)
	return baseline
}

// Len returns the number of active statements.
func (b *Baseline) Len() int {
	return len(b.statements)
}

// Statements returns all statements in ordinal order.
func (b *Baseline) Statements() []ActiveStatement {
	return append([]ActiveStatement(nil), b.statements...)
}

// Statement returns the statement with the given ordinal.
func (b *Baseline) Statement(ordinal int) (ActiveStatement, bool) {
	if ordinal < 0 || ordinal >= len(b.statements) {
		return ActiveStatement{}, false
	}

	return b.statements[ordinal], true
}

// ByInstruction returns the statement for an instruction.
func (b *Baseline) ByInstruction(id InstructionID) (ActiveStatement, bool) {
	ordinal, ok := b.byInstruction[id]
	if !ok {
		return ActiveStatement{}, false
	}

	return b.statements[ordinal], true
}

// ByDocument returns the statements whose document set includes doc, in
// ordinal order.
func (b *Baseline) ByDocument(doc DocumentID) []ActiveStatement {
	ordinals := b.byDocument[doc]
	statements := make([]ActiveStatement, 0, len(ordinals))

	for _, ordinal := range ordinals {
		statements = append(statements, b.statements[ordinal])
	}

	return statements
}

// Documents returns every document that owns at least one statement, sorted.
func (b *Baseline) Documents() []DocumentID {
	docs := make([]DocumentID, 0, len(b.byDocument))
	for doc := range b.byDocument {
		docs = append(docs, doc)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i] < docs[j] })

	return docs
}

// ByMethod returns the statements located in any version of the given
// method, in ordinal order.
func (b *Baseline) ByMethod(module ModuleID, token uint32) []ActiveStatement {
	var statements []ActiveStatement

	for _, statement := range b.statements {
		method := statement.Method()
		if method.Module == module && method.Token == token {
			statements = append(statements, statement)
		}
	}

	return statements
}
