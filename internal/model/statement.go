package model

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ActiveStatementFlags describes how an instruction was observed on the
// stacks of the stopped threads.
type ActiveStatementFlags uint8

// Flags reported by the debuggee. Leaf and non-leaf are not exclusive once
// frames are merged: a recursive method can be both.
const (
	FlagLeafFrame ActiveStatementFlags = 1 << iota
	FlagNonLeafFrame
	FlagMethodUpToDate
	FlagNonUserCode
	FlagPartiallyExecuted
)

// FlagNone is the empty flag set.
const FlagNone ActiveStatementFlags = 0

var flagNames = []struct {
	flag ActiveStatementFlags
	name string
}{
	{FlagLeafFrame, "leaf"},
	{FlagNonLeafFrame, "nonLeaf"},
	{FlagMethodUpToDate, "upToDate"},
	{FlagNonUserCode, "nonUser"},
	{FlagPartiallyExecuted, "partial"},
}

// Has reports whether every flag in mask is set.
func (f ActiveStatementFlags) Has(mask ActiveStatementFlags) bool {
	return f&mask == mask
}

// Names returns the symbolic names of the set flags.
func (f ActiveStatementFlags) Names() []string {
	names := make([]string, 0, len(flagNames))

	for _, entry := range flagNames {
		if f.Has(entry.flag) {
			names = append(names, entry.name)
		}
	}

	return names
}

func (f ActiveStatementFlags) String() string {
	if f == FlagNone {
		return "none"
	}

	return strings.Join(f.Names(), "|")
}

// ParseFlag returns the flag with the given symbolic name.
func ParseFlag(name string) (ActiveStatementFlags, error) {
	for _, entry := range flagNames {
		if strings.EqualFold(entry.name, strings.TrimSpace(name)) {
			return entry.flag, nil
		}
	}

	return FlagNone, fmt.Errorf("unknown active statement flag %q", name)
}

// MarshalYAML writes the flags as a list of names.
func (f ActiveStatementFlags) MarshalYAML() (interface{}, error) {
	return f.Names(), nil
}

// UnmarshalYAML reads a list of flag names.
func (f *ActiveStatementFlags) UnmarshalYAML(value *yaml.Node) error {
	var names []string
	if err := value.Decode(&names); err != nil {
		return err
	}

	flags := FlagNone

	for _, name := range names {
		flag, err := ParseFlag(name)
		if err != nil {
			return err
		}

		flags |= flag
	}

	*f = flags

	return nil
}

// ActiveStatementReport is one frame as reported by the debuggee.
// StatementID orders reports by stack depth; Span is nil for frames without
// source information.
type ActiveStatementReport struct {
	StatementID  int                  `yaml:"statementId"`
	Instruction  InstructionID        `yaml:",inline"`
	DocumentPath Path                 `yaml:"document"`
	Span         *Span                `yaml:"span,omitempty"`
	Flags        ActiveStatementFlags `yaml:"flags"`
}

// ActiveStatement is a source span that contains the instruction pointer of
// at least one frame. It is built once per baseline and never modified.
type ActiveStatement struct {
	Ordinal     int
	Instruction InstructionID
	Span        Span
	Flags       ActiveStatementFlags
	Document    DocumentID
	Documents   []DocumentID
}

// Method returns the method body containing the statement.
func (s ActiveStatement) Method() MethodID {
	return s.Instruction.Method
}

// IsLeaf reports whether the statement is the top frame of some thread.
func (s ActiveStatement) IsLeaf() bool {
	return s.Flags.Has(FlagLeafFrame)
}

// IsNonLeaf reports whether some frame is suspended in a call at this statement.
func (s ActiveStatement) IsNonLeaf() bool {
	return s.Flags.Has(FlagNonLeafFrame)
}

// WithSpan returns a copy of the statement with a new span.
func (s ActiveStatement) WithSpan(span Span) ActiveStatement {
	s.Span = span
	s.Documents = append([]DocumentID(nil), s.Documents...)

	return s
}

// InDocument reports whether doc is one of the statement's documents.
func (s ActiveStatement) InDocument(doc DocumentID) bool {
	for _, candidate := range s.Documents {
		if candidate == doc {
			return true
		}
	}

	return false
}
