package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSpan is returned when a span literal cannot be parsed or its end
// precedes its start.
var ErrInvalidSpan = errors.New("invalid span")

// LinePosition is a zero-based line and character position in a document.
type LinePosition struct {
	Line      int `yaml:"line"`
	Character int `yaml:"character"`
}

// Compare orders positions by line, then by character.
func (p LinePosition) Compare(other LinePosition) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.Character < other.Character:
		return -1
	case p.Character > other.Character:
		return 1
	}

	return 0
}

func (p LinePosition) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Character)
}

// Span is a range of source text in line/character coordinates. Both ends are
// zero-based; End is exclusive.
type Span struct {
	Start LinePosition
	End   LinePosition
}

// NewSpan builds a span from raw coordinates.
func NewSpan(startLine, startCharacter, endLine, endCharacter int) Span {
	return Span{
		Start: LinePosition{Line: startLine, Character: startCharacter},
		End:   LinePosition{Line: endLine, Character: endCharacter},
	}
}

// ParseSpan parses the "line:col-line:col" form produced by Span.String.
func ParseSpan(text string) (Span, error) {
	text = strings.TrimSpace(text)

	startText, endText, ok := strings.Cut(text, "-")
	if !ok {
		return Span{}, fmt.Errorf("%w: %q: missing '-'", ErrInvalidSpan, text)
	}

	start, err := parseLinePosition(startText)
	if err != nil {
		return Span{}, fmt.Errorf("%w: %q: %w", ErrInvalidSpan, text, err)
	}

	end, err := parseLinePosition(endText)
	if err != nil {
		return Span{}, fmt.Errorf("%w: %q: %w", ErrInvalidSpan, text, err)
	}

	span := Span{Start: start, End: end}
	if err := span.Validate(); err != nil {
		return Span{}, err
	}

	return span, nil
}

func parseLinePosition(text string) (LinePosition, error) {
	lineText, charText, ok := strings.Cut(strings.TrimSpace(text), ":")
	if !ok {
		return LinePosition{}, fmt.Errorf("position %q is not line:col", text)
	}

	line, err := strconv.Atoi(lineText)
	if err != nil {
		return LinePosition{}, fmt.Errorf("line: %w", err)
	}

	character, err := strconv.Atoi(charText)
	if err != nil {
		return LinePosition{}, fmt.Errorf("column: %w", err)
	}

	return LinePosition{Line: line, Character: character}, nil
}

// Validate reports whether the span has non-negative coordinates and does not
// end before it starts.
func (s Span) Validate() error {
	if s.Start.Line < 0 || s.Start.Character < 0 || s.End.Line < 0 || s.End.Character < 0 {
		return fmt.Errorf("%w: %s has negative coordinates", ErrInvalidSpan, s)
	}

	if s.End.Compare(s.Start) < 0 {
		return fmt.Errorf("%w: %s ends before it starts", ErrInvalidSpan, s)
	}

	return nil
}

func (s Span) String() string {
	return s.Start.String() + "-" + s.End.String()
}

// AddLineDelta shifts both ends of the span by delta lines. Characters are
// unchanged.
func (s Span) AddLineDelta(delta int) Span {
	s.Start.Line += delta
	s.End.Line += delta

	return s
}

// LineDelta returns how many lines other starts below s.
func (s Span) LineDelta(other Span) int {
	return other.Start.Line - s.Start.Line
}

// Contains reports whether other lies within s (inclusive on both ends).
func (s Span) Contains(other Span) bool {
	return s.Start.Compare(other.Start) <= 0 && other.End.Compare(s.End) <= 0
}

// Compare orders spans by start position, then by end position.
func (s Span) Compare(other Span) int {
	if c := s.Start.Compare(other.Start); c != 0 {
		return c
	}

	return s.End.Compare(other.End)
}

// MarshalYAML writes the span in its compact text form.
func (s Span) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML accepts either the compact "line:col-line:col" text or a
// mapping with start/end positions.
func (s *Span) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		span, err := ParseSpan(value.Value)
		if err != nil {
			return err
		}

		*s = span

		return nil
	}

	var raw struct {
		Start LinePosition `yaml:"start"`
		End   LinePosition `yaml:"end"`
	}

	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSpan, err)
	}

	span := Span{Start: raw.Start, End: raw.End}
	if err := span.Validate(); err != nil {
		return err
	}

	*s = span

	return nil
}
