package model

// ExceptionRegions lists the handler spans enclosing an active statement,
// innermost first. Available is false when the owning document cannot yet be
// trusted to match the running code.
type ExceptionRegions struct {
	Spans     []Span
	Available bool
}

// UnavailableRegions is the sentinel for regions that cannot be computed.
var UnavailableRegions = ExceptionRegions{}

// AvailableRegions wraps spans as an available region list.
func AvailableRegions(spans []Span) ExceptionRegions {
	return ExceptionRegions{
		Spans:     append([]Span{}, spans...),
		Available: true,
	}
}

// IsActiveStatementInHandler reports whether the statement itself lies inside
// a handler region.
func (r ExceptionRegions) IsActiveStatementInHandler() bool {
	return r.Available && len(r.Spans) > 0
}

// NonRemappableRegion records that code at OldSpan, in a method that has not
// been recompiled, now sits Delta lines away in the edited source.
type NonRemappableRegion struct {
	OldSpan           Span `yaml:"oldSpan"`
	Delta             int  `yaml:"delta"`
	IsExceptionRegion bool `yaml:"exceptionRegion"`
}

// NewSpan returns the location of the region in the edited source.
func (r NonRemappableRegion) NewSpan() Span {
	return r.OldSpan.AddLineDelta(r.Delta)
}

// LinesBack returns the line offset that maps the edited location back to the
// pre-edit one.
func (r NonRemappableRegion) LinesBack() int {
	return -r.Delta
}

// key identifies a region within one method.
func (r NonRemappableRegion) key() regionKey {
	return regionKey{span: r.OldSpan, exception: r.IsExceptionRegion}
}

type regionKey struct {
	span      Span
	exception bool
}
