package model

import "sort"

// Ledger maps method bodies that were not recompiled to the non-remappable
// regions tracked for them. A Ledger is immutable: every operation returns a
// new value and leaves the receiver untouched.
type Ledger struct {
	methods map[MethodID][]NonRemappableRegion
}

// LedgerEntry is the serialized form of one method's regions.
type LedgerEntry struct {
	Method  MethodID              `yaml:"method"`
	Regions []NonRemappableRegion `yaml:"regions"`
}

// NewLedger builds a ledger from entries. Later entries for the same method
// are merged into earlier ones.
func NewLedger(entries ...LedgerEntry) Ledger {
	ledger := Ledger{}
	for _, entry := range entries {
		ledger = ledger.Merge(entry.Method, entry.Regions)
	}

	return ledger
}

// Len returns the number of methods tracked.
func (l Ledger) Len() int {
	return len(l.methods)
}

// IsEmpty reports whether nothing is tracked.
func (l Ledger) IsEmpty() bool {
	return len(l.methods) == 0
}

// Regions returns a copy of the regions tracked for method.
func (l Ledger) Regions(method MethodID) []NonRemappableRegion {
	return append([]NonRemappableRegion(nil), l.methods[method]...)
}

// Has reports whether method has tracked regions.
func (l Ledger) Has(method MethodID) bool {
	_, ok := l.methods[method]
	return ok
}

// Methods returns the tracked methods in sorted order.
func (l Ledger) Methods() []MethodID {
	methods := make([]MethodID, 0, len(l.methods))
	for method := range l.methods {
		methods = append(methods, method)
	}

	sort.Slice(methods, func(i, j int) bool { return methods[i].Compare(methods[j]) < 0 })

	return methods
}

// Entries returns the ledger content sorted by method, for persistence and
// display.
func (l Ledger) Entries() []LedgerEntry {
	methods := l.Methods()
	entries := make([]LedgerEntry, 0, len(methods))

	for _, method := range methods {
		entries = append(entries, LedgerEntry{Method: method, Regions: l.Regions(method)})
	}

	return entries
}

// Merge returns a ledger where method's regions include regions. A region with
// the same old span and kind as a stored one replaces its delta; new regions
// are appended; stored regions not mentioned are kept.
func (l Ledger) Merge(method MethodID, regions []NonRemappableRegion) Ledger {
	if len(regions) == 0 {
		return l
	}

	next := l.clone()
	merged := append([]NonRemappableRegion(nil), next.methods[method]...)

	index := make(map[regionKey]int, len(merged))
	for i, region := range merged {
		index[region.key()] = i
	}

	for _, region := range regions {
		if i, ok := index[region.key()]; ok {
			merged[i] = region
			continue
		}

		index[region.key()] = len(merged)
		merged = append(merged, region)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].OldSpan.Compare(merged[j].OldSpan) < 0
	})

	next.methods[method] = merged

	return next
}

// WithoutMethods drops every version of the given methods of module.
func (l Ledger) WithoutMethods(module ModuleID, tokens TokenSet) Ledger {
	if len(tokens) == 0 || len(l.methods) == 0 {
		return l
	}

	next := Ledger{methods: make(map[MethodID][]NonRemappableRegion, len(l.methods))}

	for method, regions := range l.methods {
		if method.Module == module && tokens.Contains(method.Token) {
			continue
		}

		next.methods[method] = regions
	}

	return next
}

// Equal reports whether both ledgers track the same regions.
func (l Ledger) Equal(other Ledger) bool {
	if len(l.methods) != len(other.methods) {
		return false
	}

	for method, regions := range l.methods {
		otherRegions, ok := other.methods[method]
		if !ok || len(otherRegions) != len(regions) {
			return false
		}

		for i := range regions {
			if regions[i] != otherRegions[i] {
				return false
			}
		}
	}

	return true
}

func (l Ledger) clone() Ledger {
	next := Ledger{methods: make(map[MethodID][]NonRemappableRegion, len(l.methods)+1)}
	for method, regions := range l.methods {
		next.methods[method] = regions
	}

	return next
}
