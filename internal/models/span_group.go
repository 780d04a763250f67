package models

// SpanGroup is one row of the grouped span counts returned by the telemetry
// backend: a distinct combination of grouping attributes and the number of
// spans observed for it inside the queried window.
type SpanGroup struct {
	Attributes
	Count int64 `json:"count"`
}

// Dataset is a static snapshot of grouped span counts for one scope.
//
// DeclaredTotal, when present, is the backend's authoritative span total for
// the window. It can exceed the sum of the visible groups because backends
// cap the number of groups they return; the difference is reconciled into a
// synthetic "(other)" bucket at simulation time.
type Dataset struct {
	Groups        []SpanGroup `json:"groups"`
	DeclaredTotal *int64      `json:"declaredTotal,omitempty"`
}

// GroupTotal sums the counts of the visible groups.
func (d Dataset) GroupTotal() int64 {
	var total int64
	for _, g := range d.Groups {
		total += g.Count
	}
	return total
}

// TotalCount is the raw span total for the window: the declared total when
// the backend supplied one, otherwise the sum of the visible groups.
func (d Dataset) TotalCount() int64 {
	if d.DeclaredTotal != nil {
		return *d.DeclaredTotal
	}
	return d.GroupTotal()
}
