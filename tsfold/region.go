package tsfold

import "fmt"

// Region is a half-open byte range [Start, End) in the coordinate space of
// the syntax tree it was computed from.
type Region struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// Len returns the number of bytes covered by the region.
func (r Region) Len() uint32 {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// Empty reports whether the region covers no bytes.
func (r Region) Empty() bool {
	return r.Len() == 0
}

// Contains reports whether offset falls inside the region.
func (r Region) Contains(offset uint32) bool {
	return r.Start <= offset && offset < r.End
}

// Encloses reports whether other lies entirely within r.
func (r Region) Encloses(other Region) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Overlaps reports whether the two regions share at least one byte.
func (r Region) Overlaps(other Region) bool {
	return r.Start < other.End && other.Start < r.End
}

func (r Region) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// nodeRegion returns the span covered by n.
func nodeRegion(n Node) Region {
	return Region{Start: n.StartByte(), End: n.EndByte()}
}
