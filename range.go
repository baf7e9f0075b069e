package changeset

import "fmt"

// Range represents a contiguous block of affected positions.
// The block is half-open: [Start, Start+Length).
type Range struct {
	Start  uint64 // first affected position
	Length uint64 // number of affected positions
}

// NewRange creates a Range from a start position and a length.
func NewRange(start, length uint64) Range {
	return Range{Start: start, Length: length}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End())
}

// End returns the exclusive end position of the range.
func (r Range) End() uint64 {
	return r.Start + r.Length
}

// IsEmpty returns true if the range covers no positions.
func (r Range) IsEmpty() bool {
	return r.Length == 0
}

// Contains returns true if the given position is within the range.
func (r Range) Contains(index uint64) bool {
	return index >= r.Start && index < r.End()
}
