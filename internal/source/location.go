package source

import "fmt"

// Location is a position in source text. Row is 1-based, Column counts
// Unicode scalar values from the start of the line (0-based).
type Location struct {
	Row    int
	Column int
}

// NewLocation is a shorthand constructor.
func NewLocation(row, column int) Location {
	return Location{Row: row, Column: column}
}

// Compare orders locations by (row, column).
func (l Location) Compare(other Location) int {
	switch {
	case l.Row < other.Row:
		return -1
	case l.Row > other.Row:
		return 1
	case l.Column < other.Column:
		return -1
	case l.Column > other.Column:
		return 1
	default:
		return 0
	}
}

// Less reports whether l sorts before other.
func (l Location) Less(other Location) bool {
	return l.Compare(other) < 0
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Row, l.Column)
}

// Range is a half-open [Start, End) interval. Start <= End.
type Range struct {
	Start Location
	End   Location
}

// NewRange builds a range, swapping the ends if they arrive out of order.
func NewRange(start, end Location) Range {
	if end.Less(start) {
		start, end = end, start
	}
	return Range{Start: start, End: end}
}

// PointRange is an empty range anchored at loc.
func PointRange(loc Location) Range {
	return Range{Start: loc, End: loc}
}

// Empty reports whether the range covers no text.
func (r Range) Empty() bool {
	return r.Start == r.End
}

// Contains reports whether loc lies inside [Start, End).
func (r Range) Contains(loc Location) bool {
	return !loc.Less(r.Start) && loc.Less(r.End)
}

// Overlaps reports whether two ranges share text. Two empty ranges never
// overlap; an empty range overlaps a non-empty one it falls strictly inside of.
func (r Range) Overlaps(other Range) bool {
	if r.Empty() && other.Empty() {
		return false
	}
	if r.Empty() {
		return other.Contains(r.Start)
	}
	if other.Empty() {
		return r.Contains(other.Start)
	}
	return r.Start.Less(other.End) && other.Start.Less(r.End)
}

// Cover returns the smallest range that contains both r and other.
func (r Range) Cover(other Range) Range {
	if other.Start.Less(r.Start) {
		r.Start = other.Start
	}
	if r.End.Less(other.End) {
		r.End = other.End
	}
	return r
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
