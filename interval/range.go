package interval

import (
	"fmt"
	"math"
	"sort"
)

// PosType is the type used to represent SNP indices.  int32 is far wider than
// the number of SNPs on any chromosome.
type PosType int32

// PosTypeMax is the maximum value that can be represented by a PosType.
const PosTypeMax = math.MaxInt32

// Range is a half-open range [Start, End) of SNP indices.
//
// A Range with End <= Start is empty.  Empty ranges are legal values (they
// are what Intersect returns for disjoint inputs), but callers that need a
// real interval should check Empty().
type Range struct{ Start, End PosType }

// Span returns the number of SNP indices covered, 0 for an empty range.
func (r Range) Span() int {
	if r.End <= r.Start {
		return 0
	}
	return int(r.End - r.Start)
}

// Empty returns true iff the range covers no index.
func (r Range) Empty() bool { return r.End <= r.Start }

// Contains returns true iff pos is in [Start, End).
func (r Range) Contains(pos PosType) bool {
	return pos >= r.Start && pos < r.End
}

// Covers returns true iff every index of o is in r.  An empty o is covered by
// any range.
func (r Range) Covers(o Range) bool {
	if o.Empty() {
		return true
	}
	return o.Start >= r.Start && o.End <= r.End
}

// Less orders ranges by Start, then End.
func (r Range) Less(o Range) bool {
	if r.Start != o.Start {
		return r.Start < o.Start
	}
	return r.End < o.End
}

// String returns "[start,end)".
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Overlaps returns true iff a and b share at least one index.  Touching ranges
// ([0,5) and [5,9)) do not overlap.
func Overlaps(a, b Range) bool {
	return a.Start < b.End && b.Start < a.End && !a.Empty() && !b.Empty()
}

// Intersect returns the intersection of a and b.  The second return value is
// false, and the returned Range is empty, if they do not overlap.
func Intersect(a, b Range) (Range, bool) {
	r := Range{maxPos(a.Start, b.Start), minPos(a.End, b.End)}
	if r.Empty() {
		return Range{r.Start, r.Start}, false
	}
	return r, true
}

// IsAdjacent returns true iff one range ends exactly where the other starts.
func IsAdjacent(a, b Range) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.End == b.Start || b.End == a.Start
}

// SplitAt cuts r at every point strictly inside it and returns the resulting
// sub-ranges in ascending order.  Points outside (Start, End) are ignored, and
// duplicate points are collapsed, so the result always partitions r exactly.
// An empty r yields nil.
func SplitAt(r Range, points []PosType) []Range {
	if r.Empty() {
		return nil
	}
	cuts := make([]PosType, 0, len(points))
	for _, p := range points {
		if p > r.Start && p < r.End {
			cuts = append(cuts, p)
		}
	}
	sort.Slice(cuts, func(i, j int) bool { return cuts[i] < cuts[j] })
	result := make([]Range, 0, len(cuts)+1)
	start := r.Start
	for _, p := range cuts {
		if p == start {
			continue
		}
		result = append(result, Range{start, p})
		start = p
	}
	return append(result, Range{start, r.End})
}

// Fraction returns the share of r's indices that sub covers, in [0, 1].
// Interpolation of per-range annotations (physical span, genetic length) is
// linear in this value.
func Fraction(sub, r Range) float64 {
	if r.Empty() {
		return 0
	}
	is, ok := Intersect(sub, r)
	if !ok {
		return 0
	}
	return float64(is.Span()) / float64(r.Span())
}

// InterpolateInt64 linearly maps pos in r onto [lo, hi].  pos == r.Start
// yields lo and pos == r.End yields hi exactly; intermediate values are
// rounded to the nearest integer.
func InterpolateInt64(r Range, lo, hi int64, pos PosType) int64 {
	switch {
	case r.Empty() || pos <= r.Start:
		return lo
	case pos >= r.End:
		return hi
	}
	frac := float64(pos-r.Start) / float64(r.Span())
	return lo + int64(math.Round(frac*float64(hi-lo)))
}

func maxPos(p1, p2 PosType) PosType {
	if p1 > p2 {
		return p1
	}
	return p2
}

func minPos(p1, p2 PosType) PosType {
	if p1 < p2 {
		return p1
	}
	return p2
}
