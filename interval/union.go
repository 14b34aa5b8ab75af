package interval

import (
	"sort"
)

// This file represents an interval-union as an []PosType containing a sorted
// sequence of interval-endpoints.
//
// For example, given the SNP ranges
//   [5, 15)
//   [7, 17)
//   [20, 25)
// the interval-union would be
//   [5, 17) U [20, 25)
// so the sorted sequence of endpoints would be
//   {5, 17, 20, 25}.
//
// Touching ranges are merged as well: [0, 5) and [5, 9) become [0, 9).

// Union is a set of disjoint, non-touching SNP ranges in endpoint-array form.
// The zero value is the empty union.
type Union struct {
	endpoints []PosType
}

// NewUnion builds the union of the given ranges.  Input order does not matter
// and empty ranges are ignored.
func NewUnion(ranges []Range) Union {
	sorted := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if !r.Empty() {
			sorted = append(sorted, r)
		}
	}
	if len(sorted) == 0 {
		return Union{}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	var endpoints []PosType
	prevStart, prevEnd := sorted[0].Start, sorted[0].End
	for _, r := range sorted[1:] {
		if r.Start > prevEnd {
			// New range doesn't touch the previous one, so we can save the
			// previous one.
			endpoints = append(endpoints, prevStart, prevEnd)
			prevStart, prevEnd = r.Start, r.End
			continue
		}
		if r.End > prevEnd {
			prevEnd = r.End
		}
	}
	endpoints = append(endpoints, prevStart, prevEnd)
	return Union{endpoints: endpoints}
}

// Covered returns the number of indices in the union.
func (u Union) Covered() int {
	n := 0
	for i := 0; i+1 < len(u.endpoints); i += 2 {
		n += int(u.endpoints[i+1] - u.endpoints[i])
	}
	return n
}

// UnionScanner supports iteration over an interval-union.
// Invariants:
//   endpointIdx is the index of the endpoint that ends the current range
//   pos is either contained in an interval, or is PosTypeMax
type UnionScanner struct {
	endpoints   []PosType
	pos         PosType
	endpointIdx int
}

// NewScanner returns a UnionScanner initialized to the first interval.
func (u Union) NewScanner() UnionScanner {
	us := UnionScanner{
		endpoints: u.endpoints,
		pos:       PosTypeMax,
	}
	if len(u.endpoints) >= 2 {
		us.pos = u.endpoints[0]
		us.endpointIdx = 1
	}
	return us
}

// Scan is written so that the following loop visits every covered range up
// to (and not including) limit, splitting a range that crosses limit:
//   for us.Scan(&r, limit) {
//     for pos := r.Start; pos < r.End; pos++ {
//       // ...do stuff with pos...
//     }
//   }
// A later call with a larger limit picks up where the previous one stopped.
func (us *UnionScanner) Scan(r *Range, limit PosType) bool {
	if us.pos >= limit {
		return false
	}
	r.Start = us.pos
	intervalEnd := us.endpoints[us.endpointIdx]
	if intervalEnd > limit {
		us.pos = limit
		r.End = limit
		return true
	}
	r.End = intervalEnd
	us.endpointIdx++
	if us.endpointIdx >= len(us.endpoints) {
		us.pos = PosTypeMax
	} else {
		us.pos = us.endpoints[us.endpointIdx]
		us.endpointIdx++
	}
	return true
}
