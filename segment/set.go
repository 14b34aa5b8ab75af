package segment

import (
	"sort"

	"github.com/biogo/store/llrb"
	"github.com/grailbio/ibd/interval"
)

// setKey orders segments in a Set: by range start, then range end, then by
// descending member count, then lexicographically by members.  Two segments
// with the same range and members compare equal, which makes Insert
// idempotent.
type setKey struct {
	seg Segment
}

// Compare compares two setKey objects for use in llrb.
func (k setKey) Compare(c2 llrb.Comparable) int {
	k2 := c2.(setKey)
	if diff := k.seg.r.Start - k2.seg.r.Start; diff != 0 {
		return int(diff)
	}
	if diff := k.seg.r.End - k2.seg.r.End; diff != 0 {
		return int(diff)
	}
	if diff := len(k2.seg.samples) - len(k.seg.samples); diff != 0 {
		return diff
	}
	return compareHaps(k.seg.samples, k2.seg.samples)
}

// sortGroups orders haplotype groups by descending size, then by members.
func sortGroups(groups [][]HapID) {
	sort.Slice(groups, func(i, j int) bool {
		if len(groups[i]) != len(groups[j]) {
			return len(groups[i]) > len(groups[j])
		}
		return compareHaps(groups[i], groups[j]) < 0
	})
}

// Set is an ordered collection of Segments.  Segments are kept sorted by
// range start then range end; segments sharing a range are ordered by
// descending member count.  A Set never holds two segments with identical
// range and members.
//
// Thread compatible.
type Set struct {
	tree   llrb.Tree
	interp Interpolation
	// cache is the in-order list of segments; nil when stale.
	cache []Segment
}

// SetOpt configures a Set.
type SetOpt func(*Set)

// WithInterpolation sets the policy used to pro-rate genetic lengths when the
// set's segments are cut into pieces.  The default is ByIndex.
func WithInterpolation(interp Interpolation) SetOpt {
	return func(s *Set) { s.interp = interp }
}

// NewSet creates an empty Set.
func NewSet(opts ...SetOpt) *Set {
	s := &Set{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSetFromSegments creates a Set holding segs.
func NewSetFromSegments(segs []Segment, opts ...SetOpt) *Set {
	s := NewSet(opts...)
	for _, seg := range segs {
		s.Insert(seg)
	}
	return s
}

// Interpolation returns the set's length interpolation policy.
func (s *Set) Interpolation() Interpolation { return s.interp }

// Insert adds seg in sorted position.  If the set already holds a segment with
// the same range and members, the set is unchanged and Insert returns false.
func (s *Set) Insert(seg Segment) bool {
	k := setKey{seg}
	if s.tree.Get(k) != nil {
		return false
	}
	s.tree.Insert(k)
	s.cache = nil
	return true
}

// Len returns the number of segments.
func (s *Set) Len() int { return s.tree.Len() }

// Do calls fn on each segment in order, until fn returns true.
func (s *Set) Do(fn func(Segment) (done bool)) {
	s.tree.Do(func(c llrb.Comparable) bool {
		return fn(c.(setKey).seg)
	})
}

// Segments returns the segments in order.  The caller must not modify the
// result.
func (s *Set) Segments() []Segment {
	if s.cache == nil {
		segs := make([]Segment, 0, s.tree.Len())
		s.Do(func(seg Segment) bool {
			segs = append(segs, seg)
			return false
		})
		s.cache = segs
	}
	return s.cache
}

// At returns the i'th segment in order.
//
// REQUIRES: 0 <= i < Len().
func (s *Set) At(i int) Segment {
	return s.Segments()[i]
}

// Length returns the total genetic length of all segments, 0 for an empty
// set.
func (s *Set) Length() float64 {
	total := 0.0
	s.Do(func(seg Segment) bool {
		total += seg.length
		return false
	})
	return total
}

// Coverage returns the union of the segments' ranges.
func (s *Set) Coverage() interval.Union {
	segs := s.Segments()
	ranges := make([]interval.Range, len(segs))
	for i, seg := range segs {
		ranges[i] = seg.r
	}
	return interval.NewUnion(ranges)
}

// Best returns the index of the segment with the most members, breaking ties
// by the longest genetic length, then by order.  It returns -1 for an empty
// set.
func (s *Set) Best() int {
	best := -1
	var bestSeg Segment
	for i, seg := range s.Segments() {
		if best < 0 ||
			len(seg.samples) > len(bestSeg.samples) ||
			(len(seg.samples) == len(bestSeg.samples) && seg.length > bestSeg.length) {
			best, bestSeg = i, seg
		}
	}
	return best
}

// Equal returns true iff both sets hold pairwise Equal segments in the same
// order.
func (s *Set) Equal(o *Set, tol float64) bool {
	a, b := s.Segments(), o.Segments()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i], tol) {
			return false
		}
	}
	return true
}
