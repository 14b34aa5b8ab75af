package segment

import (
	"fmt"
	"math"
	"strings"

	"github.com/grailbio/ibd/interval"
)

// Confidence is the call-quality code of a segment.  Its meaning is defined by
// whoever produces the segments (see germline.Classifier); 0 conventionally
// denotes a clean call.
type Confidence uint8

// BPRange holds the physical base-pair coordinates of a segment's bounds.
type BPRange struct{ Start, End int64 }

// Span returns End-Start.
func (r BPRange) Span() int64 { return r.End - r.Start }

// Interpolation selects how a segment's genetic length is pro-rated when the
// segment is cut into pieces.
type Interpolation uint8

const (
	// ByIndex pro-rates by the fraction of SNP indices kept.
	ByIndex Interpolation = iota
	// ByPhysical pro-rates by the fraction of base pairs kept, falling back to
	// ByIndex for segments with an empty physical span.
	ByPhysical
)

// String returns the policy name.
func (i Interpolation) String() string {
	switch i {
	case ByIndex:
		return "index"
	case ByPhysical:
		return "physical"
	}
	return fmt.Sprintf("Interpolation(%d)", uint8(i))
}

// Segment is one IBD segment: a SNP range, its annotations, and the set of
// haplotypes that are IBD over it.
//
// INVARIANT: r.Start < r.End, len(samples) > 0, samples is sorted and free of
// duplicates, bp.Start <= bp.End, length is finite and >= 0.
type Segment struct {
	r       interval.Range
	bp      BPRange
	length  float64
	conf    Confidence
	samples []HapID
}

// New validates its arguments and returns a Segment.  Duplicate samples are
// collapsed.  It returns a validation error (see IsValidation) for an empty
// range, an empty sample set, an inverted physical range or a negative or
// non-finite length.
func New(r interval.Range, bp BPRange, length float64, conf Confidence, samples ...HapID) (Segment, error) {
	if r.Empty() {
		return Segment{}, validationErrorf("segment: empty range %v", r)
	}
	if r.Start < 0 {
		return Segment{}, validationErrorf("segment: negative start in %v", r)
	}
	if len(samples) == 0 {
		return Segment{}, validationErrorf("segment: %v has no samples", r)
	}
	if bp.End < bp.Start {
		return Segment{}, validationErrorf("segment: %v has inverted bp range [%d,%d]", r, bp.Start, bp.End)
	}
	if length < 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return Segment{}, validationErrorf("segment: %v has invalid genetic length %v", r, length)
	}
	haps := make([]HapID, len(samples))
	copy(haps, samples)
	return Segment{
		r:       r,
		bp:      bp,
		length:  length,
		conf:    conf,
		samples: canonicalHaps(haps),
	}, nil
}

// Range returns the SNP index range.
func (s Segment) Range() interval.Range { return s.r }

// BP returns the physical coordinates of the range bounds.
func (s Segment) BP() BPRange { return s.bp }

// GeneticLength returns the genetic length, e.g. in cM.
func (s Segment) GeneticLength() float64 { return s.length }

// Confidence returns the call-quality code.
func (s Segment) Confidence() Confidence { return s.conf }

// Samples returns a copy of the member haplotypes, in canonical order.
func (s Segment) Samples() []HapID {
	haps := make([]HapID, len(s.samples))
	copy(haps, s.samples)
	return haps
}

// NumSamples returns the number of member haplotypes.
func (s Segment) NumSamples() int { return len(s.samples) }

// Len returns the number of SNPs covered.
func (s Segment) Len() int { return s.r.Span() }

// Contains returns true iff h is a member.
func (s Segment) Contains(h HapID) bool {
	lo, hi := 0, len(s.samples)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s.samples[mid].Less(h) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(s.samples) && s.samples[lo] == h
}

// Equal checks structural equality: same range, same confidence, same
// samples, and physical bounds and genetic length within tol.
func (s Segment) Equal(o Segment, tol float64) bool {
	return s.r == o.r &&
		s.conf == o.conf &&
		math.Abs(float64(s.bp.Start-o.bp.Start)) <= tol &&
		math.Abs(float64(s.bp.End-o.bp.End)) <= tol &&
		math.Abs(s.length-o.length) <= tol &&
		equalHaps(s.samples, o.samples)
}

// String returns a compact one-line representation, e.g.
// "[0,20) bp=[16484792,17318333] len=0.834 conf=0 {(3,1),(4,1)}".
func (s Segment) String() string {
	buf := strings.Builder{}
	fmt.Fprintf(&buf, "%v bp=[%d,%d] len=%.3f conf=%d {", s.r, s.bp.Start, s.bp.End, s.length, s.conf)
	for i, h := range s.samples {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(h.String())
	}
	buf.WriteByte('}')
	return buf.String()
}

// Split cuts s at the given SNP indices and returns the pieces in ascending
// order.  Points outside the segment are ignored.  Physical bounds of interior
// cut points are interpolated linearly in index space; genetic lengths are
// pro-rated per interp.  The pieces' lengths sum to s's length up to rounding.
func (s Segment) Split(points []interval.PosType, interp Interpolation) []Segment {
	ranges := interval.SplitAt(s.r, points)
	pieces := make([]Segment, len(ranges))
	for i, r := range ranges {
		bp := BPRange{
			interval.InterpolateInt64(s.r, s.bp.Start, s.bp.End, r.Start),
			interval.InterpolateInt64(s.r, s.bp.Start, s.bp.End, r.End),
		}
		pieces[i] = s.restrict(r, bp, interp)
	}
	return pieces
}

// restrict returns the part of s over r (which s must cover), with the given
// physical bounds.
func (s Segment) restrict(r interval.Range, bp BPRange, interp Interpolation) Segment {
	return Segment{
		r:       r,
		bp:      bp,
		length:  s.prorate(r, bp, interp),
		conf:    s.conf,
		samples: s.samples,
	}
}

// prorate returns the share of s's genetic length that belongs to sub-range r
// with physical bounds bp.
func (s Segment) prorate(r interval.Range, bp BPRange, interp Interpolation) float64 {
	if r == s.r {
		return s.length
	}
	if interp == ByPhysical && s.bp.Span() > 0 {
		frac := float64(bp.Span()) / float64(s.bp.Span())
		return s.length * math.Max(0, math.Min(1, frac))
	}
	return s.length * interval.Fraction(r, s.r)
}
