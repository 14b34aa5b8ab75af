package segment

import (
	"math"

	"github.com/grailbio/ibd/interval"
)

// Tuple is the flat, storage-friendly form of a Segment, as exchanged with
// loaders and writers.
type Tuple struct {
	Start, End     int
	StartBP, EndBP int64
	Length         float64
	Confidence     int
	Samples        []HapID
}

// FromTuple validates t and converts it to a Segment.  Besides the checks of
// New, it rejects indices outside the PosType domain and confidence codes
// outside [0, 255].
func FromTuple(t Tuple) (Segment, error) {
	if t.Start < 0 || t.End > math.MaxInt32 {
		return Segment{}, validationErrorf("segment: tuple range [%d,%d) out of bounds", t.Start, t.End)
	}
	if t.Confidence < 0 || t.Confidence > math.MaxUint8 {
		return Segment{}, validationErrorf("segment: tuple confidence %d out of bounds", t.Confidence)
	}
	return New(
		interval.Range{Start: interval.PosType(t.Start), End: interval.PosType(t.End)},
		BPRange{t.StartBP, t.EndBP},
		t.Length,
		Confidence(t.Confidence),
		t.Samples...)
}

// Tuple returns the flat form of s.  FromTuple(s.Tuple()) reproduces s
// exactly.
func (s Segment) Tuple() Tuple {
	return Tuple{
		Start:      int(s.r.Start),
		End:        int(s.r.End),
		StartBP:    s.bp.Start,
		EndBP:      s.bp.End,
		Length:     s.length,
		Confidence: int(s.conf),
		Samples:    s.Samples(),
	}
}

// NewSetFromTuples converts every tuple and returns the resulting Set.  It
// fails on the first invalid tuple.
func NewSetFromTuples(tuples []Tuple, opts ...SetOpt) (*Set, error) {
	s := NewSet(opts...)
	for i, t := range tuples {
		seg, err := FromTuple(t)
		if err != nil {
			return nil, validationErrorf("segment: tuple %d: %v", i, err)
		}
		s.Insert(seg)
	}
	return s, nil
}

// Tuples returns the flat form of every segment, in set order.
func (s *Set) Tuples() []Tuple {
	segs := s.Segments()
	tuples := make([]Tuple, len(segs))
	for i, seg := range segs {
		tuples[i] = seg.Tuple()
	}
	return tuples
}
