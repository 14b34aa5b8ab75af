package segment

import (
	"blainsmith.com/go/seahash"
	"github.com/grailbio/ibd/interval"
)

// membershipKey hashes a canonical member list.  Equal lists have equal keys;
// callers must still compare the lists on a key match.
func membershipKey(haps []HapID, buf *[]byte) uint64 {
	*buf = appendHapBytes((*buf)[:0], haps)
	return seahash.Sum64(*buf)
}

// Merge returns a new Set in which segments with identical members whose
// ranges overlap or touch are replaced by one segment spanning them.  The
// merged segment keeps the earliest physical start and the latest physical
// end, the largest confidence code, and the genetic length of the union (the
// part of a later segment that overlaps an earlier one is not counted twice).
func (s *Set) Merge() *Set {
	var (
		buf     []byte
		byKey   = map[uint64][]int{}
		classes [][]Segment
	)
	// Segments() is sorted by range, so each class comes out sorted too.
	for _, seg := range s.Segments() {
		key := membershipKey(seg.samples, &buf)
		found := false
		for _, ci := range byKey[key] {
			if equalHaps(classes[ci][0].samples, seg.samples) {
				classes[ci] = append(classes[ci], seg)
				found = true
				break
			}
		}
		if !found {
			byKey[key] = append(byKey[key], len(classes))
			classes = append(classes, []Segment{seg})
		}
	}

	out := NewSet(WithInterpolation(s.interp))
	for _, class := range classes {
		cur := class[0]
		for _, next := range class[1:] {
			if next.r.Start > cur.r.End {
				out.Insert(cur)
				cur = next
				continue
			}
			if next.r.End > cur.r.End {
				extra := interval.Range{Start: cur.r.End, End: next.r.End}
				extraBP := BPRange{
					interval.InterpolateInt64(next.r, next.bp.Start, next.bp.End, extra.Start),
					next.bp.End,
				}
				cur.length += next.prorate(extra, extraBP, s.interp)
				cur.r.End = next.r.End
				cur.bp.End = next.bp.End
			}
			if next.bp.Start < cur.bp.Start {
				cur.bp.Start = next.bp.Start
			}
			if next.conf > cur.conf {
				cur.conf = next.conf
			}
		}
		out.Insert(cur)
	}
	return out
}
