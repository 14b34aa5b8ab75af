package segment

import (
	"sort"

	ivtree "github.com/biogo/store/interval"
	"github.com/grailbio/base/log"
	"github.com/grailbio/ibd/interval"
)

// Group is one connected component of the IBD relation over a piece.
type Group struct {
	// Samples are the member haplotypes, in canonical order.
	Samples []HapID
	// Confidence is the largest code among the input segments that formed the
	// group.
	Confidence Confidence
}

// Piece is one interval of the disjoint decomposition of a Set.
type Piece struct {
	Range interval.Range
	// BP holds the physical coordinates recorded for the piece boundaries.
	BP BPRange
	// Length is the genetic length of the piece, pro-rated from the first
	// covering input segment per the set's Interpolation.
	Length float64
	// Groups are ordered by descending size, then by smallest member.  Every
	// piece has at least one group.
	Groups []Group
}

// treeEntry adapts a segment's range to the biogo interval tree.  idx is the
// segment's position in Set.Segments().
type treeEntry struct {
	idx int
	r   interval.Range
}

func (e treeEntry) Overlap(b ivtree.IntRange) bool {
	// Half-open interval indexing.
	return int(e.r.End) > b.Start && int(e.r.Start) < b.End
}
func (e treeEntry) ID() uintptr { return uintptr(e.idx) }
func (e treeEntry) Range() ivtree.IntRange {
	return ivtree.IntRange{Start: int(e.r.Start), End: int(e.r.End)}
}

// pieceQuery is the overlap query for one piece.
type pieceQuery interval.Range

func (q pieceQuery) Overlap(b ivtree.IntRange) bool {
	return int(q.End) > b.Start && int(q.Start) < b.End
}

// Disjoint computes the disjoint decomposition of the set: the genome covered
// by the segments is cut at every segment boundary, and each resulting piece
// lists the connected components of the haplotypes that are co-members of
// some segment covering it.  Uncovered gaps produce no piece.
//
// Every piece boundary is an input segment boundary, so the physical
// coordinates of a boundary are the ones an input segment recorded for it
// (the first segment in set order wins when several did).  Boundaries whose
// physical coordinates decrease along the SNP axis indicate segments from
// inconsistent coordinate systems; Disjoint reports them as a validation
// error.
func (s *Set) Disjoint() ([]Piece, error) {
	segs := s.Segments()
	if len(segs) == 0 {
		return nil, nil
	}
	bpAt := make(map[interval.PosType]int64, 2*len(segs))
	points := make([]interval.PosType, 0, 2*len(segs))
	addPoint := func(p interval.PosType, bp int64) {
		if _, ok := bpAt[p]; !ok {
			bpAt[p] = bp
			points = append(points, p)
		}
	}
	tree := &ivtree.IntTree{}
	for i, seg := range segs {
		addPoint(seg.r.Start, seg.bp.Start)
		addPoint(seg.r.End, seg.bp.End)
		if err := tree.Insert(treeEntry{idx: i, r: seg.r}, false); err != nil {
			return nil, validationErrorf("segment: index %v: %v", seg, err)
		}
	}
	sort.Slice(points, func(i, j int) bool { return points[i] < points[j] })
	for i := 1; i < len(points); i++ {
		if bpAt[points[i]] < bpAt[points[i-1]] {
			return nil, validationErrorf("segment: contradictory physical order: index %d at bp %d precedes index %d at bp %d",
				points[i-1], bpAt[points[i-1]], points[i], bpAt[points[i]])
		}
	}

	coverage := s.Coverage()
	var (
		pieces []Piece
		hits   []int
		cov    interval.Range
		pi     int
	)
	// Coverage endpoints are segment boundaries, so every covered range starts
	// and ends on a point, and gaps between covered ranges produce no piece.
	for us := coverage.NewScanner(); us.Scan(&cov, interval.PosTypeMax); {
		for points[pi] < cov.Start {
			pi++
		}
		for ; points[pi] < cov.End; pi++ {
			r := interval.Range{Start: points[pi], End: points[pi+1]}
			hits = hits[:0]
			for _, e := range tree.Get(pieceQuery(r)) {
				hits = append(hits, e.(treeEntry).idx)
			}
			if len(hits) == 0 {
				log.Panicf("segment: piece %v inside coverage has no covering segment", r)
			}
			sort.Ints(hits)
			bp := BPRange{bpAt[r.Start], bpAt[r.End]}
			pieces = append(pieces, Piece{
				Range:  r,
				BP:     bp,
				Length: segs[hits[0]].prorate(r, bp, s.interp),
				Groups: groupMembers(segs, hits),
			})
		}
	}
	log.Debug.Printf("segment: %d segment(s), %d boundaries, %d SNPs covered -> %d piece(s)",
		len(segs), len(points), coverage.Covered(), len(pieces))
	return pieces, nil
}

// groupMembers returns the connected components of the co-membership graph
// formed by segs[hits].
func groupMembers(segs []Segment, hits []int) []Group {
	ds := newDisjointSet()
	for _, j := range hits {
		ds.addClique(segs[j].samples)
	}
	confByRoot := map[int]Confidence{}
	for _, j := range hits {
		root := ds.root(segs[j].samples[0])
		if c, ok := confByRoot[root]; !ok || segs[j].conf > c {
			confByRoot[root] = segs[j].conf
		}
	}
	comps := ds.components()
	groups := make([]Group, len(comps))
	for i, members := range comps {
		groups[i] = Group{
			Samples:    members,
			Confidence: confByRoot[ds.root(members[0])],
		}
	}
	return groups
}

// GroupToDisjoint returns the disjoint decomposition (see Disjoint) as a Set
// holding one segment per (piece, group), with the group's members as the
// segment's samples.  Two segments of the result therefore either share a
// range exactly or do not overlap at all.  GroupToDisjoint is idempotent.
func (s *Set) GroupToDisjoint() (*Set, error) {
	pieces, err := s.Disjoint()
	if err != nil {
		return nil, err
	}
	out := NewSet(WithInterpolation(s.interp))
	for _, p := range pieces {
		for _, g := range p.Groups {
			out.Insert(Segment{
				r:       p.Range,
				bp:      p.BP,
				length:  p.Length,
				conf:    g.Confidence,
				samples: g.Samples,
			})
		}
	}
	return out, nil
}
