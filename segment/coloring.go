package segment

import (
	"sort"

	"github.com/grailbio/ibd/interval"
	"github.com/minio/highwayhash"
)

// Color identifies one IBD group within a colored interval.
type Color int

// Ungrouped is the color of a haplotype that belongs to no group.
const Ungrouped Color = 0

// ColoredInterval is one piece of the disjoint decomposition with a color per
// requested haplotype.
type ColoredInterval struct {
	Range interval.Range
	BP    BPRange
	// Colors has an entry for every requested haplotype.
	Colors map[HapID]Color
}

// Coloring is the result of Set.ToGroupToColor.
type Coloring struct {
	// Haps is the requested haplotype list, in canonical order.
	Haps      []HapID
	Intervals []ColoredInterval
}

// Groups returns the requested haplotypes of interval i keyed by color,
// excluding Ungrouped ones.  Each member list is in canonical order.
func (c Coloring) Groups(i int) map[Color][]HapID {
	groups := map[Color][]HapID{}
	for _, h := range c.Haps {
		if col := c.Intervals[i].Colors[h]; col != Ungrouped {
			groups[col] = append(groups[col], h)
		}
	}
	return groups
}

// NumColors returns the largest color used anywhere in the coloring.
func (c Coloring) NumColors() int {
	top := Ungrouped
	for _, iv := range c.Intervals {
		for _, col := range iv.Colors {
			if col > top {
				top = col
			}
		}
	}
	return int(top)
}

type groupKey [highwayhash.Size]byte

var zeroHashKey [highwayhash.Size]byte

// coloredGroup is a group of the previous piece and the color it got.
type coloredGroup struct {
	samples []HapID
	color   Color
}

// ToGroupToColor computes the disjoint decomposition of the set and assigns a
// color to every group of every piece.  Members of one group share a color,
// and requested haplotypes outside every group are Ungrouped.
//
// A group whose member set is unchanged from the immediately preceding,
// touching piece keeps its color.  Any other group takes the smallest color
// that is neither used in the current piece nor in that preceding piece, so two
// touching pieces share a color exactly when the group persists across them.
// Colors are reused across pieces that do not touch.
func (s *Set) ToGroupToColor(haps []HapID) (Coloring, error) {
	pieces, err := s.Disjoint()
	if err != nil {
		return Coloring{}, err
	}
	req := canonicalHaps(append([]HapID(nil), haps...))
	coloring := Coloring{
		Haps:      req,
		Intervals: make([]ColoredInterval, len(pieces)),
	}

	var (
		buf      []byte
		prev     map[groupKey][]coloredGroup
		prevUsed map[Color]bool
		prevEnd  interval.PosType = -1
	)
	for pi, p := range pieces {
		touching := p.Range.Start == prevEnd
		cur := make(map[groupKey][]coloredGroup, len(p.Groups))
		used := make(map[Color]bool, len(p.Groups))
		colors := make([]Color, len(p.Groups))
		keys := make([]groupKey, len(p.Groups))
		for gi, g := range p.Groups {
			buf = appendHapBytes(buf[:0], g.Samples)
			keys[gi] = groupKey(highwayhash.Sum(buf, zeroHashKey[:]))
			if !touching {
				continue
			}
			for _, pg := range prev[keys[gi]] {
				if equalHaps(pg.samples, g.Samples) {
					colors[gi] = pg.color
					used[pg.color] = true
					break
				}
			}
		}
		next := Color(1)
		for gi := range p.Groups {
			if colors[gi] != Ungrouped {
				continue
			}
			for used[next] || (touching && prevUsed[next]) {
				next++
			}
			colors[gi] = next
			used[next] = true
		}

		ci := ColoredInterval{
			Range:  p.Range,
			BP:     p.BP,
			Colors: make(map[HapID]Color, len(req)),
		}
		for _, h := range req {
			ci.Colors[h] = Ungrouped
		}
		for gi, g := range p.Groups {
			cur[keys[gi]] = append(cur[keys[gi]], coloredGroup{g.Samples, colors[gi]})
			for _, h := range g.Samples {
				if _, ok := ci.Colors[h]; ok {
					ci.Colors[h] = colors[gi]
				}
			}
		}
		coloring.Intervals[pi] = ci
		prev, prevUsed, prevEnd = cur, used, p.Range.End
	}
	return coloring, nil
}

// SortedColors returns the distinct non-Ungrouped colors of interval i in
// ascending order.
func (c Coloring) SortedColors(i int) []Color {
	seen := map[Color]bool{}
	var cols []Color
	for _, col := range c.Intervals[i].Colors {
		if col != Ungrouped && !seen[col] {
			seen[col] = true
			cols = append(cols, col)
		}
	}
	sort.Slice(cols, func(a, b int) bool { return cols[a] < cols[b] })
	return cols
}
