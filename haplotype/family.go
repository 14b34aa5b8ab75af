package haplotype

import (
	"github.com/grailbio/ibd/segment"
)

// Family is a nuclear family: two parents and their children, by sample id.
type Family struct {
	Father, Mother int
	Children       []int
}

// Parents returns {Father, Mother}.
func (f Family) Parents() []int { return []int{f.Father, f.Mother} }

// Members returns the parents followed by the children.
func (f Family) Members() []int {
	return append(f.Parents(), f.Children...)
}

// FilledMembers returns the members, in Members order, that have at least one
// called allele in g.
func (f Family) FilledMembers(g Genotypes) []int {
	var filled []int
	for _, sample := range f.Members() {
		if hasCall(g, sample) {
			filled = append(filled, sample)
		}
	}
	return filled
}

func hasCall(g Genotypes, sample int) bool {
	for snp := 0; snp < g.NumSNPs(); snp++ {
		if g.Allele(sample, snp, segment.Maternal) != Missing ||
			g.Allele(sample, snp, segment.Paternal) != Missing {
			return true
		}
	}
	return false
}

// Haplotypes returns both haplotypes of every member, in canonical order.
func (f Family) Haplotypes() []segment.HapID {
	return segment.Haplotypes(f.Members()...)
}

// IsParentChild returns true iff one of a, b is a parent and the other a
// child of f.
func (f Family) IsParentChild(a, b int) bool {
	return (f.isParent(a) && f.isChild(b)) || (f.isParent(b) && f.isChild(a))
}

func (f Family) isParent(s int) bool { return s == f.Father || s == f.Mother }

func (f Family) isChild(s int) bool {
	for _, c := range f.Children {
		if c == s {
			return true
		}
	}
	return false
}
