package segment

// disjointSet is a union-find forest over haplotypes.  Co-membership in one
// segment is an edge; the connected components are the IBD groups of a piece.
// It is rebuilt for every piece, so it never has to support deletion.
type disjointSet struct {
	index  map[HapID]int
	haps   []HapID
	parent []int
	size   []int
}

func newDisjointSet() *disjointSet {
	return &disjointSet{index: map[HapID]int{}}
}

// add registers h as a singleton if it isn't known yet, and returns its node.
func (d *disjointSet) add(h HapID) int {
	if i, ok := d.index[h]; ok {
		return i
	}
	i := len(d.haps)
	d.index[h] = i
	d.haps = append(d.haps, h)
	d.parent = append(d.parent, i)
	d.size = append(d.size, 1)
	return i
}

// find returns the root of x, halving paths on the way.
func (d *disjointSet) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

// union merges the components of a and b, by size.
func (d *disjointSet) union(a, b int) {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return
	}
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
}

// addClique registers haps and connects all of them.
func (d *disjointSet) addClique(haps []HapID) {
	if len(haps) == 0 {
		return
	}
	first := d.add(haps[0])
	for _, h := range haps[1:] {
		d.union(first, d.add(h))
	}
}

// root returns the component root of a registered haplotype.
func (d *disjointSet) root(h HapID) int {
	return d.find(d.index[h])
}

// components returns the members of every component, each in canonical order.
// Components are ordered by descending size, then by smallest member.
func (d *disjointSet) components() [][]HapID {
	byRoot := map[int][]HapID{}
	for i, h := range d.haps {
		r := d.find(i)
		byRoot[r] = append(byRoot[r], h)
	}
	result := make([][]HapID, 0, len(byRoot))
	for _, members := range byRoot {
		result = append(result, canonicalHaps(members))
	}
	sortGroups(result)
	return result
}
