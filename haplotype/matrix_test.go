package haplotype

import (
	"testing"

	"github.com/grailbio/ibd/segment"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/grailbio/testutil/h"
)

func testGenotypes() (*Dense, SNPMap) {
	// 3 samples x 6 SNPs.  Sample 1 misses SNP 2 on one side, sample 2 misses
	// everything but SNP 2.
	g := NewDense(3, 6)
	g.SetHaplotype(0, segment.Maternal, []Allele{1, 2, 1, 1, 2, 2})
	g.SetHaplotype(0, segment.Paternal, []Allele{2, 2, 1, 2, 1, 2})
	g.SetHaplotype(1, segment.Maternal, []Allele{1, 2, Missing, 1, 2, 1})
	g.SetHaplotype(1, segment.Paternal, []Allele{1, 1, 1, 2, 2, 2})
	g.Set(2, 2, segment.Maternal, 1)
	g.Set(2, 2, segment.Paternal, 2)
	snps, err := UniformSNPMap([]int64{1000000, 2000000, 2500000, 4000000, 4000000, 7000000})
	if err != nil {
		panic(err)
	}
	return g, snps
}

func TestNewMatrix(t *testing.T) {
	g, snps := testGenotypes()
	m, err := NewMatrix(g, snps, []int{1, 0})
	assert.NoError(t, err)
	expect.EQ(t, m.Haps(), segment.Haplotypes(0, 1))
	expect.EQ(t, m.NumHaps(), 4)
	expect.That(t, m.Columns(), h.ElementsAre(0, 1, 3, 4, 5))
	expect.EQ(t, m.NumCols(), 5)
	expect.EQ(t, m.Row(2), []Allele{1, 2, 1, 2, 1})
	expect.EQ(t, m.At(1, 4), Allele(2))
	expect.EQ(t, m.BPAt(2), int64(4000000))
	expect.EQ(t, m.CMAt(4), 7.0)
	expect.EQ(t, m.RowOf(segment.HapID{Sample: 1, Side: segment.Paternal}), 3)
	expect.EQ(t, m.RowOf(segment.HapID{Sample: 2, Side: segment.Paternal}), -1)

	m, err = NewMatrix(g, snps, []int{0})
	assert.NoError(t, err)
	expect.EQ(t, m.NumCols(), 6)
}

func TestNewMatrixErrors(t *testing.T) {
	g, snps := testGenotypes()

	_, err := NewMatrix(g, snps, []int{0, 2})
	expect.False(t, IsInsufficientData(err))
	expect.NoError(t, err)

	// Sample 1's gap at SNP 2 and sample 2's gaps everywhere else leave
	// nothing.
	_, err = NewMatrix(g, snps, []int{1, 2})
	expect.True(t, IsInsufficientData(err), "%v", err)

	_, err = NewMatrix(g, snps, nil)
	assert.HasSubstr(t, errString(err), "no samples")
	_, err = NewMatrix(g, snps, []int{3})
	assert.HasSubstr(t, errString(err), "out of range")
	short, err := UniformSNPMap([]int64{1, 2})
	assert.NoError(t, err)
	_, err = NewMatrix(g, short, []int{0})
	assert.HasSubstr(t, errString(err), "SNP map has 2 entries")
	expect.False(t, IsInsufficientData(err))
}

func TestNewMatrixWide(t *testing.T) {
	// Spans several bitset words.
	const numSNPs = 200
	g := NewDense(2, numSNPs)
	for i := 0; i < numSNPs; i++ {
		g.Set(0, i, segment.Maternal, 1)
		g.Set(0, i, segment.Paternal, 2)
		g.Set(1, i, segment.Maternal, 1)
		if i%7 != 0 {
			g.Set(1, i, segment.Paternal, 2)
		}
	}
	bp := make([]int64, numSNPs)
	for i := range bp {
		bp[i] = int64(i) * 100
	}
	snps, err := UniformSNPMap(bp)
	assert.NoError(t, err)
	m, err := NewMatrix(g, snps, []int{0, 1})
	assert.NoError(t, err)
	expect.EQ(t, m.NumCols(), numSNPs-(numSNPs+6)/7)
	for j, snp := range m.Columns() {
		expect.True(t, snp%7 != 0)
		if j > 0 {
			expect.True(t, snp > m.Columns()[j-1])
		}
	}
}

func TestSNPMap(t *testing.T) {
	m, err := UniformSNPMap([]int64{0, 500000, 2000000})
	assert.NoError(t, err)
	expect.EQ(t, m.CM, []float64{0, 0.5, 2})
	expect.EQ(t, m.Len(), 3)

	_, err = NewSNPMap([]int64{5, 4}, []float64{0, 1})
	assert.HasSubstr(t, errString(err), "bp position of SNP 1")
	_, err = NewSNPMap([]int64{4, 5}, []float64{1, 0})
	assert.HasSubstr(t, errString(err), "cM position of SNP 1")
	_, err = NewSNPMap([]int64{4, 5}, []float64{1})
	assert.HasSubstr(t, errString(err), "2 bp positions vs 1 cM positions")
}

func TestFamily(t *testing.T) {
	g, _ := testGenotypes()
	f := Family{Father: 2, Mother: 0, Children: []int{1}}
	expect.EQ(t, f.Parents(), []int{2, 0})
	expect.EQ(t, f.Members(), []int{2, 0, 1})
	expect.EQ(t, f.Haplotypes(), segment.Haplotypes(0, 1, 2))
	expect.True(t, f.IsParentChild(1, 2))
	expect.True(t, f.IsParentChild(0, 1))
	expect.False(t, f.IsParentChild(0, 2))
	expect.False(t, f.IsParentChild(1, 1))

	blank := NewDense(4, 6)
	blank.Set(3, 5, segment.Paternal, 1)
	f = Family{Father: 0, Mother: 1, Children: []int{2, 3}}
	expect.EQ(t, f.FilledMembers(blank), []int{3})
	expect.EQ(t, Family{Father: 2, Mother: 0, Children: []int{1}}.FilledMembers(g), []int{2, 0, 1})
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
