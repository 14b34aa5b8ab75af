package haplotype

import (
	"fmt"

	"github.com/grailbio/base/bitset"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/ibd/segment"
)

// IsInsufficientData returns true iff err reports that no SNP is usable for
// the requested haplotypes.
func IsInsufficientData(err error) bool {
	return err != nil && errors.Is(errors.Precondition, err)
}

// Matrix is the allele matrix of a set of haplotypes, restricted to the SNPs
// called on all of them.  Row order is canonical haplotype order; column j is
// SNP Columns()[j] of the source.
//
// A Matrix is immutable and safe for concurrent use.
type Matrix struct {
	haps []segment.HapID
	// cols[j] is the source SNP index of column j; strictly increasing.
	cols []int
	// rows[i][j] is the allele of haps[i] at column j.
	rows [][]Allele
	snps SNPMap
}

// NewMatrix extracts the haplotypes of samples from g.  SNPs with a Missing
// call on any of them are dropped.  snps must describe every SNP of g.
//
// It returns an error satisfying IsInsufficientData if no SNP survives, and
// an errors.Invalid error for malformed arguments.
func NewMatrix(g Genotypes, snps SNPMap, samples []int) (*Matrix, error) {
	numSNPs := g.NumSNPs()
	if snps.Len() != numSNPs {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("haplotype: SNP map has %d entries, genotypes have %d SNPs", snps.Len(), numSNPs))
	}
	if len(samples) == 0 {
		return nil, errors.E(errors.Invalid, "haplotype: no samples requested")
	}
	for _, s := range samples {
		if s < 0 || s >= g.NumSamples() {
			return nil, errors.E(errors.Invalid, fmt.Sprintf("haplotype: sample %d out of range [0,%d)", s, g.NumSamples()))
		}
	}
	haps := segment.Haplotypes(samples...)

	// called has bit i set iff SNP i is called on every haplotype.
	called := make([]uintptr, (numSNPs+bitset.BitsPerWord-1)/bitset.BitsPerWord)
	for i := 0; i < numSNPs; i++ {
		bitset.Set(called, i)
	}
	for _, h := range haps {
		for i := 0; i < numSNPs; i++ {
			if g.Allele(h.Sample, i, h.Side) == Missing {
				bitset.Clear(called, i)
			}
		}
	}
	nNonzeroWord := 0
	for _, w := range called {
		if w != 0 {
			nNonzeroWord++
		}
	}
	if nNonzeroWord == 0 {
		return nil, errors.E(errors.Precondition, fmt.Sprintf("haplotype: no SNP is called on all %d haplotypes of samples %v", len(haps), samples))
	}
	var cols []int
	// The scanner zeroes called as it goes.
	for s, i := bitset.NewNonzeroWordScanner(called, nNonzeroWord); i != -1; i = s.Next() {
		cols = append(cols, i)
	}

	m := &Matrix{
		haps: haps,
		cols: cols,
		rows: make([][]Allele, len(haps)),
		snps: snps,
	}
	for hi, h := range haps {
		row := make([]Allele, len(cols))
		for j, snp := range cols {
			row[j] = g.Allele(h.Sample, snp, h.Side)
		}
		m.rows[hi] = row
	}
	if dropped := numSNPs - len(cols); dropped > 0 {
		log.Debug.Printf("haplotype: %d of %d SNPs dropped for missing calls on samples %v", dropped, numSNPs, samples)
	}
	return m, nil
}

// Haps returns the row haplotypes in canonical order.  The caller must not
// modify the result.
func (m *Matrix) Haps() []segment.HapID { return m.haps }

// NumHaps returns the number of rows.
func (m *Matrix) NumHaps() int { return len(m.haps) }

// NumCols returns the number of usable SNPs.
func (m *Matrix) NumCols() int { return len(m.cols) }

// Columns maps matrix columns to source SNP indices.  The caller must not
// modify the result.
func (m *Matrix) Columns() []int { return m.cols }

// Row returns the alleles of haplotype row i.  The caller must not modify the
// result.
func (m *Matrix) Row(i int) []Allele { return m.rows[i] }

// RowOf returns the row index of h, or -1 if h is not in the matrix.
func (m *Matrix) RowOf(h segment.HapID) int {
	for i, x := range m.haps {
		if x == h {
			return i
		}
	}
	return -1
}

// At returns the allele of row i at column j.
func (m *Matrix) At(i, j int) Allele { return m.rows[i][j] }

// BPAt returns the physical position of column j.
func (m *Matrix) BPAt(j int) int64 { return m.snps.BP[m.cols[j]] }

// CMAt returns the genetic position of column j.
func (m *Matrix) CMAt(j int) float64 { return m.snps.CM[m.cols[j]] }

// SNPs returns the coordinate map of the source SNPs.  Index it with
// Columns() values, not matrix columns.
func (m *Matrix) SNPs() SNPMap { return m.snps }
