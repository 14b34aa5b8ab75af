package haplotype

import (
	"github.com/grailbio/base/log"
	"github.com/grailbio/ibd/segment"
)

// Allele is one allele call.  Any nonzero value is a called allele; only
// equality between calls is meaningful.
type Allele byte

// Missing marks an uncalled allele.
const Missing Allele = 0

// Genotypes is the phased genotype source a Matrix is built from.
type Genotypes interface {
	// NumSamples returns the number of samples; sample ids are [0, NumSamples).
	NumSamples() int
	// NumSNPs returns the number of SNPs; SNP indices are [0, NumSNPs).
	NumSNPs() int
	// Allele returns the call of sample's side haplotype at snp.
	Allele(sample, snp int, side segment.Side) Allele
}

// Dense is an in-memory Genotypes.  A new Dense has every allele Missing.
type Dense struct {
	numSNPs int
	// calls[sample*2+side] is the haplotype row.
	calls [][]Allele
}

// NewDense creates a Dense with all alleles Missing.
func NewDense(numSamples, numSNPs int) *Dense {
	if numSamples < 0 || numSNPs < 0 {
		log.Panicf("haplotype.NewDense: invalid dimensions %d x %d", numSamples, numSNPs)
	}
	d := &Dense{numSNPs: numSNPs, calls: make([][]Allele, 2*numSamples)}
	for i := range d.calls {
		d.calls[i] = make([]Allele, numSNPs)
	}
	return d
}

// NumSamples implements Genotypes.
func (d *Dense) NumSamples() int { return len(d.calls) / 2 }

// NumSNPs implements Genotypes.
func (d *Dense) NumSNPs() int { return d.numSNPs }

// Allele implements Genotypes.
func (d *Dense) Allele(sample, snp int, side segment.Side) Allele {
	return d.calls[2*sample+int(side)][snp]
}

// Set sets one allele call.
func (d *Dense) Set(sample, snp int, side segment.Side, a Allele) {
	d.calls[2*sample+int(side)][snp] = a
}

// SetHaplotype copies alleles into the start of sample's side haplotype.
//
// REQUIRES: len(alleles) <= NumSNPs().
func (d *Dense) SetHaplotype(sample int, side segment.Side, alleles []Allele) {
	row := d.calls[2*sample+int(side)]
	if len(alleles) > len(row) {
		log.Panicf("haplotype.Dense.SetHaplotype: %d alleles for %d SNPs", len(alleles), len(row))
	}
	copy(row, alleles)
}
