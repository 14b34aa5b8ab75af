package haplotype

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// SNPMap holds the physical (bp) and genetic (cM) coordinates of each SNP.
// Both are non-decreasing along the SNP axis.
type SNPMap struct {
	BP []int64
	CM []float64
}

// BPPerCM is the recombination rate UniformSNPMap assumes: 1 cM per Mb.
const BPPerCM = 1e6

// NewSNPMap validates bp and cm and returns the map.
func NewSNPMap(bp []int64, cm []float64) (SNPMap, error) {
	if len(bp) != len(cm) {
		return SNPMap{}, errors.E(errors.Invalid, fmt.Sprintf("haplotype: %d bp positions vs %d cM positions", len(bp), len(cm)))
	}
	for i := 1; i < len(bp); i++ {
		if bp[i] < bp[i-1] {
			return SNPMap{}, errors.E(errors.Invalid, fmt.Sprintf("haplotype: bp position of SNP %d (%d) precedes SNP %d (%d)", i, bp[i], i-1, bp[i-1]))
		}
		if cm[i] < cm[i-1] {
			return SNPMap{}, errors.E(errors.Invalid, fmt.Sprintf("haplotype: cM position of SNP %d (%g) precedes SNP %d (%g)", i, cm[i], i-1, cm[i-1]))
		}
	}
	return SNPMap{BP: bp, CM: cm}, nil
}

// UniformSNPMap derives genetic positions from physical ones at BPPerCM.
func UniformSNPMap(bp []int64) (SNPMap, error) {
	cm := make([]float64, len(bp))
	for i, p := range bp {
		cm[i] = float64(p) / BPPerCM
	}
	return NewSNPMap(bp, cm)
}

// Len returns the number of SNPs.
func (m SNPMap) Len() int { return len(m.BP) }
