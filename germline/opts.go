package germline

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/ibd/haplotype"
	"github.com/grailbio/ibd/segment"
)

// Opts configures a Computer.
type Opts struct {
	// SeedWindowWidth is the word width, in SNPs.  Two haplotypes whose words at
	// the same offset are equal form a seed.
	SeedWindowWidth int
	// MinSNPs, MinLengthBP and MinLengthCM are minimum run lengths in matrix
	// columns, base pairs and centimorgans.  Shorter runs are dropped.  0
	// disables a threshold.
	MinSNPs     int
	MinLengthBP int64
	MinLengthCM float64
	// MismatchTolerance is the number of mismatching SNPs a run may contain.
	MismatchTolerance int
	// Parallelism is the number of pair shards scanned concurrently.  If <= 0,
	// runtime.NumCPU() is used.
	Parallelism int
	// Interpolation is the length policy of the result set.
	Interpolation segment.Interpolation
	// Classifier assigns the confidence code of a run.  nil means
	// DefaultClassifier.
	Classifier Classifier
	// PairFilter restricts the haplotype pairs scanned.  nil means AllPairs.
	PairFilter PairFilter
}

// DefaultOpts returns the default options: 20-SNP words, exact matching and a
// 1 cM floor.
func DefaultOpts() Opts {
	return Opts{
		SeedWindowWidth:   20,
		MinLengthCM:       1.0,
		MismatchTolerance: 0,
		Interpolation:     segment.ByPhysical,
	}
}

// Validate checks the options.
func (o Opts) Validate() error {
	switch {
	case o.SeedWindowWidth <= 0:
		return errors.E(errors.Invalid, fmt.Sprintf("germline: seed window width %d must be positive", o.SeedWindowWidth))
	case o.MinSNPs < 0:
		return errors.E(errors.Invalid, fmt.Sprintf("germline: negative min SNPs %d", o.MinSNPs))
	case o.MinLengthBP < 0:
		return errors.E(errors.Invalid, fmt.Sprintf("germline: negative min bp length %d", o.MinLengthBP))
	case o.MinLengthCM < 0:
		return errors.E(errors.Invalid, fmt.Sprintf("germline: negative min cM length %g", o.MinLengthCM))
	case o.MismatchTolerance < 0:
		return errors.E(errors.Invalid, fmt.Sprintf("germline: negative mismatch tolerance %d", o.MismatchTolerance))
	case o.Interpolation != segment.ByIndex && o.Interpolation != segment.ByPhysical:
		return errors.E(errors.Invalid, fmt.Sprintf("germline: unknown interpolation %v", o.Interpolation))
	}
	return nil
}

// Classifier maps the number of mismatches in a run, and the configured
// tolerance, to a confidence code.
type Classifier func(mismatches, tolerance int) segment.Confidence

// DefaultClassifier returns 0 for an exact run, 1 for a single mismatch, 2 for
// up to half the tolerance and 3 beyond that.
func DefaultClassifier(mismatches, tolerance int) segment.Confidence {
	switch {
	case mismatches == 0:
		return 0
	case mismatches == 1:
		return 1
	case 2*mismatches <= tolerance:
		return 2
	}
	return 3
}

// PairFilter reports whether the pair (a, b), a < b, is scanned.
type PairFilter func(a, b segment.HapID) bool

// AllPairs scans every pair.
func AllPairs(a, b segment.HapID) bool { return true }

// CrossSamples skips the two haplotypes of one sample.
func CrossSamples(a, b segment.HapID) bool { return a.Sample != b.Sample }

// ParentChild returns a filter that scans only pairs of a parent haplotype and
// a child haplotype of f.
func ParentChild(f haplotype.Family) PairFilter {
	return func(a, b segment.HapID) bool { return f.IsParentChild(a.Sample, b.Sample) }
}
