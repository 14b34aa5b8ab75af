package germline

import (
	"context"
	"fmt"
	"runtime"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/sync/multierror"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/ibd/haplotype"
	"github.com/grailbio/ibd/interval"
	"github.com/grailbio/ibd/segment"
)

// Computer finds IBD segments in haplotype matrices.  It is immutable and
// safe for concurrent use.
type Computer struct {
	opts Opts
}

// NewComputer validates opts and returns a Computer.
func NewComputer(opts Opts) (*Computer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Classifier == nil {
		opts.Classifier = DefaultClassifier
	}
	if opts.PairFilter == nil {
		opts.PairFilter = AllPairs
	}
	if opts.Parallelism <= 0 {
		opts.Parallelism = runtime.NumCPU()
	}
	return &Computer{opts: opts}, nil
}

// Opts returns the effective options.
func (c *Computer) Opts() Opts { return c.opts }

// PairError reports the failure of one pair scan.
type PairError struct {
	A, B segment.HapID
	Err  error
}

// Error implements error.
func (e PairError) Error() string {
	return fmt.Sprintf("germline: pair %v-%v: %v", e.A, e.B, e.Err)
}

// Result is the outcome of Computer.Segments.
type Result struct {
	// Set holds the segments of every pair that was scanned successfully.
	Set *segment.Set
	// Failures lists the pairs whose scan failed, in pair order.
	Failures []PairError
}

// Err combines Failures into one error, or returns nil if there are none.
func (r Result) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := multierror.NewMultiError(len(r.Failures))
	for _, f := range r.Failures {
		errs.Add(f)
	}
	return errs.Err()
}

type hapPair struct{ a, b int }

// Segments scans every haplotype pair of m that passes Opts.PairFilter.  Pairs
// are enumerated in canonical haplotype order and split into
// Opts.Parallelism contiguous shards.
//
// A failing pair is recorded in Result.Failures and does not stop the other
// pairs.  The returned error is non-nil only if ctx is done.
func (c *Computer) Segments(ctx context.Context, m *haplotype.Matrix) (Result, error) {
	haps := m.Haps()
	var pairs []hapPair
	for a := range haps {
		for b := a + 1; b < len(haps); b++ {
			if c.opts.PairFilter(haps[a], haps[b]) {
				pairs = append(pairs, hapPair{a, b})
			}
		}
	}
	words := make([]hapWords, len(haps))
	for i := range haps {
		words[i] = newHapWords(m.Row(i), c.opts.SeedWindowWidth)
	}

	parallelism := c.opts.Parallelism
	if parallelism > len(pairs) {
		parallelism = len(pairs)
	}
	type shardResult struct {
		segs     []segment.Segment
		failures []PairError
	}
	shards := make([]shardResult, parallelism)
	nPair := len(pairs)
	err := traverse.Each(parallelism, func(jobIdx int) error {
		startIdx := (jobIdx * nPair) / parallelism
		endIdx := ((jobIdx + 1) * nPair) / parallelism
		res := &shards[jobIdx]
		for _, p := range pairs[startIdx:endIdx] {
			if err := ctx.Err(); err != nil {
				return err
			}
			segs, err := c.pairSegments(m, words[p.a], words[p.b], haps[p.a], haps[p.b])
			if err != nil {
				res.failures = append(res.failures, PairError{haps[p.a], haps[p.b], err})
				continue
			}
			res.segs = append(res.segs, segs...)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	result := Result{Set: segment.NewSet(segment.WithInterpolation(c.opts.Interpolation))}
	for _, res := range shards {
		for _, seg := range res.segs {
			result.Set.Insert(seg)
		}
		result.Failures = append(result.Failures, res.failures...)
	}
	log.Debug.Printf("germline: %d haplotypes, %d pairs in %d shards -> %d segments, %d failures",
		len(haps), nPair, parallelism, result.Set.Len(), len(result.Failures))
	return result, nil
}

// PairSegments scans the single pair (a, b) of m.
func (c *Computer) PairSegments(m *haplotype.Matrix, a, b segment.HapID) ([]segment.Segment, error) {
	ra, rb := m.RowOf(a), m.RowOf(b)
	if ra < 0 || rb < 0 {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("germline: pair %v-%v not in matrix", a, b))
	}
	if a == b {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("germline: %v paired with itself", a))
	}
	w := c.opts.SeedWindowWidth
	return c.pairSegments(m, newHapWords(m.Row(ra), w), newHapWords(m.Row(rb), w), a, b)
}

func (c *Computer) pairSegments(m *haplotype.Matrix, wa, wb hapWords, a, b segment.HapID) ([]segment.Segment, error) {
	var segs []segment.Segment
	for _, r := range scanPair(wa, wb, c.opts.SeedWindowWidth, c.opts.MismatchTolerance) {
		seg, ok, err := c.newSegment(m, r, a, b)
		if err != nil {
			return nil, err
		}
		if ok {
			segs = append(segs, seg)
		}
	}
	return segs, nil
}

// newSegment converts run r to a segment in source SNP coordinates.  It
// returns false if the run is below a length threshold, and an error if the
// SNP map gives the run a decreasing physical or genetic extent.
//
// The physical and genetic extent of [start, end) is measured up to SNP end,
// or the last SNP when end is past it, so touching segments share their
// boundary coordinate.
func (c *Computer) newSegment(m *haplotype.Matrix, r run, a, b segment.HapID) (segment.Segment, bool, error) {
	if r.end-r.start < c.opts.MinSNPs {
		return segment.Segment{}, false, nil
	}
	cols := m.Columns()
	snps := m.SNPs()
	start := cols[r.start]
	end := cols[r.end-1] + 1
	last := end
	if last > snps.Len()-1 {
		last = snps.Len() - 1
	}
	seg, err := segment.New(
		interval.Range{Start: interval.PosType(start), End: interval.PosType(end)},
		segment.BPRange{Start: snps.BP[start], End: snps.BP[last]},
		snps.CM[last]-snps.CM[start],
		c.opts.Classifier(r.mismatches, c.opts.MismatchTolerance),
		a, b)
	if err != nil {
		return segment.Segment{}, false, err
	}
	if seg.BP().Span() < c.opts.MinLengthBP || seg.GeneticLength() < c.opts.MinLengthCM {
		return segment.Segment{}, false, nil
	}
	return seg, true, nil
}
