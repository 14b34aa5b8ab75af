package germline

import (
	"bytes"
	"sort"

	"github.com/dgryski/go-farm"
	"github.com/grailbio/ibd/haplotype"
	"github.com/grailbio/ibd/util"
)

// hapWords holds one matrix row as bytes, and the hash of each of its words.
// Word k covers columns [k*w, min((k+1)*w, n)).
type hapWords struct {
	alleles []byte
	hashes  []uint64
}

func newHapWords(row []haplotype.Allele, w int) hapWords {
	alleles := make([]byte, len(row))
	for i, a := range row {
		alleles[i] = byte(a)
	}
	nWord := (len(alleles) + w - 1) / w
	hashes := make([]uint64, nWord)
	for k := range hashes {
		hashes[k] = farm.Hash64(alleles[k*w : wordEnd(k, w, len(alleles))])
	}
	return hapWords{alleles: alleles, hashes: hashes}
}

func wordEnd(k, w, n int) int {
	if end := (k + 1) * w; end < n {
		return end
	}
	return n
}

// run is a matching run [start, end) in matrix columns.
type run struct {
	start, end int
	mismatches int
}

// scanPair returns the maximal matching runs of a and b, in increasing order.
// Each run holds at most tol mismatches, and runs do not overlap.
func scanPair(a, b hapWords, w, tol int) []run {
	n := len(a.alleles)
	var runs []run
	floor := 0
	for k := 0; k < len(a.hashes); {
		start, end := k*w, wordEnd(k, w, n)
		if a.hashes[k] != b.hashes[k] || !bytes.Equal(a.alleles[start:end], b.alleles[start:end]) {
			k++
			continue
		}
		start, end = extend(a.alleles, b.alleles, start, end, floor, tol)
		runs = append(runs, run{start: start, end: end})
		if end == n {
			break
		}
		floor = end
		// Any word that starts before end either lies inside the run or contains
		// the mismatch that stopped it.
		if next := end / w; next > k {
			k = next
		} else {
			k++
		}
	}
	runs = fuseRuns(runs, a.alleles, b.alleles, tol)
	for i := range runs {
		r := &runs[i]
		r.mismatches = util.Hamming(a.alleles[r.start:r.end], b.alleles[r.start:r.end])
	}
	return runs
}

// extend grows the seed [start, end), on which a and b agree, first to the
// right and then to the left, never below floor.  Both directions share a
// budget of tol mismatches.  The result never starts or ends on a mismatch.
func extend(a, b []byte, start, end, floor, tol int) (int, int) {
	n := len(a)
	used := 0

	for pos := end; ; {
		mm := util.NextMismatch(a, b, pos)
		if mm > pos {
			end = mm
		}
		if mm == n || used == tol {
			break
		}
		used++
		pos = mm + 1
	}
	// Mismatches past the final match were not kept.
	used = util.Hamming(a[start:end], b[start:end])

	for pos := start; ; {
		mm := util.PrevMismatch(a, b, pos)
		stop := mm < floor
		if stop {
			// a and b agree on [floor, pos).
			mm = floor - 1
		}
		if mm+1 < pos {
			start = mm + 1
		}
		if stop || used >= tol {
			break
		}
		used++
		pos = mm
	}
	return start, end
}

// fuseRuns sorts runs by start and merges the ones that overlap or touch, as
// long as the merged run holds at most tol mismatches.  A run that cannot be
// merged is clipped to start after its predecessor, past any mismatch, and is
// dropped if nothing is left.
func fuseRuns(runs []run, a, b []byte, tol int) []run {
	if len(runs) < 2 {
		return runs
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].start < runs[j].start })
	fused := runs[:1]
	for _, r := range runs[1:] {
		last := &fused[len(fused)-1]
		if r.start > last.end {
			fused = append(fused, r)
			continue
		}
		if r.end <= last.end {
			continue
		}
		if util.Hamming(a[last.start:r.end], b[last.start:r.end]) <= tol {
			last.end = r.end
			continue
		}
		r.start = util.NextMatch(a, b, last.end)
		if r.start < r.end {
			fused = append(fused, r)
		}
	}
	return fused
}
