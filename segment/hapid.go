package segment

import (
	"encoding/binary"
	"fmt"
	"sort"
)

// Side identifies one of the two haplotypes of a sample.
type Side uint8

const (
	// Maternal is haplotype side 0.
	Maternal Side = iota
	// Paternal is haplotype side 1.
	Paternal
)

// HapID identifies one haplotype: a sample and a side.
type HapID struct {
	Sample int
	Side   Side
}

// Less orders haplotypes by sample, then side.
func (h HapID) Less(o HapID) bool {
	if h.Sample != o.Sample {
		return h.Sample < o.Sample
	}
	return h.Side < o.Side
}

// Compare returns (negative int, 0, positive int) if (h<o, h=o, h>o)
// respectively.
func (h HapID) Compare(o HapID) int {
	switch {
	case h.Less(o):
		return -1
	case o.Less(h):
		return 1
	}
	return 0
}

// String returns "(sample,side)".
func (h HapID) String() string {
	return fmt.Sprintf("(%d,%d)", h.Sample, h.Side)
}

// Haplotypes returns both haplotypes of each sample, in canonical order.
func Haplotypes(samples ...int) []HapID {
	haps := make([]HapID, 0, 2*len(samples))
	for _, s := range samples {
		haps = append(haps, HapID{s, Maternal}, HapID{s, Paternal})
	}
	return canonicalHaps(haps)
}

// canonicalHaps sorts haps in place and removes duplicates.
func canonicalHaps(haps []HapID) []HapID {
	sort.Slice(haps, func(i, j int) bool { return haps[i].Less(haps[j]) })
	n := 0
	for i, h := range haps {
		if i > 0 && h == haps[n-1] {
			continue
		}
		haps[n] = h
		n++
	}
	return haps[:n]
}

// compareHaps orders canonical haplotype lists lexicographically.
func compareHaps(a, b []HapID) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}

func equalHaps(a, b []HapID) bool {
	return len(a) == len(b) && compareHaps(a, b) == 0
}

// appendHapBytes appends a fixed-width encoding of canonical haps to buf.
// Used as hash input for membership keys.
func appendHapBytes(buf []byte, haps []HapID) []byte {
	var tmp [9]byte
	for _, h := range haps {
		binary.LittleEndian.PutUint64(tmp[:8], uint64(h.Sample))
		tmp[8] = byte(h.Side)
		buf = append(buf, tmp[:]...)
	}
	return buf
}
