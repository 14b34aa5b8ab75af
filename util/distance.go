package util

import (
	"github.com/grailbio/base/log"
)

// Hamming returns the number of positions at which a and b differ.
//
// REQUIRES: len(a) == len(b).
func Hamming(a, b []byte) (distance int) {
	if len(a) != len(b) {
		log.Panicf("util.Hamming: length mismatch %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			distance++
		}
	}
	return distance
}

// NextMismatch returns the smallest index i >= pos at which a and b differ,
// or len(a) if they agree on all of a[pos:].
//
// REQUIRES: len(a) == len(b), 0 <= pos <= len(a).
func NextMismatch(a, b []byte, pos int) int {
	for ; pos < len(a); pos++ {
		if a[pos] != b[pos] {
			break
		}
	}
	return pos
}

// PrevMismatch returns the largest index i < pos at which a and b differ, or
// -1 if they agree on all of a[:pos].
//
// REQUIRES: len(a) == len(b), 0 <= pos <= len(a).
func PrevMismatch(a, b []byte, pos int) int {
	for pos--; pos >= 0; pos-- {
		if a[pos] != b[pos] {
			break
		}
	}
	return pos
}

// NextMatch returns the smallest index i >= pos at which a and b agree, or
// len(a) if they differ on all of a[pos:].
//
// REQUIRES: len(a) == len(b), 0 <= pos <= len(a).
func NextMatch(a, b []byte, pos int) int {
	for ; pos < len(a); pos++ {
		if a[pos] == b[pos] {
			break
		}
	}
	return pos
}
