package util

import (
	"math/rand"
	"testing"

	"github.com/antzucaro/matchr"
	"github.com/grailbio/testutil/expect"
)

func TestHamming(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"ACGT", "ACGT", 0},
		{"ACGT", "ACGA", 1},
		{"\x01\x02\x01\x01", "\x02\x01\x01\x02", 3},
	}
	for _, test := range tests {
		expect.EQ(t, Hamming([]byte(test.a), []byte(test.b)), test.want, "%q %q", test.a, test.b)
	}
}

// TestHammingRandom compares Hamming against matchr.Hamming on random allele
// strings.
func TestHammingRandom(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for iter := 0; iter < 500; iter++ {
		n := r.Intn(64)
		a, b := make([]byte, n), make([]byte, n)
		for i := range a {
			a[i] = byte('1' + r.Intn(2))
			b[i] = byte('1' + r.Intn(2))
		}
		want, err := matchr.Hamming(string(a), string(b))
		expect.NoError(t, err)
		expect.EQ(t, Hamming(a, b), want, "%s %s", a, b)
	}
}

func TestMismatchScan(t *testing.T) {
	a := []byte("1122121")
	b := []byte("1112122")
	expect.EQ(t, NextMismatch(a, b, 0), 2)
	expect.EQ(t, NextMismatch(a, b, 3), 6)
	expect.EQ(t, NextMismatch(a, b, 7), 7)
	expect.EQ(t, NextMismatch(a[:6], b[:6], 3), 6)

	expect.EQ(t, PrevMismatch(a, b, 7), 6)
	expect.EQ(t, PrevMismatch(a, b, 6), 2)
	expect.EQ(t, PrevMismatch(a, b, 2), -1)
	expect.EQ(t, PrevMismatch(a, b, 0), -1)

	expect.EQ(t, NextMatch(a, b, 0), 0)
	expect.EQ(t, NextMatch(a, b, 2), 3)
	expect.EQ(t, NextMatch(a, b, 6), 7)
	expect.EQ(t, NextMatch(a[:3], b[:3], 2), 3)
}
