// Package germline detects identity-by-descent segments between haplotype
// pairs in the manner of GERMLINE: each haplotype is cut into fixed-width
// words, equal words at the same offset seed a match, and seeds are extended
// over the SNP axis while the two haplotypes agree (up to a configured number
// of mismatches).  Runs that clear the length thresholds are emitted as
// two-member segment.Segments.
package germline
