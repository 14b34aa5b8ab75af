// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package segmentio reads and writes segment sets as TSV.
//
// Each row is one segment tuple, with the header
//
//   Start  End  StartBP  EndBP  Length  Confidence  Samples
//
// Samples lists the haplotypes as "sample.side", comma-separated, in canonical
// order.  Lengths are written with the shortest representation that parses
// back to the same float64, so Read(Write(s)) reproduces s bit for bit.
//
// WriteFile and ReadFile go through github.com/grailbio/base/file and compress
// paths ending in ".gz" (gzip) or ".sz" (snappy framing format).
package segmentio
