// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package segment implements identity-by-descent (IBD) segments and sets of
// them.
//
// A Segment is a half-open range of SNP indices annotated with its physical
// (base-pair) bounds, a genetic length, an opaque confidence code, and the set
// of haplotypes declared IBD over the range.  A Set keeps segments ordered by
// range and supports merging segments with equal membership, decomposing the
// covered genome into maximal disjoint pieces with per-piece haplotype groups
// (Set.GroupToDisjoint), and deriving a per-piece coloring of haplotypes
// (Set.ToGroupToColor).
//
// Segments are immutable values.  Sets are built by Insert and never modified
// by the derived views.
package segment
