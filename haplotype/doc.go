// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package haplotype provides the read-only allele matrix that IBD detection
// scans: one row per haplotype of the selected samples, one column per SNP
// called on every such haplotype.  It also holds the SNP coordinate map and
// the nuclear family bookkeeping the detectors need.
package haplotype
