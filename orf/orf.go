// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orf defines the data model shared by the scanner, the Markov
// models and the reporter.
package orf

import "sort"

// An ORF is one reading-frame segment terminated by a stop codon.
// Start and End are 1-based inclusive sequence positions, End being
// the last base of the stop codon. The length is always a positive
// multiple of three.
type ORF struct {
	Start, End int

	// GroundTruth is true when End matches the end coordinate of
	// an annotated CDS.
	GroundTruth bool

	// Score is the log-likelihood ratio assigned after model
	// training. It is meaningless until Scored is true.
	Score  float64
	Scored bool
}

// Len returns the ORF length in bases, stop codon included.
func (o *ORF) Len() int { return o.End - o.Start + 1 }

// SetScore assigns the ORF's log-likelihood ratio. An ORF is scored
// exactly once.
func (o *ORF) SetScore(s float64) {
	if o.Scored {
		panic("orf: score already set")
	}
	o.Score = s
	o.Scored = true
}

// LengthGroups collects ORFs keyed by their length, preserving
// insertion order within each group.
type LengthGroups struct {
	groups map[int][]*ORF
}

func NewLengthGroups() *LengthGroups {
	return &LengthGroups{groups: make(map[int][]*ORF)}
}

func (g *LengthGroups) Add(o *ORF) {
	g.groups[o.Len()] = append(g.groups[o.Len()], o)
}

// Group returns the ORFs of the given length in insertion order.
func (g *LengthGroups) Group(length int) []*ORF { return g.groups[length] }

// Lengths returns the distinct ORF lengths in ascending order.
func (g *LengthGroups) Lengths() []int {
	ls := make([]int, 0, len(g.groups))
	for l := range g.groups {
		ls = append(ls, l)
	}
	sort.Ints(ls)
	return ls
}
