// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package markov implements the trusted and background nucleotide
// composition models: accumulation of order-1 through order-4
// transition counts over ORF bodies, in-place conversion to natural
// log probabilities, and log-likelihood ratio scoring.
package markov

import (
	"math"

	"orfmark/orf"
	"orfmark/seqstore"
)

const n = 4 // alphabet size

// Model holds one family of transition tables. Tables are accumulated
// as counts by Observe and converted in place by Normalize. Context
// symbols are indexed oldest first, the predicted symbol last.
type Model struct {
	t1 [n]float64
	t2 [n][n]float64
	t3 [n][n][n]float64
	t4 [n][n][n][n]float64

	// seen marks context prefixes with nonzero training mass.
	// Unseen prefixes are never normalized and never read.
	seen1 bool
	seen2 [n]bool
	seen3 [n][n]bool
	seen4 [n][n][n]bool

	normalized bool
}

func NewModel() *Model { return &Model{} }

// Observe accumulates counts from the body of o: every position from
// the ORF start up to, but excluding, the terminal stop codon. A body
// position with k earlier body positions contributes one count to each
// of the order-1 through order-min(k+1, 4) tables, giving overlapping
// windows of width 1 to 4.
func (m *Model) Observe(s *seqstore.Store, o *orf.ORF) {
	if m.normalized {
		panic("markov: observe after normalize")
	}
	lo, hi := o.Start-1, o.End-3 // 0-based body bounds, hi exclusive
	for i := lo; i < hi; i++ {
		c := s.Index(i)
		m.t1[c]++
		if i-1 >= lo {
			m.t2[s.Index(i-1)][c]++
		}
		if i-2 >= lo {
			m.t3[s.Index(i-2)][s.Index(i-1)][c]++
		}
		if i-3 >= lo {
			m.t4[s.Index(i-3)][s.Index(i-2)][s.Index(i-1)][c]++
		}
	}
}

// Normalize converts every accumulated count to ln(count/total), where
// total is the sum over the 4 next-symbol counts of the same context
// prefix. A prefix whose total is zero is left untouched and marked
// unseen. Normalize runs once, after all training and before any
// scoring.
func (m *Model) Normalize() {
	if m.normalized {
		panic("markov: normalized twice")
	}
	m.seen1 = logNormalize(&m.t1)
	for a := 0; a < n; a++ {
		m.seen2[a] = logNormalize(&m.t2[a])
		for b := 0; b < n; b++ {
			m.seen3[a][b] = logNormalize(&m.t3[a][b])
			for c := 0; c < n; c++ {
				m.seen4[a][b][c] = logNormalize(&m.t4[a][b][c])
			}
		}
	}
	m.normalized = true
}

// logNormalize converts one context row of counts in place, reporting
// whether the row had any observations.
func logNormalize(row *[n]float64) bool {
	var sum float64
	for _, v := range row {
		sum += v
	}
	if sum == 0 {
		return false
	}
	for i, v := range row {
		row[i] = math.Log(v / sum)
	}
	return true
}
