// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markov

import (
	"orfmark/orf"
	"orfmark/seqstore"
)

// Score computes the log-likelihood ratio of o's body under the
// trusted model p against the background model q: the sum of p's log
// terms minus the sum of q's. The table order at each body position
// mirrors the windows used in training: a position with k earlier body
// positions is read from the order-min(k+1, 4) table. A term whose
// context prefix was never observed by its model is excluded from that
// model's sum.
func Score(p, q *Model, s *seqstore.Store, o *orf.ORF) float64 {
	var sum float64
	lo, hi := o.Start-1, o.End-3
	for i := lo; i < hi; i++ {
		sum += p.term(s, i, i-lo) - q.term(s, i, i-lo)
	}
	return sum
}

// term returns the model's log-probability for the symbol at 0-based
// sequence index i given k preceding body positions, or 0 when the
// context is unseen.
func (m *Model) term(s *seqstore.Store, i, k int) float64 {
	if !m.normalized {
		panic("markov: score before normalize")
	}
	c := s.Index(i)
	switch k {
	case 0:
		if !m.seen1 {
			return 0
		}
		return m.t1[c]
	case 1:
		a := s.Index(i - 1)
		if !m.seen2[a] {
			return 0
		}
		return m.t2[a][c]
	case 2:
		a, b := s.Index(i-2), s.Index(i-1)
		if !m.seen3[a][b] {
			return 0
		}
		return m.t3[a][b][c]
	default:
		a, b, d := s.Index(i-3), s.Index(i-2), s.Index(i-1)
		if !m.seen4[a][b][d] {
			return 0
		}
		return m.t4[a][b][d][c]
	}
}
