// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markov

import (
	"math"
	"strings"
	"testing"

	check "gopkg.in/check.v1"

	"orfmark/orf"
	"orfmark/scan"
	"orfmark/seqstore"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const tol = 1e-9

func mustStore(c *check.C, seq string) *seqstore.Store {
	st, warns, err := seqstore.Read(strings.NewReader(seq))
	c.Assert(err, check.IsNil)
	c.Assert(warns, check.HasLen, 0)
	return st
}

func (m *Model) countTotals() [4]float64 {
	var t [4]float64
	for a := 0; a < n; a++ {
		t[0] += m.t1[a]
		for b := 0; b < n; b++ {
			t[1] += m.t2[a][b]
			for d := 0; d < n; d++ {
				t[2] += m.t3[a][b][d]
				for e := 0; e < n; e++ {
					t[3] += m.t4[a][b][d][e]
				}
			}
		}
	}
	return t
}

func (s *S) TestObserveWindows(c *check.C) {
	// A length-9 ORF has a 6-position body: six order-1 windows,
	// five order-2, four order-3 and three order-4.
	st := mustStore(c, "ACGTCATAA")
	m := NewModel()
	m.Observe(st, &orf.ORF{Start: 1, End: 9})
	c.Check(m.countTotals(), check.Equals, [4]float64{6, 5, 4, 3})
}

func (s *S) TestObserveShortBody(c *check.C) {
	// A length-6 ORF has only a 3-position body: not enough context
	// for any order-4 window.
	st := mustStore(c, "ACGTAA")
	m := NewModel()
	m.Observe(st, &orf.ORF{Start: 1, End: 6})
	c.Check(m.countTotals(), check.Equals, [4]float64{3, 2, 1, 0})
}

func (s *S) TestObserveStopOnlyBody(c *check.C) {
	st := mustStore(c, "TAA")
	m := NewModel()
	m.Observe(st, &orf.ORF{Start: 1, End: 3})
	c.Check(m.countTotals(), check.Equals, [4]float64{})
}

func (s *S) TestNormalizeRows(c *check.C) {
	st := mustStore(c, "ACGTCATTGCAGCATAA")
	m := NewModel()
	m.Observe(st, &orf.ORF{Start: 1, End: 15})
	m.Normalize()

	checkRow := func(row [n]float64, seen bool) {
		if !seen {
			c.Check(row, check.Equals, [n]float64{})
			return
		}
		var sum float64
		for _, v := range row {
			sum += math.Exp(v)
		}
		// Zero counts within a seen row are ln(0) = -Inf and
		// contribute exp(-Inf) = 0.
		if math.Abs(sum-1) > tol {
			c.Errorf("seen row %v sums to %v, want 1", row, sum)
		}
	}

	checkRow(m.t1, m.seen1)
	for a := 0; a < n; a++ {
		checkRow(m.t2[a], m.seen2[a])
		for b := 0; b < n; b++ {
			checkRow(m.t3[a][b], m.seen3[a][b])
			for d := 0; d < n; d++ {
				checkRow(m.t4[a][b][d], m.seen4[a][b][d])
			}
		}
	}
}

func (s *S) TestNormalizeEmptyModel(c *check.C) {
	m := NewModel()
	m.Normalize()
	c.Check(m.seen1, check.Equals, false)
	c.Check(m.countTotals(), check.Equals, [4]float64{})
}

func (s *S) TestScoreKnownValue(c *check.C) {
	// P trained on the body AAC of a single length-6 ORF:
	//   order-1: P(A)=2/3, P(C)=1/3
	//   order-2: P(A|A)=1/2, P(C|A)=1/2
	//   order-3: P(C|AA)=1
	// Scoring the same ORF against an untrained background model
	// gives ln(2/3) + ln(1/2) + ln(1).
	st := mustStore(c, "AACTAA")
	o := &orf.ORF{Start: 1, End: 6}

	p, q := NewModel(), NewModel()
	p.Observe(st, o)
	p.Normalize()
	q.Normalize()

	want := math.Log(2.0/3.0) + math.Log(0.5)
	got := Score(p, q, st, o)
	if math.Abs(got-want) > tol {
		c.Errorf("score = %v, want %v", got, want)
	}
}

func (s *S) TestScoreSelfRatioIsZero(c *check.C) {
	st := mustStore(c, "ACGTCATTGCAGCATAA")
	o := &orf.ORF{Start: 1, End: 15}
	m := NewModel()
	m.Observe(st, o)
	m.Normalize()
	c.Check(Score(m, m, st, o), check.Equals, 0.0)
}

func (s *S) TestUnseenContextContributesNothing(c *check.C) {
	st := mustStore(c, "ACGTCATAA")
	o := &orf.ORF{Start: 1, End: 9}
	p, q := NewModel(), NewModel()
	p.Normalize()
	q.Normalize()
	c.Check(Score(p, q, st, o), check.Equals, 0.0)
}

func (s *S) TestScoreBeforeNormalizePanics(c *check.C) {
	st := mustStore(c, "ACGTAA")
	o := &orf.ORF{Start: 1, End: 6}
	p, q := NewModel(), NewModel()
	c.Check(func() { Score(p, q, st, o) }, check.PanicMatches, "markov: score before normalize")
}

func (s *S) TestPipelineIsIdempotent(c *check.C) {
	// Two full scan/train/score passes over the same input must
	// produce identical ORF sets and identical scores.
	const seq = "ATGAAACCCTGAAAATAGATGCCCTAAACGTCATTGCAGCATAACCGTAGGATTAAC"
	cfg := scan.Config{TrustedMin: 9, BackgroundMax: 7}

	run := func() []float64 {
		st := mustStore(c, seq)
		res := scan.Scan(st, nil, cfg)
		p, q := NewModel(), NewModel()
		for _, o := range res.Trusted {
			p.Observe(st, o)
		}
		for _, o := range res.Background {
			q.Observe(st, o)
		}
		p.Normalize()
		q.Normalize()
		var scores []float64
		for _, o := range res.All {
			scores = append(scores, Score(p, q, st, o))
		}
		c.Assert(len(scores) > 0, check.Equals, true)
		return scores
	}

	c.Check(run(), check.DeepEquals, run())
}
