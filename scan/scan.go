// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan walks a sequence store in the three forward reading
// frames, emitting stop-codon terminated ORFs and routing them to
// model training by length.
package scan

import (
	"orfmark/annot"
	"orfmark/orf"
	"orfmark/seqstore"
)

// Config carries the length thresholds that route ORFs to model
// training. ORFs strictly longer than TrustedMin train the trusted
// model; ORFs strictly shorter than BackgroundMax train the background
// model; lengths between the two are scored but never trained on.
type Config struct {
	TrustedMin    int
	BackgroundMax int
}

// DefaultConfig is the conventional threshold pair.
var DefaultConfig = Config{TrustedMin: 1400, BackgroundMax: 50}

// Result is the complete output of a scan.
type Result struct {
	All        []*orf.ORF
	ByLength   *orf.LengthGroups
	Trusted    []*orf.ORF
	Background []*orf.ORF
}

// Scan emits every stop-codon terminated ORF over the three reading
// frames of s. Within a frame ORFs are exhaustive and non-overlapping:
// each consumed stop codon starts a fresh segment immediately after
// it. The index ix may be nil when no ground truth is available.
func Scan(s *seqstore.Store, ix *annot.Index, cfg Config) *Result {
	res := &Result{ByLength: orf.NewLengthGroups()}
	starts := [3]int{0, 1, 2}
	n := s.Len()
	for i := 0; i < n; i += 3 {
		for f := 0; f < 3; f++ {
			p := i + f
			if p+3 > n {
				continue
			}
			if !isStop(s, p) {
				continue
			}
			o := &orf.ORF{Start: starts[f] + 1, End: p + 3}
			o.GroundTruth = ix.IsStopEnd(o.End)
			starts[f] = p + 3
			res.add(o, cfg)
		}
	}
	return res
}

func (r *Result) add(o *orf.ORF, cfg Config) {
	r.All = append(r.All, o)
	r.ByLength.Add(o)
	switch {
	case o.Len() > cfg.TrustedMin:
		r.Trusted = append(r.Trusted, o)
	case o.Len() < cfg.BackgroundMax:
		r.Background = append(r.Background, o)
	}
}

// isStop reports whether the codon at 0-based position p is one of
// TAA, TAG or TGA.
func isStop(s *seqstore.Store, p int) bool {
	if s.Base(p) != 'T' {
		return false
	}
	switch s.Base(p + 1) {
	case 'A':
		return s.Base(p+2) == 'A' || s.Base(p+2) == 'G'
	case 'G':
		return s.Base(p+2) == 'A'
	}
	return false
}
