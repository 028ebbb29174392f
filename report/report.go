// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report aggregates scored ORFs into the per-length summary
// table and run-level totals.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat"

	"orfmark/annot"
	"orfmark/orf"
	"orfmark/scan"
)

// Predicted reports whether a scored ORF is classified as coding.
// Only strictly positive log-likelihood ratios qualify.
func Predicted(o *orf.ORF) bool { return o.Scored && o.Score > 0 }

// Row is the aggregate over all ORFs of one length.
type Row struct {
	Length      int
	Count       int
	GroundTruth int
	Predicted   int
	Both        int
	MeanScore   float64
}

// Totals are the run-level aggregates.
type Totals struct {
	Annotations int
	ORFs        int

	// FalseNegatives counts ground-truth ORFs the model scored at
	// or below zero.
	FalseNegatives int

	// CDSOverlaps counts ORFs overlapping any annotated CDS, a
	// looser diagnostic than the exact stop-end match.
	CDSOverlaps int

	MeanScore   float64
	StdDevScore float64
}

// Summary is the aggregated result of one run.
type Summary struct {
	Rows   []Row
	Totals Totals
}

// Summarize groups the scanned ORFs by length, ascending, and computes
// the per-length and run-level aggregates. ix may be nil.
func Summarize(res *scan.Result, ix *annot.Index) *Summary {
	sum := &Summary{}
	var all []float64
	for _, l := range res.ByLength.Lengths() {
		row := Row{Length: l}
		var scores []float64
		for _, o := range res.ByLength.Group(l) {
			row.Count++
			scores = append(scores, o.Score)
			pred := Predicted(o)
			if o.GroundTruth {
				row.GroundTruth++
			}
			if pred {
				row.Predicted++
			}
			if o.GroundTruth && pred {
				row.Both++
			}
		}
		row.MeanScore = stat.Mean(scores, nil)
		all = append(all, scores...)
		sum.Rows = append(sum.Rows, row)
	}

	t := &sum.Totals
	t.Annotations = ix.Len()
	t.ORFs = len(res.All)
	for _, o := range res.All {
		if o.GroundTruth && !Predicted(o) {
			t.FalseNegatives++
		}
		if ix.OverlapsCDS(o.Start, o.End) {
			t.CDSOverlaps++
		}
	}
	if len(all) > 0 {
		t.MeanScore = stat.Mean(all, nil)
		t.StdDevScore = stat.StdDev(all, nil)
	}
	return sum
}

// Write renders the summary as a tab-aligned table followed by the run
// totals.
func Write(w io.Writer, sum *Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "length\torfs\tannotated\tpredicted\tboth\tmean score")
	for _, r := range sum.Rows {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%.4f\n",
			r.Length, r.Count, r.GroundTruth, r.Predicted, r.Both, r.MeanScore)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	t := sum.Totals
	_, err := fmt.Fprintf(w, "\nannotations loaded: %d\norfs found: %d\nfalse negatives: %d\norfs overlapping annotated cds: %d\nscore mean: %.4f stddev: %.4f\n",
		t.Annotations, t.ORFs, t.FalseNegatives, t.CDSOverlaps, t.MeanScore, t.StdDevScore)
	return err
}
