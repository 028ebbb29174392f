// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"errors"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"orfmark/scan"
)

// SaveHistogram writes a histogram of all finite ORF scores to path.
// The image format is taken from the file extension.
func SaveHistogram(path string, res *scan.Result) error {
	vals := make(plotter.Values, 0, len(res.All))
	for _, o := range res.All {
		if math.IsInf(o.Score, 0) || math.IsNaN(o.Score) {
			continue
		}
		vals = append(vals, o.Score)
	}
	if len(vals) == 0 {
		return errors.New("report: no finite scores to plot")
	}

	p := plot.New()
	p.Title.Text = "ORF score distribution"
	p.X.Label.Text = "log-likelihood ratio"
	p.Y.Label.Text = "ORFs"

	h, err := plotter.NewHist(vals, 50)
	if err != nil {
		return err
	}
	p.Add(h)

	return p.Save(10*vg.Inch, 4*vg.Inch, path)
}
