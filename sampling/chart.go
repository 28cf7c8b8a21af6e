// Copyright 2026 The Hypotest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampling

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WriteHistogram renders a histogram of values with the given number
// of bins and writes it to path as a PNG.
func WriteHistogram(values []float64, bins int, title, path string) error {
	if len(values) == 0 {
		return errors.New("no values to plot")
	}

	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = "sample mean"
	pl.Y.Label.Text = "count"

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return err
	}
	pl.Add(h)

	return pl.Save(6*vg.Inch, 4*vg.Inch, path)
}
