// Copyright 2026 The Hypotest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampling

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat"
)

// SampleMeans simulates the sampling distribution of the mean. It
// draws numSamples samples of sampleSize values each from gen and
// returns the mean of every sample.
//
// By the central limit theorem the returned means approximate a
// Gaussian distribution as sampleSize grows, regardless of the shape
// of gen's distribution.
func SampleMeans(gen func(*rand.Rand) float64, sampleSize, numSamples int, seed uint64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	means := make([]float64, numSamples)
	buf := make([]float64, sampleSize)
	for i := range means {
		for j := range buf {
			buf[j] = gen(rng)
		}
		means[i] = stat.Mean(buf, nil)
	}
	return means
}
