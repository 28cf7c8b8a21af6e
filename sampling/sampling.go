// Copyright 2026 The Hypotest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sampling generates reproducible numeric samples and
// simulates sampling distributions of the mean.
//
// All generators take an explicit seed so experiments can be rerun
// with identical data.
package sampling

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Normal draws n values from a Gaussian distribution with the given
// mean and standard deviation.
func Normal(mean, sigma float64, n int, seed uint64) []float64 {
	d := distuv.Normal{Mu: mean, Sigma: sigma, Src: rand.NewSource(seed)}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = d.Rand()
	}
	return xs
}

// Die returns one fair six-sided die roll.
func Die(rng *rand.Rand) float64 {
	return float64(rng.Intn(6) + 1)
}

// DiceRolls draws n uniform integers in [1,6].
func DiceRolls(n int, seed uint64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = Die(rng)
	}
	return xs
}
