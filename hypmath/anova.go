// Copyright 2026 The Hypotest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hypmath

import (
	"errors"

	"gonum.org/v1/gonum/stat/distuv"
)

var errANOVADegenerate = errors.New("ANOVA requires at least two groups with two total degrees of freedom")
var errANOVAZeroVariance = errors.New("all values within each group are equal")

// OneWayANOVA compares the means of two or more independent samples
// using the one-way analysis of variance F-test.
//
// The F statistic is the ratio of the between-group to the
// within-group mean square; its p-value comes from the F distribution
// with k-1 and N-k degrees of freedom, where k is the number of
// groups and N the total number of observations.
//
// Repeated-measures (within-subjects) designs are not supported.
func OneWayANOVA(groups ...*Sample) Result {
	if len(groups) == 0 {
		return Result{P: 1, Alpha: DefaultThresholds.Alpha, Warnings: []error{errANOVADegenerate}}
	}

	n := make([]int, len(groups))
	total := 0
	for i, g := range groups {
		n[i] = len(g.Values)
		total += n[i]
	}
	res := Result{N: n, Alpha: groups[0].Thresholds.Alpha}

	k := len(groups)
	if k < 2 || total-k < 1 {
		// The test is undefined. Report as if there's no
		// significant difference, along with the cause.
		res.P = 1
		res.Warnings = []error{errANOVADegenerate}
		return res
	}

	var grand float64
	for _, g := range groups {
		for _, v := range g.Values {
			grand += v
		}
	}
	grand /= float64(total)

	var ssb, ssw float64
	for _, g := range groups {
		mean := g.sample().Mean()
		d := mean - grand
		ssb += float64(len(g.Values)) * d * d
		for _, v := range g.Values {
			ssw += (v - mean) * (v - mean)
		}
	}

	if ssw == 0 {
		res.P = 1
		res.Warnings = []error{errANOVAZeroVariance}
		return res
	}

	df1, df2 := float64(k-1), float64(total-k)
	f := (ssb / df1) / (ssw / df2)
	res.Stat = f
	res.Df = df1
	res.P = distuv.F{D1: df1, D2: df2}.Survival(f)
	return res
}
