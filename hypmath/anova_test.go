// Copyright 2026 The Hypotest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hypmath

import (
	"math"
	"testing"
)

func TestOneWayANOVA(t *testing.T) {
	// Three shifted groups with identical spread. The sums of
	// squares work out to msb=3 and msw=1, so F=3, and for a
	// numerator df of 2 the F survival function has the closed
	// form (1 + 2F/df2)^(-df2/2) = 2^-3.
	g1 := NewSample([]float64{1, 2, 3}, &DefaultThresholds)
	g2 := NewSample([]float64{2, 3, 4}, &DefaultThresholds)
	g3 := NewSample([]float64{3, 4, 5}, &DefaultThresholds)

	checkResult(t, OneWayANOVA(g1, g2, g3),
		Result{Stat: 3, P: 0.125, Df: 2, N: []int{3, 3, 3}, Alpha: 0.05})
}

func TestOneWayANOVATwoGroups(t *testing.T) {
	// With exactly two groups, one-way ANOVA is equivalent to
	// Student's t-test: F = t² and the p-values agree.
	s1 := NewSample([]float64{2, 1, 3, 4}, &DefaultThresholds)
	s2 := NewSample([]float64{6, 5, 7, 9}, &DefaultThresholds)

	tt := StudentTTest(s1, s2)
	av := OneWayANOVA(s1, s2)
	if !aeq(av.Stat, tt.Stat*tt.Stat) {
		t.Errorf("got F=%v, want t²=%v", av.Stat, tt.Stat*tt.Stat)
	}
	if !aeq(av.P, tt.P) {
		t.Errorf("got p=%v, want %v", av.P, tt.P)
	}
	if av.Verdict() != DifferentDistributions {
		t.Errorf("got %v, want %v", av.Verdict(), DifferentDistributions)
	}
}

func TestOneWayANOVASameGroup(t *testing.T) {
	g := NewSample([]float64{1, 2, 3, 4}, &DefaultThresholds)
	r := OneWayANOVA(g, g, g)
	if r.Stat != 0 || !aeq(r.P, 1) {
		t.Errorf("got %#v, want F=0 p=1", r)
	}
	if r.Verdict() != SameDistributions {
		t.Errorf("got %v, want %v", r.Verdict(), SameDistributions)
	}
}

func TestOneWayANOVADegenerate(t *testing.T) {
	g := NewSample([]float64{1, 2, 3}, &DefaultThresholds)

	// A single group is not a comparison.
	r := OneWayANOVA(g)
	if r.P != 1 || len(r.Warnings) != 1 {
		t.Errorf("got %#v, want P=1 with one warning", r)
	}
	if r.Verdict() != SameDistributions {
		t.Errorf("got %v, want %v", r.Verdict(), SameDistributions)
	}

	// No groups at all.
	r = OneWayANOVA()
	if r.P != 1 || len(r.Warnings) != 1 {
		t.Errorf("got %#v, want P=1 with one warning", r)
	}

	// Constant groups have no within-group variance, so the F
	// ratio is undefined.
	c1 := NewSample([]float64{1, 1}, &DefaultThresholds)
	c2 := NewSample([]float64{2, 2}, &DefaultThresholds)
	r = OneWayANOVA(c1, c2)
	if r.P != 1 || len(r.Warnings) != 1 {
		t.Errorf("got %#v, want P=1 with one warning", r)
	}
	if math.IsNaN(r.Stat) {
		t.Errorf("got NaN statistic")
	}
}
