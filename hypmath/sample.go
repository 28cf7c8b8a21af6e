// Copyright 2026 The Hypotest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hypmath provides tools for testing whether numeric samples
// come from the same distribution.
//
// This package does not implement the underlying statistical tests
// itself. The t-test variants come from
// github.com/aclements/go-moremath/stats and the ANOVA p-value from
// the F distribution in gonum. What this package adds is the
// interpretation step: given a test's p-value and a significance
// level, it produces a Verdict on the null hypothesis.
//
// Degenerate inputs (too few observations, zero variance) do not
// produce errors. A failed test is reported as if there were no
// significant difference, with the cause captured in the result's
// Warnings, which should be presented to the user alongside the
// result.
package hypmath

import "github.com/aclements/go-moremath/stats"

// A Sample is an ordered sequence of observations of a single
// population.
type Sample struct {
	// Values are the observed values, in observation order.
	// Paired tests match the i'th value of one sample with the
	// i'th value of another.
	Values []float64

	// Thresholds stores the statistical thresholds used by tests
	// on this sample.
	Thresholds *Thresholds

	// Warnings is a list of warnings about this sample that
	// should be reported to the user.
	Warnings []error
}

// NewSample constructs a Sample from a sequence of observations.
func NewSample(values []float64, t *Thresholds) *Sample {
	return &Sample{values, t, nil}
}

func (s *Sample) sample() stats.Sample {
	return stats.Sample{Xs: s.Values}
}

// A Thresholds configures various thresholds used by statistical tests.
//
// This should be initialized to DefaultThresholds because it may be
// extended with other fields in the future.
type Thresholds struct {
	// Alpha is the significance level at or below which tests
	// reject the null hypothesis that two samples come from the
	// same distribution.
	//
	// This is typically 0.05.
	Alpha float64
}

// DefaultThresholds contains a reasonable set of defaults for Thresholds.
var DefaultThresholds = Thresholds{
	Alpha: 0.05,
}

// A Summary summarizes a Sample.
type Summary struct {
	// Center is the sample mean.
	Center float64

	// Lo and Hi give the bounds of the confidence interval around
	// Center.
	Lo, Hi float64

	// Confidence is the confidence level of the interval given by
	// Lo, Hi, in the range [0,1].
	Confidence float64
}

// Summary returns the sample mean and its confidence interval at the
// given confidence level.
//
// Confidence is given in the range [0,1], e.g., 0.95 for 95%
// confidence.
func (s *Sample) Summary(confidence float64) Summary {
	sample := s.sample()
	mean, lo, hi := sample.MeanCI(confidence)

	return Summary{
		Center:     mean,
		Lo:         lo,
		Hi:         hi,
		Confidence: confidence,
	}
}
