// Copyright 2026 The Hypotest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hypmath

import "github.com/aclements/go-moremath/stats"

// StudentTTest compares two independent samples using Student's
// two-sample t-test, which assumes the samples have equal variance.
// The alternative hypothesis is two-sided.
func StudentTTest(s1, s2 *Sample) Result {
	res, err := stats.TwoSampleTTest(s1.sample(), s2.sample(), stats.LocationDiffers)
	return ttestResult(res, err, s1, s2)
}

// WelchTTest compares two independent samples using Welch's t-test,
// which does not assume the samples have equal variance. The
// alternative hypothesis is two-sided.
func WelchTTest(s1, s2 *Sample) Result {
	res, err := stats.TwoSampleWelchTTest(s1.sample(), s2.sample(), stats.LocationDiffers)
	return ttestResult(res, err, s1, s2)
}

// PairedTTest compares two dependent samples using the paired t-test.
// The samples must observe the same subjects in the same order; in
// particular they must have equal lengths. The alternative hypothesis
// is two-sided.
func PairedTTest(s1, s2 *Sample) Result {
	res, err := stats.PairedTTest(s1.Values, s2.Values, 0, stats.LocationDiffers)
	return ttestResult(res, err, s1, s2)
}

func ttestResult(res *stats.TTestResult, err error, s1, s2 *Sample) Result {
	if err != nil {
		// The test failed. Report as if there's no significant
		// difference, along with the error.
		return Result{
			P:        1,
			N:        []int{len(s1.Values), len(s2.Values)},
			Alpha:    s1.Thresholds.Alpha,
			Warnings: []error{err},
		}
	}
	return Result{
		Stat:  res.T,
		P:     res.P,
		Df:    res.DoF,
		N:     []int{res.N1, res.N2},
		Alpha: s1.Thresholds.Alpha,
	}
}
