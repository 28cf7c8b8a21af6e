// Copyright 2026 The Hypotest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hypmath

import "fmt"

// A Verdict is the conclusion of a significance test about the null
// hypothesis that the compared samples come from distributions with
// equal means.
type Verdict int

const (
	// SameDistributions means the test failed to reject the null
	// hypothesis.
	SameDistributions Verdict = iota

	// DifferentDistributions means the test rejected the null
	// hypothesis.
	DifferentDistributions
)

func (v Verdict) String() string {
	if v == DifferentDistributions {
		return "different distributions"
	}
	return "same distributions"
}

// Interpret decides the null hypothesis from a p-value and a
// significance level. It rejects the null hypothesis when p <= alpha;
// in particular, p equal to alpha rejects.
//
// Neither argument is validated. A p-value must come from a valid
// statistical test for the verdict to mean anything.
func Interpret(p, alpha float64) Verdict {
	if p <= alpha {
		return DifferentDistributions
	}
	return SameDistributions
}

// A Result is the outcome of a significance test on two or more
// samples.
type Result struct {
	// Stat is the test statistic, e.g., the t-value of a t-test
	// or the F-value of an ANOVA.
	Stat float64

	// P is the p-value of the null hypothesis that the samples
	// come from the same distribution.
	P float64

	// Df is the degrees of freedom of the test. It may be
	// fractional for Welch's t-test. For ANOVA it is the
	// numerator (between-group) degrees of freedom.
	Df float64

	// N gives the sizes of the tested samples.
	N []int

	// Alpha is the significance level for this test. If
	// P <= Alpha, the test rejects the null hypothesis.
	Alpha float64

	// Warnings is a list of warnings about this result.
	Warnings []error
}

// Verdict applies the decision rule to r.
func (r Result) Verdict() Verdict {
	return Interpret(r.P, r.Alpha)
}

// String formats the test statistic and p-value to three decimal
// places, e.g., "stat=4.123, p=0.012".
func (r Result) String() string {
	return fmt.Sprintf("stat=%.3f, p=%.3f", r.Stat, r.P)
}
