// Copyright 2026 The Hypotest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sampling

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestNormalReproducible(t *testing.T) {
	a := Normal(50, 5, 100, 1)
	b := Normal(50, 5, 100, 1)
	if len(a) != 100 {
		t.Fatalf("got %d values, want 100", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d: %v != %v", i, a[i], b[i])
		}
	}

	c := Normal(50, 5, 100, 2)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Errorf("different seeds produced identical samples")
	}
}

func TestNormalMoments(t *testing.T) {
	xs := Normal(50, 5, 10000, 1)
	if mean := stat.Mean(xs, nil); math.Abs(mean-50) > 0.5 {
		t.Errorf("got mean %v, want ≈50", mean)
	}
	if sd := stat.StdDev(xs, nil); math.Abs(sd-5) > 0.5 {
		t.Errorf("got sd %v, want ≈5", sd)
	}
}

func TestDiceRolls(t *testing.T) {
	xs := DiceRolls(1000, 1)
	if len(xs) != 1000 {
		t.Fatalf("got %d rolls, want 1000", len(xs))
	}
	seen := make(map[float64]int)
	for _, x := range xs {
		if x < 1 || x > 6 || x != math.Trunc(x) {
			t.Fatalf("got roll %v, want integer in [1,6]", x)
		}
		seen[x]++
	}
	// With 1000 rolls every face shows up.
	for face := 1.0; face <= 6; face++ {
		if seen[face] == 0 {
			t.Errorf("face %v never rolled", face)
		}
	}

	ys := DiceRolls(1000, 1)
	for i := range xs {
		if xs[i] != ys[i] {
			t.Fatalf("same seed diverged at %d", i)
		}
	}
}

func TestSampleMeans(t *testing.T) {
	means := SampleMeans(Die, 50, 1000, 1)
	if len(means) != 1000 {
		t.Fatalf("got %d means, want 1000", len(means))
	}

	// A fair die has mean 3.5 and sd sqrt(35/12); the means of
	// samples of 50 should center on 3.5 with sd near
	// sqrt(35/12)/sqrt(50).
	mean := stat.Mean(means, nil)
	if math.Abs(mean-3.5) > 0.05 {
		t.Errorf("got mean of means %v, want ≈3.5", mean)
	}
	sd := stat.StdDev(means, nil)
	want := math.Sqrt(35.0/12) / math.Sqrt(50)
	if sd < want/2 || sd > want*2 {
		t.Errorf("got sd of means %v, want ≈%v", sd, want)
	}

	again := SampleMeans(Die, 50, 1000, 1)
	for i := range means {
		if means[i] != again[i] {
			t.Fatalf("same seed diverged at %d", i)
		}
	}
}
