// Copyright 2026 The Hypotest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Cltsim illustrates the central limit theorem with dice rolls.
//
// Usage:
//
//	cltsim [-rolls n] [-samples m] [-seed s] [-bins b] [-o file.png]
//
// Cltsim rolls n dice, takes the mean of the rolls, and repeats this
// m times. It prints the mean and standard deviation of the m sample
// means:
//
//	$ cltsim -rolls 50 -samples 1000
//	samples=1000 rolls=50 mean=3.502, sd=0.242
//
// Although a single die roll is uniformly distributed, the sample
// means approximate a Gaussian centered on 3.5, and their spread
// shrinks as -rolls grows.
//
// With -o, cltsim also writes a histogram of the sample means as a
// PNG image.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gonum.org/v1/gonum/stat"

	"github.com/statlearn/hypotest/sampling"
)

var exit = os.Exit // replaced during testing

func usage() {
	fmt.Fprintf(os.Stderr, "usage: cltsim [options]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	exit(2)
}

var (
	flagRolls   = flag.Int("rolls", 50, "dice `rolls` per sample")
	flagSamples = flag.Int("samples", 1000, "`number` of samples to draw")
	flagSeed    = flag.Uint64("seed", 1, "random `seed`")
	flagBins    = flag.Int("bins", 20, "histogram `bins`")
	flagOut     = flag.String("o", "", "write a histogram of the sample means to `file`")
)

func main() {
	log.SetPrefix("cltsim: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 || *flagRolls < 1 || *flagSamples < 1 {
		flag.Usage()
	}

	means := sampling.SampleMeans(sampling.Die, *flagRolls, *flagSamples, *flagSeed)
	fmt.Printf("samples=%d rolls=%d mean=%.3f, sd=%.3f\n",
		len(means), *flagRolls, stat.Mean(means, nil), stat.StdDev(means, nil))

	if *flagOut != "" {
		title := fmt.Sprintf("means of %d dice rolls", *flagRolls)
		if err := sampling.WriteHistogram(means, *flagBins, title, *flagOut); err != nil {
			log.Fatal(err)
		}
	}
}
