// Copyright 2026 The Hypotest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Hypotest compares numeric samples with classical significance tests.
//
// Usage:
//
//	hypotest [-test name] [-alpha α] [-html] file.txt [more.txt ...]
//
// Each input file holds named samples in the samplefmt text format:
// one sample per line, a name followed by its observations. For
// example:
//
//	control 88.1 90.2 87.4 89.0
//	treatment 91.5 93.0 92.2 94.1
//
// The first sample read is the baseline. Hypotest tests every later
// sample against it and, for each comparison, prints the test
// statistic, the p-value, and the verdict on the null hypothesis that
// the two samples come from the same distribution:
//
//	$ hypotest lesson.txt
//	control vs treatment: stat=-2.887, p=0.028 (different distributions)
//
// The -test option selects the significance test: student (Student's
// two-sample t-test), welch (Welch's t-test, the default), paired
// (the dependent two-sample t-test), or anova (the one-way ANOVA
// F-test, which compares all samples at once instead of pairwise).
//
// The null hypothesis is rejected when p <= α. A file may set the
// significance level with an "alpha:" configuration line; the -alpha
// flag overrides it.
//
// The -html option prints the comparisons as an HTML table instead of
// text.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/statlearn/hypotest/hypmath"
	"github.com/statlearn/hypotest/samplefmt"
)

var exit = os.Exit // replaced during testing

func usage() {
	fmt.Fprintf(os.Stderr, "usage: hypotest [options] file.txt [more.txt ...]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	exit(2)
}

var (
	flagTest  = flag.String("test", "welch", "significance `test`: student, welch, paired, or anova")
	flagAlpha = flag.Float64("alpha", 0.05, "reject the null hypothesis when p <= `α`")
	flagHTML  = flag.Bool("html", false, "print results as an HTML table")
)

func main() {
	log.SetPrefix("hypotest: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
	}
	alphaSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "alpha" {
			alphaSet = true
		}
	})
	if err := hypotest(os.Stdout, os.Stderr, *flagTest, *flagAlpha, alphaSet, *flagHTML, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

// A namedSample pairs a sample with the name it was read under.
type namedSample struct {
	name   string
	sample *hypmath.Sample
}

// A row is one rendered comparison.
type row struct {
	Names   string
	Result  string
	Verdict string
	Reject  bool
}

func hypotest(w, wErr io.Writer, test string, alpha float64, alphaSet, html bool, files []string) error {
	thr := hypmath.DefaultThresholds
	thr.Alpha = alpha

	var samples []*namedSample
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		r := samplefmt.NewReader(f, file)
		for r.Scan() {
			rec := r.Result()
			values := append([]float64(nil), rec.Values...)
			samples = append(samples, &namedSample{rec.Name, hypmath.NewSample(values, &thr)})
		}
		rerr := r.Err()
		f.Close()
		if rerr != nil {
			return rerr
		}
		// All samples in a run share one Thresholds, so a
		// file-level alpha applies to the whole run.
		if v, ok := r.Config("alpha"); ok && !alphaSet {
			a, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s: malformed alpha %q", file, v)
			}
			thr.Alpha = a
		}
	}
	if len(samples) < 2 {
		return fmt.Errorf("need at least two samples, have %d", len(samples))
	}

	var rows []row
	switch test {
	case "anova":
		names := make([]string, len(samples))
		groups := make([]*hypmath.Sample, len(samples))
		for i, s := range samples {
			names[i] = s.name
			groups[i] = s.sample
		}
		rows = append(rows, newRow(strings.Join(names, " vs "), hypmath.OneWayANOVA(groups...), wErr))
	case "student", "welch", "paired":
		base := samples[0]
		for _, s := range samples[1:] {
			var res hypmath.Result
			switch test {
			case "student":
				res = hypmath.StudentTTest(base.sample, s.sample)
			case "welch":
				res = hypmath.WelchTTest(base.sample, s.sample)
			case "paired":
				res = hypmath.PairedTTest(base.sample, s.sample)
			}
			rows = append(rows, newRow(base.name+" vs "+s.name, res, wErr))
		}
	default:
		return fmt.Errorf("unknown test %q", test)
	}

	if html {
		return writeHTML(w, rows)
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s: %s (%s)\n", r.Names, r.Result, r.Verdict)
	}
	return nil
}

func newRow(names string, res hypmath.Result, wErr io.Writer) row {
	for _, warn := range res.Warnings {
		fmt.Fprintf(wErr, "warning: %s: %s\n", names, warn)
	}
	v := res.Verdict()
	return row{
		Names:   names,
		Result:  res.String(),
		Verdict: v.String(),
		Reject:  v == hypmath.DifferentDistributions,
	}
}
