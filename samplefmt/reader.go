// Copyright 2026 The Hypotest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package samplefmt reads and writes a line-oriented text format for
// named numeric samples.
//
// Each sample is one line: a name followed by whitespace-separated
// floating-point observations, in observation order:
//
//	control 88.1 90.2 87.4 89.0
//	treatment 91.5 93.0 92.2 94.1
//
// Lines of the form "key: value" set file-level configuration, such
// as the significance level:
//
//	alpha: 0.05
//
// Blank lines and lines starting with # are ignored.
package samplefmt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Record is one named sample read from an input file.
type Record struct {
	// Name identifies the sample within its file.
	Name string

	// Values are the observations, in input order.
	Values []float64
}

// A SyntaxError represents a syntax error on a particular line of a
// sample file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// A Reader reads the sample format.
//
// Its API is modeled on bufio.Scanner: call Scan until it returns
// false, consume each record with Result, then check Err. A Reader
// retains ownership of the record it returns; a caller should copy
// anything it needs to retain.
type Reader struct {
	s        *bufio.Scanner
	err      error
	fileName string
	line     int

	rec    Record
	config map[string]string
}

// NewReader constructs a reader to parse the sample format from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	return &Reader{
		s:        bufio.NewScanner(r),
		fileName: fileName,
		config:   make(map[string]string),
	}
}

// Scan advances the reader to the next sample record and reports
// whether one is available. Configuration lines are consumed
// internally; they never appear as records.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		r.line++
		line := strings.TrimSpace(r.s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if strings.HasSuffix(fields[0], ":") {
			key := strings.TrimSuffix(fields[0], ":")
			if key == "" {
				r.err = r.syntaxError("missing configuration key")
				return false
			}
			r.config[key] = strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
			continue
		}

		if len(fields) < 2 {
			r.err = r.syntaxError(fmt.Sprintf("sample %q has no values", fields[0]))
			return false
		}
		values := make([]float64, 0, len(fields)-1)
		for _, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				r.err = r.syntaxError(fmt.Sprintf("malformed value %q", f))
				return false
			}
			values = append(values, v)
		}
		r.rec = Record{Name: fields[0], Values: values}
		return true
	}
	r.err = r.s.Err()
	return false
}

// Result returns the record produced by the latest call to Scan.
func (r *Reader) Result() *Record {
	return &r.rec
}

// Config returns the value of a file-level configuration key seen so
// far, and whether the key was set.
func (r *Reader) Config(key string) (string, bool) {
	v, ok := r.config[key]
	return v, ok
}

// Err returns the first syntax or I/O error encountered by the
// reader.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) syntaxError(msg string) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, msg}
}
