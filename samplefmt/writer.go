// Copyright 2026 The Hypotest Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package samplefmt

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// A Writer writes the sample format.
type Writer struct {
	w   io.Writer
	buf bytes.Buffer
}

// NewWriter returns a writer that writes samples to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteConfig writes a file-level configuration line.
func (w *Writer) WriteConfig(key, value string) error {
	fmt.Fprintf(&w.buf, "%s: %s\n", key, value)
	return w.flush()
}

// Write writes Record rec to w.
func (w *Writer) Write(rec *Record) error {
	w.buf.WriteString(rec.Name)
	for _, v := range rec.Values {
		w.buf.WriteByte(' ')
		w.buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	w.buf.WriteByte('\n')
	return w.flush()
}

func (w *Writer) flush() error {
	// Write to the buffer can't fail, so we only have to check if
	// this fails.
	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}
