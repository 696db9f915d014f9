// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// CellReader is the input side of a machine. ReadCell blocks until a value is
// available, the source is exhausted or ctx is done.
type CellReader interface {
	ReadCell(ctx context.Context) (Cell, error)
}

// TryCellReader is implemented by input sources that support polling. When
// stepping a machine with Step, such sources put the machine in the Blocked
// state instead of blocking the caller.
type TryCellReader interface {
	CellReader
	// TryReadCell returns ok = false and a nil error if no value is
	// available yet.
	TryReadCell() (v Cell, ok bool, err error)
}

// CellWriter is the output side of a machine.
//
// If a CellWriter also implements io.Closer, it will be closed when the
// machine halts or faults.
type CellWriter interface {
	WriteCell(v Cell) error
}

type noInput struct{}

func (noInput) ReadCell(context.Context) (Cell, error) { return Cell{}, ErrNoInput }

type discard struct{}

func (discard) WriteCell(Cell) error { return nil }

// Discard is a CellWriter that drops all values.
var Discard CellWriter = discard{}

type promptReader struct {
	s      *bufio.Scanner
	w      io.Writer
	prompt string
}

// NewPromptReader returns a synchronous CellReader that reads integers
// separated by white space or commas from r. If w is not nil, prompt is
// written to w before each read. The reader returns io.EOF when r is
// exhausted.
func NewPromptReader(r io.Reader, w io.Writer, prompt string) CellReader {
	s := bufio.NewScanner(r)
	s.Split(scanValues)
	return &promptReader{s: s, w: w, prompt: prompt}
}

func (r *promptReader) ReadCell(ctx context.Context) (Cell, error) {
	if err := ctx.Err(); err != nil {
		return Cell{}, err
	}
	if r.w != nil && r.prompt != "" {
		if _, err := io.WriteString(r.w, r.prompt); err != nil {
			return Cell{}, errors.Wrap(err, "prompt")
		}
	}
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			return Cell{}, errors.Wrap(err, "read failed")
		}
		return Cell{}, io.EOF
	}
	return ParseCell(r.s.Text())
}

func isSep(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f', ',':
		return true
	}
	return false
}

// scanValues is a bufio.SplitFunc returning tokens separated by white space
// or commas.
func scanValues(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSep(data[start]) {
		start++
	}
	for i := start; i < len(data); i++ {
		if isSep(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

type writerSink struct {
	w      io.Writer
	prefix string
}

// NewWriterSink returns a CellWriter that writes each value on its own line
// to w, preceded by prefix.
func NewWriterSink(w io.Writer, prefix string) CellWriter {
	return &writerSink{w, prefix}
}

func (s *writerSink) WriteCell(v Cell) error {
	_, err := fmt.Fprintf(s.w, "%s%v\n", s.prefix, v)
	if f, ok := s.w.(flusher); ok && err == nil {
		err = f.Flush()
	}
	return errors.Wrap(err, "write failed")
}

type flusher interface {
	Flush() error
}

// multiReader reads from a list of readers in sequence, moving on to the next
// reader when the current one returns io.EOF or ErrPortClosed.
type multiReader struct {
	readers []CellReader
}

// MultiReader returns a CellReader that is the logical concatenation of the
// provided readers.
func MultiReader(readers ...CellReader) CellReader {
	rs := make([]CellReader, len(readers))
	copy(rs, readers)
	return &multiReader{rs}
}

func exhausted(err error) bool {
	err = errors.Cause(err)
	return err == io.EOF || err == ErrPortClosed
}

func (mr *multiReader) ReadCell(ctx context.Context) (Cell, error) {
	for len(mr.readers) > 0 {
		v, err := mr.readers[0].ReadCell(ctx)
		if !exhausted(err) {
			return v, err
		}
		mr.readers = mr.readers[1:]
	}
	return Cell{}, io.EOF
}
