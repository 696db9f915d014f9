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

package main

import (
	"context"
	"io"
	"strings"
	"unicode"

	"github.com/db47h/intcode/vm"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
)

// linerReader reads input values from an interactive terminal with line
// editing and history. A line may hold several values.
type linerReader struct {
	ln      *liner.State
	prompt  string
	pending []vm.Cell
}

func newLinerReader(prompt string) *linerReader {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	return &linerReader{ln: ln, prompt: prompt}
}

func (r *linerReader) ReadCell(ctx context.Context) (vm.Cell, error) {
	for len(r.pending) == 0 {
		if err := ctx.Err(); err != nil {
			return vm.Cell{}, errors.Wrap(err, "read")
		}
		line, err := r.ln.Prompt(r.prompt)
		switch {
		case err == liner.ErrPromptAborted || err == io.EOF:
			return vm.Cell{}, io.EOF
		case err != nil:
			return vm.Cell{}, errors.Wrap(err, "read failed")
		}
		fields := strings.FieldsFunc(line, func(c rune) bool { return c == ',' || unicode.IsSpace(c) })
		for _, f := range fields {
			v, err := vm.ParseCell(f)
			if err != nil {
				// let the user try again
				r.pending = r.pending[:0]
				break
			}
			r.pending = append(r.pending, v)
		}
		if len(fields) > 0 {
			r.ln.AppendHistory(line)
		}
	}
	v := r.pending[0]
	r.pending = r.pending[1:]
	return v, nil
}

func (r *linerReader) Close() error {
	return r.ln.Close()
}
