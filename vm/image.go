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
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/db47h/intcode/internal/ngi"
	"github.com/pkg/errors"
)

// Program is an Intcode program: the initial memory contents at addresses
// 0..len-1.
type Program []Cell

// Read returns the cell at address addr, or 0 past the end of the program.
func (p Program) Read(addr uint64) Cell {
	if addr < uint64(len(p)) {
		return p[addr]
	}
	return Cell{}
}

// Clone returns a copy of p.
func (p Program) Clone() Program {
	c := make(Program, len(p))
	copy(c, p)
	return c
}

// WriteTo writes p in comma separated text form.
func (p Program) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	err := ngi.NewErrWriter(cw).Join(len(p), ",", func(i int) fmt.Stringer { return p[i] })
	return cw.n, err
}

func (p Program) String() string {
	var b strings.Builder
	p.WriteTo(&b)
	return b.String()
}

type countWriter struct {
	w io.Writer
	n int64
}

func (w *countWriter) Write(b []byte) (int, error) {
	n, err := w.w.Write(b)
	w.n += int64(n)
	return n, err
}

// Parse parses a program in text form: comma separated signed integers.
// Whitespace around each element is ignored, as is a trailing comma.
func Parse(r io.Reader) (Program, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	src := strings.TrimSpace(string(data))
	if src == "" {
		return nil, errors.New("empty program")
	}
	fields := strings.Split(src, ",")
	if strings.TrimSpace(fields[len(fields)-1]) == "" {
		fields = fields[:len(fields)-1]
	}
	p := make(Program, len(fields))
	for i, f := range fields {
		p[i], err = ParseCell(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(err, "cell %d", i)
		}
	}
	return p, nil
}

// ParseString is a shorthand for Parse(strings.NewReader(s)).
func ParseString(s string) (Program, error) {
	return Parse(strings.NewReader(s))
}

// MustParse is like ParseString but panics on error.
func MustParse(s string) Program {
	p, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Load loads a program from file fileName.
func Load(fileName string) (Program, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	p, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Load %s", fileName)
	}
	return p, nil
}
