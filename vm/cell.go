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
	"math/big"
	"strconv"

	"github.com/pkg/errors"
	num "github.com/shabbyrobe/go-num"
)

// Cell is the raw type stored in a memory location. It is a signed 128 bits
// two's complement integer. Arithmetic wraps around on overflow.
//
// The zero value is 0.
type Cell struct {
	v num.I128
}

// CellBits is the size in bits of a Cell.
const CellBits = 128

// CellOf returns v as a Cell.
func CellOf(v int64) Cell {
	return Cell{num.I128From64(v)}
}

// addressCell returns addr as a Cell.
func addressCell(addr uint64) Cell {
	return Cell{num.I128FromRaw(0, addr)}
}

// Add returns c + d.
func (c Cell) Add(d Cell) Cell { return Cell{c.v.Add(d.v)} }

// Neg returns -c.
func (c Cell) Neg() Cell { return Cell{c.v.Neg()} }

// Mul returns c * d.
func (c Cell) Mul(d Cell) Cell { return Cell{c.v.Mul(d.v)} }

// Cmp compares c and d and returns -1, 0 or +1.
func (c Cell) Cmp(d Cell) int { return c.v.Cmp(d.v) }

// Sign returns -1, 0 or +1 depending on the sign of c.
func (c Cell) Sign() int { return c.v.Sign() }

// IsZero reports whether c == 0.
func (c Cell) IsZero() bool { return c.v.IsZero() }

// IsInt64 reports whether c can be represented as an int64.
func (c Cell) IsInt64() bool { return c.v.IsInt64() }

// Int64 returns the low 64 bits of c as an int64. The result is undefined if
// c does not fit.
func (c Cell) Int64() int64 {
	_, lo := c.v.Raw()
	return int64(lo)
}

// Address converts c to a memory address. ok is false if c is negative or
// does not fit in 64 bits.
func (c Cell) Address() (addr uint64, ok bool) {
	hi, lo := c.v.Raw()
	return lo, hi == 0
}

// Big returns c as a big.Int.
func (c Cell) Big() *big.Int { return c.v.AsBigInt() }

func (c Cell) String() string { return c.v.String() }

// CellFromBig converts b to a Cell. It returns an error if b is out of range.
func CellFromBig(b *big.Int) (Cell, error) {
	v, accurate := num.I128FromBigInt(b)
	if !accurate {
		return Cell{}, errors.Errorf("value %v out of range", b)
	}
	return Cell{v}, nil
}

// ParseCell parses a base 10 signed integer.
func ParseCell(s string) (Cell, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return CellOf(n), nil
	}
	if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
		return Cell{}, errors.Wrap(err, "parse cell")
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Cell{}, errors.Errorf("parse cell: invalid syntax %q", s)
	}
	c, err := CellFromBig(b)
	return c, errors.Wrap(err, "parse cell")
}

// MustParseCell is like ParseCell but panics on error.
func MustParseCell(s string) Cell {
	c, err := ParseCell(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Cells converts a list of int64 to a slice of Cells.
func Cells(v ...int64) []Cell {
	cs := make([]Cell, len(v))
	for i, n := range v {
		cs[i] = CellOf(n)
	}
	return cs
}
