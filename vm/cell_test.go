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

package vm_test

import (
	"math/big"
	"testing"

	"github.com/db47h/intcode/vm"
)

func TestCellArith(t *testing.T) {
	big1, _ := new(big.Int).SetString("-170141183460469231731687303715884105728", 10)
	values := []string{
		"0", "1", "-1", "42", "-42",
		"9223372036854775807", "-9223372036854775808", "18446744073709551616",
		"1125899906842624", "-34915192", "170141183460469231731687303715884105727",
		big1.String(),
	}
	mod := new(big.Int).Lsh(big.NewInt(1), vm.CellBits)
	wrap := func(b *big.Int) *big.Int {
		b.Mod(b, mod)
		if b.Cmp(new(big.Int).Rsh(mod, 1)) >= 0 {
			b.Sub(b, mod)
		}
		return b
	}
	for _, x := range values {
		cx := vm.MustParseCell(x)
		bx := cx.Big()
		assertEqual(t, "roundtrip "+x, x, cx.String())
		for _, y := range values {
			cy := vm.MustParseCell(y)
			by := cy.Big()
			sum := wrap(new(big.Int).Add(bx, by))
			assertEqual(t, x+"+"+y, sum.String(), cx.Add(cy).String())
			prod := wrap(new(big.Int).Mul(bx, by))
			assertEqual(t, x+"*"+y, prod.String(), cx.Mul(cy).String())
			assertEqual(t, x+" cmp "+y, bx.Cmp(by), cx.Cmp(cy))
		}
	}
}

func TestParseCell(t *testing.T) {
	for _, s := range []string{"", "1.5", "abc", "170141183460469231731687303715884105728", "--1"} {
		if _, err := vm.ParseCell(s); err == nil {
			t.Errorf("ParseCell(%q): expected error", s)
		}
	}
	c, err := vm.ParseCell("+12")
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, "+12", vm.CellOf(12), c)
}

func TestCellAddress(t *testing.T) {
	for _, test := range []struct {
		s    string
		addr uint64
		ok   bool
	}{
		{"0", 0, true},
		{"1000", 1000, true},
		{"18446744073709551615", 1<<64 - 1, true},
		{"18446744073709551616", 0, false},
		{"-1", 0, false},
	} {
		a, ok := vm.MustParseCell(test.s).Address()
		assertEqual(t, test.s+" ok", test.ok, ok)
		if ok {
			assertEqual(t, test.s, test.addr, a)
		}
	}
}
