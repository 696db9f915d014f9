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

package asm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	data := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"halt", "halt", "99"},
		{"modes", "add [4], 3, [4]\nhalt", "1001,4,3,4,99"},
		{"relative", "arb 7\nadd rel[-1], -2, rel[2]\nhalt", "109,7,21201,-1,-2,2,99"},
		{"comments", "; nothing\n\tout 42 ; answer\n\n   halt ; done", "104,42,99"},
		{"labels", `
			start:	in [x]
				jz [x], end
				out [x]
				jz 0, start
			end:	halt
			x:	data 0`, "3,11,1006,11,10,4,11,1106,0,0,99,0"},
		{"forward", "jnz 1, next\nnext: out next\nhalt", "1105,1,3,104,3,99"},
		{"data", "data 1, -2, 170141183460469231731687303715884105727, here\nhere:", "1,-2,170141183460469231731687303715884105727,4"},
		{"label only", "a:\nb: data a, b\nc:\nhalt\ndata c", "0,0,99,2"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			p, err := asm.Assemble(d.name, strings.NewReader(d.src))
			require.NoError(t, err)
			assert.Equal(t, d.want, p.String())
		})
	}
}

func TestAssembleErrors(t *testing.T) {
	data := []struct {
		name string
		src  string
		err  string
	}{
		{"mnemonic", "foo 1, 2", `unknown mnemonic "foo"`},
		{"arity", "add 1, 2", "add expects 3 operands, got 2"},
		{"arity2", "halt 0", "halt expects 0 operands, got 1"},
		{"undefined", "jz 0, nowhere", "undefined label nowhere"},
		{"redefined", "a: halt\na: halt", "label redefinition: a"},
		{"reserved", "add: halt", "reserved label name: add"},
		{"target", "add 1, 2, 3", "invalid write target for add: 3"},
		{"input target", "in 0", "invalid write target for in: 0"},
		{"data mode", "data [1]", "data operands must be immediate values"},
		{"syntax", "add 1,, 2, [3]", "syntax"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := asm.Assemble(d.name, strings.NewReader(d.src))
			require.Error(t, err)
			if d.err != "syntax" {
				assert.Contains(t, err.Error(), d.err)
			}
		})
	}
}

func TestDisassemble(t *testing.T) {
	p := vm.MustParse("1002,4,3,4,33,109,-1,21207,1,2,3,104,5,99,77,1105")
	var b bytes.Buffer
	require.NoError(t, asm.DisassembleAll(p, 0, &b))
	want := "" +
		"     0\tmul [4], 3, [4]\n" +
		"     4\tdata 33\n" +
		"     5\tarb -1\n" +
		"     7\tlt rel[1], 2, rel[3]\n" +
		"    11\tout 5\n" +
		"    13\thalt\n" +
		"    14\tdata 77\n" +
		"    15\tdata 1105\n"
	assert.Equal(t, want, b.String())
}

// Disassembled code must assemble back to the same program.
func TestRoundTrip(t *testing.T) {
	p := vm.MustParse("3,225,1,225,6,6,1100,1,238,225,104,0,1101,-5,7,226,1008,226,2,224,1005,224,27,204,-1,9,-3,99")
	var b bytes.Buffer
	for pc := 0; pc < len(p); {
		var err error
		pc, err = asm.Disassemble(p, pc, &b)
		require.NoError(t, err)
		b.WriteByte('\n')
	}
	q, err := asm.Assemble("roundtrip", &b)
	require.NoError(t, err)
	assert.Equal(t, p.String(), q.String())
}
