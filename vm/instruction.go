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

import "strings"

// Parameter is an instruction parameter: a raw value and its addressing mode.
type Parameter struct {
	Mode  Mode
	Value Cell
}

// String returns the parameter in assembler syntax: 5, [5] or rel[5].
func (p Parameter) String() string {
	switch p.Mode {
	case ImmediateMode:
		return p.Value.String()
	case PositionMode:
		return "[" + p.Value.String() + "]"
	case RelativeMode:
		return "rel[" + p.Value.String() + "]"
	}
	return "?" + p.Value.String()
}

// Instruction is a decoded instruction. Params always holds three parameters,
// regardless of the opcode's arity.
type Instruction struct {
	Op     Opcode
	Raw    Cell
	Params [3]Parameter
}

// Len returns the number of cells used by the instruction.
func (in Instruction) Len() uint64 {
	return uint64(1 + in.Op.Arity())
}

func (in Instruction) String() string {
	var b strings.Builder
	b.WriteString(in.Op.String())
	for n := 0; n < in.Op.Arity(); n++ {
		if n == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}
		b.WriteString(in.Params[n].String())
	}
	return b.String()
}

// Addressable is implemented by anything that can be read like VM memory.
type Addressable interface {
	Read(addr uint64) Cell
}

var modeDiv = [3]int64{100, 1000, 10000}

// Decode decodes the instruction at address ip. It returns false if the cell
// at ip is not a valid instruction. Decoding never modifies memory.
func Decode(ip uint64, mem Addressable) (Instruction, bool) {
	raw := mem.Read(ip)
	in := Instruction{Raw: raw}
	if !raw.IsInt64() || raw.Sign() < 0 {
		return in, false
	}
	v := raw.Int64()
	in.Op = Opcode(v % 100)
	for n := range in.Params {
		in.Params[n] = Parameter{
			Mode:  Mode(v / modeDiv[n] % 10),
			Value: mem.Read(ip + uint64(n) + 1),
		}
	}
	if !in.Op.Valid() {
		in.Op = OpUnknown
		return in, false
	}
	for n := 0; n < in.Op.Arity(); n++ {
		if in.Params[n].Mode > RelativeMode {
			return in, false
		}
	}
	return in, true
}
