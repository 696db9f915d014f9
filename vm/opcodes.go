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

import "strconv"

// Opcode is a decoded instruction opcode.
type Opcode int

// Intcode opcodes. OpUnknown is never produced by a valid instruction cell.
const (
	OpUnknown Opcode = 0
	OpAdd     Opcode = 1
	OpMul     Opcode = 2
	OpIn      Opcode = 3
	OpOut     Opcode = 4
	OpJnz     Opcode = 5
	OpJz      Opcode = 6
	OpLt      Opcode = 7
	OpEq      Opcode = 8
	OpArb     Opcode = 9
	OpHalt    Opcode = 99
)

type opInfo struct {
	name  string
	arity int
}

var opcodes = map[Opcode]opInfo{
	OpAdd:  {"add", 3},
	OpMul:  {"mul", 3},
	OpIn:   {"in", 1},
	OpOut:  {"out", 1},
	OpJnz:  {"jnz", 2},
	OpJz:   {"jz", 2},
	OpLt:   {"lt", 3},
	OpEq:   {"eq", 3},
	OpArb:  {"arb", 1},
	OpHalt: {"halt", 0},
}

var opcodeIndex = make(map[string]Opcode, len(opcodes))

func init() {
	for op, info := range opcodes {
		opcodeIndex[info.name] = op
	}
}

// Valid reports whether op is a known opcode.
func (op Opcode) Valid() bool {
	_, ok := opcodes[op]
	return ok
}

// Arity returns the number of parameters used by op.
func (op Opcode) Arity() int {
	return opcodes[op].arity
}

// Writes reports whether the last parameter of op is a write target.
func (op Opcode) Writes() bool {
	switch op {
	case OpAdd, OpMul, OpIn, OpLt, OpEq:
		return true
	}
	return false
}

// String returns the assembler mnemonic for op.
func (op Opcode) String() string {
	if info, ok := opcodes[op]; ok {
		return info.name
	}
	return "op(" + strconv.Itoa(int(op)) + ")"
}

// LookupOpcode returns the opcode for the given mnemonic.
func LookupOpcode(name string) (Opcode, bool) {
	op, ok := opcodeIndex[name]
	return op, ok
}

// Mode is a parameter addressing mode.
type Mode int

// Parameter modes.
const (
	PositionMode Mode = iota
	ImmediateMode
	RelativeMode
)

func (m Mode) String() string {
	switch m {
	case PositionMode:
		return "position"
	case ImmediateMode:
		return "immediate"
	case RelativeMode:
		return "relative"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}
