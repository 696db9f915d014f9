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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Source is line oriented. Each line may hold a label definition, a single
// statement, or both. Comments start with a semicolon and run to the end of
// the line:
//
//	loop:	in [x]		; read a value
//		jz [x], done
//		out [x]
//		jz 0, loop
//	done:	halt
//	x:	data 0
//
// Supported mnemonics:
//
//	opcode	asm	operands	description
//	------	---	--------	-----------------------------------------------------
//	1	add	a, b, dst	dst = a + b
//	2	mul	a, b, dst	dst = a * b
//	3	in	dst		read a value from the input into dst
//	4	out	a		write a to the output
//	5	jnz	a, t		jump to t if a is non-zero
//	6	jz	a, t		jump to t if a is zero
//	7	lt	a, b, dst	dst = 1 if a < b, else 0
//	8	eq	a, b, dst	dst = 1 if a == b, else 0
//	9	arb	a		add a to the relative base
//	99	halt			stop the machine
//
// Operands:
//
// An operand is written as an integer literal or label name, in one of three
// addressing modes:
//
//	42	immediate: the value itself
//	[42]	position: the cell at address 42
//	rel[-3]	relative: the cell at address relative base - 3
//
// A label used as an operand evaluates to its address. Destination operands
// cannot be immediate.
//
// Directives:
//
//	data <value>, ...
//
// compiles the given immediate values as-is. This is primarily used for data
// storage:
//
//	table:	data 65, 66, table
//
// The names of mnemonics, "data" and "rel" are reserved and cannot be used as
// labels.
package asm
