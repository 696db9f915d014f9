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

// Package vm implements an Intcode virtual machine.
//
// Programs are flat sequences of integers (see Parse and Load). Each
// instruction is made of an opcode and up to three parameters; the opcode is
// the instruction cell modulo 100, and the hundreds, thousands and
// ten-thousands digits give the addressing mode of each parameter: position
// ([n]), immediate (n) or relative (rel[n], relative to the machine's relative
// base register).
//
// Memory cells are 128 bits signed integers. Memory grows on demand: reading an
// address that was never written returns 0 and writing anywhere succeeds.
// Because instructions are fetched from the same memory programs write to,
// self-modifying code works as expected.
//
// Input and output are pluggable: a machine reads from a CellReader and writes
// to a CellWriter. A Port is an unbounded FIFO that implements both and is used
// to wire machines together (see package pipeline). For interactive use, the
// Prompt and Sink options connect a machine to an io.Reader and io.Writer.
//
// A machine is either Running, Blocked (waiting for input while stepped with
// Step), Halted or Faulted. Program errors (illegal opcodes, writes to
// immediate parameters, negative addresses) fault the machine permanently, and
// are reported as a *Fault.
//
// Note that for performance reasons, the instruction pointer is not
// incremented in a single place, rather each opcode deals with it as needed.
package vm
