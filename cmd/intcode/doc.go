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

// The intcode command runs Intcode programs. It is a showcase for the packages
// github.com/db47h/intcode/vm, asm and pipeline.
//
// Usage:
//
//	intcode [flags] program
//
//	-asm
//		  program file is assembly source
//	-debug
//		  enable debug diagnostics
//	-disasm
//		  disassemble the program and exit
//	-dump
//		  dump memory upon exit
//	-input values
//		  comma separated values fed to the program before standard input
//	-phases settings
//		  run a pipeline of amplifiers with the given phase settings
//	-print
//		  print the program text and exit
//	-ring
//		  connect the pipeline in a feedback ring
//	-search
//		  search the phase permutation giving the highest signal
//	-storage kind
//		  memory storage kind: linear or sparse (default linear)
//	-trace
//		  trace executed instructions to stderr
//
// The program file holds comma separated integers, or assembly source if -asm
// is set (see package asm for the syntax).
//
// Input values are read from standard input, separated by white space or
// commas. When standard input is a terminal, values are read with line editing
// and history. Each output value is printed on its own line.
//
// -input: the given values are fed to the program before standard input is
// read. With -phases, the first value is the signal sent to the first
// amplifier (default 0).
//
// -phases: runs one copy of the program per phase setting, each machine's
// output feeding the next machine's input, and prints the final signal. With
// -ring, the last machine's output is fed back to the first one until all
// machines halt.
//
// -search: tries every ordering of the phase settings (0 to 4, or 5 to 9 with
// -ring, unless -phases is set) and prints the highest signal along with the
// ordering that produced it.
//
// -print: with -asm, prints the assembled program text, ready to be run
// without -asm.
//
// -debug: will print a full stacktrace and the machine state should the VM
// fault.
package main
