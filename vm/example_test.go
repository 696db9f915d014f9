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
	"fmt"
	"os"
	"strings"

	"github.com/db47h/intcode/vm"
)

// Shows how to run a program that only works on its own memory.
func ExampleInstance_Run() {
	prog, err := vm.ParseString("1,9,10,3,2,3,11,0,99,30,40,50")
	if err != nil {
		panic(err)
	}
	i, err := vm.New(prog)
	if err != nil {
		panic(err)
	}
	if _, err = i.Run(); err != nil {
		panic(err)
	}
	fmt.Println(i.State(), i.Read(0))

	// Output:
	// halted 3500
}

// A self-reproducing program, with its output sent to os.Stdout.
func ExampleSink() {
	prog := vm.MustParse("109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99")
	i, err := vm.New(prog, vm.Sink(os.Stdout))
	if err != nil {
		panic(err)
	}
	if _, err = i.Run(); err != nil {
		panic(err)
	}

	// Output:
	// 109
	// 1
	// 204
	// -1
	// 1001
	// 100
	// 1
	// 100
	// 1008
	// 100
	// 16
	// 101
	// 1006
	// 101
	// 0
	// 99
}

// Input can come from any io.Reader.
func ExamplePrompt() {
	prog := vm.MustParse("3,9,8,9,10,9,4,9,99,-1,8")
	i, err := vm.New(prog,
		vm.Prompt(strings.NewReader("8\n"), nil, ""),
		vm.Output(vm.NewWriterSink(os.Stdout, "> ")))
	if err != nil {
		panic(err)
	}
	if _, err = i.Run(); err != nil {
		panic(err)
	}

	// Output:
	// > 1
}

// Faults are reported as *vm.Fault errors.
func ExampleFault() {
	i, err := vm.New(vm.MustParse("1101,1,1,-1,99"))
	if err != nil {
		panic(err)
	}
	st, err := i.Run()
	f, _ := vm.IsFault(err)
	fmt.Println(st, f.Kind, f.IP)
	fmt.Println(err)

	// Output:
	// faulted invalid address 0
	// invalid address -1 @ip=0
}

// Tracing prints each instruction before executing it.
func ExampleTrace() {
	i, err := vm.New(vm.MustParse("109,3,21101,2,3,1,204,1,99"), vm.Trace(os.Stdout), vm.Sink(os.Stdout))
	if err != nil {
		panic(err)
	}
	if _, err = i.Run(); err != nil {
		panic(err)
	}

	// Output:
	// ip=0     rb=0     | arb 3
	// ip=2     rb=3     | add 2, 3, rel[1]
	// ip=6     rb=3     | out rel[1]
	// 5
	// ip=8     rb=3     | halt
}
