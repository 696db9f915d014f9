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
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
)

func ExampleAssemble() {
	src := `
		; countdown from 3
		loop:	out [n]
			add [n], -1, [n]
			jnz [n], loop
			halt
		n:	data 3`
	prog, err := asm.Assemble("countdown", strings.NewReader(src))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(prog)

	i, _ := vm.New(prog, vm.Sink(os.Stdout))
	if _, err = i.RunContext(context.Background()); err != nil {
		fmt.Println(err)
	}

	// Output:
	// 4,10,1001,10,-1,10,1005,10,0,99,3
	// 3
	// 2
	// 1
}

func ExampleDisassembleAll() {
	prog := vm.MustParse("109,19,204,-34,99")
	asm.DisassembleAll(prog, 100, os.Stdout)

	// Output:
	//    100	arb 19
	//    102	out rel[-34]
	//    104	halt
}
