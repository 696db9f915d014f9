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

package pipeline_test

import (
	"context"
	"fmt"

	"github.com/db47h/intcode/pipeline"
	"github.com/db47h/intcode/vm"
)

// Five amplifiers in a feedback loop.
func ExampleNewRing() {
	prog := vm.MustParse("3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5")
	p, err := pipeline.NewRing(prog, vm.Cells(9, 8, 7, 6, 5))
	if err != nil {
		panic(err)
	}
	v, err := p.Run(context.Background(), vm.CellOf(0))
	if err != nil {
		panic(err)
	}
	fmt.Println(v)

	// Output:
	// 139629729
}

// Find the phase settings that produce the highest signal.
func ExampleSearch() {
	prog := vm.MustParse("3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0")
	res, err := pipeline.Search(context.Background(), prog, vm.Cells(0, 1, 2, 3, 4), pipeline.Chain)
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Signal, res.Phases)

	// Output:
	// 43210 [4 3 2 1 0]
}
