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

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellList(t *testing.T) {
	var l cellList
	require.NoError(t, l.Set("1, -2"))
	require.NoError(t, l.Set("3 170141183460469231731687303715884105727"))
	assert.Equal(t, "[1 -2 3 170141183460469231731687303715884105727]", l.String())
	assert.Error(t, l.Set("4,x"))
}

func TestStorageFlag(t *testing.T) {
	s := storageFlag(vm.Linear)
	require.NoError(t, s.Set("sparse"))
	assert.Equal(t, vm.Sparse, s.Get())
	assert.Error(t, s.Set("tape"))
}

func TestRunPipeline(t *testing.T) {
	chainProg := vm.MustParse("3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0")
	ringProg := vm.MustParse("3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5")
	defer func() { ring, search, phases, input = false, false, nil, nil }()

	data := []struct {
		name   string
		prog   vm.Program
		ring   bool
		search bool
		phases []vm.Cell
		want   string
	}{
		{"chain", chainProg, false, false, vm.Cells(4, 3, 2, 1, 0), "43210\n"},
		{"ring", ringProg, true, false, vm.Cells(9, 8, 7, 6, 5), "139629729\n"},
		{"search", chainProg, false, true, nil, "43210 [4 3 2 1 0]\n"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			ring, search, phases = d.ring, d.search, d.phases
			var b bytes.Buffer
			require.NoError(t, runPipeline(context.Background(), d.prog, &b))
			assert.Equal(t, d.want, b.String())
		})
	}
}
