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

package pipeline

import (
	"context"
	"runtime"
	"sync"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Permutations calls fn for each permutation of values, generated with Heap's
// algorithm. The slice passed to fn is reused between calls. Iteration stops
// early if fn returns false.
func Permutations(values []vm.Cell, fn func(perm []vm.Cell) bool) {
	a := make([]vm.Cell, len(values))
	copy(a, values)
	c := make([]int, len(a))
	if !fn(a) {
		return
	}
	for k := 1; k < len(a); {
		if c[k] < k {
			if k%2 == 0 {
				a[0], a[k] = a[k], a[0]
			} else {
				a[c[k]], a[k] = a[k], a[c[k]]
			}
			if !fn(a) {
				return
			}
			c[k]++
			k = 1
		} else {
			c[k] = 0
			k++
		}
	}
}

// Result is the outcome of a Search.
type Result struct {
	Signal vm.Cell   // highest signal found
	Phases []vm.Cell // phase settings that produced it
}

// Search runs a fresh pipeline for every permutation of phases, sending an
// initial signal of 0 to each, and returns the highest output signal.
// Pipelines are run in parallel, up to GOMAXPROCS at a time.
func Search(ctx context.Context, prog vm.Program, phases []vm.Cell, topology Topology, opts ...vm.Option) (Result, error) {
	var (
		mu   sync.Mutex
		best Result
		seen bool
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	Permutations(phases, func(perm []vm.Cell) bool {
		order := make([]vm.Cell, len(perm))
		copy(order, perm)
		g.Go(func() error {
			p, err := New(prog, order, topology, opts...)
			if err != nil {
				return err
			}
			v, err := p.Run(ctx, vm.Cell{})
			if err != nil {
				return errors.Wrapf(err, "phases %v", order)
			}
			mu.Lock()
			if !seen || v.Cmp(best.Signal) > 0 {
				best, seen = Result{v, order}, true
			}
			mu.Unlock()
			return nil
		})
		return ctx.Err() == nil
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return best, nil
}
