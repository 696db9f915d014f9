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

// Package pipeline wires Intcode machines together.
//
// A Pipeline is a fixed topology of machines where each machine's output port
// is the next machine's input port: either a straight Chain, or a feedback
// Ring where the last machine's output loops back into the first machine.
// Each machine is seeded with its own phase setting as first input.
//
// Machines in a pipeline run concurrently, one goroutine per machine: in a
// ring, machines routinely wait for values still being computed upstream in
// the same cycle.
package pipeline

import (
	"context"
	"strconv"
	"sync"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Topology is the shape of a pipeline.
type Topology int

// Supported topologies.
const (
	Chain Topology = iota
	Ring
)

func (t Topology) String() string {
	switch t {
	case Chain:
		return "chain"
	case Ring:
		return "ring"
	}
	return "topology(" + strconv.Itoa(int(t)) + ")"
}

// ErrNoOutput is returned by Run if the final machine did not produce any
// output.
var ErrNoOutput = errors.New("no output")

// Pipeline is a set of machines wired together.
type Pipeline struct {
	topology Topology
	machines []*vm.Instance
	inputs   []*vm.Port
	output   *vm.Port
	ran      bool
	mu       sync.Mutex
	lastDone *vm.Instance
}

// New creates a pipeline of len(phases) machines, each running a copy of
// prog. Machine k's input port is seeded with phases[k]. The given options
// are applied to each machine before wiring its ports.
func New(prog vm.Program, phases []vm.Cell, topology Topology, opts ...vm.Option) (*Pipeline, error) {
	if len(phases) == 0 {
		return nil, errors.New("empty pipeline")
	}
	if topology != Chain && topology != Ring {
		return nil, errors.Errorf("unsupported topology %v", topology)
	}
	n := len(phases)
	p := &Pipeline{
		topology: topology,
		machines: make([]*vm.Instance, n),
		inputs:   make([]*vm.Port, n),
	}
	for k := range phases {
		p.inputs[k] = vm.NewPort(phases[k])
	}
	if topology == Chain {
		p.output = vm.NewPort()
	}
	for k := range p.machines {
		out := p.output
		if k < n-1 || topology == Ring {
			out = p.inputs[(k+1)%n]
		}
		o := append(opts[:len(opts):len(opts)], vm.InputPort(p.inputs[k]), vm.OutputPort(out))
		m, err := vm.New(prog, o...)
		if err != nil {
			return nil, errors.Wrapf(err, "machine %d", k)
		}
		p.machines[k] = m
	}
	return p, nil
}

// NewChain is a shorthand for New(prog, phases, Chain, opts...).
func NewChain(prog vm.Program, phases []vm.Cell, opts ...vm.Option) (*Pipeline, error) {
	return New(prog, phases, Chain, opts...)
}

// NewRing is a shorthand for New(prog, phases, Ring, opts...).
func NewRing(prog vm.Program, phases []vm.Cell, opts ...vm.Option) (*Pipeline, error) {
	return New(prog, phases, Ring, opts...)
}

// Topology returns the pipeline's topology.
func (p *Pipeline) Topology() Topology { return p.topology }

// Machines returns the pipeline's machines, in wiring order.
func (p *Pipeline) Machines() []*vm.Instance { return p.machines }

// Output returns the output port of the last machine of a Chain: all the
// values it produced can be received from it after Run returns. It returns
// nil for a Ring.
func (p *Pipeline) Output() *vm.Port { return p.output }

// Run sends signal to the first machine, runs all machines concurrently until
// they halt and returns the final signal: the last value output by the last
// machine of a Chain, or by the last machine to halt in a Ring.
//
// A machine whose input port gets closed and drained while waiting for input
// is considered done. The first machine fault cancels the whole pipeline and
// is returned.
//
// A pipeline can only be run once.
func (p *Pipeline) Run(ctx context.Context, signal vm.Cell) (vm.Cell, error) {
	if p.ran {
		return vm.Cell{}, errors.New("pipeline already run")
	}
	p.ran = true
	if err := p.inputs[0].Send(signal); err != nil {
		return vm.Cell{}, errors.Wrap(err, "initial signal")
	}
	if p.topology == Chain {
		// nothing else will ever be sent to the head of a chain.
		p.inputs[0].Close()
	}
	g, ctx := errgroup.WithContext(ctx)
	for k, m := range p.machines {
		k, m := k, m
		g.Go(func() error {
			_, err := m.RunContext(ctx)
			if err != nil && errors.Cause(err) != vm.ErrPortClosed {
				return errors.Wrapf(err, "machine %d", k)
			}
			p.done(m)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return vm.Cell{}, err
	}
	last := p.lastDone
	if p.topology == Chain {
		last = p.machines[len(p.machines)-1]
	}
	if last == nil {
		return vm.Cell{}, ErrNoOutput
	}
	v, ok := last.LastOutput()
	if !ok {
		return vm.Cell{}, ErrNoOutput
	}
	return v, nil
}

func (p *Pipeline) done(m *vm.Instance) {
	p.mu.Lock()
	if m.State() == vm.Halted {
		p.lastDone = m
	}
	p.mu.Unlock()
}
