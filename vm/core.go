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

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"
)

// number of instructions between two context checks in RunContext.
const ctxCheckInterval = 1024

var one = CellOf(1)

func (i *Instance) fault(kind FaultKind, v Cell) error {
	i.state = Faulted
	i.err = errors.WithStack(&Fault{Kind: kind, IP: i.ip, Value: v})
	i.closeOutput()
	return i.err
}

func (i *Instance) closeOutput() {
	if c, ok := i.output.(io.Closer); ok {
		c.Close()
	}
}

// address resolves the effective address of a position or relative mode
// parameter.
func (i *Instance) address(p Parameter) (uint64, error) {
	a := p.Value
	switch p.Mode {
	case ImmediateMode:
		return 0, i.fault(InvalidWriteTarget, p.Value)
	case RelativeMode:
		a = a.Add(i.rb)
	}
	addr, ok := a.Address()
	if !ok {
		return 0, i.fault(InvalidAddress, a)
	}
	return addr, nil
}

func (i *Instance) load(p Parameter) (Cell, error) {
	if p.Mode == ImmediateMode {
		return p.Value, nil
	}
	addr, err := i.address(p)
	if err != nil {
		return Cell{}, err
	}
	return i.mem.Read(addr), nil
}

func (i *Instance) store(p Parameter, v Cell) error {
	addr, err := i.address(p)
	if err != nil {
		return err
	}
	i.mem.Write(addr, v)
	return nil
}

func (i *Instance) receive(ctx context.Context, poll bool) (Cell, bool, error) {
	if poll {
		if r, ok := i.input.(TryCellReader); ok {
			return r.TryReadCell()
		}
	}
	v, err := i.input.ReadCell(ctx)
	return v, err == nil, err
}

func (i *Instance) traceInstruction(in Instruction, valid bool) {
	s := "data " + in.Raw.String()
	if valid {
		s = in.String()
	}
	fmt.Fprintf(i.trace, "ip=%-5d rb=%-5v | %s\n", i.ip, i.rb, s)
}

// step executes a single instruction. If poll is true and the input source
// supports it, IN instructions do not block and leave the machine in the
// Blocked state when no input is available.
func (i *Instance) step(ctx context.Context, poll bool) (State, error) {
	in, ok := Decode(i.ip, i.mem)
	if i.trace != nil {
		i.traceInstruction(in, ok)
	}
	if !ok {
		return Faulted, i.fault(IllegalOpcode, in.Raw)
	}
	// the address following the instruction must be representable.
	if n := in.Len(); in.Op != OpHalt && i.ip > math.MaxUint64-n {
		return Faulted, i.fault(InvalidAddress, addressCell(i.ip).Add(CellOf(int64(n))))
	}
	a, b, c := in.Params[0], in.Params[1], in.Params[2]
	switch in.Op {
	case OpAdd, OpMul, OpLt, OpEq:
		x, err := i.load(a)
		if err != nil {
			return Faulted, err
		}
		y, err := i.load(b)
		if err != nil {
			return Faulted, err
		}
		var r Cell
		switch in.Op {
		case OpAdd:
			r = x.Add(y)
		case OpMul:
			r = x.Mul(y)
		case OpLt:
			if x.Cmp(y) < 0 {
				r = one
			}
		case OpEq:
			if x == y {
				r = one
			}
		}
		if err = i.store(c, r); err != nil {
			return Faulted, err
		}
		i.ip += 4
	case OpIn:
		// check the target before consuming any input
		addr, err := i.address(a)
		if err != nil {
			return Faulted, err
		}
		v, ok, err := i.receive(ctx, poll)
		if err != nil {
			i.state = Blocked
			return Blocked, errors.Wrapf(err, "IN @ip=%d", i.ip)
		}
		if !ok {
			i.state = Blocked
			return Blocked, nil
		}
		i.mem.Write(addr, v)
		i.ip += 2
	case OpOut:
		v, err := i.load(a)
		if err != nil {
			return Faulted, err
		}
		if err = i.output.WriteCell(v); err != nil {
			return i.state, errors.Wrapf(err, "OUT @ip=%d", i.ip)
		}
		i.last, i.hasLast = v, true
		i.ip += 2
	case OpJnz, OpJz:
		x, err := i.load(a)
		if err != nil {
			return Faulted, err
		}
		if x.IsZero() != (in.Op == OpJnz) {
			t, err := i.load(b)
			if err != nil {
				return Faulted, err
			}
			addr, ok := t.Address()
			if !ok {
				return Faulted, i.fault(InvalidAddress, t)
			}
			i.ip = addr
		} else {
			i.ip += 3
		}
	case OpArb:
		x, err := i.load(a)
		if err != nil {
			return Faulted, err
		}
		i.rb = i.rb.Add(x)
		i.ip += 2
	case OpHalt:
		i.insCount++
		i.state = Halted
		i.closeOutput()
		return Halted, nil
	}
	i.insCount++
	i.state = Running
	return Running, nil
}

// Step executes a single instruction and returns the resulting state.
//
// If the machine's input supports polling (like a Port) and no input is
// available, Step returns Blocked without executing anything; the IN
// instruction will be retried by the next call. Other input sources block
// until a value is available.
//
// Calling Step on a Halted or Faulted machine does nothing and returns the
// current state and fault, if any.
func (i *Instance) Step() (State, error) {
	if i.state.Terminal() {
		return i.state, i.err
	}
	return i.step(context.Background(), true)
}

// Run runs the machine until it halts or faults. See RunContext.
func (i *Instance) Run() (State, error) {
	return i.RunContext(context.Background())
}

// RunContext runs the machine until it reaches a terminal state, an I/O error
// occurs or ctx is done. IN instructions block until input is available.
//
// If the machine faults, the returned error's cause is a *Fault. If the input
// source is exhausted, the machine is left in the Blocked state and the
// error's cause is the one returned by the source (ErrPortClosed for ports,
// io.EOF for readers), which is a normal exit condition in most use cases.
func (i *Instance) RunContext(ctx context.Context) (st State, err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				st, err = i.state, errors.Wrapf(e, "Recovered error @ip=%d", i.ip)
			default:
				panic(e)
			}
		}
	}()
	done := ctx.Done()
	for n := 0; !i.state.Terminal(); n++ {
		if done != nil && n%ctxCheckInterval == 0 {
			select {
			case <-done:
				return i.state, errors.Wrap(ctx.Err(), "run")
			default:
			}
		}
		if st, err = i.step(ctx, false); err != nil {
			return st, err
		}
	}
	return i.state, i.err
}
