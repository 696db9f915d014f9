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
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/db47h/intcode/internal/ngi"
)

// State is the execution state of a machine.
type State int

// Machine states. Halted and Faulted are terminal.
const (
	Running State = iota
	Blocked
	Halted
	Faulted
)

var stateNames = [...]string{"running", "blocked", "halted", "faulted"}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "state(" + strconv.Itoa(int(s)) + ")"
}

// Terminal reports whether s is Halted or Faulted.
func (s State) Terminal() bool { return s == Halted || s == Faulted }

// Instance represents an Intcode machine instance.
type Instance struct {
	mem      Memory
	ip       uint64
	rb       Cell
	state    State
	err      error
	last     Cell
	hasLast  bool
	insCount int64
	input    CellReader
	output   CellWriter
	trace    io.Writer
	storage  StorageKind
}

// Option interface
type Option func(*Instance) error

// Input sets the machine's input source.
func Input(r CellReader) Option {
	return func(i *Instance) error {
		if r == nil {
			r = noInput{}
		}
		i.input = r
		return nil
	}
}

// Output sets the machine's output sink. Regardless of the sink, the last
// value written is available from LastOutput.
func Output(w CellWriter) Option {
	return func(i *Instance) error {
		if w == nil {
			w = Discard
		}
		i.output = w
		return nil
	}
}

// InputPort wires p as the machine's input.
func InputPort(p *Port) Option { return Input(p) }

// OutputPort wires p as the machine's output. The port is closed when the
// machine halts or faults.
func OutputPort(p *Port) Option { return Output(p) }

// Prompt configures the machine to read input synchronously from r, writing
// prompt to w before each read. w may be nil.
func Prompt(r io.Reader, w io.Writer, prompt string) Option {
	return Input(NewPromptReader(r, w, prompt))
}

// Sink configures the machine to write each output value on its own line to
// w.
func Sink(w io.Writer) Option {
	return Output(NewWriterSink(w, ""))
}

// Storage selects the memory storage strategy. It must be set at creation
// time: setting it later has no effect on the current memory.
func Storage(kind StorageKind) Option {
	return func(i *Instance) error {
		i.storage = kind
		return nil
	}
}

// Trace enables tracing: each instruction is disassembled to w before
// execution, together with the instruction pointer and relative base.
//
// Each trace line is a single write to w. Writes from all machines the
// returned Option is applied to are serialized, so one Trace option can be
// shared by concurrently running machines.
func Trace(w io.Writer) Option {
	lw := &lockedWriter{w: w}
	return func(i *Instance) error {
		i.trace = lw
		return nil
	}
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (w *lockedWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w.Write(p)
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new machine instance loaded with a copy of prog. Unless
// configured otherwise with the Input and Output options, IN instructions fail
// with ErrNoInput and output values are discarded.
//
// Options will be set by calling SetOptions.
func New(prog Program, opts ...Option) (*Instance, error) {
	i := &Instance{
		input:  noInput{},
		output: Discard,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	mem, err := NewMemory(i.storage, prog)
	if err != nil {
		return nil, err
	}
	i.mem = mem
	return i, nil
}

// Clone returns a deep copy of the instance. The copy shares no memory with i
// and is not wired to any input or output; use SetOptions to wire it.
func (i *Instance) Clone() *Instance {
	c := *i
	c.mem = i.mem.Clone()
	c.input = noInput{}
	c.output = Discard
	return &c
}

// IP returns the instruction pointer.
func (i *Instance) IP() uint64 { return i.ip }

// RelativeBase returns the relative base register.
func (i *Instance) RelativeBase() Cell { return i.rb }

// State returns the current state.
func (i *Instance) State() State { return i.state }

// Err returns the fault that put the machine in the Faulted state, or nil.
func (i *Instance) Err() error { return i.err }

// LastOutput returns the last value written by an OUT instruction. ok is
// false if the machine has not produced any output yet.
func (i *Instance) LastOutput() (v Cell, ok bool) { return i.last, i.hasLast }

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 { return i.insCount }

// Memory returns the machine's memory. Writing to it while the machine is
// running is not safe.
func (i *Instance) Memory() Memory { return i.mem }

// Read returns the memory cell at addr.
func (i *Instance) Read(addr uint64) Cell { return i.mem.Read(addr) }

// Dump writes the machine's memory to w. The contiguous part of the store is
// written in program text form, followed by one "address:value" line for
// each cell stored outside of it.
func (i *Instance) Dump(w io.Writer) error {
	ew := ngi.NewErrWriter(w)
	ew.Join(int(i.mem.Dense()), ",", func(n int) fmt.Stringer {
		return i.mem.Read(uint64(n))
	})
	for _, addr := range i.mem.Scattered() {
		if ew.Err != nil {
			break
		}
		fmt.Fprintf(ew, "\n%d:%v", addr, i.mem.Read(addr))
	}
	return ew.Err
}
