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

	"github.com/pkg/errors"
)

// FaultKind identifies the program error that faulted a machine.
type FaultKind int

// Fault kinds.
const (
	// IllegalOpcode: the cell at the instruction pointer is not a valid
	// instruction (unknown opcode or parameter mode).
	IllegalOpcode FaultKind = iota + 1
	// InvalidWriteTarget: an instruction attempted to write through an
	// immediate mode parameter.
	InvalidWriteTarget
	// InvalidAddress: a resolved address or jump target is negative or
	// too large.
	InvalidAddress
)

func (k FaultKind) String() string {
	switch k {
	case IllegalOpcode:
		return "illegal opcode"
	case InvalidWriteTarget:
		return "invalid write target"
	case InvalidAddress:
		return "invalid address"
	}
	return fmt.Sprintf("fault(%d)", int(k))
}

// Fault is the error reported by a machine in the Faulted state. Faults
// signal a malformed program and are never recoverable.
type Fault struct {
	Kind  FaultKind
	IP    uint64 // address of the faulting instruction
	Value Cell   // offending raw value
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%v %v @ip=%d", f.Kind, f.Value, f.IP)
}

// IsFault returns the Fault at the root of err, if any.
func IsFault(err error) (*Fault, bool) {
	f, ok := errors.Cause(err).(*Fault)
	return f, ok
}

var (
	// ErrPortClosed is returned when receiving from a Port whose producer has
	// closed it and whose queue is drained. In a pipeline this is the normal
	// end of the network.
	ErrPortClosed = errors.New("port closed")

	// ErrNoInput is returned by machines that execute an IN instruction
	// without an input source.
	ErrNoInput = errors.New("no input source")
)
