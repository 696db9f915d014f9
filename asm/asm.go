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

package asm

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/db47h/intcode/internal/ngi"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
func Assemble(name string, r io.Reader) (vm.Program, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	src, err := parser.ParseString(name, string(b)+"\n")
	if err != nil {
		return nil, err
	}
	a := &assembler{labels: make(map[string]uint64)}
	if err = a.layout(src); err != nil {
		return nil, err
	}
	if err = a.encode(src); err != nil {
		return nil, err
	}
	return a.prog, nil
}

type assembler struct {
	labels map[string]uint64
	prog   vm.Program
}

func posError(pos lexer.Position, format string, args ...interface{}) error {
	return errors.Errorf("%s: %s", pos, fmt.Sprintf(format, args...))
}

func (s *statement) size() (int, error) {
	if s.Mnemonic == "data" {
		return len(s.Operands), nil
	}
	op, ok := vm.LookupOpcode(s.Mnemonic)
	if !ok {
		return 0, posError(s.Pos, "unknown mnemonic %q", s.Mnemonic)
	}
	if len(s.Operands) != op.Arity() {
		return 0, posError(s.Pos, "%s expects %d operands, got %d", s.Mnemonic, op.Arity(), len(s.Operands))
	}
	return 1 + op.Arity(), nil
}

// layout computes label addresses.
func (a *assembler) layout(src *source) error {
	var pc uint64
	for _, l := range src.Lines {
		if l.Label != nil {
			name := strings.TrimSuffix(*l.Label, ":")
			if _, ok := a.labels[name]; ok {
				return posError(l.Pos, "label redefinition: %s", name)
			}
			if _, ok := vm.LookupOpcode(name); ok || name == "data" || name == "rel" {
				return posError(l.Pos, "reserved label name: %s", name)
			}
			a.labels[name] = pc
		}
		if l.Stmt != nil {
			n, err := l.Stmt.size()
			if err != nil {
				return err
			}
			pc += uint64(n)
		}
	}
	return nil
}

func (a *assembler) value(pos lexer.Position, v *value) (vm.Cell, error) {
	if v.Int != nil {
		c, err := vm.ParseCell(*v.Int)
		if err != nil {
			return vm.Cell{}, posError(pos, "%v", err)
		}
		return c, nil
	}
	addr, ok := a.labels[*v.Label]
	if !ok {
		return vm.Cell{}, posError(pos, "undefined label %s", *v.Label)
	}
	return vm.CellOf(int64(addr)), nil
}

func (a *assembler) operand(o *operand) (vm.Parameter, error) {
	var (
		p vm.Parameter
		v *value
	)
	switch {
	case o.Relative != nil:
		p.Mode, v = vm.RelativeMode, o.Relative
	case o.Position != nil:
		p.Mode, v = vm.PositionMode, o.Position
	default:
		p.Mode, v = vm.ImmediateMode, o.Value
	}
	var err error
	p.Value, err = a.value(o.Pos, v)
	return p, err
}

var modeMul = [3]int64{100, 1000, 10000}

func (a *assembler) encode(src *source) error {
	for _, l := range src.Lines {
		s := l.Stmt
		if s == nil {
			continue
		}
		if s.Mnemonic == "data" {
			for _, o := range s.Operands {
				p, err := a.operand(o)
				if err != nil {
					return err
				}
				if p.Mode != vm.ImmediateMode {
					return posError(o.Pos, "data operands must be immediate values")
				}
				a.prog = append(a.prog, p.Value)
			}
			continue
		}
		op, _ := vm.LookupOpcode(s.Mnemonic)
		raw := int64(op)
		params := make([]vm.Cell, len(s.Operands))
		for k, o := range s.Operands {
			p, err := a.operand(o)
			if err != nil {
				return err
			}
			if p.Mode == vm.ImmediateMode && op.Writes() && k == len(s.Operands)-1 {
				return posError(o.Pos, "invalid write target for %s: %v", s.Mnemonic, p)
			}
			raw += int64(p.Mode) * modeMul[k]
			params[k] = p.Value
		}
		a.prog = append(a.prog, vm.CellOf(raw))
		a.prog = append(a.prog, params...)
	}
	return nil
}

// Disassemble writes a disassembly of the cells in the given program at
// position pc to the specified io.Writer and returns the position of the next
// instruction and any write error. Cells that do not decode to a valid
// instruction are written as data.
func Disassemble(prog vm.Program, pc int, w io.Writer) (next int, err error) {
	ew := ngi.NewErrWriter(w)
	in, ok := vm.Decode(uint64(pc), prog)
	if !ok || pc+int(in.Len()) > len(prog) {
		ew.WriteString("data ")
		ew.WriteString(prog.Read(uint64(pc)).String())
		return pc + 1, ew.Err
	}
	ew.WriteString(in.String())
	return pc + int(in.Len()), ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given program to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (prog[0]). It will return any write error.
func DisassembleAll(prog vm.Program, base int, w io.Writer) error {
	ew := ngi.NewErrWriter(w)
	for pc := 0; pc < len(prog); {
		fmt.Fprintf(ew, "% 6d\t", base+pc)
		pc, _ = Disassemble(prog, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
