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
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"unicode"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/pipeline"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

type cellList []vm.Cell

func (l *cellList) String() string { return fmt.Sprint([]vm.Cell(*l)) }
func (l *cellList) Set(s string) error {
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || unicode.IsSpace(r) }) {
		c, err := vm.ParseCell(f)
		if err != nil {
			return err
		}
		*l = append(*l, c)
	}
	return nil
}
func (l *cellList) Get() interface{} { return *l }

type storageFlag vm.StorageKind

func (s *storageFlag) String() string { return vm.StorageKind(*s).String() }
func (s *storageFlag) Set(v string) error {
	k, err := vm.ParseStorageKind(v)
	if err != nil {
		return err
	}
	*s = storageFlag(k)
	return nil
}
func (s *storageFlag) Get() interface{} { return vm.StorageKind(*s) }

var (
	debug    bool
	dump     bool
	trace    bool
	disasm   bool
	asmSrc   bool
	printOut bool
	ring     bool
	search   bool
	storage  = storageFlag(vm.Linear)
	input    cellList
	phases   cellList
)

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		fmt.Fprintf(os.Stderr, "State: %v, IP: %d (%v), RB: %v, Instructions: %d\n",
			i.State(), i.IP(), i.Read(i.IP()), i.RelativeBase(), i.InstructionCount())
	}
	os.Exit(1)
}

func load(name string) (vm.Program, error) {
	if !asmSrc {
		return vm.Load(name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	return asm.Assemble(name, bufio.NewReader(f))
}

func defaultPhases() []vm.Cell {
	if ring {
		return vm.Cells(5, 6, 7, 8, 9)
	}
	return vm.Cells(0, 1, 2, 3, 4)
}

func runPipeline(ctx context.Context, prog vm.Program, w io.Writer) error {
	topology := pipeline.Chain
	if ring {
		topology = pipeline.Ring
	}
	opts := []vm.Option{vm.Storage(vm.StorageKind(storage))}
	if search {
		if len(phases) == 0 {
			phases = defaultPhases()
		}
		r, err := pipeline.Search(ctx, prog, phases, topology, opts...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%v %v\n", r.Signal, r.Phases)
		return errors.Wrap(err, "write failed")
	}
	p, err := pipeline.New(prog, phases, topology, opts...)
	if err != nil {
		return err
	}
	var sig vm.Cell
	if len(input) > 0 {
		sig = input[0]
	}
	v, err := p.Run(ctx, sig)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, v)
	return errors.Wrap(err, "write failed")
}

func runMachine(ctx context.Context, prog vm.Program, stdout *bufio.Writer) (*vm.Instance, error) {
	var (
		in     vm.CellReader
		prefix string
	)
	if isTerminal(os.Stdin) {
		lr := newLinerReader("? ")
		defer lr.Close()
		in = lr
	} else {
		in = vm.NewPromptReader(bufio.NewReader(os.Stdin), nil, "")
	}
	if isTerminal(os.Stdout) {
		prefix = "> "
	}
	if len(input) > 0 {
		seed := vm.NewPort(input...)
		seed.Close()
		in = vm.MultiReader(seed, in)
	}
	opts := []vm.Option{
		vm.Input(in),
		vm.Output(vm.NewWriterSink(stdout, prefix)),
		vm.Storage(vm.StorageKind(storage)),
	}
	if trace {
		opts = append(opts, vm.Trace(os.Stderr))
	}
	i, err := vm.New(prog, opts...)
	if err != nil {
		return nil, err
	}
	_, err = i.RunContext(ctx)
	if errors.Cause(err) == io.EOF {
		err = nil
	}
	return i, err
}

func main() {
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		if err == nil && dump && i != nil {
			err = i.Dump(stdout)
			stdout.WriteByte('\n')
		}
		stdout.Flush()
		atExit(i, err)
	}()

	flag.Var(&input, "input", "comma separated `values` fed to the program before standard input")
	flag.Var(&phases, "phases", "run a pipeline of amplifiers with the given phase `settings`")
	flag.Var(&storage, "storage", "memory storage `kind`: linear or sparse")
	flag.BoolVar(&ring, "ring", false, "connect the pipeline in a feedback ring")
	flag.BoolVar(&search, "search", false, "search the phase permutation giving the highest signal")
	flag.BoolVar(&asmSrc, "asm", false, "program file is assembly source")
	flag.BoolVar(&printOut, "print", false, "print the program text and exit")
	flag.BoolVar(&disasm, "disasm", false, "disassemble the program and exit")
	flag.BoolVar(&trace, "trace", false, "trace executed instructions to stderr")
	flag.BoolVar(&dump, "dump", false, "dump memory upon exit")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		err = errors.New("missing program file name")
		return
	}

	var prog vm.Program
	if prog, err = load(flag.Arg(0)); err != nil {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case printOut:
		if _, err = prog.WriteTo(stdout); err == nil {
			err = stdout.WriteByte('\n')
		}
	case disasm:
		err = asm.DisassembleAll(prog, 0, stdout)
	case search || len(phases) > 0:
		err = runPipeline(ctx, prog, stdout)
	default:
		i, err = runMachine(ctx, prog, stdout)
	}
}
