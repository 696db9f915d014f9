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
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// Memory is the VM's addressable store. Reading an address that has never
// been written returns 0. Writing to any address succeeds and grows the
// store as needed.
type Memory interface {
	Addressable
	Write(addr uint64, v Cell)
	// Len returns the high-water mark: one past the highest address that
	// has been loaded or written.
	Len() uint64
	// Dense returns the length of the contiguous part of the store, starting
	// at address 0.
	Dense() uint64
	// Scattered returns, in increasing order, the addresses of the cells
	// stored outside of the contiguous part.
	Scattered() []uint64
	// Clone returns a deep copy.
	Clone() Memory
}

// StorageKind selects the Memory implementation used by an Instance.
type StorageKind int

// Storage strategies.
const (
	// Linear uses a growable, zero-filled slice. Writes beyond
	// MaxLinearAddress spill over to a map.
	Linear StorageKind = iota
	// Sparse keeps the program in a slice and every other written cell in a
	// map.
	Sparse
)

// MaxLinearAddress is the highest address a Linear store will grow its slice
// to.
const MaxLinearAddress = 1<<22 - 1

var storageNames = [...]string{"linear", "sparse"}

func (k StorageKind) String() string {
	if k >= 0 && int(k) < len(storageNames) {
		return storageNames[k]
	}
	return "storage(" + strconv.Itoa(int(k)) + ")"
}

// ParseStorageKind returns the StorageKind with the given name.
func ParseStorageKind(s string) (StorageKind, error) {
	for k, n := range storageNames {
		if n == s {
			return StorageKind(k), nil
		}
	}
	return 0, errors.Errorf("unknown storage kind %q", s)
}

// NewMemory returns a new Memory of the requested kind, initialized with a copy
// of prog.
func NewMemory(kind StorageKind, prog Program) (Memory, error) {
	switch kind {
	case Linear:
		return &linearMemory{cells: prog.Clone()}, nil
	case Sparse:
		return &sparseMemory{base: prog.Clone(), top: uint64(len(prog))}, nil
	}
	return nil, errors.Errorf("unsupported storage kind %v", kind)
}

type linearMemory struct {
	cells []Cell
	spill map[uint64]Cell
	top   uint64
}

func (m *linearMemory) Read(addr uint64) Cell {
	if addr < uint64(len(m.cells)) {
		return m.cells[addr]
	}
	return m.spill[addr]
}

func (m *linearMemory) Write(addr uint64, v Cell) {
	if addr < uint64(len(m.cells)) {
		m.cells[addr] = v
		return
	}
	if addr > MaxLinearAddress {
		if m.spill == nil {
			m.spill = make(map[uint64]Cell)
		}
		m.spill[addr] = v
		if addr >= m.top {
			m.top = addr + 1
		}
		return
	}
	n := int(addr) + 1
	if n <= cap(m.cells) {
		m.cells = m.cells[:n]
	} else {
		c := 2 * cap(m.cells)
		if c < n {
			c = n
		}
		if c > MaxLinearAddress+1 {
			c = MaxLinearAddress + 1
		}
		t := make([]Cell, n, c)
		copy(t, m.cells)
		m.cells = t
	}
	m.cells[addr] = v
}

func (m *linearMemory) Len() uint64 {
	if l := uint64(len(m.cells)); l > m.top {
		return l
	}
	return m.top
}

func (m *linearMemory) Dense() uint64 { return uint64(len(m.cells)) }

func (m *linearMemory) Scattered() []uint64 { return sortedKeys(m.spill) }

func (m *linearMemory) Clone() Memory {
	c := &linearMemory{cells: make([]Cell, len(m.cells)), top: m.top}
	copy(c.cells, m.cells)
	if m.spill != nil {
		c.spill = make(map[uint64]Cell, len(m.spill))
		for k, v := range m.spill {
			c.spill[k] = v
		}
	}
	return c
}

type sparseMemory struct {
	base  []Cell
	cells map[uint64]Cell
	top   uint64
}

func (m *sparseMemory) Read(addr uint64) Cell {
	if addr < uint64(len(m.base)) {
		return m.base[addr]
	}
	return m.cells[addr]
}

func (m *sparseMemory) Write(addr uint64, v Cell) {
	if addr < uint64(len(m.base)) {
		m.base[addr] = v
		return
	}
	if m.cells == nil {
		m.cells = make(map[uint64]Cell)
	}
	m.cells[addr] = v
	if addr >= m.top {
		m.top = addr + 1
	}
}

func (m *sparseMemory) Len() uint64 { return m.top }

func (m *sparseMemory) Dense() uint64 { return uint64(len(m.base)) }

func (m *sparseMemory) Scattered() []uint64 { return sortedKeys(m.cells) }

func (m *sparseMemory) Clone() Memory {
	c := &sparseMemory{base: make([]Cell, len(m.base)), top: m.top}
	copy(c.base, m.base)
	if m.cells != nil {
		c.cells = make(map[uint64]Cell, len(m.cells))
		for k, v := range m.cells {
			c.cells[k] = v
		}
	}
	return c
}

func sortedKeys(cells map[uint64]Cell) []uint64 {
	keys := make([]uint64, 0, len(cells))
	for k := range cells {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool { return keys[a] < keys[b] })
	return keys
}
