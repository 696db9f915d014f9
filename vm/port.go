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
	"sync"

	"github.com/pkg/errors"
)

// Port is an unbounded FIFO of cells with one producer and one consumer. It
// is safe for concurrent use by one sending and one receiving goroutine.
//
// Port implements both CellReader and CellWriter so it can be wired as the
// output of one machine and the input of another. Ports must be created with
// NewPort.
type Port struct {
	mu     sync.Mutex
	queue  []Cell
	closed bool
	ready  chan struct{}
}

// NewPort returns a new Port with the given values already queued.
func NewPort(values ...Cell) *Port {
	q := make([]Cell, len(values))
	copy(q, values)
	return &Port{queue: q, ready: make(chan struct{}, 1)}
}

func (p *Port) signal() {
	select {
	case p.ready <- struct{}{}:
	default:
	}
}

// Send enqueues v. It never blocks. Sending on a closed port returns
// ErrPortClosed.
func (p *Port) Send(v Cell) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrPortClosed
	}
	p.queue = append(p.queue, v)
	p.mu.Unlock()
	p.signal()
	return nil
}

// Close closes the port. Queued values can still be received. Close is
// idempotent.
func (p *Port) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.signal()
	return nil
}

// Len returns the number of queued values.
func (p *Port) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// TryReceive returns the next queued value, if any. ok is false if the queue
// is empty. err is ErrPortClosed if the queue is empty and the port closed.
func (p *Port) TryReceive() (v Cell, ok bool, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.queue) > 0 {
		v = p.queue[0]
		p.queue = p.queue[1:]
		return v, true, nil
	}
	if p.closed {
		return Cell{}, false, ErrPortClosed
	}
	return Cell{}, false, nil
}

// Receive blocks until a value is available and returns it. It returns
// ErrPortClosed once the port is closed and drained.
func (p *Port) Receive() (Cell, error) {
	return p.ReceiveContext(context.Background())
}

// ReceiveContext is like Receive but gives up when ctx is done.
func (p *Port) ReceiveContext(ctx context.Context) (Cell, error) {
	for {
		v, ok, err := p.TryReceive()
		if ok || err != nil {
			return v, err
		}
		select {
		case <-p.ready:
		case <-ctx.Done():
			return Cell{}, errors.Wrap(ctx.Err(), "receive")
		}
	}
}

// ReadCell implements CellReader.
func (p *Port) ReadCell(ctx context.Context) (Cell, error) { return p.ReceiveContext(ctx) }

// TryReadCell implements TryCellReader.
func (p *Port) TryReadCell() (Cell, bool, error) { return p.TryReceive() }

// WriteCell implements CellWriter.
func (p *Port) WriteCell(v Cell) error { return p.Send(v) }
