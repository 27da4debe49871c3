// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pass-shell/models"
)

// DefaultPipeBuffer is the channel capacity used when NewPipe gets a
// non-positive buffer size.
const DefaultPipeBuffer = 16

// Pipe is the client side of an in-memory message channel. The other side is
// an [Endpoint] held by the backend.
type Pipe struct {
	// in carries backend messages to the client.
	in <-chan models.Message
	// out carries client commands to the backend.
	out chan<- models.Message

	// queue holds sent commands until the pump hands them to out, so Send
	// never waits for the backend.
	queueMu sync.Mutex
	queue   []models.Message
	wake    chan struct{}

	done      chan struct{}
	closeOnce sync.Once

	ready    *readySignal
	handlers handlerSlot
}

// Endpoint is the backend side of a [Pipe].
type Endpoint struct {
	// Commands receives every message sent by the client.
	Commands <-chan models.Message

	events    chan<- models.Message
	done      <-chan struct{}
	closeOnce sync.Once
}

// NewPipe creates a connected Pipe and Endpoint pair.
func NewPipe(buffer int) (*Pipe, *Endpoint) {
	if buffer <= 0 {
		buffer = DefaultPipeBuffer
	}

	events := make(chan models.Message, buffer)
	commands := make(chan models.Message, buffer)
	done := make(chan struct{})

	pipe := &Pipe{
		in:    events,
		out:   commands,
		wake:  make(chan struct{}, 1),
		done:  done,
		ready: newReadySignal(),
	}
	endpoint := &Endpoint{
		Commands: commands,
		events:   events,
		done:     done,
	}

	return pipe, endpoint
}

// Ready implements [Transport].
func (p *Pipe) Ready() <-chan struct{} {
	return p.ready.ch
}

// OnMessage implements [Transport].
func (p *Pipe) OnMessage(h Handler) {
	p.handlers.set(h)
}

// Send implements [Transport].
func (p *Pipe) Send(name string, payload any) error {
	if !p.ready.fired() {
		return ErrNotReady
	}

	m, err := models.NewMessage(name, payload)
	if err != nil {
		return fmt.Errorf("marshal %q payload: %w", name, err)
	}

	select {
	case <-p.done:
		return ErrClosed
	default:
	}

	p.queueMu.Lock()
	p.queue = append(p.queue, m)
	p.queueMu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
	return nil
}

// Run implements [Transport]. The pipe becomes ready as soon as Run starts.
func (p *Pipe) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go p.pump()
	go p.handlers.watch(ctx)

	p.ready.fire()
	defer p.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-p.in:
			if !ok {
				return nil
			}
			p.handlers.deliver(m)
		}
	}
}

// pump moves queued commands to the endpoint in send order until the pipe
// is closed.
func (p *Pipe) pump() {
	for {
		select {
		case <-p.done:
			return
		case <-p.wake:
		}

		for {
			p.queueMu.Lock()
			if len(p.queue) == 0 {
				p.queueMu.Unlock()
				break
			}
			m := p.queue[0]
			p.queue = p.queue[1:]
			p.queueMu.Unlock()

			select {
			case <-p.done:
				return
			case p.out <- m:
			}
		}
	}
}

// Close stops the pipe. Further sends return ErrClosed.
func (p *Pipe) Close() {
	p.closeOnce.Do(func() { close(p.done) })
}

// Send delivers a message to the client.
func (e *Endpoint) Send(name string, payload any) error {
	m, err := models.NewMessage(name, payload)
	if err != nil {
		return fmt.Errorf("marshal %q payload: %w", name, err)
	}

	select {
	case <-e.done:
		return ErrClosed
	case e.events <- m:
		return nil
	}
}

// Close tells the client that the backend went away.
func (e *Endpoint) Close() {
	e.closeOnce.Do(func() { close(e.events) })
}
