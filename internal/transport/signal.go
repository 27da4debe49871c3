// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-pass-shell/models"
)

// readySignal is a channel closed exactly once.
type readySignal struct {
	once sync.Once
	ch   chan struct{}
}

func newReadySignal() *readySignal {
	return &readySignal{ch: make(chan struct{})}
}

func (r *readySignal) fire() {
	r.once.Do(func() { close(r.ch) })
}

func (r *readySignal) fired() bool {
	select {
	case <-r.ch:
		return true
	default:
		return false
	}
}

// handlerSlot holds the single registered inbound handler. Messages that
// arrive while no handler is set are kept and handed, in order, to the next
// handler before anything newer.
type handlerSlot struct {
	mu      sync.Mutex
	h       Handler
	pending []models.Message
	bound   chan struct{}

	// calls serialises handler invocations between deliver and flush.
	calls sync.Mutex
}

func (s *handlerSlot) set(h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.h = h
	if h == nil {
		return
	}
	if s.bound == nil {
		s.bound = make(chan struct{})
	}
	select {
	case <-s.bound:
	default:
		close(s.bound)
	}
}

// boundCh is closed once a non-nil handler has been set.
func (s *handlerSlot) boundCh() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bound == nil {
		s.bound = make(chan struct{})
	}
	return s.bound
}

// take returns the current handler and, when there is one, the held
// messages. Without a handler m (if given) is held instead.
func (s *handlerSlot) take(m *models.Message) (Handler, []models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.h == nil {
		if m != nil {
			s.pending = append(s.pending, *m)
		}
		return nil, nil
	}

	backlog := s.pending
	s.pending = nil
	return s.h, backlog
}

func (s *handlerSlot) deliver(m models.Message) {
	s.calls.Lock()
	defer s.calls.Unlock()

	h, backlog := s.take(&m)
	if h == nil {
		return
	}
	for _, held := range backlog {
		h(held)
	}
	h(m)
}

// flush hands held messages to the current handler.
func (s *handlerSlot) flush() {
	s.calls.Lock()
	defer s.calls.Unlock()

	h, backlog := s.take(nil)
	for _, held := range backlog {
		h(held)
	}
}

// watch flushes held messages as soon as a handler is registered, so they
// do not wait for the next inbound message.
func (s *handlerSlot) watch(ctx context.Context) {
	select {
	case <-s.boundCh():
		s.flush()
	case <-ctx.Done():
	}
}
