// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package transport adapts the embedding runtime's message channel to the
// shell front-end.
//
// A [Transport] fires a one-time ready signal, after which named messages may
// be sent. Inbound messages are handed to a single registered [Handler], one
// at a time and in delivery order. There is no retry, timeout or
// backpressure: the channel is assumed reliable and ordered, and losing it
// ends the process. [Pipe] sends never wait for the endpoint.
//
// Two implementations are provided: [WebSocket], a client for shells that
// expose the channel as a websocket, and [Pipe], an in-memory channel pair
// for shells embedded in the same process.
package transport

import (
	"context"

	"github.com/MKhiriev/go-pass-shell/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Handler receives inbound messages.
type Handler func(models.Message)

// Transport is the client side of the shell message channel.
type Transport interface {
	// Ready returns a channel that is closed once, when sending becomes
	// permitted.
	Ready() <-chan struct{}

	// Send marshals payload (nil for none) and sends the named message.
	// Sending before Ready has fired returns ErrNotReady.
	Send(name string, payload any) error

	// OnMessage registers the inbound handler. A later call replaces the
	// previous handler. Messages received before the first handler is
	// registered are held and delivered to it in order.
	OnMessage(h Handler)

	// Run delivers inbound messages until ctx is cancelled or the channel is
	// closed by the peer. It returns nil on cancellation.
	Run(ctx context.Context) error
}
