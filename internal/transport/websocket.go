// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-pass-shell/internal/config"
	"github.com/MKhiriev/go-pass-shell/internal/logger"
	"github.com/MKhiriev/go-pass-shell/models"
	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
)

// WebSocket is a [Transport] for shells that expose their message channel as
// a websocket endpoint. Each message travels as one JSON text frame
// {"name": ..., "payload": ...}.
type WebSocket struct {
	url    string
	dialer ws.Dialer
	log    *logger.Logger

	mu     sync.Mutex
	conn   net.Conn
	closed atomic.Bool

	ready    *readySignal
	handlers handlerSlot
}

// NewWebSocket validates cfg.URL and returns an unconnected transport. The
// connection is opened by Run.
func NewWebSocket(cfg config.ClientTransport, log *logger.Logger) (*WebSocket, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if log == nil {
		log = logger.Nop()
	}

	return &WebSocket{
		url:    cfg.URL,
		dialer: ws.Dialer{Timeout: cfg.DialTimeout},
		log:    log,
		ready:  newReadySignal(),
	}, nil
}

// Ready implements [Transport]. It fires after the websocket handshake.
func (w *WebSocket) Ready() <-chan struct{} {
	return w.ready.ch
}

// OnMessage implements [Transport].
func (w *WebSocket) OnMessage(h Handler) {
	w.handlers.set(h)
}

// Send implements [Transport].
func (w *WebSocket) Send(name string, payload any) error {
	if !w.ready.fired() {
		return ErrNotReady
	}
	if w.closed.Load() {
		return ErrClosed
	}

	m, err := models.NewMessage(name, payload)
	if err != nil {
		return fmt.Errorf("marshal %q payload: %w", name, err)
	}
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal %q message: %w", name, err)
	}

	// one write per frame
	var frame bytes.Buffer
	if err = wsutil.WriteClientText(&frame, data); err != nil {
		return fmt.Errorf("build %q frame: %w", name, err)
	}

	if _, err = w.write(frame.Bytes()); err != nil {
		return fmt.Errorf("send %q: %w", name, err)
	}
	return nil
}

// Run implements [Transport]. It dials the shell, fires the ready signal and
// delivers inbound text frames until ctx is cancelled or the shell closes the
// connection.
func (w *WebSocket) Run(ctx context.Context) error {
	conn, br, _, err := w.dialer.Dial(ctx, w.url)
	if err != nil {
		return fmt.Errorf("dial %s: %w", w.url, err)
	}

	w.mu.Lock()
	w.conn = conn
	w.mu.Unlock()
	defer w.shutdown()

	rw := struct {
		io.Reader
		io.Writer
	}{handshakeRemainder(br, conn), writerFunc(w.write)}

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	go w.handlers.watch(watchCtx)

	w.ready.fire()
	w.log.Debug().Str("url", w.url).Msg("shell channel connected")

	for {
		data, op, err := wsutil.ReadServerData(rw)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			var closedErr wsutil.ClosedError
			if errors.As(err, &closedErr) || errors.Is(err, io.EOF) {
				w.log.Info().Msg("shell channel closed by peer")
				return nil
			}
			return fmt.Errorf("read frame: %w", err)
		}
		if op != ws.OpText {
			continue
		}

		var m models.Message
		if err = json.Unmarshal(data, &m); err != nil {
			w.log.Warn().Err(err).Msg("dropping undecodable frame")
			continue
		}
		w.handlers.deliver(m)
	}
}

func (w *WebSocket) write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.conn == nil {
		return 0, ErrNotReady
	}
	return w.conn.Write(p)
}

func (w *WebSocket) shutdown() {
	w.closed.Store(true)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.conn != nil {
		_ = w.conn.Close()
	}
}

// handshakeRemainder returns a reader over the bytes the dialer buffered past
// the handshake followed by conn. br goes back to the gobwas pool.
func handshakeRemainder(br *bufio.Reader, conn io.Reader) io.Reader {
	if br == nil {
		return conn
	}

	buffered := make([]byte, br.Buffered())
	n, _ := io.ReadFull(br, buffered)
	ws.PutReader(br)

	return io.MultiReader(bytes.NewReader(buffered[:n]), conn)
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) {
	return f(p)
}
