// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-shell/internal/config"
	"github.com/MKhiriev/go-pass-shell/internal/logger"
	"github.com/MKhiriev/go-pass-shell/models"
	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newShellServer starts a websocket server that plays the embedding shell.
// Every frame received from the client is pushed to the returned channel and
// every message sent on push is written to the client.
func newShellServer(t *testing.T) (url string, received <-chan models.Message, push chan<- models.Message) {
	t.Helper()

	recv := make(chan models.Message, 8)
	out := make(chan models.Message, 8)

	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		conn, _, _, err := ws.UpgradeHTTP(req, rw)
		if err != nil {
			return
		}
		defer conn.Close()

		go func() {
			for m := range out {
				data, _ := json.Marshal(m)
				if err := wsutil.WriteServerText(conn, data); err != nil {
					return
				}
			}
		}()

		for {
			data, op, err := wsutil.ReadClientData(conn)
			if err != nil {
				return
			}
			if op != ws.OpText {
				continue
			}
			var m models.Message
			if err := json.Unmarshal(data, &m); err == nil {
				recv <- m
			}
		}
	}))
	t.Cleanup(func() {
		close(out)
		srv.Close()
	})

	return "ws" + strings.TrimPrefix(srv.URL, "http"), recv, out
}

func newTestWebSocket(t *testing.T, url string) *WebSocket {
	t.Helper()
	w, err := NewWebSocket(config.ClientTransport{URL: url, DialTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return w
}

func TestNewWebSocket_InvalidURL(t *testing.T) {
	for _, u := range []string{"http://localhost:1", "localhost:1", "://bad"} {
		_, err := NewWebSocket(config.ClientTransport{URL: u}, logger.Nop())
		assert.ErrorIs(t, err, ErrInvalidURL, u)
	}
}

func TestWebSocket_SendBeforeReady(t *testing.T) {
	w := newTestWebSocket(t, "ws://127.0.0.1:1/")
	assert.ErrorIs(t, w.Send("index", nil), ErrNotReady)
}

func TestWebSocket_RoundTrip(t *testing.T) {
	url, received, push := newShellServer(t)
	w := newTestWebSocket(t, url)

	inbound := make(chan models.Message, 4)
	w.OnMessage(func(m models.Message) { inbound <- m })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	select {
	case <-w.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("websocket did not become ready")
	}

	require.NoError(t, w.Send("account.add", "foo"))
	select {
	case m := <-received:
		assert.Equal(t, "account.add", m.Name)
		assert.Equal(t, json.RawMessage(`"foo"`), m.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not receive the command")
	}

	push <- models.Message{Name: "account.listed", Payload: json.RawMessage(`["a@x.com"]`)}
	select {
	case m := <-inbound:
		assert.Equal(t, "account.listed", m.Name)
		assert.JSONEq(t, `["a@x.com"]`, string(m.Payload))
	case <-time.After(2 * time.Second):
		t.Fatal("client did not receive the event")
	}

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.ErrorIs(t, w.Send("index", nil), ErrClosed)
}

func TestWebSocket_DialFailure(t *testing.T) {
	w := newTestWebSocket(t, "ws://127.0.0.1:1/")

	err := w.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, w.Send("index", nil), ErrNotReady)
}

func TestHandshakeRemainder(t *testing.T) {
	t.Run("no buffered reader", func(t *testing.T) {
		conn := strings.NewReader("frame")
		assert.Equal(t, io.Reader(conn), handshakeRemainder(nil, conn))
	})

	t.Run("buffered bytes come first", func(t *testing.T) {
		br := bufio.NewReader(strings.NewReader("frame-1"))
		_, err := br.Peek(1)
		require.NoError(t, err)

		got, err := io.ReadAll(handshakeRemainder(br, strings.NewReader("|frame-2")))
		require.NoError(t, err)
		assert.Equal(t, "frame-1|frame-2", string(got))
	})
}

func TestWebSocket_HoldsMessagesUntilHandler(t *testing.T) {
	url, _, push := newShellServer(t)
	w := newTestWebSocket(t, url)

	push <- models.Message{Name: "indexed", Payload: json.RawMessage(`"login"`)}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	select {
	case <-w.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("websocket did not become ready")
	}
	time.Sleep(50 * time.Millisecond)

	inbound := make(chan models.Message, 1)
	w.OnMessage(func(m models.Message) { inbound <- m })

	select {
	case m := <-inbound:
		assert.Equal(t, "indexed", m.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("message received before OnMessage was lost")
	}
}
