// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-pass-shell/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func msg(name, payload string) models.Message {
	m := models.Message{Name: name}
	if payload != "" {
		m.Payload = json.RawMessage(payload)
	}
	return m
}

func TestCodec_Decode_KnownNames(t *testing.T) {
	c := NewCodec("account")

	tests := []struct {
		name string
		in   models.Message
		want Event
	}{
		{"error", msg("error", `"boom"`), ErrorEvent{Text: "boom"}},
		{"indexed index", msg("indexed", `"index"`), Indexed{WireName: "indexed", Mode: models.AuthModeIndex}},
		{"index.show login", msg("index.show", `"login"`), Indexed{WireName: "index.show", Mode: models.AuthModeLogin}},
		{"logged.in", msg("logged.in", ""), LoggedIn{WireName: "logged.in"}},
		{"index.logged.in", msg("index.logged.in", ""), LoggedIn{WireName: "index.logged.in"}},
		{"logged.out", msg("logged.out", ""), LoggedOut{}},
		{"signed.up", msg("signed.up", ""), SignedUp{WireName: "signed.up"}},
		{"index.signed.up", msg("index.signed.up", ""), SignedUp{WireName: "index.signed.up"}},
		{"account.added", msg("account.added", `"ok"`), ResourceAdded{Resource: "account", Text: "ok"}},
		{"account.opened", msg("account.opened", ""), ResourceOpened{Resource: "account"}},
		{
			"account.listed",
			msg("account.listed", `["a@x.com","b@x.com"]`),
			ResourceListed{Resource: "account", Items: []models.Resource{{Addr: "a@x.com"}, {Addr: "b@x.com"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Decode(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in.Name, got.Name())
		})
	}
}

func TestCodec_Decode_UnknownNames(t *testing.T) {
	c := NewCodec("account")

	for _, name := range []string{
		"",
		"whatever",
		"account",
		"account.",
		".added",
		"account.deleted",
		"account.added.twice",
		"email.added",
		"email.listed",
	} {
		t.Run(name, func(t *testing.T) {
			ev := c.Decode(msg(name, `"x"`))
			unknown, ok := ev.(Unknown)
			require.True(t, ok, "expected Unknown, got %T", ev)
			assert.Equal(t, name, unknown.WireName)
			assert.Equal(t, json.RawMessage(`"x"`), unknown.Payload)
		})
	}
}

func TestCodec_Decode_IndexedFallsBackToSignUp(t *testing.T) {
	c := NewCodec("account")

	for _, payload := range []string{`"signup"`, `"signup-or-anything-else"`, `""`, `null`, ``, `42`, `{"a":1}`, `["login"]`, `"LOGIN"`} {
		t.Run(payload, func(t *testing.T) {
			ev, ok := c.Decode(msg("indexed", payload)).(Indexed)
			require.True(t, ok)
			assert.Equal(t, models.AuthModeSignUp, ev.Mode)
		})
	}
}

func TestCodec_Decode_ListedPayloadShapes(t *testing.T) {
	c := NewCodec("email")

	tests := []struct {
		name    string
		payload string
		want    []models.Resource
	}{
		{"absent", ``, []models.Resource{}},
		{"null", `null`, []models.Resource{}},
		{"padded null", "  null  ", []models.Resource{}},
		{"empty array", `[]`, []models.Resource{}},
		{"string", `"nope"`, []models.Resource{}},
		{"broken json", `[1,`, []models.Resource{}},
		{
			"account objects",
			`[{"addr":"a@x.com","auth_url":"http://s/oauth?account=a@x.com"},{"addr":"b@x.com"}]`,
			[]models.Resource{{Addr: "a@x.com", AuthURL: "http://s/oauth?account=a@x.com"}, {Addr: "b@x.com"}},
		},
		{
			"mixed with junk",
			`["a@x.com", null, 7, {"addr": 5}, {"addr":"b@x.com"}]`,
			[]models.Resource{{Addr: "a@x.com"}, {Addr: "b@x.com"}},
		},
		{
			"emails object",
			`{"emails":["a@x.com","b@x.com"],"google_auth_url":"http://g"}`,
			[]models.Resource{{Addr: "a@x.com", AuthURL: "http://g"}, {Addr: "b@x.com", AuthURL: "http://g"}},
		},
		{"emails object without emails", `{"google_auth_url":"http://g"}`, []models.Resource{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := c.Decode(msg("email.listed", tt.payload)).(ResourceListed)
			require.True(t, ok)
			require.NotNil(t, ev.Items)
			assert.Equal(t, tt.want, ev.Items)
		})
	}
}

func TestCodec_Decode_TextPayloads(t *testing.T) {
	c := NewCodec("account")

	tests := []struct {
		payload string
		want    string
	}{
		{``, ""},
		{`null`, ""},
		{" null\n", ""},
		{`"  spaced  "`, "  spaced  "},
		{`404`, "404"},
		{`true`, "true"},
		{`{"message":"x"}`, ""},
		{`["x"]`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.payload, func(t *testing.T) {
			ev, ok := c.Decode(msg("error", tt.payload)).(ErrorEvent)
			require.True(t, ok)
			assert.Equal(t, tt.want, ev.Text)
		})
	}
}

func TestOpenPayload_KeyedByResource(t *testing.T) {
	raw, err := json.Marshal(OpenPayload("account", "a@x.com", "secret"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"account":"a@x.com","password":"secret"}`, string(raw))
}
