// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	t.Run("nil payload", func(t *testing.T) {
		m, err := NewMessage("index", nil)
		require.NoError(t, err)
		assert.Equal(t, "index", m.Name)
		assert.False(t, m.HasPayload())
	})

	t.Run("marshalled payload", func(t *testing.T) {
		m, err := NewMessage("login", "secret")
		require.NoError(t, err)
		assert.JSONEq(t, `"secret"`, string(m.Payload))
		assert.True(t, m.HasPayload())
	})

	t.Run("unmarshalable payload", func(t *testing.T) {
		_, err := NewMessage("x", make(chan int))
		assert.Error(t, err)
	})

	t.Run("explicit null", func(t *testing.T) {
		m := Message{Name: "x", Payload: []byte("null")}
		assert.False(t, m.HasPayload())
	})

	t.Run("padded null", func(t *testing.T) {
		m := Message{Name: "x", Payload: []byte(" null\n")}
		assert.False(t, m.HasPayload())
	})
}

func TestParseAuthMode(t *testing.T) {
	tests := []struct {
		in   string
		want AuthMode
	}{
		{"index", AuthModeIndex},
		{"login", AuthModeLogin},
		{"signup", AuthModeSignUp},
		{"", AuthModeSignUp},
		{"LOGIN", AuthModeSignUp},
		{"whatever", AuthModeSignUp},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAuthMode(tt.in))
		})
	}
}

func TestResourceListView_CopiesItems(t *testing.T) {
	items := []Resource{{Addr: "a@x"}, {Addr: "b@x"}}
	v := ResourceListView(items)
	items[0].Addr = "changed"

	assert.Equal(t, ViewResourceList, v.Kind)
	assert.Equal(t, "a@x", v.Items[0].Addr)
}

func TestViewKind_String(t *testing.T) {
	assert.Equal(t, "loading", LoadingView().Kind.String())
	assert.Equal(t, "auth_form", AuthFormView(AuthModeLogin).Kind.String())
	assert.Equal(t, "resource_detail", ResourceDetailView().Kind.String())
	assert.Equal(t, "unknown", ViewKind(42).String())
}

func TestResource_Authorizable(t *testing.T) {
	assert.False(t, Resource{Addr: "a"}.Authorizable())
	assert.True(t, Resource{Addr: "a", AuthURL: "https://auth"}.Authorizable())
	assert.False(t, HiddenModal().Visible)
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("shell", " 1.2.0 ", "", "abc")
	assert.Equal(t, "shell", info.AppName())
	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc", info.BuildCommit())
}
