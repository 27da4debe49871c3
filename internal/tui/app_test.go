// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-shell/internal/logger"
	"github.com/MKhiriev/go-pass-shell/internal/mock"
	"github.com/MKhiriev/go-pass-shell/internal/protocol"
	"github.com/MKhiriev/go-pass-shell/internal/session"
	"github.com/MKhiriev/go-pass-shell/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type harness struct {
	model     *appModel
	transport *mock.MockTransport
	opened    []string
	copied    []string
}

func newHarness(t *testing.T, opts session.Options) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{transport: mock.NewMockTransport(ctrl)}

	m, err := newAppModel(h.transport, opts, Options{
		NoticeTTL: time.Millisecond,
		BuildInfo: models.NewAppBuildInfo("go-pass-shell", "1.0.0", "2026-10-18", "abc123"),
	}, logger.Nop())
	require.NoError(t, err)

	m.openURL = func(u string) error { h.opened = append(h.opened, u); return nil }
	m.copyText = func(s string) error { h.copied = append(h.copied, s); return nil }
	h.model = m
	return h
}

func accountOptions() session.Options {
	return session.Options{Resource: "account", Dialect: protocol.DialectFlat, SessionID: "tui-test"}
}

func (h *harness) update(msg tea.Msg) tea.Cmd {
	_, cmd := h.model.Update(msg)
	return cmd
}

func (h *harness) inbound(t *testing.T, name string, payload any) {
	t.Helper()
	m, err := models.NewMessage(name, payload)
	require.NoError(t, err)
	h.update(inboundMsg{message: m})
}

func (h *harness) keys(s string) {
	h.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (h *harness) press(k tea.KeyType) tea.Cmd {
	return h.update(tea.KeyMsg{Type: k})
}

// collect runs cmd and feeds every resulting message back to the model.
func (h *harness) collect(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			h.collect(c)
		}
		return
	}
	if msg != nil {
		h.update(msg)
	}
}

// ── bootstrap / auth ──────────────────────────────────────────────────────────

func TestApp_ReadySendsIndexOnce(t *testing.T) {
	h := newHarness(t, accountOptions())
	h.transport.EXPECT().Send("index", nil).Return(nil).Times(1)

	h.update(readyMsg{})
	h.update(readyMsg{})

	assert.Contains(t, h.model.View(), "Загрузка...")
}

func TestApp_LoginFlow(t *testing.T) {
	h := newHarness(t, accountOptions())

	h.inbound(t, "indexed", "login")
	assert.Contains(t, h.model.View(), "Войти")

	h.keys("secret")
	assert.Equal(t, "secret", h.model.password.Value())

	h.transport.EXPECT().Send("login", "secret").Return(nil)
	h.press(tea.KeyEnter)
	assert.True(t, h.model.loader.visible)

	// A wrong password answer re-renders the form with an empty field.
	h.inbound(t, "error", "wrong password")
	assert.False(t, h.model.loader.visible)
	assert.Contains(t, h.model.View(), "wrong password")
	h.inbound(t, "indexed", "login")
	assert.Empty(t, h.model.password.Value())
}

func TestApp_SignUpFallback(t *testing.T) {
	h := newHarness(t, accountOptions())
	h.inbound(t, "index.show", "whatever")

	h.keys("pw")
	h.transport.EXPECT().Send("sign.up", "pw").Return(nil)
	h.press(tea.KeyEnter)

	assert.Contains(t, h.model.View(), "Зарегистрироваться")
}

func TestApp_InfoKeyTypesIntoPassword(t *testing.T) {
	h := newHarness(t, accountOptions())
	h.inbound(t, "indexed", "login")

	h.keys("v")

	assert.False(t, h.model.showBuildInfo)
	assert.Equal(t, "v", h.model.password.Value())
}

// ── list ──────────────────────────────────────────────────────────────────────

func listFixture(t *testing.T, opts session.Options) *harness {
	t.Helper()
	h := newHarness(t, opts)
	h.inbound(t, "account.listed", []map[string]string{
		{"addr": "a@x.com", "auth_url": "https://auth/a"},
		{"addr": "b@x.com"},
	})
	return h
}

func TestApp_ListRendersRows(t *testing.T) {
	h := listFixture(t, accountOptions())

	out := h.model.View()
	assert.Contains(t, out, "> a@x.com")
	assert.Contains(t, out, "b@x.com")
	assert.Contains(t, out, "Добавить")

	h.press(tea.KeyDown)
	assert.Contains(t, h.model.View(), "> b@x.com")
	h.press(tea.KeyDown)
	assert.Equal(t, 1, h.model.cursor)

	h.inbound(t, "account.listed", []string{})
	assert.Equal(t, 0, h.model.cursor)
	assert.Contains(t, h.model.View(), "Список пуст")
}

func TestApp_EnterFollowsLink(t *testing.T) {
	h := listFixture(t, accountOptions())

	h.collect(h.press(tea.KeyEnter))
	assert.Equal(t, []string{"https://auth/a"}, h.opened)

	h.press(tea.KeyDown)
	h.collect(h.press(tea.KeyEnter))
	assert.Len(t, h.opened, 1)
}

func TestApp_CopyAddress(t *testing.T) {
	h := listFixture(t, accountOptions())

	h.collect(h.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")}))

	assert.Equal(t, []string{"a@x.com"}, h.copied)
	assert.Contains(t, h.model.View(), "Скопировано")
}

func TestApp_CopyFailure(t *testing.T) {
	h := listFixture(t, accountOptions())
	h.model.copyText = func(string) error { return errors.New("no clipboard") }

	h.collect(h.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")}))

	assert.Contains(t, h.model.View(), "Не удалось скопировать")
}

func TestApp_RefreshAndLogout(t *testing.T) {
	opts := accountOptions()
	opts.Logout = true
	h := listFixture(t, opts)

	gomock.InOrder(
		h.transport.EXPECT().Send("account.list", nil).Return(nil),
		h.transport.EXPECT().Send("logout", nil).Return(nil),
	)
	h.keys("s")
	h.keys("l")
}

func TestApp_LogoutDisabled(t *testing.T) {
	h := listFixture(t, accountOptions())

	h.keys("l")

	assert.Contains(t, h.model.View(), "Действие недоступно")
}

// ── modal ─────────────────────────────────────────────────────────────────────

func TestApp_AddResourceFlow(t *testing.T) {
	h := listFixture(t, accountOptions())

	h.keys("n")
	require.True(t, h.model.modal.visible)
	assert.Contains(t, h.model.View(), "esc: закрыть")

	h.keys("foo")
	h.transport.EXPECT().Send("account.add", "foo").Return(nil)
	h.press(tea.KeyEnter)

	h.transport.EXPECT().Send("account.list", nil).Return(nil)
	h.inbound(t, "account.added", "ok")

	assert.False(t, h.model.modal.visible)
	assert.Contains(t, h.model.View(), "ok")
}

func TestApp_EscDismissesModal(t *testing.T) {
	h := listFixture(t, accountOptions())

	h.keys("n")
	h.press(tea.KeyEsc)

	assert.False(t, h.model.modal.visible)
	assert.False(t, h.model.session.Modal().Visible)
}

func TestApp_UnlockDialog(t *testing.T) {
	h := listFixture(t, accountOptions())

	h.keys("u")
	require.True(t, h.model.modal.visible)
	assert.Contains(t, h.model.View(), "https://auth/a")

	h.collect(h.press(tea.KeyEnter))
	assert.Equal(t, []string{"https://auth/a"}, h.opened)

	h.press(tea.KeyEsc)
	h.press(tea.KeyDown)
	h.keys("u")
	assert.False(t, h.model.modal.visible)
	assert.Contains(t, h.model.View(), "Нет ссылки для авторизации")
}

func TestApp_OpenResourceFlow(t *testing.T) {
	opts := accountOptions()
	opts.Open = true
	h := listFixture(t, opts)

	h.press(tea.KeyEnter)
	require.True(t, h.model.modal.visible)
	assert.Empty(t, h.opened)

	h.keys("pw")
	h.transport.EXPECT().Send("account.open", map[string]string{"account": "a@x.com", "password": "pw"}).Return(nil)
	h.press(tea.KeyEnter)

	h.inbound(t, "account.opened", nil)
	assert.False(t, h.model.modal.visible)
	assert.Contains(t, h.model.View(), "Открыто")
}

// ── globals ───────────────────────────────────────────────────────────────────

func TestApp_BuildInfoToggle(t *testing.T) {
	h := listFixture(t, accountOptions())

	h.keys("v")
	out := h.model.View()
	assert.Contains(t, out, "ИНФОРМАЦИЯ О ПРОГРАММЕ")
	assert.Contains(t, out, "1.0.0")
	assert.Contains(t, out, "tui-test")

	// Keys other than v/esc are swallowed while the window is open.
	h.keys("s")
	h.press(tea.KeyEsc)
	assert.False(t, h.model.showBuildInfo)
}

func TestApp_CtrlCQuits(t *testing.T) {
	h := newHarness(t, accountOptions())

	cmd := h.press(tea.KeyCtrlC)

	require.NotNil(t, cmd)
	assert.True(t, h.model.quitByUser)
}

func TestApp_NoticeClears(t *testing.T) {
	h := newHarness(t, accountOptions())

	h.inbound(t, "error", "first")
	stale := h.model.notifier.seq
	h.inbound(t, "error", "second")

	h.update(clearNoticeMsg{seq: stale})
	assert.Contains(t, h.model.View(), "second")

	h.update(clearNoticeMsg{seq: h.model.notifier.seq})
	assert.NotContains(t, h.model.View(), "second")
}

func TestApp_SendFailureShowsNotice(t *testing.T) {
	h := newHarness(t, accountOptions())
	h.transport.EXPECT().Send("index", nil).Return(errors.New("closed"))

	h.update(readyMsg{})

	assert.False(t, h.model.loader.visible)
	assert.Contains(t, h.model.View(), session.SendFailedText)
}

func TestNotifierFlush(t *testing.T) {
	n := &notifierWidget{}
	assert.Nil(t, n.flush(time.Millisecond))

	n.Success("ok")
	cmd := n.flush(time.Millisecond)
	require.NotNil(t, cmd)
	assert.Equal(t, clearNoticeMsg{seq: 1}, cmd())
	assert.Nil(t, n.flush(time.Millisecond))
}

func TestModalWidget_SetContentResetsInput(t *testing.T) {
	h := listFixture(t, accountOptions())

	h.keys("n")
	h.keys("abc")
	h.press(tea.KeyEsc)
	h.keys("n")

	assert.Empty(t, h.model.modal.value())
}
