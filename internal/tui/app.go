// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-pass-shell/internal/logger"
	"github.com/MKhiriev/go-pass-shell/internal/session"
	"github.com/MKhiriev/go-pass-shell/internal/view"
	"github.com/MKhiriev/go-pass-shell/models"
)

// appModel hosts one session. Inbound messages, the ready signal and key
// presses all arrive as tea messages, so the session only ever runs on the
// program's event loop.
type appModel struct {
	session  *session.ClientSession
	loader   *loaderWidget
	notifier *notifierWidget
	modal    *modalWidget

	// password is the live auth form field. It is replaced on every render
	// of the main view so its contents never outlive the form.
	password textinput.Model
	revision uint64
	cursor   int

	noticeTTL     time.Duration
	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitByUser    bool

	openURL  func(string) error
	copyText func(string) error
	log      *logger.Logger
}

func (m *appModel) Init() tea.Cmd {
	return tea.Batch(m.loader.spinner.Tick, textinput.Blink)
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case readyMsg:
		if err := m.session.Bootstrap(); err != nil {
			m.log.Error().Err(err).Msg("bootstrap failed")
		}
	case inboundMsg:
		m.session.Dispatch(msg.message)
	case spinner.TickMsg:
		m.loader.spinner, cmd = m.loader.spinner.Update(msg)
	case clearNoticeMsg:
		m.notifier.clear(msg.seq)
	case linkOpenedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("failed to open link")
			m.notifier.Error("Не удалось открыть ссылку")
		}
	case copiedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("failed to copy")
			m.notifier.Error("Не удалось скопировать")
		} else {
			m.notifier.Success("Скопировано")
		}
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	default:
		cmd = m.updateInputs(msg)
	}

	m.syncRender()
	return m, tea.Batch(cmd, m.notifier.flush(m.noticeTTL))
}

// syncRender resets per-render UI state when the session replaced the view.
func (m *appModel) syncRender() {
	rev := m.session.Revision()
	if rev == m.revision {
		return
	}
	m.revision = rev

	m.password = newInput(view.Node{Text: "Пароль", Secret: true, Focus: true})
	if items := len(m.session.View().Items); m.cursor >= items {
		m.cursor = max(items-1, 0)
	}
}

func (m *appModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		return tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.info) || key.Matches(msg, keys.esc) {
			m.showBuildInfo = false
		}
		return nil
	}

	if m.modal.visible {
		return m.handleModalKey(msg)
	}

	switch m.session.View().Kind {
	case models.ViewAuthForm:
		return m.handleAuthKey(msg)
	case models.ViewResourceList:
		return m.handleListKey(msg)
	default:
		return m.handleCommonKey(msg)
	}
}

// handleCommonKey covers keys shared by every view without a text field.
func (m *appModel) handleCommonKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	case key.Matches(msg, keys.refresh):
		m.report(m.session.ListResources())
	case key.Matches(msg, keys.logout):
		m.report(m.session.Logout())
	}
	return nil
}

func (m *appModel) handleAuthKey(msg tea.KeyMsg) tea.Cmd {
	if !key.Matches(msg, keys.enter) {
		var cmd tea.Cmd
		m.password, cmd = m.password.Update(msg)
		return cmd
	}

	root := m.session.Root()
	form := root.Collect(view.KindForm)
	if len(form) == 0 {
		return nil
	}

	switch form[0].Action {
	case view.ActionLogin:
		m.report(m.session.Login(m.password.Value()))
	case view.ActionSignUp:
		m.report(m.session.SignUp(m.password.Value()))
	}
	return nil
}

func (m *appModel) handleListKey(msg tea.KeyMsg) tea.Cmd {
	items := m.session.View().Items

	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
		return nil
	case key.Matches(msg, keys.down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}
		return nil
	case key.Matches(msg, keys.add):
		m.session.OpenAddResource()
		return nil
	}

	current, ok := m.current()
	if !ok {
		return m.handleCommonKey(msg)
	}

	switch {
	case key.Matches(msg, keys.enter):
		return m.activateRow(current)
	case key.Matches(msg, keys.copy):
		return cmdCopyToClipboard(m.copyText, current.Addr)
	case key.Matches(msg, keys.unlock):
		m.report(m.session.UnlockResource(current))
	case key.Matches(msg, keys.open):
		m.report(m.session.PromptOpenResource(current))
	default:
		return m.handleCommonKey(msg)
	}
	return nil
}

// activateRow runs the action the renderer attached to the selected row.
func (m *appModel) activateRow(r models.Resource) tea.Cmd {
	root := m.session.Root()
	rows := root.Collect(view.KindRow)
	if m.cursor >= len(rows) {
		return nil
	}

	switch rows[m.cursor].Action {
	case view.ActionOpenResource:
		m.report(m.session.PromptOpenResource(r))
	case view.ActionFollowLink:
		if r.AuthURL == "" {
			return nil
		}
		return cmdOpenLink(m.openURL, r.AuthURL)
	}
	return nil
}

func (m *appModel) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.esc):
		m.session.DismissModal()
		return nil
	case key.Matches(msg, keys.enter):
		return m.submitModal()
	}

	if !m.modal.hasInput {
		return nil
	}
	var cmd tea.Cmd
	m.modal.input, cmd = m.modal.input.Update(msg)
	return cmd
}

func (m *appModel) submitModal() tea.Cmd {
	switch m.modal.content.Action {
	case view.ActionSubmitAdd:
		m.report(m.session.SubmitResource(m.modal.value()))
	case view.ActionOpenResource:
		m.report(m.session.OpenResource(m.session.Modal().Resource.Addr, m.modal.value()))
	case view.ActionUnlock:
		link, ok := m.modal.content.Find(view.AuthLinkID)
		if ok && link.Href != "" {
			return cmdOpenLink(m.openURL, link.Href)
		}
	}
	return nil
}

func (m *appModel) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.password, cmd = m.password.Update(msg)
	cmds = append(cmds, cmd)
	if m.modal.hasInput {
		m.modal.input, cmd = m.modal.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// report surfaces action errors the session does not notify about itself.
func (m *appModel) report(err error) {
	switch {
	case err == nil:
	case errors.Is(err, session.ErrFeatureDisabled):
		m.notifier.Error("Действие недоступно")
	case errors.Is(err, session.ErrNoAuthURL):
		m.notifier.Error("Нет ссылки для авторизации")
	default:
		m.log.Debug().Err(err).Msg("action failed")
		if text, ok := humanizeSendError(err); ok {
			m.notifier.Error(text)
		}
	}
}

func (m *appModel) current() (models.Resource, bool) {
	items := m.session.View().Items
	if len(items) == 0 || m.cursor < 0 || m.cursor >= len(items) {
		return models.Resource{}, false
	}
	return items[m.cursor], true
}

func (m *appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.session.ID()))
	}

	ctx := renderContext{
		inputs: map[string]string{view.PasswordInputID: m.password.View()},
		cursor: m.cursor,
	}
	page := renderPage(m.buildInfo.AppName(), renderNode(m.session.Root(), ctx), m.hotKeys())

	parts := []string{page}
	if m.modal.visible {
		modalCtx := renderContext{inputs: map[string]string{}}
		if m.modal.hasInput {
			modalCtx.inputs[m.modal.inputID] = m.modal.input.View()
		}
		box := renderNode(m.modal.content, modalCtx) + "\n\n" + helpStyle.Render("enter: подтвердить  esc: закрыть")
		parts = append(parts, overlayBoxStyle.Render(box))
	}

	status := strings.TrimSpace(strings.Join([]string{m.loader.View(), m.notifier.View()}, "  "))
	if status != "" {
		parts = append(parts, status)
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *appModel) hotKeys() string {
	layout := m.session.Layout()

	switch m.session.View().Kind {
	case models.ViewAuthForm:
		return "enter: отправить"
	case models.ViewResourceList:
		help := "↑/↓: выбор  enter: перейти  n: добавить  s: обновить  c: копировать  u: авторизация"
		if layout.Open {
			help += "  o: открыть"
		}
		if layout.Logout {
			help += "  l: выйти"
		}
		return help + "  v: о программе"
	default:
		help := "s: обновить"
		if layout.Logout {
			help += "  l: выйти"
		}
		return help + "  v: о программе"
	}
}
