// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"testing"

	"github.com/MKhiriev/vault-sync/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pageStub records the messages it receives.
type pageStub struct {
	name     string
	received []tea.Msg
}

func (p *pageStub) Init() tea.Cmd { return nil }

func (p *pageStub) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.received = append(p.received, msg)
	return p, nil
}

func (p *pageStub) View() string { return p.name }

func newTestRoot() (RootModel, *MenuModel, *pageStub) {
	menu := NewMenuModel()
	login := &pageStub{name: "login page"}
	root := NewRootModel(map[string]tea.Model{"menu": menu, "login": login}, "menu", models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"))
	return root, menu, login
}

func TestRootModel_Navigate(t *testing.T) {
	root, _, login := newTestRoot()

	updated, _ := root.Update(NavigateTo{Page: "login"})
	root = updated.(RootModel)
	assert.Equal(t, "login page", root.View())

	// unknown pages are ignored
	updated, _ = root.Update(NavigateTo{Page: "nowhere"})
	assert.Equal(t, "login page", updated.(RootModel).View())

	updated, cmd := root.Update(NavigateTo{Page: "login", Payload: TwoFactorPrompt{RequestID: "r1"}})
	root = updated.(RootModel)
	assert.Equal(t, TwoFactorPrompt{RequestID: "r1"}, runCmd(t, cmd))

	root.Update(keyRunes("x"))
	require.NotEmpty(t, login.received)
	assert.Equal(t, keyRunes("x"), login.received[len(login.received)-1])
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root, _, _ := newTestRoot()

	updated, cmd := root.Update(keyCtrlC)
	assert.True(t, updated.(RootModel).quitByUser)
	assert.Equal(t, tea.Quit(), runCmd(t, cmd))
}

func TestRootModel_BuildInfoOnlyOnMenu(t *testing.T) {
	root, _, _ := newTestRoot()

	updated, _ := root.Update(keyRunes("v"))
	root = updated.(RootModel)
	view := root.View()
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "abc123")
	assert.Contains(t, view, models.VaultFormatVersion)

	updated, _ = root.Update(keyEsc)
	root = updated.(RootModel)
	assert.Contains(t, root.View(), "MAIN MENU")

	updated, _ = root.Update(NavigateTo{Page: "login"})
	updated, _ = updated.Update(keyRunes("v"))
	assert.Equal(t, "login page", updated.View())
}

func TestRootModel_LoginResult(t *testing.T) {
	t.Run("success quits with username", func(t *testing.T) {
		root, _, _ := newTestRoot()
		updated, cmd := root.Update(LoginResult{Username: "alice"})
		assert.Equal(t, "alice", updated.(RootModel).username)
		assert.Equal(t, tea.Quit(), runCmd(t, cmd))
	})

	t.Run("failure and second factor go to the page", func(t *testing.T) {
		root, _, login := newTestRoot()
		updated, _ := root.Update(NavigateTo{Page: "login"})

		failed := LoginResult{Err: errors.New("boom")}
		updated, _ = updated.Update(failed)
		twoFactor := LoginResult{Username: "alice", TwoFactor: true}
		updated, _ = updated.Update(twoFactor)

		assert.Empty(t, updated.(RootModel).username)
		assert.Contains(t, login.received, tea.Msg(failed))
		assert.Contains(t, login.received, tea.Msg(twoFactor))
	})
}

func TestMenuModel(t *testing.T) {
	menu := NewMenuModel()

	_, cmd := menu.Update(keyEnter)
	assert.Equal(t, NavigateTo{Page: "login"}, runCmd(t, cmd))

	menu.Update(keyDown)
	menu.Update(keyDown)
	menu.Update(keyDown)
	menu.Update(keyDown) // stays on the last entry
	_, cmd = menu.Update(keyEnter)
	assert.Equal(t, NavigateTo{Page: "twofactor", Payload: TwoFactorPrompt{}}, runCmd(t, cmd))

	menu.Update(RegisterSuccessNotice{Username: "bob"})
	assert.Contains(t, menu.View(), "User bob registered")
}
