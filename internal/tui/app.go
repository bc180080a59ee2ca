// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/vault-sync/models"
)

var (
	forceQuitKey = key.NewBinding(key.WithKeys("ctrl+c"))
	buildInfoKey = key.NewBinding(key.WithKeys("v"))
)

// RootModel routes the pre-unlock pages (menu, login, unlock, register,
// two-factor). It quits once a page reports an unlocked vault.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	quitByUser bool
	username   string
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := r.handleKey(msg); handled {
			return r, cmd
		}
	case NavigateTo:
		return r.navigate(msg)
	case LoginResult:
		if msg.Err == nil && !msg.TwoFactor {
			r.username = msg.Username
			return r, tea.Quit
		}
	}

	if r.current == nil {
		return r, nil
	}
	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

// handleKey processes router-level keys. The build info overlay swallows
// every key while it is open.
func (r *RootModel) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, forceQuitKey):
		r.quitByUser = true
		return true, tea.Quit
	case r.showBuildInfo:
		if key.Matches(msg, keys.esc, buildInfoKey) {
			r.showBuildInfo = false
		}
		return true, nil
	case key.Matches(msg, buildInfoKey) && r.onMenu():
		r.showBuildInfo = true
		return true, nil
	}
	return false, nil
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}
	r.showBuildInfo = false
	r.current = next

	if nav.Payload != nil {
		payload := nav.Payload
		return r, func() tea.Msg { return payload }
	}
	return r, r.current.Init()
}

func (r RootModel) View() string {
	switch {
	case r.showBuildInfo:
		return renderBuildInfoWindow(r.buildInfo)
	case r.current == nil:
		return renderPage("VAULT SYNC", "", "")
	default:
		return r.current.View()
	}
}

func (r RootModel) onMenu() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
