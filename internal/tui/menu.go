// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem struct {
	title string
	page  string
	// payload is sent to the page on navigation.
	payload any
}

type MenuModel struct {
	items  []menuItem
	idx    int
	status string
	errMsg string
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []menuItem{
			{title: "Log in", page: "login"},
			{title: "Unlock offline", page: "unlock"},
			{title: "Register", page: "register"},
			{title: "Finish two-factor login", page: "twofactor", payload: TwoFactorPrompt{}},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch notice := msg.(type) {
	case RegisterSuccessNotice:
		m.status = "User " + notice.Username + " registered, you can log in now"
		return m, nil
	case VaultLockedNotice:
		m.errMsg = notice.Reason
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		m.status = ""
		m.errMsg = ""
		item := m.items[m.idx]
		return m, func() tea.Msg { return NavigateTo{Page: item.page, Payload: item.payload} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	idColWidth := lipgloss.Width("ID")
	if w := lipgloss.Width(fmt.Sprintf("%d", len(m.items))); w > idColWidth {
		idColWidth = w
	}
	idColWidth += 2 // selection marker and space

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render("OK: " + m.status))
		b.WriteString("\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Vault locked: " + m.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.title))
	}

	return renderPage("MAIN MENU", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version")
}
