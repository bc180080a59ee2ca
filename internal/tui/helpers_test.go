// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyCtrlD = tea.KeyMsg{Type: tea.KeyCtrlD}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
)

// typeText sends s to m one rune at a time.
func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(keyRunes(string(r)))
	}
	return m
}

// runCmd executes cmd and returns its message.
func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

// findMsg executes cmd, unwrapping batches, and returns the first message of
// type T.
func findMsg[T any](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	require.NotNil(t, cmd)

	pending := []tea.Cmd{cmd}
	for len(pending) > 0 {
		c := pending[0]
		pending = pending[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case T:
			return msg
		case tea.BatchMsg:
			pending = append(pending, msg...)
		}
	}
	var zero T
	require.Failf(t, "message not found", "%T", zero)
	return zero
}
