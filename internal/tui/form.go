// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputForm is a column of text inputs with tab focus cycling.
type inputForm struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

type inputSpec struct {
	label       string
	placeholder string
	value       string
	secret      bool
	charLimit   int
}

func newInputForm(specs ...inputSpec) inputForm {
	f := inputForm{}
	for i, s := range specs {
		in := textinput.New()
		in.Placeholder = s.placeholder
		in.Width = 40
		if s.charLimit > 0 {
			in.CharLimit = s.charLimit
		}
		if s.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		in.SetValue(s.value)
		if i == 0 {
			in.Focus()
		}
		f.labels = append(f.labels, s.label)
		f.inputs = append(f.inputs, in)
	}
	return f
}

func (f *inputForm) value(i int) string {
	return f.inputs[i].Value()
}

func (f *inputForm) trimmed(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *inputForm) reset(i int) {
	f.inputs[i].Reset()
}

func (f *inputForm) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *inputForm) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// update handles tab cycling and forwards everything else to the focused
// input. handled reports a focus change.
func (f *inputForm) update(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			f.focusNext()
			return nil, true
		case "shift+tab", "up":
			f.focusPrev()
			return nil, true
		}
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd, false
}

// view renders the form as a two-column table.
func (f *inputForm) view() string {
	width := len("Field")
	for _, l := range f.labels {
		width = max(width, len([]rune(l)))
	}

	var b strings.Builder
	b.WriteString(padRight("Field", width))
	b.WriteString(" │ Value\n")
	b.WriteString(strings.Repeat("─", width+1))
	b.WriteString("┼────────────────────────────────────────────\n")
	for i, in := range f.inputs {
		b.WriteString(padRight(f.labels[i], width))
		b.WriteString(" │ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}
	return b.String()
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
