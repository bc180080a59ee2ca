// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/vault-sync/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *mainLoopModel) startCreate() {
	m.createTypeIdx = 0
	m.status = ""
	m.errMsg = ""
	m.screen = screenCreateType
}

func (m mainLoopModel) updateCreateType(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenList
	case key.Matches(keyMsg, keys.up):
		if m.createTypeIdx > 0 {
			m.createTypeIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.createTypeIdx < len(createTypeOptions)-1 {
			m.createTypeIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.draft = models.NewItemDraft(createTypeOptions[m.createTypeIdx], "")
		specs := []inputSpec{{label: "Name", placeholder: "name", charLimit: 128}}
		for _, f := range m.draft.Fields {
			specs = append(specs, inputSpec{label: f.Label, placeholder: fieldPlaceholder(f), secret: f.IsHidden})
		}
		m.form = newInputForm(specs...)
		m.submitting = false
		m.screen = screenCreateForm
		return m, textinput.Blink
	}
	return m, nil
}

func (m mainLoopModel) viewCreateType() string {
	var b strings.Builder
	for i, t := range createTypeOptions {
		cursor := " "
		if i == m.createTypeIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d │ %s\n", cursor, i+1, itemTypeLabel(t)))
	}
	return renderPage("NEW ITEM", strings.TrimRight(b.String(), "\n"), "esc: back │ ↑/↓: navigate │ enter: select")
}

func (m mainLoopModel) updateCreateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.updateForm(msg, func(m *mainLoopModel) (tea.Cmd, string) {
		draft := m.draft.Clone()
		draft.Name = m.form.trimmed(0)
		if draft.Name == "" {
			return nil, "Name is required"
		}
		for i := range draft.Fields {
			draft.Fields[i].Value = parseFieldValue(draft.Fields[i], m.form.value(i+1))
		}
		return m.cmdCreate(draft), ""
	})
}

func (m *mainLoopModel) startEditField(field models.ItemField) {
	m.editField = field
	m.form = newInputForm(inputSpec{
		label:       field.Label,
		placeholder: fieldPlaceholder(field),
		value:       fieldText(field),
		secret:      field.IsHidden && !m.reveal,
	})
	m.submitting = false
	m.status = ""
	m.errMsg = ""
	m.screen = screenEditField
}

// startAddField opens the field form for a new custom field.
func (m *mainLoopModel) startAddField() {
	m.editField = models.ItemField{FieldType: models.FieldTypeText, DisplayOrder: len(m.item.Fields)}
	m.form = newInputForm(
		inputSpec{label: "Label", placeholder: "label", charLimit: 64},
		inputSpec{label: "Value", placeholder: "value"},
	)
	m.submitting = false
	m.status = ""
	m.errMsg = ""
	m.screen = screenEditField
}

func (m mainLoopModel) updateEditField(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.updateForm(msg, func(m *mainLoopModel) (tea.Cmd, string) {
		field := m.editField
		if field.FieldKey == "" {
			field.Label = m.form.trimmed(0)
			if field.Label == "" {
				return nil, "Label is required"
			}
			field.Value = []string{m.form.value(1)}
			return m.cmdSetField(m.item.ID, field, field.Label+" added"), ""
		}
		field.Value = parseFieldValue(field, m.form.value(0))
		return m.cmdSetField(m.item.ID, field, field.Label+" saved"), ""
	})
}

// startEditItem opens the name, folder and tags form of the open item.
func (m *mainLoopModel) startEditItem() {
	m.form = newInputForm(
		inputSpec{label: "Name", placeholder: "name", value: m.item.Name, charLimit: 128},
		inputSpec{label: "Folder", placeholder: "folder", value: m.item.FolderID, charLimit: 64},
		inputSpec{label: "Tags", placeholder: "comma separated", value: strings.Join(m.item.Tags, ", ")},
	)
	m.submitting = false
	m.status = ""
	m.errMsg = ""
	m.screen = screenEditItem
}

func (m mainLoopModel) updateEditItem(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.updateForm(msg, func(m *mainLoopModel) (tea.Cmd, string) {
		name := m.form.trimmed(0)
		if name == "" {
			return nil, "Name is required"
		}
		return m.cmdEditItem(m.item, name, m.form.trimmed(1), splitList(m.form.value(2))), ""
	})
}

// updateForm drives the shared form screens: esc returns to the item, enter
// calls submit, which returns the command to run or a validation message.
func (m mainLoopModel) updateForm(msg tea.Msg, submit func(m *mainLoopModel) (tea.Cmd, string)) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			if m.screen == screenCreateForm || m.item.ID == "" {
				m.screen = screenList
			} else {
				m.screen = screenDetail
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			cmd, invalid := submit(&m)
			if invalid != "" {
				m.errMsg = invalid
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, cmd
		}
	}

	cmd, _ := m.form.update(msg)
	return m, cmd
}

func (m mainLoopModel) viewForm(title, action string) string {
	var b strings.Builder
	b.WriteString(m.form.view())
	if m.submitting {
		b.WriteString("\n[" + action + "...]\n")
	} else {
		b.WriteString("\n[" + action + "]\n")
	}
	renderMessages(&b, "", m.errMsg)
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: "+strings.ToLower(action))
}

// parseFieldValue splits URL lists on commas; every other field keeps the
// input as a single value.
func parseFieldValue(field models.ItemField, input string) []string {
	if field.FieldType == models.FieldTypeURL {
		if urls := splitList(input); len(urls) > 0 {
			return urls
		}
		return []string{""}
	}
	return []string{input}
}

func splitList(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func fieldPlaceholder(f models.ItemField) string {
	switch f.FieldType {
	case models.FieldTypeURL:
		return "https://example.com, https://..."
	case models.FieldTypeEmail:
		return "name@example.com"
	case models.FieldTypeTOTP:
		return "otpauth:// or base32 secret"
	}
	return strings.ToLower(f.Label)
}
