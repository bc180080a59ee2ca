// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/vault-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

func (m *mainLoopModel) openDetail(item models.Item) {
	m.item = item
	m.fieldIdx = 0
	m.reveal = false
	m.status = ""
	m.errMsg = ""
	m.screen = screenDetail
}

// visibleFields returns the live fields of the open item in display order.
func (m mainLoopModel) visibleFields() []models.ItemField {
	fields := make([]models.ItemField, 0, len(m.item.Fields))
	for _, f := range m.item.Fields {
		if !f.IsDeleted {
			fields = append(fields, f)
		}
	}
	slices.SortStableFunc(fields, func(a, b models.ItemField) int { return a.DisplayOrder - b.DisplayOrder })
	return fields
}

func (m mainLoopModel) selectedField() (models.ItemField, bool) {
	fields := m.visibleFields()
	if m.fieldIdx < 0 || m.fieldIdx >= len(fields) {
		return models.ItemField{}, false
	}
	return fields[m.fieldIdx], true
}

func (m mainLoopModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenList
		m.reveal = false
		m.status = ""
		m.errMsg = ""
	case key.Matches(keyMsg, keys.up):
		if m.fieldIdx > 0 {
			m.fieldIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.fieldIdx < len(m.visibleFields())-1 {
			m.fieldIdx++
		}
	case key.Matches(keyMsg, keys.reveal):
		m.reveal = !m.reveal
	case key.Matches(keyMsg, keys.copy):
		field, ok := m.selectedField()
		if !ok || fieldText(field) == "" {
			m.status = "Nothing to copy"
			return m, nil
		}
		if err := writeClipboard(fieldText(field)); err != nil {
			m.errMsg = "Copy failed: " + err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = field.Label + " copied"
	case key.Matches(keyMsg, keys.history):
		field, ok := m.selectedField()
		if !ok {
			return m, nil
		}
		return m, m.cmdLoadHistory(m.item.ID, field.FieldKey)
	case m.item.IsDeleted && key.Matches(keyMsg, keys.delete):
		return m, m.cmdDeleteOrRestore(m.item)
	case m.item.IsDeleted:
		// tombstones are read-only until restored
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		field, ok := m.selectedField()
		if !ok {
			return m, nil
		}
		m.startEditField(field)
	case key.Matches(keyMsg, keys.newItem):
		m.startAddField()
	case key.Matches(keyMsg, keys.rename):
		m.startEditItem()
	case key.Matches(keyMsg, keys.delete):
		field, ok := m.selectedField()
		if ok && field.IsCustomField {
			return m, m.cmdDeleteField(m.item.ID, field)
		}
		return m, m.cmdDeleteOrRestore(m.item)
	}
	return m, nil
}

func (m mainLoopModel) viewDetail() string {
	var b strings.Builder
	item := m.item

	b.WriteString("Name:     " + item.Name + "\n")
	b.WriteString("Type:     " + itemTypeLabel(item.ItemType) + "\n")
	b.WriteString("Folder:   " + valueOrDash(item.FolderID) + "\n")
	b.WriteString("Tags:     " + valueOrDash(strings.Join(item.Tags, ", ")) + "\n")
	b.WriteString("Modified: " + formatMillis(item.UpdatedAt) + "\n")
	if item.IsDeleted {
		b.WriteString(deletedStyle.Render("This item is deleted") + "\n")
	}
	b.WriteString("\n")

	fields := m.visibleFields()
	width := 0
	for _, f := range fields {
		width = max(width, len([]rune(f.Label)))
	}
	for i, f := range fields {
		value := fieldText(f)
		if f.IsHidden {
			value = maskSecret(value, m.reveal)
		}
		line := fmt.Sprintf("%s │ %s", padRight(f.Label, width), valueOrDash(value))
		if i == m.fieldIdx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	renderMessages(&b, m.status, m.errMsg)

	hotKeys := "esc: back │ ↑/↓: field │ space: reveal │ c: copy │ h: history │ e: edit │ a: add field │ r: edit item │ ctrl+d: delete"
	if item.IsDeleted {
		hotKeys = "esc: back │ ↑/↓: field │ space: reveal │ c: copy │ h: history │ ctrl+d: restore"
	}
	return renderPage("ITEM", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) viewHistory() string {
	var b strings.Builder

	label := m.historyFieldKey
	hidden := false
	if f, ok := m.item.Field(m.historyFieldKey); ok {
		label = f.Label
		hidden = f.IsHidden
	}
	b.WriteString("Field: " + label + "\n\n")

	if len(m.history) == 0 {
		b.WriteString("No previous values\n")
	}
	for _, h := range m.history {
		value := strings.Join(h.Value, ", ")
		if hidden {
			value = maskSecret(value, m.reveal)
		}
		b.WriteString(formatMillis(h.Stamp.ModifiedAt) + " │ " + valueOrDash(value) + "\n")
	}

	return renderPage("FIELD HISTORY", strings.TrimRight(b.String(), "\n"), "esc: back")
}

// fieldText joins a field value for display and copying.
func fieldText(f models.ItemField) string {
	return strings.Join(f.Value, ", ")
}

func formatMillis(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04:05")
}
