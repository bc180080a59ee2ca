// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"slices"

	"github.com/MKhiriev/vault-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) cmdLoadItems() tea.Cmd {
	ctx := m.ctx
	svc := m.vault
	includeDeleted := m.showDeleted

	return func() tea.Msg {
		items, err := svc.Items(ctx, includeDeleted)
		return itemsLoadedMsg{items: items, err: err}
	}
}

func (m mainLoopModel) cmdSync() tea.Cmd {
	ctx := m.ctx
	svc := m.sync

	return func() tea.Msg {
		report, err := svc.Sync(ctx)
		return syncDoneMsg{report: report, err: err}
	}
}

func (m mainLoopModel) cmdCreate(draft models.Item) tea.Cmd {
	ctx := m.ctx
	svc := m.vault

	return func() tea.Msg {
		item, err := svc.CreateItem(ctx, draft)
		return itemSavedMsg{item: item, status: "Item created", err: err}
	}
}

func (m mainLoopModel) cmdSetField(itemID string, field models.ItemField, status string) tea.Cmd {
	ctx := m.ctx
	svc := m.vault

	return func() tea.Msg {
		item, err := svc.SetField(ctx, itemID, field)
		return itemSavedMsg{item: item, status: status, err: err}
	}
}

func (m mainLoopModel) cmdDeleteField(itemID string, field models.ItemField) tea.Cmd {
	ctx := m.ctx
	svc := m.vault

	return func() tea.Msg {
		item, err := svc.DeleteField(ctx, itemID, field.FieldKey)
		return itemSavedMsg{item: item, status: field.Label + " removed", err: err}
	}
}

// cmdEditItem applies only the attributes that changed, so an unchanged
// form is not a mutation.
func (m mainLoopModel) cmdEditItem(item models.Item, name, folderID string, tags []string) tea.Cmd {
	ctx := m.ctx
	svc := m.vault

	return func() tea.Msg {
		var err error
		updated := item
		if name != item.Name {
			if updated, err = svc.Rename(ctx, item.ID, name); err != nil {
				return itemSavedMsg{err: err}
			}
		}
		if folderID != item.FolderID {
			if updated, err = svc.MoveToFolder(ctx, item.ID, folderID); err != nil {
				return itemSavedMsg{err: err}
			}
		}
		if !sameTags(tags, item.Tags) {
			if updated, err = svc.SetTags(ctx, item.ID, tags); err != nil {
				return itemSavedMsg{err: err}
			}
		}
		return itemSavedMsg{item: updated, status: "Item saved"}
	}
}

func (m mainLoopModel) cmdDeleteOrRestore(item models.Item) tea.Cmd {
	ctx := m.ctx
	svc := m.vault

	return func() tea.Msg {
		if item.IsDeleted {
			return itemDeletedMsg{restored: true, err: svc.RestoreItem(ctx, item.ID)}
		}
		return itemDeletedMsg{err: svc.DeleteItem(ctx, item.ID)}
	}
}

func (m mainLoopModel) cmdLoadHistory(itemID, fieldKey string) tea.Cmd {
	ctx := m.ctx
	svc := m.vault

	return func() tea.Msg {
		history, err := svc.FieldHistory(ctx, itemID, fieldKey)
		return historyLoadedMsg{fieldKey: fieldKey, history: history, err: err}
	}
}

func (m mainLoopModel) cmdEnableTwoFactor() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		resp, err := auth.EnableTwoFactor(ctx)
		return twoFactorEnabledMsg{resp: resp, err: err}
	}
}

func sameTags(a, b []string) bool {
	a, b = slices.Clone(a), slices.Clone(b)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(slices.Compact(a), slices.Compact(b))
}
