// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/vault-sync/internal/app"
	"github.com/MKhiriev/vault-sync/internal/service"
	"github.com/MKhiriev/vault-sync/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// listRefreshInterval is how often the list is reloaded to show what the
// background sync job pulled from the server.
const listRefreshInterval = 30 * time.Second

type screen int

const (
	screenList screen = iota
	screenDetail
	screenHistory
	screenCreateType
	screenCreateForm
	screenEditField
	screenEditItem
	screenTwoFactor
)

var createTypeOptions = []models.ItemType{
	models.ItemTypeLogin,
	models.ItemTypeAlias,
	models.ItemTypeCreditCard,
	models.ItemTypeNote,
}

type mainLoopModel struct {
	ctx      context.Context
	vault    service.ClientVaultService
	sync     service.ClientSyncService
	auth     service.ClientAuthService
	username string

	screen      screen
	items       []models.Item
	idx         int
	showDeleted bool
	loading     bool
	status      string
	errMsg      string

	syncing bool
	phase   models.SyncPhase
	spinner spinner.Model

	// detail
	item     models.Item
	fieldIdx int
	reveal   bool

	history         []models.FieldHistory
	historyFieldKey string

	createTypeIdx int
	draft         models.Item

	// form backs the create, field edit and item edit screens.
	form       inputForm
	editField  models.ItemField
	submitting bool

	twoFactor models.EnableTwoFactorResponse

	logout bool
	// lockErr is why the vault was locked without the user asking.
	lockErr error
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	return mainLoopModel{
		ctx:      ctx,
		vault:    services.VaultService,
		sync:     services.SyncService,
		auth:     services.AuthService,
		username: services.AuthService.Username(),
		loading:  true,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadItems(), cmdRefreshTick())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.items = msg.items
		m.idx = min(max(m.idx, 0), max(len(m.items)-1, 0))
		return m, nil
	case refreshTickMsg:
		if m.screen == screenList && !m.loading && !m.syncing {
			return m, tea.Batch(m.cmdLoadItems(), cmdRefreshTick())
		}
		return m, cmdRefreshTick()
	case spinner.TickMsg:
		if !m.syncing {
			return m, nil
		}
		m.phase = m.sync.Phase()
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case syncDoneMsg:
		m.syncing = false
		m.phase = models.SyncPhaseIdle
		if errors.Is(msg.err, app.ErrVersionIncompatible) {
			m.logout = true
			m.lockErr = msg.err
			return m, tea.Quit
		}
		if msg.err != nil {
			m.status = ""
			m.errMsg = "Sync failed: " + humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = syncReportStatus(msg.report)
		m.loading = true
		return m, m.cmdLoadItems()
	case itemSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.status
		m.item = msg.item
		m.reveal = false
		m.screen = screenDetail
		m.loading = true
		return m, m.cmdLoadItems()
	case itemDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Item deleted"
		if msg.restored {
			m.status = "Item restored"
		}
		m.screen = screenList
		m.loading = true
		return m, m.cmdLoadItems()
	case historyLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.history = msg.history
		m.historyFieldKey = msg.fieldKey
		m.screen = screenHistory
		return m, nil
	case twoFactorEnabledMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.twoFactor = msg.resp
		m.screen = screenTwoFactor
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenDetail:
		return m.updateDetail(msg)
	case screenHistory, screenTwoFactor:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
			if m.screen == screenHistory && m.item.ID != "" {
				m.screen = screenDetail
			} else {
				m.screen = screenList
			}
		}
		return m, nil
	case screenCreateType:
		return m.updateCreateType(msg)
	case screenCreateForm:
		return m.updateCreateForm(msg)
	case screenEditField:
		return m.updateEditField(msg)
	case screenEditItem:
		return m.updateEditItem(msg)
	}
	return m.updateList(msg)
}

func (m mainLoopModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.newItem):
		m.startCreate()
	case key.Matches(keyMsg, keys.showDeleted):
		m.showDeleted = !m.showDeleted
		m.loading = true
		return m, m.cmdLoadItems()
	case key.Matches(keyMsg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = ""
		m.errMsg = ""
		return m, tea.Batch(m.cmdSync(), m.spinner.Tick)
	case key.Matches(keyMsg, keys.twoFactor):
		return m, m.cmdEnableTwoFactor()
	case key.Matches(keyMsg, keys.enter):
		item, ok := m.current()
		if !ok {
			m.status = "No items"
			return m, nil
		}
		m.openDetail(item)
	case key.Matches(keyMsg, keys.delete):
		item, ok := m.current()
		if !ok {
			m.status = "No items"
			return m, nil
		}
		return m, m.cmdDeleteOrRestore(item)
	}
	return m, nil
}

func (m mainLoopModel) View() string {
	switch m.screen {
	case screenDetail:
		return m.viewDetail()
	case screenHistory:
		return m.viewHistory()
	case screenCreateType:
		return m.viewCreateType()
	case screenCreateForm:
		return m.viewForm("NEW "+strings.ToUpper(itemTypeLabel(m.draft.ItemType)), "Create")
	case screenEditField:
		return m.viewForm("EDIT FIELD", "Save")
	case screenEditItem:
		return m.viewForm("EDIT ITEM", "Save")
	case screenTwoFactor:
		return m.viewTwoFactor()
	}
	return m.viewList()
}

func (m mainLoopModel) viewList() string {
	const hotKeys = "a: add │ s: sync │ enter: open │ ctrl+d: delete/restore │ t: show deleted │ f: 2FA │ l: lock │ q: quit"

	var b strings.Builder
	b.WriteString("User: " + valueOrDash(m.username) + "\n")
	if m.syncing {
		b.WriteString(m.spinner.View() + " Syncing: " + phaseLabel(m.phase) + "\n")
	}
	renderMessages(&b, m.status, m.errMsg)
	b.WriteString("\n")

	if m.loading && len(m.items) == 0 {
		b.WriteString("Loading...\n")
		return renderPage("VAULT", strings.TrimRight(b.String(), "\n"), hotKeys)
	}

	if len(m.items) == 0 {
		b.WriteString("No items\n")
		return renderPage("VAULT", strings.TrimRight(b.String(), "\n"), hotKeys)
	}

	b.WriteString("ID   │ Name                     │ Type         │ Folder\n")
	b.WriteString("─────┼──────────────────────────┼──────────────┼────────────────\n")
	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		row := fmt.Sprintf(
			"%s %-3d│ %-24s │ %-12s │ %s",
			cursor,
			i+1,
			fitText(item.Name, 24),
			fitText(itemTypeLabel(item.ItemType), 12),
			valueOrDash(item.FolderID),
		)
		if item.IsDeleted {
			row = deletedStyle.Render(row)
		}
		b.WriteString(row + "\n")
	}

	return renderPage("VAULT", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) viewTwoFactor() string {
	var b strings.Builder
	b.WriteString("Two-factor authentication is enabled.\n")
	b.WriteString("Add this secret to your authenticator app:\n\n")
	b.WriteString("Secret: " + m.twoFactor.Secret + "\n")
	b.WriteString("URI:    " + m.twoFactor.URI + "\n")
	return renderPage("TWO-FACTOR AUTHENTICATION", strings.TrimRight(b.String(), "\n"), "esc: back")
}

func (m mainLoopModel) current() (models.Item, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Item{}, false
	}
	return m.items[m.idx], true
}

func cmdRefreshTick() tea.Cmd {
	return tea.Tick(listRefreshInterval, func(time.Time) tea.Msg { return refreshTickMsg{} })
}

func syncReportStatus(report models.SyncReport) string {
	var s string
	switch report.Action {
	case models.SyncPhaseUpToDate:
		s = fmt.Sprintf("Up to date at revision %d", report.ServerRevision)
	case models.SyncPhaseDownloading:
		s = fmt.Sprintf("Downloaded revision %d", report.ServerRevision)
	case models.SyncPhaseUploading:
		s = fmt.Sprintf("Uploaded revision %d", report.ServerRevision)
	case models.SyncPhaseMerging:
		s = fmt.Sprintf("Merged with server changes, now at revision %d", report.ServerRevision)
	default:
		s = "Sync finished"
	}
	if report.StillDirty {
		s += ", new local changes are waiting for the next sync"
	}
	return s
}

func phaseLabel(phase models.SyncPhase) string {
	switch phase {
	case models.SyncPhaseCheckingVersion:
		return "checking server version"
	case models.SyncPhaseDownloading:
		return "downloading"
	case models.SyncPhaseMerging:
		return "merging"
	case models.SyncPhaseUploading:
		return "uploading"
	case models.SyncPhaseUpToDate:
		return "up to date"
	}
	return "starting"
}

func itemTypeLabel(t models.ItemType) string {
	switch t {
	case models.ItemTypeLogin:
		return "Login"
	case models.ItemTypeAlias:
		return "Alias"
	case models.ItemTypeCreditCard:
		return "Credit card"
	case models.ItemTypeNote:
		return "Note"
	}
	return "Unknown"
}
