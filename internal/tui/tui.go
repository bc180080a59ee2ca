// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/service"
	"github.com/MKhiriev/vault-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	// username prefills the login and unlock pages.
	username string

	// lockReason is shown on the menu of the next login flow.
	lockReason string

	logger  *logger.Logger
	options []tea.ProgramOption
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, username string, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		username:  username,
		logger:    logger.Component("tui"),
		options:   []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// LoginFlow runs the menu, login, unlock and registration pages until the
// vault is unlocked. It returns the unlocked username, or ErrUserQuit.
func (t *TUI) LoginFlow(ctx context.Context) (string, error) {
	auth := t.services.AuthService
	username := t.username
	if last := auth.Username(); last != "" {
		username = last
	}

	pages := map[string]tea.Model{
		"menu":      NewMenuModel(),
		"login":     NewLoginModel(ctx, auth, username),
		"unlock":    NewUnlockModel(ctx, auth, username),
		"register":  NewRegisterModel(ctx, auth),
		"twofactor": NewTwoFactorModel(ctx, auth),
	}

	if t.lockReason != "" {
		pages["menu"].Update(VaultLockedNotice{Reason: t.lockReason})
		t.lockReason = ""
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, err := tea.NewProgram(root, t.programOptions(ctx)...).Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser || result.username == "" {
		return "", ErrUserQuit
	}

	t.logger.Info().Str("func", "*TUI.LoginFlow").Str("username", result.username).Msg("vault unlocked")
	return result.username, nil
}

// MainLoop runs the vault screens. logout reports that the user locked the
// vault rather than quitting.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services)
	finalModel, err := tea.NewProgram(model, t.programOptions(ctx)...).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.lockErr != nil {
		t.Notify(result.lockErr)
	}
	return result.logout, nil
}

// Notify records why the vault was locked so the next login flow can show
// it.
func (t *TUI) Notify(err error) {
	t.lockReason = humanizeError(err)
	t.logger.Warn().Err(err).Str("func", "*TUI.Notify").Msg("vault locked")
}

func (t *TUI) programOptions(ctx context.Context) []tea.ProgramOption {
	return append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
}
