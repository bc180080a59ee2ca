// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	deletedStyle  = lipgloss.NewStyle().Strikethrough(true).Faint(true)
)
