// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	quit        key.Binding
	logout      key.Binding
	newItem     key.Binding
	sync        key.Binding
	edit        key.Binding
	rename      key.Binding
	delete      key.Binding
	copy        key.Binding
	reveal      key.Binding
	history     key.Binding
	showDeleted key.Binding
	twoFactor   key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	quit:        key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:      key.NewBinding(key.WithKeys("l")),
	newItem:     key.NewBinding(key.WithKeys("a")),
	sync:        key.NewBinding(key.WithKeys("s")),
	edit:        key.NewBinding(key.WithKeys("e")),
	rename:      key.NewBinding(key.WithKeys("r")),
	delete:      key.NewBinding(key.WithKeys("ctrl+d")),
	copy:        key.NewBinding(key.WithKeys("c")),
	reveal:      key.NewBinding(key.WithKeys(" ")),
	history:     key.NewBinding(key.WithKeys("h")),
	showDeleted: key.NewBinding(key.WithKeys("t")),
	twoFactor:   key.NewBinding(key.WithKeys("f")),
}
