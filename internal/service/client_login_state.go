// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/vault-sync/models"

// canStartLogin reports whether a new exchange may begin in state s.
func canStartLogin(s models.LoginState) bool {
	switch s {
	case models.LoginStateIdle, models.LoginStateFailed, models.LoginStateAuthenticated:
		return true
	}
	return false
}
