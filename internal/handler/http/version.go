// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/vault-sync/internal/utils"
)

// getServerVersion reports the build and the vault formats this server
// accepts. Clients call it before every sync.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.BuildInfo(r.Context()), http.StatusOK)
}
