// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/vault-sync/internal/app"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/utils"
	"github.com/MKhiriev/vault-sync/models"
)

func (h *Handler) getVaultStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getVaultStatus").Msg("no user ID was given")
		utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	status, err := h.services.VaultService.GetVaultStatus(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getVaultStatus").Int64("user_id", userID).Msg("error getting vault status")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

// getVault serves the current vault, or an older revision when the
// "revision" query parameter is set.
func (h *Handler) getVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getVault").Msg("no user ID was given")
		utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}
	username, _ := utils.GetUsernameFromContext(ctx)

	revision, err := revisionFromQuery(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getVault").Str("revision", r.URL.Query().Get("revision")).Send()
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	vault, err := h.services.VaultService.GetVault(ctx, userID, username, revision)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getVault").
			Int64("user_id", userID).
			Int64("revision", revision).
			Msg("error getting vault")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, vault, http.StatusOK)
}

func (h *Handler) uploadVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.uploadVault").Msg("no user ID was given")
		utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	var req models.UploadVaultRequest
	if !decodeJSON(w, r, &req, "*Handler.uploadVault") {
		return
	}

	result, err := h.services.VaultService.UploadVault(ctx, userID, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.uploadVault").
			Int64("user_id", userID).
			Int64("prior_revision", req.PriorRevision).
			Msg("vault upload rejected")
		writeServiceError(w, err)
		return
	}

	log.Info().Str("func", "*Handler.uploadVault").
		Int64("user_id", userID).
		Int64("revision", result.CurrentRevisionNumber).
		Msg("vault uploaded")
	utils.WriteJSON(w, result, http.StatusOK)
}

func revisionFromQuery(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("revision")
	if raw == "" {
		return 0, nil
	}
	revision, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || revision < 0 {
		return 0, errInvalidRevisionParam
	}
	return revision, nil
}
