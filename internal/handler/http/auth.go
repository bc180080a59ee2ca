// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/vault-sync/internal/app"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/utils"
	"github.com/MKhiriev/vault-sync/models"
)

// decodeJSON decodes the request body into dst. On failure it writes a 400
// and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, fn string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if !decodeJSON(w, r, &req, "*Handler.register") {
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.register").Str("username", req.Username).Msg("registration failed")
		writeServiceError(w, err)
		return
	}

	log.Info().Str("func", "*Handler.register").Int64("user_id", user.UserID).Msg("user registered")
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) initiateLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.InitiateLoginRequest
	if !decodeJSON(w, r, &req, "*Handler.initiateLogin") {
		return
	}

	challenge, err := h.services.AuthService.InitiateLogin(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.initiateLogin").Msg("failed to issue login challenge")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, challenge, http.StatusOK)
}

func (h *Handler) validateLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ValidateLoginRequest
	if !decodeJSON(w, r, &req, "*Handler.validateLogin") {
		return
	}

	result, err := h.services.AuthService.ValidateLogin(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.validateLogin").Str("request_id", req.RequestID).Msg("login proof rejected")
		writeServiceError(w, err)
		return
	}

	log.Debug().Str("func", "*Handler.validateLogin").
		Bool("requires_two_factor", result.RequiresTwoFactor).
		Msg("login proof accepted")
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) validateTwoFactor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.TwoFactorRequest
	if !decodeJSON(w, r, &req, "*Handler.validateTwoFactor") {
		return
	}

	tokens, err := h.services.AuthService.ValidateTwoFactor(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.validateTwoFactor").Str("request_id", req.RequestID).Msg("two-factor check failed")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, tokens, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RefreshRequest
	if !decodeJSON(w, r, &req, "*Handler.refresh") {
		return
	}

	tokens, err := h.services.AuthService.Refresh(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.refresh").Msg("refresh rejected")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, tokens, http.StatusOK)
}

func (h *Handler) enableTwoFactor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.enableTwoFactor").Msg("no user ID was given")
		utils.WriteError(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.EnableTwoFactor(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.enableTwoFactor").Int64("user_id", userID).Msg("failed to enable two-factor")
		writeServiceError(w, err)
		return
	}

	log.Info().Str("func", "*Handler.enableTwoFactor").Int64("user_id", userID).Msg("two-factor enabled")
	utils.WriteJSON(w, result, http.StatusOK)
}
