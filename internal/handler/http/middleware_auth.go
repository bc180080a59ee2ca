// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/vault-sync/internal/app"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It parses the bearer token from the "Authorization" header, validates it
// via AuthService.ParseToken and stores the user's ID and username in the
// request context ([utils.WithUser]). Every rejection is a 401 with
// [app.MsgTokenIsExpiredOrInvalid], which makes the client try a refresh.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx = utils.WithUser(ctx, token.UserID, token.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token from "Bearer <token>".
//
// It returns [ErrInvalidAuthorizationHeader] when the scheme is missing or
// not Bearer, and [ErrEmptyToken] when nothing follows the scheme.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found {
		if strings.EqualFold(scheme, "Bearer") {
			return "", ErrEmptyToken
		}
		return "", ErrInvalidAuthorizationHeader
	}
	if !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}
	return tokenString, nil
}
