// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/vault-sync/internal/app"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/utils"
)

// HashHeader carries the hex HMAC-SHA256 of the raw request body.
const HashHeader = "HashSHA256"

// uploadHashing verifies HashHeader against the body of a vault upload. It
// is a pass-through when the server runs without a hash key.
func (h *Handler) uploadHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.hashing {
			next.ServeHTTP(w, r)
			return
		}
		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.uploadHashing").Msg("failed to read request body")
			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		received := r.Header.Get(HashHeader)
		computed := utils.HashHex(body)
		if received == "" || !utils.EqualHex(received, computed) {
			log.Error().Str("func", "*Handler.uploadHashing").
				Str("hash from request", received).
				Str("hashed body", computed).
				Msg("hashes are not equal")
			utils.WriteError(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		log.Debug().Str("func", "*Handler.uploadHashing").Msg("hashes are equal")
		next.ServeHTTP(w, r)
	})
}
