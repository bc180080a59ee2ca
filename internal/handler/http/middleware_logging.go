// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/vault-sync/internal/logger"
)

// withLogging writes one access-log line per request. Bodies are never
// logged: they carry vault blobs and SRP proofs.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		event := logger.FromRequest(r).Info()
		if lw.status >= http.StatusInternalServerError {
			event = logger.FromRequest(r).Error()
		}
		event.
			Str("uri", r.URL.Path).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
