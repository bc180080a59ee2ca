// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login/initiate", h.initiateLogin)
		r.Post("/api/auth/login/validate", h.validateLogin)
		r.Post("/api/auth/login/2fa", h.validateTwoFactor)
		r.Post("/api/auth/refresh", h.refresh)

		r.Get("/api/version/", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/2fa/enable", h.enableTwoFactor)

		r.Get("/api/vault/status", h.getVaultStatus)
		r.Get("/api/vault", h.getVault)
		r.With(h.uploadHashing).Post("/api/vault", h.uploadVault)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
