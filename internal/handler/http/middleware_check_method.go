// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/vault-sync/internal/utils"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
//
// A path that exists but does not serve the requested method answers 404
// with a JSON error body instead of chi's 405, so unsupported methods do not
// reveal which routes exist. /api/vault serves both GET and POST, so the
// lookup has to compare methods per pattern.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}
