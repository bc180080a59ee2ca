// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter mirrors the shape of the vault routes without services.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/api/vault", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/api/vault", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	router.Get("/api/vault/status", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/api/vault", http.StatusOK},
		{http.MethodPost, "/api/vault", http.StatusAccepted},
		{http.MethodGet, "/api/vault/status", http.StatusOK},
		{http.MethodDelete, "/api/vault", http.StatusNotFound},
		{http.MethodPut, "/api/vault", http.StatusNotFound},
		{http.MethodPost, "/api/vault/status", http.StatusNotFound},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCheckHTTPMethod_DirectCall(t *testing.T) {
	router := buildRouter()
	handler := CheckHTTPMethod(router)

	// a registered method is forwarded to the router
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/api/vault", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPatch, "/api/vault", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
