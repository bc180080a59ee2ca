// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/vault-sync/internal/app"
	"github.com/MKhiriev/vault-sync/internal/service"
	"github.com/MKhiriev/vault-sync/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrInvalidDataProvided, http.StatusBadRequest},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrTwoFactorInvalid, http.StatusUnauthorized},
		{service.ErrLoginExpired, http.StatusUnauthorized},
		{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{service.ErrUsernameAlreadyExists, http.StatusConflict},
		{service.ErrStaleRevision, http.StatusConflict},
		{service.ErrVaultNotFound, http.StatusNotFound},
		{service.ErrUnsupportedVaultFormat, http.StatusUnprocessableEntity},
		{store.ErrExecutingQuery, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestStatusFromError_Wrapped(t *testing.T) {
	err := fmt.Errorf("upload: %w", service.ErrStaleRevision)
	assert.Equal(t, http.StatusConflict, statusFromError(err))
}

func TestWriteServiceError_HidesInternalText(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, fmt.Errorf("pq: relation %q does not exist", "vaults"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInternalServerError, errorMessage(t, rec))
}
