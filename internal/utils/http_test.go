// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]int64{"current_revision_number": 4}, http.StatusCreated)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, len(rec.Body.Bytes()), n)
	assert.JSONEq(t, `{"current_revision_number":4}`, rec.Body.String())
}

func TestWriteJSON_InvalidData(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, make(chan int), http.StatusOK)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, "stale revision", http.StatusConflict)

	assert.Equal(t, http.StatusConflict, rec.Code)
	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "stale revision", body.Error)
}
