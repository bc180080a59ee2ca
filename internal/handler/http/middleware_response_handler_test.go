// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusConflict)
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusConflict, w.status)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestResponseWriter_Write(t *testing.T) {
	tests := []struct {
		name       string
		header     int
		writes     []string
		wantStatus int
		wantSize   int
	}{
		{name: "implicit 200", writes: []string{"abc"}, wantStatus: http.StatusOK, wantSize: 3},
		{name: "explicit status", header: http.StatusCreated, writes: []string{"x"}, wantStatus: http.StatusCreated, wantSize: 1},
		{name: "several writes", writes: []string{"ab", "cde", ""}, wantStatus: http.StatusOK, wantSize: 5},
		{name: "no body", header: http.StatusNoContent, wantStatus: http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rec}
			if tt.header != 0 {
				w.WriteHeader(tt.header)
			}
			for _, s := range tt.writes {
				_, _ = w.Write([]byte(s))
			}

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantSize, rec.Body.Len())
		})
	}
}
