// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://localhost:1", time.Second)
	client2 := NewHTTPClient("http://localhost:1", time.Second)

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_UsesBaseURLAndTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/vault/status", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 2*time.Second)
	assert.Equal(t, 2*time.Second, client.GetClient().Timeout)

	resp, err := client.R().Get("/api/vault/status")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
}
