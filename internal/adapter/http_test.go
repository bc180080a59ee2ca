// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/vault-sync/internal/config"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/utils"
	"github.com/MKhiriev/vault-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "testhashkey"

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}
	appCfg := config.ClientApp{HashKey: testHashKey}

	a, err := NewHTTPServerAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	_, err := utils.WriteJSON(w, v, status)
	assert.NoError(t, err)
}

// ── Construction ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://vault.example.com/", want: "https://vault.example.com"},
		{in: "  ", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Auth ─────────────────────────────────────────────────────────────────────

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		utils.WriteError(w, "username already exists", http.StatusConflict)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Register(context.Background(), models.RegisterRequest{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, "username already exists", respErr.Message)
}

func TestLoginRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login/initiate":
			var req models.InitiateLoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "alice", req.Username)
			writeJSON(t, w, http.StatusOK, models.InitiateLoginResponse{RequestID: "req-1", ServerEphemeral: "ab"})
		case "/api/auth/login/validate":
			writeJSON(t, w, http.StatusOK, models.ValidateLoginResponse{Token: "access", RefreshToken: "refresh", ServerProof: "m2"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ch, err := a.InitiateLogin(context.Background(), models.InitiateLoginRequest{Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "req-1", ch.RequestID)

	res, err := a.ValidateLogin(context.Background(), models.ValidateLoginRequest{RequestID: "req-1"})
	require.NoError(t, err)
	assert.Equal(t, "m2", res.ServerProof)
	assert.Empty(t, a.Token(), "tokens are stored only after the server proof is verified")
}

// ── Vault ────────────────────────────────────────────────────────────────────

func TestGetVault_RevisionQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access", r.Header.Get("Authorization"))
		assert.Equal(t, "3", r.URL.Query().Get("revision"))
		writeJSON(t, w, http.StatusOK, models.VaultResponse{
			Status: "ok",
			Vault:  models.VaultPayload{Blob: "blob", CurrentRevisionNumber: 3},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetTokens(models.TokenPair{Token: "access"})

	v, err := a.GetVault(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "blob", v.Vault.Blob)
	assert.Equal(t, int64(3), v.Vault.CurrentRevisionNumber)
}

func TestUploadVault_SignsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		assert.Equal(t, utils.HashString(string(body), testHashKey), r.Header.Get(HashHeader))

		var req models.UploadVaultRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, int64(4), req.PriorRevision)

		writeJSON(t, w, http.StatusOK, models.UploadVaultResponse{CurrentRevisionNumber: 5})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetTokens(models.TokenPair{Token: "access"})

	res, err := a.UploadVault(context.Background(), models.UploadVaultRequest{PriorRevision: 4, Blob: "blob", Version: "1.0.0"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.CurrentRevisionNumber)
}

func TestUploadVault_StaleRevision(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, "stale revision, please sync", http.StatusConflict)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.UploadVault(context.Background(), models.UploadVaultRequest{PriorRevision: 1})
	assert.ErrorIs(t, err, ErrConflict)
	assert.NotErrorIs(t, err, ErrTransport)
}

// ── Token refresh ────────────────────────────────────────────────────────────

func TestAuthed_RefreshesOnceOn401(t *testing.T) {
	var statusCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/vault/status":
			statusCalls.Add(1)
			if r.Header.Get("Authorization") != "Bearer fresh" {
				utils.WriteError(w, "token is expired or invalid", http.StatusUnauthorized)
				return
			}
			writeJSON(t, w, http.StatusOK, models.VaultStatusResponse{CurrentRevisionNumber: 2})
		case "/api/auth/refresh":
			var req models.RefreshRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "refresh-1", req.RefreshToken)
			writeJSON(t, w, http.StatusOK, models.TokenPair{Token: "fresh", RefreshToken: "refresh-2"})
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetTokens(models.TokenPair{Token: "stale", RefreshToken: "refresh-1"})

	status, err := a.GetVaultStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), status.CurrentRevisionNumber)
	assert.Equal(t, int32(2), statusCalls.Load())
	assert.Equal(t, "fresh", a.Token())
	assert.Equal(t, "refresh-2", a.refreshToken())
}

func TestAuthed_NoRefreshTokenKeeps401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, "token is expired or invalid", http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetVaultStatus(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = a.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrNoRefreshToken)
}

// ── Transport failures ───────────────────────────────────────────────────────

func TestTransportErrors(t *testing.T) {
	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		a := newTestAdapter(t, url)
		_, err := a.GetVaultStatus(context.Background())
		assert.ErrorIs(t, err, ErrTransport)
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 50 * time.Millisecond}, config.ClientApp{}, logger.Nop())
		require.NoError(t, err)

		_, err = a.GetVaultStatus(context.Background())
		assert.ErrorIs(t, err, ErrTransport)
	})
}

func TestResponseError_PlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetVersion(context.Background())

	var respErr *ResponseError
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, http.StatusTeapot, respErr.StatusCode)
	assert.Equal(t, "I'm a teapot", respErr.Message)
	assert.NotErrorIs(t, err, ErrConflict)
}

func TestResponseError_GatewayTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream timed out", http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetVault(context.Background(), 0)
	assert.ErrorIs(t, err, ErrGatewayTimeout)
	assert.NotErrorIs(t, err, ErrTransport)
}
