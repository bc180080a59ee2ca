// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/mock"
	"github.com/MKhiriev/vault-sync/internal/service"
	"github.com/MKhiriev/vault-sync/internal/utils"
	"github.com/MKhiriev/vault-sync/models"
)

const testToken = "test-access-token"

// ── fixture ──────────────────────────────────────────────────────────────────

type handlerFixture struct {
	router  http.Handler
	auth    *mock.MockAuthService
	vault   *mock.MockVaultService
	appInfo *mock.MockAppInfoService
}

func newFixture(t *testing.T, hashKey string) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &handlerFixture{
		auth:    mock.NewMockAuthService(ctrl),
		vault:   mock.NewMockVaultService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	h := NewHandler(&service.Services{
		AuthService:    f.auth,
		VaultService:   f.vault,
		AppInfoService: f.appInfo,
	}, hashKey, logger.Nop())
	f.router = h.Init()
	return f
}

// expectToken makes testToken valid for user 7 "alice".
func (f *handlerFixture) expectToken() {
	f.auth.EXPECT().ParseToken(gomock.Any(), testToken).
		Return(models.Token{UserID: 7, Username: "alice"}, nil)
}

func (f *handlerFixture) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var raw []byte
	switch b := body.(type) {
	case nil:
	case []byte:
		raw = b
	case string:
		raw = []byte(b)
	default:
		var err error
		raw, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func bearer() map[string]string {
	return map[string]string{"Authorization": "Bearer " + testToken}
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Error
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

// ── NewHandler ───────────────────────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, "", log)
	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.False(t, h.hashing)

	assert.True(t, NewHandler(svc, "secret", log).hashing)
}

// ── Init ─────────────────────────────────────────────────────────────────────

func TestInit_RegistersAllRoutes(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/register"},
		{http.MethodPost, "/api/auth/login/initiate"},
		{http.MethodPost, "/api/auth/login/validate"},
		{http.MethodPost, "/api/auth/login/2fa"},
		{http.MethodPost, "/api/auth/refresh"},
		{http.MethodPost, "/api/auth/2fa/enable"},
		{http.MethodGet, "/api/vault/status"},
		{http.MethodGet, "/api/vault"},
		{http.MethodPost, "/api/vault"},
	}

	f := newFixture(t, "")
	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			// an empty body is either rejected by decoding or by the auth
			// middleware, both of which prove the route exists
			rec := f.do(t, tc.method, tc.path, nil, nil)
			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	f := newFixture(t, "")

	rec := f.do(t, http.MethodGet, "/api/data/all", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	f := newFixture(t, "")

	rec := f.do(t, http.MethodDelete, "/api/vault", nil, bearer())
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusNotFound), errorMessage(t, rec))
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	f := newFixture(t, "")
	f.appInfo.EXPECT().BuildInfo(gomock.Any()).Return(models.VersionResponse{})

	rec := f.do(t, http.MethodGet, "/api/version/", nil, nil)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
