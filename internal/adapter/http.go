// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/vault-sync/internal/config"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/utils"
	"github.com/MKhiriev/vault-sync/models"
	"github.com/go-resty/resty/v2"
)

// HashHeader carries the hex HMAC-SHA256 of a vault upload body.
const HashHeader = "HashSHA256"

type httpServerAdapter struct {
	client *utils.HTTPClient

	hashKey string

	mu     sync.RWMutex
	tokens models.TokenPair

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST [ServerAdapter].
// adapterCfg.HTTPAddress may omit the scheme, in which case http is assumed.
// A non-empty appCfg.HashKey enables the HashSHA256 header on uploads.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	if appCfg.HashKey != "" {
		utils.InitHasherPool(appCfg.HashKey)
	}

	return &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hashKey: appCfg.HashKey,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetTokens(tokens models.TokenPair) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tokens = models.TokenPair{
		Token:        strings.TrimSpace(tokens.Token),
		RefreshToken: strings.TrimSpace(tokens.RefreshToken),
	}
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.tokens.Token
}

func (h *httpServerAdapter) refreshToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.tokens.RefreshToken
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	_, err := h.send(ctx, "register", false, func(r *resty.Request) (*resty.Response, error) {
		return r.SetHeader("Content-Type", "application/json").
			SetBody(req).
			Post("/api/auth/register")
	})
	return err
}

func (h *httpServerAdapter) InitiateLogin(ctx context.Context, req models.InitiateLoginRequest) (models.InitiateLoginResponse, error) {
	var challenge models.InitiateLoginResponse
	_, err := h.send(ctx, "initiate login", false, func(r *resty.Request) (*resty.Response, error) {
		return r.SetHeader("Content-Type", "application/json").
			SetBody(req).
			SetResult(&challenge).
			Post("/api/auth/login/initiate")
	})
	return challenge, err
}

func (h *httpServerAdapter) ValidateLogin(ctx context.Context, req models.ValidateLoginRequest) (models.ValidateLoginResponse, error) {
	var result models.ValidateLoginResponse
	_, err := h.send(ctx, "validate login", false, func(r *resty.Request) (*resty.Response, error) {
		return r.SetHeader("Content-Type", "application/json").
			SetBody(req).
			SetResult(&result).
			Post("/api/auth/login/validate")
	})
	return result, err
}

func (h *httpServerAdapter) ValidateLogin2FA(ctx context.Context, req models.TwoFactorRequest) (models.TokenPair, error) {
	var tokens models.TokenPair
	_, err := h.send(ctx, "validate two-factor", false, func(r *resty.Request) (*resty.Response, error) {
		return r.SetHeader("Content-Type", "application/json").
			SetBody(req).
			SetResult(&tokens).
			Post("/api/auth/login/2fa")
	})
	return tokens, err
}

func (h *httpServerAdapter) Refresh(ctx context.Context) (models.TokenPair, error) {
	refresh := h.refreshToken()
	if refresh == "" {
		return models.TokenPair{}, ErrNoRefreshToken
	}

	var tokens models.TokenPair
	_, err := h.send(ctx, "refresh", false, func(r *resty.Request) (*resty.Response, error) {
		return r.SetHeader("Content-Type", "application/json").
			SetBody(models.RefreshRequest{RefreshToken: refresh}).
			SetResult(&tokens).
			Post("/api/auth/refresh")
	})
	if err != nil {
		return models.TokenPair{}, err
	}

	h.SetTokens(tokens)
	return tokens, nil
}

func (h *httpServerAdapter) EnableTwoFactor(ctx context.Context) (models.EnableTwoFactorResponse, error) {
	var result models.EnableTwoFactorResponse
	_, err := h.authed(ctx, "enable two-factor", func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&result).Post("/api/auth/2fa/enable")
	})
	return result, err
}

func (h *httpServerAdapter) GetVaultStatus(ctx context.Context) (models.VaultStatusResponse, error) {
	var status models.VaultStatusResponse
	_, err := h.authed(ctx, "vault status", func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&status).Get("/api/vault/status")
	})
	return status, err
}

func (h *httpServerAdapter) GetVault(ctx context.Context, revision int64) (models.VaultResponse, error) {
	var vault models.VaultResponse
	_, err := h.authed(ctx, "download vault", func(r *resty.Request) (*resty.Response, error) {
		if revision > 0 {
			r.SetQueryParam("revision", strconv.FormatInt(revision, 10))
		}
		return r.SetResult(&vault).Get("/api/vault")
	})
	return vault, err
}

// UploadVault sends the body as pre-encoded bytes so the HashSHA256 header
// covers exactly what goes on the wire.
func (h *httpServerAdapter) UploadVault(ctx context.Context, req models.UploadVaultRequest) (models.UploadVaultResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return models.UploadVaultResponse{}, fmt.Errorf("encode upload request: %w", err)
	}

	var result models.UploadVaultResponse
	_, err = h.authed(ctx, "upload vault", func(r *resty.Request) (*resty.Response, error) {
		if h.hashKey != "" {
			r.SetHeader(HashHeader, utils.HashHex(body))
		}
		return r.SetHeader("Content-Type", "application/json").
			SetBody(body).
			SetResult(&result).
			Post("/api/vault")
	})
	return result, err
}

func (h *httpServerAdapter) GetVersion(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse
	_, err := h.send(ctx, "version", false, func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&version).Get("/api/version/")
	})
	return version, err
}

// authed sends an authenticated request. A 401 is answered by one token
// refresh and one retry when a refresh token is available.
func (h *httpServerAdapter) authed(ctx context.Context, op string, do func(*resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	resp, err := h.send(ctx, op, true, do)
	if err == nil || !errors.Is(err, ErrUnauthorized) || h.refreshToken() == "" {
		return resp, err
	}

	if _, refreshErr := h.Refresh(ctx); refreshErr != nil {
		h.logger.Debug().Err(refreshErr).Str("func", "*httpServerAdapter.authed").Str("op", op).Msg("token refresh failed")
		return nil, err
	}
	return h.send(ctx, op, true, do)
}

func (h *httpServerAdapter) send(ctx context.Context, op string, withToken bool, do func(*resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); withToken && token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	resp, err := do(req)
	if err != nil {
		h.logger.Debug().Err(err).Str("func", "*httpServerAdapter.send").Str("op", op).Msg("request failed")
		return nil, transportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return resp, nil
}
