// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"net/http"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/vault-sync/internal/adapter"
	"github.com/MKhiriev/vault-sync/internal/app"
	"github.com/MKhiriev/vault-sync/internal/config"
	"github.com/MKhiriev/vault-sync/internal/crypto"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/store"
	"github.com/MKhiriev/vault-sync/models"
	"github.com/stretchr/testify/require"
)

// fastArgon2 keeps key derivation cheap in tests.
var fastArgon2 = crypto.Argon2Settings{Time: 1, Memory: 64, Threads: 1, KeyLen: 32}

func newFastKeyChain() crypto.KeyChainService {
	return crypto.NewKeyChainServiceWithSettings(fastArgon2)
}

// fakeUser is an account held by fakeServer.
type fakeUser struct {
	params     models.EncryptionParams
	verifier   string
	totpSecret string
}

type fakeChallenge struct {
	username string
	srp      *crypto.SRPServer
	pending2 bool
}

// fakeServer is an in-memory vault-sync server. It keeps one vault with a
// revision counter and accepts an upload only when its prior revision is
// current.
type fakeServer struct {
	mu         sync.Mutex
	users      map[string]*fakeUser
	challenges map[string]*fakeChallenge
	nextID     int

	revision int64
	blob     string
	format   string
	uploads  int

	// offline makes every call fail with a transport error.
	offline bool
	// beforeUpload, when set, runs before an upload is applied.
	beforeUpload func()
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		users:      map[string]*fakeUser{},
		challenges: map[string]*fakeChallenge{},
	}
}

func (s *fakeServer) setOffline(offline bool) {
	s.mu.Lock()
	s.offline = offline
	s.mu.Unlock()
}

func (s *fakeServer) current() (int64, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision, s.blob
}

func (s *fakeServer) uploadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uploads
}

func responseError(status int, msg string) error {
	return &adapter.ResponseError{StatusCode: status, Message: msg}
}

var errOffline = fakeTransportError{}

type fakeTransportError struct{}

func (fakeTransportError) Error() string        { return "connection refused" }
func (fakeTransportError) Is(target error) bool { return target == adapter.ErrTransport }

// fakeAdapter is one client's connection to a fakeServer.
type fakeAdapter struct {
	server *fakeServer

	mu     sync.Mutex
	tokens models.TokenPair
}

func (a *fakeAdapter) SetTokens(tokens models.TokenPair) {
	a.mu.Lock()
	a.tokens = tokens
	a.mu.Unlock()
}

func (a *fakeAdapter) Token() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tokens.Token
}

func (a *fakeAdapter) Register(_ context.Context, req models.RegisterRequest) error {
	s := a.server
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.offline {
		return errOffline
	}
	if _, ok := s.users[req.Username]; ok {
		return responseError(http.StatusConflict, app.MsgUsernameAlreadyExists)
	}
	s.users[req.Username] = &fakeUser{params: req.EncryptionParams, verifier: req.Verifier}
	return nil
}

func (a *fakeAdapter) InitiateLogin(_ context.Context, req models.InitiateLoginRequest) (models.InitiateLoginResponse, error) {
	s := a.server
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.offline {
		return models.InitiateLoginResponse{}, errOffline
	}
	user, ok := s.users[req.Username]
	if !ok {
		return models.InitiateLoginResponse{}, responseError(http.StatusUnauthorized, app.MsgInvalidCredentials)
	}

	srp, err := crypto.NewSRPServer(user.verifier)
	if err != nil {
		return models.InitiateLoginResponse{}, err
	}
	s.nextID++
	requestID := "req-" + strconv.Itoa(s.nextID)
	s.challenges[requestID] = &fakeChallenge{username: req.Username, srp: srp}

	return models.InitiateLoginResponse{
		RequestID:        requestID,
		EncryptionParams: user.params,
		ServerEphemeral:  srp.PublicEphemeral(),
	}, nil
}

func (a *fakeAdapter) ValidateLogin(_ context.Context, req models.ValidateLoginRequest) (models.ValidateLoginResponse, error) {
	s := a.server
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.offline {
		return models.ValidateLoginResponse{}, errOffline
	}
	challenge, ok := s.challenges[req.RequestID]
	if !ok || challenge.pending2 {
		return models.ValidateLoginResponse{}, responseError(http.StatusUnauthorized, app.MsgLoginExpired)
	}
	user := s.users[challenge.username]
	salt, _ := base64.StdEncoding.DecodeString(user.params.Salt)

	serverProof, err := challenge.srp.VerifyProof(challenge.username, salt, req.ClientEphemeral, req.ClientProof)
	if err != nil {
		delete(s.challenges, req.RequestID)
		return models.ValidateLoginResponse{}, responseError(http.StatusUnauthorized, app.MsgInvalidCredentials)
	}

	if user.totpSecret != "" {
		challenge.pending2 = true
		return models.ValidateLoginResponse{RequiresTwoFactor: true, ServerProof: serverProof}, nil
	}

	delete(s.challenges, req.RequestID)
	return models.ValidateLoginResponse{Token: "access-" + challenge.username, RefreshToken: "refresh", ServerProof: serverProof}, nil
}

func (a *fakeAdapter) ValidateLogin2FA(_ context.Context, req models.TwoFactorRequest) (models.TokenPair, error) {
	s := a.server
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.offline {
		return models.TokenPair{}, errOffline
	}
	challenge, ok := s.challenges[req.RequestID]
	if !ok || !challenge.pending2 {
		return models.TokenPair{}, responseError(http.StatusUnauthorized, app.MsgLoginExpired)
	}
	delete(s.challenges, req.RequestID)

	if !crypto.ValidateTOTP(s.users[challenge.username].totpSecret, req.Code, time.Now()) {
		return models.TokenPair{}, responseError(http.StatusUnauthorized, app.MsgTwoFactorInvalid)
	}
	return models.TokenPair{Token: "access-" + challenge.username, RefreshToken: "refresh"}, nil
}

func (a *fakeAdapter) Refresh(context.Context) (models.TokenPair, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tokens, nil
}

func (a *fakeAdapter) EnableTwoFactor(context.Context) (models.EnableTwoFactorResponse, error) {
	return models.EnableTwoFactorResponse{}, responseError(http.StatusNotFound, "404 page not found")
}

func (a *fakeAdapter) GetVaultStatus(context.Context) (models.VaultStatusResponse, error) {
	s := a.server
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.offline {
		return models.VaultStatusResponse{}, errOffline
	}
	return models.VaultStatusResponse{
		CurrentRevisionNumber: s.revision,
		FormatVersion:         s.format,
		MinClientFormat:       MinClientFormat,
		MaxClientFormat:       MaxClientFormat,
	}, nil
}

func (a *fakeAdapter) GetVault(_ context.Context, _ int64) (models.VaultResponse, error) {
	s := a.server
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.offline {
		return models.VaultResponse{}, errOffline
	}
	if s.revision == 0 {
		return models.VaultResponse{}, responseError(http.StatusNotFound, app.MsgVaultNotFound)
	}
	return models.VaultResponse{
		Status: vaultStatusOK,
		Vault: models.VaultPayload{
			Blob:                  s.blob,
			Version:               s.format,
			CurrentRevisionNumber: s.revision,
		},
	}, nil
}

func (a *fakeAdapter) UploadVault(_ context.Context, req models.UploadVaultRequest) (models.UploadVaultResponse, error) {
	s := a.server

	s.mu.Lock()
	hook := s.beforeUpload
	s.beforeUpload = nil
	s.mu.Unlock()
	if hook != nil {
		hook()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.offline {
		return models.UploadVaultResponse{}, errOffline
	}
	if req.PriorRevision != s.revision {
		return models.UploadVaultResponse{}, responseError(http.StatusConflict, app.MsgStaleRevision)
	}
	s.revision++
	s.blob = req.Blob
	s.format = req.Version
	s.uploads++
	return models.UploadVaultResponse{CurrentRevisionNumber: s.revision}, nil
}

func (a *fakeAdapter) GetVersion(context.Context) (models.VersionResponse, error) {
	return models.VersionResponse{}, nil
}

// testDevice is one client installation: its own SQLite file and services
// sharing a vault key with the other devices of the same account.
type testDevice struct {
	storages *store.ClientStorages
	adapter  *fakeAdapter
	services *ClientServices
}

func newTestDevice(t *testing.T, server *fakeServer, deviceID string) *testDevice {
	t.Helper()

	ctx := context.Background()
	storages, err := store.NewClientStorages(ctx, config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "client.db")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	fa := &fakeAdapter{server: server}
	cfg := &config.ClientConfig{Identity: config.ClientIdentity{DeviceID: deviceID}}

	services, err := NewClientServices(ctx, storages, fa, cfg, logger.Nop())
	require.NoError(t, err)

	keyChain := newFastKeyChain()
	services.AuthService.(*clientAuthService).keyChain = keyChain
	services.CryptoService.(*clientCryptoService).keyChain = keyChain
	services.SyncService.(*clientSyncService).backoff = constantBackoff(MaxMergeAttempts)

	return &testDevice{storages: storages, adapter: fa, services: services}
}

// unlockWith installs key directly, skipping the login exchange.
func (d *testDevice) unlockWith(key []byte) {
	d.services.CryptoService.SetEncryptionKey(key)
}

func (d *testDevice) vault(t *testing.T) models.Vault {
	t.Helper()
	blob, _, err := d.storages.VaultStore.Load(context.Background())
	require.NoError(t, err)
	v, err := d.services.CryptoService.DecryptVault(blob)
	require.NoError(t, err)
	return v
}

func (d *testDevice) state(t *testing.T) models.SyncState {
	t.Helper()
	state, err := d.storages.VaultStore.State(context.Background())
	require.NoError(t, err)
	return state
}
