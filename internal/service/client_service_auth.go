// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/vault-sync/internal/adapter"
	"github.com/MKhiriev/vault-sync/internal/app"
	"github.com/MKhiriev/vault-sync/internal/crypto"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/store"
	"github.com/MKhiriev/vault-sync/internal/utils"
	"github.com/MKhiriev/vault-sync/models"
)

// PendingLoginTTL bounds how long a login may wait for its second factor.
const PendingLoginTTL = 5 * time.Minute

// loginSession is the in-memory context of one login exchange.
type loginSession struct {
	requestID       string
	username        string
	params          models.EncryptionParams
	serverEphemeral string

	// vaultKey is held while the second factor is pending. It never leaves
	// memory.
	vaultKey []byte
}

type clientAuthService struct {
	adapter       adapter.ServerAdapter
	keyChain      crypto.KeyChainService
	cryptoService ClientCryptoService

	vaultStore    store.LocalVaultStore
	paramsRepo    store.EncryptionParamsRepository
	pendingLogins store.PendingLoginRepository

	now    func() time.Time
	logger *logger.Logger

	// flow serialises the login operations; mu guards the fields below.
	flow     sync.Mutex
	mu       sync.RWMutex
	state    models.LoginState
	session  *loginSession
	username string
}

func NewClientAuthService(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	keyChain crypto.KeyChainService,
	cryptoService ClientCryptoService,
	logger *logger.Logger,
) ClientAuthService {
	return &clientAuthService{
		adapter:       serverAdapter,
		keyChain:      keyChain,
		cryptoService: cryptoService,
		vaultStore:    storages.VaultStore,
		paramsRepo:    storages.EncryptionParamsRepository,
		pendingLogins: storages.PendingLoginRepository,
		now:           time.Now,
		logger:        logger,
	}
}

func (a *clientAuthService) State() models.LoginState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

func (a *clientAuthService) Username() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.username
}

func (a *clientAuthService) PendingRequestID() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.state != models.LoginStateTwoFactorRequired || a.session == nil {
		return ""
	}
	return a.session.requestID
}

func (a *clientAuthService) setState(state models.LoginState) {
	a.mu.Lock()
	a.state = state
	a.mu.Unlock()
}

// fail moves the machine to Failed, drops the session and returns err.
func (a *clientAuthService) fail(err error) error {
	a.mu.Lock()
	a.state = models.LoginStateFailed
	a.session = nil
	a.mu.Unlock()
	return err
}

func (a *clientAuthService) Register(ctx context.Context, username, password string) error {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return ErrInvalidDataProvided
	}

	params, err := a.keyChain.NewEncryptionParams()
	if err != nil {
		return fmt.Errorf("error generating encryption params: %w", err)
	}

	keys, salt, err := a.deriveKeys(password, params)
	if err != nil {
		return err
	}

	err = a.adapter.Register(ctx, models.RegisterRequest{
		Username:         username,
		EncryptionParams: params,
		Verifier:         crypto.ComputeVerifier(username, salt, keys.Auth),
	})
	if err != nil {
		log.Err(err).Str("func", "*clientAuthService.Register").Str("username", username).Msg("registration failed")
		return mapAdapterError("register", err)
	}

	return nil
}

func (a *clientAuthService) Login(ctx context.Context, username, password string) (bool, error) {
	if err := a.InitiateLogin(ctx, username); err != nil {
		return false, err
	}
	return a.ValidateLogin(ctx, password)
}

func (a *clientAuthService) InitiateLogin(ctx context.Context, username string) error {
	a.flow.Lock()
	defer a.flow.Unlock()

	if username == "" {
		return ErrInvalidDataProvided
	}
	if !canStartLogin(a.State()) {
		return ErrInvalidLoginState
	}

	a.setState(models.LoginStateChallengeRequested)

	challenge, err := a.adapter.InitiateLogin(ctx, models.InitiateLoginRequest{Username: username})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientAuthService.InitiateLogin").Str("username", username).Msg("initiate login failed")
		return a.fail(mapAdapterError("initiate login", err))
	}

	a.mu.Lock()
	a.session = &loginSession{
		requestID:       challenge.RequestID,
		username:        username,
		params:          challenge.EncryptionParams,
		serverEphemeral: challenge.ServerEphemeral,
	}
	a.state = models.LoginStateChallengeReceived
	a.mu.Unlock()

	return nil
}

func (a *clientAuthService) ValidateLogin(ctx context.Context, password string) (bool, error) {
	a.flow.Lock()
	defer a.flow.Unlock()

	log := logger.FromContext(ctx)

	a.mu.RLock()
	state, session := a.state, a.session
	a.mu.RUnlock()
	if state != models.LoginStateChallengeReceived || session == nil {
		return false, ErrInvalidLoginState
	}

	keys, salt, err := a.deriveKeys(password, session.params)
	if err != nil {
		return false, a.fail(err)
	}

	srp, err := crypto.NewSRPClient(session.username, salt, keys.Auth)
	if err != nil {
		return false, a.fail(fmt.Errorf("error creating srp client: %w", err))
	}
	proof, err := srp.ComputeProof(session.serverEphemeral)
	if err != nil {
		log.Err(err).Str("func", "*clientAuthService.ValidateLogin").Msg("server ephemeral rejected")
		return false, a.fail(&app.AuthError{Reason: app.InvalidCredentials, Err: err})
	}

	a.setState(models.LoginStateProofSubmitted)

	resp, err := a.adapter.ValidateLogin(ctx, models.ValidateLoginRequest{
		RequestID:       session.requestID,
		ClientEphemeral: srp.PublicEphemeral(),
		ClientProof:     proof,
	})
	if err != nil {
		return false, a.fail(mapAdapterError("validate login", err))
	}

	// tokens are trusted only after the server proved it knows the verifier
	if err = srp.VerifyServerProof(resp.ServerProof); err != nil {
		log.Error().Str("func", "*clientAuthService.ValidateLogin").Msg("server proof mismatch")
		return false, a.fail(&app.AuthError{Reason: app.InvalidCredentials, Err: err})
	}

	if resp.RequiresTwoFactor {
		if err = a.savePendingLogin(ctx, session, keys.Vault); err != nil {
			return false, a.fail(err)
		}
		a.mu.Lock()
		session.vaultKey = keys.Vault
		a.state = models.LoginStateTwoFactorRequired
		a.mu.Unlock()
		return true, nil
	}

	tokens := models.TokenPair{Token: resp.Token, RefreshToken: resp.RefreshToken}
	return false, a.complete(ctx, session, keys.Vault, tokens)
}

func (a *clientAuthService) ValidateLogin2FA(ctx context.Context, code string) error {
	a.flow.Lock()
	defer a.flow.Unlock()

	a.mu.RLock()
	state, session := a.state, a.session
	a.mu.RUnlock()
	if state != models.LoginStateTwoFactorRequired || session == nil || session.vaultKey == nil {
		return ErrInvalidLoginState
	}
	if code == "" {
		return ErrInvalidDataProvided
	}

	// the persisted entry carries the TTL
	_, err := a.pendingLogins.GetPendingLogin(ctx, session.requestID)
	if err != nil {
		if errors.Is(err, store.ErrPendingLoginNotFound) {
			return a.fail(&app.AuthError{Reason: app.LoginExpired, Err: err})
		}
		return fmt.Errorf("error loading pending login: %w", err)
	}

	tokens, err := a.adapter.ValidateLogin2FA(ctx, models.TwoFactorRequest{RequestID: session.requestID, Code: code})
	if err != nil {
		mapped := mapAdapterError("validate two-factor", err)
		if errors.Is(mapped, app.ErrNetwork) {
			// the server never saw the code, the user may retry
			return mapped
		}
		a.deletePendingLogin(ctx, session.requestID)
		return a.fail(mapped)
	}

	return a.complete(ctx, session, session.vaultKey, tokens)
}

func (a *clientAuthService) ResumeLogin(ctx context.Context, requestID, password string) error {
	a.flow.Lock()
	defer a.flow.Unlock()

	if !canStartLogin(a.State()) {
		return ErrInvalidLoginState
	}
	if requestID == "" || password == "" {
		return ErrInvalidDataProvided
	}

	pending, err := a.pendingLogins.GetPendingLogin(ctx, requestID)
	if err != nil {
		if errors.Is(err, store.ErrPendingLoginNotFound) {
			return &app.AuthError{Reason: app.LoginExpired, Err: err}
		}
		return fmt.Errorf("error loading pending login: %w", err)
	}

	keys, _, err := a.deriveKeys(password, pending.Params)
	if err != nil {
		return err
	}
	if !utils.EqualHex(pendingKeyCheck(pending.RequestID, keys.Vault), pending.KeyCheck) {
		logger.FromContext(ctx).Info().Str("username", pending.Username).Msg("resume login rejected")
		return &app.AuthError{Reason: app.InvalidCredentials}
	}

	a.mu.Lock()
	a.session = &loginSession{
		requestID: pending.RequestID,
		username:  pending.Username,
		params:    pending.Params,
		vaultKey:  keys.Vault,
	}
	a.state = models.LoginStateTwoFactorRequired
	a.mu.Unlock()

	return nil
}

func (a *clientAuthService) CancelLogin(ctx context.Context) error {
	a.flow.Lock()
	defer a.flow.Unlock()

	a.mu.Lock()
	session := a.session
	a.session = nil
	if a.state != models.LoginStateAuthenticated {
		a.state = models.LoginStateIdle
	}
	a.mu.Unlock()

	if session == nil {
		return nil
	}
	if err := a.pendingLogins.DeletePendingLogin(ctx, session.requestID); err != nil {
		return fmt.Errorf("error deleting pending login: %w", err)
	}
	return nil
}

// Unlock verifies the password by decrypting the local vault. It needs no
// network: the encryption params were cached by an earlier login.
func (a *clientAuthService) Unlock(ctx context.Context, username, password string) error {
	a.flow.Lock()
	defer a.flow.Unlock()

	params, err := a.paramsRepo.GetEncryptionParams(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrEncryptionParamsNotFound) {
			return ErrUnknownUser
		}
		return fmt.Errorf("error loading encryption params: %w", err)
	}

	blob, _, err := a.vaultStore.Load(ctx)
	if err != nil {
		return fmt.Errorf("error loading local vault: %w", err)
	}
	if blob == "" {
		return ErrUnknownUser
	}

	keys, _, err := a.deriveKeys(password, params)
	if err != nil {
		return err
	}

	if _, err = a.keyChain.DecryptVault(blob, keys.Vault); err != nil {
		logger.FromContext(ctx).Info().Str("username", username).Msg("offline unlock rejected")
		return &app.AuthError{Reason: app.InvalidCredentials, Err: err}
	}

	a.cryptoService.SetEncryptionKey(keys.Vault)

	a.mu.Lock()
	a.username = username
	a.mu.Unlock()

	return nil
}

func (a *clientAuthService) Lock() {
	a.cryptoService.ClearEncryptionKey()
}

func (a *clientAuthService) EnableTwoFactor(ctx context.Context) (models.EnableTwoFactorResponse, error) {
	resp, err := a.adapter.EnableTwoFactor(ctx)
	if err != nil {
		return models.EnableTwoFactorResponse{}, mapAdapterError("enable two-factor", err)
	}
	return resp, nil
}

// complete opens the local vault with the new key and finishes the login.
// A device that holds no vault yet gets an empty one, so the password can
// later be checked offline.
func (a *clientAuthService) complete(ctx context.Context, session *loginSession, vaultKey []byte, tokens models.TokenPair) error {
	log := logger.FromContext(ctx)

	blob, state, err := a.vaultStore.Load(ctx)
	if err != nil {
		return a.fail(fmt.Errorf("error loading local vault: %w", err))
	}

	if blob == "" {
		empty, err := a.keyChain.EncryptVault(models.NewVault(), vaultKey)
		if err != nil {
			return a.fail(fmt.Errorf("error encrypting empty vault: %w", err))
		}
		seq := state.MutationSequence
		if _, err = a.vaultStore.StoreWithSyncState(ctx, models.StoreVaultRequest{Blob: empty, ExpectedMutationSeq: &seq}); err != nil {
			return a.fail(fmt.Errorf("error storing empty vault: %w", err))
		}
	} else if _, err = a.keyChain.DecryptVault(blob, vaultKey); err != nil {
		log.Error().Str("func", "*clientAuthService.complete").Str("username", session.username).Msg("local vault cannot be opened with this account's key")
		return a.fail(ErrLocalVaultBelongsToAnotherAccount)
	}

	if err = a.paramsRepo.SaveEncryptionParams(ctx, session.username, session.params); err != nil {
		return a.fail(fmt.Errorf("error caching encryption params: %w", err))
	}

	a.adapter.SetTokens(tokens)
	a.cryptoService.SetEncryptionKey(vaultKey)
	a.deletePendingLogin(ctx, session.requestID)

	a.mu.Lock()
	a.username = session.username
	a.session = nil
	a.state = models.LoginStateAuthenticated
	a.mu.Unlock()

	log.Info().Str("username", session.username).Msg("logged in")
	return nil
}

func (a *clientAuthService) deriveKeys(password string, params models.EncryptionParams) (crypto.Keys, []byte, error) {
	salt, err := base64.StdEncoding.DecodeString(params.Salt)
	if err != nil {
		return crypto.Keys{}, nil, &app.CryptoError{Kind: app.KeyDerivation, Err: err}
	}

	master, err := a.keyChain.DeriveKey(password, params)
	if err != nil {
		return crypto.Keys{}, nil, err
	}

	keys, err := crypto.SplitKeys(master)
	if err != nil {
		return crypto.Keys{}, nil, err
	}
	return keys, salt, nil
}

// savePendingLogin persists what a restarted client needs to finish the
// login. The vault key itself stays in memory.
func (a *clientAuthService) savePendingLogin(ctx context.Context, session *loginSession, vaultKey []byte) error {
	err := a.pendingLogins.SavePendingLogin(ctx, models.PendingLogin{
		RequestID: session.requestID,
		Username:  session.username,
		Params:    session.params,
		KeyCheck:  pendingKeyCheck(session.requestID, vaultKey),
		ExpiresAt: a.now().Add(PendingLoginTTL),
	})
	if err != nil {
		return fmt.Errorf("error saving pending login: %w", err)
	}
	return nil
}

// pendingKeyCheck binds the vault key to one request id. Testing a password
// against it costs a full key derivation.
func pendingKeyCheck(requestID string, vaultKey []byte) string {
	return utils.HashString("pending-login:"+requestID, string(vaultKey))
}

func (a *clientAuthService) deletePendingLogin(ctx context.Context, requestID string) {
	if requestID == "" {
		return
	}
	if err := a.pendingLogins.DeletePendingLogin(ctx, requestID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientAuthService.deletePendingLogin").Str("request_id", requestID).Msg("error deleting pending login")
	}
}
