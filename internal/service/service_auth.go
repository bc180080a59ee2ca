// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/vault-sync/internal/config"
	"github.com/MKhiriev/vault-sync/internal/crypto"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/store"
	"github.com/MKhiriev/vault-sync/internal/utils"
	"github.com/MKhiriev/vault-sync/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, the two SRP round trips, the optional TOTP step
// and the JWT and refresh token lifecycle.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// challengeRepository keeps the server ephemeral between InitiateLogin
	// and ValidateLogin.
	challengeRepository store.ChallengeRepository

	refreshTokenRepository store.RefreshTokenRepository

	// hashKey is the HMAC secret behind the fake salts of unknown usernames
	// and the stored refresh token digests. Changing it changes every fake
	// salt, so it must stay stable across restarts.
	hashKey string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	refreshTokenDuration time.Duration

	// challengeTTL bounds each step of the login exchange.
	challengeTTL time.Duration

	totpIssuer string

	// fakeSettings is returned as EncryptionSettings for unknown usernames.
	fakeSettings string

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repositories and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(users store.UserRepository, challenges store.ChallengeRepository, refreshTokens store.RefreshTokenRepository, cfg config.App, logger *logger.Logger) AuthService {
	settings, _ := json.Marshal(crypto.DefaultArgon2Settings)

	return &authService{
		userRepository:         users,
		challengeRepository:    challenges,
		refreshTokenRepository: refreshTokens,
		hashKey:                cfg.PasswordHashKey,
		tokenSignKey:           cfg.TokenSignKey,
		tokenIssuer:            cfg.TokenIssuer,
		tokenDuration:          cfg.TokenDuration,
		refreshTokenDuration:   cfg.RefreshTokenDuration,
		challengeTTL:           cfg.LoginChallengeTTL,
		totpIssuer:             cfg.TOTPIssuer,
		fakeSettings:           string(settings),
		now:                    time.Now,
		logger:                 logger,
	}
}

// RegisterUser creates a new account.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if a field is empty or the verifier is not hex.
//   - ErrUsernameAlreadyExists if the username is taken.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Salt == "" || req.EncryptionType == "" || req.EncryptionSettings == "" || req.Verifier == "" {
		log.Error().Str("username", req.Username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}
	if _, err := hex.DecodeString(req.Verifier); err != nil {
		log.Error().Str("username", req.Username).Msg("verifier is not hex encoded")
		return models.User{}, ErrInvalidDataProvided
	}
	if _, err := base64.StdEncoding.DecodeString(req.Salt); err != nil {
		log.Error().Str("username", req.Username).Msg("salt is not base64 encoded")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:         req.Username,
		EncryptionParams: req.EncryptionParams,
		Verifier:         req.Verifier,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, mapStoreError("user creation ended with error", err)
	}

	return user, nil
}

// InitiateLogin looks the user up and stores a fresh SRP server ephemeral.
// For unknown usernames the salt and verifier are derived from hashKey, so
// repeated requests see the same salt and the response has the same shape
// and cost as for a real account.
func (a *authService) InitiateLogin(ctx context.Context, req models.InitiateLoginRequest) (models.InitiateLoginResponse, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" {
		return models.InitiateLoginResponse{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		user = a.fakeUser(req.Username)
	case err != nil:
		log.Err(err).Str("func", "*authService.InitiateLogin").Str("username", req.Username).Msg("user search by username failed")
		return models.InitiateLoginResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	srv, err := crypto.NewSRPServer(user.Verifier)
	if err != nil {
		log.Err(err).Str("func", "*authService.InitiateLogin").Str("username", req.Username).Msg("error creating srp server")
		return models.InitiateLoginResponse{}, fmt.Errorf("error creating srp server: %w", err)
	}

	challenge := models.AuthChallenge{
		RequestID:    utils.NewRequestID(),
		UserID:       user.UserID,
		Username:     req.Username,
		ServerSecret: srv.SecretEphemeral(),
		ServerPublic: srv.PublicEphemeral(),
		ExpiresAt:    a.now().Add(a.challengeTTL),
	}
	if err = a.challengeRepository.SaveChallenge(ctx, challenge); err != nil {
		log.Err(err).Str("func", "*authService.InitiateLogin").Str("username", req.Username).Msg("error saving challenge")
		return models.InitiateLoginResponse{}, fmt.Errorf("error saving challenge: %w", err)
	}

	return models.InitiateLoginResponse{
		RequestID:        challenge.RequestID,
		EncryptionParams: user.EncryptionParams,
		ServerEphemeral:  challenge.ServerPublic,
	}, nil
}

// ValidateLogin verifies M1 against the stored challenge. A wrong proof
// burns the challenge: every request id allows one attempt.
func (a *authService) ValidateLogin(ctx context.Context, req models.ValidateLoginRequest) (models.ValidateLoginResponse, error) {
	log := logger.FromContext(ctx)

	if req.RequestID == "" || req.ClientEphemeral == "" || req.ClientProof == "" {
		return models.ValidateLoginResponse{}, ErrInvalidDataProvided
	}

	challenge, err := a.activeChallenge(ctx, req.RequestID)
	if err != nil {
		return models.ValidateLoginResponse{}, err
	}
	if challenge.TwoFactorPending {
		return models.ValidateLoginResponse{}, ErrLoginExpired
	}

	user, serverProof, err := a.verifyProof(ctx, challenge, req)
	if err != nil {
		if consumeErr := a.challengeRepository.ConsumeChallenge(ctx, req.RequestID); consumeErr != nil && !errors.Is(consumeErr, store.ErrChallengeNotFound) {
			log.Err(consumeErr).Str("func", "*authService.ValidateLogin").Str("request_id", req.RequestID).Msg("error consuming failed challenge")
		}
		return models.ValidateLoginResponse{}, err
	}

	if user.TwoFactorEnabled() {
		if err = a.challengeRepository.MarkTwoFactorPending(ctx, req.RequestID, a.now().Add(a.challengeTTL)); err != nil {
			log.Err(err).Str("func", "*authService.ValidateLogin").Str("request_id", req.RequestID).Msg("error marking challenge as two-factor pending")
			return models.ValidateLoginResponse{}, mapStoreError("error marking challenge", err)
		}
		return models.ValidateLoginResponse{RequiresTwoFactor: true, ServerProof: serverProof}, nil
	}

	if err = a.challengeRepository.ConsumeChallenge(ctx, req.RequestID); err != nil {
		log.Err(err).Str("func", "*authService.ValidateLogin").Str("request_id", req.RequestID).Msg("error consuming challenge")
		return models.ValidateLoginResponse{}, mapStoreError("error consuming challenge", err)
	}

	tokens, err := a.issueTokens(ctx, user)
	if err != nil {
		return models.ValidateLoginResponse{}, err
	}

	return models.ValidateLoginResponse{
		Token:        tokens.Token,
		RefreshToken: tokens.RefreshToken,
		ServerProof:  serverProof,
	}, nil
}

// ValidateTwoFactor checks the TOTP code of a challenge whose proof was
// accepted. A wrong code burns the challenge.
func (a *authService) ValidateTwoFactor(ctx context.Context, req models.TwoFactorRequest) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if req.RequestID == "" || req.Code == "" {
		return models.TokenPair{}, ErrInvalidDataProvided
	}

	challenge, err := a.activeChallenge(ctx, req.RequestID)
	if err != nil {
		return models.TokenPair{}, err
	}
	if !challenge.TwoFactorPending {
		return models.TokenPair{}, ErrLoginExpired
	}

	user, err := a.userRepository.FindUserByID(ctx, challenge.UserID)
	if err != nil {
		log.Err(err).Str("func", "*authService.ValidateTwoFactor").Int64("user_id", challenge.UserID).Msg("user search by id failed")
		return models.TokenPair{}, fmt.Errorf("user search by id failed: %w", err)
	}

	// consumed before the code check, so a code can be guessed once per proof
	if err = a.challengeRepository.ConsumeChallenge(ctx, req.RequestID); err != nil {
		return models.TokenPair{}, mapStoreError("error consuming challenge", err)
	}

	if !crypto.ValidateTOTP(user.TOTPSecret, req.Code, a.now()) {
		log.Info().Str("func", "*authService.ValidateTwoFactor").Int64("user_id", user.UserID).Msg("invalid two-factor code")
		return models.TokenPair{}, ErrTwoFactorInvalid
	}

	return a.issueTokens(ctx, user)
}

func (a *authService) Refresh(ctx context.Context, req models.RefreshRequest) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if req.RefreshToken == "" {
		return models.TokenPair{}, ErrInvalidDataProvided
	}

	userID, err := a.refreshTokenRepository.ConsumeRefreshToken(ctx, a.refreshTokenHash(req.RefreshToken), a.now())
	if err != nil {
		if !errors.Is(err, store.ErrRefreshTokenNotFound) {
			log.Err(err).Str("func", "*authService.Refresh").Msg("error consuming refresh token")
		}
		return models.TokenPair{}, mapStoreError("error consuming refresh token", err)
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*authService.Refresh").Int64("user_id", userID).Msg("user search by id failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.TokenPair{}, ErrTokenIsExpiredOrInvalid
		}
		return models.TokenPair{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return a.issueTokens(ctx, user)
}

func (a *authService) EnableTwoFactor(ctx context.Context, userID int64) (models.EnableTwoFactorResponse, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*authService.EnableTwoFactor").Int64("user_id", userID).Msg("user search by id failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.EnableTwoFactorResponse{}, ErrTokenIsExpiredOrInvalid
		}
		return models.EnableTwoFactorResponse{}, fmt.Errorf("user search by id failed: %w", err)
	}

	secret, err := crypto.GenerateTOTPSecret()
	if err != nil {
		return models.EnableTwoFactorResponse{}, fmt.Errorf("error generating totp secret: %w", err)
	}

	if err = a.userRepository.SetTOTPSecret(ctx, userID, secret); err != nil {
		log.Err(err).Str("func", "*authService.EnableTwoFactor").Int64("user_id", userID).Msg("error storing totp secret")
		return models.EnableTwoFactorResponse{}, fmt.Errorf("error storing totp secret: %w", err)
	}

	return models.EnableTwoFactorResponse{
		Secret: secret,
		URI:    crypto.TOTPURI(a.totpIssuer, user.Username, secret),
	}, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) DeleteExpiredChallenges(ctx context.Context) (int64, error) {
	deleted, err := a.challengeRepository.DeleteExpiredChallenges(ctx, a.now())
	if err != nil {
		return 0, fmt.Errorf("error deleting expired challenges: %w", err)
	}
	return deleted, nil
}

// activeChallenge loads a challenge that is neither consumed nor expired.
func (a *authService) activeChallenge(ctx context.Context, requestID string) (models.AuthChallenge, error) {
	challenge, err := a.challengeRepository.GetChallenge(ctx, requestID)
	if err != nil {
		if !errors.Is(err, store.ErrChallengeNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*authService.activeChallenge").Str("request_id", requestID).Msg("error getting challenge")
		}
		return models.AuthChallenge{}, mapStoreError("error getting challenge", err)
	}
	if challenge.Consumed || challenge.Expired(a.now()) {
		return models.AuthChallenge{}, ErrLoginExpired
	}
	return challenge, nil
}

// verifyProof returns the user and M2 for a correct proof. Every failure,
// including a challenge issued to an unknown username, is
// ErrInvalidCredentials.
func (a *authService) verifyProof(ctx context.Context, challenge models.AuthChallenge, req models.ValidateLoginRequest) (models.User, string, error) {
	log := logger.FromContext(ctx)

	if challenge.UserID == 0 {
		return models.User{}, "", ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByID(ctx, challenge.UserID)
	if err != nil {
		log.Err(err).Str("func", "*authService.verifyProof").Int64("user_id", challenge.UserID).Msg("user search by id failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, "", ErrInvalidCredentials
		}
		return models.User{}, "", fmt.Errorf("user search by id failed: %w", err)
	}

	salt, err := base64.StdEncoding.DecodeString(user.Salt)
	if err != nil {
		log.Err(err).Str("func", "*authService.verifyProof").Int64("user_id", user.UserID).Msg("stored salt is malformed")
		return models.User{}, "", fmt.Errorf("stored salt is malformed: %w", err)
	}

	srv, err := crypto.RestoreSRPServer(user.Verifier, challenge.ServerSecret)
	if err != nil {
		return models.User{}, "", fmt.Errorf("error restoring srp server: %w", err)
	}

	serverProof, err := srv.VerifyProof(user.Username, salt, req.ClientEphemeral, req.ClientProof)
	if err != nil {
		log.Info().Str("func", "*authService.verifyProof").Int64("user_id", user.UserID).Msg("client proof rejected")
		return models.User{}, "", ErrInvalidCredentials
	}

	return user, serverProof, nil
}

// fakeUser builds the stand-in account answered for unknown usernames.
func (a *authService) fakeUser(username string) models.User {
	digest, _ := hex.DecodeString(utils.HashString("salt:"+username, a.hashKey))
	authKey, _ := hex.DecodeString(utils.HashString("verifier:"+username, a.hashKey))
	salt := digest[:16]

	return models.User{
		Username: username,
		EncryptionParams: models.EncryptionParams{
			Salt:               base64.StdEncoding.EncodeToString(salt),
			EncryptionType:     crypto.EncryptionTypeArgon2id,
			EncryptionSettings: a.fakeSettings,
		},
		Verifier: crypto.ComputeVerifier(username, salt, authKey),
	}
}

// issueTokens signs an access token and stores the digest of a fresh
// refresh token.
func (a *authService) issueTokens(ctx context.Context, user models.User) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.issueTokens").Int64("user_id", user.UserID).Msg("error generating access token")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	raw := make([]byte, 32)
	if _, err = rand.Read(raw); err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	refreshToken := base64.RawURLEncoding.EncodeToString(raw)

	err = a.refreshTokenRepository.SaveRefreshToken(ctx, user.UserID, a.refreshTokenHash(refreshToken), a.now().Add(a.refreshTokenDuration))
	if err != nil {
		log.Err(err).Str("func", "*authService.issueTokens").Int64("user_id", user.UserID).Msg("error saving refresh token")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{Token: token.String(), RefreshToken: refreshToken}, nil
}

func (a *authService) refreshTokenHash(token string) string {
	return utils.HashString(token, a.hashKey)
}
