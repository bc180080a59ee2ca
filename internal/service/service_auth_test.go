// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/MKhiriev/vault-sync/internal/config"
	"github.com/MKhiriev/vault-sync/internal/crypto"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/mock"
	"github.com/MKhiriev/vault-sync/internal/store"
	"github.com/MKhiriev/vault-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAppConfig = config.App{
	PasswordHashKey:      "hash-key",
	TokenSignKey:         "sign-key",
	TokenIssuer:          "vault-sync-test",
	TokenDuration:        time.Hour,
	RefreshTokenDuration: 24 * time.Hour,
	LoginChallengeTTL:    time.Minute,
	TOTPIssuer:           "VaultSync",
}

type authFixture struct {
	svc        *authService
	users      *mock.MockUserRepository
	challenges *mock.MockChallengeRepository
	tokens     *mock.MockRefreshTokenRepository
	now        time.Time
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &authFixture{
		users:      mock.NewMockUserRepository(ctrl),
		challenges: mock.NewMockChallengeRepository(ctrl),
		tokens:     mock.NewMockRefreshTokenRepository(ctrl),
		now:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	f.svc = NewAuthService(f.users, f.challenges, f.tokens, testAppConfig, logger.Nop()).(*authService)
	f.svc.now = func() time.Time { return f.now }
	return f
}

// srpAccount is a registered user together with the client secrets needed
// to log in.
type srpAccount struct {
	user    models.User
	authKey []byte
	salt    []byte
}

func newSRPAccount(t *testing.T, userID int64, username, password string) srpAccount {
	t.Helper()
	keyChain := newFastKeyChain()

	params, err := keyChain.NewEncryptionParams()
	require.NoError(t, err)
	master, err := keyChain.DeriveKey(password, params)
	require.NoError(t, err)
	keys, err := crypto.SplitKeys(master)
	require.NoError(t, err)
	salt, err := base64.StdEncoding.DecodeString(params.Salt)
	require.NoError(t, err)

	return srpAccount{
		user: models.User{
			UserID:           userID,
			Username:         username,
			EncryptionParams: params,
			Verifier:         crypto.ComputeVerifier(username, salt, keys.Auth),
		},
		authKey: keys.Auth,
		salt:    salt,
	}
}

// initiate runs InitiateLogin for acc and returns the stored challenge.
func (f *authFixture) initiate(t *testing.T, acc srpAccount) (models.InitiateLoginResponse, models.AuthChallenge) {
	t.Helper()
	var saved models.AuthChallenge

	f.users.EXPECT().FindUserByUsername(gomock.Any(), acc.user.Username).Return(acc.user, nil)
	f.challenges.EXPECT().SaveChallenge(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.AuthChallenge) error {
			saved = c
			return nil
		})

	resp, err := f.svc.InitiateLogin(context.Background(), models.InitiateLoginRequest{Username: acc.user.Username})
	require.NoError(t, err)
	return resp, saved
}

func clientProof(t *testing.T, acc srpAccount, serverEphemeral string) (*crypto.SRPClient, models.ValidateLoginRequest) {
	t.Helper()
	client, err := crypto.NewSRPClient(acc.user.Username, acc.salt, acc.authKey)
	require.NoError(t, err)
	proof, err := client.ComputeProof(serverEphemeral)
	require.NoError(t, err)
	return client, models.ValidateLoginRequest{ClientEphemeral: client.PublicEphemeral(), ClientProof: proof}
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser(t *testing.T) {
	f := newAuthFixture(t)
	acc := newSRPAccount(t, 0, "alice", "pw")

	f.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, acc.user.Verifier, u.Verifier)
			u.UserID = 7
			return u, nil
		})

	user, err := f.svc.RegisterUser(context.Background(), models.RegisterRequest{
		Username:         "alice",
		EncryptionParams: acc.user.EncryptionParams,
		Verifier:         acc.user.Verifier,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestAuthService_RegisterUser_Invalid(t *testing.T) {
	acc := newSRPAccount(t, 0, "alice", "pw")
	valid := models.RegisterRequest{Username: "alice", EncryptionParams: acc.user.EncryptionParams, Verifier: acc.user.Verifier}

	tests := []struct {
		name   string
		mutate func(r *models.RegisterRequest)
	}{
		{"empty username", func(r *models.RegisterRequest) { r.Username = "" }},
		{"empty verifier", func(r *models.RegisterRequest) { r.Verifier = "" }},
		{"verifier not hex", func(r *models.RegisterRequest) { r.Verifier = "zz" }},
		{"salt not base64", func(r *models.RegisterRequest) { r.Salt = "%%%" }},
		{"no settings", func(r *models.RegisterRequest) { r.EncryptionSettings = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			req := valid
			tt.mutate(&req)

			_, err := f.svc.RegisterUser(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_RegisterUser_Taken(t *testing.T) {
	f := newAuthFixture(t)
	acc := newSRPAccount(t, 0, "alice", "pw")

	f.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := f.svc.RegisterUser(context.Background(), models.RegisterRequest{
		Username:         "alice",
		EncryptionParams: acc.user.EncryptionParams,
		Verifier:         acc.user.Verifier,
	})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

// ── login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_RoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)
	acc := newSRPAccount(t, 7, "alice", "pw")

	challengeResp, challenge := f.initiate(t, acc)
	assert.Equal(t, acc.user.EncryptionParams, challengeResp.EncryptionParams)
	assert.Equal(t, challenge.RequestID, challengeResp.RequestID)
	assert.Equal(t, int64(7), challenge.UserID)
	assert.Equal(t, f.now.Add(time.Minute), challenge.ExpiresAt)

	client, req := clientProof(t, acc, challengeResp.ServerEphemeral)
	req.RequestID = challengeResp.RequestID

	f.challenges.EXPECT().GetChallenge(gomock.Any(), challenge.RequestID).Return(challenge, nil)
	f.users.EXPECT().FindUserByID(gomock.Any(), int64(7)).Return(acc.user, nil)
	f.challenges.EXPECT().ConsumeChallenge(gomock.Any(), challenge.RequestID).Return(nil)
	f.tokens.EXPECT().SaveRefreshToken(gomock.Any(), int64(7), gomock.Any(), f.now.Add(24*time.Hour)).Return(nil)

	resp, err := f.svc.ValidateLogin(ctx, req)
	require.NoError(t, err)
	assert.False(t, resp.RequiresTwoFactor)
	assert.NotEmpty(t, resp.RefreshToken)
	require.NoError(t, client.VerifyServerProof(resp.ServerProof), "M2 proves the server knows the verifier")

	token, err := f.svc.ParseToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", token.Username)
	userID, err := token.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestAuthService_Login_WrongPasswordBurnsChallenge(t *testing.T) {
	f := newAuthFixture(t)
	acc := newSRPAccount(t, 7, "alice", "pw")
	wrong := newSRPAccount(t, 7, "alice", "other")
	wrong.salt = acc.salt

	challengeResp, challenge := f.initiate(t, acc)
	_, req := clientProof(t, wrong, challengeResp.ServerEphemeral)
	req.RequestID = challengeResp.RequestID

	f.challenges.EXPECT().GetChallenge(gomock.Any(), challenge.RequestID).Return(challenge, nil)
	f.users.EXPECT().FindUserByID(gomock.Any(), int64(7)).Return(acc.user, nil)
	f.challenges.EXPECT().ConsumeChallenge(gomock.Any(), challenge.RequestID).Return(nil)

	_, err := f.svc.ValidateLogin(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_InitiateLogin_UnknownUserLooksReal(t *testing.T) {
	f := newAuthFixture(t)

	var saved []models.AuthChallenge
	f.users.EXPECT().FindUserByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrNoUserWasFound).Times(2)
	f.challenges.EXPECT().SaveChallenge(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.AuthChallenge) error {
			saved = append(saved, c)
			return nil
		}).Times(2)

	first, err := f.svc.InitiateLogin(context.Background(), models.InitiateLoginRequest{Username: "ghost"})
	require.NoError(t, err)
	second, err := f.svc.InitiateLogin(context.Background(), models.InitiateLoginRequest{Username: "ghost"})
	require.NoError(t, err)

	assert.Equal(t, first.Salt, second.Salt, "the fake salt is stable")
	assert.NotEqual(t, first.ServerEphemeral, second.ServerEphemeral)
	assert.Equal(t, crypto.EncryptionTypeArgon2id, first.EncryptionType)
	assert.NotEmpty(t, first.EncryptionSettings)
	assert.Zero(t, saved[0].UserID)

	// whatever proof follows is rejected like a wrong password
	f.challenges.EXPECT().GetChallenge(gomock.Any(), first.RequestID).Return(saved[0], nil)
	f.challenges.EXPECT().ConsumeChallenge(gomock.Any(), first.RequestID).Return(nil)

	_, err = f.svc.ValidateLogin(context.Background(), models.ValidateLoginRequest{
		RequestID:       first.RequestID,
		ClientEphemeral: "ab",
		ClientProof:     "cd",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ValidateLogin_ExpiredOrConsumed(t *testing.T) {
	tests := []struct {
		name      string
		challenge models.AuthChallenge
		err       error
	}{
		{"expired", models.AuthChallenge{RequestID: "r", UserID: 1, ExpiresAt: time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)}, nil},
		{"consumed", models.AuthChallenge{RequestID: "r", UserID: 1, Consumed: true, ExpiresAt: time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)}, nil},
		{"two-factor pending", models.AuthChallenge{RequestID: "r", UserID: 1, TwoFactorPending: true, ExpiresAt: time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)}, nil},
		{"unknown", models.AuthChallenge{}, store.ErrChallengeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			f.challenges.EXPECT().GetChallenge(gomock.Any(), "r").Return(tt.challenge, tt.err)

			_, err := f.svc.ValidateLogin(context.Background(), models.ValidateLoginRequest{RequestID: "r", ClientEphemeral: "a", ClientProof: "b"})
			assert.ErrorIs(t, err, ErrLoginExpired)
		})
	}
}

func TestAuthService_ValidateLogin_MissingFields(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.ValidateLogin(context.Background(), models.ValidateLoginRequest{RequestID: "r"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── two-factor ───────────────────────────────────────────────────────────────

func TestAuthService_TwoFactor(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)
	acc := newSRPAccount(t, 7, "alice", "pw")
	secret, err := crypto.GenerateTOTPSecret()
	require.NoError(t, err)
	acc.user.TOTPSecret = secret

	challengeResp, challenge := f.initiate(t, acc)
	_, req := clientProof(t, acc, challengeResp.ServerEphemeral)
	req.RequestID = challengeResp.RequestID

	f.challenges.EXPECT().GetChallenge(gomock.Any(), challenge.RequestID).Return(challenge, nil)
	f.users.EXPECT().FindUserByID(gomock.Any(), int64(7)).Return(acc.user, nil)
	f.challenges.EXPECT().MarkTwoFactorPending(gomock.Any(), challenge.RequestID, f.now.Add(time.Minute)).Return(nil)

	resp, err := f.svc.ValidateLogin(ctx, req)
	require.NoError(t, err)
	assert.True(t, resp.RequiresTwoFactor)
	assert.Empty(t, resp.Token, "no tokens before the second factor")

	challenge.TwoFactorPending = true
	code, err := crypto.TOTPCode(secret, f.now)
	require.NoError(t, err)

	f.challenges.EXPECT().GetChallenge(gomock.Any(), challenge.RequestID).Return(challenge, nil)
	f.users.EXPECT().FindUserByID(gomock.Any(), int64(7)).Return(acc.user, nil)
	f.challenges.EXPECT().ConsumeChallenge(gomock.Any(), challenge.RequestID).Return(nil)
	f.tokens.EXPECT().SaveRefreshToken(gomock.Any(), int64(7), gomock.Any(), gomock.Any()).Return(nil)

	tokens, err := f.svc.ValidateTwoFactor(ctx, models.TwoFactorRequest{RequestID: challenge.RequestID, Code: code})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.Token)
}

func TestAuthService_TwoFactor_WrongCode(t *testing.T) {
	f := newAuthFixture(t)
	secret, err := crypto.GenerateTOTPSecret()
	require.NoError(t, err)
	user := models.User{UserID: 7, Username: "alice", TOTPSecret: secret}
	challenge := models.AuthChallenge{RequestID: "r", UserID: 7, TwoFactorPending: true, ExpiresAt: f.now.Add(time.Minute)}

	f.challenges.EXPECT().GetChallenge(gomock.Any(), "r").Return(challenge, nil)
	f.users.EXPECT().FindUserByID(gomock.Any(), int64(7)).Return(user, nil)
	f.challenges.EXPECT().ConsumeChallenge(gomock.Any(), "r").Return(nil)

	_, err = f.svc.ValidateTwoFactor(context.Background(), models.TwoFactorRequest{RequestID: "r", Code: "000000x"})
	assert.ErrorIs(t, err, ErrTwoFactorInvalid)
}

func TestAuthService_TwoFactor_BeforeProof(t *testing.T) {
	f := newAuthFixture(t)
	f.challenges.EXPECT().GetChallenge(gomock.Any(), "r").Return(models.AuthChallenge{RequestID: "r", UserID: 7, ExpiresAt: f.now.Add(time.Minute)}, nil)

	_, err := f.svc.ValidateTwoFactor(context.Background(), models.TwoFactorRequest{RequestID: "r", Code: "123456"})
	assert.ErrorIs(t, err, ErrLoginExpired)
}

func TestAuthService_EnableTwoFactor(t *testing.T) {
	f := newAuthFixture(t)

	f.users.EXPECT().FindUserByID(gomock.Any(), int64(7)).Return(models.User{UserID: 7, Username: "alice"}, nil)
	f.users.EXPECT().SetTOTPSecret(gomock.Any(), int64(7), gomock.Any()).Return(nil)

	resp, err := f.svc.EnableTwoFactor(context.Background(), 7)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Secret)
	assert.Contains(t, resp.URI, "otpauth://totp/")
	assert.Contains(t, resp.URI, resp.Secret)
}

// ── tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_Refresh(t *testing.T) {
	f := newAuthFixture(t)
	hash := f.svc.refreshTokenHash("old")

	f.tokens.EXPECT().ConsumeRefreshToken(gomock.Any(), hash, f.now).Return(int64(7), nil)
	f.users.EXPECT().FindUserByID(gomock.Any(), int64(7)).Return(models.User{UserID: 7, Username: "alice"}, nil)
	f.tokens.EXPECT().SaveRefreshToken(gomock.Any(), int64(7), gomock.Any(), gomock.Any()).Return(nil)

	tokens, err := f.svc.Refresh(context.Background(), models.RefreshRequest{RefreshToken: "old"})
	require.NoError(t, err)
	assert.NotEqual(t, "old", tokens.RefreshToken)
}

func TestAuthService_Refresh_Unknown(t *testing.T) {
	f := newAuthFixture(t)
	f.tokens.EXPECT().ConsumeRefreshToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), store.ErrRefreshTokenNotFound)

	_, err := f.svc.Refresh(context.Background(), models.RefreshRequest{RefreshToken: "gone"})
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	_, err = f.svc.Refresh(context.Background(), models.RefreshRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.ParseToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_DeleteExpiredChallenges(t *testing.T) {
	f := newAuthFixture(t)
	f.challenges.EXPECT().DeleteExpiredChallenges(gomock.Any(), f.now).Return(int64(3), nil)

	n, err := f.svc.DeleteExpiredChallenges(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
