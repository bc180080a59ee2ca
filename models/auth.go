// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EncryptionParams are the inputs to key derivation. They are public and
// stored both on the server and locally, so the vault can be unlocked offline.
type EncryptionParams struct {
	// Salt is base64 encoded.
	Salt string `json:"salt"`

	// EncryptionType names the key derivation function, e.g. "argon2id".
	EncryptionType string `json:"encryption_type"`

	// EncryptionSettings is a JSON object with algorithm parameters.
	EncryptionSettings string `json:"encryption_settings"`
}

// RegisterRequest creates an account.
type RegisterRequest struct {
	Username string `json:"username"`
	EncryptionParams
	Verifier string `json:"verifier"`
}

// InitiateLoginRequest starts an SRP exchange.
type InitiateLoginRequest struct {
	Username string `json:"username"`
}

// InitiateLoginResponse carries the server challenge.
type InitiateLoginResponse struct {
	RequestID string `json:"request_id"`
	EncryptionParams

	// ServerEphemeral is the hex-encoded SRP public value B.
	ServerEphemeral string `json:"server_ephemeral"`
}

// ValidateLoginRequest carries the client proof.
type ValidateLoginRequest struct {
	RequestID string `json:"request_id"`

	// ClientEphemeral is the hex-encoded SRP public value A.
	ClientEphemeral string `json:"client_ephemeral"`

	// ClientProof is the hex-encoded M1.
	ClientProof string `json:"client_proof"`
}

// ValidateLoginResponse either completes the login or asks for a second
// factor. ServerProof (M2) is always present after a correct proof.
type ValidateLoginResponse struct {
	RequiresTwoFactor bool   `json:"requires_two_factor"`
	Token             string `json:"token,omitempty"`
	RefreshToken      string `json:"refresh_token,omitempty"`
	ServerProof       string `json:"server_proof,omitempty"`
}

// TwoFactorRequest completes a login that required a second factor.
type TwoFactorRequest struct {
	RequestID string `json:"request_id"`
	Code      string `json:"code"`
}

// RefreshRequest exchanges a refresh token for a new token pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenPair is an access token plus the refresh token that renews it.
type TokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// EnableTwoFactorResponse returns the freshly generated TOTP secret.
type EnableTwoFactorResponse struct {
	Secret string `json:"secret"`
	URI    string `json:"uri"`
}

// AuthChallenge is the server-side state of one SRP exchange.
type AuthChallenge struct {
	RequestID string

	// UserID is zero for challenges issued to unknown usernames. Such
	// challenges always fail validation.
	UserID   int64
	Username string

	// ServerSecret is the hex-encoded ephemeral secret b.
	ServerSecret string
	// ServerPublic is the hex-encoded B.
	ServerPublic string

	// TwoFactorPending is set after a correct proof for a user with 2FA.
	TwoFactorPending bool
	Consumed         bool
	ExpiresAt        time.Time
}

// Expired reports whether the challenge is past its TTL at now.
func (c AuthChallenge) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// PendingLogin is the client-side context of a login waiting for a second
// factor. It is persisted so the exchange survives a client restart. The
// vault key is never stored: a resumed login derives it from the password
// again.
type PendingLogin struct {
	RequestID string
	Username  string
	Params    EncryptionParams

	// KeyCheck is an HMAC of the request id keyed with the vault key. It
	// tells a mistyped password apart on resume.
	KeyCheck string

	ExpiresAt time.Time
}

// Expired reports whether the pending login is past its TTL at now.
func (p PendingLogin) Expired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}

// Device is this client installation's identity.
type Device struct {
	// DeviceID becomes the ClientID of every local modification.
	DeviceID string
}
