// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a server-side account. The server never sees the password or the
// vault key: it stores only the SRP verifier and the public key-derivation
// parameters.
type User struct {
	// UserID is the internal identifier. It is not exposed via JSON.
	UserID int64 `json:"-"`

	Username string `json:"username"`

	EncryptionParams

	// Verifier is the hex-encoded SRP verifier v = g^x mod N.
	Verifier string `json:"verifier"`

	// TOTPSecret is the base32 two-factor secret. Empty means two-factor is
	// disabled. Never exposed via JSON.
	TOTPSecret string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TwoFactorEnabled reports whether the user must pass a TOTP check.
func (u User) TwoFactorEnabled() bool {
	return u.TOTPSecret != ""
}

// TableName returns the name of the database table associated with User.
func (u User) TableName() string {
	return "users"
}
