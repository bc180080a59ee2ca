// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT access token.
//
// It embeds [jwt.RegisteredClaims] so it can be passed directly to
// jwt.ParseWithClaims, and adds the Username claim so handlers can label
// vault responses without another database round-trip.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// Username is the account name the token was issued for.
	Username string `json:"username,omitempty"`

	// SignedString is the compact JWS form. Use [Token.String].
	SignedString string `json:"-"`

	// UserID caches the parsed "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as an int64 user id.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
