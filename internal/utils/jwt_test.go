// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("vault-sync", 42, "alice", time.Hour, "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(42), token.UserID)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "secret", "vault-sync")
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "alice", parsed.Username)

	id, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{name: "empty issuer", duration: time.Hour, key: "k"},
		{name: "zero duration", issuer: "i", key: "k"},
		{name: "empty key", issuer: "i", duration: time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, "u", tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken("vault-sync", 1, "u", time.Hour, "secret")
	require.NoError(t, err)
	expired, err := GenerateJWTToken("vault-sync", 1, "u", -time.Minute, "secret")
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{name: "wrong key", token: valid.SignedString, key: "other", issuer: "vault-sync"},
		{name: "wrong issuer", token: valid.SignedString, key: "secret", issuer: "someone-else"},
		{name: "expired", token: expired.SignedString, key: "secret", issuer: "vault-sync"},
		{name: "malformed", token: "not.a.jwt", key: "secret", issuer: "vault-sync"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tok, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err := ParseBearerToken(header)
		assert.Error(t, err, header)
	}
}
