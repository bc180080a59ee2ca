// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash_MatchesHMAC(t *testing.T) {
	InitHasherPool("secret-key")

	data := []byte(`{"prior_revision":3,"blob":"abc"}`)
	mac := hmac.New(sha256.New, []byte("secret-key"))
	mac.Write(data)

	assert.Equal(t, mac.Sum(nil), Hash(data))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), HashHex(data))
}

func TestHash_Deterministic(t *testing.T) {
	InitHasherPool("k")

	first := Hash([]byte("payload"))
	second := Hash([]byte("payload"))
	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, Hash([]byte("other")))
}

func TestHash_DifferentKeys(t *testing.T) {
	InitHasherPool("key-a")
	a := HashHex([]byte("payload"))

	InitHasherPool("key-b")
	b := HashHex([]byte("payload"))

	assert.NotEqual(t, a, b)
}

func TestHashString(t *testing.T) {
	a := HashString("refresh-token", "key")
	assert.Len(t, a, 64)
	assert.Equal(t, a, HashString("refresh-token", "key"))
	assert.NotEqual(t, a, HashString("refresh-token", "other"))
}

func TestEqualHex(t *testing.T) {
	assert.True(t, EqualHex("abcd", "abcd"))
	assert.False(t, EqualHex("abcd", "abce"))
	assert.False(t, EqualHex("abcd", "abc"))
	assert.True(t, EqualHex("ABCD", "abcd"))
	assert.False(t, EqualHex("zz", "zz"))
}
