// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func srpFixture() (username string, salt, authKey []byte) {
	return "alice", []byte("0123456789abcdef"), []byte("auth-key-derived-from-argon2id!!")
}

func TestSRP_Handshake(t *testing.T) {
	username, salt, authKey := srpFixture()
	verifier := ComputeVerifier(username, salt, authKey)

	server, err := NewSRPServer(verifier)
	require.NoError(t, err)

	client, err := NewSRPClient(username, salt, authKey)
	require.NoError(t, err)

	m1, err := client.ComputeProof(server.PublicEphemeral())
	require.NoError(t, err)

	m2, err := server.VerifyProof(username, salt, client.PublicEphemeral(), m1)
	require.NoError(t, err)

	require.NoError(t, client.VerifyServerProof(m2))
	assert.Len(t, client.SessionKey(), 32)
}

func TestSRP_RestoredServer(t *testing.T) {
	username, salt, authKey := srpFixture()
	verifier := ComputeVerifier(username, salt, authKey)

	first, err := NewSRPServer(verifier)
	require.NoError(t, err)
	restored, err := RestoreSRPServer(verifier, first.SecretEphemeral())
	require.NoError(t, err)
	assert.Equal(t, first.PublicEphemeral(), restored.PublicEphemeral())

	client, err := NewSRPClient(username, salt, authKey)
	require.NoError(t, err)
	m1, err := client.ComputeProof(first.PublicEphemeral())
	require.NoError(t, err)

	_, err = restored.VerifyProof(username, salt, client.PublicEphemeral(), m1)
	assert.NoError(t, err)
}

func TestSRP_WrongPassword(t *testing.T) {
	username, salt, authKey := srpFixture()
	server, err := NewSRPServer(ComputeVerifier(username, salt, authKey))
	require.NoError(t, err)

	client, err := NewSRPClient(username, salt, []byte("a different derived key........."))
	require.NoError(t, err)
	m1, err := client.ComputeProof(server.PublicEphemeral())
	require.NoError(t, err)

	_, err = server.VerifyProof(username, salt, client.PublicEphemeral(), m1)
	assert.ErrorIs(t, err, ErrSRPProofMismatch)
}

func TestSRP_WrongUsername(t *testing.T) {
	username, salt, authKey := srpFixture()
	server, err := NewSRPServer(ComputeVerifier(username, salt, authKey))
	require.NoError(t, err)

	client, err := NewSRPClient("mallory", salt, authKey)
	require.NoError(t, err)
	m1, err := client.ComputeProof(server.PublicEphemeral())
	require.NoError(t, err)

	_, err = server.VerifyProof(username, salt, client.PublicEphemeral(), m1)
	assert.ErrorIs(t, err, ErrSRPProofMismatch)
}

func TestSRP_RejectsDegenerateEphemerals(t *testing.T) {
	username, salt, authKey := srpFixture()
	verifier := ComputeVerifier(username, salt, authKey)
	server, err := NewSRPServer(verifier)
	require.NoError(t, err)
	client, err := NewSRPClient(username, salt, authKey)
	require.NoError(t, err)

	nHex := hex.EncodeToString(srpN.Bytes())
	for _, bad := range []string{"0", nHex, "zz"} {
		_, err := client.ComputeProof(bad)
		assert.ErrorIs(t, err, ErrSRPInvalidEphemeral, bad)

		_, err = server.VerifyProof(username, salt, bad, "00")
		assert.ErrorIs(t, err, ErrSRPInvalidEphemeral, bad)
	}
}

func TestSRP_ForgedServerProof(t *testing.T) {
	username, salt, authKey := srpFixture()
	server, err := NewSRPServer(ComputeVerifier(username, salt, authKey))
	require.NoError(t, err)
	client, err := NewSRPClient(username, salt, authKey)
	require.NoError(t, err)

	assert.Error(t, client.VerifyServerProof("00"), "before ComputeProof")

	_, err = client.ComputeProof(server.PublicEphemeral())
	require.NoError(t, err)
	assert.ErrorIs(t, client.VerifyServerProof(hex.EncodeToString(make([]byte, 32))), ErrSRPProofMismatch)
	assert.ErrorIs(t, client.VerifyServerProof("not-hex"), ErrSRPProofMismatch)
}

func TestComputeVerifier_Deterministic(t *testing.T) {
	username, salt, authKey := srpFixture()
	assert.Equal(t, ComputeVerifier(username, salt, authKey), ComputeVerifier(username, salt, authKey))
	assert.NotEqual(t, ComputeVerifier(username, salt, authKey), ComputeVerifier(username, []byte("other salt"), authKey))
}
