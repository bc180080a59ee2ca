// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/vault-sync/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService does all client-side key handling. It knows nothing about
// the network, the database or users.
//
//	params          = NewEncryptionParams()            (registration)
//	master          = DeriveKey(password, params)      (every unlock)
//	keys            = SplitKeys(master)                (auth key, vault key)
//	blob            = EncryptVault(vault, keys.Vault)
//	vault           = DecryptVault(blob, keys.Vault)
type KeyChainService interface {
	// NewEncryptionParams returns a fresh random salt together with the
	// service's default Argon2id settings.
	NewEncryptionParams() (models.EncryptionParams, error)

	// DeriveKey runs the key derivation function named by params. It is
	// deterministic for identical inputs and fails with a KeyDerivation
	// CryptoError on unknown algorithms or malformed settings.
	DeriveKey(password string, params models.EncryptionParams) ([]byte, error)

	// GenerateKey returns 32 random bytes.
	GenerateKey() ([]byte, error)

	// Encrypt seals plaintext with AES-256-GCM and returns base64(nonce‖ct).
	Encrypt(plaintext, key []byte) (string, error)

	// Decrypt opens a blob produced by Encrypt. Every failure is reported as
	// the same Decryption CryptoError.
	Decrypt(blob string, key []byte) ([]byte, error)

	// EncryptVault encrypts the canonical JSON of v.
	EncryptVault(v models.Vault, key []byte) (string, error)

	// DecryptVault decrypts and decodes a vault blob.
	DecryptVault(blob string, key []byte) (models.Vault, error)
}
