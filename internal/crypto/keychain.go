// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/vault-sync/internal/app"
	"github.com/MKhiriev/vault-sync/models"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

// EncryptionTypeArgon2id is the only supported key derivation function.
const EncryptionTypeArgon2id = "argon2id"

const (
	saltLen = 16
	keyLen  = 32

	// maxArgonMemory caps the memory cost a server-supplied setting may
	// request (KiB).
	maxArgonMemory = 2 * 1024 * 1024
)

// Argon2Settings is the JSON document stored in
// EncryptionParams.EncryptionSettings.
type Argon2Settings struct {
	Time    uint32 `json:"time"`
	Memory  uint32 `json:"memory"`
	Threads uint8  `json:"threads"`
	KeyLen  uint32 `json:"key_len"`
}

// DefaultArgon2Settings are the OWASP recommended parameters:
// 1 iteration, 64 MiB, 4 lanes, 256-bit output.
var DefaultArgon2Settings = Argon2Settings{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
	KeyLen:  keyLen,
}

func (s Argon2Settings) validate() error {
	switch {
	case s.Time == 0:
		return errors.New("argon2 time must be positive")
	case s.Threads == 0:
		return errors.New("argon2 threads must be positive")
	case s.Memory < 8*uint32(s.Threads):
		return errors.New("argon2 memory must be at least 8*threads KiB")
	case s.Memory > maxArgonMemory:
		return errors.New("argon2 memory too large")
	case s.KeyLen != keyLen:
		return fmt.Errorf("argon2 key length must be %d", keyLen)
	}
	return nil
}

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	defaults Argon2Settings
}

// NewKeyChainService constructs a [KeyChainService] that issues
// [DefaultArgon2Settings] for new accounts.
func NewKeyChainService() KeyChainService {
	return &keyChainService{defaults: DefaultArgon2Settings}
}

// NewKeyChainServiceWithSettings is NewKeyChainService with custom defaults
// for new accounts. Existing accounts keep their stored settings.
func NewKeyChainServiceWithSettings(settings Argon2Settings) KeyChainService {
	return &keyChainService{defaults: settings}
}

func (k *keyChainService) NewEncryptionParams() (models.EncryptionParams, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return models.EncryptionParams{}, fmt.Errorf("generate salt: %w", err)
	}

	settings, err := json.Marshal(k.defaults)
	if err != nil {
		return models.EncryptionParams{}, fmt.Errorf("marshal settings: %w", err)
	}

	return models.EncryptionParams{
		Salt:               base64.StdEncoding.EncodeToString(salt),
		EncryptionType:     EncryptionTypeArgon2id,
		EncryptionSettings: string(settings),
	}, nil
}

func (k *keyChainService) DeriveKey(password string, params models.EncryptionParams) ([]byte, error) {
	if params.EncryptionType != EncryptionTypeArgon2id {
		return nil, &app.CryptoError{Kind: app.KeyDerivation, Err: fmt.Errorf("unsupported encryption type %q", params.EncryptionType)}
	}

	salt, err := base64.StdEncoding.DecodeString(params.Salt)
	if err != nil || len(salt) < 8 {
		return nil, &app.CryptoError{Kind: app.KeyDerivation, Err: errors.New("malformed salt")}
	}

	var settings Argon2Settings
	if err := json.Unmarshal([]byte(params.EncryptionSettings), &settings); err != nil {
		return nil, &app.CryptoError{Kind: app.KeyDerivation, Err: fmt.Errorf("malformed settings: %w", err)}
	}
	if err := settings.validate(); err != nil {
		return nil, &app.CryptoError{Kind: app.KeyDerivation, Err: err}
	}

	return argon2.IDKey([]byte(password), salt, settings.Time, settings.Memory, settings.Threads, settings.KeyLen), nil
}

func (k *keyChainService) GenerateKey() ([]byte, error) {
	key := make([]byte, keyLen)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// Encrypt seals plaintext with AES-256-GCM. The nonce is prepended to the
// ciphertext: blob = base64(nonce ‖ ciphertext).
func (k *keyChainService) Encrypt(plaintext, key []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

func (k *keyChainService) Decrypt(encryptedB64 string, key []byte) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(encryptedB64)
	if err != nil {
		return nil, decryptionError(err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, decryptionError(err)
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize+gcm.Overhead() {
		return nil, decryptionError(errors.New("ciphertext too short"))
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, decryptionError(err)
	}

	return plaintext, nil
}

func (k *keyChainService) EncryptVault(v models.Vault, key []byte) (string, error) {
	plaintext, err := v.CanonicalJSON()
	if err != nil {
		return "", fmt.Errorf("marshal vault: %w", err)
	}
	return k.Encrypt(plaintext, key)
}

func (k *keyChainService) DecryptVault(blob string, key []byte) (models.Vault, error) {
	plaintext, err := k.Decrypt(blob, key)
	if err != nil {
		return models.Vault{}, err
	}

	var v models.Vault
	if err := json.Unmarshal(plaintext, &v); err != nil {
		return models.Vault{}, decryptionError(err)
	}
	v.Canonicalize()
	return v, nil
}

// Keys are the two purpose-bound keys expanded from the derived master key.
type Keys struct {
	// Auth feeds the SRP private value x. It never encrypts data.
	Auth []byte
	// Vault encrypts the vault blob.
	Vault []byte
}

// SplitKeys expands master into independent auth and vault keys with
// HKDF-SHA256, so the SRP verifier held by the server is unrelated to the
// vault encryption key.
func SplitKeys(master []byte) (Keys, error) {
	expand := func(info string) ([]byte, error) {
		out := make([]byte, keyLen)
		if _, err := io.ReadFull(hkdf.New(sha256.New, master, nil, []byte(info)), out); err != nil {
			return nil, &app.CryptoError{Kind: app.KeyDerivation, Err: err}
		}
		return out, nil
	}

	auth, err := expand("vault-sync srp auth")
	if err != nil {
		return Keys{}, err
	}
	vault, err := expand("vault-sync vault encryption")
	if err != nil {
		return Keys{}, err
	}
	return Keys{Auth: auth, Vault: vault}, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != keyLen {
		return nil, fmt.Errorf("key must be %d bytes", keyLen)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func decryptionError(err error) error {
	return &app.CryptoError{Kind: app.Decryption, Err: err}
}
