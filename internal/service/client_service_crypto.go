// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/MKhiriev/vault-sync/internal/crypto"
	"github.com/MKhiriev/vault-sync/models"
)

type clientCryptoService struct {
	keyChain crypto.KeyChainService

	mu  sync.RWMutex
	key []byte
}

func NewClientCryptoService(keyChain crypto.KeyChainService) ClientCryptoService {
	return &clientCryptoService{keyChain: keyChain}
}

func (c *clientCryptoService) SetEncryptionKey(key []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.wipe()
	c.key = append([]byte(nil), key...)
}

func (c *clientCryptoService) ClearEncryptionKey() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.wipe()
}

// wipe must be called with mu held.
func (c *clientCryptoService) wipe() {
	for i := range c.key {
		c.key[i] = 0
	}
	c.key = nil
}

func (c *clientCryptoService) Unlocked() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.key != nil
}

func (c *clientCryptoService) EncryptVault(v models.Vault) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.key == nil {
		return "", ErrVaultLocked
	}
	return c.keyChain.EncryptVault(v, c.key)
}

func (c *clientCryptoService) DecryptVault(blob string) (models.Vault, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.key == nil {
		return models.Vault{}, ErrVaultLocked
	}
	if blob == "" {
		return models.NewVault(), nil
	}
	return c.keyChain.DecryptVault(blob, c.key)
}
