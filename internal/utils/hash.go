// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool holds HMAC-SHA256 instances keyed with the transport hash key.
// It must be initialised via InitHasherPool before Hash is called.
var hasherPool sync.Pool

// InitHasherPool initialises the pool of HMAC-SHA256 hashers used to sign
// and verify vault upload bodies (the HashSHA256 header).
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes HMAC-SHA256 over data using a pooled hasher.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashHex is Hash encoded as lowercase hex, the format of the HashSHA256
// header.
func HashHex(data []byte) string {
	return hex.EncodeToString(Hash(data))
}

// HashString computes a hex HMAC-SHA256 of data with an explicit key,
// without touching the pool. Used for refresh-token digests.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}

// EqualHex compares two hex digests in constant time. Case is ignored;
// strings that are not valid hex never match.
func EqualHex(a, b string) bool {
	ra, err := hex.DecodeString(a)
	if err != nil {
		return false
	}
	rb, err := hex.DecodeString(b)
	if err != nil {
		return false
	}
	return hmac.Equal(ra, rb)
}
