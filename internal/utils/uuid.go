// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// IDGenerator produces identifiers for new vault items and login requests.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator generates time-ordered UUIDv7 identifiers.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random UUIDv4 if the clock
// source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewRequestID returns a random identifier for a login attempt.
func NewRequestID() string {
	return uuid.NewString()
}
