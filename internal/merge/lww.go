// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merge

import (
	"bytes"
	"encoding/json"

	"github.com/MKhiriev/vault-sync/models"
)

// side is one competing value together with its stamp.
type side[T any] struct {
	value T
	stamp models.Stamp
}

// outcome is the result of resolving two sides of one attribute.
type outcome[T any] struct {
	winner side[T]
	loser  side[T]

	// differ is true when the two sides held different values.
	differ bool
}

// resolve picks the winner of two sides by stamp, then by encoded value.
func resolve[T any](a, b side[T]) outcome[T] {
	aBytes, bBytes := encode(a.value), encode(b.value)
	differ := !bytes.Equal(aBytes, bBytes)

	c := a.stamp.Compare(b.stamp)
	if c == 0 {
		c = bytes.Compare(aBytes, bBytes)
	}
	if c >= 0 {
		return outcome[T]{winner: a, loser: b, differ: differ}
	}
	return outcome[T]{winner: b, loser: a, differ: differ}
}

func encode(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		// Vault values are plain strings, bools and slices.
		panic(err)
	}
	return b
}
