// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// SRP-6a over the RFC 5054 2048-bit group with SHA-256.
//
//	k  = H(N | PAD(g))
//	x  = H(salt | H(username ":" hex(authKey)))
//	v  = g^x
//	A  = g^a,            B = k*v + g^b
//	u  = H(PAD(A) | PAD(B))
//	S  = (B - k*g^x)^(a + u*x) = (A * v^u)^b
//	K  = H(S)
//	M1 = H(H(N) xor H(g) | H(username) | salt | A | B | K)
//	M2 = H(A | M1 | K)

var (
	// ErrSRPInvalidEphemeral is returned when a peer's public value is zero
	// modulo N or cannot be parsed.
	ErrSRPInvalidEphemeral = errors.New("srp: invalid public ephemeral")

	// ErrSRPProofMismatch is returned when a proof does not verify.
	ErrSRPProofMismatch = errors.New("srp: proof mismatch")
)

const rfc5054N2048 = "AC6BDB41324A9A9BF166DE5E1389582FAF72B6651987EE07FC3192943DB56050" +
	"A37329CBB4A099ED8193E0757767A13DD52312AB4B03310DCD7F48A9DA04FD50" +
	"E8083969EDB767B0CF6095179A163AB3661A05FBD5FAAAE82918A9962F0B93B8" +
	"55F97993EC975EEAA80D740ADBF4FF747359D041D5C33EA71D281E446B14773B" +
	"CA97B43A23FB801676BD207A436C6481F1D2B9078717461A5B9D32E688F87748" +
	"544523B524B0D57D5EA77A2775D2ECFA032CFBDBF52FB3786160279004E57AE6" +
	"AF874E7303CE53299CCC041C7BC308D82A5698F3A8D0C38271AE35F8E9DBFBB6" +
	"94B5C803D89F7AE435DE236D525F54759B65E372FCD68EF20FA7111F9E4AFF73"

var (
	srpN, _ = new(big.Int).SetString(rfc5054N2048, 16)
	srpG    = big.NewInt(2)
	srpK    = new(big.Int).SetBytes(srpHash(srpN.Bytes(), srpPad(srpG)))
)

// ephemeralBytes is the size of the random secrets a and b.
const ephemeralBytes = 32

func srpHash(parts ...[]byte) []byte {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}

func srpPad(n *big.Int) []byte {
	out := make([]byte, (srpN.BitLen()+7)/8)
	return n.FillBytes(out)
}

func srpX(username string, salt, authKey []byte) *big.Int {
	inner := srpHash([]byte(username + ":" + hex.EncodeToString(authKey)))
	return new(big.Int).SetBytes(srpHash(salt, inner))
}

func srpU(A, B *big.Int) *big.Int {
	return new(big.Int).SetBytes(srpHash(srpPad(A), srpPad(B)))
}

func srpM1(username string, salt []byte, A, B *big.Int, K []byte) []byte {
	hN := srpHash(srpN.Bytes())
	hG := srpHash(srpPad(srpG))
	xored := make([]byte, len(hN))
	for i := range hN {
		xored[i] = hN[i] ^ hG[i]
	}
	return srpHash(xored, srpHash([]byte(username)), salt, srpPad(A), srpPad(B), K)
}

func srpM2(A *big.Int, M1, K []byte) []byte {
	return srpHash(srpPad(A), M1, K)
}

func randomEphemeral() (*big.Int, error) {
	buf := make([]byte, ephemeralBytes)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(buf), nil
}

func parseEphemeral(hexValue string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(hexValue), 16)
	if !ok {
		return nil, ErrSRPInvalidEphemeral
	}
	if new(big.Int).Mod(v, srpN).Sign() == 0 {
		return nil, ErrSRPInvalidEphemeral
	}
	return v, nil
}

// ComputeVerifier returns hex(v) for registration.
func ComputeVerifier(username string, salt, authKey []byte) string {
	x := srpX(username, salt, authKey)
	return hex.EncodeToString(new(big.Int).Exp(srpG, x, srpN).Bytes())
}

// SRPClient holds one client side of an exchange.
type SRPClient struct {
	username string
	salt     []byte
	x        *big.Int
	a        *big.Int
	A        *big.Int

	m1 []byte
	k  []byte
}

// NewSRPClient picks a fresh ephemeral secret for username.
func NewSRPClient(username string, salt, authKey []byte) (*SRPClient, error) {
	a, err := randomEphemeral()
	if err != nil {
		return nil, fmt.Errorf("srp: generate ephemeral: %w", err)
	}
	return &SRPClient{
		username: username,
		salt:     salt,
		x:        srpX(username, salt, authKey),
		a:        a,
		A:        new(big.Int).Exp(srpG, a, srpN),
	}, nil
}

// PublicEphemeral returns hex(A).
func (c *SRPClient) PublicEphemeral() string {
	return hex.EncodeToString(c.A.Bytes())
}

// ComputeProof processes the server's B and returns hex(M1).
func (c *SRPClient) ComputeProof(serverEphemeral string) (string, error) {
	B, err := parseEphemeral(serverEphemeral)
	if err != nil {
		return "", err
	}
	u := srpU(c.A, B)
	if u.Sign() == 0 {
		return "", ErrSRPInvalidEphemeral
	}

	// S = (B - k*g^x) ^ (a + u*x) mod N
	gx := new(big.Int).Exp(srpG, c.x, srpN)
	base := new(big.Int).Sub(B, new(big.Int).Mul(srpK, gx))
	base.Mod(base, srpN)
	exp := new(big.Int).Add(c.a, new(big.Int).Mul(u, c.x))
	S := new(big.Int).Exp(base, exp, srpN)

	c.k = srpHash(srpPad(S))
	c.m1 = srpM1(c.username, c.salt, c.A, B, c.k)
	return hex.EncodeToString(c.m1), nil
}

// VerifyServerProof checks hex(M2). It must be called after ComputeProof.
func (c *SRPClient) VerifyServerProof(serverProof string) error {
	if c.m1 == nil {
		return errors.New("srp: proof not computed")
	}
	got, err := hex.DecodeString(serverProof)
	if err != nil {
		return ErrSRPProofMismatch
	}
	if subtle.ConstantTimeCompare(got, srpM2(c.A, c.m1, c.k)) != 1 {
		return ErrSRPProofMismatch
	}
	return nil
}

// SessionKey returns K. It is nil before ComputeProof.
func (c *SRPClient) SessionKey() []byte {
	return c.k
}

// SRPServer holds one server side of an exchange. Its secret can be stored
// between the two HTTP round-trips with SecretEphemeral and restored with
// RestoreSRPServer.
type SRPServer struct {
	v *big.Int
	b *big.Int
	B *big.Int
}

// NewSRPServer picks a fresh ephemeral secret for the given verifier.
func NewSRPServer(verifier string) (*SRPServer, error) {
	b, err := randomEphemeral()
	if err != nil {
		return nil, fmt.Errorf("srp: generate ephemeral: %w", err)
	}
	return newSRPServer(verifier, b)
}

// RestoreSRPServer rebuilds the server side from a stored secret.
func RestoreSRPServer(verifier, secretEphemeral string) (*SRPServer, error) {
	b, ok := new(big.Int).SetString(secretEphemeral, 16)
	if !ok {
		return nil, errors.New("srp: malformed stored secret")
	}
	return newSRPServer(verifier, b)
}

func newSRPServer(verifier string, b *big.Int) (*SRPServer, error) {
	v, ok := new(big.Int).SetString(verifier, 16)
	if !ok || v.Sign() == 0 {
		return nil, errors.New("srp: malformed verifier")
	}
	// B = (k*v + g^b) mod N
	B := new(big.Int).Mul(srpK, v)
	B.Add(B, new(big.Int).Exp(srpG, b, srpN))
	B.Mod(B, srpN)
	return &SRPServer{v: v, b: b, B: B}, nil
}

// PublicEphemeral returns hex(B).
func (s *SRPServer) PublicEphemeral() string {
	return hex.EncodeToString(s.B.Bytes())
}

// SecretEphemeral returns hex(b) for storage.
func (s *SRPServer) SecretEphemeral() string {
	return s.b.Text(16)
}

// VerifyProof checks the client's A and M1 and returns hex(M2).
func (s *SRPServer) VerifyProof(username string, salt []byte, clientEphemeral, clientProof string) (string, error) {
	A, err := parseEphemeral(clientEphemeral)
	if err != nil {
		return "", err
	}
	u := srpU(A, s.B)
	if u.Sign() == 0 {
		return "", ErrSRPInvalidEphemeral
	}

	// S = (A * v^u) ^ b mod N
	base := new(big.Int).Mul(A, new(big.Int).Exp(s.v, u, srpN))
	base.Mod(base, srpN)
	S := new(big.Int).Exp(base, s.b, srpN)
	K := srpHash(srpPad(S))

	expected := srpM1(username, salt, A, s.B, K)
	got, err := hex.DecodeString(clientProof)
	if err != nil || subtle.ConstantTimeCompare(got, expected) != 1 {
		return "", ErrSRPProofMismatch
	}

	return hex.EncodeToString(srpM2(A, expected, K)), nil
}
