// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginState is the client's position in the login exchange.
type LoginState int

const (
	LoginStateIdle LoginState = iota
	LoginStateChallengeRequested
	LoginStateChallengeReceived
	LoginStateProofSubmitted
	LoginStateTwoFactorRequired
	LoginStateAuthenticated
	LoginStateFailed
)

func (s LoginState) String() string {
	switch s {
	case LoginStateIdle:
		return "idle"
	case LoginStateChallengeRequested:
		return "challenge requested"
	case LoginStateChallengeReceived:
		return "challenge received"
	case LoginStateProofSubmitted:
		return "proof submitted"
	case LoginStateTwoFactorRequired:
		return "two-factor required"
	case LoginStateAuthenticated:
		return "authenticated"
	case LoginStateFailed:
		return "failed"
	}
	return "unknown"
}
