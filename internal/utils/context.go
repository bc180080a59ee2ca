// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the client and the server:
// typed context keys, HMAC hashing, JSON response writing, the resty HTTP
// client, JWT helpers and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated user id (int64).
var UserIDCtxKey = contextKey("userID")

// UsernameCtxKey stores the authenticated username (string).
var UsernameCtxKey = contextKey("username")

// GetUserIDFromContext retrieves the user identifier from the context.
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetUsernameFromContext retrieves the username from the context.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok
}

// WithUser returns a copy of ctx carrying the user id and username.
func WithUser(ctx context.Context, userID int64, username string) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, UsernameCtxKey, username)
}
