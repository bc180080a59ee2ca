// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_RoleAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("vault-server", "info")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "vault-server", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.DebugLevel},
		{"nonsense", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{" WARN ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"trace", zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewLogger_SetsGlobalLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	NewLogger("vault-server", "warn")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	l := NewClientLogger("vault-client", "debug", dir)

	l.Info().Str("func", "test").Msg("written to file")

	content, err := os.ReadFile(filepath.Join(dir, ClientLogFile))
	require.NoError(t, err)
	assert.Contains(t, string(content), "written to file")
	assert.Contains(t, string(content), `"role":"vault-client"`)
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestComponent_AddsFieldAndKeepsParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("vault-client", "debug")
	parent.Logger = parent.Output(&buf)

	child := parent.Component("sync")
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "vault-client", entry["role"])
	assert.Equal(t, "sync", entry["component"])
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role", "debug")
	parent.Logger = parent.Output(&buf)

	parent.GetChildLogger().Info().Msg("child message")

	assert.Equal(t, "inherited-role", decodeEntry(t, &buf)["role"])
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "ctx-value", decodeEntry(t, &buf)["ctx-key"])
}

func TestFromContext_NeverNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req-value", decodeEntry(t, &buf)["req-key"])
}
