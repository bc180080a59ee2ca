// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger used by both
// vault-sync binaries.
//
// The server logs JSON to stdout. The client owns the terminal for its TUI,
// so it logs to a file in its data directory instead.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ClientLogFile is the file name the client writes its log to.
const ClientLogFile = "vault-sync.log"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a JSON logger writing to stdout for the given role
// (e.g. "vault-server"). level is a zerolog level name; an empty or unknown
// name selects debug.
func NewLogger(role, level string) *Logger {
	return newLogger(os.Stdout, role, level)
}

// NewClientLogger constructs a logger that appends to ClientLogFile inside
// dir. An empty dir means the directory of the running executable. When the
// file cannot be opened the logger falls back to stderr.
func NewClientLogger(role, level, dir string) *Logger {
	if dir == "" {
		execPath, _ := os.Executable()
		dir = filepath.Dir(execPath)
	}

	var out io.Writer = os.Stderr
	if err := os.MkdirAll(dir, 0o700); err == nil {
		logFile, err := os.OpenFile(filepath.Join(dir, ClientLogFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err == nil {
			out = logFile
		}
	}

	return newLogger(out, role, level)
}

func newLogger(out io.Writer, role, level string) *Logger {
	zerolog.SetGlobalLevel(ParseLevel(level))
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// ParseLevel converts a level name to a zerolog level, defaulting to debug.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.DebugLevel
	}
	return lvl
}

// Nop returns a *Logger that discards all output. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// Component returns a child logger tagged with a "component" field, e.g.
// "sync" or "auth".
func (l *Logger) Component(name string) *Logger {
	return &Logger{l.With().Str("component", name).Logger()}
}

// FromRequest returns the logger attached to the request's context.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx. If none was attached,
// zerolog's default logger is returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
