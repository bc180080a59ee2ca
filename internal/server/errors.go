// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNilHandlers         = errors.New("server handlers are nil")
	errNoServersAreCreated = errors.New("no transport configured: set an HTTP or gRPC address")
)
