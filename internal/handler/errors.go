// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	errNilServices          = errors.New("handlers need non-nil services")
	errNoHandlersAreCreated = errors.New("no handlers are created: neither HTTP nor gRPC address is set")
)
