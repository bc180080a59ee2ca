// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var ErrNilDependency = errors.New("client services and ui are required")
