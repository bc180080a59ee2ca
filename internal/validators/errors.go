// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidItemID        = errors.New("invalid item id")
	ErrDuplicateItemID      = errors.New("duplicate item id")
	ErrInvalidItemType      = errors.New("invalid item type")
	ErrEmptyName            = errors.New("name is required")
	ErrEmptyFieldKey        = errors.New("field key is required")
	ErrDuplicateFieldKey    = errors.New("field key is not unique within the item")
	ErrInvalidFieldType     = errors.New("invalid field type")
	ErrHistoryTooLong       = errors.New("field history exceeds the limit")
	ErrForeignHistory       = errors.New("history entry belongs to another item")
	ErrInvalidFormatVersion = errors.New("invalid vault format version")
	ErrUnsupportedFormat    = errors.New("unsupported vault format version")
	ErrInvalidRevision      = errors.New("invalid revision")
	ErrEmptyBlob            = errors.New("blob is required")
	ErrInvalidCount         = errors.New("invalid credentials count")
)
