// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vault-sync/models"
	"github.com/google/uuid"
)

// VaultValidator validates items, decrypted vaults and upload requests.
// Upload formats are checked against [MinFormat, MaxFormat].
type VaultValidator struct {
	MinFormat string
	MaxFormat string
}

// NewVaultValidator returns a validator accepting vault formats from
// minFormat up to the major version of maxFormat.
func NewVaultValidator(minFormat, maxFormat string) *VaultValidator {
	return &VaultValidator{MinFormat: minFormat, MaxFormat: maxFormat}
}

func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch o := obj.(type) {
	case models.Item:
		return v.validateItem(ctx, o, fields...)
	case *models.Item:
		if o == nil {
			return ErrUnsupportedType
		}
		return v.validateItem(ctx, *o, fields...)
	case models.Vault:
		return v.validateVault(ctx, o, fields...)
	case models.UploadVaultRequest:
		return v.validateUploadRequest(ctx, o, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateItem(ctx context.Context, item models.Item, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldItemType, FieldName, FieldFields, FieldHistory}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if _, err := uuid.Parse(item.ID); err != nil {
				return ErrInvalidItemID
			}
		case FieldItemType:
			if !item.ItemType.Valid() {
				return ErrInvalidItemType
			}
		case FieldName:
			if item.Name == "" {
				return ErrEmptyName
			}
		case FieldFields:
			seen := make(map[string]struct{}, len(item.Fields))
			for _, field := range item.Fields {
				if field.FieldKey == "" {
					return ErrEmptyFieldKey
				}
				if _, dup := seen[field.FieldKey]; dup {
					return fmt.Errorf("%w: %s", ErrDuplicateFieldKey, field.FieldKey)
				}
				seen[field.FieldKey] = struct{}{}
				if !isValidFieldType(field.FieldType) {
					return fmt.Errorf("%w: %s", ErrInvalidFieldType, field.FieldKey)
				}
			}
		case FieldHistory:
			perField := make(map[string]int)
			for _, h := range item.History {
				if h.ItemID != item.ID {
					return ErrForeignHistory
				}
				perField[h.FieldKey]++
				if perField[h.FieldKey] > models.MaxFieldHistory {
					return fmt.Errorf("%w: %s", ErrHistoryTooLong, h.FieldKey)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateVault(ctx context.Context, vault models.Vault, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFormatVersion, FieldItems}
	}

	for _, f := range fields {
		switch f {
		case FieldFormatVersion:
			if !IsValidFormat(vault.FormatVersion) {
				return ErrInvalidFormatVersion
			}
		case FieldItems:
			seen := make(map[string]struct{}, len(vault.Items))
			for i, item := range vault.Items {
				if _, dup := seen[item.ID]; dup {
					return fmt.Errorf("validation error at index %d: %w", i, ErrDuplicateItemID)
				}
				seen[item.ID] = struct{}{}
				if err := v.validateItem(ctx, item); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateUploadRequest(ctx context.Context, request models.UploadVaultRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPriorRevision, FieldBlob, FieldFormatVersion, FieldCredentialsCount}
	}

	for _, f := range fields {
		switch f {
		case FieldPriorRevision:
			if request.PriorRevision < 0 {
				return ErrInvalidRevision
			}
		case FieldBlob:
			if request.Blob == "" {
				return ErrEmptyBlob
			}
		case FieldFormatVersion:
			if !IsValidFormat(request.Version) {
				return ErrInvalidFormatVersion
			}
			if !IsSupportedFormat(request.Version, v.MinFormat, v.MaxFormat) {
				return ErrUnsupportedFormat
			}
		case FieldCredentialsCount:
			if request.CredentialsCount < 0 {
				return ErrInvalidCount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
