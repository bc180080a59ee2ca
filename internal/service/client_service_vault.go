// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/merge"
	"github.com/MKhiriev/vault-sync/internal/store"
	"github.com/MKhiriev/vault-sync/internal/utils"
	"github.com/MKhiriev/vault-sync/internal/validators"
	"github.com/MKhiriev/vault-sync/models"
)

type clientVaultService struct {
	vaultStore    store.LocalVaultStore
	cryptoService ClientCryptoService
	validator     validators.Validator
	idGenerator   utils.IDGenerator

	// clientID is written into every stamp this device produces.
	clientID string

	now    func() time.Time
	logger *logger.Logger
}

func NewClientVaultService(vaultStore store.LocalVaultStore, cryptoService ClientCryptoService, clientID string, logger *logger.Logger) ClientVaultService {
	return &clientVaultService{
		vaultStore:    vaultStore,
		cryptoService: cryptoService,
		validator:     validators.NewVaultValidator(models.VaultFormatVersion, models.VaultFormatVersion),
		idGenerator:   utils.NewUUIDGenerator(),
		clientID:      clientID,
		now:           time.Now,
		logger:        logger,
	}
}

func (s *clientVaultService) Items(ctx context.Context, includeDeleted bool) ([]models.Item, error) {
	vault, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	items := vault.Items
	if !includeDeleted {
		items = vault.ActiveItems()
	}
	slices.SortFunc(items, func(a, b models.Item) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			strings.Compare(a.ID, b.ID),
		)
	})
	return items, nil
}

func (s *clientVaultService) Item(ctx context.Context, itemID string) (models.Item, error) {
	vault, err := s.read(ctx)
	if err != nil {
		return models.Item{}, err
	}

	item := vault.Item(itemID)
	if item == nil {
		return models.Item{}, ErrItemNotFound
	}
	return *item, nil
}

func (s *clientVaultService) CreateItem(ctx context.Context, draft models.Item) (models.Item, error) {
	var created models.Item

	err := s.update(ctx, "*clientVaultService.CreateItem", func(vault *models.Vault) error {
		item := draft.Clone()
		if item.ID == "" {
			item.ID = s.idGenerator.Generate()
		}
		if vault.Item(item.ID) != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrDuplicateItemID)
		}

		stamp := s.stamp(models.Stamp{})
		item.Stamps = models.ItemStamps{
			ItemType:  stamp,
			Name:      stamp,
			FolderID:  stamp,
			Tags:      stamp,
			IsDeleted: stamp,
		}
		for i := range item.Fields {
			if item.Fields[i].FieldKey == "" {
				item.Fields[i].FieldKey = s.idGenerator.Generate()
				item.Fields[i].IsCustomField = true
			}
			item.Fields[i].Stamp = stamp
		}
		item.IsDeleted = false
		item.History = nil
		item.CreatedAt = stamp.ModifiedAt
		item.RecomputeUpdatedAt()

		if err := s.validate(ctx, item); err != nil {
			return err
		}

		vault.Items = append(vault.Items, item)
		created = item
		return nil
	})
	if err != nil {
		return models.Item{}, err
	}
	return created, nil
}

// SetField replaces the value and attributes of a field. The previous value
// of a history-enabled field goes to the item history. Setting a field to
// what it already holds is not a mutation.
func (s *clientVaultService) SetField(ctx context.Context, itemID string, field models.ItemField) (models.Item, error) {
	return s.updateItem(ctx, "*clientVaultService.SetField", itemID, func(item *models.Item) (bool, error) {
		if field.FieldKey == "" {
			field.FieldKey = s.idGenerator.Generate()
			field.IsCustomField = true
		}

		idx := slices.IndexFunc(item.Fields, func(f models.ItemField) bool { return f.FieldKey == field.FieldKey })
		if idx < 0 {
			field.Stamp = s.stamp(models.Stamp{})
			item.Fields = append(item.Fields, field)
			return true, nil
		}

		prev := item.Fields[idx]
		field.Stamp = prev.Stamp
		if sameField(prev, field) {
			return false, nil
		}

		if prev.EnableHistory && !prev.IsDeleted && !slices.Equal(prev.Value, field.Value) {
			item.History = append(item.History, models.NewFieldHistory(item.ID, prev))
			merge.PruneHistory(item)
		}
		field.Stamp = s.stamp(prev.Stamp)
		item.Fields[idx] = field
		return true, nil
	})
}

func (s *clientVaultService) DeleteField(ctx context.Context, itemID, fieldKey string) (models.Item, error) {
	return s.updateItem(ctx, "*clientVaultService.DeleteField", itemID, func(item *models.Item) (bool, error) {
		idx := slices.IndexFunc(item.Fields, func(f models.ItemField) bool { return f.FieldKey == fieldKey })
		if idx < 0 {
			return false, ErrFieldNotFound
		}
		if !item.Fields[idx].IsCustomField {
			return false, fmt.Errorf("%w: system fields cannot be deleted", ErrInvalidDataProvided)
		}
		if item.Fields[idx].IsDeleted {
			return false, nil
		}

		item.Fields[idx].IsDeleted = true
		item.Fields[idx].Stamp = s.stamp(item.Fields[idx].Stamp)
		return true, nil
	})
}

func (s *clientVaultService) Rename(ctx context.Context, itemID, name string) (models.Item, error) {
	return s.updateItem(ctx, "*clientVaultService.Rename", itemID, func(item *models.Item) (bool, error) {
		if item.Name == name {
			return false, nil
		}
		item.Name = name
		item.Stamps.Name = s.stamp(item.Stamps.Name)
		return true, nil
	})
}

func (s *clientVaultService) SetTags(ctx context.Context, itemID string, tags []string) (models.Item, error) {
	tags = normalizeTags(tags)

	return s.updateItem(ctx, "*clientVaultService.SetTags", itemID, func(item *models.Item) (bool, error) {
		if slices.Equal(normalizeTags(item.Tags), tags) {
			return false, nil
		}
		item.Tags = tags
		item.Stamps.Tags = s.stamp(item.Stamps.Tags)
		return true, nil
	})
}

func (s *clientVaultService) MoveToFolder(ctx context.Context, itemID, folderID string) (models.Item, error) {
	return s.updateItem(ctx, "*clientVaultService.MoveToFolder", itemID, func(item *models.Item) (bool, error) {
		if item.FolderID == folderID {
			return false, nil
		}
		item.FolderID = folderID
		item.Stamps.FolderID = s.stamp(item.Stamps.FolderID)
		return true, nil
	})
}

func (s *clientVaultService) DeleteItem(ctx context.Context, itemID string) error {
	_, err := s.setDeleted(ctx, "*clientVaultService.DeleteItem", itemID, true)
	return err
}

func (s *clientVaultService) RestoreItem(ctx context.Context, itemID string) error {
	_, err := s.setDeleted(ctx, "*clientVaultService.RestoreItem", itemID, false)
	return err
}

func (s *clientVaultService) setDeleted(ctx context.Context, funcName, itemID string, deleted bool) (models.Item, error) {
	return s.updateItem(ctx, funcName, itemID, func(item *models.Item) (bool, error) {
		if item.IsDeleted == deleted {
			return false, nil
		}
		item.IsDeleted = deleted
		item.Stamps.IsDeleted = s.stamp(item.Stamps.IsDeleted)
		return true, nil
	})
}

func (s *clientVaultService) FieldHistory(ctx context.Context, itemID, fieldKey string) ([]models.FieldHistory, error) {
	item, err := s.Item(ctx, itemID)
	if err != nil {
		return nil, err
	}

	var history []models.FieldHistory
	for _, h := range item.History {
		if h.FieldKey == fieldKey {
			history = append(history, h)
		}
	}
	slices.SortFunc(history, func(a, b models.FieldHistory) int {
		return models.CompareHistory(b, a)
	})
	return history, nil
}

// errNoChange aborts UpdateVault without an error reaching the caller.
var errNoChange = errors.New("no change")

// updateItem applies fn to one item inside a single vault mutation. fn
// reports whether it changed anything; nothing is written when it did not.
func (s *clientVaultService) updateItem(ctx context.Context, funcName, itemID string, fn func(item *models.Item) (bool, error)) (models.Item, error) {
	var result models.Item

	err := s.update(ctx, funcName, func(vault *models.Vault) error {
		item := vault.Item(itemID)
		if item == nil {
			return ErrItemNotFound
		}

		changed, err := fn(item)
		if err != nil {
			return err
		}
		result = item.Clone()
		if !changed {
			return errNoChange
		}

		item.RecomputeUpdatedAt()
		if err = s.validate(ctx, *item); err != nil {
			return err
		}
		result = item.Clone()
		return nil
	})
	if errors.Is(err, errNoChange) {
		return result, nil
	}
	if err != nil {
		return models.Item{}, err
	}
	return result, nil
}

// update runs fn on the decrypted vault as one atomic local mutation.
func (s *clientVaultService) update(ctx context.Context, funcName string, fn func(vault *models.Vault) error) error {
	if !s.cryptoService.Unlocked() {
		return ErrVaultLocked
	}

	_, err := s.vaultStore.UpdateVault(ctx, func(blob string, _ models.SyncState) (string, error) {
		vault, err := s.cryptoService.DecryptVault(blob)
		if err != nil {
			return "", err
		}
		if err = fn(&vault); err != nil {
			return "", err
		}
		return s.cryptoService.EncryptVault(vault)
	})
	if err != nil && !errors.Is(err, errNoChange) {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("local vault mutation failed")
	}
	return err
}

func (s *clientVaultService) read(ctx context.Context) (models.Vault, error) {
	if !s.cryptoService.Unlocked() {
		return models.Vault{}, ErrVaultLocked
	}

	blob, _, err := s.vaultStore.Load(ctx)
	if err != nil {
		return models.Vault{}, fmt.Errorf("error loading local vault: %w", err)
	}
	return s.cryptoService.DecryptVault(blob)
}

func (s *clientVaultService) validate(ctx context.Context, item models.Item) error {
	if err := s.validator.Validate(ctx, item); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

// stamp returns a stamp for a local edit of a value last stamped prev. It
// is strictly newer than prev even if the clock went backwards.
func (s *clientVaultService) stamp(prev models.Stamp) models.Stamp {
	stamp := models.NewStamp(s.now(), s.clientID)
	stamp.ModifiedAt = max(stamp.ModifiedAt, prev.ModifiedAt+1)
	return stamp
}

func sameField(a, b models.ItemField) bool {
	return a.Label == b.Label &&
		a.FieldType == b.FieldType &&
		slices.Equal(a.Value, b.Value) &&
		a.IsHidden == b.IsHidden &&
		a.DisplayOrder == b.DisplayOrder &&
		a.IsCustomField == b.IsCustomField &&
		a.EnableHistory == b.EnableHistory &&
		a.IsDeleted == b.IsDeleted
}

func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := slices.Clone(tags)
	slices.Sort(out)
	return slices.Compact(out)
}
