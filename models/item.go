// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"
)

// ItemType enumerates the kinds of entries a vault can hold.
type ItemType string

const (
	ItemTypeLogin      ItemType = "login"
	ItemTypeAlias      ItemType = "alias"
	ItemTypeCreditCard ItemType = "credit_card"
	ItemTypeNote       ItemType = "note"
)

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeLogin, ItemTypeAlias, ItemTypeCreditCard, ItemTypeNote:
		return true
	}
	return false
}

// FieldType describes how a field value is rendered and edited.
type FieldType string

const (
	FieldTypeText      FieldType = "text"
	FieldTypeHidden    FieldType = "hidden"
	FieldTypeEmail     FieldType = "email"
	FieldTypeURL       FieldType = "url"
	FieldTypeTOTP      FieldType = "totp"
	FieldTypeMultiline FieldType = "multiline"
)

// System field keys used by the built-in item types.
const (
	FieldLoginUsername = "login.username"
	FieldLoginPassword = "login.password"
	FieldLoginURLs     = "login.urls"
	FieldLoginNotes    = "login.notes"
	FieldLoginTOTP     = "login.totp"

	FieldAliasEmail = "alias.email"
	FieldAliasNotes = "alias.notes"

	FieldCardHolder  = "card.holder"
	FieldCardNumber  = "card.number"
	FieldCardExpiry  = "card.expiry"
	FieldCardCVV     = "card.cvv"
	FieldCardPIN     = "card.pin"
	FieldCardNotes   = "card.notes"
	FieldNoteContent = "note.content"
)

// MaxFieldHistory is the number of prior values kept per field.
// Older entries are pruned first.
const MaxFieldHistory = 10

// Stamp records when and by whom a single attribute or field was last
// modified. Stamps are compared with [Stamp.Compare] to resolve concurrent
// edits.
type Stamp struct {
	// ModifiedAt is the modification time in Unix milliseconds (UTC).
	ModifiedAt int64 `json:"modified_at"`

	// ClientID identifies the device that produced the modification.
	ClientID string `json:"client_id"`
}

// NewStamp returns a Stamp for the given moment and client.
func NewStamp(at time.Time, clientID string) Stamp {
	return Stamp{ModifiedAt: at.UTC().UnixMilli(), ClientID: clientID}
}

// Compare orders stamps first by ModifiedAt and then by ClientID.
// It returns -1, 0 or +1. Equal stamps must be further ordered by value.
func (s Stamp) Compare(other Stamp) int {
	switch {
	case s.ModifiedAt < other.ModifiedAt:
		return -1
	case s.ModifiedAt > other.ModifiedAt:
		return 1
	case s.ClientID < other.ClientID:
		return -1
	case s.ClientID > other.ClientID:
		return 1
	}
	return 0
}

// Time converts ModifiedAt back into a time.Time.
func (s Stamp) Time() time.Time {
	return time.UnixMilli(s.ModifiedAt).UTC()
}

// ItemStamps holds per-attribute stamps for the item-level attributes, so
// that renaming an item on one device and tagging it on another both
// survive a merge.
type ItemStamps struct {
	ItemType  Stamp `json:"item_type"`
	Name      Stamp `json:"name"`
	FolderID  Stamp `json:"folder_id"`
	Tags      Stamp `json:"tags"`
	IsDeleted Stamp `json:"is_deleted"`
}

// Item is a single vault entry.
//
// Items are never hard-deleted by the sync engine. Deletion sets IsDeleted,
// and the tombstone is merged like any other attribute.
type Item struct {
	// ID is a stable UUID assigned by the creating client.
	ID string `json:"id"`

	ItemType ItemType `json:"item_type"`
	Name     string   `json:"name"`

	// FolderID is optional. An empty string means "no folder".
	FolderID string `json:"folder_id,omitempty"`

	Tags []string `json:"tags,omitempty"`

	// IsDeleted marks the item as a tombstone.
	IsDeleted bool `json:"is_deleted"`

	// Stamps carries the last-modification stamp of every item-level attribute.
	Stamps ItemStamps `json:"stamps"`

	// Fields holds the item's fields. FieldKey is unique within an item.
	Fields []ItemField `json:"fields"`

	// History holds prior values of history-enabled fields.
	History []FieldHistory `json:"history,omitempty"`

	// CreatedAt is the creation time in Unix milliseconds.
	CreatedAt int64 `json:"created_at"`

	// UpdatedAt is the maximum of all attribute and field stamps.
	UpdatedAt int64 `json:"updated_at"`
}

// Field returns the field stored under key and whether it exists.
func (i *Item) Field(key string) (ItemField, bool) {
	for _, f := range i.Fields {
		if f.FieldKey == key {
			return f, true
		}
	}
	return ItemField{}, false
}

// Value returns the first value of the field stored under key, or an empty
// string when the field is missing, deleted or empty.
func (i *Item) Value(key string) string {
	f, ok := i.Field(key)
	if !ok || f.IsDeleted || len(f.Value) == 0 {
		return ""
	}
	return f.Value[0]
}

// RecomputeUpdatedAt sets UpdatedAt to the latest attribute or field stamp.
func (i *Item) RecomputeUpdatedAt() {
	latest := i.Stamps.ItemType.ModifiedAt
	for _, s := range []Stamp{i.Stamps.Name, i.Stamps.FolderID, i.Stamps.Tags, i.Stamps.IsDeleted} {
		latest = max(latest, s.ModifiedAt)
	}
	for _, f := range i.Fields {
		latest = max(latest, f.Stamp.ModifiedAt)
	}
	i.UpdatedAt = latest
}

// ItemField is one field of an Item.
type ItemField struct {
	// FieldKey is a system key such as "login.username" or a UUID for custom
	// fields.
	FieldKey string `json:"field_key"`

	Label     string    `json:"label"`
	FieldType FieldType `json:"field_type"`

	// Value is a single element for scalar fields and an ordered list for
	// multi-value fields such as login URLs.
	Value []string `json:"value"`

	IsHidden      bool `json:"is_hidden"`
	DisplayOrder  int  `json:"display_order"`
	IsCustomField bool `json:"is_custom_field"`
	EnableHistory bool `json:"enable_history"`

	// IsDeleted removes a custom field without losing its stamp.
	IsDeleted bool `json:"is_deleted,omitempty"`

	// Stamp is the field's own last-modified stamp.
	Stamp Stamp `json:"stamp"`
}

// FieldHistory is an immutable snapshot of a field's previous value.
type FieldHistory struct {
	// ID is derived from the other attributes, so the same snapshot created
	// on two devices has the same ID.
	ID       string   `json:"id"`
	ItemID   string   `json:"item_id"`
	FieldKey string   `json:"field_key"`
	Value    []string `json:"value"`

	// Stamp is the stamp the value carried while it was current.
	Stamp Stamp `json:"stamp"`
}
