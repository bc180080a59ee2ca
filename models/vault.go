// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// VaultFormatVersion is the semantic version of the decrypted vault layout
// written by this build. Vaults with a different major version cannot be
// read.
const VaultFormatVersion = "1.0.0"

// historyNamespace seeds deterministic FieldHistory identifiers.
var historyNamespace = uuid.MustParse("4b0f9d4e-58a8-4f7e-9a3a-0d6a2f3c1e55")

// Vault is the decrypted content of a vault blob.
type Vault struct {
	FormatVersion string `json:"format_version"`
	Items         []Item `json:"items"`
}

// NewVault returns an empty vault in the current format.
func NewVault() Vault {
	return Vault{FormatVersion: VaultFormatVersion, Items: []Item{}}
}

// Item returns a pointer to the item with the given id, or nil.
func (v *Vault) Item(id string) *Item {
	for i := range v.Items {
		if v.Items[i].ID == id {
			return &v.Items[i]
		}
	}
	return nil
}

// ActiveItems returns items that are not tombstoned.
func (v *Vault) ActiveItems() []Item {
	active := make([]Item, 0, len(v.Items))
	for _, item := range v.Items {
		if !item.IsDeleted {
			active = append(active, item)
		}
	}
	return active
}

// Canonicalize sorts and normalises the vault in place so that two vaults
// with the same content always encode to the same bytes.
func (v *Vault) Canonicalize() {
	if v.FormatVersion == "" {
		v.FormatVersion = VaultFormatVersion
	}
	if v.Items == nil {
		v.Items = []Item{}
	}
	for i := range v.Items {
		v.Items[i].canonicalize()
	}
	slices.SortFunc(v.Items, func(a, b Item) int {
		return strings.Compare(a.ID, b.ID)
	})
}

// CanonicalJSON returns the canonical encoding of a copy of v.
func (v Vault) CanonicalJSON() ([]byte, error) {
	c := v.Clone()
	c.Canonicalize()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Clone returns a deep copy of v.
func (v Vault) Clone() Vault {
	out := Vault{FormatVersion: v.FormatVersion, Items: make([]Item, len(v.Items))}
	for i, item := range v.Items {
		out.Items[i] = item.Clone()
	}
	return out
}

// Clone returns a deep copy of i.
func (i Item) Clone() Item {
	out := i
	out.Tags = slices.Clone(i.Tags)
	out.Fields = make([]ItemField, len(i.Fields))
	for k, f := range i.Fields {
		f.Value = slices.Clone(f.Value)
		out.Fields[k] = f
	}
	out.History = make([]FieldHistory, len(i.History))
	for k, h := range i.History {
		h.Value = slices.Clone(h.Value)
		out.History[k] = h
	}
	return out
}

func (i *Item) canonicalize() {
	if len(i.Tags) == 0 {
		i.Tags = nil
	} else {
		slices.Sort(i.Tags)
		i.Tags = slices.Compact(i.Tags)
	}

	if i.Fields == nil {
		i.Fields = []ItemField{}
	}
	for k := range i.Fields {
		if i.Fields[k].Value == nil {
			i.Fields[k].Value = []string{}
		}
	}
	slices.SortFunc(i.Fields, func(a, b ItemField) int {
		if a.DisplayOrder != b.DisplayOrder {
			return a.DisplayOrder - b.DisplayOrder
		}
		return strings.Compare(a.FieldKey, b.FieldKey)
	})

	if len(i.History) == 0 {
		i.History = nil
		return
	}
	for k := range i.History {
		if i.History[k].Value == nil {
			i.History[k].Value = []string{}
		}
	}
	slices.SortFunc(i.History, CompareHistory)
}

// CompareHistory orders history entries by field, then oldest first.
func CompareHistory(a, b FieldHistory) int {
	if c := strings.Compare(a.FieldKey, b.FieldKey); c != 0 {
		return c
	}
	if c := a.Stamp.Compare(b.Stamp); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// NewFieldHistory snapshots the current value of field for item itemID.
func NewFieldHistory(itemID string, field ItemField) FieldHistory {
	var key strings.Builder
	key.WriteString(itemID)
	key.WriteByte(0)
	key.WriteString(field.FieldKey)
	key.WriteByte(0)
	key.WriteString(strconv.FormatInt(field.Stamp.ModifiedAt, 10))
	key.WriteByte(0)
	key.WriteString(field.Stamp.ClientID)
	for _, v := range field.Value {
		key.WriteByte(0)
		key.WriteString(v)
	}

	return FieldHistory{
		ID:       uuid.NewSHA1(historyNamespace, []byte(key.String())).String(),
		ItemID:   itemID,
		FieldKey: field.FieldKey,
		Value:    slices.Clone(field.Value),
		Stamp:    field.Stamp,
	}
}
