// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NewItemDraft returns an item of the given type with its system fields in
// display order and empty values. An unknown type yields an item without
// fields.
func NewItemDraft(itemType ItemType, name string) Item {
	item := Item{ItemType: itemType, Name: name}
	for i, f := range itemTemplates[itemType] {
		f.DisplayOrder = i
		f.Value = []string{""}
		item.Fields = append(item.Fields, f)
	}
	return item
}

var itemTemplates = map[ItemType][]ItemField{
	ItemTypeLogin: {
		{FieldKey: FieldLoginUsername, Label: "Username", FieldType: FieldTypeEmail},
		{FieldKey: FieldLoginPassword, Label: "Password", FieldType: FieldTypeHidden, IsHidden: true, EnableHistory: true},
		{FieldKey: FieldLoginURLs, Label: "Websites", FieldType: FieldTypeURL},
		{FieldKey: FieldLoginTOTP, Label: "One-time code secret", FieldType: FieldTypeTOTP, IsHidden: true},
		{FieldKey: FieldLoginNotes, Label: "Notes", FieldType: FieldTypeMultiline},
	},
	ItemTypeAlias: {
		{FieldKey: FieldAliasEmail, Label: "Email", FieldType: FieldTypeEmail},
		{FieldKey: FieldAliasNotes, Label: "Notes", FieldType: FieldTypeMultiline},
	},
	ItemTypeCreditCard: {
		{FieldKey: FieldCardHolder, Label: "Cardholder", FieldType: FieldTypeText},
		{FieldKey: FieldCardNumber, Label: "Number", FieldType: FieldTypeHidden, IsHidden: true},
		{FieldKey: FieldCardExpiry, Label: "Expires", FieldType: FieldTypeText},
		{FieldKey: FieldCardCVV, Label: "CVV", FieldType: FieldTypeHidden, IsHidden: true},
		{FieldKey: FieldCardPIN, Label: "PIN", FieldType: FieldTypeHidden, IsHidden: true, EnableHistory: true},
		{FieldKey: FieldCardNotes, Label: "Notes", FieldType: FieldTypeMultiline},
	},
	ItemTypeNote: {
		{FieldKey: FieldNoteContent, Label: "Content", FieldType: FieldTypeMultiline, EnableHistory: true},
	},
}
