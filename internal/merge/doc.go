// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package merge reconciles two decrypted vault snapshots.
//
// Items are matched by ID. An item present on one side only is kept as-is.
// Items present on both sides are merged attribute by attribute and field by
// field: every attribute and every field carries its own [models.Stamp], and
// the greater stamp wins (last writer wins). Equal stamps are ordered by the
// canonical JSON of the competing values, so the order is total and the
// result does not depend on which side is "local".
//
// The losing value of a history-enabled field is kept in the item's history,
// which is merged as a set and pruned to [models.MaxFieldHistory] entries per
// field, oldest first.
//
// Merge is pure: it never touches sync state. Its output is canonical, so
// Merge(a, b) and Merge(b, a) encode to the same bytes and merging a result
// with either input again changes nothing.
package merge
