// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merge

import (
	"bytes"
	"slices"
	"strings"

	"github.com/MKhiriev/vault-sync/models"
	"golang.org/x/mod/semver"
)

// Merge reconciles local and remote. The returned changes describe which
// side contributed to each item that differs between the inputs.
func Merge(local, remote models.Vault) (models.Vault, models.MergeChanges) {
	localIdx := index(local)
	remoteIdx := index(remote)

	ids := make([]string, 0, len(localIdx)+len(remoteIdx))
	for id := range localIdx {
		ids = append(ids, id)
	}
	for id := range remoteIdx {
		if _, ok := localIdx[id]; !ok {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	merged := models.Vault{
		FormatVersion: newerFormat(local.FormatVersion, remote.FormatVersion),
		Items:         make([]models.Item, 0, len(ids)),
	}
	changes := models.MergeChanges{ConflictedFields: map[string][]string{}}

	for _, id := range ids {
		l, inLocal := localIdx[id]
		r, inRemote := remoteIdx[id]

		switch {
		case inLocal && !inRemote:
			merged.Items = append(merged.Items, normalize(l))
			changes.FromLocal = append(changes.FromLocal, id)
		case inRemote && !inLocal:
			merged.Items = append(merged.Items, normalize(r))
			changes.FromRemote = append(changes.FromRemote, id)
		default:
			item, conflicted := mergeItem(l, r)
			merged.Items = append(merged.Items, item)
			if len(conflicted) > 0 {
				changes.ConflictedFields[id] = conflicted
			}

			mergedJSON := itemJSON(item)
			if !bytes.Equal(mergedJSON, itemJSON(normalize(r))) {
				changes.FromLocal = append(changes.FromLocal, id)
			}
			if !bytes.Equal(mergedJSON, itemJSON(normalize(l))) {
				changes.FromRemote = append(changes.FromRemote, id)
			}
		}
	}

	merged.Canonicalize()
	return merged, changes
}

func index(v models.Vault) map[string]models.Item {
	idx := make(map[string]models.Item, len(v.Items))
	for _, item := range v.Items {
		if prev, ok := idx[item.ID]; ok {
			// Duplicate ids inside one snapshot collapse to their own merge.
			item, _ = mergeItem(prev, item)
		}
		idx[item.ID] = item
	}
	return idx
}

// normalize brings a single item into the shape mergeItem produces: tags
// sorted, duplicate fields dropped, history pruned and UpdatedAt recomputed.
func normalize(item models.Item) models.Item {
	out, _ := mergeItem(item, item)
	return out
}

// mergeItem merges two versions of the same item and returns the keys of
// fields whose values differed.
func mergeItem(l, r models.Item) (models.Item, []string) {
	out := models.Item{ID: l.ID}

	itemType := resolve(side[models.ItemType]{l.ItemType, l.Stamps.ItemType}, side[models.ItemType]{r.ItemType, r.Stamps.ItemType})
	out.ItemType, out.Stamps.ItemType = itemType.winner.value, itemType.winner.stamp

	name := resolve(side[string]{l.Name, l.Stamps.Name}, side[string]{r.Name, r.Stamps.Name})
	out.Name, out.Stamps.Name = name.winner.value, name.winner.stamp

	folder := resolve(side[string]{l.FolderID, l.Stamps.FolderID}, side[string]{r.FolderID, r.Stamps.FolderID})
	out.FolderID, out.Stamps.FolderID = folder.winner.value, folder.winner.stamp

	tags := resolve(side[[]string]{normalizeTags(l.Tags), l.Stamps.Tags}, side[[]string]{normalizeTags(r.Tags), r.Stamps.Tags})
	out.Tags, out.Stamps.Tags = slices.Clone(tags.winner.value), tags.winner.stamp

	deleted := resolve(side[bool]{l.IsDeleted, l.Stamps.IsDeleted}, side[bool]{r.IsDeleted, r.Stamps.IsDeleted})
	out.IsDeleted, out.Stamps.IsDeleted = deleted.winner.value, deleted.winner.stamp

	fields, losers, conflicted := mergeFields(l.Fields, r.Fields)
	out.Fields = fields

	history := make([]models.FieldHistory, 0, len(l.History)+len(r.History)+len(losers))
	history = append(history, l.History...)
	history = append(history, r.History...)
	for _, lost := range losers {
		history = append(history, models.NewFieldHistory(out.ID, lost))
	}
	out.History = pruneHistory(history)

	out.CreatedAt = earliest(l.CreatedAt, r.CreatedAt)
	out.RecomputeUpdatedAt()

	return out.Clone(), conflicted
}

// mergeFields resolves every field key independently. It returns the merged
// fields, the losing versions that must be preserved in history and the keys
// whose values differed.
func mergeFields(local, remote []models.ItemField) ([]models.ItemField, []models.ItemField, []string) {
	remoteByKey := make(map[string]models.ItemField, len(remote))
	for _, f := range remote {
		remoteByKey[f.FieldKey] = f
	}

	merged := make([]models.ItemField, 0, len(local)+len(remote))
	var losers []models.ItemField
	var conflicted []string
	seen := make(map[string]struct{}, len(local))

	for _, lf := range local {
		if _, dup := seen[lf.FieldKey]; dup {
			continue
		}
		seen[lf.FieldKey] = struct{}{}

		rf, ok := remoteByKey[lf.FieldKey]
		if !ok {
			merged = append(merged, lf)
			continue
		}

		res := resolve(side[models.ItemField]{lf, lf.Stamp}, side[models.ItemField]{rf, rf.Stamp})
		merged = append(merged, res.winner.value)

		if !res.differ {
			continue
		}
		// Every superseded version is kept, even one whose value equals the
		// winner's, so the history does not depend on merge order.
		if res.loser.value.EnableHistory {
			losers = append(losers, res.loser.value)
		}
		if !slices.Equal(res.winner.value.Value, res.loser.value.Value) {
			conflicted = append(conflicted, lf.FieldKey)
		}
	}

	for _, rf := range remote {
		if _, ok := seen[rf.FieldKey]; ok {
			continue
		}
		seen[rf.FieldKey] = struct{}{}
		merged = append(merged, rf)
	}

	slices.Sort(conflicted)
	return merged, losers, conflicted
}

// pruneHistory deduplicates entries by ID and keeps the newest
// MaxFieldHistory entries of every field.
func pruneHistory(entries []models.FieldHistory) []models.FieldHistory {
	if len(entries) == 0 {
		return nil
	}

	unique := make(map[string]models.FieldHistory, len(entries))
	for _, h := range entries {
		unique[h.ID] = h
	}

	sorted := make([]models.FieldHistory, 0, len(unique))
	for _, h := range unique {
		sorted = append(sorted, h)
	}
	slices.SortFunc(sorted, models.CompareHistory)

	perField := make(map[string]int, 4)
	for _, h := range sorted {
		perField[h.FieldKey]++
	}

	kept := make([]models.FieldHistory, 0, len(sorted))
	for _, h := range sorted {
		// sorted is oldest first within a field, so skip until only the
		// allowed number remain.
		if perField[h.FieldKey] > models.MaxFieldHistory {
			perField[h.FieldKey]--
			continue
		}
		kept = append(kept, h)
	}
	return kept
}

// PruneHistory applies the history cap to a single item. Local edits use it
// after appending a new snapshot.
func PruneHistory(item *models.Item) {
	item.History = pruneHistory(item.History)
}

func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := slices.Clone(tags)
	slices.Sort(out)
	return slices.Compact(out)
}

func earliest(a, b int64) int64 {
	switch {
	case a == 0:
		return b
	case b == 0:
		return a
	}
	return min(a, b)
}

// newerFormat returns the higher of two semantic versions. Unparseable
// versions lose to parseable ones.
func newerFormat(a, b string) string {
	va, vb := "v"+strings.TrimPrefix(a, "v"), "v"+strings.TrimPrefix(b, "v")
	switch {
	case !semver.IsValid(va) && !semver.IsValid(vb):
		return models.VaultFormatVersion
	case !semver.IsValid(va):
		return vb[1:]
	case !semver.IsValid(vb):
		return va[1:]
	case semver.Compare(va, vb) >= 0:
		return va[1:]
	}
	return vb[1:]
}

func itemJSON(item models.Item) []byte {
	v := models.Vault{Items: []models.Item{item.Clone()}}
	v.Canonicalize()
	return encode(v.Items[0])
}
