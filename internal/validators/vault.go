// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"slices"
	"strings"

	"github.com/MKhiriev/vault-sync/models"
	"golang.org/x/mod/semver"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldID targets the item UUID.
	FieldID = "id"

	// FieldItemType targets the item kind (login, alias, credit card, note).
	FieldItemType = "item_type"

	// FieldName targets the display name of an item.
	FieldName = "name"

	// FieldFields targets the field list: keys must be present and unique,
	// field types must be known.
	FieldFields = "fields"

	// FieldHistory targets the history list: at most
	// [models.MaxFieldHistory] entries per field, all owned by the item.
	FieldHistory = "history"

	// FieldItems targets every item of a vault plus id uniqueness.
	FieldItems = "items"

	// FieldFormatVersion targets the vault format version.
	FieldFormatVersion = "format_version"

	// FieldPriorRevision targets the prior revision of an upload.
	FieldPriorRevision = "prior_revision"

	// FieldBlob targets the encrypted blob of an upload.
	FieldBlob = "blob"

	// FieldCredentialsCount targets the item counter of an upload.
	FieldCredentialsCount = "credentials_count"
)

// allowedFieldTypes is the exhaustive set of FieldType values accepted by the validator.
// Any FieldType not present in this slice is considered invalid.
var allowedFieldTypes = []models.FieldType{
	models.FieldTypeText,
	models.FieldTypeHidden,
	models.FieldTypeEmail,
	models.FieldTypeURL,
	models.FieldTypeTOTP,
	models.FieldTypeMultiline,
}

func isValidFieldType(t models.FieldType) bool {
	return slices.Contains(allowedFieldTypes, t)
}

// canonicalSemver adds the "v" prefix that x/mod/semver expects.
func canonicalSemver(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

// IsValidFormat reports whether version is a semantic version.
func IsValidFormat(version string) bool {
	return version != "" && semver.IsValid(canonicalSemver(version))
}

// SameMajor reports whether two format versions share the major version.
// Vaults can only be read by builds with the same major format.
func SameMajor(a, b string) bool {
	if !IsValidFormat(a) || !IsValidFormat(b) {
		return false
	}
	return semver.Major(canonicalSemver(a)) == semver.Major(canonicalSemver(b))
}

// IsSupportedFormat reports whether version is not older than minFormat and
// its major version is not newer than the major of maxFormat.
func IsSupportedFormat(version, minFormat, maxFormat string) bool {
	if !IsValidFormat(version) || !IsValidFormat(minFormat) || !IsValidFormat(maxFormat) {
		return false
	}
	v := canonicalSemver(version)
	if semver.Compare(v, canonicalSemver(minFormat)) < 0 {
		return false
	}
	return semver.Compare(semver.Major(v), semver.Major(canonicalSemver(maxFormat))) <= 0
}
