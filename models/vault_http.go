// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultStatusResponse is returned by GET /api/vault/status.
type VaultStatusResponse struct {
	// CurrentRevisionNumber is the server's revision counter for the user's
	// vault. Zero means no vault was uploaded yet.
	CurrentRevisionNumber int64 `json:"current_revision_number"`

	// FormatVersion is the vault format of the stored blob.
	FormatVersion string `json:"format_version,omitempty"`

	// MinClientFormat and MaxClientFormat bound the vault formats the server
	// accepts on upload.
	MinClientFormat string `json:"min_client_format"`
	MaxClientFormat string `json:"max_client_format"`
}

// VaultResponse is returned by GET /api/vault.
type VaultResponse struct {
	Status string       `json:"status"`
	Vault  VaultPayload `json:"vault"`
}

// VaultPayload is the server's view of a vault. Blob is opaque to the server.
type VaultPayload struct {
	Username                     string    `json:"username"`
	Blob                         string    `json:"blob"`
	Version                      string    `json:"version"`
	CurrentRevisionNumber        int64     `json:"current_revision_number"`
	EncryptionPublicKey          string    `json:"encryption_public_key,omitempty"`
	CredentialsCount             int       `json:"credentials_count"`
	EmailAddressList             []string  `json:"email_address_list"`
	PrivateEmailDomainList       []string  `json:"private_email_domain_list"`
	HiddenPrivateEmailDomainList []string  `json:"hidden_private_email_domain_list"`
	PublicEmailDomainList        []string  `json:"public_email_domain_list"`
	CreatedAt                    time.Time `json:"created_at"`
	UpdatedAt                    time.Time `json:"updated_at"`
}

// UploadVaultRequest is the body of POST /api/vault.
type UploadVaultRequest struct {
	// PriorRevision is the revision the client believes is current on the
	// server. The upload is rejected with 409 if it is stale.
	PriorRevision    int64  `json:"prior_revision"`
	Blob             string `json:"blob"`
	Version          string `json:"version"`
	CredentialsCount int    `json:"credentials_count"`
}

// UploadVaultResponse is the body returned after a successful upload.
type UploadVaultResponse struct {
	CurrentRevisionNumber int64 `json:"current_revision_number"`
}

// StoredVault is a vault row as persisted by the server.
type StoredVault struct {
	UserID           int64
	Revision         int64
	Blob             string
	FormatVersion    string
	CredentialsCount int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
