// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo is the build metadata injected by linker flags. The zero
// value reports "N/A" for every field.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values become "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNA(buildVersion),
		buildDate:    orNA(buildDate),
		buildCommit:  orNA(buildCommit),
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func (a AppBuildInfo) BuildVersion() string { return orNA(a.buildVersion) }
func (a AppBuildInfo) BuildDate() string    { return orNA(a.buildDate) }
func (a AppBuildInfo) BuildCommit() string  { return orNA(a.buildCommit) }

// VersionResponse is returned by GET /api/version/.
type VersionResponse struct {
	BuildVersion string `json:"build_version"`
	BuildDate    string `json:"build_date"`
	BuildCommit  string `json:"build_commit"`

	// VaultFormat is the vault format this build writes.
	VaultFormat string `json:"vault_format"`
}

// Response pairs the build metadata with the vault format of this build.
func (a AppBuildInfo) Response() VersionResponse {
	return VersionResponse{
		BuildVersion: a.BuildVersion(),
		BuildDate:    a.BuildDate(),
		BuildCommit:  a.BuildCommit(),
		VaultFormat:  VaultFormatVersion,
	}
}
