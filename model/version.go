// Package model defines the data structures used throughout the application.
package model

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// VersionInfo contains build-time metadata about the application.
type VersionInfo struct {
	Version     string
	BuildNumber int
	Commit      string
	Date        string
}

// VersionRecord is the persisted release announcement state for a single version.
// JSON names match the payloads written by earlier releases of the extension.
type VersionRecord struct {
	Version         string `json:"version"`
	BuildNumber     int    `json:"buildNumber"`
	ReleaseDate     string `json:"versionDate"`
	ReleaseMarkdown string `json:"releaseMarkdown"`
	NeedsPrompt     bool   `json:"isNeedPrompt"`
	HasPrompted     bool   `json:"hasPrompted"`
}

// NewVersionRecord builds the seed record for a build. HasPrompted always starts false.
func NewVersionRecord(info VersionInfo, markdown string) (VersionRecord, error) {
	v := strings.TrimSpace(info.Version)
	if _, err := semver.NewVersion(strings.TrimPrefix(v, "v")); err != nil {
		return VersionRecord{}, fmt.Errorf("invalid version %q: %w", info.Version, err)
	}

	return VersionRecord{
		Version:         v,
		BuildNumber:     info.BuildNumber,
		ReleaseDate:     info.Date,
		ReleaseMarkdown: markdown,
		NeedsPrompt:     true,
		HasPrompted:     false,
	}, nil
}

// ShouldPrompt reports whether the record still has to be surfaced to the user.
func (r VersionRecord) ShouldPrompt() bool {
	return r.NeedsPrompt && !r.HasPrompted
}
