package releaseinfo

import (
	"context"

	"github.com/thirukguru/release-notice/model"
	"github.com/thirukguru/release-notice/service/github"
	"github.com/thirukguru/release-notice/service/versionstore"
	"github.com/thirukguru/release-notice/utils/logger"
)

// Links holds the human-facing URLs for the running version.
type Links struct {
	Repo       string `json:"repo"`
	Readme     string `json:"readme"`
	Issues     string `json:"issues"`
	Wiki       string `json:"wiki"`
	ReleaseTag string `json:"release_tag"`
	ReleaseAPI string `json:"release_api"`
}

type service struct {
	defaults model.VersionRecord
	working  model.VersionRecord
	project  model.Project
	store    versionstore.Service
	remote   github.Service
	log      *logger.Logger
}

// Service produces release markdown for the running version and tracks
// whether it has been shown.
type Service interface {
	FetchReleaseMarkdown(ctx context.Context) string
	GetLocalStoredMarkdown(ctx context.Context) string
	GetCurrentVersionInfo(ctx context.Context) model.VersionRecord
	HideReleasePrompt(ctx context.Context) error
	ShouldPrompt(ctx context.Context) bool
	Defaults() model.VersionRecord

	RepoURL() string
	ReadmeURL() string
	IssueURL() string
	WikiURL() string
	ReleaseTagURL() string
	ReleaseAPIURL() string
	Links() Links
}
