// Package releaseinfo fetches the release announcement for the running build,
// falling back to the locally cached copy, and records when it has been shown.
package releaseinfo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/thirukguru/release-notice/model"
	"github.com/thirukguru/release-notice/service/github"
	"github.com/thirukguru/release-notice/service/versionstore"
	"github.com/thirukguru/release-notice/utils/logger"
)

const logCategory = "releaseinfo"

// NewService creates the release info service. defaults is the seed record
// compiled into the running build; it is never modified.
func NewService(
	defaults model.VersionRecord,
	project model.Project,
	store versionstore.Service,
	remote github.Service,
	log *logger.Logger,
) Service {
	return &service{
		defaults: defaults,
		working:  defaults,
		project:  project,
		store:    store,
		remote:   remote,
		log:      log,
	}
}

func (s *service) Defaults() model.VersionRecord {
	return s.defaults
}

// FetchReleaseMarkdown always returns displayable markdown: the remote release
// body when available, otherwise the stored (or seed) copy.
func (s *service) FetchReleaseMarkdown(ctx context.Context) string {
	apiURL := s.ReleaseAPIURL()
	s.log.Debug(logCategory, "fetching release markdown from "+apiURL)

	release, err := s.remote.FetchRelease(ctx, apiURL)
	if err != nil {
		s.log.Warning(logCategory, fmt.Sprintf("remote release %s, using local copy: %v", remoteFailure(err), err))
		// The fallback content is shown too, so it counts as prompted.
		s.working.HasPrompted = true
		return s.GetLocalStoredMarkdown(ctx)
	}
	if strings.TrimSpace(release.Body) == "" {
		s.log.Warning(logCategory, "remote release has an empty body, using local copy")
		return s.GetLocalStoredMarkdown(ctx)
	}

	s.working.ReleaseMarkdown = release.Body
	s.working.HasPrompted = true
	s.log.Info(logCategory, "fetched release markdown for "+s.working.Version)

	if s.project.PersistOnFetch {
		if err := s.store.Put(ctx, s.working); err != nil {
			s.log.Warning(logCategory, fmt.Sprintf("could not persist fetched release: %v", err))
		}
	}
	return release.Body
}

func (s *service) GetLocalStoredMarkdown(ctx context.Context) string {
	s.log.Debug(logCategory, "reading locally stored markdown")
	return s.GetCurrentVersionInfo(ctx).ReleaseMarkdown
}

// GetCurrentVersionInfo returns the stored record for the running version. On a
// miss the working copy is written through and returned, even if the write fails.
func (s *service) GetCurrentVersionInfo(ctx context.Context) model.VersionRecord {
	if stored, ok := s.store.Get(ctx, s.working.Version); ok {
		return *stored
	}

	if err := s.store.Put(ctx, s.working); err != nil {
		s.log.Warning(logCategory, fmt.Sprintf("could not persist version %s: %v", s.working.Version, err))
	} else {
		s.log.Debug(logCategory, "stored new version record under "+s.store.Key(s.working.Version))
	}
	return s.working
}

// HideReleasePrompt marks the running version as shown and persists it
// synchronously. Cached markdown already in the store is kept.
func (s *service) HideReleasePrompt(ctx context.Context) error {
	s.working.HasPrompted = true

	record := s.working
	if stored, ok := s.store.Get(ctx, s.working.Version); ok {
		record = *stored
		record.HasPrompted = true
	}
	if err := s.store.Put(ctx, record); err != nil {
		return fmt.Errorf("failed to hide release prompt: %w", err)
	}
	return nil
}

func (s *service) ShouldPrompt(ctx context.Context) bool {
	return s.GetCurrentVersionInfo(ctx).ShouldPrompt()
}

func remoteFailure(err error) string {
	switch {
	case errors.Is(err, github.ErrNotFound):
		return "not found"
	case errors.Is(err, github.ErrStatus):
		return "rejected"
	case errors.Is(err, github.ErrDecode):
		return "malformed"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "timed out"
	default:
		return "unreachable"
	}
}

func (s *service) RepoURL() string {
	return joinURL(s.project.GitHubURL, s.project.Author, s.project.Repo)
}

func (s *service) ReadmeURL() string {
	return s.RepoURL() + "/#readme"
}

func (s *service) IssueURL() string {
	return s.RepoURL() + "/issues"
}

func (s *service) WikiURL() string {
	return s.RepoURL() + "/wiki"
}

func (s *service) ReleaseTagURL() string {
	return s.RepoURL() + "/releases/tag/" + url.PathEscape(s.defaults.Version)
}

// ReleaseAPIURL is <api-host>/repos/<author>/<repo>/releases/tags/<version>.
func (s *service) ReleaseAPIURL() string {
	return joinURL(s.project.APIURL, "repos", s.project.Author, s.project.Repo, "releases", "tags", s.defaults.Version)
}

func (s *service) Links() Links {
	return Links{
		Repo:       s.RepoURL(),
		Readme:     s.ReadmeURL(),
		Issues:     s.IssueURL(),
		Wiki:       s.WikiURL(),
		ReleaseTag: s.ReleaseTagURL(),
		ReleaseAPI: s.ReleaseAPIURL(),
	}
}

func joinURL(base string, parts ...string) string {
	out := strings.TrimRight(base, "/")
	for _, p := range parts {
		out += "/" + url.PathEscape(p)
	}
	return out
}
