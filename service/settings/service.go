// Package settings loads configuration from settings.yaml and the environment.
package settings

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/thirukguru/release-notice/model"
	"github.com/thirukguru/release-notice/service/storage"
	"github.com/thirukguru/release-notice/utils/logger"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPath is used when no --config-path is given.
	DefaultPath = "~/.release-notice/settings.yaml"
	envPrefix   = "RELEASE_NOTICE_"
)

// Defaults returns the built-in configuration.
func Defaults() model.Project {
	return model.Project{
		Author:         "thirukguru",
		Repo:           "release-notice",
		GitHubURL:      "https://github.com",
		APIURL:         "https://api.github.com",
		KeyPrefix:      "ReleaseNoticeVersionInfoKey",
		DBPath:         "",
		HTTPTimeout:    10 * time.Second,
		MaxRetries:     2,
		PersistOnFetch: true,
		LogLevel:       logger.LevelWarning,
	}
}

// NewService creates a settings loader. A nil environ reads the process environment.
func NewService(environ map[string]string) Service {
	return &service{environ: environ}
}

// Load applies defaults, then the YAML file at path, then environment overrides.
// A missing file is only an error when path was given explicitly.
func (s *service) Load(path string) (model.Project, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultPath
	}
	resolved, err := storage.ResolvePath(path)
	if err != nil {
		return model.Project{}, err
	}

	var cfg fileConfig
	raw, err := os.ReadFile(resolved)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return model.Project{}, fmt.Errorf("failed to parse %s: %w", resolved, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return model.Project{}, fmt.Errorf("failed to read %s: %w", resolved, err)
	}

	opts := env.Options{Prefix: envPrefix}
	if s.environ != nil {
		opts.Environment = s.environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return model.Project{}, fmt.Errorf("failed to read environment: %w", err)
	}

	project := merge(Defaults(), cfg)
	if err := Validate(project); err != nil {
		return model.Project{}, err
	}
	return project, nil
}

func merge(p model.Project, cfg fileConfig) model.Project {
	setString(&p.Author, cfg.Project.Author)
	setString(&p.Repo, cfg.Project.Repo)
	setString(&p.GitHubURL, cfg.Project.GitHubURL)
	setString(&p.APIURL, cfg.Project.APIURL)
	setString(&p.KeyPrefix, cfg.Cache.KeyPrefix)
	setString(&p.DBPath, cfg.Cache.DBPath)
	setString(&p.LogLevel, cfg.Logger.Level)
	if cfg.Cache.PersistOnFetch != nil {
		p.PersistOnFetch = *cfg.Cache.PersistOnFetch
	}
	if cfg.HTTP.Timeout != 0 {
		p.HTTPTimeout = cfg.HTTP.Timeout
	}
	if cfg.HTTP.MaxRetries != nil {
		p.MaxRetries = *cfg.HTTP.MaxRetries
	}
	return p
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

// Validate checks a fully merged configuration.
func Validate(p model.Project) error {
	var errs []error
	if p.Author == "" || strings.Contains(p.Author, "/") {
		errs = append(errs, fmt.Errorf("invalid author %q", p.Author))
	}
	if p.Repo == "" || strings.Contains(p.Repo, "/") {
		errs = append(errs, fmt.Errorf("invalid repo %q", p.Repo))
	}
	if p.KeyPrefix == "" {
		errs = append(errs, errors.New("key prefix is required"))
	}
	for name, raw := range map[string]string{"github_url": p.GitHubURL, "api_url": p.APIURL} {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("%s must be an absolute http(s) URL, got %q", name, raw))
		}
	}
	if p.HTTPTimeout <= 0 {
		errs = append(errs, fmt.Errorf("http timeout must be > 0, got %s", p.HTTPTimeout))
	}
	if p.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("max retries must be >= 0, got %d", p.MaxRetries))
	}
	if !logger.ValidLevel(p.LogLevel) {
		errs = append(errs, fmt.Errorf("invalid log level %q", p.LogLevel))
	}
	return errors.Join(errs...)
}
