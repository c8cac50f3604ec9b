// Package main is the entry point for the release-notice application.
package main

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/thirukguru/release-notice/model"
	"github.com/thirukguru/release-notice/service/flag"
	"github.com/thirukguru/release-notice/service/github"
	"github.com/thirukguru/release-notice/service/output"
	"github.com/thirukguru/release-notice/service/releaseinfo"
	"github.com/thirukguru/release-notice/service/settings"
	"github.com/thirukguru/release-notice/service/storage"
	"github.com/thirukguru/release-notice/service/versionstore"
	"github.com/thirukguru/release-notice/utils/console"
	"github.com/thirukguru/release-notice/utils/logger"
)

var (
	version     = "0.1.0"
	buildNumber = "1"
	commit      = "none"
	date        = "unknown"
)

//go:embed release_notes.md
var releaseNotesTemplate string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, nil); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the wired services for one invocation.
type app struct {
	flags    model.Flags
	info     model.VersionInfo
	stdout   io.Writer
	terminal *os.File
	log      *logger.Logger
	store    storage.Service
	versions versionstore.Service
	release  releaseinfo.Service
	output   output.Service
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, environ map[string]string) error {
	flags, rest, err := flag.NewService().GetParsedFlags(args)
	if err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	info, err := buildVersionInfo()
	if err != nil {
		return err
	}

	if flags.Version {
		_, err := fmt.Fprintf(stdout, "release-notice %s (build %d, commit %s, %s)\n", info.Version, info.BuildNumber, info.Commit, info.Date)
		return err
	}

	a, err := newApp(flags, info, stdout, stderr, environ)
	if err != nil {
		return err
	}
	defer a.store.Close()

	return a.dispatch(ctx, rest)
}

func buildVersionInfo() (model.VersionInfo, error) {
	build, err := strconv.Atoi(strings.TrimSpace(buildNumber))
	if err != nil {
		return model.VersionInfo{}, fmt.Errorf("invalid build number %q: %w", buildNumber, err)
	}
	return model.VersionInfo{Version: version, BuildNumber: build, Commit: commit, Date: date}, nil
}

func renderReleaseNotes(info model.VersionInfo) string {
	return strings.NewReplacer("{{version}}", info.Version, "{{date}}", info.Date).Replace(releaseNotesTemplate)
}

func newApp(flags model.Flags, info model.VersionInfo, stdout, stderr io.Writer, environ map[string]string) (*app, error) {
	project, err := settings.NewService(environ).Load(flags.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if flags.DBPath != "" {
		project.DBPath = flags.DBPath
	}
	if flags.LogLevel != "" {
		project.LogLevel = flags.LogLevel
	}

	log, err := logger.New(stderr, project.LogLevel)
	if err != nil {
		return nil, err
	}

	seed, err := model.NewVersionRecord(info, renderReleaseNotes(info))
	if err != nil {
		return nil, err
	}

	store, err := storage.NewService(project.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Debug("main", "using store "+store.Path())

	versions := versionstore.NewService(store, project.KeyPrefix, log)
	remote := github.NewService(nil, github.Options{
		Timeout:    project.HTTPTimeout,
		MaxRetries: project.MaxRetries,
		UserAgent:  "release-notice/" + info.Version,
	})

	stdoutFile, _ := stdout.(*os.File)
	stderrFile, _ := stderr.(*os.File)
	interactive := console.IsTerminal(stdoutFile) && console.IsTerminal(stderrFile)

	return &app{
		flags:    flags,
		info:     info,
		stdout:   stdout,
		terminal: terminalOrNil(stdoutFile, interactive),
		log:      log,
		store:    store,
		versions: versions,
		release:  releaseinfo.NewService(seed, project, versions, remote, log),
		output:   output.NewService(flags.Output, stdout, stderr, interactive),
	}, nil
}

func terminalOrNil(f *os.File, interactive bool) *os.File {
	if !interactive {
		return nil
	}
	return f
}
