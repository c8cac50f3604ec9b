package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/thirukguru/release-notice/model"
	"github.com/thirukguru/release-notice/utils/banner"
)

func (a *app) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.runPrompt(ctx)
	}

	switch args[0] {
	case "show":
		return a.runShowCommand(ctx, args[1:])
	case "hide":
		return a.runHideCommand(ctx)
	case "info":
		return a.output.RenderRecord(a.release.GetCurrentVersionInfo(ctx))
	case "links":
		return a.output.RenderLinks(a.release.Links())
	case "db":
		return a.runDBCommand(ctx, args[1:])
	default:
		return fmt.Errorf("unsupported command: %s", args[0])
	}
}

// runPrompt prints the announcement once per version and records that it was shown.
func (a *app) runPrompt(ctx context.Context) error {
	if !a.flags.Force && !a.release.ShouldPrompt(ctx) {
		a.log.Info("main", fmt.Sprintf("release notes for %s already shown", a.info.Version))
		return nil
	}

	if err := a.showMarkdown(ctx, true); err != nil {
		return err
	}
	return a.release.HideReleasePrompt(ctx)
}

func (a *app) runShowCommand(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("show", pflag.ContinueOnError)
	noBanner := fs.Bool("no-banner", false, "Do not print the banner above the notes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return a.showMarkdown(ctx, !*noBanner)
}

func (a *app) showMarkdown(ctx context.Context, withBanner bool) error {
	a.output.StartSpinner(fmt.Sprintf("Fetching release notes for %s...", a.info.Version))
	markdown := a.release.FetchReleaseMarkdown(ctx)
	a.output.StopSpinner()

	if withBanner && a.terminal != nil {
		banner.DrawBannerTitle(a.terminal, "release-notice "+a.info.Version, a.release.ReleaseTagURL())
	}
	return a.output.RenderMarkdown(a.info.Version, markdown)
}

func (a *app) runHideCommand(ctx context.Context) error {
	if err := a.release.HideReleasePrompt(ctx); err != nil {
		return err
	}
	a.log.Info("main", fmt.Sprintf("release notes for %s hidden", a.info.Version))
	return nil
}

func (a *app) runDBCommand(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("db", pflag.ContinueOnError)
	pendingOnly := fs.Bool("pending", false, "Only list versions whose notes have not been shown")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: release-notice db <list|forget|vacuum>")
	}

	switch rest[0] {
	case "list":
		records, err := a.versions.List(ctx)
		if err != nil {
			return err
		}
		if *pendingOnly {
			records = pendingRecords(records)
		}
		return a.output.RenderHistory(records)
	case "forget":
		if len(rest) < 2 {
			return fmt.Errorf("usage: release-notice db forget <version>")
		}
		removed, err := a.versions.Delete(ctx, rest[1])
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("no stored record for version %s", rest[1])
		}
		_, err = fmt.Fprintf(a.stdout, "Forgot %s\n", a.versions.Key(rest[1]))
		return err
	case "vacuum":
		return a.store.Vacuum(ctx)
	default:
		return fmt.Errorf("unsupported db command: %s", rest[0])
	}
}

func pendingRecords(records []model.VersionRecord) []model.VersionRecord {
	out := []model.VersionRecord{}
	for _, r := range records {
		if r.ShouldPrompt() {
			out = append(out, r)
		}
	}
	return out
}
