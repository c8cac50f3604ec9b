package flag

import (
	"testing"
)

func TestGetParsedFlagsAllOptions(t *testing.T) {
	svc := NewService()
	flags, rest, err := svc.GetParsedFlags([]string{
		"--version",
		"--output", "JSON",
		"--db-path", "/tmp/store.db",
		"--config-path", "/tmp/settings.yaml",
		"--force",
		"--log-level", "debug",
		"db", "forget", "--yes", "2.8.0",
	})
	if err != nil {
		t.Fatalf("GetParsedFlags failed: %v", err)
	}

	if !flags.Version || !flags.Force {
		t.Fatalf("unexpected bool flags: %+v", flags)
	}
	if flags.Output != "json" || flags.DBPath != "/tmp/store.db" || flags.ConfigPath != "/tmp/settings.yaml" {
		t.Fatalf("unexpected string flags: %+v", flags)
	}
	if flags.LogLevel != "debug" {
		t.Fatalf("unexpected log level: %s", flags.LogLevel)
	}
	if len(rest) != 4 || rest[0] != "db" || rest[2] != "--yes" {
		t.Fatalf("unexpected remaining args: %v", rest)
	}
}

func TestGetParsedFlagsDefaults(t *testing.T) {
	flags, rest, err := NewService().GetParsedFlags(nil)
	if err != nil {
		t.Fatalf("GetParsedFlags failed: %v", err)
	}

	if flags.Output != "table" || flags.Version || flags.Force || flags.DBPath != "" {
		t.Fatalf("unexpected defaults: %+v", flags)
	}
	if len(rest) != 0 {
		t.Fatalf("unexpected remaining args: %v", rest)
	}
}

func TestGetParsedFlagsRejectsUnknownOutput(t *testing.T) {
	if _, _, err := NewService().GetParsedFlags([]string{"-o", "html"}); err == nil {
		t.Fatalf("expected error for unsupported output format")
	}
}
