package flag

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/thirukguru/release-notice/model"
)

// NewService creates a new flag service.
func NewService() Service {
	return &service{fs: pflag.NewFlagSet("release-notice", pflag.ContinueOnError)}
}

// GetParsedFlags parses the global flags and returns them with the remaining
// positional arguments (subcommand and its own flags).
func (s *service) GetParsedFlags(args []string) (model.Flags, []string, error) {
	fs := s.fs
	fs.SetInterspersed(false)

	version := fs.BoolP("version", "v", false, "Show version information")
	output := fs.StringP("output", "o", "table", "Output format (table or json)")
	dbPath := fs.String("db-path", "", "Custom SQLite database path (default ~/.release-notice/store.db)")
	configPath := fs.String("config-path", "", "Path to settings.yaml (default ~/.release-notice/settings.yaml)")
	force := fs.BoolP("force", "f", false, "Show the release notes even if they were already shown")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warning, error)")

	if err := fs.Parse(args); err != nil {
		return model.Flags{}, nil, err
	}

	out := strings.ToLower(strings.TrimSpace(*output))
	if out != "table" && out != "json" {
		return model.Flags{}, nil, fmt.Errorf("unsupported output format: %s", *output)
	}

	flags := model.Flags{
		Version:    *version,
		Output:     out,
		DBPath:     *dbPath,
		ConfigPath: *configPath,
		Force:      *force,
		LogLevel:   *logLevel,
	}

	return flags, fs.Args(), nil
}
