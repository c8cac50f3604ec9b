package flag

import (
	"github.com/spf13/pflag"
	"github.com/thirukguru/release-notice/model"
)

type service struct {
	fs *pflag.FlagSet
}

// Service is the interface for CLI flag service.
type Service interface {
	GetParsedFlags(args []string) (model.Flags, []string, error)
}
