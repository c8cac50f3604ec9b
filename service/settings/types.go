package settings

import (
	"time"

	"github.com/thirukguru/release-notice/model"
)

// fileConfig mirrors settings.yaml. Every leaf can be overridden from the
// environment with the RELEASE_NOTICE_ prefix.
type fileConfig struct {
	Project struct {
		Author    string `yaml:"author" env:"AUTHOR"`
		Repo      string `yaml:"repo" env:"REPO"`
		GitHubURL string `yaml:"github_url" env:"GITHUB_URL"`
		APIURL    string `yaml:"api_url" env:"API_URL"`
	} `yaml:"project"`
	Cache struct {
		KeyPrefix      string `yaml:"key_prefix" env:"KEY_PREFIX"`
		DBPath         string `yaml:"db_path" env:"DB_PATH"`
		PersistOnFetch *bool  `yaml:"persist_on_fetch" env:"PERSIST_ON_FETCH"`
	} `yaml:"cache"`
	HTTP struct {
		Timeout    time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT"`
		MaxRetries *int          `yaml:"max_retries" env:"MAX_RETRIES"`
	} `yaml:"http"`
	Logger struct {
		Level string `yaml:"level" env:"LOG_LEVEL"`
	} `yaml:"logger"`
}

type service struct {
	environ map[string]string
}

// Service loads the project configuration.
type Service interface {
	Load(path string) (model.Project, error)
}
