package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/release-notice/model"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeSettings(t, `
project:
  author: tisfeng
  repo: Raycast-Easydict
  api_url: https://ghe.example.test/api/v3
cache:
  key_prefix: EasydictVersionInfoKey
  db_path: /tmp/notice.db
  persist_on_fetch: false
http:
  timeout: 3s
  max_retries: 0
logger:
  level: debug
`)

	project, err := NewService(map[string]string{}).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "tisfeng", project.Author)
	assert.Equal(t, "Raycast-Easydict", project.Repo)
	assert.Equal(t, "https://github.com", project.GitHubURL)
	assert.Equal(t, "https://ghe.example.test/api/v3", project.APIURL)
	assert.Equal(t, "EasydictVersionInfoKey", project.KeyPrefix)
	assert.Equal(t, "/tmp/notice.db", project.DBPath)
	assert.False(t, project.PersistOnFetch)
	assert.Equal(t, 3*time.Second, project.HTTPTimeout)
	assert.Equal(t, 0, project.MaxRetries)
	assert.Equal(t, "debug", project.LogLevel)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeSettings(t, `
project:
  author: from-file
http:
  max_retries: 5
`)

	project, err := NewService(map[string]string{
		"RELEASE_NOTICE_AUTHOR":           "from-env",
		"RELEASE_NOTICE_HTTP_TIMEOUT":     "750ms",
		"RELEASE_NOTICE_PERSIST_ON_FETCH": "false",
	}).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", project.Author)
	assert.Equal(t, 750*time.Millisecond, project.HTTPTimeout)
	assert.Equal(t, 5, project.MaxRetries)
	assert.False(t, project.PersistOnFetch)
}

func TestMissingDefaultFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	project, err := NewService(map[string]string{}).Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), project)
}

func TestMissingExplicitFileFails(t *testing.T) {
	_, err := NewService(map[string]string{}).Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMalformedFileFails(t *testing.T) {
	path := writeSettings(t, "project: [unclosed")
	_, err := NewService(map[string]string{}).Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *model.Project)
	}{
		{name: "author with slash", mutate: func(p *model.Project) { p.Author = "a/b" }},
		{name: "empty repo", mutate: func(p *model.Project) { p.Repo = "" }},
		{name: "relative api url", mutate: func(p *model.Project) { p.APIURL = "api.github.com" }},
		{name: "zero timeout", mutate: func(p *model.Project) { p.HTTPTimeout = 0 }},
		{name: "negative retries", mutate: func(p *model.Project) { p.MaxRetries = -1 }},
		{name: "unknown level", mutate: func(p *model.Project) { p.LogLevel = "loud" }},
		{name: "empty prefix", mutate: func(p *model.Project) { p.KeyPrefix = "" }},
	}

	require.NoError(t, Validate(Defaults()))
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Defaults()
			tc.mutate(&p)
			assert.Error(t, Validate(p))
		})
	}
}
