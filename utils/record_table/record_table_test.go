package recordtable

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thirukguru/release-notice/model"
	"github.com/thirukguru/release-notice/service/releaseinfo"
)

func TestDrawHistoryTable(t *testing.T) {
	var buf bytes.Buffer
	DrawHistoryTable(&buf, []model.VersionRecord{
		{Version: "2.8.0", BuildNumber: 23, ReleaseDate: "2023-03-17", ReleaseMarkdown: "\n\n## [v2.8.0] - 2023-03-17\nmore", HasPrompted: true},
		{Version: "2.8.1", BuildNumber: 24, ReleaseDate: "2023-04-01", ReleaseMarkdown: "short"},
	})

	out := buf.String()
	assert.Contains(t, out, "2.8.0")
	assert.Contains(t, out, "2.8.1")
	assert.Contains(t, out, "## [v2.8.0] - 2023-03-17")
	assert.NotContains(t, out, "more")
}

func TestDrawHistoryTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	DrawHistoryTable(&buf, nil)
	assert.Contains(t, buf.String(), "No stored release records")
}

func TestDrawLinksTable(t *testing.T) {
	var buf bytes.Buffer
	DrawLinksTable(&buf, releaseinfo.Links{Repo: "https://github.com/a/b", Issues: "https://github.com/a/b/issues"})
	assert.Contains(t, buf.String(), "https://github.com/a/b/issues")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
