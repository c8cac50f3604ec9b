package jsonoutput

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/release-notice/model"
)

func TestOutputRecordJSONUsesStoredFieldNames(t *testing.T) {
	var buf bytes.Buffer
	err := OutputRecordJSON(&buf, model.VersionRecord{
		Version:         "2.8.0",
		BuildNumber:     23,
		ReleaseDate:     "2023-03-17",
		ReleaseMarkdown: "notes",
		NeedsPrompt:     true,
	})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "2023-03-17", decoded["versionDate"])
	assert.Equal(t, true, decoded["isNeedPrompt"])
	assert.Equal(t, false, decoded["hasPrompted"])
}

func TestOutputHistoryJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OutputHistoryJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestOutputMarkdownJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OutputMarkdownJSON(&buf, "2.8.0", "## hello"))

	var decoded MarkdownJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, MarkdownJSON{Version: "2.8.0", Markdown: "## hello"}, decoded)
}
