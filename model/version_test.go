package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionRecord(t *testing.T) {
	record, err := NewVersionRecord(VersionInfo{Version: "2.8.0", BuildNumber: 23, Date: "2023-03-17"}, "notes")
	require.NoError(t, err)

	assert.Equal(t, VersionRecord{
		Version:         "2.8.0",
		BuildNumber:     23,
		ReleaseDate:     "2023-03-17",
		ReleaseMarkdown: "notes",
		NeedsPrompt:     true,
	}, record)
	assert.True(t, record.ShouldPrompt())
}

func TestNewVersionRecordRejectsNonSemver(t *testing.T) {
	for _, v := range []string{"", "dev", "not-a-version"} {
		t.Run(v, func(t *testing.T) {
			_, err := NewVersionRecord(VersionInfo{Version: v}, "")
			assert.Error(t, err)
		})
	}

	_, err := NewVersionRecord(VersionInfo{Version: "v2.8.0-beta.1"}, "")
	assert.NoError(t, err)
}

func TestShouldPrompt(t *testing.T) {
	assert.False(t, VersionRecord{NeedsPrompt: true, HasPrompted: true}.ShouldPrompt())
	assert.False(t, VersionRecord{NeedsPrompt: false}.ShouldPrompt())
}
