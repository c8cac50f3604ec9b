// Package jsonoutput renders release data as indented JSON.
package jsonoutput

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/thirukguru/release-notice/model"
	"github.com/thirukguru/release-notice/service/releaseinfo"
)

// MarkdownJSON wraps release markdown for machine consumers.
type MarkdownJSON struct {
	Version  string `json:"version"`
	Markdown string `json:"markdown"`
}

// OutputMarkdownJSON prints release markdown as JSON.
func OutputMarkdownJSON(w io.Writer, version, markdown string) error {
	return printJSON(w, MarkdownJSON{Version: version, Markdown: markdown})
}

// OutputRecordJSON prints a version record as JSON.
func OutputRecordJSON(w io.Writer, record model.VersionRecord) error {
	return printJSON(w, record)
}

// OutputHistoryJSON prints stored version records as a JSON array.
func OutputHistoryJSON(w io.Writer, records []model.VersionRecord) error {
	if records == nil {
		records = []model.VersionRecord{}
	}
	return printJSON(w, records)
}

// OutputLinksJSON prints project links as JSON.
func OutputLinksJSON(w io.Writer, links releaseinfo.Links) error {
	return printJSON(w, links)
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}
