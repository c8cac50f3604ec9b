package output

import (
	"io"

	"github.com/thirukguru/release-notice/model"
	"github.com/thirukguru/release-notice/service/releaseinfo"
	jsonoutput "github.com/thirukguru/release-notice/utils/json_output"
	recordtable "github.com/thirukguru/release-notice/utils/record_table"
	"github.com/thirukguru/release-notice/utils/spinner"
)

// Format represents the output format type
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Renderer defines the interface for drawing release data
type Renderer interface {
	DrawRecordTable(w io.Writer, record model.VersionRecord)
	DrawHistoryTable(w io.Writer, records []model.VersionRecord)
	DrawLinksTable(w io.Writer, links releaseinfo.Links)
	OutputMarkdownJSON(w io.Writer, version, markdown string) error
	OutputRecordJSON(w io.Writer, record model.VersionRecord) error
	OutputHistoryJSON(w io.Writer, records []model.VersionRecord) error
	OutputLinksJSON(w io.Writer, links releaseinfo.Links) error
	StartSpinner(w io.Writer, suffix string)
	StopSpinner()
}

type realRenderer struct{}

func (r *realRenderer) DrawRecordTable(w io.Writer, record model.VersionRecord) {
	recordtable.DrawRecordTable(w, record)
}

func (r *realRenderer) DrawHistoryTable(w io.Writer, records []model.VersionRecord) {
	recordtable.DrawHistoryTable(w, records)
}

func (r *realRenderer) DrawLinksTable(w io.Writer, links releaseinfo.Links) {
	recordtable.DrawLinksTable(w, links)
}

func (r *realRenderer) OutputMarkdownJSON(w io.Writer, version, markdown string) error {
	return jsonoutput.OutputMarkdownJSON(w, version, markdown)
}

func (r *realRenderer) OutputRecordJSON(w io.Writer, record model.VersionRecord) error {
	return jsonoutput.OutputRecordJSON(w, record)
}

func (r *realRenderer) OutputHistoryJSON(w io.Writer, records []model.VersionRecord) error {
	return jsonoutput.OutputHistoryJSON(w, records)
}

func (r *realRenderer) OutputLinksJSON(w io.Writer, links releaseinfo.Links) error {
	return jsonoutput.OutputLinksJSON(w, links)
}

func (r *realRenderer) StartSpinner(w io.Writer, suffix string) {
	spinner.StartSpinner(w, suffix)
}

func (r *realRenderer) StopSpinner() {
	spinner.StopSpinner()
}

// service is the internal implementation
type service struct {
	format      Format
	out         io.Writer
	status      io.Writer
	interactive bool
	renderer    Renderer
}

// Service defines the interface for output operations
type Service interface {
	RenderMarkdown(version, markdown string) error
	RenderRecord(record model.VersionRecord) error
	RenderHistory(records []model.VersionRecord) error
	RenderLinks(links releaseinfo.Links) error
	StartSpinner(suffix string)
	StopSpinner()
}
