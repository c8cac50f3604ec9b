// Package output provides a service for rendering results to the console.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/thirukguru/release-notice/model"
	"github.com/thirukguru/release-notice/service/releaseinfo"
)

// NewService creates a new output service with the specified format. Data goes
// to out; the spinner goes to status and only runs when interactive is set.
func NewService(format string, out, status io.Writer, interactive bool) Service {
	return newService(format, out, status, interactive, &realRenderer{})
}

func newService(format string, out, status io.Writer, interactive bool, renderer Renderer) *service {
	f := FormatTable
	if format == "json" {
		f = FormatJSON
	}

	return &service{
		format:      f,
		out:         out,
		status:      status,
		interactive: interactive && f == FormatTable,
		renderer:    renderer,
	}
}

func (s *service) RenderMarkdown(version, markdown string) error {
	if s.format == FormatJSON {
		return s.renderer.OutputMarkdownJSON(s.out, version, markdown)
	}
	_, err := fmt.Fprintln(s.out, strings.TrimSpace(markdown))
	return err
}

func (s *service) RenderRecord(record model.VersionRecord) error {
	if s.format == FormatJSON {
		return s.renderer.OutputRecordJSON(s.out, record)
	}
	s.renderer.DrawRecordTable(s.out, record)
	return nil
}

func (s *service) RenderHistory(records []model.VersionRecord) error {
	if s.format == FormatJSON {
		return s.renderer.OutputHistoryJSON(s.out, records)
	}
	s.renderer.DrawHistoryTable(s.out, records)
	return nil
}

func (s *service) RenderLinks(links releaseinfo.Links) error {
	if s.format == FormatJSON {
		return s.renderer.OutputLinksJSON(s.out, links)
	}
	s.renderer.DrawLinksTable(s.out, links)
	return nil
}

func (s *service) StartSpinner(suffix string) {
	if s.interactive {
		s.renderer.StartSpinner(s.status, suffix)
	}
}

func (s *service) StopSpinner() {
	if s.interactive {
		s.renderer.StopSpinner()
	}
}
