// Package recordtable renders version records and links as terminal tables.
package recordtable

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/thirukguru/release-notice/model"
	"github.com/thirukguru/release-notice/service/releaseinfo"
)

// DrawRecordTable renders a single version record.
func DrawRecordTable(w io.Writer, record model.VersionRecord) {
	fmt.Fprintf(w, "\n📦 Release %s (build %d, %s)\n", record.Version, record.BuildNumber, record.ReleaseDate)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRow(table.Row{"Version", record.Version})
	t.AppendRow(table.Row{"Build", record.BuildNumber})
	t.AppendRow(table.Row{"Date", record.ReleaseDate})
	t.AppendRow(table.Row{"Needs prompt", yesNo(record.NeedsPrompt)})
	t.AppendRow(table.Row{"Has prompted", yesNo(record.HasPrompted)})
	t.AppendRow(table.Row{"Pending", formatPending(record.ShouldPrompt())})
	t.AppendRow(table.Row{"Markdown", fmt.Sprintf("%d bytes", len(record.ReleaseMarkdown))})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// DrawHistoryTable renders every stored version record.
func DrawHistoryTable(w io.Writer, records []model.VersionRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, text.FgYellow.Sprint("No stored release records"))
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Version", "Build", "Date", "Needs Prompt", "Has Prompted", "Markdown"})
	for _, r := range records {
		t.AppendRow(table.Row{r.Version, r.BuildNumber, r.ReleaseDate, yesNo(r.NeedsPrompt), yesNo(r.HasPrompted), truncate(firstLine(r.ReleaseMarkdown), 40)})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// DrawLinksTable renders the project links.
func DrawLinksTable(w io.Writer, links releaseinfo.Links) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Link", "URL"})
	t.AppendRow(table.Row{"Repository", links.Repo})
	t.AppendRow(table.Row{"Readme", links.Readme})
	t.AppendRow(table.Row{"Issues", links.Issues})
	t.AppendRow(table.Row{"Wiki", links.Wiki})
	t.AppendRow(table.Row{"Release", links.ReleaseTag})
	t.AppendRow(table.Row{"Release API", links.ReleaseAPI})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func formatPending(pending bool) string {
	if pending {
		return text.FgYellow.Sprint("Yes")
	}
	return text.FgGreen.Sprint("No")
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
