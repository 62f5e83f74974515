package controller

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/luarename/internal/model"
)

// Message types.
type plansMsg struct {
	reports []m.Report
}

type upcomingMsg struct {
	count int
}

type startFileMsg struct {
	worker int
	path   string
}

type completedFileMsg struct {
	item fileItem
}

type concurrencyMsg struct {
	threads    int
	shardIndex int
	shards     int
}

// Report statuses shown by both UIs.
const (
	statusRenamed   = "renamed"
	statusUnchanged = "unchanged"
	statusSkipped   = "skipped"
	statusFailed    = "failed"
)

// List item types.
type fileItem struct {
	path    string
	output  string
	status  string
	renames []m.RenameEntry
	err     string
}

func (f fileItem) FilterValue() string {
	return f.path + " " + f.status
}

func (f fileItem) count() int {
	return len(f.renames)
}

// detail renders the rename list, or the failure, as diff-style lines.
func (f fileItem) detail() string {
	if f.err != "" {
		return "! " + f.err
	}

	lines := make([]string, 0, len(f.renames)*2)
	for _, entry := range f.renames {
		lines = append(lines,
			fmt.Sprintf("- %s", entry.From),
			fmt.Sprintf("+ %s  (%s)", entry.To, entry.Kind),
		)
	}

	return strings.Join(lines, "\n")
}

func newFileItem(report m.Report) fileItem {
	item := fileItem{
		path:    reportPath(report),
		output:  string(report.Output),
		renames: report.Plan.Renames,
		status:  reportStatus(report),
	}

	if report.Err != nil {
		item.err = report.Err.Error()
	}

	return item
}

func reportPath(report m.Report) string {
	if report.Source.Origin == nil {
		return ""
	}

	return string(report.Source.Origin.Path)
}

func reportStatus(report m.Report) string {
	switch {
	case report.Err != nil:
		return statusFailed
	case report.Skipped:
		return statusSkipped
	case report.Plan.IsEmpty():
		return statusUnchanged
	default:
		return statusRenamed
	}
}
