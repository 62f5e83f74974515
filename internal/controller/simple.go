package controller

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"sync"

	m "github.com/mouse-blink/luarename/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI with plain text tables. Rewritten code and plans go
// to the command's stdout; progress and summaries go to its stderr.
type SimpleUI struct {
	cmd     *cobra.Command
	mu      sync.Mutex
	mode    StartMode
	results []fileItem
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, mode: ModeRename}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	cfg := &StartConfig{mode: ModeRename}
	for _, opt := range options {
		opt(cfg)
	}

	s.mu.Lock()
	s.mode = cfg.mode
	s.results = nil
	s.mu.Unlock()

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait prints the rename summary table.
func (s *SimpleUI) Wait() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeRename || len(s.results) == 0 {
		return
	}

	sort.Slice(s.results, func(i, j int) bool { return s.results[i].path < s.results[j].path })

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Renames", "Status", "Output"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	total := 0
	failed := 0

	for _, result := range s.results {
		table.Append([]string{result.path, fmt.Sprintf("%d", result.count()), result.status, result.output})

		total += result.count()
		if result.status == statusFailed {
			failed++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(s.results)),
		fmt.Sprintf("%d", total),
		fmt.Sprintf("Failed %d", failed),
		"",
	})

	table.Render()
	s.printf(s.cmd.ErrOrStderr(), "\n%s", tableBuffer.String())
}

// DisplayPlans prints every planned rename as a table.
func (s *SimpleUI) DisplayPlans(reports []m.Report) error {
	items := make([]fileItem, 0, len(reports))
	for _, report := range reports {
		items = append(items, newFileItem(report))
	}

	sort.Slice(items, func(i, j int) bool { return items[i].path < items[j].path })

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "From", "To", "Kind"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	total := 0

	for _, item := range items {
		switch item.status {
		case statusFailed:
			table.Append([]string{item.path, "", "", "error: " + item.err})
		case statusSkipped, statusUnchanged:
			table.Append([]string{item.path, "", "", item.status})
		}

		for i, entry := range item.renames {
			path := item.path
			if i > 0 {
				path = ""
			}

			table.Append([]string{path, entry.From, entry.To, string(entry.Kind)})
		}

		total += item.count()
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(items)),
		"",
		"",
		fmt.Sprintf("%d renames", total),
	})

	table.Render()
	s.printf(s.cmd.OutOrStdout(), "\n%s", tableBuffer.String())

	return nil
}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int) {
	if shardCount > 1 {
		s.printf(s.cmd.ErrOrStderr(), "Running with %d worker(s), shard %d/%d\n", threads, shardIndex, shardCount)

		return
	}

	s.printf(s.cmd.ErrOrStderr(), "Running with %d worker(s)\n", threads)
}

// DisplayUpcomingFilesInfo shows the number of files about to be processed.
func (s *SimpleUI) DisplayUpcomingFilesInfo(count int) {
	s.printf(s.cmd.ErrOrStderr(), "Files to process: %d\n", count)
}

// DisplayStartingFileInfo is silent: per file output comes on completion.
func (s *SimpleUI) DisplayStartingFileInfo(_ m.Source, _ int) {}

// DisplayCompletedFileInfo records the file for the summary and reports failures right away.
func (s *SimpleUI) DisplayCompletedFileInfo(report m.Report) {
	item := newFileItem(report)

	s.mu.Lock()
	s.results = append(s.results, item)
	s.mu.Unlock()

	if item.status == statusFailed {
		s.printf(s.cmd.ErrOrStderr(), "%s: %s\n", item.path, item.err)
	}
}

// DisplayCode writes rewritten code to stdout.
func (s *SimpleUI) DisplayCode(code string) error {
	_, err := fmt.Fprint(s.cmd.OutOrStdout(), code)

	return err
}

func (s *SimpleUI) printf(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, format, args...)
}
