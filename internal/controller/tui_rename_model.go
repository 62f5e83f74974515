package controller

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// renameModel shows per worker progress while files are renamed, then the
// list of results.
type renameModel struct {
	width           int
	height          int
	progressBar     progress.Model
	totalFiles      int
	completedCount  int
	progressPercent float64
	threads         int
	shardIndex      int
	totalShards     int
	workerFiles     map[int]string
	rendered        bool
	finished        bool
	results         []fileItem
	resultsList     list.Model
	delegate        fileDelegate
	animOffset      int
	lastSelected    int
	detail          detailBox
}

func newRenameModel() renameModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := fileDelegate{showStatus: true}

	return renameModel{
		progressBar:  prog,
		resultsList:  newFileList(delegate, "Filter results…"),
		delegate:     delegate,
		workerFiles:  make(map[int]string),
		threads:      1,
		lastSelected: -1,
	}
}

func (rm renameModel) Init() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (rm renameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm = rm.handleWindowSize(msg)

	case tea.KeyMsg:
		rm, cmd = rm.handleKeyMsg(msg)

	case tea.MouseMsg:
		rm, cmd = rm.handleMouseMsg(msg)

	case tickMsg:
		return rm.handleTickMsg(msg)

	case startFileMsg:
		rm.workerFiles[msg.worker] = msg.path
		rm.rendered = true

	case completedFileMsg:
		rm = rm.handleCompletedFile(msg)

	case concurrencyMsg:
		rm.threads = max(msg.threads, 1)
		rm.shardIndex = msg.shardIndex
		rm.totalShards = msg.shards

	case upcomingMsg:
		rm.totalFiles = msg.count
		rm.completedCount = 0
		rm.progressPercent = 0
		rm.rendered = true
		// an empty shard has nothing to wait for
		rm.finished = msg.count == 0
	}

	return rm, cmd
}

func (rm renameModel) View() string {
	if !rm.rendered {
		return "Preparing renames…\n"
	}

	if rm.finished {
		return rm.viewResults()
	}

	return rm.viewProgress()
}

func (rm renameModel) viewProgress() string {
	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	title := titleStyle().Render("Lua Rename")
	summary := summaryStyle().Render(fmt.Sprintf(
		"Progress: %s / %s  •  Workers: %s  •  Shard: %s / %s",
		accentStyle.Render(fmt.Sprintf("%d", rm.completedCount)),
		accentStyle.Render(fmt.Sprintf("%d", rm.totalFiles)),
		accentStyle.Render(fmt.Sprintf("%d", rm.threads)),
		accentStyle.Render(fmt.Sprintf("%d", rm.shardIndex)),
		accentStyle.Render(fmt.Sprintf("%d", rm.totalShards)),
	))

	progressView := lipgloss.NewStyle().
		Padding(0, 2).
		Render(rm.progressBar.ViewAs(rm.progressPercent))

	footer := footerStyle(rm.width).Render("Press q to quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		progressView,
		rm.renderWorkerBox(),
		footer,
	)
}

func (rm renameModel) renderWorkerBox() string {
	fileStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	// width - border - padding
	availableWidth := rm.width - 4 - 2 - 2
	prefixWidth := 0
	labelFormat := ""

	if rm.threads > 1 {
		digits := len(fmt.Sprintf("%d", rm.threads-1))
		prefixWidth = 7 + digits + 2 // "Worker " + digits + ": "
		labelFormat = fmt.Sprintf("Worker %%%dd: %%s", digits)
	}

	lines := make([]string, 0, rm.threads)

	for i := range rm.threads {
		lineContent := "idle"
		if file := rm.workerFiles[i]; file != "" {
			lineContent = fileStyle.Render(truncateToWidth(file, max(availableWidth-prefixWidth, 10)))
		}

		if rm.threads > 1 {
			lineContent = fmt.Sprintf(labelFormat, i, lineContent)
		}

		lines = append(lines, lineContent)
	}

	return tableStyle().
		Margin(1, 1, 1, 0).
		Width(rm.width - 4).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (rm renameModel) viewResults() string {
	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	title := titleStyle().Render("Lua Rename Results")
	summary := summaryStyle().Render(fmt.Sprintf(
		"Files: %s  •  Renamed: %s  •  Unchanged: %s  •  Skipped: %s  •  Failed: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(rm.results))),
		accentStyle.Render(fmt.Sprintf("%d", rm.countStatus(statusRenamed))),
		accentStyle.Render(fmt.Sprintf("%d", rm.countStatus(statusUnchanged))),
		accentStyle.Render(fmt.Sprintf("%d", rm.countStatus(statusSkipped))),
		accentStyle.Render(fmt.Sprintf("%d", rm.countStatus(statusFailed))),
	))

	footer := footerStyle(rm.width).Render("↑/k up • ↓/j down • / filter • enter/click renames • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		rm.renderResultsBox(),
		footer,
	)
}

func (rm renameModel) renderResultsBox() string {
	listWidth := rm.width - 4
	box := rm.detail.render(listWidth, rm.height)

	listHeight := rm.height - 9
	if box != "" {
		listHeight -= lipgloss.Height(box)
	}

	if listHeight < 5 {
		listHeight = 5
	}

	rm.resultsList.SetHeight(listHeight)
	rm.resultsList.SetWidth(listWidth)

	headers := headerStyle(listWidth).Render(fmt.Sprintf("%6s  %-10s  %s", "Count", "Status", "File"))

	resultsBox := tableStyle().
		Margin(0, 1, 0, 0).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, rm.resultsList.View()))

	if box == "" {
		return resultsBox
	}

	return lipgloss.JoinVertical(lipgloss.Left, resultsBox, box)
}

func (rm renameModel) countStatus(status string) int {
	count := 0

	for _, result := range rm.results {
		if result.status == status {
			count++
		}
	}

	return count
}

func (rm renameModel) handleCompletedFile(msg completedFileMsg) renameModel {
	rm.completedCount++
	rm.results = append(rm.results, msg.item)

	for worker, path := range rm.workerFiles {
		if path == msg.item.path {
			delete(rm.workerFiles, worker)
		}
	}

	items := make([]list.Item, 0, len(rm.results))
	for _, r := range rm.results {
		items = append(items, r)
	}

	rm.resultsList.SetItems(items)

	if rm.totalFiles > 0 {
		rm.progressPercent = float64(rm.completedCount) / float64(rm.totalFiles)
		if rm.completedCount >= rm.totalFiles {
			rm.finished = true
		}
	}

	return rm
}

func (rm renameModel) handleKeyMsg(msg tea.KeyMsg) (renameModel, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return rm, tea.Quit
	}

	if !rm.finished {
		return rm, nil
	}

	if (msg.String() == "enter" || msg.String() == " ") && rm.resultsList.FilterState() != list.Filtering {
		rm.detail = rm.detail.toggle(rm.resultsList.SelectedItem())

		return rm, nil
	}

	var cmd tea.Cmd

	rm.resultsList, cmd = rm.resultsList.Update(msg)
	rm = rm.trackSelection()

	return rm, cmd
}

func (rm renameModel) handleMouseMsg(msg tea.MouseMsg) (renameModel, tea.Cmd) {
	if !rm.finished {
		return rm, nil
	}

	var cmd tea.Cmd

	rm.resultsList, cmd = rm.resultsList.Update(msg)
	rm = rm.trackSelection()

	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease && rm.resultsList.FilterState() != list.Filtering {
		rm.detail = rm.detail.toggle(rm.resultsList.SelectedItem())
	}

	return rm, cmd
}

// trackSelection restarts the scroll animation and hides the detail box when
// the cursor moves.
func (rm renameModel) trackSelection() renameModel {
	if rm.resultsList.Index() == rm.lastSelected {
		return rm
	}

	rm.lastSelected = rm.resultsList.Index()
	rm.animOffset = 0
	rm.delegate.offset = 0
	rm.resultsList.SetDelegate(rm.delegate)
	rm.detail = detailBox{}

	return rm
}

func (rm renameModel) handleWindowSize(msg tea.WindowSizeMsg) renameModel {
	rm.width = msg.Width
	rm.height = msg.Height
	rm.progressBar.Width = max(rm.width-8, 20)

	return rm
}

func (rm renameModel) handleTickMsg(_ tickMsg) (renameModel, tea.Cmd) {
	if rm.finished && rm.resultsList.FilterState() != list.Filtering {
		rm.animOffset++
		rm.delegate.offset = rm.animOffset
		rm.resultsList.SetDelegate(rm.delegate)
	}

	return rm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
