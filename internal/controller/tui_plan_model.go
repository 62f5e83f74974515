package controller

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

const (
	accentColor = lipgloss.Color("6")
	ellipsis    = "…"
)

// fileDelegate renders one file per line: rename count, optional status, path.
type fileDelegate struct {
	offset     int
	showStatus bool
}

func (d fileDelegate) Height() int  { return 1 }
func (d fileDelegate) Spacing() int { return 0 }
func (d fileDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d fileDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()

	// count (6) + spacing (2), plus status (10) + spacing (2) when shown
	width := lm.Width() - 8
	if d.showStatus {
		width -= 12
	}

	countStyle := lipgloss.NewStyle().Bold(true).Width(6).Align(lipgloss.Right)
	statusStyle := lipgloss.NewStyle().Bold(true).Width(10)
	pathStyle := lipgloss.NewStyle()

	var displayPath string

	if isSelected {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(accentColor).
			Bold(true)
		countStyle = countStyle.Inherit(selected)
		statusStyle = statusStyle.Inherit(selected)
		pathStyle = selected
		displayPath = animateScroll(file.path, width, d.offset)
	} else {
		countStyle = countStyle.Foreground(lipgloss.Color("11"))
		statusStyle = statusStyle.Foreground(statusColor(file.status))
		pathStyle = pathStyle.Foreground(lipgloss.Color("14"))
		displayPath = truncateToWidth(file.path, width)
	}

	line := countStyle.Render(fmt.Sprintf("%d", file.count()))
	if d.showStatus {
		line += "  " + statusStyle.Render(file.status)
	}

	_, _ = fmt.Fprintf(w, "%s  %s", line, pathStyle.Render(displayPath))
}

func statusColor(status string) lipgloss.Color {
	switch status {
	case statusRenamed:
		return lipgloss.Color("2")
	case statusFailed:
		return lipgloss.Color("1")
	case statusSkipped:
		return lipgloss.Color("3")
	default:
		return lipgloss.Color("8")
	}
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	// ticks to hold still before scrolling
	const pause = 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + "   ")
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// planModel lists per file rename plans of a dry run. Selecting a file
// shows its renames.
type planModel struct {
	width        int
	height       int
	fileList     list.Model
	delegate     fileDelegate
	planned      int
	total        int
	totalFiles   int
	rendered     bool
	animOffset   int
	lastSelected int
	detail       detailBox
}

func newPlanModel() planModel {
	delegate := fileDelegate{}

	return planModel{
		fileList:     newFileList(delegate, "Filter by path…"),
		delegate:     delegate,
		lastSelected: -1,
	}
}

func newFileList(delegate list.ItemDelegate, placeholder string) list.Model {
	fileList := list.New([]list.Item{}, delegate, 80, 20)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = placeholder

	return fileList
}

func (pm planModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (pm planModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.width = msg.Width
		pm.height = msg.Height
		pm.fileList.SetWidth(pm.width)

	case tickMsg:
		if pm.fileList.FilterState() != list.Filtering && pm.rendered {
			pm.animOffset++
			pm.delegate.offset = pm.animOffset
			pm.fileList.SetDelegate(pm.delegate)
		}

		return pm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		return pm.handleKeyMsg(msg)

	case upcomingMsg:
		pm.totalFiles = msg.count

	case completedFileMsg:
		pm.planned++

	case plansMsg:
		pm = pm.handlePlansMsg(msg)
	}

	return pm, cmd
}

func (pm planModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return pm, tea.Quit
	case "enter", " ":
		if pm.rendered && pm.fileList.FilterState() != list.Filtering {
			pm.detail = pm.detail.toggle(pm.fileList.SelectedItem())

			return pm, nil
		}
	}

	var cmd tea.Cmd

	pm.fileList, cmd = pm.fileList.Update(msg)

	if pm.fileList.Index() != pm.lastSelected {
		pm.lastSelected = pm.fileList.Index()
		pm.animOffset = 0
		pm.delegate.offset = 0
		pm.fileList.SetDelegate(pm.delegate)
		pm.detail = detailBox{}
	}

	return pm, cmd
}

func (pm planModel) handlePlansMsg(msg plansMsg) planModel {
	items := make([]fileItem, 0, len(msg.reports))
	pm.total = 0

	for _, report := range msg.reports {
		item := newFileItem(report)
		pm.total += item.count()
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].path < items[j].path })

	listItems := make([]list.Item, 0, len(items))
	for _, item := range items {
		listItems = append(listItems, item)
	}

	pm.fileList.SetItems(listItems)
	pm.totalFiles = len(items)
	pm.rendered = true

	if len(items) > 0 && pm.lastSelected == -1 {
		pm.lastSelected = 0
	}

	return pm
}

func (pm planModel) View() string {
	if !pm.rendered {
		return fmt.Sprintf("Planning renames… %d / %d\n", pm.planned, pm.totalFiles)
	}

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	title := titleStyle().Render("Lua Rename Plan")
	summary := summaryStyle().Render(fmt.Sprintf(
		"Total Renames: %s   Files: %s",
		accentStyle.Render(fmt.Sprintf("%d", pm.total)),
		accentStyle.Render(fmt.Sprintf("%d", pm.totalFiles)),
	))

	footer := footerStyle(pm.width).Render("↑/k up • ↓/j down • / filter • enter renames • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		pm.renderTable(),
		footer,
	)
}

func (pm planModel) renderTable() string {
	listWidth := pm.width - 6
	box := pm.detail.render(listWidth, pm.height)

	// title, summary, footer, borders and headers
	listHeight := pm.height - 9 - lipgloss.Height(box)
	if box == "" {
		listHeight = pm.height - 9
	}

	if listHeight < 5 {
		listHeight = 5
	}

	pm.fileList.SetHeight(listHeight)
	pm.fileList.SetWidth(listWidth)

	headers := headerStyle(listWidth).Render(fmt.Sprintf("%6s  %s", "Count", "File Path"))

	table := tableStyle().Margin(0, 1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			pm.fileList.View(),
		),
	)

	if box == "" {
		return table
	}

	return lipgloss.JoinVertical(lipgloss.Left, table, box)
}

// detailBox shows the renames of one selected file.
type detailBox struct {
	path string
	body string
}

func (b detailBox) visible() bool {
	return strings.TrimSpace(b.body) != ""
}

// toggle opens the box for item, or closes it when item is already shown.
func (b detailBox) toggle(item list.Item) detailBox {
	file, ok := item.(fileItem)
	if !ok {
		return detailBox{}
	}

	body := file.detail()
	if body == "" || (b.visible() && b.path == file.path) {
		return detailBox{}
	}

	return detailBox{path: file.path, body: body}
}

func (b detailBox) render(width int, height int) string {
	if !b.visible() {
		return ""
	}

	maxLines := max(min(height/3, 20), 6)
	lines := strings.Split(strings.TrimSpace(b.body), "\n")
	truncated := false

	if len(lines) > maxLines {
		lines = lines[:maxLines-1]
		truncated = true
	}

	contentWidth := max(width-4, 10)

	bodyLines := make([]string, 0, len(lines)+1)
	for _, line := range lines {
		bodyLines = append(bodyLines, renderDetailLine(line, contentWidth))
	}

	if truncated {
		bodyLines = append(bodyLines, ellipsis)
	}

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Render(truncateToWidth("Renames • "+b.path, contentWidth))

	return tableStyle().
		Margin(0, 1, 0, 0).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, lipgloss.JoinVertical(lipgloss.Left, bodyLines...)))
}

func renderDetailLine(line string, width int) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	switch {
	case strings.HasPrefix(line, "+"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	case strings.HasPrefix(line, "-"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	case strings.HasPrefix(line, "!"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	}

	return style.Render(truncateToWidth(line, width))
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)
}

func summaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)
}

func footerStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(width)
}

func headerStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(width)
}

func tableStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1)
}
