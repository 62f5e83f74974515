package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/luarename/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	err     error
	options []tea.ProgramOption
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{
		output:  output,
		options: []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()},
	}
}

// Start launches the Bubble Tea program for the selected mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := &StartConfig{mode: ModeRename}
	for _, opt := range options {
		opt(cfg)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return fmt.Errorf("ui already started")
	}

	var model tea.Model = newRenameModel()
	if cfg.mode == ModePlan {
		model = newPlanModel()
	}

	programOptions := append([]tea.ProgramOption{tea.WithOutput(t.output)}, t.options...)
	t.program = tea.NewProgram(model, programOptions...)
	t.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := program.Run(); err != nil {
			t.mu.Lock()
			t.err = err
			t.mu.Unlock()
		}
	}(t.program, t.done)

	return nil
}

// Close stops the program if the user has not quit yet.
func (t *TUI) Close() {
	program, done := t.state()
	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait() {
	if _, done := t.state(); done != nil {
		<-done
	}
}

// Err returns the error the program exited with, if any.
func (t *TUI) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}

// DisplayPlans hands the collected plans to the plan view.
func (t *TUI) DisplayPlans(reports []m.Report) error {
	t.send(plansMsg{reports: reports})

	return nil
}

// DisplayConcurrencyInfo shows concurrency settings.
func (t *TUI) DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int) {
	t.send(concurrencyMsg{threads: threads, shardIndex: shardIndex, shards: shardCount})
}

// DisplayUpcomingFilesInfo shows the number of files about to be processed.
func (t *TUI) DisplayUpcomingFilesInfo(count int) {
	t.send(upcomingMsg{count: count})
}

// DisplayStartingFileInfo marks the file a worker picked up.
func (t *TUI) DisplayStartingFileInfo(source m.Source, workerID int) {
	path := ""
	if source.Origin != nil {
		path = string(source.Origin.Path)
	}

	t.send(startFileMsg{worker: workerID, path: path})
}

// DisplayCompletedFileInfo records the outcome of one file.
func (t *TUI) DisplayCompletedFileInfo(report m.Report) {
	t.send(completedFileMsg{item: newFileItem(report)})
}

// DisplayCode writes rewritten code straight to the output.
func (t *TUI) DisplayCode(code string) error {
	_, err := fmt.Fprint(t.output, code)

	return err
}

func (t *TUI) send(msg tea.Msg) {
	program, _ := t.state()
	if program != nil {
		program.Send(msg)
	}
}

func (t *TUI) state() (*tea.Program, chan struct{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program, t.done
}
