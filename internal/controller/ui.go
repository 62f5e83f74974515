// Package controller provides output adapters for displaying rename plans and results.
package controller

import (
	m "github.com/mouse-blink/luarename/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModePlan StartMode = iota
	ModeRename
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithPlanMode sets the UI to dry run mode: plans are shown, nothing is written.
func WithPlanMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModePlan
	}
}

// WithRenameMode sets the UI to rename mode with per file progress.
func WithRenameMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRename
	}
}

// UI displays the progress and outcome of a rename run.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayPlans(reports []m.Report) error
	DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int)
	DisplayUpcomingFilesInfo(count int)
	DisplayStartingFileInfo(source m.Source, workerID int)
	DisplayCompletedFileInfo(report m.Report)
	DisplayCode(code string) error
}
