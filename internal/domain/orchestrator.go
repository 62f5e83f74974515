package domain

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/mouse-blink/luarename/internal/adapter"
	m "github.com/mouse-blink/luarename/internal/model"
)

// DefaultMaxFileBytes caps the size of a single input file.
const DefaultMaxFileBytes int64 = 500_000

const (
	luaExt        = ".lua"
	outputPerm    = 0o644
	unsafeNameSub = "_"
)

var unsafeFileChar = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// OutputMode selects where rewritten code goes.
type OutputMode int

// Available OutputMode values.
const (
	// OutputSibling writes <name>_refactored.lua next to the input.
	OutputSibling OutputMode = iota
	// OutputDir writes into ProcessOptions.OutDir under the input's base name.
	OutputDir
	// OutputInPlace overwrites the input.
	OutputInPlace
	// OutputStdout keeps the code in the report for the caller to print.
	OutputStdout
	// OutputNone is a dry run.
	OutputNone
)

// ProcessOptions controls how a single file is read and written.
type ProcessOptions struct {
	Mode         OutputMode
	OutDir       m.Path
	MaxFileBytes int64
}

// Orchestrator runs the rename pipeline for one file on disk: read, plan,
// rewrite and write the result.
type Orchestrator interface {
	Process(ctx context.Context, source m.Source, opts ProcessOptions) m.Report
	Apply(ctx context.Context, source m.Source, plan m.RenamePlan, opts ProcessOptions) m.Report
}

type orchestrator struct {
	fsAdapter adapter.SourceFSAdapter
	renamer   *Renamer
	logger    *zap.Logger
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem adapter and rename pipeline.
func NewOrchestrator(fsAdapter adapter.SourceFSAdapter, renamer *Renamer, logger *zap.Logger) Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &orchestrator{
		fsAdapter: fsAdapter,
		renamer:   renamer,
		logger:    logger,
	}
}

func (o *orchestrator) Process(ctx context.Context, source m.Source, opts ProcessOptions) m.Report {
	report := m.Report{Source: source}

	code, err := o.read(source, opts)
	if err != nil {
		report.Err = err
		return report
	}

	if IgnoresFile(code) {
		o.logger.Debug("file ignored by directive", zap.String("path", string(source.Origin.Path)))

		report.Skipped = true
		report.Code = code

		return report
	}

	rewritten, plan, err := o.renamer.RenameFile(ctx, filepath.Base(string(source.Origin.Path)), code)
	if err != nil {
		report.Err = err
		return report
	}

	report.Plan = plan
	report.Code = rewritten

	o.logger.Debug("plan built",
		zap.String("path", string(source.Origin.Path)),
		zap.Int("renames", len(plan.Renames)),
	)

	return o.write(report, opts)
}

func (o *orchestrator) Apply(_ context.Context, source m.Source, plan m.RenamePlan, opts ProcessOptions) m.Report {
	report := m.Report{Source: source, Plan: plan}

	code, err := o.read(source, opts)
	if err != nil {
		report.Err = err
		return report
	}

	chunk, err := o.renamer.Parse(filepath.Base(string(source.Origin.Path)), code)
	if err != nil {
		report.Err = err
		return report
	}

	if err := ValidatePlan(plan, chunk); err != nil {
		report.Err = fmt.Errorf("invalid plan: %w", err)
		return report
	}

	report.Code = ApplyPlan(code, plan)

	return o.write(report, opts)
}

func (o *orchestrator) read(source m.Source, opts ProcessOptions) (string, error) {
	if source.Origin == nil {
		return "", fmt.Errorf("source origin is nil")
	}

	content, err := o.fsAdapter.ReadFileLimit(source.Origin.Path, opts.MaxFileBytes)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", source.Origin.Path, err)
	}

	return string(content), nil
}

func (o *orchestrator) write(report m.Report, opts ProcessOptions) m.Report {
	target := o.outputPath(report.Source.Origin.Path, opts)
	if target == "" {
		return report
	}

	if opts.Mode == OutputInPlace && report.Plan.IsEmpty() {
		return report
	}

	perm := os.FileMode(outputPerm)
	if opts.Mode == OutputInPlace {
		if info, err := o.fsAdapter.FileInfo(target); err == nil {
			perm = info.Mode().Perm()
		}
	}

	if err := o.fsAdapter.WriteFile(target, []byte(report.Code), perm); err != nil {
		report.Err = fmt.Errorf("failed to write %s: %w", target, err)
		return report
	}

	report.Output = target

	return report
}

func (o *orchestrator) outputPath(input m.Path, opts ProcessOptions) m.Path {
	dir, base := filepath.Split(string(input))

	switch opts.Mode {
	case OutputSibling:
		return o.fsAdapter.JoinPath(dir, RefactoredFileName(base))
	case OutputDir:
		return o.fsAdapter.JoinPath(string(opts.OutDir), SafeFileName(base))
	case OutputInPlace:
		return input
	default:
		return ""
	}
}

// RefactoredFileName maps an input base name to its sibling output name,
// e.g. "main.lua" to "main_refactored.lua".
func RefactoredFileName(base string) string {
	stem := base
	if strings.HasSuffix(strings.ToLower(stem), luaExt) {
		stem = stem[:len(stem)-len(luaExt)]
	}

	return SafeFileName(stem + adapter.RefactoredSuffix + luaExt)
}

// SafeFileName replaces characters outside [A-Za-z0-9._-] and makes sure the
// name ends in .lua.
func SafeFileName(name string) string {
	safe := unsafeFileChar.ReplaceAllString(name, unsafeNameSub)
	if !strings.HasSuffix(strings.ToLower(safe), luaExt) {
		safe += luaExt
	}

	return safe
}
