package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/luarename/internal/adapter"
	"github.com/mouse-blink/luarename/internal/controller"
	m "github.com/mouse-blink/luarename/internal/model"
)

// ErrFilesFailed is returned when at least one file could not be processed.
var ErrFilesFailed = errors.New("some files failed")

// ErrNoSources is returned when the given paths hold no Lua files.
var ErrNoSources = errors.New("no Lua files found")

// PlanArgs selects the files to plan.
type PlanArgs struct {
	Paths           []m.Path
	MaxFileBytes    int64
	Threads         int
	ShardIndex      int
	TotalShardCount int
	SavePlans       m.Path
}

// RenameArgs is PlanArgs plus where the rewritten code goes.
type RenameArgs struct {
	PlanArgs
	Output OutputMode
	OutDir m.Path
}

// ApplyArgs applies a saved plan to one file.
type ApplyArgs struct {
	Plan         m.Path
	Path         m.Path
	Output       OutputMode
	OutDir       m.Path
	MaxFileBytes int64
}

// Workflow defines the interface for rename operations over many files.
type Workflow interface {
	Rename(ctx context.Context, args RenameArgs) error
	Plan(ctx context.Context, args PlanArgs) error
	Apply(ctx context.Context, args ApplyArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	planStore adapter.PlanStore
	ui        controller.UI
	orch      Orchestrator
	logger    *zap.Logger
}

// NewWorkflow creates a new Workflow instance with the provided collaborators.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	planStore adapter.PlanStore,
	ui controller.UI,
	orch Orchestrator,
	logger *zap.Logger,
) Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &workflow{
		fsAdapter: fsAdapter,
		planStore: planStore,
		ui:        ui,
		orch:      orch,
		logger:    logger,
	}
}

// Rename plans and rewrites every selected file.
func (w *workflow) Rename(ctx context.Context, args RenameArgs) error {
	sources, err := w.selectSources(args.PlanArgs)
	if err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithRenameMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	opts := ProcessOptions{Mode: args.Output, OutDir: args.OutDir, MaxFileBytes: args.MaxFileBytes}
	reports := w.processAll(ctx, sources, args.PlanArgs, opts)

	if args.Output == OutputStdout {
		for _, report := range reports {
			if report.Err != nil {
				continue
			}

			if err := w.ui.DisplayCode(report.Code); err != nil {
				return fmt.Errorf("failed to display code: %w", err)
			}
		}
	}

	if err := w.savePlans(args.SavePlans, reports); err != nil {
		return err
	}

	if err := w.waitUI(); err != nil {
		return err
	}

	return summarize(reports)
}

// Plan builds plans without writing any code.
func (w *workflow) Plan(ctx context.Context, args PlanArgs) error {
	sources, err := w.selectSources(args)
	if err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithPlanMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	reports := w.processAll(ctx, sources, args, ProcessOptions{Mode: OutputNone, MaxFileBytes: args.MaxFileBytes})

	if err := w.ui.DisplayPlans(reports); err != nil {
		return fmt.Errorf("failed to display plans: %w", err)
	}

	if err := w.savePlans(args.SavePlans, reports); err != nil {
		return err
	}

	if err := w.waitUI(); err != nil {
		return err
	}

	return summarize(reports)
}

// Apply rewrites one file with a previously saved plan.
func (w *workflow) Apply(ctx context.Context, args ApplyArgs) error {
	plan, err := w.planStore.LoadPlan(args.Plan)
	if err != nil {
		return fmt.Errorf("failed to load plan: %w", err)
	}

	sources, err := w.fsAdapter.Get([]m.Path{args.Path})
	if err != nil {
		return fmt.Errorf("failed to get source: %w", err)
	}

	if len(sources) != 1 {
		return fmt.Errorf("apply needs exactly one Lua file, %s matched %d", args.Path, len(sources))
	}

	if err := w.ui.Start(controller.WithRenameMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	opts := ProcessOptions{Mode: args.Output, OutDir: args.OutDir, MaxFileBytes: args.MaxFileBytes}

	w.ui.DisplayConcurrencyInfo(1, 0, 1)
	w.ui.DisplayUpcomingFilesInfo(1)
	w.ui.DisplayStartingFileInfo(sources[0], 0)

	report := w.orch.Apply(ctx, sources[0], plan, opts)

	w.ui.DisplayCompletedFileInfo(report)

	if report.Err == nil && args.Output == OutputStdout {
		if err := w.ui.DisplayCode(report.Code); err != nil {
			return fmt.Errorf("failed to display code: %w", err)
		}
	}

	if err := w.waitUI(); err != nil {
		return err
	}

	return report.Err
}

// errReporter is implemented by UIs that can fail while they run.
type errReporter interface {
	Err() error
}

// waitUI blocks until the UI is done and reports why it stopped, if it failed.
func (w *workflow) waitUI() error {
	w.ui.Wait()

	if r, ok := w.ui.(errReporter); ok {
		if err := r.Err(); err != nil {
			return fmt.Errorf("ui failed: %w", err)
		}
	}

	return nil
}

// selectSources resolves paths to sources in path order and keeps this
// shard's share of them.
func (w *workflow) selectSources(args PlanArgs) ([]m.Source, error) {
	sources, err := w.fsAdapter.Get(args.Paths)
	if err != nil {
		return nil, fmt.Errorf("failed to get sources: %w", err)
	}

	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].Origin.Path < sources[j].Origin.Path
	})

	return shardSources(sources, args.ShardIndex, args.TotalShardCount), nil
}

func shardSources(sources []m.Source, shardIndex, totalShards int) []m.Source {
	if totalShards <= 1 {
		return sources
	}

	shard := make([]m.Source, 0, len(sources)/totalShards+1)

	for i, source := range sources {
		if i%totalShards == shardIndex {
			shard = append(shard, source)
		}
	}

	return shard
}

// processAll runs the orchestrator over sources with at most args.Threads
// files in flight. Reports keep the order of sources.
func (w *workflow) processAll(ctx context.Context, sources []m.Source, args PlanArgs, opts ProcessOptions) []m.Report {
	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	shardCount := args.TotalShardCount
	if shardCount <= 0 {
		shardCount = 1
	}

	w.ui.DisplayConcurrencyInfo(threads, args.ShardIndex, shardCount)
	w.ui.DisplayUpcomingFilesInfo(len(sources))

	workers := make(chan int, threads)
	for i := range threads {
		workers <- i
	}

	reports := make([]m.Report, len(sources))

	var g errgroup.Group

	g.SetLimit(threads)

	for i, source := range sources {
		g.Go(func() error {
			workerID := <-workers
			defer func() { workers <- workerID }()

			w.ui.DisplayStartingFileInfo(source, workerID)

			report := w.orch.Process(ctx, source, opts)
			if report.Err != nil {
				w.logger.Warn("file failed", zap.String("path", string(source.Origin.Path)), zap.Error(report.Err))
			}

			w.ui.DisplayCompletedFileInfo(report)
			reports[i] = report

			return nil
		})
	}

	_ = g.Wait()

	return reports
}

func (w *workflow) savePlans(dir m.Path, reports []m.Report) error {
	if dir == "" {
		return nil
	}

	if err := w.planStore.SavePlans(dir, reports); err != nil {
		return fmt.Errorf("failed to save plans: %w", err)
	}

	return nil
}

func summarize(reports []m.Report) error {
	failed := 0

	for _, report := range reports {
		if report.Err != nil {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFilesFailed, failed, len(reports))
	}

	return nil
}
