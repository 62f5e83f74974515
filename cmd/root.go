// Package cmd provides the root command and CLI setup for luarename.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mouse-blink/luarename/internal/adapter"
	"github.com/mouse-blink/luarename/internal/config"
	"github.com/mouse-blink/luarename/internal/controller"
	"github.com/mouse-blink/luarename/internal/domain"
	"github.com/mouse-blink/luarename/internal/domain/suggesters"
	m "github.com/mouse-blink/luarename/internal/model"
)

const defaultPath = "./..."

const rootLongDescription = `luarename gives short Lua identifiers (one or two characters) descriptive
names. Candidates are found by parsing each file; replacement names come from
Gemini when GEMINI_API_KEY (or GOOGLE_API_KEY) is set, and from a built in
heuristic otherwise. Every suggestion is validated before it is applied.

By default the result is written next to the input as <name>_refactored.lua.

Files can opt out with a comment:
  --luarename:ignore          skip the whole file
  --luarename:ignore a, b     keep a and b as they are

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - a.lua b.lua    rename individual files`

var luaFileAdapter adapter.LuaFileAdapter
var fsAdapter adapter.SourceFSAdapter
var planStore adapter.PlanStore
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI
var logger *zap.Logger
var cfg config.Config

func init() {
	luaFileAdapter = adapter.NewLocalLuaFileAdapter()
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	planStore = adapter.NewPlanStore()
}

var outDirFlag string
var inPlaceFlag bool
var stdoutFlag bool
var parallelFlag int
var shardFlag string
var modelFlag string
var savePlanFlag string
var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "luarename [paths...]",
		Short:             "Give short Lua identifiers descriptive names",
		Long:              rootLongDescription,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			shardIndex, totalShards := parseShardFlag(shardFlag)

			return workflow.Rename(cmd.Context(), domain.RenameArgs{
				PlanArgs: domain.PlanArgs{
					Paths:           parsePaths(args),
					MaxFileBytes:    cfg.MaxFileBytes,
					Threads:         parallelFlag,
					ShardIndex:      shardIndex,
					TotalShardCount: totalShards,
					SavePlans:       m.Path(savePlanFlag),
				},
				Output: outputMode(),
				OutDir: m.Path(outDirFlag),
			})
		},
	}

	cmd.PersistentFlags().StringVarP(&outDirFlag, "out-dir", "o", "", "write rewritten files into this directory")
	cmd.PersistentFlags().BoolVarP(&inPlaceFlag, "in-place", "i", false, "overwrite the input files")
	cmd.PersistentFlags().BoolVar(&stdoutFlag, "stdout", false, "print rewritten code to stdout instead of writing files")
	cmd.PersistentFlags().StringVar(&modelFlag, "model", "", "Gemini model used for suggestions (default from LUARENAME_MODEL)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	cmd.MarkFlagsMutuallyExclusive("out-dir", "in-place", "stdout")

	addBatchFlags(cmd)

	return cmd
}

// addBatchFlags registers the flags shared by commands that process many files.
func addBatchFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of files processed in parallel")
	cmd.Flags().StringVarP(&shardFlag, "shard", "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
	cmd.Flags().StringVar(&savePlanFlag, "save-plan", "", "write every rename plan as YAML into this directory")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// setup builds the logger, loads config and wires the collaborators that
// depend on it. Collaborators injected beforehand are kept.
func setup(cmd *cobra.Command, _ []string) error {
	if logger == nil {
		built, err := newLogger(verboseFlag)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		logger = built.With(zap.String("run_id", uuid.NewString()))
	}

	if workflow != nil {
		return nil
	}

	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg = loaded
	if modelFlag != "" {
		cfg.Model = modelFlag
	}

	suggester, err := newSuggester(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	logger.Debug("suggestion source selected", zap.String("source", suggester.Name()))

	planner := domain.NewPlanner(suggester, logger, domain.WithSuggestTimeout(cfg.SuggestTimeout))
	orchestrator = domain.NewOrchestrator(fsAdapter, domain.NewRenamer(luaFileAdapter, planner), logger)
	ui = controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()) && !stdoutFlag)
	workflow = domain.NewWorkflow(fsAdapter, planStore, ui, orchestrator, logger)

	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	return zapConfig.Build()
}

// newSuggester picks the cached AI source when credentials are configured and
// the heuristic otherwise.
func newSuggester(ctx context.Context, c config.Config) (domain.Suggester, error) {
	if !c.HasCredentials() {
		return suggesters.NewHeuristic(), nil
	}

	completion, err := adapter.NewGeminiCompletionAdapter(ctx, c.APIKey, c.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}

	cached, err := suggesters.NewCached(suggesters.NewAI(completion), suggesters.DefaultCacheSize)
	if err != nil {
		return nil, err
	}

	return cached, nil
}

func outputMode() domain.OutputMode {
	switch {
	case stdoutFlag:
		return domain.OutputStdout
	case inPlaceFlag:
		return domain.OutputInPlace
	case outDirFlag != "":
		return domain.OutputDir
	default:
		return domain.OutputSibling
	}
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{defaultPath}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}
