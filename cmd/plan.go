package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/luarename/internal/domain"
	m "github.com/mouse-blink/luarename/internal/model"
)

const planLongDescription = `Plan runs candidate selection and suggestion for every file and prints the
accepted renames without touching any file. Use --save-plan to keep the plans
as YAML; a saved plan can be edited and applied later with "luarename apply".`

// planCmd represents the plan command.
var planCmd = newPlanCmd()

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [paths...]",
		Short: "Show the renames for each file without writing anything",
		Long:  planLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			shardIndex, totalShards := parseShardFlag(shardFlag)

			return workflow.Plan(cmd.Context(), domain.PlanArgs{
				Paths:           parsePaths(args),
				MaxFileBytes:    cfg.MaxFileBytes,
				Threads:         parallelFlag,
				ShardIndex:      shardIndex,
				TotalShardCount: totalShards,
				SavePlans:       m.Path(savePlanFlag),
			})
		},
	}

	addBatchFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(planCmd)
}
