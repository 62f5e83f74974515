package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/luarename/internal/domain"
	m "github.com/mouse-blink/luarename/internal/model"
)

const applyLongDescription = `Apply rewrites one Lua file with a saved YAML plan, skipping suggestion
entirely. The plan is validated against the file first: entries that rename
to keywords, to names already used in the file, or to invalid identifiers are
rejected.`

var planFileFlag string

// applyCmd represents the apply command.
var applyCmd = newApplyCmd()

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply --plan FILE path",
		Short: "Apply a saved rename plan to a file",
		Long:  applyLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Apply(cmd.Context(), domain.ApplyArgs{
				Plan:         m.Path(planFileFlag),
				Path:         m.Path(args[0]),
				Output:       outputMode(),
				OutDir:       m.Path(outDirFlag),
				MaxFileBytes: cfg.MaxFileBytes,
			})
		},
	}

	cmd.Flags().StringVar(&planFileFlag, "plan", "", "YAML plan written by --save-plan")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
