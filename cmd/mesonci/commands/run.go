package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mesonci/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build and test for the configured host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ignore, _ := cmd.Flags().GetBool("ignore-tests-errors")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			opts := planOptions(cmd)
			opts.IgnoreTestsErrors = ignore
			return c.app.Run(cmd.Context(), app.RunOptions{
				PlanOptions: opts,
				DryRun:      dryRun,
			})
		},
	}
	cmd.Flags().Bool("ignore-tests-errors", false, "Succeed even when the test suite fails")
	cmd.Flags().BoolP("dry-run", "n", false, "Print external commands instead of running them")
	return cmd
}
