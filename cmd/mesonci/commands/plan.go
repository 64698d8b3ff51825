package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mesonci/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

type planOutput struct {
	domain.Plan `yaml:",inline"`

	Fingerprint string `yaml:"fingerprint"`
}

func (c *CLI) newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the build plan for the configured host as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := c.app.Plan(cmd.Context(), planOptions(cmd))
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(planOutput{Fingerprint: plan.Fingerprint(), Plan: *plan}); err != nil {
				return zerr.Wrap(err, "failed to encode plan")
			}
			return enc.Close()
		},
	}
}
