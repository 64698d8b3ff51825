package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/mesonci/internal/app"
)

func (c *CLI) newCrossFileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cross-file",
		Short: "Render a Meson cross file from a template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			template, _ := cmd.Flags().GetString("template")
			output, _ := cmd.Flags().GetString("output")
			host, _ := cmd.Flags().GetString("host")

			path, err := c.app.RenderCrossFile(cmd.Context(), app.CrossFileOptions{
				Template: template,
				Output:   output,
				Host:     host,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringP("template", "t", ".ci/meson-cross-android.txt", "Cross file template")
	cmd.Flags().StringP("output", "o", "cross.txt", "Rendered cross file")
	return cmd
}
