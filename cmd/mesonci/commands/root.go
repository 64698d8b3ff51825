// Package commands implements the CLI commands for mesonci.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/mesonci/internal/app"
	"go.trai.ch/mesonci/internal/build"
)

// CLI represents the command line interface for mesonci.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "mesonci",
		Short:         "Configure, build and test a Meson project for a CI target",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().String("host", "", "Target triple, overrides $HOST")
	rootCmd.PersistentFlags().String("profiles", "", "Profile file consulted before the built-in profiles")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newCrossFileCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

func planOptions(cmd *cobra.Command) app.PlanOptions {
	host, _ := cmd.Flags().GetString("host")
	profiles, _ := cmd.Flags().GetString("profiles")
	return app.PlanOptions{Host: host, ProfilesPath: profiles}
}
