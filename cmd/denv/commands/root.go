// Package commands implements the CLI commands for the denv tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.tarn.ch/denv/internal/app"
)

// CLI represents the command line interface for denv.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "denv",
		Short:         "Compose reproducible development environments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the environment manifest (default denv.yaml)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to the package catalog (default catalog.yaml)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newComposeCmd())
	rootCmd.AddCommand(c.newListCmd())
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

// paths reads the persistent manifest and catalog flags off the executing
// command.
func paths(cmd *cobra.Command) (manifest, catalog string, err error) {
	manifest, err = cmd.Flags().GetString("config")
	if err != nil {
		return "", "", err
	}
	catalog, err = cmd.Flags().GetString("catalog")
	if err != nil {
		return "", "", err
	}
	return manifest, catalog, nil
}
