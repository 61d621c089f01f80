package commands

import (
	"github.com/spf13/cobra"
	"go.tarn.ch/denv/internal/app"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List declared environments or catalog packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manifestPath, catalogPath, err := paths(cmd)
			if err != nil {
				return err
			}

			packages, err := cmd.Flags().GetBool("packages")
			if err != nil {
				return err
			}

			return c.app.List(cmd.Context(), app.ListOptions{
				ManifestPath: manifestPath,
				CatalogPath:  catalogPath,
				Packages:     packages,
			})
		},
	}

	cmd.Flags().BoolP("packages", "p", false, "List catalog packages instead of environments")

	return cmd
}
