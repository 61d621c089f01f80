package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.tarn.ch/denv/internal/app"
	"go.trai.ch/zerr"
)

func (c *CLI) newComposeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compose [environments...]",
		Short: "Compose the named environments and print them",
		Long: `Compose resolves each named environment against the package catalog and
prints the result. Use the name "all" to compose every environment declared
in the manifest.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			manifestPath, catalogPath, err := paths(cmd)
			if err != nil {
				return err
			}

			opts := app.ComposeOptions{
				ManifestPath: manifestPath,
				CatalogPath:  catalogPath,
			}

			opts.Format, err = cmd.Flags().GetString("format")
			if err != nil {
				return err
			}

			outputPath, err := cmd.Flags().GetString("output")
			if err != nil {
				return err
			}
			if outputPath != "" {
				file, err := os.Create(outputPath) //nolint:gosec // path is provided by user
				if err != nil {
					return zerr.Wrap(err, "failed to create output file")
				}
				defer func() {
					_ = file.Close()
				}()
				opts.Output = file
			}

			return c.app.Compose(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringP("format", "f", "nix", "Output format (nix or json)")
	cmd.Flags().StringP("output", "o", "", "Write output to a file instead of stdout")

	return cmd
}
