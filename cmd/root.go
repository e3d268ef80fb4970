package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var rootDir string

	cmd := &cobra.Command{
		Use:   "cataloger",
		Short: "Household archive photo cataloger with LLM-powered item extraction",
		Long: `Cataloger processes batches of household item photos into a versioned
JSON catalog, using a vision-capable LLM to extract item metadata and a
deterministic identifier scheme to keep the catalog consistent across
incremental runs.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.PersistentFlags().StringVar(&rootDir, "root", ".", "Catalog root directory (holds data/, img/, archive/)")

	// Add subcommands
	cmd.AddCommand(newProcessCmd(&rootDir))
	cmd.AddCommand(newListCmd(&rootDir))
	cmd.AddCommand(newExportCmd(&rootDir))
	cmd.AddCommand(newVerifyCmd(&rootDir))
	cmd.AddCommand(newServeCmd(&rootDir))

	return cmd
}
