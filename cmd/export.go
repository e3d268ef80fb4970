package cmd

import (
	"fmt"

	"github.com/household-archive/cataloger/internal/catalog"
	"github.com/household-archive/cataloger/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(rootDir *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog to a Parquet file",
		Long: `Writes every catalog item as one flat Parquet row for analysis in
DuckDB, pandas, or spreadsheet tooling.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := catalog.NewStore(*rootDir)
			doc, err := store.Load()
			if err != nil {
				return err
			}

			if err := export.WriteParquet(output, doc.Items); err != nil {
				return err
			}

			fmt.Printf("Exported %d item(s) to %s\n", len(doc.Items), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "catalog.parquet", "Output Parquet file")

	return cmd
}
