package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/household-archive/cataloger/internal/catalog"
	"github.com/spf13/cobra"
)

func newVerifyCmd(rootDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check catalog invariants",
		Long: `Checks the store for invariant violations: duplicate item ids,
duplicate content hashes, malformed ids, box-history inconsistencies, and
updates-index entries whose delta file is missing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := catalog.NewStore(*rootDir)
			doc, err := store.Load()
			if err != nil {
				return err
			}

			violations := catalog.VerifyDocument(doc)
			indexViolations, err := store.VerifyIndex()
			if err != nil {
				return err
			}
			violations = append(violations, indexViolations...)

			if len(violations) == 0 {
				fmt.Printf("%s %d item(s) checked, no violations\n",
					color.New(color.FgGreen).Sprint("✓"), len(doc.Items))
				return nil
			}

			for _, v := range violations {
				fmt.Printf("%s %s\n", color.New(color.FgRed).Sprint("✗"), v)
			}
			return fmt.Errorf("%d violation(s) found", len(violations))
		},
	}

	return cmd
}
