package cmd

import (
	"fmt"
	"strconv"

	"github.com/household-archive/cataloger/internal/catalog"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func newListCmd(rootDir *string) *cobra.Command {
	var box string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cataloged items",
		Example: `  # Everything
  cataloger list

  # One box
  cataloger list --box DO3M`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := catalog.NewStore(*rootDir)
			doc, err := store.Load()
			if err != nil {
				return err
			}

			tw := table.NewWriter()
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"ID", "Box", "Location", "Item", "Qty", "Found"})
			tw.SetColumnConfigs([]table.ColumnConfig{
				{Number: 5, Align: text.AlignRight},
			})

			shown := 0
			for _, item := range doc.Items {
				if box != "" && item.BoxID != box {
					continue
				}
				tw.AppendRow(table.Row{
					item.ID,
					item.BoxID,
					item.BoxFriendly,
					item.ItemName,
					strconv.Itoa(item.Quantity),
					item.DateFound,
				})
				shown++
			}

			fmt.Println(tw.Render())
			fmt.Printf("%d item(s), catalog version %s\n", shown, doc.CatalogVersion)
			return nil
		},
	}

	cmd.Flags().StringVar(&box, "box", "", "Only show items in this box code")

	return cmd
}
