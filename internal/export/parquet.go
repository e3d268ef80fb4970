// Package export writes the catalog out in columnar form for analysis
// tooling (DuckDB, pandas, spreadsheets).
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/household-archive/cataloger/internal/catalog"
	"github.com/parquet-go/parquet-go"
)

// ItemRow is the flattened, one-row-per-item Parquet schema.
type ItemRow struct {
	ID          string `parquet:"id"`
	BoxID       string `parquet:"box_id"`
	BoxFriendly string `parquet:"box_friendly"`
	Category    string `parquet:"category"`
	ItemName    string `parquet:"item_name"`
	Quantity    int32  `parquet:"quantity"`
	Description string `parquet:"description"`
	Notes       string `parquet:"notes"`
	DateFound   string `parquet:"date_found"`
	SHA1        string `parquet:"sha1"`
	Tags        string `parquet:"tags"`
	People      string `parquet:"people"`
	ImageFull   string `parquet:"image_full"`
	ImageThumb  string `parquet:"image_thumb"`
}

// Row flattens one catalog entry. List fields are comma-joined; only the
// first image pair is exported.
func Row(item catalog.Entry) ItemRow {
	row := ItemRow{
		ID:          item.ID,
		BoxID:       item.BoxID,
		BoxFriendly: item.BoxFriendly,
		Category:    item.Category,
		ItemName:    item.ItemName,
		Quantity:    int32(item.Quantity),
		Description: item.Description,
		Notes:       item.Notes,
		DateFound:   item.DateFound,
		SHA1:        item.Hashes.SHA1,
		Tags:        strings.Join(item.Tags, ", "),
		People:      strings.Join(item.People, ", "),
	}
	if len(item.ImageFiles) > 0 {
		row.ImageFull = item.ImageFiles[0].Full
		row.ImageThumb = item.ImageFiles[0].Thumb
	}
	return row
}

// WriteParquet writes every catalog item to a Parquet file at path.
func WriteParquet(path string, items []catalog.Entry) error {
	rows := make([]ItemRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, Row(item))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	writer := parquet.NewGenericWriter[ItemRow](f)
	if _, err := writer.Write(rows); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
