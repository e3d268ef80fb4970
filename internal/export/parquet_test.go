package export

import (
	"path/filepath"
	"testing"

	"github.com/household-archive/cataloger/internal/catalog"
	"github.com/parquet-go/parquet-go"
)

func sampleEntry() catalog.Entry {
	return catalog.Entry{
		ID:          "it_20250314_000001",
		BoxID:       "DO3M",
		BoxFriendly: "Documents - Mom's Room",
		Category:    "Documents > Financial",
		ItemName:    "Leather Ledger",
		Quantity:    1,
		DateFound:   "2025-03-14",
		Hashes:      catalog.Hashes{SHA1: "abc123"},
		Tags:        []string{"ledger", "financial"},
		People:      []string{"Stephen"},
		ImageFiles: []catalog.ImageFile{
			{Full: "20250314_box-DO3M_leather-ledger_n01.jpg", Thumb: "thumb_20250314_box-DO3M_leather-ledger_n01.jpg"},
		},
	}
}

func TestRowFlattensEntry(t *testing.T) {
	row := Row(sampleEntry())

	if row.ID != "it_20250314_000001" {
		t.Errorf("Expected id preserved, got %q", row.ID)
	}
	if row.Tags != "ledger, financial" {
		t.Errorf("Expected comma-joined tags, got %q", row.Tags)
	}
	if row.ImageFull != "20250314_box-DO3M_leather-ledger_n01.jpg" {
		t.Errorf("Expected first image pair, got %q", row.ImageFull)
	}
	if row.Quantity != 1 {
		t.Errorf("Expected quantity 1, got %d", row.Quantity)
	}
}

func TestRowWithoutImages(t *testing.T) {
	entry := sampleEntry()
	entry.ImageFiles = nil

	row := Row(entry)
	if row.ImageFull != "" || row.ImageThumb != "" {
		t.Errorf("Expected empty image columns, got %q / %q", row.ImageFull, row.ImageThumb)
	}
}

func TestWriteParquetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.parquet")

	second := sampleEntry()
	second.ID = "it_20250314_000002"
	second.ItemName = "Teapot"
	second.BoxID = "KT1L"

	if err := WriteParquet(path, []catalog.Entry{sampleEntry(), second}); err != nil {
		t.Fatalf("WriteParquet: %v", err)
	}

	rows, err := parquet.ReadFile[ItemRow](path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].ItemName != "Leather Ledger" || rows[1].ItemName != "Teapot" {
		t.Errorf("Unexpected row order or content: %v", rows)
	}
	if rows[1].BoxID != "KT1L" {
		t.Errorf("Expected KT1L, got %q", rows[1].BoxID)
	}
}

func TestWriteParquetEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.parquet")
	if err := WriteParquet(path, nil); err != nil {
		t.Fatalf("WriteParquet on empty catalog: %v", err)
	}

	rows, err := parquet.ReadFile[ItemRow](path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("Expected no rows, got %d", len(rows))
	}
}
