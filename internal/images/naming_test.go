package images

import (
	"strings"
	"testing"
	"time"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"simple", "Leather Ledger", "leather-ledger"},
		{"punctuation collapsed", "Mom's \"Best\" Teapot!", "mom-s-best-teapot"},
		{"leading and trailing runs trimmed", "  ...Old Photo...  ", "old-photo"},
		{"digits kept", "Box 12 Contents", "box-12-contents"},
		{"truncated to 50", strings.Repeat("a", 60), strings.Repeat("a", 50)},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slug(tt.text); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCatalogName(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	got := CatalogName(now, "DO3M", "Leather Ledger", 1, "/photos/scan_001.JPG")
	expected := "20250314_box-DO3M_leather-ledger_n01.JPG"
	if got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}

	if thumb := ThumbName(got); thumb != "thumb_"+expected {
		t.Errorf("Expected thumb prefix, got %q", thumb)
	}
}
