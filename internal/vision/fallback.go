package vision

import (
	"context"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Fallback is the deterministic, filename-derived extractor used when no
// credential is configured.
type Fallback struct{}

func (Fallback) Extract(ctx context.Context, imagePath string, familyNames []string) (*Result, error) {
	return FallbackResult(imagePath), nil
}

// FallbackResult builds a single synthetic detected item from the photo's
// filename: separators become spaces, the name is title-cased, and the
// item is tagged for manual review. Also used per-photo when the real
// extractor fails.
func FallbackResult(imagePath string) *Result {
	stem := strings.TrimSuffix(filepath.Base(imagePath), filepath.Ext(imagePath))
	name := strings.NewReplacer("_", " ", "-", " ").Replace(stem)
	name = titleCaser.String(name)

	return &Result{
		BoxID:           "UNK",
		BoxIDConfidence: "low",
		Items: []DetectedItem{
			{
				ItemName:    name,
				Category:    "Uncategorized",
				Description: "Item requires manual description",
				Quantity:    1,
				Notes:       "Processed without AI analysis",
				Captions:    []string{stem},
				People:      []string{},
				Tags:        []string{"needs-review"},
				Pub:         nil,
				OCRText:     "",
			},
		},
	}
}
