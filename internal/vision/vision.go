// Package vision defines the extraction boundary: given a photo, produce a
// structured description of the items in it. The engine depends only on
// this contract and falls back to a filename-derived extraction when the
// real service is unavailable or fails.
package vision

import "context"

// Result is the declared output shape of an extraction.
type Result struct {
	BoxID           string         `json:"box_id"`
	BoxIDConfidence string         `json:"box_id_confidence"`
	Items           []DetectedItem `json:"items"`
}

// DetectedItem is one item the extractor saw in a photo.
type DetectedItem struct {
	ItemName    string       `json:"item_name"`
	Category    string       `json:"category"`
	Description string       `json:"description"`
	Quantity    int          `json:"quantity"`
	Notes       string       `json:"notes"`
	Captions    []string     `json:"captions"`
	People      []string     `json:"people"`
	Tags        []string     `json:"tags"`
	Pub         *Publication `json:"pub"`
	OCRText     string       `json:"ocr_text"`
}

// Publication is filled when the item is a newspaper or magazine.
type Publication struct {
	PublicationName string   `json:"publication_name"`
	DateOfIssue     string   `json:"date_of_issue"`
	PageNumber      string   `json:"page_number"`
	NamesMentioned  []string `json:"names_mentioned"`
}

// Extractor analyzes one photo. familyNames are optional hints for names
// to watch for in documents and photos.
type Extractor interface {
	Extract(ctx context.Context, imagePath string, familyNames []string) (*Result, error)
}
