package catalog

// SourceLabel is the fixed provenance label stamped into every catalog document.
const SourceLabel = "Stephen Household Archive"

// Document is the authoritative catalog store.
type Document struct {
	CatalogVersion string  `json:"catalog_version"`
	Source         string  `json:"source"`
	Items          []Entry `json:"items"`
}

// Entry is one cataloged item observed in one photo region.
type Entry struct {
	ID          string       `json:"id"`
	BoxID       string       `json:"box_id"`
	BoxFriendly string       `json:"box_friendly"`
	Category    string       `json:"category"`
	ItemName    string       `json:"item_name"`
	Quantity    int          `json:"quantity"`
	Description string       `json:"description"`
	Notes       string       `json:"notes"`
	Captions    []string     `json:"captions"`
	People      []string     `json:"people"`
	DateFound   string       `json:"date_found"`
	ImageFiles  []ImageFile  `json:"image_files"`
	OCR         OCR          `json:"ocr"`
	Pub         *Publication `json:"pub"`
	Hashes      Hashes       `json:"hashes"`
	BoxHistory  []BoxSpan    `json:"box_history"`
	Tags        []string     `json:"tags"`
}

// ImageFile pairs a full-resolution image filename with its thumbnail.
// Always exactly one pair at creation time; a sequence to allow
// multi-image items later.
type ImageFile struct {
	Full  string `json:"full"`
	Thumb string `json:"thumb"`
}

type OCR struct {
	BoxIDDetected string `json:"box_id_detected"`
	RawText       string `json:"raw_text"`
}

// Publication describes a newspaper or magazine item.
type Publication struct {
	PublicationName string   `json:"publication_name"`
	DateOfIssue     string   `json:"date_of_issue"`
	PageNumber      string   `json:"page_number"`
	NamesMentioned  []string `json:"names_mentioned"`
}

// Hashes holds content fingerprints. PHash is reserved for perceptual
// hashing and is always null.
type Hashes struct {
	SHA1  string  `json:"sha1"`
	PHash *string `json:"phash"`
}

// BoxSpan records the period an item lived in a box. A null To marks the
// open span; entries are created with exactly one open span.
type BoxSpan struct {
	BoxID string  `json:"box_id"`
	From  string  `json:"from"`
	To    *string `json:"to"`
}

// Delta is one processing run's changes, keyed by calendar date.
// Re-running twice on the same day overwrites that day's delta file.
type Delta struct {
	DeltaVersion string  `json:"delta_version"`
	Added        []Entry `json:"added"`
	Updated      []Entry `json:"updated"`
	Removed      []Entry `json:"removed"`
	Changelog    string  `json:"changelog"`
}

// UpdatesIndex is the append-only ledger of delta filenames.
type UpdatesIndex struct {
	LastUpdated string   `json:"last_updated"`
	Deltas      []string `json:"deltas"`
}
