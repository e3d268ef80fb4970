package images

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// ThumbPrefix marks thumbnail filenames.
const ThumbPrefix = "thumb_"

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slug builds a URL-safe filename fragment from an item name: lower-cased,
// non-alphanumeric runs collapsed to a single dash, trimmed, and capped at
// 50 characters.
func Slug(text string) string {
	text = strings.ToLower(text)
	text = slugPattern.ReplaceAllString(text, "-")
	text = strings.Trim(text, "-")
	if len(text) > 50 {
		text = text[:50]
	}
	return text
}

// CatalogName composes the destination filename for one detected item:
// <YYYYMMDD>_box-<boxID>_<slug>_n<NN><ext>. itemNum is the 1-based
// per-photo sequence number.
func CatalogName(now time.Time, boxID, itemName string, itemNum int, sourcePath string) string {
	return fmt.Sprintf("%s_box-%s_%s_n%02d%s",
		now.Format("20060102"), boxID, Slug(itemName), itemNum, filepath.Ext(sourcePath))
}

// ThumbName returns the thumbnail filename for a catalog image.
func ThumbName(catalogName string) string {
	return ThumbPrefix + catalogName
}
