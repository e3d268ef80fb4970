package vision

import (
	"fmt"
	"strings"
)

// BuildPrompt returns the analysis prompt sent alongside the photo. The
// response is expected to contain exactly one JSON object matching Result.
func BuildPrompt(familyNames []string) string {
	familyNamesText := ""
	if len(familyNames) > 0 {
		familyNamesText = fmt.Sprintf("\n\nFamily names to watch for: %s", strings.Join(familyNames, ", "))
	}

	return fmt.Sprintf(`Analyze this household archive item photo and extract the following information:

1. **Box ID Label**: Look for any label/sticker showing a box code (format: CC##[Location], e.g., DO3M, KT2L)
   - CC = 2-letter category code
   - ## = box number
   - [Location] = optional location code (L, M, G1, G2, S)

2. **Items visible**: List all distinct items you can see in this photo

3. **For each item**, provide:
   - Item name (short, clear)
   - Detailed description (museum-quality, family-archive tone)
   - Category (use format: MainCategory > SubCategory)
   - Any visible text (OCR)
   - Estimated quantity
   - Any people mentioned in documents/photos
   - Suggested tags
   - Conservation notes if applicable

4. **If this is a publication** (newspaper, magazine):
   - Publication name
   - Date of issue (if visible)
   - Page number
   - Names mentioned%s

Respond in JSON format:
{
  "box_id": "detected box ID or null",
  "box_id_confidence": "high/medium/low",
  "items": [
    {
      "item_name": "...",
      "category": "...",
      "description": "...",
      "quantity": 1,
      "notes": "...",
      "captions": ["..."],
      "people": ["..."],
      "tags": ["..."],
      "pub": {
        "publication_name": "...",
        "date_of_issue": "...",
        "page_number": "...",
        "names_mentioned": ["..."]
      } or null,
      "ocr_text": "any visible text"
    }
  ]
}`, familyNamesText)
}
