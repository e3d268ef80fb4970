package vision

import "testing"

func TestParseResult(t *testing.T) {
	response := `Here is my analysis of the photo:

` + "```json" + `
{
  "box_id": "DO3M",
  "box_id_confidence": "high",
  "items": [
    {
      "item_name": "Leather Ledger",
      "category": "Documents > Financial",
      "description": "A worn leather-bound ledger.",
      "quantity": 1,
      "tags": ["ledger", "financial"],
      "ocr_text": "Household Accounts 1952"
    }
  ]
}
` + "```" + `

Let me know if you need anything else.`

	result, err := ParseResult(response)
	if err != nil {
		t.Fatalf("ParseResult: %v", err)
	}

	if result.BoxID != "DO3M" {
		t.Errorf("Expected box_id DO3M, got %q", result.BoxID)
	}
	if len(result.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(result.Items))
	}
	if result.Items[0].ItemName != "Leather Ledger" {
		t.Errorf("Expected Leather Ledger, got %q", result.Items[0].ItemName)
	}
	if result.Items[0].OCRText != "Household Accounts 1952" {
		t.Errorf("Expected OCR text preserved, got %q", result.Items[0].OCRText)
	}
}

func TestParseResultWithPublication(t *testing.T) {
	response := `{"box_id": "MG1S", "box_id_confidence": "medium", "items": [{"item_name": "Evening Gazette", "pub": {"publication_name": "Evening Gazette", "date_of_issue": "1948-06-12", "page_number": "4", "names_mentioned": ["Margaret"]}}]}`

	result, err := ParseResult(response)
	if err != nil {
		t.Fatalf("ParseResult: %v", err)
	}
	pub := result.Items[0].Pub
	if pub == nil {
		t.Fatal("Expected pub record")
	}
	if pub.PublicationName != "Evening Gazette" || pub.DateOfIssue != "1948-06-12" {
		t.Errorf("Unexpected pub record %+v", pub)
	}
}

func TestParseResultErrors(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"no json object", "Sorry, I can't see any box label in this image."},
		{"empty response", ""},
		{"unbalanced braces", "oops }{"},
		{"invalid json", "{not json at all}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseResult(tt.response); err == nil {
				t.Error("Expected parse error")
			}
		})
	}
}
