package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Violation is one failed invariant check.
type Violation struct {
	Kind   string
	ItemID string
	Detail string
}

func (v Violation) String() string {
	if v.ItemID == "" {
		return fmt.Sprintf("%s: %s", v.Kind, v.Detail)
	}
	return fmt.Sprintf("%s: %s (%s)", v.Kind, v.ItemID, v.Detail)
}

// VerifyDocument checks the catalog invariants: pairwise-distinct ids,
// pairwise-distinct non-empty sha1 fingerprints, well-formed identifiers,
// and exactly one open box-history span per entry. Closed spans (non-null
// To) are valid alongside the open one, but an entry whose spans are all
// closed, or that has no history at all, has no current box.
func VerifyDocument(doc *Document) []Violation {
	var violations []Violation

	seenIDs := make(map[string]bool)
	seenHashes := make(map[string]string)

	for _, item := range doc.Items {
		if seenIDs[item.ID] {
			violations = append(violations, Violation{
				Kind:   "duplicate-id",
				ItemID: item.ID,
				Detail: "id appears more than once",
			})
		}
		seenIDs[item.ID] = true

		if !strings.HasPrefix(item.ID, idPrefix) {
			violations = append(violations, Violation{
				Kind:   "malformed-id",
				ItemID: item.ID,
				Detail: "id does not match it_<date>_<counter>",
			})
		}

		if sha := item.Hashes.SHA1; sha != "" {
			if prev, ok := seenHashes[sha]; ok {
				violations = append(violations, Violation{
					Kind:   "duplicate-hash",
					ItemID: item.ID,
					Detail: "sha1 already cataloged as " + prev,
				})
			} else {
				seenHashes[sha] = item.ID
			}
		}

		open := 0
		for _, span := range item.BoxHistory {
			if span.To == nil {
				open++
			}
		}
		if open != 1 {
			violations = append(violations, Violation{
				Kind:   "box-history",
				ItemID: item.ID,
				Detail: fmt.Sprintf("%d open box-history spans", open),
			})
		}
	}

	return violations
}

// VerifyIndex checks that every delta the updates index references exists
// on disk and that the index holds no duplicate filenames.
func (s *Store) VerifyIndex() ([]Violation, error) {
	index, err := s.LoadIndex()
	if err != nil {
		return nil, err
	}

	var violations []Violation
	seen := make(map[string]bool)
	for _, name := range index.Deltas {
		if seen[name] {
			violations = append(violations, Violation{
				Kind:   "duplicate-delta",
				Detail: name + " listed more than once",
			})
		}
		seen[name] = true

		if _, err := os.Stat(filepath.Join(s.UpdatesDir(), name)); err != nil {
			violations = append(violations, Violation{
				Kind:   "missing-delta",
				Detail: name + " is indexed but not on disk",
			})
		}
	}
	return violations, nil
}
