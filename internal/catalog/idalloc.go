package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const idPrefix = "it_"

// IDAllocator hands out fresh, date-stamped, strictly increasing item
// identifiers. Counter uniqueness assumes a single writer; scoped to one
// batch run.
type IDAllocator struct {
	next int
}

// NewIDAllocator seeds the counter from the maximum trailing counter found
// in existing ids. Malformed identifiers are ignored rather than fatal.
func NewIDAllocator(doc *Document) *IDAllocator {
	maxID := 0
	for _, item := range doc.Items {
		if !strings.HasPrefix(item.ID, idPrefix) {
			continue
		}
		parts := strings.Split(item.ID, "_")
		num, err := strconv.Atoi(parts[len(parts)-1])
		if err != nil {
			continue
		}
		if num > maxID {
			maxID = num
		}
	}
	return &IDAllocator{next: maxID + 1}
}

// Next returns an identifier of the form it_<YYYYMMDD>_<6-digit counter>,
// embedding the date at call time and the running counter.
func (a *IDAllocator) Next(now time.Time) string {
	id := fmt.Sprintf("%s%s_%06d", idPrefix, now.Format("20060102"), a.next)
	a.next++
	return id
}
