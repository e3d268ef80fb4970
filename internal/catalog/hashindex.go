package catalog

// HashIndex tracks which content fingerprints already exist in the catalog,
// enabling exact-duplicate skipping. Scoped to one batch run; not safe for
// concurrent use.
type HashIndex struct {
	ids map[string]string
}

// NewHashIndex builds the index from every existing entry's sha1.
func NewHashIndex(doc *Document) *HashIndex {
	idx := &HashIndex{ids: make(map[string]string)}
	for _, item := range doc.Items {
		if item.Hashes.SHA1 != "" {
			idx.ids[item.Hashes.SHA1] = item.ID
		}
	}
	return idx
}

// Lookup returns the item id a fingerprint is already cataloged under.
func (x *HashIndex) Lookup(sha1 string) (string, bool) {
	id, ok := x.ids[sha1]
	return id, ok
}

// Register records a fingerprint immediately after its entry is created so
// duplicates within the same run are caught in file-iteration order.
func (x *HashIndex) Register(sha1, id string) {
	x.ids[sha1] = id
}
