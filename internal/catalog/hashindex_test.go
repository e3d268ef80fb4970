package catalog

import "testing"

func TestHashIndex(t *testing.T) {
	doc := &Document{
		Items: []Entry{
			{ID: "it_20240101_000001", Hashes: Hashes{SHA1: "aaa"}},
			{ID: "it_20240101_000002", Hashes: Hashes{SHA1: "bbb"}},
			{ID: "it_20240101_000003"}, // no hash
		},
	}
	idx := NewHashIndex(doc)

	if id, ok := idx.Lookup("aaa"); !ok || id != "it_20240101_000001" {
		t.Errorf("Expected aaa -> it_20240101_000001, got %q, %v", id, ok)
	}
	if _, ok := idx.Lookup("ccc"); ok {
		t.Error("Expected ccc to be absent")
	}

	idx.Register("ccc", "it_20240101_000004")
	if id, ok := idx.Lookup("ccc"); !ok || id != "it_20240101_000004" {
		t.Errorf("Expected registered hash to resolve, got %q, %v", id, ok)
	}
}
