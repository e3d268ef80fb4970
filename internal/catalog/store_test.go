package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(t.TempDir())
	if err := store.EnsureLayout(); err != nil {
		t.Fatalf("EnsureLayout: %v", err)
	}
	return store
}

func TestLoadFreshDocument(t *testing.T) {
	store := newTestStore(t)

	doc, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Source != SourceLabel {
		t.Errorf("Expected source %q, got %q", SourceLabel, doc.Source)
	}
	if len(doc.Items) != 0 {
		t.Errorf("Expected empty items, got %d", len(doc.Items))
	}
	if doc.CatalogVersion == "" {
		t.Error("Expected a stamped catalog version")
	}
}

func TestCommitBacksUpPriorCatalog(t *testing.T) {
	store := newTestStore(t)

	doc, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	first := Entry{ID: "it_20250314_000001", BoxID: "DO3M", ItemName: "Ledger"}
	if err := store.Commit(doc, []Entry{first}); err != nil {
		t.Fatalf("first Commit: %v", err)
	}

	priorContent, err := os.ReadFile(store.BasePath())
	if err != nil {
		t.Fatalf("read base: %v", err)
	}

	// Second run appends another entry; the prior version must land in
	// the archive unchanged.
	doc, err = store.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	second := Entry{ID: "it_20250315_000002", BoxID: "KT1L", ItemName: "Teapot"}
	if err := store.Commit(doc, []Entry{second}); err != nil {
		t.Fatalf("second Commit: %v", err)
	}

	backups, err := filepath.Glob(filepath.Join(store.ArchiveDir(), "items_*.json"))
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 1 {
		t.Fatalf("Expected exactly one backup, got %d", len(backups))
	}
	backupContent, err := os.ReadFile(backups[0])
	if err != nil {
		t.Fatal(err)
	}
	if string(backupContent) != string(priorContent) {
		t.Error("Expected backup to equal the pre-run catalog content")
	}

	final, err := store.Load()
	if err != nil {
		t.Fatalf("final Load: %v", err)
	}
	if len(final.Items) != 2 {
		t.Fatalf("Expected 2 items after both commits, got %d", len(final.Items))
	}
	if final.Items[0].ID != first.ID || final.Items[1].ID != second.ID {
		t.Errorf("Expected prior entries preserved in order, got %v", final.Items)
	}
}

func TestChangelog(t *testing.T) {
	tests := []struct {
		name     string
		added    []Entry
		updated  []Entry
		expected string
	}{
		{
			name: "added grouped and sorted by box",
			added: []Entry{
				{BoxID: "KT1L"},
				{BoxID: "DO3M"},
				{BoxID: "DO3M"},
			},
			expected: "Added 3 items (DO3M:2, KT1L:1)",
		},
		{
			name:     "single box",
			added:    []Entry{{BoxID: "UNK"}},
			expected: "Added 1 items (UNK:1)",
		},
		{
			name:     "added and updated",
			added:    []Entry{{BoxID: "EL2"}},
			updated:  []Entry{{}, {}},
			expected: "Added 1 items (EL2:1); Updated 2 items",
		},
		{
			name:     "updated only",
			updated:  []Entry{{}},
			expected: "Updated 1 items",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Changelog(tt.added, tt.updated); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFinalizeNoChanges(t *testing.T) {
	store := newTestStore(t)

	name, err := store.Finalize(nil, nil)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if name != "" {
		t.Errorf("Expected no delta filename, got %q", name)
	}
	if _, err := os.Stat(store.IndexPath()); !os.IsNotExist(err) {
		t.Error("Expected no index file for an empty run")
	}
}

func TestFinalizeWritesDeltaAndIndex(t *testing.T) {
	store := newTestStore(t)
	store.now = func() time.Time {
		return time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	}

	added := []Entry{{ID: "it_20250314_000001", BoxID: "DO3M"}}
	name, err := store.Finalize(added, nil)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if name != "2025-03-14.json" {
		t.Errorf("Expected delta named by date, got %q", name)
	}

	data, err := os.ReadFile(filepath.Join(store.UpdatesDir(), name))
	if err != nil {
		t.Fatalf("read delta: %v", err)
	}
	var delta Delta
	if err := json.Unmarshal(data, &delta); err != nil {
		t.Fatalf("parse delta: %v", err)
	}
	if delta.DeltaVersion != "2025-03-14" {
		t.Errorf("Expected delta_version 2025-03-14, got %q", delta.DeltaVersion)
	}
	if len(delta.Added) != 1 || delta.Added[0].ID != "it_20250314_000001" {
		t.Errorf("Expected added entries in delta, got %v", delta.Added)
	}
	if delta.Removed == nil || len(delta.Removed) != 0 {
		t.Errorf("Expected removed to be empty, got %v", delta.Removed)
	}
	if delta.Changelog != "Added 1 items (DO3M:1)" {
		t.Errorf("Unexpected changelog %q", delta.Changelog)
	}

	index, err := store.LoadIndex()
	if err != nil {
		t.Fatalf("LoadIndex: %v", err)
	}
	if len(index.Deltas) != 1 || index.Deltas[0] != name {
		t.Errorf("Expected index to list %q once, got %v", name, index.Deltas)
	}
	if index.LastUpdated != "2025-03-14 15:09:26" {
		t.Errorf("Unexpected last_updated %q", index.LastUpdated)
	}
}

func TestFinalizeRegistersDeltaOnce(t *testing.T) {
	store := newTestStore(t)
	store.now = func() time.Time {
		return time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	}

	added := []Entry{{ID: "it_20250314_000001", BoxID: "DO3M"}}
	for i := 0; i < 2; i++ {
		if _, err := store.Finalize(added, nil); err != nil {
			t.Fatalf("Finalize run %d: %v", i+1, err)
		}
	}

	index, err := store.LoadIndex()
	if err != nil {
		t.Fatalf("LoadIndex: %v", err)
	}
	if len(index.Deltas) != 1 {
		t.Errorf("Expected delta registered once, got %v", index.Deltas)
	}
}
