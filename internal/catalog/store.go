package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

// Store owns the on-disk catalog layout rooted at one directory:
//
//	data/items.base.json    authoritative catalog document
//	data/updates_index.json ledger of delta filenames
//	data/updates/           dated delta documents
//	data/box_key.yaml       optional box code overrides
//	img/                    renamed full-resolution copies and thumbnails
//	archive/                timestamped catalog backups
type Store struct {
	root string
	lock *flock.Flock
	now  func() time.Time
}

func NewStore(root string) *Store {
	return &Store{
		root: root,
		lock: flock.New(filepath.Join(root, "data", ".cataloger.lock")),
		now:  time.Now,
	}
}

func (s *Store) DataDir() string    { return filepath.Join(s.root, "data") }
func (s *Store) UpdatesDir() string { return filepath.Join(s.root, "data", "updates") }
func (s *Store) ImageDir() string   { return filepath.Join(s.root, "img") }
func (s *Store) ArchiveDir() string { return filepath.Join(s.root, "archive") }
func (s *Store) BasePath() string   { return filepath.Join(s.root, "data", "items.base.json") }
func (s *Store) IndexPath() string  { return filepath.Join(s.root, "data", "updates_index.json") }
func (s *Store) BoxKeyPath() string { return filepath.Join(s.root, "data", "box_key.yaml") }

// EnsureLayout creates the directory tree if it does not exist yet.
func (s *Store) EnsureLayout() error {
	for _, dir := range []string{s.DataDir(), s.UpdatesDir(), s.ImageDir(), s.ArchiveDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// Lock acquires the single-writer run lock. A second concurrent run fails
// fast rather than corrupting the store.
func (s *Store) Lock() error {
	ok, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire catalog lock: %w", err)
	}
	if !ok {
		return errors.New("another cataloger run is already active")
	}
	return nil
}

func (s *Store) Unlock() {
	if err := s.lock.Unlock(); err != nil {
		slog.Warn("Failed to release catalog lock", "err", err)
	}
}

// Load reads the base catalog document, or returns a fresh one when no
// catalog exists yet.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.BasePath())
	if errors.Is(err, os.ErrNotExist) {
		return &Document{
			CatalogVersion: s.now().Format("2006.01.02.1504"),
			Source:         SourceLabel,
			Items:          []Entry{},
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return &doc, nil
}

// LoadIndex reads the updates index, or returns an empty one.
func (s *Store) LoadIndex() (*UpdatesIndex, error) {
	data, err := os.ReadFile(s.IndexPath())
	if errors.Is(err, os.ErrNotExist) {
		return &UpdatesIndex{Deltas: []string{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read updates index: %w", err)
	}

	var index UpdatesIndex
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to parse updates index: %w", err)
	}
	return &index, nil
}

// Commit appends the new entries to the document, stamps a fresh catalog
// version, backs up the prior base file to the archive directory, and
// replaces the base file via temp-then-rename.
func (s *Store) Commit(doc *Document, newEntries []Entry) error {
	doc.Items = append(doc.Items, newEntries...)
	doc.CatalogVersion = s.now().Format("2006.01.02.1504")

	if _, err := os.Stat(s.BasePath()); err == nil {
		backupName := fmt.Sprintf("items_%s.json", s.now().Format("20060102_150405"))
		backupPath := filepath.Join(s.ArchiveDir(), backupName)
		if err := copyFile(s.BasePath(), backupPath); err != nil {
			return fmt.Errorf("failed to back up catalog: %w", err)
		}
		slog.Info("Backed up catalog", "backup", backupName)
	}

	if err := s.writeJSON(s.BasePath(), doc); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

// Finalize writes the run's delta record and registers it in the updates
// index. Returns the delta filename, or "" when there is nothing to record.
func (s *Store) Finalize(added, updated []Entry) (string, error) {
	if len(added) == 0 && len(updated) == 0 {
		return "", nil
	}

	deltaVersion := s.now().Format("2006-01-02")
	deltaFilename := deltaVersion + ".json"

	delta := Delta{
		DeltaVersion: deltaVersion,
		Added:        added,
		Updated:      updated,
		Removed:      []Entry{},
		Changelog:    Changelog(added, updated),
	}
	if delta.Added == nil {
		delta.Added = []Entry{}
	}
	if delta.Updated == nil {
		delta.Updated = []Entry{}
	}

	// Overwrites any existing delta for the same date.
	if err := s.writeJSON(filepath.Join(s.UpdatesDir(), deltaFilename), delta); err != nil {
		return "", fmt.Errorf("failed to write delta: %w", err)
	}

	index, err := s.LoadIndex()
	if err != nil {
		return "", err
	}

	registered := false
	for _, name := range index.Deltas {
		if name == deltaFilename {
			registered = true
			break
		}
	}
	if !registered {
		index.Deltas = append(index.Deltas, deltaFilename)
	}
	index.LastUpdated = s.now().Format("2006-01-02 15:04:05")

	if err := s.writeJSON(s.IndexPath(), index); err != nil {
		return "", fmt.Errorf("failed to write updates index: %w", err)
	}

	return deltaFilename, nil
}

// Changelog renders the one-line run summary, e.g.
// "Added 3 items (DO3M:2, KT1L:1); Updated 1 items".
func Changelog(added, updated []Entry) string {
	var parts []string

	if len(added) > 0 {
		boxCounts := make(map[string]int)
		for _, item := range added {
			boxCounts[item.BoxID]++
		}

		boxes := make([]string, 0, len(boxCounts))
		for box := range boxCounts {
			boxes = append(boxes, box)
		}
		sort.Strings(boxes)

		summary := make([]string, 0, len(boxes))
		for _, box := range boxes {
			summary = append(summary, fmt.Sprintf("%s:%d", box, boxCounts[box]))
		}
		parts = append(parts, fmt.Sprintf("Added %d items (%s)", len(added), strings.Join(summary, ", ")))
	}

	if len(updated) > 0 {
		parts = append(parts, fmt.Sprintf("Updated %d items", len(updated)))
	}

	return strings.Join(parts, "; ")
}

// writeJSON writes a document to a temp file in the target directory and
// renames it into place, so a crash never leaves a partial file.
func (s *Store) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
