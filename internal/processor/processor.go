// Package processor runs one catalog ingestion batch: photos are
// fingerprinted, deduplicated, analyzed, and accumulated into new catalog
// entries that are persisted once at the end of the batch.
package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/household-archive/cataloger/internal/boxcode"
	"github.com/household-archive/cataloger/internal/catalog"
	"github.com/household-archive/cataloger/internal/images"
	"github.com/household-archive/cataloger/internal/vision"
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

var (
	createdMark   = color.New(color.FgGreen).Sprint("✓")
	duplicateMark = color.New(color.FgYellow).Sprint("⊗")
	warnMark      = color.New(color.FgYellow).Sprint("⚠")
)

// Processor holds the per-run state: the loaded catalog document, the hash
// index, and the identifier allocator. One Processor serves exactly one
// batch; construct a fresh one per run.
type Processor struct {
	store     *catalog.Store
	key       boxcode.Key
	extractor vision.Extractor
	now       func() time.Time

	doc    *catalog.Document
	hashes *catalog.HashIndex
	ids    *catalog.IDAllocator

	newItems     []catalog.Entry
	updatedItems []catalog.Entry
}

// New loads the catalog snapshot and builds the run state.
func New(store *catalog.Store, key boxcode.Key, extractor vision.Extractor) (*Processor, error) {
	doc, err := store.Load()
	if err != nil {
		return nil, err
	}

	return &Processor{
		store:     store,
		key:       key,
		extractor: extractor,
		now:       time.Now,
		doc:       doc,
		hashes:    catalog.NewHashIndex(doc),
		ids:       catalog.NewIDAllocator(doc),
	}, nil
}

// Run processes every image in photoDir in sorted filename order, then
// persists the catalog, delta, and index if anything was created.
func (p *Processor) Run(ctx context.Context, photoDir string, familyNames []string) error {
	entries, err := os.ReadDir(photoDir)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("directory not found: %s", photoDir)
	}
	if err != nil {
		return fmt.Errorf("failed to read photo directory %s: %w", photoDir, err)
	}

	var photos []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))]; ok {
			photos = append(photos, filepath.Join(photoDir, entry.Name()))
		}
	}
	if len(photos) == 0 {
		fmt.Printf("No image files found in %s\n", photoDir)
		return nil
	}
	sort.Strings(photos)

	fmt.Printf("\nFound %d image(s) to process\n\n", len(photos))

	for _, photo := range photos {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.processPhoto(ctx, photo, familyNames)
	}

	if len(p.newItems) == 0 && len(p.updatedItems) == 0 {
		fmt.Printf("\n%s No new items to add\n", duplicateMark)
		return nil
	}

	if err := p.store.Commit(p.doc, p.newItems); err != nil {
		return err
	}
	deltaFilename, err := p.store.Finalize(p.newItems, p.updatedItems)
	if err != nil {
		return err
	}
	if deltaFilename != "" {
		slog.Info("Created delta file", "delta", deltaFilename)
	}

	fmt.Printf("\n%s Processing complete!\n", createdMark)
	fmt.Printf("   Added: %d items\n", len(p.newItems))
	fmt.Printf("   Updated: %d items\n", len(p.updatedItems))
	return nil
}

// processPhoto handles one photo. Every failure short of a persistence
// error degrades locally: duplicates and empty extractions skip the photo,
// extractor failures fall back to the filename-derived result.
func (p *Processor) processPhoto(ctx context.Context, photoPath string, familyNames []string) {
	fmt.Printf("Processing: %s\n", photoPath)

	sha1Hash, err := images.FileSHA1(photoPath)
	if err != nil {
		slog.Error("Failed to fingerprint photo", "photo", photoPath, "err", err)
		fmt.Printf("  %s Skipped (unreadable)\n", warnMark)
		return
	}

	if existingID, ok := p.hashes.Lookup(sha1Hash); ok {
		fmt.Printf("  %s Duplicate (already in catalog as %s)\n", duplicateMark, existingID)
		return
	}

	result, err := p.extractor.Extract(ctx, photoPath, familyNames)
	if err != nil {
		slog.Warn("Extraction failed, using filename fallback", "photo", photoPath, "err", err)
		result = vision.FallbackResult(photoPath)
	}

	boxID := result.BoxID
	if boxID == "" {
		boxID = boxcode.UnknownCode
	}

	if len(result.Items) == 0 {
		fmt.Printf("  %s No items detected\n", warnMark)
		return
	}

	resolution := p.key.Resolve(boxID)

	for idx, detected := range result.Items {
		entry := p.buildEntry(detected, idx+1, photoPath, sha1Hash, boxID, resolution)

		if err := images.Copy(photoPath, filepath.Join(p.store.ImageDir(), entry.ImageFiles[0].Full)); err != nil {
			slog.Error("Failed to copy photo", "photo", photoPath, "err", err)
			fmt.Printf("  %s Skipped (copy failed)\n", warnMark)
			return
		}
		if err := images.Thumbnail(
			filepath.Join(p.store.ImageDir(), entry.ImageFiles[0].Full),
			filepath.Join(p.store.ImageDir(), entry.ImageFiles[0].Thumb),
		); err != nil {
			// Entry is still cataloged; the thumbnail reference may not
			// resolve on disk.
			slog.Error("Failed to create thumbnail", "photo", photoPath, "err", err)
		}

		p.newItems = append(p.newItems, entry)
		p.hashes.Register(sha1Hash, entry.ID)

		fmt.Printf("  %s Created item: %s (%s)\n", createdMark, entry.ItemName, entry.ID)
	}
}

// buildEntry maps one detected item plus run context into the catalog
// entry shape, filling every missing field with its documented default.
func (p *Processor) buildEntry(detected vision.DetectedItem, itemNum int, photoPath, sha1Hash, boxID string, resolution boxcode.Resolution) catalog.Entry {
	now := p.now()
	dateFound := now.Format("2006-01-02")

	itemName := detected.ItemName
	if itemName == "" {
		itemName = "Unknown Item"
	}
	category := detected.Category
	if category == "" {
		category = "Uncategorized"
	}
	quantity := detected.Quantity
	if quantity == 0 {
		quantity = 1
	}

	fullName := images.CatalogName(now, boxID, itemName, itemNum, photoPath)

	return catalog.Entry{
		ID:          p.ids.Next(now),
		BoxID:       boxID,
		BoxFriendly: resolution.Friendly,
		Category:    category,
		ItemName:    itemName,
		Quantity:    quantity,
		Description: detected.Description,
		Notes:       detected.Notes,
		Captions:    emptyIfNil(detected.Captions),
		People:      emptyIfNil(detected.People),
		DateFound:   dateFound,
		ImageFiles: []catalog.ImageFile{
			{Full: fullName, Thumb: images.ThumbName(fullName)},
		},
		OCR: catalog.OCR{
			BoxIDDetected: boxID,
			RawText:       detected.OCRText,
		},
		Pub: publication(detected.Pub),
		Hashes: catalog.Hashes{
			SHA1:  sha1Hash,
			PHash: nil,
		},
		BoxHistory: []catalog.BoxSpan{
			{BoxID: boxID, From: dateFound, To: nil},
		},
		Tags: emptyIfNil(detected.Tags),
	}
}

func publication(pub *vision.Publication) *catalog.Publication {
	if pub == nil {
		return nil
	}
	return &catalog.Publication{
		PublicationName: pub.PublicationName,
		DateOfIssue:     pub.DateOfIssue,
		PageNumber:      pub.PageNumber,
		NamesMentioned:  emptyIfNil(pub.NamesMentioned),
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
