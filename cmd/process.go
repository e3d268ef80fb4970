package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/household-archive/cataloger/internal/boxcode"
	"github.com/household-archive/cataloger/internal/catalog"
	"github.com/household-archive/cataloger/internal/gemini"
	"github.com/household-archive/cataloger/internal/processor"
	"github.com/household-archive/cataloger/internal/vision"
	"github.com/spf13/cobra"
)

func newProcessCmd(rootDir *string) *cobra.Command {
	var familyNames string
	var apiKey string

	cmd := &cobra.Command{
		Use:   "process [photo-dir]",
		Short: "Process a batch of photos into the catalog",
		Long: `Processes every image in the given directory: photos already in the
catalog (by content hash) are skipped, the rest are analyzed with the
vision model and appended to the catalog along with a dated delta record.

Without a GEMINI_API_KEY the extraction degrades to a deterministic
filename-derived entry tagged needs-review.`,
		Example: `  # Process a folder of box photos
  cataloger process ~/photos/box-do3m

  # Pass family names through to the vision prompt
  cataloger process ~/photos/box-do3m --family-names "Stephen, Margaret"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := catalog.NewStore(*rootDir)
			if err := store.EnsureLayout(); err != nil {
				return err
			}
			if err := store.Lock(); err != nil {
				return err
			}
			defer store.Unlock()

			key, err := boxcode.LoadKey(store.BoxKeyPath())
			if err != nil {
				slog.Warn("Using built-in box key", "err", err)
			}

			if apiKey == "" {
				apiKey = os.Getenv("GEMINI_API_KEY")
			}
			var extractor vision.Extractor
			if apiKey == "" {
				slog.Warn("No Gemini API key found; OCR and AI descriptions will not be available. Set GEMINI_API_KEY or pass --api-key.")
				extractor = vision.Fallback{}
			} else {
				extractor = gemini.New(apiKey, "")
			}

			var names []string
			for _, name := range strings.Split(familyNames, ",") {
				if name = strings.TrimSpace(name); name != "" {
					names = append(names, name)
				}
			}

			p, err := processor.New(store, key, extractor)
			if err != nil {
				return err
			}
			return p.Run(cmd.Context(), args[0], names)
		},
	}

	cmd.Flags().StringVar(&familyNames, "family-names", "", "Comma-separated list of family names to watch for")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Gemini API key (or set GEMINI_API_KEY env var)")

	return cmd
}
