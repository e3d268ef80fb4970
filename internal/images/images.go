// Package images handles the file-level work around cataloged photos:
// content fingerprints, renamed copies, and thumbnails.
package images

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// ThumbnailMaxSize bounds thumbnail width and height.
const ThumbnailMaxSize = 512

// FileSHA1 computes the whole-file content fingerprint by streaming
// fixed-size chunks, so large photos never load fully into memory.
func FileSHA1(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	h := sha1.New()
	buf := make([]byte, 65536)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Copy duplicates the source photo to its catalog destination.
func Copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	return out.Sync()
}

// Thumbnail writes a scaled-down copy of src bounded by ThumbnailMaxSize,
// preserving aspect ratio. Images already within bounds are copied at
// their original size.
func Thumbnail(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", src, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > ThumbnailMaxSize || height > ThumbnailMaxSize {
		scale := float64(ThumbnailMaxSize) / float64(width)
		if height > width {
			scale = float64(ThumbnailMaxSize) / float64(height)
		}
		width = int(float64(width) * scale)
		height = int(float64(height) * scale)
	}

	thumb := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(thumb, thumb.Bounds(), img, bounds, draw.Src, nil)

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	switch strings.ToLower(filepath.Ext(dst)) {
	case ".png":
		return png.Encode(out, thumb)
	default:
		return jpeg.Encode(out, thumb, &jpeg.Options{Quality: 85})
	}
}
