package analyzer

import (
	"image"
	"math"
	"os"

	"github.com/nfnt/resize"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	apperrors "go-wallpaper-brightness/internal/errors"
)

// loadWorkingImage reads and decodes path fresh on every call — the file may
// have changed since a previous analysis, so nothing is cached. Embedded
// color profiles are ignored: channel values are taken as sRGB as stored,
// which keeps results reproducible across files with differing ICC metadata.
func loadWorkingImage(path string, maxDimension int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewReadError("opening image file", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, apperrors.NewDecodeError("decoding image", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, apperrors.NewEmptyImageError("decoded image has a zero dimension")
	}

	return resampleImage(img, maxDimension), nil
}

// resampleImage scales img with a single uniform factor so that neither side
// exceeds maxDimension, preserving aspect ratio. Images already within the
// bound are returned unscaled; the analyzer never upscales. Bilinear
// interpolation is deterministic, so repeated analyses of the same file give
// identical results.
func resampleImage(img image.Image, maxDimension int) image.Image {
	bounds := img.Bounds()
	width, height := float64(bounds.Dx()), float64(bounds.Dy())

	scale := math.Min(float64(maxDimension)/width, float64(maxDimension)/height)
	if scale >= 1 {
		return img
	}

	scaledWidth := int(math.Round(width * scale))
	scaledHeight := int(math.Round(height * scale))
	// Extreme aspect ratios can round a side down to zero; keep one row/column.
	if scaledWidth < 1 {
		scaledWidth = 1
	}
	if scaledHeight < 1 {
		scaledHeight = 1
	}

	return resize.Resize(uint(scaledWidth), uint(scaledHeight), img, resize.Bilinear)
}
