// Package codec opens source images and writes processed ones, picking the
// encoder from the requested output format.
package codec

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"

	_ "golang.org/x/image/webp" // register WebP decoder

	"squarify/pkg/imgutil"
)

const jpegQuality = 95

// Load decodes the image at path. Failures are per-file: the caller logs
// and moves on.
func Load(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// Dimensions reads just enough of the file at path to report its pixel
// dimensions.
func Dimensions(path string) (int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return 0, 0, fmt.Errorf("decoding %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}

// Save encodes img in the given format at a collision-free variant of path
// and returns the path actually written. Formats without alpha support get
// the image flattened to opaque here, and only here, so every upstream
// transform can assume alpha is available.
func Save(img image.Image, path string, format imgutil.Format) (string, error) {
	if !format.HasAlpha() {
		img = flatten(img)
	}

	path = UniquePath(path)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}

	switch format {
	case imgutil.FormatJPEG:
		err = jpeg.Encode(file, img, &jpeg.Options{Quality: jpegQuality})
	case imgutil.FormatPNG:
		err = png.Encode(file, img)
	case imgutil.FormatBMP:
		err = bmp.Encode(file, img)
	case imgutil.FormatWEBP:
		err = webp.Encode(file, img, &webp.Options{Quality: 90})
	default:
		err = fmt.Errorf("unsupported format %s", format)
	}
	if err != nil {
		// Don't leave a zero-byte file squatting on the claimed path.
		_ = file.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// flatten drops transparency, forcing every pixel fully opaque.
func flatten(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}
