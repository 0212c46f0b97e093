package transform

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Composite builds the treatment for non-square images: the source
// stretched over the full canvas, blurred and tinted with a translucent
// white veil, with an aspect-preserving copy of the original centered on
// top. The result is always exactly size x size.
func Composite(img image.Image, size int, blurSigma float64, veilAlpha uint8) *image.NRGBA {
	background := imaging.Resize(img, size, size, imaging.Lanczos)

	// The backdrop must read as opaque even when the source carries
	// transparency.
	flattenAlpha(background)
	blurred := imaging.Blur(background, blurSigma)

	veil := imaging.New(size, size, color.NRGBA{R: 255, G: 255, B: 255, A: veilAlpha})
	backdrop := imaging.Overlay(blurred, veil, image.Pt(0, 0), 1.0)

	subject := FitLongSide(img, size)

	canvas := imaging.New(size, size, color.NRGBA{})
	canvas = imaging.Paste(canvas, backdrop, image.Pt(0, 0))

	offset := image.Pt(
		(size-subject.Bounds().Dx())/2,
		(size-subject.Bounds().Dy())/2,
	)
	return imaging.Overlay(canvas, subject, offset, 1.0)
}

// FitLongSide resizes img preserving aspect ratio so its longer dimension
// equals size. The shorter dimension rounds to the nearest pixel.
func FitLongSide(img image.Image, size int) *image.NRGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	scale := float64(size) / float64(max(w, h))
	newW := int(math.Round(float64(w) * scale))
	newH := int(math.Round(float64(h) * scale))

	return imaging.Resize(img, newW, newH, imaging.Lanczos)
}

// flattenAlpha makes every pixel of an NRGBA image fully opaque in place.
func flattenAlpha(img *image.NRGBA) {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
}
