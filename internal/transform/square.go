package transform

import (
	"image"

	"github.com/disintegration/imaging"
)

// Square resizes img to exactly size x size. Aspect ratio is ignored; the
// classifier's tolerance keeps the distortion invisible for the inputs that
// reach this path.
func Square(img image.Image, size int) *image.NRGBA {
	return imaging.Resize(img, size, size, imaging.Lanczos)
}
