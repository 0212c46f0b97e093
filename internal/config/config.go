package config

import (
	"fmt"
	"math"
)

// Process-wide defaults. Read-only for the lifetime of a run.
const (
	DefaultSize = 300
	MinSize     = 25
	MaxSize     = 10000

	// BlurSigma is the Gaussian blur strength applied to composite
	// backgrounds.
	BlurSigma = 10.0

	// SquareTolerance is the fractional band within which an image counts
	// as approximately square.
	SquareTolerance = 0.05

	// VeilOpacity is the opacity of the white overlay composited onto the
	// blurred background.
	VeilOpacity = 0.33

	// OutputFolder is created inside the input directory to hold results.
	OutputFolder = "revised images"

	// LogName is the run log file inside the output folder.
	LogName = "image_processing.txt"

	// FallbackLogName receives the error when the output folder itself
	// cannot be created.
	FallbackLogName = "image_processing_error.txt"

	// KeepExtension requests each source file's own extension as its
	// output extension.
	KeepExtension = "org"
)

// ValidExtensions are the input extensions the batch will pick up.
var ValidExtensions = []string{"jpg", "jpeg", "bmp", "png", "webp"}

// OutputExtensions are the formats a run may force for all outputs.
var OutputExtensions = []string{"jpg", "jpeg", "png", "webp"}

// Settings is the immutable per-run configuration handed to the batch
// driver and transforms.
type Settings struct {
	Size      int
	Extension string
	Tolerance float64
	BlurSigma float64
	VeilAlpha uint8
}

// New validates size and extension and builds run settings from the
// process defaults.
func New(size int, extension string) (Settings, error) {
	if size < MinSize || size > MaxSize {
		return Settings{}, fmt.Errorf("size %d out of range [%d, %d]", size, MinSize, MaxSize)
	}
	if extension != KeepExtension && !validOutput(extension) {
		return Settings{}, fmt.Errorf("invalid extension %q", extension)
	}
	return Settings{
		Size:      size,
		Extension: extension,
		Tolerance: SquareTolerance,
		BlurSigma: BlurSigma,
		VeilAlpha: uint8(math.Round(255 * VeilOpacity)),
	}, nil
}

// KeepOriginal reports whether outputs keep each source file's extension.
func (s Settings) KeepOriginal() bool {
	return s.Extension == KeepExtension
}

func validOutput(extension string) bool {
	for _, ext := range OutputExtensions {
		if extension == ext {
			return true
		}
	}
	return false
}
