package imgutil

import "strings"

// Format identifies a supported image format.
type Format int

const (
	FormatUnknown Format = iota
	FormatJPEG
	FormatPNG
	FormatBMP
	FormatWEBP
)

func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "JPEG"
	case FormatPNG:
		return "PNG"
	case FormatBMP:
		return "BMP"
	case FormatWEBP:
		return "WEBP"
	default:
		return "unknown"
	}
}

// HasAlpha reports whether the format's encoder can carry an alpha channel.
// JPEG and BMP are opaque; images headed there must be flattened first.
func (f Format) HasAlpha() bool {
	return f == FormatPNG || f == FormatWEBP
}

// FromExtension maps a file extension (with or without the leading dot,
// any case) to its format. The canonical name is the uppercased extension,
// with "jpg" folded into JPEG.
func FromExtension(ext string) Format {
	switch strings.ToUpper(strings.TrimPrefix(ext, ".")) {
	case "JPG", "JPEG":
		return FormatJPEG
	case "PNG":
		return FormatPNG
	case "BMP":
		return FormatBMP
	case "WEBP":
		return FormatWEBP
	default:
		return FormatUnknown
	}
}

// Eligible reports whether a directory entry name, lowercased, ends in one
// of the given extensions. The match is a bare suffix check on the name.
func Eligible(name string, extensions []string) bool {
	_, ok := Match(name, extensions)
	return ok
}

// Match returns the extension from extensions that the lowercased name ends
// with, if any.
func Match(name string, extensions []string) (string, bool) {
	lower := strings.ToLower(name)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, ext) {
			return ext, true
		}
	}
	return "", false
}
