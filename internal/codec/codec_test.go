package codec

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"squarify/pkg/imgutil"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := imaging.New(40, 30, color.NRGBA{R: 120, G: 80, B: 40, A: 255})

	cases := []struct {
		name   string
		format imgutil.Format
	}{
		{"out.jpg", imgutil.FormatJPEG},
		{"out.png", imgutil.FormatPNG},
		{"out.bmp", imgutil.FormatBMP},
		{"out.webp", imgutil.FormatWEBP},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			saved, err := Save(src, filepath.Join(dir, tc.name), tc.format)
			if err != nil {
				t.Fatalf("save: %v", err)
			}

			img, err := Load(saved)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			bounds := img.Bounds()
			if bounds.Dx() != 40 || bounds.Dy() != 30 {
				t.Fatalf("round-trip dimensions %dx%d, want 40x30", bounds.Dx(), bounds.Dy())
			}
		})
	}
}

// Transparent pixels must survive the trip into opaque formats as opaque
// pixels rather than encoder errors.
func TestSaveFlattensForOpaqueFormats(t *testing.T) {
	dir := t.TempDir()
	src := imaging.New(10, 10, color.NRGBA{R: 255, A: 0})

	for _, tc := range []struct {
		name   string
		format imgutil.Format
	}{
		{"flat.jpg", imgutil.FormatJPEG},
		{"flat.bmp", imgutil.FormatBMP},
	} {
		saved, err := Save(src, filepath.Join(dir, tc.name), tc.format)
		if err != nil {
			t.Fatalf("save %s: %v", tc.name, err)
		}
		img, err := Load(saved)
		if err != nil {
			t.Fatalf("load %s: %v", tc.name, err)
		}
		if _, _, _, a := img.At(5, 5).RGBA(); a != 0xffff {
			t.Fatalf("%s: alpha %d after save, want opaque", tc.name, a)
		}
	}
}

func TestSaveFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	src := imaging.New(10, 10, color.NRGBA{A: 255})
	path := filepath.Join(dir, "out.xyz")

	if _, err := Save(src, path, imgutil.FormatUnknown); err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("stray file left at %s after failed save", path)
	}
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.jpg")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected decode error for corrupt file")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDimensions(t *testing.T) {
	dir := t.TempDir()
	src := imaging.New(123, 45, color.NRGBA{A: 255})
	saved, err := Save(src, filepath.Join(dir, "dims.png"), imgutil.FormatPNG)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	w, h, err := Dimensions(saved)
	if err != nil {
		t.Fatalf("dimensions: %v", err)
	}
	if w != 123 || h != 45 {
		t.Fatalf("dimensions = %dx%d, want 123x45", w, h)
	}
}
