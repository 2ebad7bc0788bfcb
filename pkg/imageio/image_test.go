package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path        string
		expected    Format
		expectError bool
	}{
		{"output.ppm", FormatPPM, false},
		{"renders/frame.PNG", FormatPNG, false},
		{"frame.bmp", FormatBMP, false},
		{"frame.jpg", "", true},
		{"frame", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, err := FormatFromPath(tt.path)
			if tt.expectError {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("Expected ErrUnknownFormat, got %v", err)
				}
				return
			}
			if err != nil || format != tt.expected {
				t.Errorf("Expected %q, got %q (err %v)", tt.expected, format, err)
			}
		})
	}
}

func TestToRGBA(t *testing.T) {
	img := ToRGBA(testFramebuffer(), Truncate)

	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("Unexpected bounds %v", img.Bounds())
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{R: 51, G: 178, B: 255, A: 255}) {
		t.Errorf("Expected background color, got %v", got)
	}
	if got := img.RGBAAt(2, 0); got != (color.RGBA{R: 0, G: 255, B: 127, A: 255}) {
		t.Errorf("Expected clamped color, got %v", got)
	}
}

func TestEncode_Formats(t *testing.T) {
	fb := testFramebuffer()
	expected := ToRGBA(fb, Truncate)

	decoders := map[Format]func(*bytes.Buffer) (image.Image, error){
		FormatPNG: func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		FormatBMP: func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) },
	}

	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, fb, format, Truncate); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			img, err := decode(&buf)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			for y := 0; y < fb.Height; y++ {
				for x := 0; x < fb.Width; x++ {
					r1, g1, b1, _ := img.At(x, y).RGBA()
					r2, g2, b2, _ := expected.At(x, y).RGBA()
					if r1 != r2 || g1 != g2 || b1 != b2 {
						t.Errorf("Pixel (%d,%d) mismatch", x, y)
					}
				}
			}
		})
	}

	if err := Encode(&bytes.Buffer{}, fb, Format("tiff"), Truncate); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ppm")
	if err := SaveFile(path, testFramebuffer(), FormatPPM, Truncate); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if len(data) != len("P6\n3 2\n255\n")+3*2*3 {
		t.Errorf("Unexpected file size %d", len(data))
	}
}

func TestSaveFile_Errors(t *testing.T) {
	dir := t.TempDir()

	missingDir := filepath.Join(dir, "missing", "out.ppm")
	if err := SaveFile(missingDir, testFramebuffer(), FormatPPM, Truncate); err == nil {
		t.Error("Expected error for missing directory")
	}

	badFormat := filepath.Join(dir, "out.tiff")
	if err := SaveFile(badFormat, testFramebuffer(), Format("tiff"), Truncate); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
	if _, err := os.Stat(badFormat); !os.IsNotExist(err) {
		t.Errorf("Expected failed output to be removed, stat returned %v", err)
	}
}
