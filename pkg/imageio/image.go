package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/df07/go-raycaster/pkg/renderer"
)

// ErrUnknownFormat is returned for output formats with no encoder
var ErrUnknownFormat = errors.New("unknown image format")

// Format names an output encoding
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
)

// ParseFormat converts a format name (case-insensitive) into a Format
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatPPM, FormatPNG, FormatBMP:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath derives the format from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// ToRGBA converts the framebuffer to an opaque RGBA image
func ToRGBA(fb *renderer.Framebuffer, q Quantizer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			c := fb.At(i, j)
			img.SetRGBA(i, j, color.RGBA{
				R: ChannelToByte(c.X, q),
				G: ChannelToByte(c.Y, q),
				B: ChannelToByte(c.Z, q),
				A: 255,
			})
		}
	}
	return img
}

// Encode writes the framebuffer to w in the given format
func Encode(w io.Writer, fb *renderer.Framebuffer, format Format, q Quantizer) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, fb, q)
	case FormatPNG:
		if err := png.Encode(w, ToRGBA(fb, q)); err != nil {
			return fmt.Errorf("failed to encode PNG: %w", err)
		}
		return nil
	case FormatBMP:
		if err := bmp.Encode(w, ToRGBA(fb, q)); err != nil {
			return fmt.Errorf("failed to encode BMP: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// SaveFile encodes the framebuffer into a new file at path. On failure the
// partially written file is removed so no truncated image is left behind.
func SaveFile(path string, fb *renderer.Framebuffer, format Format, q Quantizer) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return Encode(file, fb, format, q)
}
