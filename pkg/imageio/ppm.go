package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/df07/go-raycaster/pkg/renderer"
)

// ErrMalformedPPM is returned when a P6 stream cannot be decoded
var ErrMalformedPPM = errors.New("malformed P6 pixel map")

// WritePPM serializes the framebuffer as a binary P6 pixel map:
// "P6\n<w> <h>\n255\n" followed by w*h RGB byte triples, top row first.
func WritePPM(w io.Writer, fb *renderer.Framebuffer, q Quantizer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	var pixel [3]byte
	for _, c := range fb.Pixels {
		pixel[0] = ChannelToByte(c.X, q)
		pixel[1] = ChannelToByte(c.Y, q)
		pixel[2] = ChannelToByte(c.Z, q)
		if _, err := bw.Write(pixel[:]); err != nil {
			return fmt.Errorf("failed to write PPM pixels: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM pixels: %w", err)
	}
	return nil
}

// MaxPPMPixels bounds the raster ReadPPM is willing to allocate
const MaxPPMPixels = 1 << 26

// PPMImage contains decoded P6 data as raw RGB bytes
type PPMImage struct {
	Width  int
	Height int
	Pixels []byte // Width*Height*3 bytes, row-major
}

// RGB returns the color bytes of pixel (x, y)
func (p *PPMImage) RGB(x, y int) (r, g, b uint8) {
	offset := (y*p.Width + x) * 3
	return p.Pixels[offset], p.Pixels[offset+1], p.Pixels[offset+2]
}

// ReadPPM decodes a binary P6 pixel map with a maximum value of 255
func ReadPPM(r io.Reader) (*PPMImage, error) {
	br := bufio.NewReader(r)

	var magic string
	var width, height, maxVal int
	if _, err := fmt.Fscan(br, &magic, &width, &height, &maxVal); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformedPPM, err)
	}
	if magic != "P6" {
		return nil, fmt.Errorf("%w: magic %q", ErrMalformedPPM, magic)
	}
	if width <= 0 || height <= 0 || maxVal != 255 {
		return nil, fmt.Errorf("%w: size %dx%d max %d", ErrMalformedPPM, width, height, maxVal)
	}
	// Checked by division so width*height cannot overflow
	if width > MaxPPMPixels/height {
		return nil, fmt.Errorf("%w: size %dx%d exceeds %d pixels", ErrMalformedPPM, width, height, MaxPPMPixels)
	}
	// Exactly one whitespace byte separates the header from the raster
	if _, err := br.ReadByte(); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformedPPM, err)
	}

	pixels := make([]byte, width*height*3)
	if _, err := io.ReadFull(br, pixels); err != nil {
		return nil, fmt.Errorf("%w: pixel data: %v", ErrMalformedPPM, err)
	}

	return &PPMImage{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}
