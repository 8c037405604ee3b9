/*
Package bitmap adapts decoded images for the playfield generator.

Any format registered with the image package can be read; BMP, GIF, JPEG,
PNG and TIFF decoders are registered by this package. A pixel is considered
set unless it is fully transparent or, for images with no transparency at
all, unless it is pure white. The remaining channels carry the rest of the
information: a red component above 7 marks a set pixel as collidable, the blue
component is the NTSC color and the green component the PAL color, so a
single image can describe the playfield for both television standards.
*/
package bitmap

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"

	"github.com/bodgit/playfield/sample"
	"github.com/ericpauley/go-quantize/quantize"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
)

const (
	// MaxColors is the largest palette Quantize can produce
	MaxColors = 256

	collisionThreshold = 7
)

var errBadColors = errors.New("bitmap: number of colors must be between 2 and 256")

// Image is an image.Image viewed as a sample.Source
type Image struct {
	m     image.Image
	alpha bool
}

// New returns m as an Image
func New(m image.Image) *Image {
	return &Image{
		m:     m,
		alpha: !opaque(m),
	}
}

func opaque(m image.Image) bool {
	if o, ok := m.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := m.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}

// Width returns the width of the image in pixels
func (i *Image) Width() int {
	return i.m.Bounds().Dx()
}

// Height returns the height of the image in pixels
func (i *Image) Height() int {
	return i.m.Bounds().Dy()
}

// At returns the pixel at (x, y) relative to the top-left corner of the image
func (i *Image) At(x, y int) sample.Sample {
	b := i.m.Bounds()
	c := color.NRGBAModel.Convert(i.m.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)

	var set bool
	if i.alpha {
		set = c.A != 0
	} else {
		set = c.R != 0xff || c.G != 0xff || c.B != 0xff
	}

	if !set {
		return sample.Sample{}
	}

	return sample.Sample{
		Set:       true,
		Collision: c.R > collisionThreshold,
		NTSC:      c.B,
		PAL:       c.G,
	}
}

// Quantize returns a copy of m reduced to a palette of at most n colors
func Quantize(m image.Image, n int) (*image.Paletted, error) {
	if n < 2 || n > MaxColors {
		return nil, errBadColors
	}

	b := m.Bounds()
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, n), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	return pm, nil
}

// Decode reads an image from r. If colors is non-zero the image is
// quantized to at most that many colors first.
func Decode(r io.Reader, colors int) (*Image, error) {
	m, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("bitmap: %w", err)
	}

	if colors > 0 {
		pm, err := Quantize(m, colors)
		if err != nil {
			return nil, err
		}
		m = pm
	}

	return New(m), nil
}

// Load reads an image from file, see Decode
func Load(file string, colors int) (*Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f, colors)
}
