/*
Package sample reduces rows of image pixels to rows of playfield bits.

The input image is either drawn with one pixel per playfield bit or, in full
scale mode, with every bit drawn four pixels wide to match the proportions
of the playfield on a television. Along with the bits each row carries a
collision mask and a single NTSC and PAL color, taken from the first set
pixel in the row that has one.
*/
package sample

import "fmt"

// PixelsPerBit is the number of image pixels covering one playfield bit in
// full scale mode
const PixelsPerBit = 4

// Sample is a single pixel as seen by the playfield generator
type Sample struct {
	Set       bool
	Collision bool
	NTSC      uint8
	PAL       uint8
}

// Source provides the pixels of an image
type Source interface {
	Width() int
	Height() int
	At(x, y int) Sample
}

// Row is one scanline of playfield
type Row struct {
	Bits       []bool
	Collisions []bool
	NTSC       uint8
	PAL        uint8
}

// Blank returns a row with no bits set and no color
func Blank(width int) Row {
	return Row{
		Bits:       make([]bool, width),
		Collisions: make([]bool, width),
	}
}

// InvalidFormatError is returned when the image is the wrong width for the
// playfield being generated
type InvalidFormatError struct {
	Width    int
	Expected int
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid file format, required image width=%d", e.Expected)
}

// Sampler reads rows of playfield from a Source
type Sampler struct {
	src   Source
	width int
	scale int
}

// New returns a Sampler producing rows of width bits. The Source must be
// exactly width pixels wide, or PixelsPerBit times that if fullScale is set.
func New(src Source, width int, fullScale bool) (*Sampler, error) {
	scale := 1
	if fullScale {
		scale = PixelsPerBit
	}

	if expected := width * scale; src.Width() != expected {
		return nil, &InvalidFormatError{
			Width:    src.Width(),
			Expected: expected,
		}
	}

	return &Sampler{
		src:   src,
		width: width,
		scale: scale,
	}, nil
}

// Width returns the number of bits in each row
func (s *Sampler) Width() int {
	return s.width
}

// Height returns the number of rows
func (s *Sampler) Height() int {
	return s.src.Height()
}

// Row returns row y
func (s *Sampler) Row(y int) Row {
	r := Row{
		Bits:       make([]bool, s.width),
		Collisions: make([]bool, s.width),
	}

	for i := 0; i < s.width; i++ {
		var set, collide int
		for x := i * s.scale; x < (i+1)*s.scale; x++ {
			p := s.src.At(x, y)
			if p.Set {
				set++
				r.NTSC = sticky(r.NTSC, p.NTSC)
				r.PAL = sticky(r.PAL, p.PAL)
			}
			if p.Collision {
				collide++
			}
		}
		r.Bits[i] = s.majority(set)
		r.Collisions[i] = s.majority(collide)
	}

	return r
}

// A group of four pixels needs at least two set to count
func (s *Sampler) majority(n int) bool {
	if s.scale == 1 {
		return n > 0
	}
	return n > 1
}

// The first non-zero color wins
func sticky(current, v uint8) uint8 {
	if current != 0 {
		return current
	}
	return v
}
