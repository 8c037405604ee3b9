package playfield

import (
	"errors"

	"github.com/bodgit/playfield/bitmap"
	"github.com/bodgit/playfield/collision"
	"github.com/bodgit/playfield/layout"
)

var (
	errKernelLines = errors.New("playfield: kernel lines must be at least 1")
	errResolution  = errors.New("playfield: collision resolution cannot be negative")
	errBufferLines = errors.New("playfield: buffer lines cannot be negative")
	errColors      = errors.New("playfield: colors must be 0 or between 2 and 256")
)

// Options controls how a playfield is generated
type Options struct {
	// FullScale is set when each playfield bit is drawn four pixels wide
	FullScale bool
	Symmetry  layout.Symmetry
	Mode      layout.Mode

	// KernelLines is the number of scanlines drawn per kernel loop
	KernelLines int
	// CollisionResolution, if greater than KernelLines, is the number of
	// rows covered by each collision table entry
	CollisionResolution int

	ExcludeColor          bool
	ExcludeCollision      bool
	SeparateCollisionFile bool

	// BufferLines is the number of empty rows added after the image
	BufferLines int
	// SectionPrefix is prepended to each table label except the
	// collision tables
	SectionPrefix string

	// Colors, if non-zero, reduces the image to that many colors before
	// it is sampled
	Colors int
}

// DefaultOptions returns the options for a symmetrical, reflected playfield
// with one scanline per kernel loop
func DefaultOptions() Options {
	return Options{
		Symmetry:    layout.Symmetrical,
		Mode:        layout.Mirror,
		KernelLines: 1,
	}
}

// Validate checks the options are usable
func (o Options) Validate() error {
	switch {
	case o.KernelLines < 1:
		return errKernelLines
	case o.CollisionResolution < 0:
		return errResolution
	case o.BufferLines < 0:
		return errBufferLines
	case o.Colors != 0 && (o.Colors < 2 || o.Colors > bitmap.MaxColors):
		return errColors
	}
	return nil
}

// CollisionLines returns the number of rows covered by each collision table
// entry, or zero if collision data is excluded
func (o Options) CollisionLines() int {
	if o.ExcludeCollision {
		return 0
	}
	return collision.Granularity(o.KernelLines, o.CollisionResolution)
}

func (o Options) width() int {
	return o.Symmetry.Width()
}
