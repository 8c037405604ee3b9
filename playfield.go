/*
Package playfield is a library for converting bitmap images into playfield
data tables for the Atari 2600.

Each row of the image becomes one scanline of playfield: a byte for each of
the PF0, PF1 and PF2 registers (six for an asymmetrical playfield), a color
byte and, optionally, a row of collision data. The tables are written as
assembler source suitable for including in a kernel.
*/
package playfield

import (
	"io"
	"log"

	"github.com/bodgit/playfield/layout"
)

// Generator converts images into playfield tables
type Generator struct {
	opts     Options
	strategy layout.Strategy
	logger   *log.Logger
}

// New returns a Generator using the provided options. The options should
// have already been checked with Validate. A nil logger discards all
// output.
func New(opts Options, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Generator{
		opts:     opts,
		strategy: layout.New(opts.Symmetry, opts.Mode),
		logger:   logger,
	}
}
