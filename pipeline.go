package playfield

import (
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/playfield/asm"
	"github.com/bodgit/playfield/bitmap"
	"github.com/bodgit/playfield/collision"
	"github.com/bodgit/playfield/sample"
	"github.com/bodgit/playfield/section"
)

// Playfield is the result of a generation pass
type Playfield struct {
	// Height is the number of rows in each table, including any buffer
	Height   int
	Sections *section.Accumulator
}

func (g *Generator) logOptions() {
	g.logger.Println("Running with options:")
	g.logger.Printf(" - Scaled? %t\n", g.opts.FullScale)
	g.logger.Printf(" - Number of scan lines per kernel loop: %d\n", g.opts.KernelLines)
	g.logger.Printf(" - Number of scan lines per collision line: %d\n", g.opts.CollisionLines())
	g.logger.Printf(" - Output Buffer Lines: %d\n", g.opts.BufferLines)
	if g.opts.Colors > 0 {
		g.logger.Printf(" - Colors: %d\n", g.opts.Colors)
	}
	g.logger.Printf(" - Mode: %s (%s)\n", g.opts.Symmetry, g.opts.Mode)
}

func (g *Generator) addRow(acc *section.Accumulator, agg *collision.Aggregator, row sample.Row) {
	for _, r := range g.strategy.Layout(row.Bits) {
		acc.Append(r.Section, asm.Binary(r.Value))
	}

	acc.Append(section.PFColors, asm.Color(row.NTSC, row.PAL))

	if agg == nil {
		return
	}
	if line, ok := agg.Add(g.strategy.Expand(row.Collisions)); ok {
		acc.Append(section.PFCollision, asm.Bytes(line))
	}
}

// Build generates the playfield tables for src. An *sample.InvalidFormatError
// is returned if src is the wrong width.
func (g *Generator) Build(src sample.Source) (*Playfield, error) {
	s, err := sample.New(src, g.opts.width(), g.opts.FullScale)
	if err != nil {
		return nil, err
	}

	var agg *collision.Aggregator
	if n := g.opts.CollisionLines(); n > 0 {
		agg = collision.New(n)
	}

	acc := section.New()

	for y := 0; y < s.Height(); y++ {
		g.addRow(acc, agg, s.Row(y))
	}

	for i := 0; i < g.opts.BufferLines; i++ {
		g.addRow(acc, agg, sample.Blank(s.Width()))
	}

	return &Playfield{
		Height:   s.Height() + g.opts.BufferLines,
		Sections: acc,
	}, nil
}

// Encode writes p to w. The collision tables are written to cw if the
// options ask for a separate collision file, in which case cw must not be
// nil.
func (g *Generator) Encode(w, cw io.Writer, p *Playfield) error {
	if err := asm.Encode(w, p.Sections, g.asmOptions(p)); err != nil {
		return err
	}

	if g.separateCollision(p) {
		return asm.EncodeCollision(cw, p.Sections.Lines(section.PFCollision))
	}

	return nil
}

func (g *Generator) asmOptions(p *Playfield) asm.Options {
	return asm.Options{
		Height:            p.Height,
		Prefix:            g.opts.SectionPrefix,
		ExcludeColor:      g.opts.ExcludeColor,
		ExcludeCollision:  g.opts.ExcludeCollision,
		SeparateCollision: g.opts.SeparateCollisionFile,
	}
}

func (g *Generator) separateCollision(p *Playfield) bool {
	return g.opts.SeparateCollisionFile && !g.opts.ExcludeCollision && p.Sections.Has(section.PFCollision)
}

func writeFile(file string, fn func(io.Writer) error) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := fn(f); err != nil {
		return err
	}

	return f.Close()
}

// Write writes p to the output file and, if requested, the separate
// collision file alongside it. The directory containing output must already
// exist.
func (g *Generator) Write(p *Playfield, output string) error {
	file, err := filepath.Abs(output)
	if err != nil {
		return err
	}

	if err := writeFile(file, func(w io.Writer) error {
		return asm.Encode(w, p.Sections, g.asmOptions(p))
	}); err != nil {
		return err
	}
	g.logger.Printf("Wrote output file: %s\n", output)

	if !g.separateCollision(p) {
		return nil
	}

	cfile := asm.CollisionFilename(file)
	if err := writeFile(cfile, func(w io.Writer) error {
		return asm.EncodeCollision(w, p.Sections.Lines(section.PFCollision))
	}); err != nil {
		return err
	}
	g.logger.Printf("Wrote collision file: %s\n", cfile)

	return nil
}

// Generate reads the image in input and writes the playfield tables to
// output. Nothing is written if the image is the wrong width.
func (g *Generator) Generate(input, output string) error {
	g.logOptions()

	g.logger.Printf("Reading input file: %s\n", input)
	src, err := bitmap.Load(input, g.opts.Colors)
	if err != nil {
		return err
	}

	p, err := g.Build(src)
	if err != nil {
		return err
	}

	return g.Write(p, output)
}
