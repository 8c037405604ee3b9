/*
Package asm writes playfield tables as DASM compatible assembler source.

The output starts by defining PLAYFIELD_HEIGHT, the number of rows in every
table. Each table is preceded by a conditional alignment so that indexing it
with any row number never crosses a page boundary, which would cost an extra
cycle in the middle of a kernel.

Collision data is split into sub-tables of at most eight rows followed by
tables of the low and high bytes of each sub-table's address so a kernel can
index the collision data through a zero page pointer.
*/
package asm

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bodgit/playfield/section"
)

const (
	// HeightSymbol is the symbol defined to the number of rows in each table
	HeightSymbol = "PLAYFIELD_HEIGHT"

	// CollisionRows is the maximum number of collision rows per sub-table
	CollisionRows = 8

	indent    = "    "
	directive = indent + ".byte "
)

var alignment = "\n" +
	indent + "if >. != >[.+(" + HeightSymbol + ")]\n" +
	indent + indent + "align 256\n" +
	indent + "endif\n" +
	"\n"

// Binary returns a data line for a byte given as eight '0' or '1' characters
func Binary(bits string) string {
	return directive + "%" + bits
}

// Color returns a data line for a row color. The NTSC color is the data, the
// PAL color follows as a comment.
func Color(ntsc, pal uint8) string {
	return fmt.Sprintf("%s$%02x ; $%02x", directive, ntsc, pal)
}

// Bytes returns a data line for an already formatted list of values
func Bytes(values string) string {
	return directive + values
}

// Options controls what is written
type Options struct {
	Height            int
	Prefix            string
	ExcludeColor      bool
	ExcludeCollision  bool
	SeparateCollision bool
}

func writeTable(b *bytes.Buffer, label string, lines []string) {
	b.WriteString(label + "\n")
	for _, l := range lines {
		b.WriteString(l + "\n")
	}
}

// Encode writes the tables in acc to w, including the collision tables
// unless they are excluded or to be written separately
func Encode(w io.Writer, acc *section.Accumulator, o Options) error {
	b := new(bytes.Buffer)

	b.WriteString(HeightSymbol + " = " + strconv.Itoa(o.Height) + "\n")

	for _, s := range acc.Sections() {
		switch {
		case s == section.PFCollision:
			continue
		case s == section.PFColors && o.ExcludeColor:
			continue
		}

		b.WriteString(alignment)
		writeTable(b, o.Prefix+s.String(), acc.Lines(s))
	}

	if acc.Has(section.PFCollision) && !o.ExcludeCollision && !o.SeparateCollision {
		encodeCollision(b, acc.Lines(section.PFCollision))
	}

	_, err := b.WriteTo(w)
	return err
}

// EncodeCollision writes the collision sub-tables and their address tables
// to w
func EncodeCollision(w io.Writer, lines []string) error {
	b := new(bytes.Buffer)
	encodeCollision(b, lines)
	_, err := b.WriteTo(w)
	return err
}

func encodeCollision(b *bytes.Buffer, lines []string) {
	label := section.PFCollision.String()

	b.WriteString(alignment)

	var n int
	for ; n*CollisionRows < len(lines); n++ {
		end := (n + 1) * CollisionRows
		if end > len(lines) {
			end = len(lines)
		}
		writeTable(b, label+strconv.Itoa(n), lines[n*CollisionRows:end])
	}

	for _, t := range []struct {
		suffix, operator string
	}{
		{"_Lo", "#<"},
		{"_Hi", "#>"},
	} {
		b.WriteString("\n" + label + t.suffix + "\n")
		for i := 0; i < n; i++ {
			b.WriteString(directive + t.operator + label + strconv.Itoa(i) + "\n")
		}
	}
}

// CollisionFilename returns the name of the separate collision file for the
// given output file, e.g. "playfield.asm" becomes "playfield_collision.asm"
func CollisionFilename(file string) string {
	ext := filepath.Ext(file)
	return strings.TrimSuffix(file, ext) + "_collision" + ext
}
