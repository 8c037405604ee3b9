/*
Package layout splits one row of playfield bits into the values written to
the three TIA playfield registers.

PF0 only uses its upper four bits and displays them from bit 4 to bit 7, PF1
displays its bits from bit 7 to bit 0 and PF2 from bit 0 to bit 7. A
symmetrical playfield describes 20 bits which the hardware reflects or
repeats for the right half of the screen; an asymmetrical playfield describes
all 40 bits and the registers are rewritten mid-scanline, in which case the
order of the second set of writes depends on whether the hardware is in
reflect (mirror) or repeat mode.
*/
package layout

import (
	"fmt"
	"strings"

	"github.com/bodgit/playfield/section"
)

const (
	halfWidth = 4
	fullWidth = 8

	// RowWidth is the number of bits in a full scanline of playfield
	RowWidth = 40
)

// Symmetry selects whether a row describes half or all of the scanline
type Symmetry int

// Supported symmetries
const (
	Symmetrical Symmetry = iota
	Asymmetrical
)

func (s Symmetry) String() string {
	switch s {
	case Symmetrical:
		return "symmetrical"
	case Asymmetrical:
		return "asymmetrical"
	}
	return fmt.Sprintf("Symmetry(%d)", int(s))
}

// Width returns the number of playfield bits in a row
func (s Symmetry) Width() int {
	if s == Asymmetrical {
		return RowWidth
	}
	return RowWidth / 2
}

// ParseSymmetry converts a name as returned by String back into a Symmetry
func ParseSymmetry(s string) (Symmetry, error) {
	switch strings.ToLower(s) {
	case "symmetrical", "s":
		return Symmetrical, nil
	case "asymmetrical", "a":
		return Asymmetrical, nil
	}
	return 0, fmt.Errorf("layout: unknown symmetry %q", s)
}

// Mode selects whether the right half of the screen is a reflection or a
// repeat of the left half
type Mode int

// Supported register modes
const (
	Mirror Mode = iota
	Repeat
)

func (m Mode) String() string {
	switch m {
	case Mirror:
		return "mirror"
	case Repeat:
		return "repeat"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a name as returned by String back into a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "mirror", "mirrored", "m":
		return Mirror, nil
	case "repeat", "repeated", "r":
		return Repeat, nil
	}
	return 0, fmt.Errorf("layout: unknown register mode %q", s)
}

// Register is the value for one playfield register write, rendered as
// eight '0' or '1' characters, most significant bit first
type Register struct {
	Section section.Name
	Value   string
}

// Strategy lays out rows for one combination of Symmetry and Mode
type Strategy interface {
	// Width returns the number of bits expected in each row
	Width() int
	// Layout returns the register values for a row in the order they
	// should first appear in the output
	Layout(bits []bool) []Register
	// Expand widens a row of collision bits to RowWidth
	Expand(collisions []bool) []bool
}

type slice struct {
	size    int
	reverse bool
	section section.Name
}

type strategy struct {
	width  int
	slices []slice
	expand func([]bool) []bool
}

var (
	symmetrical = []slice{
		{halfWidth, true, section.PF0DataA},
		{fullWidth, false, section.PF1DataA},
		{fullWidth, true, section.PF2DataA},
	}

	// In reflect mode the second half is drawn PF2, PF1, PF0 with each
	// register displayed backwards
	asymmetricalMirror = append(symmetrical[:len(symmetrical):len(symmetrical)],
		slice{fullWidth, false, section.PF2DataB},
		slice{fullWidth, true, section.PF1DataB},
		slice{halfWidth, false, section.PF0DataB},
	)

	asymmetricalRepeat = append(symmetrical[:len(symmetrical):len(symmetrical)],
		slice{halfWidth, true, section.PF0DataB},
		slice{fullWidth, false, section.PF1DataB},
		slice{fullWidth, true, section.PF2DataB},
	)
)

// New returns the Strategy for the given symmetry and register mode
func New(s Symmetry, m Mode) Strategy {
	switch {
	case s == Asymmetrical && m == Mirror:
		return &strategy{RowWidth, asymmetricalMirror, duplicate}
	case s == Asymmetrical:
		return &strategy{RowWidth, asymmetricalRepeat, duplicate}
	case m == Mirror:
		return &strategy{RowWidth / 2, symmetrical, mirror}
	default:
		return &strategy{RowWidth / 2, symmetrical, repeat}
	}
}

func (s *strategy) Width() int {
	return s.width
}

func (s *strategy) Layout(bits []bool) []Register {
	if len(bits) != s.width {
		panic(fmt.Sprintf("layout: row has %d bits, want %d", len(bits), s.width))
	}

	registers := make([]Register, 0, len(s.slices))
	for _, sl := range s.slices {
		var v string
		if sl.size == halfWidth {
			v = halfByte(bits[:sl.size], sl.reverse)
		} else {
			v = fullByte(bits[:sl.size], sl.reverse)
		}
		registers = append(registers, Register{sl.section, v})
		bits = bits[sl.size:]
	}
	return registers
}

func (s *strategy) Expand(collisions []bool) []bool {
	if len(collisions) != s.width {
		panic(fmt.Sprintf("layout: row has %d collision bits, want %d", len(collisions), s.width))
	}
	return s.expand(collisions)
}

func duplicate(bits []bool) []bool {
	return append([]bool(nil), bits...)
}

func mirror(bits []bool) []bool {
	out := make([]bool, 0, len(bits)<<1)
	out = append(out, bits...)
	return append(out, reversed(bits)...)
}

func repeat(bits []bool) []bool {
	out := make([]bool, 0, len(bits)<<1)
	out = append(out, bits...)
	return append(out, bits...)
}

func reversed(bits []bool) []bool {
	r := make([]bool, len(bits))
	for i, b := range bits {
		r[len(bits)-1-i] = b
	}
	return r
}

func render(bits []bool) string {
	var sb strings.Builder
	for _, b := range bits {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// PF0 ignores the lower nibble
func halfByte(bits []bool, reverse bool) string {
	if reverse {
		bits = reversed(bits)
	}
	return render(bits) + "0000"
}

func fullByte(bits []bool, reverse bool) string {
	if reverse {
		bits = reversed(bits)
	}
	return render(bits)
}
