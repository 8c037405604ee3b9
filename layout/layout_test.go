package layout

import (
	"strings"
	"testing"

	"github.com/bodgit/playfield/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bits converts "1011 0000" into a bool slice, ignoring spaces
func bits(s string) []bool {
	s = strings.ReplaceAll(s, " ", "")
	b := make([]bool, len(s))
	for i, c := range s {
		b[i] = c == '1'
	}
	return b
}

func TestHalfByte(t *testing.T) {
	assert.Equal(t, "11010000", halfByte(bits("1011"), true))
	assert.Equal(t, "10110000", halfByte(bits("1011"), false))
	assert.Equal(t, "00000000", halfByte(bits("0000"), true))
}

func TestFullByte(t *testing.T) {
	assert.Equal(t, "00000011", fullByte(bits("11000000"), true))
	assert.Equal(t, "11000000", fullByte(bits("11000000"), false))
}

func TestReverseDoesNotModifyInput(t *testing.T) {
	in := bits("1000")
	halfByte(in, true)
	assert.Equal(t, bits("1000"), in)
}

func TestLayout(t *testing.T) {
	left := "1011 10000000 11000000"

	tables := map[string]struct {
		symmetry Symmetry
		mode     Mode
		row      string
		want     []Register
	}{
		"symmetrical mirror": {
			Symmetrical, Mirror, left,
			[]Register{
				{section.PF0DataA, "11010000"},
				{section.PF1DataA, "10000000"},
				{section.PF2DataA, "00000011"},
			},
		},
		"symmetrical repeat": {
			Symmetrical, Repeat, left,
			[]Register{
				{section.PF0DataA, "11010000"},
				{section.PF1DataA, "10000000"},
				{section.PF2DataA, "00000011"},
			},
		},
		"asymmetrical mirror": {
			Asymmetrical, Mirror, left + "11100000 10101100 0111",
			[]Register{
				{section.PF0DataA, "11010000"},
				{section.PF1DataA, "10000000"},
				{section.PF2DataA, "00000011"},
				{section.PF2DataB, "11100000"},
				{section.PF1DataB, "00110101"},
				{section.PF0DataB, "01110000"},
			},
		},
		"asymmetrical repeat": {
			Asymmetrical, Repeat, left + "1110 00001010 11000001",
			[]Register{
				{section.PF0DataA, "11010000"},
				{section.PF1DataA, "10000000"},
				{section.PF2DataA, "00000011"},
				{section.PF0DataB, "01110000"},
				{section.PF1DataB, "00001010"},
				{section.PF2DataB, "10000011"},
			},
		},
	}

	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			s := New(table.symmetry, table.mode)
			require.Equal(t, table.symmetry.Width(), s.Width())

			got := s.Layout(bits(table.row))
			assert.Equal(t, table.want, got)
			for _, r := range got {
				assert.Len(t, r.Value, 8)
			}
		})
	}
}

func TestLayoutWrongWidth(t *testing.T) {
	s := New(Symmetrical, Mirror)
	assert.Panics(t, func() { s.Layout(make([]bool, 19)) })
	assert.Panics(t, func() { s.Expand(make([]bool, 40)) })
}

func TestExpand(t *testing.T) {
	m := bits("1100 00000000 00000001")

	mirrored := New(Symmetrical, Mirror).Expand(m)
	assert.Len(t, mirrored, RowWidth)
	assert.Equal(t, append(append([]bool{}, m...), reversed(m)...), mirrored)
	assert.Equal(t, bits("1100 00000000 00000001 1000 00000000 00000011"), mirrored)

	repeated := New(Symmetrical, Repeat).Expand(m)
	assert.Len(t, repeated, RowWidth)
	assert.Equal(t, append(append([]bool{}, m...), m...), repeated)

	full := bits("1111 00000000 00000000 00000000 00000000 0001")
	for _, mode := range []Mode{Mirror, Repeat} {
		assert.Equal(t, full, New(Asymmetrical, mode).Expand(full))
	}
}

func TestParse(t *testing.T) {
	s, err := ParseSymmetry("Asymmetrical")
	require.NoError(t, err)
	assert.Equal(t, Asymmetrical, s)
	assert.Equal(t, "asymmetrical", s.String())

	_, err = ParseSymmetry("diagonal")
	assert.Error(t, err)

	m, err := ParseMode("repeated")
	require.NoError(t, err)
	assert.Equal(t, Repeat, m)
	assert.Equal(t, "repeat", m.String())

	m, err = ParseMode("mirror")
	require.NoError(t, err)
	assert.Equal(t, Mirror, m)

	_, err = ParseMode("sideways")
	assert.Error(t, err)
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 20, Symmetrical.Width())
	assert.Equal(t, 40, Asymmetrical.Width())
}
