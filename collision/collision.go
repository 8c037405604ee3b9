/*
Package collision packs rows of playfield collision flags into byte tables.

Each emitted row covers the full 40 bit scanline, so it is always five bytes
wide once a symmetrical row has been expanded. Rows can be thinned out so
that one table entry covers a whole kernel loop, or more, trading table size
for collision accuracy.
*/
package collision

import (
	"fmt"
	"strings"
)

// Pack packs bits into bytes, most significant bit first. If the number of
// bits is not a multiple of eight the final byte is padded with zero bits.
func Pack(bits []bool) []byte {
	b := make([]byte, (len(bits)+7)>>3)
	for i, bit := range bits {
		if bit {
			b[i>>3] |= 0x80 >> uint(i&7)
		}
	}
	return b
}

// Format renders each byte as a binary literal, comma separated
func Format(b []byte) string {
	s := make([]string, len(b))
	for i, v := range b {
		s[i] = fmt.Sprintf("%%%08b", v)
	}
	return strings.Join(s, ", ")
}

// Granularity returns the number of rows covered by each collision table
// entry. A resolution override can only make the table coarser than one
// entry per kernel loop, never finer.
func Granularity(kernel, resolution int) int {
	if kernel < 1 {
		kernel = 1
	}
	if resolution > kernel {
		return resolution
	}
	return kernel
}

// Aggregator emits a collision table entry for every nth row
type Aggregator struct {
	every int
	rows  int
}

// New returns an Aggregator that emits an entry for the first row and then
// every n rows after that
func New(n int) *Aggregator {
	if n < 1 {
		n = 1
	}
	return &Aggregator{
		every: n,
	}
}

// Add counts a row and, if an entry is due, returns the formatted packed
// bytes for it
func (a *Aggregator) Add(bits []bool) (string, bool) {
	due := a.rows%a.every == 0
	a.rows++
	if !due {
		return "", false
	}
	return Format(Pack(bits)), true
}

// Rows returns the number of rows counted so far
func (a *Aggregator) Rows() int {
	return a.rows
}
