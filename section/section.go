/*
Package section implements the ordered collection of assembler data tables
built up while a playfield is generated.

Each table is identified by a Name which doubles as its assembler label.
Tables are emitted in the order in which they first received a line, not in
the order the names are declared, and each table keeps its lines in the order
they were appended so the first image row is always the first line of data.
*/
package section

import "fmt"

// Name identifies an output table
type Name int

// The playfield register tables. The A tables hold the left half of the
// screen, the B tables the right half when generating an asymmetrical
// playfield.
const (
	PF0DataA Name = iota
	PF1DataA
	PF2DataA
	PF0DataB
	PF1DataB
	PF2DataB
	PFColors
	PFCollision
)

var names = [...]string{
	PF0DataA:    "PF0DataA",
	PF1DataA:    "PF1DataA",
	PF2DataA:    "PF2DataA",
	PF0DataB:    "PF0DataB",
	PF1DataB:    "PF1DataB",
	PF2DataB:    "PF2DataB",
	PFColors:    "PFColors",
	PFCollision: "PFCollision",
}

func (n Name) String() string {
	if n < 0 || int(n) >= len(names) {
		return fmt.Sprintf("Name(%d)", int(n))
	}
	return names[n]
}

// Accumulator maps each Name to its lines, remembering the order in which
// names were first seen
type Accumulator struct {
	order []Name
	lines map[Name][]string
}

// New returns an empty Accumulator
func New() *Accumulator {
	return &Accumulator{
		lines: make(map[Name][]string),
	}
}

// Append adds line to the end of the named table, creating the table if
// this is the first line for it
func (a *Accumulator) Append(n Name, line string) {
	if _, ok := a.lines[n]; !ok {
		a.order = append(a.order, n)
	}
	a.lines[n] = append(a.lines[n], line)
}

// Sections returns the table names in first-seen order
func (a *Accumulator) Sections() []Name {
	return append([]Name(nil), a.order...)
}

// Lines returns the lines of the named table in the order they were
// appended, or nil if the table has not been seen
func (a *Accumulator) Lines(n Name) []string {
	l, ok := a.lines[n]
	if !ok {
		return nil
	}
	return append([]string(nil), l...)
}

// Has reports whether any line has been appended to the named table
func (a *Accumulator) Has(n Name) bool {
	_, ok := a.lines[n]
	return ok
}

// Len returns the number of tables
func (a *Accumulator) Len() int {
	return len(a.order)
}
