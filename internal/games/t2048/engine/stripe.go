package engine

import (
	"fmt"
	"strings"
)

// Direction is a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists every move direction.
var Directions = [...]Direction{DirLeft, DirRight, DirUp, DirDown}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a direction name to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	}
	return 0, fmt.Errorf("engine: unknown direction %q", s)
}

// Axis selects whether a stripe runs along a row or a column.
type Axis int

const (
	AxisRow Axis = iota
	AxisColumn
)

// Stripe is a one-dimensional view over a row or column in scan order.
// Position 0 is the edge tiles slide toward, so the merge algorithm is the
// same for all four directions. A Stripe is built for one merge pass and
// dropped before the next one.
type Stripe struct {
	board    *Board
	axis     Axis
	backward bool
	lane     int
}

// NewStripe creates the stripe for lane (row or column index) when moving in d.
//
//	left:  row lane, columns 0..N-1
//	right: row lane, columns N-1..0
//	up:    column lane, rows 0..N-1
//	down:  column lane, rows N-1..0
func NewStripe(b *Board, d Direction, lane int) Stripe {
	if lane < 0 || lane >= Size {
		panic(fmt.Sprintf("engine: stripe lane %d out of range", lane))
	}

	s := Stripe{board: b, lane: lane}
	switch d {
	case DirLeft:
		s.axis = AxisRow
	case DirRight:
		s.axis, s.backward = AxisRow, true
	case DirUp:
		s.axis = AxisColumn
	case DirDown:
		s.axis, s.backward = AxisColumn, true
	default:
		panic(fmt.Sprintf("engine: invalid direction %d", int(d)))
	}
	return s
}

// Len returns the number of cells in the stripe.
func (s Stripe) Len() int {
	return Size
}

// Coord maps a stripe position to its physical (row, col).
func (s Stripe) Coord(i int) (row, col int) {
	if i < 0 || i >= Size {
		panic(fmt.Sprintf("engine: stripe index %d out of range", i))
	}
	if s.backward {
		i = Size - 1 - i
	}
	if s.axis == AxisRow {
		return s.lane, i
	}
	return i, s.lane
}

// At returns the cell at stripe position i.
func (s Stripe) At(i int) Cell {
	r, c := s.Coord(i)
	return s.board[r][c]
}

// Set writes the cell at stripe position i.
func (s Stripe) Set(i int, cell Cell) {
	r, c := s.Coord(i)
	s.board[r][c] = cell
}
