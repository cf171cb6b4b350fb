// Package engine implements the 2048 game-state engine: the board, the
// directional compact-and-merge algorithm, scoring, the weighted tile spawn
// policy, single-level undo and terminal-state detection.
//
// The engine is pure and synchronous. It performs no I/O and owns no global
// state; the random source is injected by the caller.
package engine

import "fmt"

const (
	// Size is the board side length.
	Size = 4

	// MaxExponent is the largest exponent a cell may hold.
	MaxExponent = 29

	// WinExponent is the exponent of the winning tile (2^11 = 2048).
	WinExponent = 11
)

// Cell is one board square. Exponent 0 means empty, k means tile 2^k.
// Merged marks a cell produced by a merge during the last move; it is
// presentation only and never affects game logic.
type Cell struct {
	Exponent uint8
	Merged   bool
}

// Empty returns true if the cell holds no tile.
func (c Cell) Empty() bool {
	return c.Exponent == 0
}

// Value returns the displayed tile value (0 for an empty cell).
func (c Cell) Value() int {
	if c.Exponent == 0 {
		return 0
	}
	return 1 << c.Exponent
}

// Board is the Size x Size grid, indexed [row][col].
// Out-of-range indexes panic; callers must stay in bounds.
type Board [Size][Size]Cell

// BoardFromExponents builds a board from raw exponents.
func BoardFromExponents(exps [Size][Size]uint8) Board {
	var b Board
	for r := range Size {
		for c := range Size {
			if exps[r][c] > MaxExponent {
				panic(fmt.Sprintf("engine: exponent %d exceeds maximum %d", exps[r][c], MaxExponent))
			}
			b[r][c] = Cell{Exponent: exps[r][c]}
		}
	}
	return b
}

// Clear empties every cell.
func (b *Board) Clear() {
	*b = Board{}
}

// ClearMerged drops all merge highlights.
func (b *Board) ClearMerged() {
	for r := range Size {
		for c := range Size {
			b[r][c].Merged = false
		}
	}
}

// Each calls fn for every cell in row-major order.
func (b *Board) Each(fn func(row, col int, c Cell)) {
	for r := range Size {
		for c := range Size {
			fn(r, c, b[r][c])
		}
	}
}

// Exponents returns the raw exponent grid.
func (b *Board) Exponents() [Size][Size]uint8 {
	var out [Size][Size]uint8
	b.Each(func(r, c int, cell Cell) {
		out[r][c] = cell.Exponent
	})
	return out
}

// Values returns the displayed tile values.
func (b *Board) Values() [Size][Size]int {
	var out [Size][Size]int
	b.Each(func(r, c int, cell Cell) {
		out[r][c] = cell.Value()
	})
	return out
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	n := 0
	b.Each(func(_, _ int, cell Cell) {
		if cell.Empty() {
			n++
		}
	})
	return n
}

// MaxExponent returns the largest exponent on the board (0 if empty).
func (b *Board) MaxExponent() uint8 {
	var top uint8
	b.Each(func(_, _ int, cell Cell) {
		if cell.Exponent > top {
			top = cell.Exponent
		}
	})
	return top
}

// MaxTile returns the largest tile value on the board.
func (b *Board) MaxTile() int {
	return Cell{Exponent: b.MaxExponent()}.Value()
}
