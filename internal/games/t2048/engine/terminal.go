package engine

// Status is the engine's terminal-state classification.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// HasWon returns true if any cell holds the winning exponent.
func HasWon(b Board) bool {
	won := false
	b.Each(func(_, _ int, c Cell) {
		if c.Exponent == WinExponent {
			won = true
		}
	})
	return won
}

// IsLost returns true if the board is full and no two horizontally or
// vertically adjacent cells are equal.
func IsLost(b Board) bool {
	for r := range Size {
		for c := range Size - 1 {
			if b[r][c].Exponent == b[r][c+1].Exponent {
				return false
			}
		}
	}

	for c := range Size {
		for r := range Size - 1 {
			if b[r][c].Exponent == b[r+1][c].Exponent {
				return false
			}
		}
	}

	for r := range Size {
		for c := range Size {
			if b[r][c].Empty() {
				return false
			}
		}
	}

	return true
}
