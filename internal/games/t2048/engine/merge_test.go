package engine

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fromValues builds a board from displayed tile values.
func fromValues(rows [Size][Size]int) Board {
	var b Board
	for r := range Size {
		for c := range Size {
			if v := rows[r][c]; v != 0 {
				b[r][c] = Cell{Exponent: uint8(bits.TrailingZeros(uint(v)))}
			}
		}
	}
	return b
}

func tileCount(b Board) int {
	return Size*Size - b.EmptyCount()
}

func TestNudgeRow(t *testing.T) {
	tests := []struct {
		name     string
		input    [Size]int
		expected [Size]int
		score    int
		moved    bool
	}{
		{"simple merge", [Size]int{2, 2, 0, 0}, [Size]int{4, 0, 0, 0}, 4, true},
		{"merge with trailing tile", [Size]int{2, 2, 2, 0}, [Size]int{4, 2, 0, 0}, 4, true},
		{"double merge", [Size]int{2, 2, 2, 2}, [Size]int{4, 4, 0, 0}, 8, true},
		{"two different pairs", [Size]int{4, 4, 8, 8}, [Size]int{8, 16, 0, 0}, 24, true},
		{"merged tile does not merge again", [Size]int{2, 2, 4, 0}, [Size]int{4, 4, 0, 0}, 4, true},
		{"pair behind a blocker", [Size]int{8, 4, 4, 0}, [Size]int{8, 8, 0, 0}, 8, true},
		{"merge at trailing edge", [Size]int{2, 4, 8, 8}, [Size]int{2, 4, 16, 0}, 16, true},
		{"no merge possible", [Size]int{2, 4, 8, 16}, [Size]int{2, 4, 8, 16}, 0, false},
		{"slide with gap", [Size]int{0, 0, 2, 2}, [Size]int{4, 0, 0, 0}, 4, true},
		{"slide with multiple gaps", [Size]int{2, 0, 0, 2}, [Size]int{4, 0, 0, 0}, 4, true},
		{"already compact", [Size]int{4, 2, 0, 0}, [Size]int{4, 2, 0, 0}, 0, false},
		{"empty row", [Size]int{0, 0, 0, 0}, [Size]int{0, 0, 0, 0}, 0, false},
		{"single tile", [Size]int{0, 4, 0, 0}, [Size]int{4, 0, 0, 0}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := fromValues([Size][Size]int{tt.input})
			var scorer Scorer

			res := Nudge(NewStripe(&b, DirLeft, 0), &scorer)

			assert.Equal(t, tt.expected, b.Values()[0])
			assert.Equal(t, tt.score, scorer.Value())
			assert.Equal(t, tt.moved, res.Moved > 0)
			assert.False(t, res.Won)
		})
	}
}

func TestNudgeMarksMergedCells(t *testing.T) {
	b := fromValues([Size][Size]int{{2, 2, 4, 8}})
	var scorer Scorer

	Nudge(NewStripe(&b, DirLeft, 0), &scorer)

	assert.Equal(t, [Size]int{4, 4, 8, 0}, b.Values()[0])
	assert.True(t, b[0][0].Merged)
	assert.False(t, b[0][1].Merged)
	assert.False(t, b[0][2].Merged)
}

func TestNudgeReportsWin(t *testing.T) {
	b := fromValues([Size][Size]int{{1024, 1024, 0, 0}})
	var scorer Scorer

	res := Nudge(NewStripe(&b, DirLeft, 0), &scorer)

	assert.True(t, res.Won)
	assert.Equal(t, 1, res.Moved)
	assert.Equal(t, 2048, scorer.Value())
	assert.Equal(t, uint8(WinExponent), b[0][0].Exponent)
}

func TestNudgeExponentOverflowPanics(t *testing.T) {
	var b Board
	b[0][0] = Cell{Exponent: MaxExponent}
	b[0][1] = Cell{Exponent: MaxExponent}
	var scorer Scorer

	assert.Panics(t, func() {
		Nudge(NewStripe(&b, DirLeft, 0), &scorer)
	})
}

func TestMoveDirections(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		board    [Size][Size]int
		expected [Size][Size]int
		score    int
	}{
		{
			name: "left",
			dir:  DirLeft,
			board: [Size][Size]int{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			expected: [Size][Size]int{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
			score: 20,
		},
		{
			name: "right",
			dir:  DirRight,
			board: [Size][Size]int{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			expected: [Size][Size]int{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
			score: 20,
		},
		{
			name: "up",
			dir:  DirUp,
			board: [Size][Size]int{
				{2, 4, 2, 0},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 2},
			},
			expected: [Size][Size]int{
				{4, 8, 4, 2},
				{0, 0, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score: 20,
		},
		{
			name: "down",
			dir:  DirDown,
			board: [Size][Size]int{
				{2, 4, 2, 2},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 0},
			},
			expected: [Size][Size]int{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 4, 0},
				{4, 8, 4, 2},
			},
			score: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := fromValues(tt.board)
			var scorer Scorer

			out := Move(&b, tt.dir, &scorer)

			assert.Equal(t, tt.expected, b.Values())
			assert.Equal(t, tt.score, out.ScoreDelta)
			assert.Positive(t, out.Moved)
		})
	}
}

func TestMoveWithoutEffect(t *testing.T) {
	b := fromValues([Size][Size]int{
		{4, 2, 0, 0},
		{8, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	before := b
	var scorer Scorer

	out := Move(&b, DirLeft, &scorer)

	assert.Zero(t, out.Moved)
	assert.Zero(t, out.ScoreDelta)
	assert.Equal(t, before, b)
	assert.False(t, CanMove(b, DirLeft))
	assert.True(t, CanMove(b, DirRight))
}

func TestStripeCoordinates(t *testing.T) {
	var b Board
	tests := []struct {
		dir          Direction
		lane         int
		first, last  [2]int
	}{
		{DirLeft, 1, [2]int{1, 0}, [2]int{1, Size - 1}},
		{DirRight, 1, [2]int{1, Size - 1}, [2]int{1, 0}},
		{DirUp, 2, [2]int{0, 2}, [2]int{Size - 1, 2}},
		{DirDown, 2, [2]int{Size - 1, 2}, [2]int{0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			s := NewStripe(&b, tt.dir, tt.lane)
			r, c := s.Coord(0)
			assert.Equal(t, tt.first, [2]int{r, c})
			r, c = s.Coord(s.Len() - 1)
			assert.Equal(t, tt.last, [2]int{r, c})
		})
	}
}

func TestStripeDefects(t *testing.T) {
	var b Board
	assert.Panics(t, func() { NewStripe(&b, DirLeft, Size) })
	assert.Panics(t, func() { NewStripe(&b, Direction(9), 0) })
	assert.Panics(t, func() { NewStripe(&b, DirUp, 0).At(-1) })
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	_, err := ParseDirection("sideways")
	assert.Error(t, err)
}
