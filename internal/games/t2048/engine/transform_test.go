package engine

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBoard() Board {
	return fromValues([Size][Size]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{0, 2, 0, 4},
		{8, 0, 16, 0},
	})
}

func sortedValues(b Board) []int {
	var out []int
	b.Each(func(_, _ int, c Cell) {
		out = append(out, c.Value())
	})
	sort.Ints(out)
	return out
}

func TestTransformIdentities(t *testing.T) {
	tests := []struct {
		name  string
		kinds []TransformKind
	}{
		{"transpose twice", []TransformKind{Transpose, Transpose}},
		{"mirror vertical twice", []TransformKind{MirrorVertical, MirrorVertical}},
		{"mirror horizontal twice", []TransformKind{MirrorHorizontal, MirrorHorizontal}},
		{"rotate cw four times", []TransformKind{RotateCW, RotateCW, RotateCW, RotateCW}},
		{"rotate ccw four times", []TransformKind{RotateCCW, RotateCCW, RotateCCW, RotateCCW}},
		{"cw then ccw", []TransformKind{RotateCW, RotateCCW}},
		{"ccw then cw", []TransformKind{RotateCCW, RotateCW}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := sampleBoard()
			for _, k := range tt.kinds {
				Apply(&b, k)
			}
			assert.Equal(t, sampleBoard(), b)
		})
	}
}

func TestTransformMappings(t *testing.T) {
	tests := []struct {
		kind     TransformKind
		from, to [2]int
	}{
		{Transpose, [2]int{0, 3}, [2]int{3, 0}},
		{RotateCW, [2]int{0, 0}, [2]int{0, Size - 1}},
		{RotateCW, [2]int{0, Size - 1}, [2]int{Size - 1, Size - 1}},
		{RotateCCW, [2]int{0, 0}, [2]int{Size - 1, 0}},
		{MirrorVertical, [2]int{0, 1}, [2]int{Size - 1, 1}},
		{MirrorHorizontal, [2]int{1, 0}, [2]int{1, Size - 1}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			var b Board
			b[tt.from[0]][tt.from[1]] = Cell{Exponent: 5, Merged: true}

			Apply(&b, tt.kind)

			assert.Equal(t, Cell{Exponent: 5, Merged: true}, b[tt.to[0]][tt.to[1]])
			assert.Equal(t, 1, tileCount(b))
		})
	}
}

func TestTransformPreservesValues(t *testing.T) {
	for _, k := range []TransformKind{Transpose, RotateCW, RotateCCW, MirrorVertical, MirrorHorizontal} {
		b := sampleBoard()
		Apply(&b, k)
		assert.Equal(t, sortedValues(sampleBoard()), sortedValues(b), k.String())
	}
}

func TestTransformInvalidPanics(t *testing.T) {
	b := sampleBoard()
	assert.Panics(t, func() { Apply(&b, TransformKind(42)) })
}

func TestParseTransform(t *testing.T) {
	for _, k := range []TransformKind{Transpose, RotateCW, RotateCCW, MirrorVertical, MirrorHorizontal} {
		got, err := ParseTransform(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseTransform("CW")
	require.NoError(t, err)
	assert.Equal(t, RotateCW, got)

	_, err = ParseTransform("flip")
	assert.Error(t, err)
}
