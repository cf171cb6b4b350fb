package engine

import (
	"fmt"
	"strings"
)

// TransformKind is a geometric board permutation.
type TransformKind int

const (
	Transpose TransformKind = iota
	RotateCW
	RotateCCW
	MirrorVertical   // swap row i with row N-1-i
	MirrorHorizontal // swap column j with column N-1-j
)

// String returns the transform name.
func (k TransformKind) String() string {
	switch k {
	case Transpose:
		return "transpose"
	case RotateCW:
		return "rotate-cw"
	case RotateCCW:
		return "rotate-ccw"
	case MirrorVertical:
		return "mirror-vertical"
	case MirrorHorizontal:
		return "mirror-horizontal"
	default:
		return fmt.Sprintf("TransformKind(%d)", int(k))
	}
}

// ParseTransform converts a transform name to a TransformKind.
func ParseTransform(s string) (TransformKind, error) {
	switch strings.ToLower(s) {
	case "transpose", "t":
		return Transpose, nil
	case "rotate-cw", "cw":
		return RotateCW, nil
	case "rotate-ccw", "ccw":
		return RotateCCW, nil
	case "mirror-vertical", "v":
		return MirrorVertical, nil
	case "mirror-horizontal", "h":
		return MirrorHorizontal, nil
	}
	return 0, fmt.Errorf("engine: unknown transform %q", s)
}

// Apply permutes the board in place. Cells, merge flags included, move as a
// whole; the set of values never changes.
func Apply(b *Board, k TransformKind) {
	switch k {
	case Transpose:
		transpose(b)
	case RotateCW:
		transpose(b)
		mirrorHorizontal(b)
	case RotateCCW:
		transpose(b)
		mirrorVertical(b)
	case MirrorVertical:
		mirrorVertical(b)
	case MirrorHorizontal:
		mirrorHorizontal(b)
	default:
		panic(fmt.Sprintf("engine: invalid transform %d", int(k)))
	}
}

func transpose(b *Board) {
	for r := 0; r < Size-1; r++ {
		for c := r + 1; c < Size; c++ {
			b[r][c], b[c][r] = b[c][r], b[r][c]
		}
	}
}

func mirrorVertical(b *Board) {
	for r := range Size / 2 {
		b[r], b[Size-1-r] = b[Size-1-r], b[r]
	}
}

func mirrorHorizontal(b *Board) {
	for r := range Size {
		for c := range Size / 2 {
			b[r][c], b[r][Size-1-c] = b[r][Size-1-c], b[r][c]
		}
	}
}
