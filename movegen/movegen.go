// Package movegen contains the move-enumeration helpers the search
// driver composes: full legal-move generation, uniform random move
// selection, and the dense grid snapshot used for hashing.
package movegen

import (
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/mindergo/tsumego/board"
	"github.com/mindergo/tsumego/point"
)

// GenerateLegalMoves lists every empty point the board reports legal
// for color, in the board's own enumeration order. The pass move is
// never included.
func GenerateLegalMoves(b *board.Board, color point.Color) []point.Point {
	return lo.Filter(b.GetEmptyPoints(), func(p point.Point, _ int) bool {
		return b.IsLegal(p, color)
	})
}

// GenerateRandomMove returns a uniformly random legal move for color,
// skipping self-eye points when useEyeFilter is set, or point.Pass
// when no such move exists. The shuffle makes the choice uniform over
// all candidates rather than first-in-storage-order.
func GenerateRandomMove(b *board.Board, color point.Color, useEyeFilter bool) point.Point {
	moves := b.GetEmptyPoints()
	frand.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})
	for _, p := range moves {
		if useEyeFilter && b.IsEye(p, color) {
			continue
		}
		if b.IsLegal(p, color) {
			return p
		}
	}
	return point.Pass
}

// TwoDBoard returns a size x size dense copy of the stone colors with
// the border padding dropped. Row 1..size of the board land in rows
// 0..size-1 of the result. The snapshot has no backing ties to the
// board.
func TwoDBoard(b *board.Board) [][]point.Color {
	size := b.Size()
	squares := b.Squares()
	grid := make([][]point.Color, size)
	for row := 0; row < size; row++ {
		start := b.RowStart(row + 1)
		grid[row] = make([]point.Color, size)
		copy(grid[row], squares[start:start+size])
	}
	return grid
}
