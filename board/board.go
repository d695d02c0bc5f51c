// Package board implements the board collaborator the search core
// consumes: flat stone storage with a sentinel border, legality
// checking under no-capture rules, the structural eye test, move
// apply/undo, and terminal-position evaluation.
package board

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash"

	"github.com/mindergo/tsumego/point"
)

// A flag on a cell marking it as part of the chain currently being
// walked. Cleared before any liberty check returns.
const cellInChain point.Color = 64

// Board is a square Go board of side length size, stored as a flat
// array with a one-cell border ring:
//
//	index = (size+1)*row + col, 1 <= row, col <= size
//
// The zero row and column are never used, and every cell outside the
// playable area holds point.Border, so neighbor arithmetic needs no
// bounds checks.
type Board struct {
	size   int
	stride int // size + 1, one border cell shared between rows

	cells      []point.Color
	allPoints  []point.Point // playable points in row-major order
	dirOffset  [4]point.Point
	diagOffset [4]point.Point

	moves []moveRecord

	// Scratch, reused to avoid per-call allocation.
	chainPoints []point.Point
	hashBuf     []byte
}

type moveRecord struct {
	pt    point.Point
	color point.Color
}

// NewBoard creates an empty board. The size cap comes from the
// coordinate printing alphabet, guarded here at the boundary rather
// than inside the codec.
func NewBoard(size int) (*Board, error) {
	if size < 1 || size > point.MaxBoardSize {
		return nil, fmt.Errorf("board size %d out of range [1, %d]", size, point.MaxBoardSize)
	}
	b := &Board{
		size:   size,
		stride: size + 1,
	}
	b.dirOffset[0] = point.Point(1)
	b.dirOffset[1] = point.Point(-1)
	b.dirOffset[2] = point.Point(b.stride)
	b.dirOffset[3] = point.Point(-b.stride)
	b.diagOffset[0] = point.Point(b.stride - 1)
	b.diagOffset[1] = point.Point(b.stride + 1)
	b.diagOffset[2] = point.Point(-b.stride - 1)
	b.diagOffset[3] = point.Point(-b.stride + 1)

	b.cells = make([]point.Color, b.stride*(b.stride+1)+1)
	for i := range b.cells {
		b.cells[i] = point.Border
	}
	b.allPoints = make([]point.Point, 0, size*size)
	for row := 1; row <= size; row++ {
		for col := 1; col <= size; col++ {
			p := point.Point(b.stride*row + col)
			b.cells[p] = point.Empty
			b.allPoints = append(b.allPoints, p)
		}
	}
	b.chainPoints = make([]point.Point, len(b.allPoints))
	b.hashBuf = make([]byte, len(b.cells))
	return b, nil
}

// Size returns the board dimension.
func (b *Board) Size() int { return b.size }

// RowStart returns the flat index of the first column of a 1-indexed
// row.
func (b *Board) RowStart(row int) int { return b.stride*row + 1 }

// Squares exposes the raw flat stone storage, border ring included.
// Callers must treat it as read-only.
func (b *Board) Squares() []point.Color { return b.cells }

// GetEmptyPoints returns the currently empty points in row-major
// order. The slice is freshly allocated and safe to permute.
func (b *Board) GetEmptyPoints() []point.Point {
	empties := make([]point.Point, 0, len(b.allPoints))
	for _, p := range b.allPoints {
		if b.cells[p] == point.Empty {
			empties = append(empties, p)
		}
	}
	return empties
}

// PlayMove places a stone of the given color, or records a pass.
// Under no-capture rules a placement is illegal when the target is not
// an empty board point, when it would leave its own chain with no
// liberty, or when it would take the last liberty of an adjacent enemy
// chain. On error the board is unchanged.
func (b *Board) PlayMove(p point.Point, c point.Color) error {
	if c != point.Black && c != point.White {
		return fmt.Errorf("play: %v is not a playing color", c)
	}
	if p == point.Pass {
		b.moves = append(b.moves, moveRecord{pt: point.Pass, color: c})
		return nil
	}
	if p < 0 || int(p) >= len(b.cells) || b.cells[p] != point.Empty {
		return fmt.Errorf("play: point %d is not an empty board point", p)
	}

	// Place the stone tentatively; both rule checks look at the
	// resulting position.
	b.cells[p] = c
	enemy := c.Opponent()
	for dir := 0; dir < 4; dir++ {
		n := p + b.dirOffset[dir]
		if b.cells[n] == enemy && !b.hasLiberty(n) {
			b.cells[p] = point.Empty
			return fmt.Errorf("play: point %d would capture", p)
		}
	}
	if !b.hasLiberty(p) {
		b.cells[p] = point.Empty
		return fmt.Errorf("play: point %d is suicide", p)
	}

	b.moves = append(b.moves, moveRecord{pt: p, color: c})
	return nil
}

// UndoLastMove reverses the most recent PlayMove. Since no move ever
// captures, undo is the removal of a single stone; it exactly restores
// the prior state. Undoing on an empty history is a no-op.
func (b *Board) UndoLastMove() {
	if len(b.moves) == 0 {
		return
	}
	last := b.moves[len(b.moves)-1]
	b.moves = b.moves[:len(b.moves)-1]
	if last.pt != point.Pass {
		b.cells[last.pt] = point.Empty
	}
}

// IsLegal reports whether playing at p is legal for c. It applies the
// move and undoes it, so it exercises the same rule checks as
// PlayMove.
func (b *Board) IsLegal(p point.Point, c point.Color) bool {
	if err := b.PlayMove(p, c); err != nil {
		return false
	}
	b.UndoLastMove()
	return true
}

// IsEye reports whether p is a self-eye for c: every orthogonal
// neighbor is friendly or border, and the diagonals hold at most one
// enemy stone, or none at all when the point touches the border.
func (b *Board) IsEye(p point.Point, c point.Color) bool {
	if p == point.Pass {
		return false
	}
	for dir := 0; dir < 4; dir++ {
		n := b.cells[p+b.dirOffset[dir]]
		if n != point.Border && n != c {
			return false
		}
	}
	enemy := c.Opponent()
	enemies, borders := 0, 0
	for dir := 0; dir < 4; dir++ {
		switch b.cells[p+b.diagOffset[dir]] {
		case enemy:
			enemies++
		case point.Border:
			borders = 1
		}
	}
	return enemies+borders < 2
}

// SideToMove is the color whose turn it is: the opponent of the last
// move played, Black on an empty history.
func (b *Board) SideToMove() point.Color {
	if len(b.moves) == 0 {
		return point.Black
	}
	return b.moves[len(b.moves)-1].color.Opponent()
}

// EvaluateEndgame reports the winning color, or Empty while the game
// is undecided. The game ends when the side to move has no legal
// placement; that side loses.
func (b *Board) EvaluateEndgame() point.Color {
	stm := b.SideToMove()
	for _, p := range b.allPoints {
		if b.cells[p] == point.Empty && b.IsLegal(p, stm) {
			return point.Empty
		}
	}
	return stm.Opponent()
}

// Fingerprint is a hash of the full flat storage, for cheap
// position-identity checks in tests and debugging. Unrelated to the
// zobrist code used as the cache key.
func (b *Board) Fingerprint() uint64 {
	for i, c := range b.cells {
		b.hashBuf[i] = byte(c)
	}
	return xxhash.Sum64(b.hashBuf)
}

// hasLiberty reports whether the chain containing the occupied point
// target has at least one empty neighbor. It marks chain cells with
// cellInChain while walking and always clears the marks before
// returning.
func (b *Board) hasLiberty(target point.Point) bool {
	chainColor := b.cells[target]
	count := 0
	b.chainPoints[count] = target
	count++
	b.cells[target] |= cellInChain

	found := false
walk:
	for visited := 0; visited < count; visited++ {
		p := b.chainPoints[visited]
		for dir := 0; dir < 4; dir++ {
			n := p + b.dirOffset[dir]
			switch b.cells[n] {
			case point.Empty:
				found = true
				break walk
			case chainColor:
				b.chainPoints[count] = n
				b.cells[n] |= cellInChain
				count++
			}
		}
	}
	for i := 0; i < count; i++ {
		b.cells[b.chainPoints[i]] ^= cellInChain
	}
	return found
}

// String renders the position with the highest row on top, '.' for
// empty, '@' for black and 'O' for white.
func (b *Board) String() string {
	var out strings.Builder
	for row := b.size; row >= 1; row-- {
		start := b.RowStart(row)
		for col := 0; col < b.size; col++ {
			switch b.cells[start+col] {
			case point.Black:
				out.WriteByte('@')
			case point.White:
				out.WriteByte('O')
			default:
				out.WriteByte('.')
			}
		}
		if row > 1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
