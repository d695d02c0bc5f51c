// Package point defines the cell states, the flat point encoding, and
// the human-readable coordinate formatting shared by the board and the
// search driver.
package point

import "fmt"

// Color is the state of one cell on the board. Border marks the
// sentinel ring surrounding the playable area so that neighbor lookups
// never need bounds checks.
type Color byte

const (
	Empty  Color = 0
	Black  Color = 1
	White  Color = 2
	Border Color = 3
)

func (c Color) String() string {
	switch c {
	case Empty:
		return "empty"
	case Black:
		return "black"
	case White:
		return "white"
	case Border:
		return "border"
	}
	return fmt.Sprintf("color(%d)", byte(c))
}

// Opponent returns the other playing color. Undefined for anything
// other than Black or White.
func (c Color) Opponent() Color {
	return Black + White - c
}

// A Point is an index into the board's flat cell array. A move is
// either a Point or Pass.
type Point int

// Pass is the pass move. It is negative so it can never collide with a
// real array index.
const Pass Point = -1

// MaxBoardSize is the largest board the coordinate printing supports;
// the column alphabet below runs out past that. Board construction
// guards this at the boundary.
const MaxBoardSize = 25

// columnLetters skips the letter I, following Go convention.
const columnLetters = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

// CoordToPoint maps a 1-indexed (row, col) coordinate to the flat array
// index (boardsize+1)*row + col. Each row reserves one extra column of
// index space as a border gap, so adjacent rows never alias.
//
// The empty 3x3 board under this scheme:
//
//	3  3  3  3  3
//	3  0  0  0
//	3  0  0  0
//	3  0  0  0
//	3  3  3  3
//
// stored as [3,3,3,3, 3,0,0,0, 3,0,0,0, 3,0,0,0, 3,3,3,3,3].
func CoordToPoint(row, col, boardsize int) (Point, error) {
	if row < 1 || row > boardsize {
		return 0, fmt.Errorf("row %d out of range [1, %d]", row, boardsize)
	}
	if col < 1 || col > boardsize {
		return 0, fmt.Errorf("col %d out of range [1, %d]", col, boardsize)
	}
	return Point((boardsize+1)*row + col), nil
}

// PointToCoord is the inverse of CoordToPoint. It must not be called
// with Pass; FormatPoint handles the pass move before converting.
func PointToCoord(p Point, boardsize int) (row, col int) {
	ns := boardsize + 1
	return int(p) / ns, int(p) % ns
}

// FormatPoint renders a move as a string such as "A1", or "pass".
func FormatPoint(p Point, boardsize int) (string, error) {
	if p == Pass {
		return "pass", nil
	}
	row, col := PointToCoord(p, boardsize)
	if row < 0 || row >= MaxBoardSize || col < 1 || col >= MaxBoardSize {
		return "", fmt.Errorf("point %d: coordinate (%d, %d) not printable", p, row, col)
	}
	return fmt.Sprintf("%c%d", columnLetters[col-1], row), nil
}
