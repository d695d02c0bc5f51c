package zobrist

import (
	"lukechampine.com/frand"

	"github.com/mindergo/tsumego/point"
)

// Keep table entries in [1, 2^32-1); a zero entry would make its cell
// invisible to the XOR.
const bignum = 1<<32 - 2

const numSides = 2

// Zobrist generates order-independent position hashes for a board of a
// fixed dimension. https://en.wikipedia.org/wiki/Zobrist_hashing
//
// The table is filled once in Initialize and never mutated; codes from
// two differently seeded tables are not comparable. Hashes are 32 bits
// wide on purpose: collisions over modest boards are an accepted
// speed/accuracy trade-off, not a correctness guarantee.
type Zobrist struct {
	posTable [][]uint32
	boardDim int
}

// Initialize allocates the (dim*dim) x 2 random table.
func (z *Zobrist) Initialize(boardDim int) {
	z.boardDim = boardDim
	z.posTable = make([][]uint32, boardDim*boardDim)
	for i := 0; i < boardDim*boardDim; i++ {
		z.posTable[i] = make([]uint32, numSides)
		for j := 0; j < numSides; j++ {
			z.posTable[i][j] = uint32(frand.Uint64n(bignum) + 1)
		}
	}
}

// BoardDim returns the dimension the table was built for.
func (z *Zobrist) BoardDim() int {
	return z.boardDim
}

// sideIndex maps the first player to 0 and the second to 1.
func sideIndex(c point.Color) int {
	if c == point.Black {
		return 0
	}
	return 1
}

// Hash computes the code for a dense row-major dim*dim snapshot of the
// board (border stripped): the XOR of the table entry for every
// occupied cell. Two positions with identical stone placement hash
// identically regardless of move history.
func (z *Zobrist) Hash(squares []point.Color) uint32 {
	var key uint32
	for i, c := range squares {
		if c == point.Empty {
			continue
		}
		key ^= z.posTable[i][sideIndex(c)]
	}
	return key
}
