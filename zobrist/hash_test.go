package zobrist

import (
	"testing"

	"github.com/matryer/is"

	"github.com/mindergo/tsumego/point"
)

func TestInitializeTableShape(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(3)
	is.Equal(z.BoardDim(), 3)
	is.Equal(len(z.posTable), 9)
	for _, entries := range z.posTable {
		is.Equal(len(entries), numSides)
		for _, v := range entries {
			// A zero entry would make a cell invisible to the hash.
			is.True(v != 0)
		}
	}
}

func TestHashEmptySnapshot(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(3)
	is.Equal(z.Hash(make([]point.Color, 9)), uint32(0))
}

func TestHashOrderIndependent(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(3)

	a := make([]point.Color, 9)
	a[0] = point.Black
	a[8] = point.White

	// Same placement assembled in the other order.
	b := make([]point.Color, 9)
	b[8] = point.White
	b[0] = point.Black

	is.Equal(z.Hash(a), z.Hash(b))
}

func TestHashDiscriminates(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(3)

	a := make([]point.Color, 9)
	a[4] = point.Black

	b := make([]point.Color, 9)
	b[4] = point.White

	c := make([]point.Color, 9)
	c[3] = point.Black

	// Not guaranteed, but a collision here is overwhelmingly unlikely.
	is.True(z.Hash(a) != z.Hash(b))
	is.True(z.Hash(a) != z.Hash(c))
	is.True(z.Hash(a) != 0)
}

func TestHashIsIncremental(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize(3)

	a := make([]point.Color, 9)
	h0 := z.Hash(a)
	a[2] = point.Black
	h1 := z.Hash(a)
	a[2] = point.Empty
	is.Equal(z.Hash(a), h0)
	// XOR of the same cell twice cancels.
	is.Equal(h1^z.posTable[2][0], h0)
}
