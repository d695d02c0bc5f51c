package negamax

import (
	"testing"

	"github.com/matryer/is"

	"github.com/mindergo/tsumego/board"
	"github.com/mindergo/tsumego/point"
)

func TestTableRoundTrip(t *testing.T) {
	is := is.New(t)
	tt := &TranspositionTable{}
	tt.Reset(3)

	is.Equal(tt.Store(0xdeadbeef, -1), int16(-1))
	score, ok := tt.Lookup(0xdeadbeef)
	is.True(ok)
	is.Equal(score, int16(-1))

	// Overwrite is allowed.
	tt.Store(0xdeadbeef, 1)
	score, ok = tt.Lookup(0xdeadbeef)
	is.True(ok)
	is.Equal(score, int16(1))

	_, ok = tt.Lookup(0xcafe)
	is.True(!ok)

	is.Equal(tt.created, uint64(2))
	is.Equal(tt.lookups, uint64(3))
	is.Equal(tt.hits, uint64(2))
}

func TestTableStoredZeroIsAHit(t *testing.T) {
	is := is.New(t)
	tt := &TranspositionTable{}
	tt.Reset(3)

	tt.Store(42, 0)
	score, ok := tt.Lookup(42)
	is.True(ok) // a stored zero must not read as absent
	is.Equal(score, int16(0))
}

func TestResetKeepsZobristForSameDim(t *testing.T) {
	is := is.New(t)
	tt := &TranspositionTable{}
	tt.Reset(3)
	z := tt.Zobrist()

	b, err := board.NewBoard(3)
	is.NoErr(err)
	p, err := point.CoordToPoint(2, 2, 3)
	is.NoErr(err)
	is.NoErr(b.PlayMove(p, point.Black))
	code := tt.CodeFor(b)

	// Same dimension: codes stay comparable across resets.
	tt.Reset(3)
	is.Equal(tt.Zobrist(), z)
	is.Equal(tt.CodeFor(b), code)
	_, ok := tt.Lookup(code)
	is.True(!ok) // entries are gone, though

	// New dimension forces a new table.
	tt.Reset(5)
	is.True(tt.Zobrist() != z)
}

func TestCodeForIgnoresHistory(t *testing.T) {
	is := is.New(t)
	tt := &TranspositionTable{}
	tt.Reset(2)

	b, err := board.NewBoard(2)
	is.NoErr(err)
	p, err := point.CoordToPoint(1, 1, 2)
	is.NoErr(err)

	empty := tt.CodeFor(b)
	is.NoErr(b.PlayMove(p, point.Black))
	withStone := tt.CodeFor(b)
	is.True(empty != withStone)

	b.UndoLastMove()
	is.Equal(tt.CodeFor(b), empty)

	// Same stone, other color: different code.
	is.NoErr(b.PlayMove(p, point.White))
	is.True(tt.CodeFor(b) != withStone)
}
