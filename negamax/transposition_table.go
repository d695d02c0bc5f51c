package negamax

import (
	"github.com/rs/zerolog/log"

	"github.com/mindergo/tsumego/board"
	"github.com/mindergo/tsumego/point"
	"github.com/mindergo/tsumego/zobrist"
)

// TranspositionTable maps zobrist codes to previously computed search
// values. It is map-backed and unbounded: entries are only ever added
// or overwritten for the lifetime of a search session, never evicted.
// It owns the zobrist hasher that produces its keys, so codes from
// different tables are never mixed. Single-threaded use only; there is
// no locking.
type TranspositionTable struct {
	table   map[uint32]int16
	created uint64
	lookups uint64
	hits    uint64

	zobrist  *zobrist.Zobrist
	snapshot []point.Color // dense grid scratch for CodeFor
}

// Reset empties the table and zeroes the counters. The owned zobrist
// table is built on first use and kept across resets as long as the
// board dimension is unchanged, so codes stay comparable between
// searches over the same board.
func (t *TranspositionTable) Reset(boardDim int) {
	t.table = make(map[uint32]int16)
	if t.zobrist == nil || t.zobrist.BoardDim() != boardDim {
		log.Info().Int("board-dim", boardDim).Msg("creating zobrist hash")
		t.zobrist = &zobrist.Zobrist{}
		t.zobrist.Initialize(boardDim)
		t.snapshot = make([]point.Color, boardDim*boardDim)
	}
	t.created = 0
	t.lookups = 0
	t.hits = 0
}

// Store inserts or overwrites the entry for code and returns the
// stored score, for call-site convenience.
func (t *TranspositionTable) Store(code uint32, score int16) int16 {
	t.table[code] = score
	t.created++
	return score
}

// Lookup returns the stored score for code. The second return value
// distinguishes a missing entry from a legitimately stored zero.
func (t *TranspositionTable) Lookup(code uint32) (int16, bool) {
	t.lookups++
	score, ok := t.table[code]
	if ok {
		t.hits++
	}
	return score, ok
}

// CodeFor hashes the board's current position: the border padding is
// stripped into a dense row-major snapshot and fed to the owned
// zobrist table. Identical stone placements produce identical codes
// independent of move history.
func (t *TranspositionTable) CodeFor(b *board.Board) uint32 {
	size := b.Size()
	squares := b.Squares()
	for row := 0; row < size; row++ {
		start := b.RowStart(row + 1)
		copy(t.snapshot[row*size:(row+1)*size], squares[start:start+size])
	}
	return t.zobrist.Hash(t.snapshot)
}

// Zobrist returns the owned hasher.
func (t *TranspositionTable) Zobrist() *zobrist.Zobrist {
	return t.zobrist
}

// SetZobrist replaces the owned hasher. Any existing entries were
// keyed by the old table, so Reset must follow.
func (t *TranspositionTable) SetZobrist(z *zobrist.Zobrist) {
	t.zobrist = z
	t.snapshot = make([]point.Color, z.BoardDim()*z.BoardDim())
}
