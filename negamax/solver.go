// Package negamax proves the outcome of a position by exhaustive
// negamax search with alpha-beta pruning, caching position values in a
// transposition table keyed by zobrist codes.
package negamax

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mindergo/tsumego/board"
	"github.com/mindergo/tsumego/movegen"
	"github.com/mindergo/tsumego/point"
)

// thanks Wikipedia:
/*
function negamax(node, depth, α, β, color) is
    if depth = 0 or node is a terminal node then
        return color × the heuristic value of node

    childNodes := generateMoves(node)
    value := −∞
    foreach child in childNodes do
        value := max(value, −negamax(child, depth − 1, −β, −α, −color))
        α := max(α, value)
        if α ≥ β then
            break (* cut-off *)
    return value
(* Initial call for Player A's root node *)
negamax(rootNode, depth, −∞, +∞, 1)
**/

// HugeNumber is the infinity stand-in for the alpha-beta window.
// Proven outcomes are +1 and -1; anything the search returns above
// zero proves a win for the side to move, so callers test the sign,
// never the magnitude.
const HugeNumber = int16(32767)

// Solver owns one search session over a single board. The board is
// mutated during the search, one move applied and undone at a time in
// strict stack discipline, and is restored to its initial position
// before any Solve or Simulate call returns. Never interleave searches
// over the same board from more than one caller.
type Solver struct {
	game   *board.Board
	ttable *TranspositionTable
	nodes  uint64
}

// Init prepares the solver for searches over b, creating a fresh
// transposition table sized to the board.
func (s *Solver) Init(b *board.Board) error {
	if b == nil {
		return errors.New("negamax: nil board")
	}
	s.game = b
	s.ttable = &TranspositionTable{}
	s.ttable.Reset(b.Size())
	return nil
}

// SetTranspositionTable replaces the solver's table, for sharing one
// table across solvers over equal-sized boards.
func (s *Solver) SetTranspositionTable(tt *TranspositionTable) {
	s.ttable = tt
}

// TranspositionTable returns the table in use.
func (s *Solver) TranspositionTable() *TranspositionTable {
	return s.ttable
}

// Solve runs an exhaustive search from the current position and
// reports the value for color over the full alpha-beta window. A
// positive result proves color wins with perfect play; a non-positive
// result proves color cannot force a win.
func (s *Solver) Solve(ctx context.Context, color point.Color) (int16, error) {
	if s.game == nil {
		return 0, errors.New("negamax: solver not initialized")
	}
	log.Debug().Stringer("color", color).Int("board-size", s.game.Size()).
		Msg("alphabeta-solve-config")
	tstart := time.Now()
	s.nodes = 0
	s.ttable.Reset(s.game.Size())

	val, err := s.Simulate(ctx, color, -HugeNumber, HugeNumber)

	log.Info().
		Uint64("nodes", s.nodes).
		Uint64("ttable-created", s.ttable.created).
		Uint64("ttable-lookups", s.ttable.lookups).
		Uint64("ttable-hits", s.ttable.hits).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("solve-returning")
	return val, err
}

// Simulate is the negamax alpha-beta recursion: the value of the
// current position for color, searched inside the (α, β) window.
//
// Three conditions terminate a node without expansion: a cache hit, a
// decided position reported by the board, and a beta cutoff inside the
// move loop. A node with no legal moves that the board does not report
// as decided falls through to the trivial α fallback, whose value is
// only as meaningful as whatever α started at.
func (s *Solver) Simulate(ctx context.Context, color point.Color, α, β int16) (int16, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	code := s.ttable.CodeFor(s.game)
	if score, ok := s.ttable.Lookup(code); ok {
		return score, nil
	}

	if winner := s.game.EvaluateEndgame(); winner != point.Empty {
		score := int16(-1)
		if winner == color {
			score = 1
		}
		return s.ttable.Store(code, score), nil
	}

	opponent := color.Opponent()
	for _, m := range movegen.GenerateLegalMoves(s.game, color) {
		if err := s.game.PlayMove(m, color); err != nil {
			return 0, err
		}
		s.nodes++
		childValue, err := s.Simulate(ctx, opponent, -β, -α)
		if err != nil {
			s.game.UndoLastMove()
			return 0, err
		}
		// Cache the child under its own recomputed code, from the
		// child's side-to-move perspective, while the move is still on
		// the board.
		s.ttable.Store(s.ttable.CodeFor(s.game), childValue)
		s.game.UndoLastMove()

		value := -childValue
		if value > α && value > 0 {
			α = value
		}
		if value >= β {
			return β, nil // beta cut-off
		}
	}
	return α, nil
}
