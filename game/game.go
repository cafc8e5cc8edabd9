package game

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// moveRecord is enough to undo a move exactly.
type moveRecord struct {
	col   int
	row   int
	color Color
}

// Game is the authoritative Connect-Four state: board, side to move, move
// history and the outcome once the game has ended.
//
// A Game is not safe for concurrent use. Clone it to hand a position to
// another goroutine.
type Game struct {
	board   *Board
	turn    Color
	history []moveRecord
	outcome *Outcome // nil while in progress
}

// New returns a game on an empty width x height board with Red to move.
// It panics on non-positive dimensions.
func New(width, height int) *Game {
	return &Game{
		board: NewBoard(width, height),
		turn:  Red,
	}
}

// NewStandard returns a game on the canonical 7x6 board.
func NewStandard() *Game {
	return New(StandardWidth, StandardHeight)
}

func (g *Game) Width() int {
	return g.board.Width()
}

func (g *Game) Height() int {
	return g.board.Height()
}

// Board returns a read-only view of the board.
func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Turn() Color {
	return g.turn
}

func (g *Game) IsOver() bool {
	return g.outcome != nil
}

// Outcome returns the result of a finished game, or false while it is in progress.
func (g *Game) Outcome() (Outcome, bool) {
	if g.outcome == nil {
		return Outcome{}, false
	}
	return *g.outcome, true
}

// Plies is the number of moves played so far.
func (g *Game) Plies() int {
	return len(g.history)
}

// History returns the moves played so far, oldest first.
func (g *Game) History() []Move {
	moves := make([]Move, len(g.history))
	for i, rec := range g.history {
		moves[i] = Move{Col: rec.col, Row: rec.row}
	}
	return moves
}

// LegalMoves returns one move per non-full column in ascending column order.
// A finished game has no legal moves.
func (g *Game) LegalMoves() []Move {
	if g.IsOver() {
		return nil
	}
	moves := make([]Move, 0, g.board.Width())
	for col := 0; col < g.board.Width(); col++ {
		if !g.board.IsColumnFull(col) {
			moves = append(moves, Move{Col: col, Row: g.board.ColumnHeight(col)})
		}
	}
	return moves
}

func (g *Game) IsLegalMove(m Move) bool {
	return !g.IsOver() && m.IsLegal(g.board)
}

// MakeMove plays m for the side to move. It returns false and leaves the game
// untouched if m is illegal or the game is over.
func (g *Game) MakeMove(m Move) bool {
	if !g.IsLegalMove(m) {
		return false
	}

	mover := g.turn
	row := g.board.place(m.Col, mover)
	g.history = append(g.history, moveRecord{col: m.Col, row: row, color: mover})

	// Only lines through the new stone can have changed.
	if g.board.connects(m.Col, row) {
		o := Win(mover)
		g.outcome = &o
	} else if g.board.IsFull() {
		o := Draw()
		g.outcome = &o
	}

	g.turn = mover.Opposite()
	return true
}

// UnmakeMove takes back the last move. It returns false if no move has been played.
func (g *Game) UnmakeMove() bool {
	n := len(g.history)
	if n == 0 {
		return false
	}
	last := g.history[n-1]
	g.history = g.history[:n-1]

	g.board.removeTop(last.col)
	g.turn = last.color
	// The predecessor of any reachable position is in progress.
	g.outcome = nil
	return true
}

// Clone returns a deep copy sharing no state with g.
func (g *Game) Clone() *Game {
	history := make([]moveRecord, len(g.history), cap(g.history))
	copy(history, g.history)

	var outcome *Outcome
	if g.outcome != nil {
		o := *g.outcome
		outcome = &o
	}

	return &Game{
		board:   g.board.Clone(),
		turn:    g.turn,
		history: history,
		outcome: outcome,
	}
}

// ActionSize is the number of policy indices, one per column.
func (g *Game) ActionSize() int {
	return g.board.Width()
}

// LegalActions returns the policy indices of LegalMoves.
func (g *Game) LegalActions() []int {
	moves := g.LegalMoves()
	actions := make([]int, len(moves))
	for i, m := range moves {
		actions[i] = m.Action()
	}
	return actions
}

// ApplyAction plays the move of a policy index. It returns false for
// out-of-range, full or otherwise illegal actions.
func (g *Game) ApplyAction(action int) bool {
	m, ok := DecodeAction(action, g)
	if !ok {
		return false
	}
	return g.MakeMove(m)
}

// Reward scores the game from perspective, 0 while it is in progress.
func (g *Game) Reward(perspective Color) float32 {
	if g.outcome == nil {
		return 0
	}
	return g.outcome.Reward(perspective)
}

// BoardShape returns (height, width), the spatial shape of EncodePlanes.
func (g *Game) BoardShape() (int, int) {
	return g.board.Height(), g.board.Width()
}

func (g *Game) Name() string {
	return fmt.Sprintf("connect4_%dx%d", g.board.Width(), g.board.Height())
}

// Hash identifies the position: dimensions, stones and side to move. Move
// order does not contribute.
func (g *Game) Hash() StateHash {
	hasher := xxhash.New()
	binary.Write(hasher, binary.LittleEndian, int64(g.board.Width()))
	binary.Write(hasher, binary.LittleEndian, int64(g.board.Height()))
	binary.Write(hasher, binary.LittleEndian, int8(g.turn))
	cells := make([]byte, len(g.board.cells))
	for i, c := range g.board.cells {
		cells[i] = byte(c)
	}
	hasher.Write(cells)
	return StateHash(hasher.Sum64())
}

func (g *Game) String() string {
	status := "in progress"
	if g.outcome != nil {
		status = g.outcome.Name()
	}
	return fmt.Sprintf("Game(turn: %s, plies: %d, %s)\n%s", g.turn, len(g.history), status, g.board)
}
