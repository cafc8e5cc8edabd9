package game

import "fmt"

// Move is a candidate placement. It carries no validity guarantee; check it
// against a position with IsLegal or Game.IsLegalMove.
type Move struct {
	Col int
	Row int
}

func NewMove(col, row int) Move {
	return Move{Col: col, Row: row}
}

// IsLegal reports whether m is the gravity slot of an in-range, non-full column.
func (m Move) IsLegal(b *Board) bool {
	if m.Col < 0 || m.Col >= b.Width() {
		return false
	}
	return !b.IsColumnFull(m.Col) && m.Row == b.ColumnHeight(m.Col)
}

// Encode maps m to row*width + col for the dimensions of b. It panics if m
// lies outside the board.
func (m Move) Encode(b *Board) int {
	if !b.inBounds(m.Col, m.Row) {
		panic(fmt.Sprintf("cannot encode %v on a %dx%d board", m, b.Width(), b.Height()))
	}
	return b.index(m.Col, m.Row)
}

// DecodeMove recovers the column from code and pairs it with the row a stone
// dropped there would occupy in g right now. Only the column survives a round
// trip: decoding the same code against another position can yield another row.
//
// It returns false when the column is full and panics when code was not
// produced for g's dimensions.
func DecodeMove(code int, g *Game) (Move, bool) {
	b := g.Board()
	if code < 0 || code >= b.Width()*b.Height() {
		panic(fmt.Sprintf("move code %d out of range for a %dx%d board", code, b.Width(), b.Height()))
	}
	col := code % b.Width()
	if b.IsColumnFull(col) {
		return Move{}, false
	}
	return Move{Col: col, Row: b.ColumnHeight(col)}, true
}

// Action is the policy index of m, its column.
func (m Move) Action() int {
	return m.Col
}

// DecodeAction turns a policy index into the move it plays in g. It returns
// false for out-of-range or full columns.
func DecodeAction(action int, g *Game) (Move, bool) {
	b := g.Board()
	if action < 0 || action >= b.Width() || b.IsColumnFull(action) {
		return Move{}, false
	}
	return Move{Col: action, Row: b.ColumnHeight(action)}, true
}

func (m Move) String() string {
	return fmt.Sprintf("Move(col: %d, row: %d)", m.Col, m.Row)
}
