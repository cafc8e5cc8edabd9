package game

// Canonical Connect-Four dimensions.
const (
	StandardWidth  = 7
	StandardHeight = 6
)

// ConnectLength is the run of same-colored stones that wins the game.
const ConnectLength = 4

type StateHash uint64

// Color identifies the owner of a stone and the player to move.
type Color int8

const (
	none Color = iota // empty cell
	Red
	Yellow
)

// Opposite returns the other player. Red always moves first.
func (c Color) Opposite() Color {
	switch c {
	case Red:
		return Yellow
	case Yellow:
		return Red
	}
	return none
}

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	}
	return "None"
}

// Char is the single-character symbol used by Board.String.
func (c Color) Char() byte {
	switch c {
	case Red:
		return 'R'
	case Yellow:
		return 'Y'
	}
	return '.'
}
