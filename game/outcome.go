package game

type outcomeKind int8

const (
	win outcomeKind = iota + 1
	draw
)

// Outcome is the result of a finished game: Win(color) or Draw(). Outcomes
// are values and compare with ==.
type Outcome struct {
	kind   outcomeKind
	winner Color
}

func Win(c Color) Outcome {
	return Outcome{kind: win, winner: c}
}

func Draw() Outcome {
	return Outcome{kind: draw}
}

// Winner returns the winning color, or false for a draw.
func (o Outcome) Winner() (Color, bool) {
	if o.kind != win {
		return none, false
	}
	return o.winner, true
}

func (o Outcome) IsDraw() bool {
	return o.kind == draw
}

func (o Outcome) Name() string {
	if o.kind == win {
		return o.winner.String() + " wins"
	}
	return "Draw"
}

func (o Outcome) String() string {
	return o.Name()
}

// RewardAbsolute scores the outcome from Red's side: 1 Red win, -1 Yellow win, 0 draw.
func (o Outcome) RewardAbsolute() float32 {
	return o.Reward(Red)
}

// Reward scores the outcome from perspective: 1 win, -1 loss, 0 draw.
func (o Outcome) Reward(perspective Color) float32 {
	if o.kind != win {
		return 0
	}
	if o.winner == perspective {
		return 1
	}
	return -1
}
