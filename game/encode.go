package game

// Input plane layout, from the perspective of the side to move:
//
//	plane 2t   stones of the side to move, t plies ago (t = 0..HistoryLength-1)
//	plane 2t+1 stones of the opponent, t plies ago
//	plane 16   all 1 if Red is to move, all 0 otherwise
//
// History steps older than the game stay zero. Each plane is row-major with
// row 0 at the bottom of the board.
const (
	PiecePlanes    = 2
	HistoryLength  = 8
	ConstantPlanes = 1
	InputPlanes    = HistoryLength*PiecePlanes + ConstantPlanes
)

// Planes is a flat float32 tensor of shape [Count][Height][Width].
type Planes struct {
	Data   []float32
	Count  int
	Height int
	Width  int
}

// At reads the value of one cell of one plane.
func (p Planes) At(plane, row, col int) float32 {
	return p.Data[(plane*p.Height+row)*p.Width+col]
}

// EncodePlanes exports the position as InputPlanes planes. The result depends
// only on the game state, and g is left untouched: past positions are rebuilt
// on a scratch grid from the move history.
func (g *Game) EncodePlanes() Planes {
	width, height := g.board.Width(), g.board.Height()
	area := width * height
	p := Planes{
		Data:   make([]float32, InputPlanes*area),
		Count:  InputPlanes,
		Height: height,
		Width:  width,
	}

	perspective := g.turn
	scratch := make([]Color, len(g.board.cells))
	copy(scratch, g.board.cells)

	stepsBack := min(HistoryLength-1, len(g.history))
	for t := 0; t <= stepsBack; t++ {
		if t > 0 {
			rec := g.history[len(g.history)-t]
			scratch[rec.row*width+rec.col] = none
		}
		own := p.Data[2*t*area : (2*t+1)*area]
		opp := p.Data[(2*t+1)*area : (2*t+2)*area]
		for idx, c := range scratch {
			switch c {
			case perspective:
				own[idx] = 1
			case perspective.Opposite():
				opp[idx] = 1
			}
		}
	}

	if perspective == Red {
		color := p.Data[HistoryLength*PiecePlanes*area:]
		for i := range color {
			color[i] = 1
		}
	}
	return p
}
