package engine

import (
	"connect4/game"
	"time"
)

type MoveMetric struct {
	Step     int
	Player   game.Color
	Move     game.Move
	Duration time.Duration
	Fallback bool // The agent's move was illegal and replaced
}

type GameMetric struct {
	StartingPlayer game.Color
	Winner         string // Color name, "" for a draw or an unfinished game
	Result         string // Outcome name, "" for an unfinished game
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Fallbacks      int
	Truncated      bool // Stopped at the move cap
}

func (m *GameMetric) complete(g *game.Game) {
	m.EndTime = time.Now()
	m.Duration = m.EndTime.Sub(m.StartTime)
	m.TotalMoves = g.Plies()

	o, ok := g.Outcome()
	if !ok {
		m.Truncated = true
		return
	}
	m.Result = o.Name()
	if winner, ok := o.Winner(); ok {
		m.Winner = winner.String()
	}
}

// Score tallies the results of a batch of games.
type Score struct {
	RedWins    int
	YellowWins int
	Draws      int
	Truncated  int
}

func Tally(results []Result) Score {
	var s Score
	for _, r := range results {
		o, ok := r.Game.Outcome()
		if !ok {
			s.Truncated++
			continue
		}
		winner, ok := o.Winner()
		switch {
		case !ok:
			s.Draws++
		case winner == game.Red:
			s.RedWins++
		default:
			s.YellowWins++
		}
	}
	return s
}

func (s Score) Games() int {
	return s.RedWins + s.YellowWins + s.Draws + s.Truncated
}
