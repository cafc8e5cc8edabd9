package engine

import (
	"connect4/game"
	"connect4/meta"
	"time"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	agents     [2]Agent // indexed by agentIndex
	width      int
	height     int
	maxMoves   int
	goroutines int
	start      *game.Game
}

func New(agents [2]Agent, options ...Option) *Engine {
	if agents[0] == nil || agents[1] == nil {
		panic("need an agent for both players")
	}

	e := &Engine{ // Default values
		agents:     agents,
		width:      meta.WIDTH,
		height:     meta.HEIGHT,
		maxMoves:   MaxMoves,
		goroutines: meta.GO_ROUTINES,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func agentIndex(c game.Color) int {
	if c == game.Red {
		return 0
	}
	return 1
}

func (e *Engine) newGame() *game.Game {
	if e.start != nil {
		return e.start.Clone()
	}
	return game.New(e.width, e.height)
}

// Run plays one game until it is over or the move cap is reached.
func (e *Engine) Run() Result {
	g := e.newGame()
	gameMetric := GameMetric{
		StartingPlayer: g.Turn(),
		StartTime:      time.Now(),
	}
	var moveMetrics []MoveMetric

	log.Debug().Msgf("%s: %s is starting", g.Name(), g.Turn())

	for step := 1; !g.IsOver() && step <= e.maxMoves; step++ {
		player := g.Turn()
		started := time.Now()

		move := e.agents[agentIndex(player)].FindMove(g.Clone())
		fallback := false
		if !g.IsLegalMove(move) {
			log.Warn().Msgf("%s returned illegal %v, playing the first legal move instead", player, move)
			move = g.LegalMoves()[0]
			fallback = true
			gameMetric.Fallbacks++
		}
		g.MakeMove(move)

		moveMetrics = append(moveMetrics, MoveMetric{
			Step:     step,
			Player:   player,
			Move:     move,
			Duration: time.Since(started),
			Fallback: fallback,
		})
	}

	gameMetric.complete(g)
	if gameMetric.Truncated {
		log.Info().Msgf("%s: stopped after %d moves (no result yet)", g.Name(), gameMetric.TotalMoves)
	} else {
		log.Debug().Msgf("%s: game over after %d moves: %s", g.Name(), gameMetric.TotalMoves, gameMetric.Result)
	}

	return Result{
		Game:        g,
		GameMetric:  gameMetric,
		MoveMetrics: moveMetrics,
	}
}
