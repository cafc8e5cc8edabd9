package engine

import (
	"connect4/game"
	"connect4/meta"
)

const MaxMoves = meta.MAX_MOVES

// Agent chooses moves. It receives a clone of the live game, so it may make
// and unmake moves freely while searching.
type Agent interface {
	FindMove(g *game.Game) game.Move
}

// AgentFunc adapts a function to the Agent interface.
type AgentFunc func(g *game.Game) game.Move

func (f AgentFunc) FindMove(g *game.Game) game.Move {
	return f(g)
}

// Result is a finished (or truncated) game with its metrics.
type Result struct {
	Game        *game.Game
	GameMetric  GameMetric
	MoveMetrics []MoveMetric
}

type Option func(e *Engine)

// WithDimensions sets the board size of new games.
func WithDimensions(width, height int) Option {
	return func(e *Engine) {
		if width > 0 && height > 0 {
			e.width = width
			e.height = height
		}
	}
}

// WithMaxMoves caps the number of plies before a game is abandoned.
func WithMaxMoves(maxMoves int) Option {
	return func(e *Engine) {
		if maxMoves > 0 {
			e.maxMoves = maxMoves
		}
	}
}

// WithGoroutines sets the worker count of RunMatches.
func WithGoroutines(goroutines int) Option {
	return func(e *Engine) {
		if goroutines > 0 {
			e.goroutines = goroutines
		}
	}
}

// WithPosition starts games from a copy of g instead of an empty board.
func WithPosition(g *game.Game) Option {
	return func(e *Engine) {
		if g != nil {
			e.start = g
		}
	}
}

// WithConfig applies the board size, move cap and worker count of cfg.
func WithConfig(cfg meta.Config) Option {
	return func(e *Engine) {
		WithDimensions(cfg.Width, cfg.Height)(e)
		WithMaxMoves(cfg.MaxMoves)(e)
		WithGoroutines(cfg.Goroutines)(e)
	}
}
