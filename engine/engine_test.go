package engine

import (
	"connect4/game"
	"connect4/meta"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// columns plays the given columns in order, then the first legal move.
func columns(cols ...int) Agent {
	next := 0
	return AgentFunc(func(g *game.Game) game.Move {
		if next < len(cols) {
			col := cols[next]
			next++
			return game.NewMove(col, g.Board().ColumnHeight(col))
		}
		return g.LegalMoves()[0]
	})
}

func randomAgent(seed uint64) Agent {
	rng := rand.New(rand.NewSource(seed))
	return AgentFunc(func(g *game.Game) game.Move {
		moves := g.LegalMoves()
		return moves[rng.Intn(len(moves))]
	})
}

func TestNew(t *testing.T) {
	t.Run("panics without both agents", func(t *testing.T) {
		require.Panics(t, func() {
			New([2]Agent{columns(), nil})
		}, "Should panic when an agent is missing")
	})

	t.Run("defaults", func(t *testing.T) {
		e := New([2]Agent{columns(), columns()})

		require.Equal(t, meta.WIDTH, e.width)
		require.Equal(t, meta.HEIGHT, e.height)
		require.Equal(t, MaxMoves, e.maxMoves)
		require.Equal(t, meta.GO_ROUTINES, e.goroutines)
	})

	t.Run("options ignore non-positive values", func(t *testing.T) {
		e := New([2]Agent{columns(), columns()}, WithDimensions(0, 4), WithMaxMoves(-1), WithGoroutines(0))

		require.Equal(t, meta.WIDTH, e.width)
		require.Equal(t, MaxMoves, e.maxMoves)
		require.Equal(t, meta.GO_ROUTINES, e.goroutines)
	})
}

func TestRun(t *testing.T) {
	t.Run("plays to a win", func(t *testing.T) {
		e := New([2]Agent{columns(0, 0, 0, 0), columns(1, 1, 1)})

		result := e.Run()

		require.True(t, result.Game.IsOver())
		require.Equal(t, "Red", result.GameMetric.Winner)
		require.Equal(t, "Red wins", result.GameMetric.Result)
		require.Equal(t, 7, result.GameMetric.TotalMoves)
		require.Equal(t, game.Red, result.GameMetric.StartingPlayer)
		require.False(t, result.GameMetric.Truncated)
		require.Len(t, result.MoveMetrics, 7)
		require.Equal(t, game.Yellow, result.MoveMetrics[1].Player)
		require.Equal(t, game.NewMove(0, 3), result.MoveMetrics[6].Move)
	})

	t.Run("replaces illegal moves", func(t *testing.T) {
		cheater := AgentFunc(func(g *game.Game) game.Move {
			return game.NewMove(99, 0)
		})
		e := New([2]Agent{cheater, columns()}, WithDimensions(4, 4))

		result := e.Run()

		require.True(t, result.Game.IsOver())
		require.Equal(t, result.GameMetric.Fallbacks, countFallbacks(result.MoveMetrics))
		require.True(t, result.MoveMetrics[0].Fallback)
		require.False(t, result.MoveMetrics[1].Fallback, "Legal moves should be kept")
	})

	t.Run("agents cannot corrupt the game", func(t *testing.T) {
		vandal := AgentFunc(func(g *game.Game) game.Move {
			moves := g.LegalMoves()
			g.MakeMove(moves[0])
			g.MakeMove(moves[1])
			return moves[0]
		})
		e := New([2]Agent{vandal, vandal}, WithMaxMoves(3))

		result := e.Run()

		require.Equal(t, 3, result.Game.Plies(), "Only the returned moves should be played")
	})

	t.Run("stops at the move cap", func(t *testing.T) {
		e := New([2]Agent{randomAgent(1), randomAgent(2)}, WithMaxMoves(5))

		result := e.Run()

		require.Equal(t, 5, result.Game.Plies())
		require.True(t, result.GameMetric.Truncated)
		require.Empty(t, result.GameMetric.Winner)
		require.Empty(t, result.GameMetric.Result)
	})

	t.Run("starts from a position", func(t *testing.T) {
		start := game.NewStandard()
		start.MakeMove(game.NewMove(3, 0))
		e := New([2]Agent{columns(), columns()}, WithPosition(start), WithMaxMoves(1))

		result := e.Run()

		require.Equal(t, game.Yellow, result.GameMetric.StartingPlayer)
		require.Equal(t, 2, result.Game.Plies())
		require.Equal(t, 1, start.Plies(), "The starting position should not be modified")
	})
}

func countFallbacks(metrics []MoveMetric) int {
	n := 0
	for _, m := range metrics {
		if m.Fallback {
			n++
		}
	}
	return n
}

func TestRunMatches(t *testing.T) {
	t.Run("independent games", func(t *testing.T) {
		const n = 32
		results := RunMatches(n, func(i int) [2]Agent {
			return [2]Agent{randomAgent(uint64(2 * i)), randomAgent(uint64(2*i + 1))}
		}, WithGoroutines(4), WithDimensions(5, 4))

		require.Len(t, results, n)
		for _, r := range results {
			require.NotNil(t, r.Game)
			require.True(t, r.Game.IsOver())
			require.Equal(t, r.Game.Plies(), r.Game.Board().Stones())
			require.Equal(t, 5, r.Game.Width())
		}

		s := Tally(results)
		require.Equal(t, n, s.Games())
		require.Zero(t, s.Truncated)
	})

	t.Run("same seeds replay the same games", func(t *testing.T) {
		newAgents := func(i int) [2]Agent {
			return [2]Agent{randomAgent(uint64(i)), randomAgent(uint64(i + 100))}
		}
		first := RunMatches(8, newAgents, WithGoroutines(3))
		second := RunMatches(8, newAgents, WithGoroutines(1))

		for i := range first {
			require.Equal(t, first[i].Game.History(), second[i].Game.History(),
				"Game %d should not depend on scheduling", i)
		}
	})

	t.Run("no games", func(t *testing.T) {
		require.Empty(t, RunMatches(0, nil))
	})
}

func TestRunConfig(t *testing.T) {
	t.Run("applies the config", func(t *testing.T) {
		cfg := meta.Default()
		cfg.Games = 4
		cfg.Goroutines = 2
		cfg.Width, cfg.Height = 4, 4

		results, err := RunConfig(cfg, func(i int) [2]Agent {
			return [2]Agent{randomAgent(uint64(i)), randomAgent(uint64(i) + 1)}
		})

		require.NoError(t, err)
		require.Len(t, results, 4)
		require.Equal(t, 4, results[0].Game.Height())
	})

	t.Run("rejects an invalid config", func(t *testing.T) {
		cfg := meta.Default()
		cfg.Goroutines = 0

		_, err := RunConfig(cfg, nil)
		require.Error(t, err)
	})
}

func TestTally(t *testing.T) {
	red := New([2]Agent{columns(0, 0, 0, 0), columns(1, 1, 1)}).Run()
	yellow := New([2]Agent{columns(0, 2, 0, 2, 0, 2, 6), columns(1, 1, 1, 1)}).Run()
	unfinished := New([2]Agent{columns(), columns()}, WithMaxMoves(2)).Run()

	s := Tally([]Result{red, yellow, unfinished})

	require.Equal(t, Score{RedWins: 1, YellowWins: 1, Truncated: 1}, s)
	require.Equal(t, 3, s.Games())
}
