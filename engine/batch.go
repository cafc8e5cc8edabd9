package engine

import (
	"connect4/meta"
	"sync"

	"github.com/rs/zerolog/log"
)

// RunMatches plays n independent games on a pool of goroutines. newAgents is
// called once per game, from the worker that plays it, so agents never share
// a game. Results are returned in game order.
func RunMatches(n int, newAgents func(i int) [2]Agent, options ...Option) []Result {
	// Resolve the worker count once; each game builds its own engine.
	probe := &Engine{goroutines: meta.GO_ROUTINES}
	for _, option := range options {
		option(probe)
	}

	results := make([]Result, n)
	task := make(chan int, n)
	for i := 0; i < n; i++ {
		task <- i
	}
	close(task)

	log.Info().Msgf("running %d games on %d goroutines...", n, probe.goroutines)

	var wg sync.WaitGroup
	for i := 0; i < probe.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range task {
				results[idx] = New(newAgents(idx), options...).Run()
			}
		}()
	}
	wg.Wait()

	s := Tally(results)
	log.Info().Msgf("finished %d games: red %d, yellow %d, draws %d, truncated %d",
		s.Games(), s.RedWins, s.YellowWins, s.Draws, s.Truncated)
	return results
}

// RunConfig plays cfg.Games games with the settings of cfg.
func RunConfig(cfg meta.Config, newAgents func(i int) [2]Agent) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return RunMatches(cfg.Games, newAgents, WithConfig(cfg)), nil
}
