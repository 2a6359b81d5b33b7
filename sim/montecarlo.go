/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package sim

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RunOptions configures one Monte Carlo run.
type RunOptions struct {
	// Trials is the number of independent tournament simulations; must be
	// >= 1.
	Trials int

	// Seed anchors the run. Trial t draws from a source seeded Seed+t, so
	// results are bit-identical for a given seed regardless of Workers or
	// scheduling.
	Seed int64

	// ScalingFactor for the frame probability model; 0 selects
	// DefaultScalingFactor.
	ScalingFactor float64

	// Workers is the number of concurrent simulation goroutines; 0 selects
	// GOMAXPROCS.
	Workers int
}

// AggregateResult holds per-player per-round advancement counts reduced
// over all trials. Count(player, r) is the number of trials in which the
// player won their round r match; the final round's counts across all
// players always sum to exactly Trials.
type AggregateResult struct {
	Players       []string
	NumRounds     int
	Trials        int
	RangeWarnings int

	counts map[string][]int
}

// Count returns the number of trials in which player won their match in the
// given round (1-based).
func (res *AggregateResult) Count(player string, round int) int {
	c, ok := res.counts[player]
	if !ok || round < 1 || round > res.NumRounds {
		return 0
	}
	return c[round-1]
}

// Probability returns the estimated probability that player advances
// through the given round.
func (res *AggregateResult) Probability(player string, round int) float64 {
	return float64(res.Count(player, round)) / float64(res.Trials)
}

// Odds returns the decimal odds (reciprocal probability) of player
// advancing through the given round, +Inf when the estimate is zero.
func (res *AggregateResult) Odds(player string, round int) float64 {
	p := res.Probability(player, round)
	if p == 0 {
		return math.Inf(1)
	}
	return 1.0 / p
}

// Run executes Simulate opts.Trials times and folds the outcomes into an
// AggregateResult. Trials are dispatched across workers, each folding into
// trial-local counters; the locals are summed only after all workers join,
// so no locking happens on the hot path.
func Run(b *Bracket, ratings map[string]float64, fixture []Fixture,
	opts RunOptions) (*AggregateResult, error) {

	if opts.Trials < 1 {
		return nil, &ConfigError{
			Field:  "trials",
			Reason: fmt.Sprintf("%v is less than 1", opts.Trials),
		}
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > opts.Trials {
		workers = opts.Trials
	}

	res := &AggregateResult{
		NumRounds: b.NumRounds(),
		Trials:    opts.Trials,
		counts:    make(map[string][]int, b.NumEntrants),
	}
	for _, f := range fixture {
		res.Players = append(res.Players, f.Player1, f.Player2)
	}

	type tally struct {
		counts   map[string][]int
		warnings int
	}
	locals := make([]tally, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		locals[w].counts = make(map[string][]int, b.NumEntrants)
		g.Go(func() error {
			local := &locals[w]
			for t := w; t < opts.Trials; t += workers {
				rng := rand.New(rand.NewSource(opts.Seed + int64(t)))
				outcome, err := Simulate(b, ratings, fixture, rng,
					opts.ScalingFactor)
				if err != nil {
					return err
				}
				local.warnings += outcome.RangeWarnings
				for name, won := range outcome.RoundsWon {
					c, ok := local.counts[name]
					if !ok {
						c = make([]int, b.NumRounds())
						local.counts[name] = c
					}
					for r := 0; r < won; r++ {
						c[r]++
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, local := range locals {
		res.RangeWarnings += local.warnings
		for name, c := range local.counts {
			total, ok := res.counts[name]
			if !ok {
				total = make([]int, b.NumRounds())
				res.counts[name] = total
			}
			for r := range c {
				total[r] += c[r]
			}
		}
	}

	if res.RangeWarnings > 0 {
		log.Printf("sim.run: frame win probability fell outside [0,1] in %v draws and was clamped; check the rating scale",
			res.RangeWarnings)
	}

	return res, nil
}
