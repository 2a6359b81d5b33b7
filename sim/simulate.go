/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package sim

import (
	"fmt"
	"math/rand"
)

// TrialOutcome records one simulated tournament. RoundsWon maps every
// entrant to the number of rounds they won, 0 for a round 1 loser up to
// NumRounds for the champion; exactly one entrant holds the maximum.
// RangeWarnings counts matches whose raw frame win probability fell
// outside [0,1] and was clamped before drawing.
type TrialOutcome struct {
	RoundsWon     map[string]int
	RangeWarnings int
}

// Simulate executes one randomized pass over the bracket: round by round it
// resolves each match's two players, converts their rating differential into
// a match win probability for the round's best-of length, draws one uniform
// value from rng, and propagates the winner. The bracket and ratings are
// never mutated; rng is the only state carried between calls.
//
// A scalingFactor of 0 selects DefaultScalingFactor.
func Simulate(b *Bracket, ratings map[string]float64, fixture []Fixture,
	rng *rand.Rand, scalingFactor float64) (*TrialOutcome, error) {

	if len(fixture) != len(b.Rounds[0].Matches) {
		return nil, &ConfigError{
			Field: "fixture",
			Reason: fmt.Sprintf("have %v round 1 pairings, bracket needs %v",
				len(fixture), len(b.Rounds[0].Matches)),
		}
	}
	if scalingFactor == 0 {
		scalingFactor = DefaultScalingFactor
	}

	outcome := &TrialOutcome{
		RoundsWon: make(map[string]int, b.NumEntrants),
	}
	for _, f := range fixture {
		for _, name := range []string{f.Player1, f.Player2} {
			if _, ok := ratings[name]; !ok {
				return nil, &UnknownPlayerError{Name: name}
			}
			outcome.RoundsWon[name] = 0
		}
	}

	// winners is the match arena's result column, indexed by global match
	// number.
	winners := make([]string, b.NumMatches+1)

	for _, round := range b.Rounds {
		for i, m := range round.Matches {
			var p1, p2 string
			if round.Number == 1 {
				p1 = fixture[i].Player1
				p2 = fixture[i].Player2
			} else {
				p1 = winners[m.FromMatch1]
				p2 = winners[m.FromMatch2]
			}

			frameProb := FrameWinProb(ratings[p1]-ratings[p2], scalingFactor)
			if frameProb < 0 {
				frameProb = 0
				outcome.RangeWarnings++
			} else if frameProb > 1 {
				frameProb = 1
				outcome.RangeWarnings++
			}

			matchProb, err := MatchWinProb(frameProb, round.BestOf)
			if err != nil {
				return nil, err
			}

			winner := p2
			if rng.Float64() < matchProb {
				winner = p1
			}
			winners[m.Number] = winner
			outcome.RoundsWon[winner] = round.Number
		}
	}

	return outcome, nil
}
