/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package sim

import (
	"fmt"
	"math/bits"
)

// Fixture is one round 1 pairing from the published draw. Slot order
// matters: it determines which side of each later-round match the winner
// propagates into.
type Fixture struct {
	Player1 string
	Player2 string
}

// Match is a single bracket slot. Number is global and contiguous across
// the whole bracket, round 1 first. For rounds after the first, FromMatch1
// and FromMatch2 are the numbers of the two prior-round matches whose
// winners fill slot 1 and slot 2 respectively; both are 0 in round 1.
type Match struct {
	Number     int
	FromMatch1 int
	FromMatch2 int
}

// Round is an ordered sequence of matches played to the same best-of
// length.
type Round struct {
	Number  int
	BestOf  int
	Matches []Match
}

// Bracket is the full knockout structure. It is purely structural: no
// player names, ratings, or randomness. Build it once and reuse it
// read-only across trials.
type Bracket struct {
	NumEntrants int
	NumMatches  int
	Rounds      []Round
}

// BuildBracket constructs the round/match graph for a knockout draw of
// numEntrants players. numEntrants must be a power of two >= 2, and bestOf
// must supply one positive odd match length per round. Each round after
// the first consumes the prior round's matches contiguously, two per new
// match, which reproduces the draw sheet's bracket path topology.
func BuildBracket(numEntrants int, bestOf []int) (*Bracket, error) {
	if numEntrants < 2 || numEntrants&(numEntrants-1) != 0 {
		return nil, &ConfigError{
			Field:  "numEntrants",
			Reason: fmt.Sprintf("%v is not a power of two >= 2", numEntrants),
		}
	}
	numRounds := bits.TrailingZeros(uint(numEntrants))
	if len(bestOf) != numRounds {
		return nil, &ConfigError{
			Field: "bestOf schedule",
			Reason: fmt.Sprintf("have %v entries, need %v (one per round)",
				len(bestOf), numRounds),
		}
	}
	for i, n := range bestOf {
		if n < 1 || n%2 == 0 {
			return nil, &ConfigError{
				Field: "bestOf schedule",
				Reason: fmt.Sprintf("round %v length %v is not a positive odd integer",
					i+1, n),
			}
		}
	}

	b := &Bracket{
		NumEntrants: numEntrants,
		NumMatches:  numEntrants - 1,
		Rounds:      make([]Round, 0, numRounds),
	}

	nextNum := 1
	prevFirst := 0
	for r := 1; r <= numRounds; r++ {
		count := numEntrants >> uint(r)
		round := Round{
			Number:  r,
			BestOf:  bestOf[r-1],
			Matches: make([]Match, 0, count),
		}
		firstNum := nextNum
		for i := 0; i < count; i++ {
			m := Match{Number: nextNum}
			if r > 1 {
				m.FromMatch1 = prevFirst + 2*i
				m.FromMatch2 = prevFirst + 2*i + 1
			}
			round.Matches = append(round.Matches, m)
			nextNum++
		}
		prevFirst = firstNum
		b.Rounds = append(b.Rounds, round)
	}

	return b, nil
}

// NumRounds returns the number of rounds in the bracket.
func (b *Bracket) NumRounds() int {
	return len(b.Rounds)
}
