/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package sim

import (
	"errors"
	"math/rand"
	"testing"
)

func fourPlayerSetup(t *testing.T) (*Bracket, map[string]float64, []Fixture) {
	t.Helper()
	b, err := BuildBracket(4, []int{3, 3})
	if err != nil {
		t.Fatalf("BuildBracket error: %v", err)
	}
	ratings := map[string]float64{
		"Ronnie": 0.6,
		"Judd":   0.5,
		"Mark":   0.5,
		"Neil":   0.4,
	}
	fixture := []Fixture{
		{Player1: "Ronnie", Player2: "Judd"},
		{Player1: "Mark", Player2: "Neil"},
	}
	return b, ratings, fixture
}

func TestSimulateChampionChain(t *testing.T) {
	b, ratings, fixture := fourPlayerSetup(t)

	// Replay the algorithm by hand with the same draw sequence, then check
	// the simulator agrees match for match.
	replay := rand.New(rand.NewSource(1862))
	winner := func(p1, p2 string, bestOf int) string {
		fp := FrameWinProb(ratings[p1]-ratings[p2], DefaultScalingFactor)
		mp, err := MatchWinProb(fp, bestOf)
		if err != nil {
			t.Fatalf("MatchWinProb error: %v", err)
		}
		if replay.Float64() < mp {
			return p1
		}
		return p2
	}
	sf1 := winner("Ronnie", "Judd", 3)
	sf2 := winner("Mark", "Neil", 3)
	champ := winner(sf1, sf2, 3)

	outcome, err := Simulate(b, ratings, fixture,
		rand.New(rand.NewSource(1862)), DefaultScalingFactor)
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}
	if outcome.RoundsWon[champ] != 2 {
		t.Errorf("expected champion %v with 2 rounds won, got %v", champ,
			outcome.RoundsWon)
	}
	for _, finalist := range []string{sf1, sf2} {
		if finalist != champ && outcome.RoundsWon[finalist] != 1 {
			t.Errorf("expected losing finalist %v with 1 round won, got %v",
				finalist, outcome.RoundsWon[finalist])
		}
	}
}

func TestSimulateConservation(t *testing.T) {
	b, ratings, fixture := fourPlayerSetup(t)

	for seed := int64(0); seed < 50; seed++ {
		outcome, err := Simulate(b, ratings, fixture,
			rand.New(rand.NewSource(seed)), 0)
		if err != nil {
			t.Fatalf("seed %v: Simulate error: %v", seed, err)
		}
		if len(outcome.RoundsWon) != 4 {
			t.Fatalf("seed %v: expected 4 entrants, got %v", seed,
				len(outcome.RoundsWon))
		}
		champions := 0
		for name, won := range outcome.RoundsWon {
			if won < 0 || won > 2 {
				t.Fatalf("seed %v: %v won %v rounds of a 2 round bracket",
					seed, name, won)
			}
			if won == 2 {
				champions++
			}
		}
		if champions != 1 {
			t.Fatalf("seed %v: expected exactly 1 champion, got %v", seed,
				champions)
		}
	}
}

func TestSimulateReproducible(t *testing.T) {
	b, ratings, fixture := fourPlayerSetup(t)

	out1, err := Simulate(b, ratings, fixture, rand.New(rand.NewSource(7)), 0)
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}
	out2, err := Simulate(b, ratings, fixture, rand.New(rand.NewSource(7)), 0)
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}
	for name, won := range out1.RoundsWon {
		if out2.RoundsWon[name] != won {
			t.Errorf("%v: %v vs %v rounds won with identical seeds", name,
				won, out2.RoundsWon[name])
		}
	}
}

func TestSimulateUnknownPlayer(t *testing.T) {
	b, ratings, fixture := fourPlayerSetup(t)
	delete(ratings, "Neil")

	_, err := Simulate(b, ratings, fixture, rand.New(rand.NewSource(1)), 0)
	var unknownErr *UnknownPlayerError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownPlayerError, got %v", err)
	}
	if unknownErr.Name != "Neil" {
		t.Errorf("expected error naming Neil, got %q", unknownErr.Name)
	}
}

func TestSimulateFixtureLengthMismatch(t *testing.T) {
	b, ratings, fixture := fourPlayerSetup(t)

	_, err := Simulate(b, ratings, fixture[:1], rand.New(rand.NewSource(1)), 0)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestSimulateClampsExtremeDifferential(t *testing.T) {
	b, err := BuildBracket(2, []int{3})
	if err != nil {
		t.Fatalf("BuildBracket error: %v", err)
	}
	// 0.9 differential puts the raw frame probability at 1.13.
	ratings := map[string]float64{"Ronnie": 0.95, "Rookie": 0.05}
	fixture := []Fixture{{Player1: "Ronnie", Player2: "Rookie"}}

	outcome, err := Simulate(b, ratings, fixture,
		rand.New(rand.NewSource(3)), 0)
	if err != nil {
		t.Fatalf("Simulate error: %v", err)
	}
	if outcome.RangeWarnings != 1 {
		t.Errorf("expected 1 range warning, got %v", outcome.RangeWarnings)
	}
	if outcome.RoundsWon["Ronnie"] != 1 {
		t.Errorf("clamped certainty should make Ronnie win; got %v",
			outcome.RoundsWon)
	}
}
