/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package sim

import (
	"errors"
	"testing"
)

var worldChampionshipBestOf = []int{19, 25, 25, 33, 35}

func TestBuildBracket32(t *testing.T) {
	b, err := BuildBracket(32, worldChampionshipBestOf)
	if err != nil {
		t.Fatalf("BuildBracket error: %v", err)
	}
	if b.NumRounds() != 5 {
		t.Fatalf("expected 5 rounds, got %v", b.NumRounds())
	}
	wantCounts := []int{16, 8, 4, 2, 1}
	for i, round := range b.Rounds {
		if len(round.Matches) != wantCounts[i] {
			t.Errorf("round %v: expected %v matches, got %v", i+1,
				wantCounts[i], len(round.Matches))
		}
		if round.BestOf != worldChampionshipBestOf[i] {
			t.Errorf("round %v: expected bestOf %v, got %v", i+1,
				worldChampionshipBestOf[i], round.BestOf)
		}
	}
	if b.NumMatches != 31 {
		t.Errorf("expected 31 matches, got %v", b.NumMatches)
	}

	// Match numbers are global and contiguous, round 1 first.
	next := 1
	for _, round := range b.Rounds {
		for _, m := range round.Matches {
			if m.Number != next {
				t.Fatalf("round %v: expected match number %v, got %v",
					round.Number, next, m.Number)
			}
			next++
		}
	}
}

func TestBuildBracketBackReferences(t *testing.T) {
	b, err := BuildBracket(32, worldChampionshipBestOf)
	if err != nil {
		t.Fatalf("BuildBracket error: %v", err)
	}
	for r := 1; r < b.NumRounds(); r++ {
		prev := b.Rounds[r-1]
		cur := b.Rounds[r]
		seen := make(map[int]bool)
		for _, m := range cur.Matches {
			if m.FromMatch1 == m.FromMatch2 {
				t.Fatalf("round %v match %v: identical back-references %v",
					cur.Number, m.Number, m.FromMatch1)
			}
			for _, from := range []int{m.FromMatch1, m.FromMatch2} {
				if from < prev.Matches[0].Number ||
					from > prev.Matches[len(prev.Matches)-1].Number {
					t.Fatalf("round %v match %v: back-reference %v outside round %v",
						cur.Number, m.Number, from, prev.Number)
				}
				if seen[from] {
					t.Fatalf("round %v: match %v referenced twice", cur.Number, from)
				}
				seen[from] = true
			}
		}
		if len(seen) != len(prev.Matches) {
			t.Fatalf("round %v: %v of %v prior matches referenced", cur.Number,
				len(seen), len(prev.Matches))
		}
	}

	// Round 1 matches carry no back-references.
	for _, m := range b.Rounds[0].Matches {
		if m.FromMatch1 != 0 || m.FromMatch2 != 0 {
			t.Errorf("round 1 match %v: unexpected back-references %v %v",
				m.Number, m.FromMatch1, m.FromMatch2)
		}
	}
}

func TestBuildBracketInvalidEntrants(t *testing.T) {
	for _, n := range []int{0, 1, 3, 6, 20, 31} {
		_, err := BuildBracket(n, []int{3})
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("numEntrants %v: expected ConfigError, got %v", n, err)
		}
	}
}

func TestBuildBracketScheduleMismatch(t *testing.T) {
	cases := []struct {
		name   string
		bestOf []int
	}{
		{"too short", []int{19, 25}},
		{"too long", []int{19, 25, 25, 33, 35, 35}},
		{"even length", []int{19, 25, 24, 33, 35}},
		{"zero length", []int{19, 25, 0, 33, 35}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := BuildBracket(32, c.bestOf)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("expected ConfigError, got %v", err)
			}
		})
	}
}

func TestRoundLabel(t *testing.T) {
	b, err := BuildBracket(32, worldChampionshipBestOf)
	if err != nil {
		t.Fatalf("BuildBracket error: %v", err)
	}
	want := []string{"Last 16", "Quarters", "Semis", "Final", "Winner"}
	for r := 1; r <= 5; r++ {
		if got := b.RoundLabel(r); got != want[r-1] {
			t.Errorf("round %v: got %q, want %q", r, got, want[r-1])
		}
	}
}
