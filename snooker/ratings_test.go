/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package snooker

import (
	"math"
	"testing"
)

func TestRatingsFromRankings(t *testing.T) {
	players := []Player{
		{Name: "Judd Trump", Position: 1, Points: 1500000},
		{Name: "Kyren Wilson", Position: 2, Points: 1000000},
		{Name: "Jak Jones", Position: 3, Points: 500000},
	}

	ratings := RatingsFromRankings(players)
	if len(ratings) != 3 {
		t.Fatalf("expected 3 ratings; got %v", len(ratings))
	}
	if math.Abs(ratings["Judd Trump"]-0.75) > 1e-9 {
		t.Fatalf("top player rating: got %v want 0.75", ratings["Judd Trump"])
	}
	if math.Abs(ratings["Jak Jones"]-0.25) > 1e-9 {
		t.Fatalf("bottom player rating: got %v want 0.25", ratings["Jak Jones"])
	}
	if math.Abs(ratings["Kyren Wilson"]-0.5) > 1e-9 {
		t.Fatalf("middle player rating: got %v want 0.5", ratings["Kyren Wilson"])
	}
}

func TestRatingsFromRankings_EqualPoints(t *testing.T) {
	players := []Player{
		{Name: "A", Points: 0},
		{Name: "B", Points: 0},
	}

	ratings := RatingsFromRankings(players)
	for name, r := range ratings {
		if math.Abs(r-0.5) > 1e-9 {
			t.Fatalf("rating for %v: got %v want 0.5", name, r)
		}
	}
}

func TestRatingsFromRankings_Empty(t *testing.T) {
	ratings := RatingsFromRankings(nil)
	if len(ratings) != 0 {
		t.Fatalf("expected empty map; got %v", ratings)
	}
}
