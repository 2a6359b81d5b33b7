/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package sim

import (
	"fmt"
	"math"
)

// DefaultScalingFactor converts a rating differential into a frame win
// probability offset from even money.
const DefaultScalingFactor = 0.7

// FrameWinProb returns the probability that the first player wins a single
// frame given the rating differential (first player's rating minus the
// second's). The result is intentionally unclamped; callers are responsible
// for keeping differentials within a range that yields a valid probability,
// or for clamping with a diagnostic (see Simulate).
func FrameWinProb(ratingDiff float64, scalingFactor float64) float64 {
	return 0.5 + scalingFactor*ratingDiff
}

// MatchWinProb returns the probability of winning a best-of-bestOf match
// given a per-frame win probability. bestOf must be a positive odd integer;
// an even length would admit drawn scores.
//
// The computation enumerates every winning scoreline exactly: the winner
// takes firstTo = (bestOf+1)/2 frames while the loser takes s frames for
// s in 0..firstTo-1. The final frame is always the winner's, so the number
// of frame orderings producing a given scoreline is C(firstTo-1+s, s).
func MatchWinProb(frameProb float64, bestOf int) (float64, error) {
	if bestOf < 1 || bestOf%2 == 0 {
		return 0, &ConfigError{
			Field:  "bestOf",
			Reason: fmt.Sprintf("%v is not a positive odd integer", bestOf),
		}
	}

	firstTo := (bestOf + 1) / 2
	loseProb := 1.0 - frameProb

	total := 0.0
	for s := 0; s < firstTo; s++ {
		paths := binomial(firstTo-1+s, s)
		total += paths * math.Pow(frameProb, float64(firstTo)) *
			math.Pow(loseProb, float64(s))
	}

	return total, nil
}

// binomial computes C(n, k) via the multiplicative rule. The largest
// coefficient needed for a best-of-35 match is C(34, 17) ~ 2.3e9, well
// within float64's exact integer range.
func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1.0
	for i := 0; i < k; i++ {
		result = result * float64(n-i) / float64(i+1)
	}
	return result
}
