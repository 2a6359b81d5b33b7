/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package snooker

// RatingsFromRankings converts money list points into simulator ratings
// by linearly rescaling points into [0.25, 0.75]. The bounds keep the
// frame win probability of any pairing inside [0, 1] at the default
// scaling factor.
func RatingsFromRankings(players []Player) map[string]float64 {
	const lo = 0.25
	const hi = 0.75

	ratings := make(map[string]float64, len(players))
	if len(players) == 0 {
		return ratings
	}

	minPts := players[0].Points
	maxPts := players[0].Points
	for _, p := range players {
		if p.Points < minPts {
			minPts = p.Points
		}
		if p.Points > maxPts {
			maxPts = p.Points
		}
	}

	span := maxPts - minPts
	for _, p := range players {
		if span == 0 {
			ratings[p.Name] = (lo + hi) / 2
			continue
		}
		frac := float64(p.Points-minPts) / float64(span)
		ratings[p.Name] = lo + frac*(hi-lo)
	}

	return ratings
}
