/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent      = "crucible-oddsbot/0.3.0 (+https://github.com/mikeb26/crucible-oddsbot)"
	WebCacheBucket = "bopmatic-crucible-oddsbot-prod-webcache"

	// WorldChampionshipEntrants is the size of the final-stage draw at the
	// Crucible; qualifying rounds are out of scope.
	WorldChampionshipEntrants = 32
)

// WorldChampionshipBestOf is the match length per final-stage round, last 16
// through the final.
var WorldChampionshipBestOf = []int{19, 25, 25, 33, 35}
