/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package sim

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// RoundLabel names the stage a player reaches by winning the given round,
// e.g. for a 32 draw: Last 16, Quarters, Semis, Final, Winner.
func (b *Bracket) RoundLabel(round int) string {
	remaining := b.NumEntrants >> uint(round)
	switch remaining {
	case 1:
		return "Winner"
	case 2:
		return "Final"
	case 4:
		return "Semis"
	case 8:
		return "Quarters"
	default:
		return fmt.Sprintf("Last %v", remaining)
	}
}

// OddsToString formats decimal odds, rendering the impossible as infinity.
func OddsToString(odds float64) string {
	if math.IsInf(odds, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.2f", odds)
}

// BuildOddsOutput formats an aggregate result into an aligned table with
// one probability column and one odds column per round, players sorted by
// championship probability.
func BuildOddsOutput(b *Bracket, res *AggregateResult) string {
	players := make([]string, len(res.Players))
	copy(players, res.Players)
	sort.SliceStable(players, func(i, j int) bool {
		return res.Count(players[i], res.NumRounds) >
			res.Count(players[j], res.NumRounds)
	})

	headers := []string{"Player"}
	for r := 1; r <= res.NumRounds; r++ {
		label := b.RoundLabel(r)
		headers = append(headers, "P("+label+")", "O("+label+")")
	}

	rows := make([][]string, 0, len(players))
	for _, name := range players {
		row := []string{name}
		for r := 1; r <= res.NumRounds; r++ {
			row = append(row,
				fmt.Sprintf("%.4f", res.Probability(name, r)),
				OddsToString(res.Odds(name, r)))
		}
		rows = append(rows, row)
	}

	// Compute column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if l := len(cell); l > widths[i] {
				widths[i] = l
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Estimated outcome probabilities over %v trials:\n\n",
		res.Trials))
	for i, h := range headers {
		sb.WriteString(fmt.Sprintf("%-*s  ", widths[i], h))
	}
	sb.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			sb.WriteString(fmt.Sprintf("%-*s  ", widths[i], cell))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
