/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/mikeb26/crucible-oddsbot/internal"
	"github.com/mikeb26/crucible-oddsbot/snooker"
)

// seeddraw builds a seeded round 1 draw yaml from the current world
// ranking list, suitable for feeding to 'crucible odds --draw'.

type drawOut struct {
	BestOf  []int      `yaml:"bestOf"`
	Matches [][]string `yaml:"matches"`
}

func main() {
	ctx := context.Background()

	fs := flag.NewFlagSet("seeddraw", flag.ExitOnError)
	entrants := fs.Int("entrants", internal.WorldChampionshipEntrants,
		"Number of entrants (power of two)")
	bestOfStr := fs.String("bestof", "",
		"Comma separated best-of schedule, first round through final")
	out := fs.String("out", "", "Output path (default stdout)")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	bestOf, err := parseBestOf(*bestOfStr, *entrants)
	if err != nil {
		log.Fatalf("Invalid --bestof: %v", err)
	}

	client := snooker.NewClient(ctx)
	players, err := client.FetchRankings(ctx)
	if err != nil {
		log.Fatalf("Error fetching rankings: %v", err)
	}
	if len(players) < *entrants {
		log.Fatalf("Ranking list has %v players; need %v", len(players),
			*entrants)
	}
	players = players[:*entrants]

	draw := drawOut{BestOf: bestOf}
	for _, pos := range seedOrder(*entrants) {
		// pos entries come in pairs; seed 1 plays the lowest seed
		if len(draw.Matches) == 0 ||
			len(draw.Matches[len(draw.Matches)-1]) == 2 {
			draw.Matches = append(draw.Matches, []string{})
		}
		idx := len(draw.Matches) - 1
		draw.Matches[idx] = append(draw.Matches[idx], players[pos-1].Name)
	}

	data, err := yaml.Marshal(&draw)
	if err != nil {
		log.Fatalf("Error marshalling draw: %v", err)
	}

	if *out == "" {
		fmt.Printf("%s", data)
	} else if err := os.WriteFile(*out, data, 0644); err != nil {
		log.Fatalf("Error writing %v: %v", *out, err)
	}
}

// seedOrder returns bracket slot order by seed so that the top seeds can
// only meet in the latest possible round; e.g. for 8 entrants it returns
// [1 8 4 5 2 7 3 6].
func seedOrder(n int) []int {
	order := []int{1}
	for len(order) < n {
		next := make([]int, 0, len(order)*2)
		for _, s := range order {
			next = append(next, s, len(order)*2+1-s)
		}
		order = next
	}
	return order
}

func parseBestOf(s string, entrants int) ([]int, error) {
	if s == "" {
		if entrants == internal.WorldChampionshipEntrants {
			return internal.WorldChampionshipBestOf, nil
		}
		return nil, fmt.Errorf("--bestof is required for %v entrants", entrants)
	}

	parts := strings.Split(s, ",")
	bestOf := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("unable to parse %q: %w", part, err)
		}
		bestOf = append(bestOf, n)
	}

	return bestOf, nil
}
