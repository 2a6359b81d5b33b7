/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"strings"

	"github.com/mikeb26/crucible-oddsbot/sim"
	"github.com/mikeb26/crucible-oddsbot/snooker"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":     handleHelp,
	"rankings": handleRankings,
	"draw":     handleDraw,
	"odds":     handleOdds,
	"sim":      handleSim,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

func handleRankings(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("rankings", flag.ExitOnError)
	count := fs.Int("count", 32, "Number of players to show (1-128)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	// enforce bounds
	if *count < 1 {
		*count = 1
	} else if *count > 128 {
		*count = 128
	}

	client := snooker.NewClient(ctx)
	players, err := client.FetchRankings(ctx)
	if err != nil {
		log.Fatalf("Error fetching rankings: %v", err)
	}

	if len(players) > *count {
		players = players[:*count]
	}
	for _, p := range players {
		fmt.Printf("%3d. %-30s %d\n", p.Position, p.Name, p.Points)
	}
}

func handleDraw(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	eventID := fs.Int("eventid", 0, "Event ID to fetch the draw for")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *eventID <= 0 {
		fmt.Fprintln(os.Stderr, "Please provide a valid --eventid ID.")
		fs.Usage()
		os.Exit(1)
	}

	client := snooker.NewClient(ctx)
	detail, err := client.FetchDraw(ctx, int64(*eventID))
	if err != nil {
		log.Fatalf("Error fetching draw for event %d: %v", *eventID, err)
	}

	fmt.Printf("EventID: %d\n", detail.EventID)
	fmt.Printf("Name: %s\n", detail.Name)
	if detail.Venue != "" {
		fmt.Printf("Venue: %s\n", detail.Venue)
	}
	if !detail.StartDate.IsZero() {
		fmt.Printf("Dates: %s - %s\n", detail.StartDate.Format("2006-01-02"),
			detail.EndDate.Format("2006-01-02"))
	}
	fmt.Printf("Best of: %v\n", detail.BestOf)
	fmt.Printf("Round 1:\n")
	for idx, f := range detail.Fixtures {
		fmt.Printf("  %2d. %s vs %s\n", idx+1, f.Player1, f.Player2)
	}
}

func handleOdds(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("odds", flag.ExitOnError)
	eventID := fs.Int("eventid", 0, "Event ID to simulate")
	drawFile := fs.String("draw", "", "Path to a yaml draw file (alternative to --eventid)")
	ratingsFile := fs.String("ratings", "", "Path to a yaml ratings file (default is derived from rankings)")
	trials := fs.Int("trials", 100000, "Number of simulated tournaments")
	seed := fs.Int64("seed", 1, "Random seed")
	scaling := fs.Float64("scaling", sim.DefaultScalingFactor, "Rating difference scaling factor")
	workers := fs.Int("workers", 0, "Number of concurrent workers (default is NumCPU)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *eventID <= 0 && *drawFile == "" {
		fmt.Fprintln(os.Stderr, "Please provide --eventid or --draw.")
		fs.Usage()
		os.Exit(1)
	}

	output, err := runOdds(ctx, oddsParams{
		eventID:     int64(*eventID),
		drawFile:    *drawFile,
		ratingsFile: *ratingsFile,
		trials:      *trials,
		seed:        *seed,
		scaling:     *scaling,
		workers:     *workers,
	})
	if err != nil {
		log.Fatalf("Error computing odds: %v", err)
	}

	fmt.Printf("%v", output)
}

func handleSim(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("sim", flag.ExitOnError)
	eventID := fs.Int("eventid", 0, "Event ID to simulate")
	drawFile := fs.String("draw", "", "Path to a yaml draw file (alternative to --eventid)")
	ratingsFile := fs.String("ratings", "", "Path to a yaml ratings file (default is derived from rankings)")
	seed := fs.Int64("seed", 1, "Random seed")
	scaling := fs.Float64("scaling", sim.DefaultScalingFactor, "Rating difference scaling factor")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *eventID <= 0 && *drawFile == "" {
		fmt.Fprintln(os.Stderr, "Please provide --eventid or --draw.")
		fs.Usage()
		os.Exit(1)
	}

	output, err := runSim(ctx, oddsParams{
		eventID:     int64(*eventID),
		drawFile:    *drawFile,
		ratingsFile: *ratingsFile,
		seed:        *seed,
		scaling:     *scaling,
	})
	if err != nil {
		log.Fatalf("Error simulating: %v", err)
	}

	fmt.Printf("%v", output)
}

type oddsParams struct {
	eventID     int64
	drawFile    string
	ratingsFile string
	trials      int
	seed        int64
	scaling     float64
	workers     int
}

// resolveInputs loads the round 1 draw and ratings from the requested
// sources (yaml files or the live API).
func resolveInputs(ctx context.Context,
	params oddsParams) ([]sim.Fixture, []int, map[string]float64, error) {

	var fixtures []sim.Fixture
	var bestOf []int
	var err error

	var client *snooker.Client
	if params.drawFile != "" {
		fixtures, bestOf, err = snooker.LoadDraw(params.drawFile)
	} else {
		client = snooker.NewClient(ctx)
		var detail *snooker.EventDetail
		detail, err = client.FetchDraw(ctx, params.eventID)
		if err == nil {
			fixtures = detail.Fixtures
			bestOf = detail.BestOf
		}
	}
	if err != nil {
		return nil, nil, nil, err
	}

	var ratings map[string]float64
	if params.ratingsFile != "" {
		ratings, err = snooker.LoadRatings(params.ratingsFile)
	} else {
		if client == nil {
			client = snooker.NewClient(ctx)
		}
		var players []snooker.Player
		players, err = client.FetchRankings(ctx)
		if err == nil {
			ratings = snooker.RatingsFromRankings(players)
		}
	}
	if err != nil {
		return nil, nil, nil, err
	}

	return fixtures, bestOf, ratings, nil
}

// runOdds resolves the draw and ratings from the requested sources, runs
// the full Monte Carlo aggregation, and renders the odds table.
func runOdds(ctx context.Context, params oddsParams) (string, error) {
	fixtures, bestOf, ratings, err := resolveInputs(ctx, params)
	if err != nil {
		return "", err
	}

	bracket, err := sim.BuildBracket(len(fixtures)*2, bestOf)
	if err != nil {
		return "", err
	}

	result, err := sim.Run(bracket, ratings, fixtures, sim.RunOptions{
		Trials:        params.trials,
		Seed:          params.seed,
		ScalingFactor: params.scaling,
		Workers:       params.workers,
	})
	if err != nil {
		return "", err
	}

	return sim.BuildOddsOutput(bracket, result), nil
}

// runSim walks through a single randomized tournament and reports the
// stage every entrant reached.
func runSim(ctx context.Context, params oddsParams) (string, error) {
	fixtures, bestOf, ratings, err := resolveInputs(ctx, params)
	if err != nil {
		return "", err
	}

	bracket, err := sim.BuildBracket(len(fixtures)*2, bestOf)
	if err != nil {
		return "", err
	}

	rng := rand.New(rand.NewSource(params.seed))
	outcome, err := sim.Simulate(bracket, ratings, fixtures, rng,
		params.scaling)
	if err != nil {
		return "", err
	}

	names := make([]string, 0, len(outcome.RoundsWon))
	for name := range outcome.RoundsWon {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		wonI := outcome.RoundsWon[names[i]]
		wonJ := outcome.RoundsWon[names[j]]
		if wonI != wonJ {
			return wonI > wonJ
		}
		return names[i] < names[j]
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Single simulated tournament (seed %v):\n\n",
		params.seed))
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("%-10s %s\n",
			bracket.RoundLabel(outcome.RoundsWon[name]), name))
	}

	return sb.String(), nil
}
