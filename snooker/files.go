/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package snooker

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/mikeb26/crucible-oddsbot/internal"
	"github.com/mikeb26/crucible-oddsbot/sim"
)

type drawFile struct {
	BestOf  []int      `yaml:"bestOf"`
	Matches [][]string `yaml:"matches"`
}

// LoadRatings reads a player ratings map from a yaml file of the form:
//
//	Ronnie O'Sullivan: 0.72
//	Judd Trump: 0.70
func LoadRatings(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read ratings file: %w", err)
	}

	raw := make(map[string]float64)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unable to parse ratings file: %w", err)
	}

	ratings := make(map[string]float64, len(raw))
	for name, r := range raw {
		ratings[internal.NormalizeName(name)] = r
	}

	return ratings, nil
}

// LoadDraw reads a round 1 draw and best-of schedule from a yaml file
// of the form:
//
//	bestOf: [19, 25, 25, 33, 35]
//	matches:
//	  - [Ronnie O'Sullivan, Jak Jones]
//	  - [Judd Trump, Hossein Vafaei]
func LoadDraw(path string) ([]sim.Fixture, []int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read draw file: %w", err)
	}

	var df drawFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, nil, fmt.Errorf("unable to parse draw file: %w", err)
	}
	if len(df.Matches) == 0 {
		return nil, nil, fmt.Errorf("draw file has no matches")
	}

	fixtures := make([]sim.Fixture, 0, len(df.Matches))
	for idx, m := range df.Matches {
		if len(m) != 2 {
			return nil, nil, fmt.Errorf("draw file match %v has %v players; want 2",
				idx+1, len(m))
		}
		fixtures = append(fixtures, sim.Fixture{
			Player1: internal.NormalizeName(m[0]),
			Player2: internal.NormalizeName(m[1]),
		})
	}

	return fixtures, df.BestOf, nil
}
