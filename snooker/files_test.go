/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package snooker

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name string, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("unable to write temp file: %v", err)
	}
	return path
}

func TestLoadRatings(t *testing.T) {
	path := writeTempFile(t, "ratings.yaml", `
Judd  Trump: 0.72
Kyren Wilson: 0.65
`)

	ratings, err := LoadRatings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ratings) != 2 {
		t.Fatalf("expected 2 ratings; got %v", len(ratings))
	}
	if math.Abs(ratings["Judd Trump"]-0.72) > 1e-9 {
		t.Fatalf("expected normalized key with rating 0.72; got %v", ratings)
	}
}

func TestLoadRatings_Missing(t *testing.T) {
	if _, err := LoadRatings(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadDraw(t *testing.T) {
	path := writeTempFile(t, "draw.yaml", `
bestOf: [19, 25, 25, 33, 35]
matches:
  - [Judd Trump, Some Qualifier]
  - [Kyren Wilson, Another Qualifier]
`)

	fixtures, bestOf, err := LoadDraw(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fixtures) != 2 {
		t.Fatalf("expected 2 fixtures; got %v", len(fixtures))
	}
	if fixtures[0].Player1 != "Judd Trump" || fixtures[0].Player2 != "Some Qualifier" {
		t.Fatalf("unexpected first fixture: %+v", fixtures[0])
	}
	if len(bestOf) != 5 || bestOf[0] != 19 || bestOf[4] != 35 {
		t.Fatalf("unexpected best-of schedule: %v", bestOf)
	}
}

func TestLoadDraw_BadMatch(t *testing.T) {
	path := writeTempFile(t, "draw.yaml", `
bestOf: [3]
matches:
  - [Judd Trump]
`)

	if _, _, err := LoadDraw(path); err == nil {
		t.Fatalf("expected error for malformed match entry")
	}
}

func TestLoadDraw_Empty(t *testing.T) {
	path := writeTempFile(t, "draw.yaml", `bestOf: [3]`)

	if _, _, err := LoadDraw(path); err == nil {
		t.Fatalf("expected error for draw with no matches")
	}
}
