/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"testing"
	"time"
)

func TestParseDateOrZero(t *testing.T) {
	for _, s := range []string{"", "null"} {
		got, err := ParseDateOrZero(s)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", s, err)
		}
		if !got.IsZero() {
			t.Errorf("%q: expected zero time, got %v", s, got)
		}
	}

	got, err := ParseDateOrZero("2026-04-18")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 4, 18, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNormalizeName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Ronnie  O'Sullivan", "Ronnie O'Sullivan"},
		{"  Judd\tTrump ", "Judd Trump"},
		{"Neil Robertson", "Neil Robertson"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeName(c.in); got != c.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
