/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package snooker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mikeb26/crucible-oddsbot/internal"
	"github.com/mikeb26/crucible-oddsbot/sim"
)

// vended by https://api.snooker.org/event/<eventId>/draw
// EventDetail represents a ranking event and its published final-stage draw.
type EventDetail struct {
	EventID   int64     `json:"eventId"`
	Name      string    `json:"name"`
	Venue     string    `json:"venue"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	BestOf    []int     `json:"bestOf"`
	Fixtures  []sim.Fixture
}

type apiDrawMatch struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

// FetchDraw fetches the round 1 draw and best-of schedule for a given
// eventId from the JSON API.
func (client *Client) FetchDraw(ctx context.Context,
	eventID int64) (*EventDetail, error) {

	url := fmt.Sprintf("https://api.snooker.org/event/%d/draw", eventID)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch draw (new): %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.httpClient7day.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch draw (do): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected draw status %d: %s",
			resp.StatusCode, string(body))
	}

	var detail EventDetail
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return nil, fmt.Errorf("unable to parse draw: %w", err)
	}
	if len(detail.Fixtures) == 0 {
		return nil, fmt.Errorf("draw API returned no round 1 matches")
	}

	return &detail, nil
}

// Custom unmarshaller for EventDetail to handle flexible date parsing.
func (ed *EventDetail) UnmarshalJSON(data []byte) error {
	type Alias EventDetail
	aux := &struct {
		StartDate string         `json:"startDate"`
		EndDate   string         `json:"endDate"`
		Round1    []apiDrawMatch `json:"round1"`
		*Alias
	}{
		Alias: (*Alias)(ed),
	}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	var err error
	if ed.StartDate, err = internal.ParseDateOrZero(aux.StartDate); err != nil {
		return fmt.Errorf("unable to parse draw start date %q: %w",
			aux.StartDate, err)
	}
	if ed.EndDate, err = internal.ParseDateOrZero(aux.EndDate); err != nil {
		return fmt.Errorf("unable to parse draw end date %q: %w",
			aux.EndDate, err)
	}

	ed.Fixtures = make([]sim.Fixture, 0, len(aux.Round1))
	for _, m := range aux.Round1 {
		ed.Fixtures = append(ed.Fixtures, sim.Fixture{
			Player1: internal.NormalizeName(m.Player1),
			Player2: internal.NormalizeName(m.Player2),
		})
	}

	return nil
}
