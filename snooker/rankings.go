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
	"strconv"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/mikeb26/crucible-oddsbot/internal"
)

// Player represents one entry on the world ranking list.
type Player struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
	Points   int    `json:"points"`
}

// vended by https://api.snooker.org/?rt=MoneyRankings
type apiRankingItem struct {
	Position int    `json:"Position"`
	Name     string `json:"Name"`
	Sum      int    `json:"Sum"`
}

// FetchRankings retrieves the current world ranking list. The JSON API and
// the public website are fetched concurrently; the API response is preferred
// and the scraped page serves as fallback.
func (client *Client) FetchRankings(ctx context.Context) ([]Player, error) {
	var wg sync.WaitGroup
	var viaApi, viaWeb []Player
	var apiErr, webErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		viaApi, apiErr = client.fetchRankingsViaApi(ctx)
	}()
	go func() {
		defer wg.Done()
		viaWeb, webErr = client.fetchRankingsViaWeb(ctx)
	}()
	wg.Wait()

	// prefer the api response
	if apiErr != nil {
		if webErr != nil {
			return nil, apiErr
		} // else
		return viaWeb, nil
	} // else

	return viaApi, nil
}

func (client *Client) fetchRankingsViaApi(ctx context.Context) ([]Player, error) {
	url := "https://api.snooker.org/?rt=MoneyRankings"
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch rankings (new): %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.httpClient1day.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch rankings (do): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected rankings status %d: %s",
			resp.StatusCode, string(body))
	}

	var items []apiRankingItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to parse rankings JSON: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("rankings API returned an empty response")
	}

	players := make([]Player, 0, len(items))
	for _, item := range items {
		players = append(players, Player{
			Name:     internal.NormalizeName(item.Name),
			Position: item.Position,
			Points:   item.Sum,
		})
	}

	return players, nil
}

func (client *Client) fetchRankingsViaWeb(ctx context.Context) ([]Player, error) {
	url := "https://www.snooker.org/res/index.asp?template=ranking"
	doc, err := client.fetchDoc(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch ranking page: %w", err)
	}

	return parseRankingTable(doc)
}

// parseRankingTable extracts Player entries from the ranking table in the
// document.
func parseRankingTable(doc *goquery.Document) ([]Player, error) {
	var players []Player
	doc.Find("table#ranking tbody tr").Each(func(_ int, s *goquery.Selection) {
		cells := s.Find("td")
		if cells.Length() < 3 {
			return
		}
		pos, err := strconv.Atoi(strings.TrimSpace(cells.Eq(0).Text()))
		if err != nil {
			return
		}
		name := internal.NormalizeName(cells.Eq(1).Text())
		if name == "" {
			return
		}
		pointsStr := strings.ReplaceAll(strings.TrimSpace(cells.Eq(2).Text()),
			",", "")
		points, _ := strconv.Atoi(pointsStr)

		players = append(players, Player{
			Name:     name,
			Position: pos,
			Points:   points,
		})
	})

	if len(players) == 0 {
		return nil, fmt.Errorf("no ranking entries found in page")
	}

	return players, nil
}

// fetchDoc gets the HTML document at the given URL using the configured
// User-Agent.
func (client *Client) fetchDoc(ctx context.Context,
	url string) (*goquery.Document, error) {

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := client.httpClient1day.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d fetching %s", resp.StatusCode, url)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}
