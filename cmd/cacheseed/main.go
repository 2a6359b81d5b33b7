/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mikeb26/crucible-oddsbot/snooker"
)

// this program exists just to seed the http cache for rankings and draws

func main() {
	ctx := context.Background()
	client := snooker.NewClient(ctx)

	players, err := client.FetchRankings(ctx)
	if err == nil {
		fmt.Printf("seeded rankings (%v players)\n", len(players))
	}
	// best effort either way
	time.Sleep(2 * time.Second) // avoid pegging snooker.org

	for _, arg := range os.Args[1:] {
		eventID, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %v: not an event id\n", arg)
			continue
		}

		detail, err := client.FetchDraw(ctx, eventID)
		time.Sleep(2 * time.Second) // avoid pegging snooker.org
		if err != nil {
			// best effort
			continue
		}

		fmt.Printf("seeded ev:%v (%v)\n", eventID, detail.Name)
	}
}
