/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package snooker

import (
	"context"
	"net/http"
	"time"

	"github.com/mikeb26/crucible-oddsbot/internal"
)

type Client struct {
	httpClient7day *http.Client
	httpClient1day *http.Client
}

func NewClient(ctx context.Context) *Client {
	ret := &Client{
		httpClient7day: internal.NewCachedHttpClient(ctx, 7*24*time.Hour),
	}
	if ret.httpClient7day != http.DefaultClient {
		ret.httpClient1day = internal.NewCachedHttpClient(ctx, 24*time.Hour)
	} else {
		ret.httpClient1day = http.DefaultClient
	}

	return ret
}
