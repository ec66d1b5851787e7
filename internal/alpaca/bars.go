package alpaca

import (
	"context"
	"strings"
)

const (
	barsPath = "/v2/stocks/bars"

	// maxSymbolsPerRequest is the upstream cap on symbols per bars request.
	maxSymbolsPerRequest = 2000

	// barsPageLimit is the fixed per-page bar limit sent on every request.
	barsPageLimit = "10000"
)

// GetStockBars fetches historical bars for the given symbols between start
// and end at the given timeframe granularity (an upstream token such as
// "1Day", passed through opaquely).
//
// Symbols are split into batches of at most maxSymbolsPerRequest. Each batch
// is drained page by page, sequentially, following next_page_token until the
// upstream omits it; pages of one batch merge into a single map keyed by
// symbol. Symbol keys are disjoint across batches, so batches never collide.
// Any failure aborts the whole operation with no partial result.
func (c *Client) GetStockBars(ctx context.Context, symbols []string, start, end, timeframe string) (map[string][]Bar, error) {
	merged := make(map[string][]Bar)

	for _, batch := range chunk(symbols, maxSymbolsPerRequest) {
		params := map[string]string{
			"timeframe": timeframe,
			"limit":     barsPageLimit,
			"start":     start,
			"end":       end,
			"symbols":   strings.Join(batch, ","),
		}

		for {
			var page barsResponse
			if err := c.get(ctx, c.cfg.DataEndpoint, barsPath, params, &page); err != nil {
				return nil, err
			}

			for symbol, bars := range page.Bars {
				merged[symbol] = append(merged[symbol], bars...)
			}

			if page.NextPageToken == nil || *page.NextPageToken == "" {
				break
			}
			// Bars continuation keeps the full parameter set plus the cursor.
			params["page_token"] = *page.NextPageToken
		}
	}

	c.logger.Debug("Fetched stock bars", "symbols", len(symbols), "timeframe", timeframe)
	return merged, nil
}
