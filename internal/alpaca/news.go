package alpaca

import (
	"context"
	"strings"
)

const newsPath = "/v1beta1/news"

// GetNews fetches news articles for the given symbols between start and end,
// newest first, draining the cursor until the upstream omits it.
//
// The pagination contract differs from bars: only the first request carries
// the filter parameters. Every continuation request carries page_token and
// nothing else; the upstream cursor encodes the original query.
func (c *Client) GetNews(ctx context.Context, start, end string, symbols []string) ([]NewsArticle, error) {
	params := map[string]string{
		"sort":            "desc",
		"start":           start,
		"end":             end,
		"symbols":         strings.Join(symbols, ","),
		"include_content": "true",
	}

	var articles []NewsArticle
	for {
		var page newsResponse
		if err := c.get(ctx, c.cfg.DataEndpoint, newsPath, params, &page); err != nil {
			return nil, err
		}

		articles = append(articles, page.News...)

		if page.NextPageToken == nil || *page.NextPageToken == "" {
			break
		}
		params = map[string]string{"page_token": *page.NextPageToken}
	}

	c.logger.Debug("Fetched news", "symbols", len(symbols), "articles", len(articles))
	return articles, nil
}
