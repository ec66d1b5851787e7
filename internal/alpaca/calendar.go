package alpaca

import "context"

const calendarPath = "/v2/calendar"

// GetMarketDays returns the trading calendar between start and end. Single
// request, no pagination, no filtering.
func (c *Client) GetMarketDays(ctx context.Context, start, end string) ([]CalendarDay, error) {
	var days []CalendarDay
	err := c.get(ctx, c.cfg.DataEndpoint, calendarPath, map[string]string{
		"start": start,
		"end":   end,
	}, &days)
	if err != nil {
		return nil, err
	}

	return days, nil
}
