package alpaca

import "context"

const assetsPath = "/v1/assets"

// GetAssets lists active assets of the given class from the broker API,
// keeping only those that are currently tradable.
func (c *Client) GetAssets(ctx context.Context, class AssetClass) ([]Asset, error) {
	if class == "" {
		class = AssetClassUSEquity
	}

	var assets []Asset
	err := c.get(ctx, c.cfg.BrokerEndpoint, assetsPath, map[string]string{
		"status":      "active",
		"asset_class": string(class),
	}, &assets)
	if err != nil {
		return nil, err
	}

	tradable := make([]Asset, 0, len(assets))
	for _, a := range assets {
		if a.Tradable {
			tradable = append(tradable, a)
		}
	}

	c.logger.Debug("Fetched assets", "class", class, "total", len(assets), "tradable", len(tradable))
	return tradable, nil
}
