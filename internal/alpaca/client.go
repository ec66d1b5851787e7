package alpaca

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cesarvarela/alpaca-mcp/internal/config"
	"github.com/cesarvarela/alpaca-mcp/internal/logging"

	"github.com/go-resty/resty/v2"
)

// Credential headers per the Alpaca API documentation.
const (
	headerAPIKey    = "APCA-API-KEY-ID"
	headerSecretKey = "APCA-API-SECRET-KEY"
)

// Client issues authenticated requests against the Alpaca data and broker
// APIs. It is safe for sequential reuse across tool invocations; each call
// is stateless beyond its own accumulator.
type Client struct {
	cfg    *config.Config
	http   *resty.Client
	logger *logging.AppLogger
}

// NewClient creates a client from an injected configuration. No timeout or
// retry policy is set here; callers wrap invocations with a context if they
// need a deadline.
func NewClient(cfg *config.Config, logger *logging.AppLogger) *Client {
	return &Client{
		cfg:    cfg,
		http:   resty.New(),
		logger: logger,
	}
}

// get performs one authenticated GET and decodes the JSON response into out.
//
// The URL is the literal concatenation of base and path, with no slash
// normalization; a base ending in "/" and a path starting with "/" produce
// a double slash on the wire, matching what the upstream API accepts.
// Query parameters are encoded in sorted key order.
//
// A missing credential fails before any network activity. Non-success
// responses become an *APIError. Transport failures propagate unwrapped
// from the HTTP client.
func (c *Client) get(ctx context.Context, base, path string, params map[string]string, out any) error {
	if err := c.cfg.ValidateCredentials(); err != nil {
		return err
	}

	url := base + path

	req := c.http.R().
		SetContext(ctx).
		SetHeader(headerAPIKey, c.cfg.APIKey).
		SetHeader(headerSecretKey, c.cfg.SecretKey)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	c.logger.Debug("Alpaca request", "url", url, "params", params)

	resp, err := req.Get(url)
	if err != nil {
		return err
	}

	if resp.IsError() {
		return newAPIError(resp.StatusCode(), resp.Status(), resp.Body())
	}

	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", url, err)
		}
	}

	return nil
}
