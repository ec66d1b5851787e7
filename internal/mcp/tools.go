package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cesarvarela/alpaca-mcp/internal/alpaca"

	"github.com/mark3labs/mcp-go/mcp"
)

// registerTools declares the four Alpaca operations with their parameter
// schemas.
func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("get-assets",
			mcp.WithDescription("Get active tradable assets from Alpaca"),
			mcp.WithString("assetClass",
				mcp.Description("Asset class to list"),
				mcp.Enum("us_equity", "crypto"),
				mcp.DefaultString("us_equity"),
			),
		),
		s.handleGetAssets,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get-stock-bars",
			mcp.WithDescription("Get historical price bars for a list of stock symbols"),
			mcp.WithArray("symbols",
				mcp.Required(),
				mcp.Description("Ticker symbols to fetch bars for"),
				mcp.Items(map[string]any{"type": "string"}),
			),
			mcp.WithString("start",
				mcp.Required(),
				mcp.Description("Start date/time (RFC 3339 or YYYY-MM-DD)"),
			),
			mcp.WithString("end",
				mcp.Required(),
				mcp.Description("End date/time (RFC 3339 or YYYY-MM-DD)"),
			),
			mcp.WithString("timeframe",
				mcp.Required(),
				mcp.Description("Bar granularity, e.g. 1Day, 1Hour, 5Min"),
			),
		),
		s.handleGetStockBars,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get-market-days",
			mcp.WithDescription("Get market calendar days between two dates"),
			mcp.WithString("start",
				mcp.Required(),
				mcp.Description("Start date (YYYY-MM-DD)"),
			),
			mcp.WithString("end",
				mcp.Required(),
				mcp.Description("End date (YYYY-MM-DD)"),
			),
		),
		s.handleGetMarketDays,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get-news",
			mcp.WithDescription("Get news articles for a list of symbols between two dates"),
			mcp.WithString("start",
				mcp.Required(),
				mcp.Description("Start date (YYYY-MM-DD)"),
			),
			mcp.WithString("end",
				mcp.Required(),
				mcp.Description("End date (YYYY-MM-DD)"),
			),
			mcp.WithArray("symbols",
				mcp.Required(),
				mcp.Description("Ticker symbols to fetch news for"),
				mcp.Items(map[string]any{"type": "string"}),
			),
		),
		s.handleGetNews,
	)
}

func (s *Server) handleGetAssets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := request.GetString("assetClass", string(alpaca.AssetClassUSEquity))
	class, err := alpaca.ParseAssetClass(raw)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error fetching assets: %s", err)), nil
	}

	assets, err := s.client.GetAssets(ctx, class)
	if err != nil {
		s.logger.Error("get-assets failed", "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Error fetching assets: %s", err)), nil
	}

	return jsonResult(assets)
}

func (s *Server) handleGetStockBars(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Symbols may legitimately be empty; emptiness is not enforced here.
	symbols := request.GetStringSlice("symbols", nil)
	start, err := request.RequireString("start")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	end, err := request.RequireString("end")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	timeframe, err := request.RequireString("timeframe")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	bars, err := s.client.GetStockBars(ctx, symbols, start, end, timeframe)
	if err != nil {
		s.logger.Error("get-stock-bars failed", "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Error fetching stock bars: %s", err)), nil
	}

	return jsonResult(struct {
		Bars map[string][]alpaca.Bar `json:"bars"`
	}{Bars: bars})
}

func (s *Server) handleGetMarketDays(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, err := request.RequireString("start")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	end, err := request.RequireString("end")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	days, err := s.client.GetMarketDays(ctx, start, end)
	if err != nil {
		s.logger.Error("get-market-days failed", "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Error fetching market days: %s", err)), nil
	}

	return jsonResult(days)
}

func (s *Server) handleGetNews(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, err := request.RequireString("start")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	end, err := request.RequireString("end")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	symbols := request.GetStringSlice("symbols", nil)

	articles, err := s.client.GetNews(ctx, start, end, symbols)
	if err != nil {
		s.logger.Error("get-news failed", "error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Error fetching news: %s", err)), nil
	}

	return jsonResult(articles)
}

// jsonResult serializes a payload into the uniform text envelope.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error serializing result: %s", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
