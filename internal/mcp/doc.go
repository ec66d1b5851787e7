// Package mcp provides the Model Context Protocol (MCP) server for alpaca-mcp using mcp-go.
//
// This package implements an MCP server that allows AI assistants to query
// Alpaca market data and broker information through a standardized protocol.
// Four tools are exposed: get-assets, get-stock-bars, get-market-days, and
// get-news.
//
// # Implementation
//
// The package uses the mcp-go library (github.com/mark3labs/mcp-go). The
// server reads JSON-RPC requests from stdin and writes responses to stdout
// until it receives EOF or is terminated, so it is typically started as a
// subprocess by an MCP-capable client.
//
// # Tool contract
//
// Every tool returns a single text content item whose text is the
// JSON-encoded result payload. Failures never propagate as protocol errors:
// they are converted into the same envelope with the isError flag set and a
// tool-specific message prefix, e.g. "Error fetching assets: ...".
//
// # Architecture
//
// The Server struct contains:
//   - cfg: injected Alpaca configuration (credentials and endpoints)
//   - logger: application logger for debugging and audit
//   - client: the Alpaca API client performing the actual requests
//   - mcpServer: the underlying mcp-go server instance
//
// # References
//
// - MCP Specification: https://modelcontextprotocol.io/specification
// - mcp-go Library: https://github.com/mark3labs/mcp-go
// - Alpaca API: https://docs.alpaca.markets
package mcp
