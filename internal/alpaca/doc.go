// Package alpaca implements a small read-only client for the Alpaca
// market data and broker APIs.
//
// The client covers exactly the four operations exposed as MCP tools:
// asset listings, historical stock bars, market calendar days, and news
// articles. Requests are authenticated with the APCA-API-KEY-ID and
// APCA-API-SECRET-KEY headers and always issued sequentially; paginated
// endpoints are drained by following the upstream next_page_token cursor,
// and large symbol lists are split into batches that respect the upstream
// per-request limit.
//
// The client performs no retries, caching, or concurrency. Cancellation
// and deadlines are the caller's responsibility via context.
package alpaca
