package alpaca

import (
	"context"
	"fmt"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"

	"github.com/Topethedop/stock-dashboard/internal/domain/stock"
)

// SnapshotGetter is the subset of the Alpaca market data client we use
type SnapshotGetter interface {
	GetSnapshot(symbol string, req marketdata.GetSnapshotRequest) (*marketdata.Snapshot, error)
}

// Client reads quotes from Alpaca snapshots: latest trade price and previous daily close
type Client struct {
	md   SnapshotGetter
	feed string
}

var _ stock.QuoteProvider = (*Client)(nil)

// NewClient creates an Alpaca-backed quote provider
func NewClient(apiKey, apiSecret, feed string) *Client {
	md := marketdata.NewClient(marketdata.ClientOpts{
		APIKey:    apiKey,
		APISecret: apiSecret,
	})
	return NewClientWithGetter(md, feed)
}

// NewClientWithGetter wraps an existing snapshot source
func NewClientWithGetter(md SnapshotGetter, feed string) *Client {
	return &Client{md: md, feed: feed}
}

// Name implements stock.QuoteProvider
func (c *Client) Name() string {
	return "alpaca"
}

// GetQuote implements stock.QuoteProvider
func (c *Client) GetQuote(ctx context.Context, symbol string) (*stock.RawQuote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap, err := c.md.GetSnapshot(symbol, marketdata.GetSnapshotRequest{
		Feed: marketdata.Feed(c.feed),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: alpaca %s: %v", stock.ErrProviderFailure, symbol, err)
	}

	raw := &stock.RawQuote{Symbol: symbol}
	if snap == nil {
		return raw, nil
	}
	if snap.LatestTrade != nil {
		raw.Price = snap.LatestTrade.Price
	}
	if snap.PrevDailyBar != nil {
		raw.PreviousClose = snap.PrevDailyBar.Close
	}

	return raw, nil
}
