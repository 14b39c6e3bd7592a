package yahoo

import (
	"context"
	"fmt"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/quote"
	"github.com/rs/zerolog/log"

	"github.com/Topethedop/stock-dashboard/internal/domain/stock"
)

// FetchFunc looks up a single Yahoo Finance quote
type FetchFunc func(symbol string) (*finance.Quote, error)

// Client handles Yahoo Finance quote requests
type Client struct {
	fetch FetchFunc
}

var _ stock.QuoteProvider = (*Client)(nil)

// NewClient creates a new Yahoo client backed by finance-go
func NewClient() *Client {
	return &Client{fetch: quote.Get}
}

// NewClientWithFetch creates a client with a custom lookup, used by tests
func NewClientWithFetch(fetch FetchFunc) *Client {
	return &Client{fetch: fetch}
}

// Name implements stock.QuoteProvider
func (c *Client) Name() string {
	return "yahoo"
}

// GetQuote fetches regularMarketPrice and regularMarketPreviousClose for symbol.
// An unknown symbol is not an error: it yields a zero quote.
func (c *Client) GetQuote(ctx context.Context, symbol string) (*stock.RawQuote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q, err := c.fetch(symbol)
	if err != nil {
		return nil, fmt.Errorf("%w: yahoo %s: %v", stock.ErrProviderFailure, symbol, err)
	}

	if q == nil {
		log.Warn().Str("symbol", symbol).Msg("Yahoo returned no quote, defaulting to zero")
		return &stock.RawQuote{Symbol: symbol}, nil
	}

	return &stock.RawQuote{
		Symbol:        symbol,
		Price:         q.RegularMarketPrice,
		PreviousClose: q.RegularMarketPreviousClose,
	}, nil
}
