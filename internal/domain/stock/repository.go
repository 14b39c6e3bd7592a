package stock

import "context"

// QuoteProvider fetches the current quote for one symbol from an external source
type QuoteProvider interface {
	// Name identifies the provider in logs and error envelopes
	Name() string

	// GetQuote returns current price and previous close for symbol
	GetQuote(ctx context.Context, symbol string) (*RawQuote, error)
}
