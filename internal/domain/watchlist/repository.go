package watchlist

import "context"

// Repository owns the ordered, deduplicated set of watched tickers
type Repository interface {
	// List returns a snapshot of the watchlist in insertion order
	List(ctx context.Context) ([]string, error)

	// Add inserts symbol (normalized) unless already present.
	// Returns the resulting watchlist and whether it changed.
	Add(ctx context.Context, symbol string) ([]string, bool, error)
}
