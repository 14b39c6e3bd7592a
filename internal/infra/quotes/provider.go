// Package quotes selects the market-data provider named in configuration.
package quotes

import (
	"fmt"

	"github.com/Topethedop/stock-dashboard/internal/domain/stock"
	"github.com/Topethedop/stock-dashboard/internal/infra/alpaca"
	"github.com/Topethedop/stock-dashboard/internal/infra/yahoo"
	"github.com/Topethedop/stock-dashboard/internal/pkg/config"
)

// New returns the provider for cfg.Provider
func New(cfg config.QuotesConfig) (stock.QuoteProvider, error) {
	switch cfg.Provider {
	case "", "yahoo":
		return yahoo.NewClient(), nil
	case "alpaca":
		return alpaca.NewClient(cfg.Alpaca.APIKey, cfg.Alpaca.APISecret, cfg.Alpaca.Feed), nil
	default:
		return nil, fmt.Errorf("unknown quote provider %q", cfg.Provider)
	}
}
