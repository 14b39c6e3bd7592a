package yahoo

import (
	"context"
	"errors"
	"testing"

	finance "github.com/piquette/finance-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Topethedop/stock-dashboard/internal/domain/stock"
)

func TestClient_GetQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("maps fields", func(t *testing.T) {
		c := NewClientWithFetch(func(symbol string) (*finance.Quote, error) {
			assert.Equal(t, "AAPL", symbol)
			return &finance.Quote{
				Symbol:                     "AAPL",
				RegularMarketPrice:         110,
				RegularMarketPreviousClose: 100,
			}, nil
		})

		raw, err := c.GetQuote(ctx, "AAPL")
		require.NoError(t, err)
		assert.Equal(t, stock.RawQuote{Symbol: "AAPL", Price: 110, PreviousClose: 100}, *raw)
	})

	t.Run("unknown symbol yields zero quote", func(t *testing.T) {
		c := NewClientWithFetch(func(string) (*finance.Quote, error) { return nil, nil })

		raw, err := c.GetQuote(ctx, "NOPE")
		require.NoError(t, err)
		assert.Equal(t, stock.RawQuote{Symbol: "NOPE"}, *raw)
	})

	t.Run("fetch error wrapped", func(t *testing.T) {
		c := NewClientWithFetch(func(string) (*finance.Quote, error) {
			return nil, errors.New("429 too many requests")
		})

		_, err := c.GetQuote(ctx, "AAPL")
		assert.ErrorIs(t, err, stock.ErrProviderFailure)
		assert.Contains(t, err.Error(), "AAPL")
	})

	t.Run("cancelled context", func(t *testing.T) {
		called := false
		c := NewClientWithFetch(func(string) (*finance.Quote, error) {
			called = true
			return nil, nil
		})

		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := c.GetQuote(cctx, "AAPL")
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})

	assert.Equal(t, "yahoo", NewClient().Name())
}
