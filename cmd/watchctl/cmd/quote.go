package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Topethedop/stock-dashboard/internal/domain/stock"
	"github.com/Topethedop/stock-dashboard/internal/domain/watchlist"
	"github.com/Topethedop/stock-dashboard/internal/infra/quotes"
)

func newQuoteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "quote SYMBOL",
		Short: "Fetch one quote and print price, change percent and direction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := watchlist.Normalize(args[0])
			if symbol == "" {
				return watchlist.ErrEmptySymbol
			}

			provider, err := quotes.New(opts.cfg.Quotes)
			if err != nil {
				return err
			}
			return printQuote(cmd, provider, symbol)
		},
	}
}

func printQuote(cmd *cobra.Command, provider stock.QuoteProvider, symbol string) error {
	raw, err := provider.GetQuote(cmd.Context(), symbol)
	if err != nil {
		return err
	}

	q := stock.NewQuote(*raw)
	fmt.Fprintf(cmd.OutOrStdout(), "%-8s %10.2f %8.2f%%  %s\n", q.Symbol, q.Price, q.ChangePercent, q.Direction)
	return nil
}
