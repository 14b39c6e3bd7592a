package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Topethedop/stock-dashboard/internal/domain/watchlist"
	"github.com/Topethedop/stock-dashboard/internal/infra/storage"
)

// watchlistYAML is the import format:
//
//	watchlist:
//	  - symbol: AAPL
type watchlistYAML struct {
	Watchlist []struct {
		Symbol string `yaml:"symbol"`
	} `yaml:"watchlist"`
}

func newWatchlistCmd(opts *options) *cobra.Command {
	wl := &cobra.Command{
		Use:   "watchlist",
		Short: "Manage the persisted watchlist",
	}

	wl.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print the watchlist, one ticker per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.OpenWatchlistFile(cmd.Context(), opts.cfg.Watchlist.FilePath)
			if err != nil {
				return err
			}
			symbols, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range symbols {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	})

	wl.AddCommand(&cobra.Command{
		Use:   "add SYMBOL...",
		Short: "Add tickers (case-insensitive, duplicates ignored)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return addSymbols(cmd, opts, args)
		},
	})

	wl.AddCommand(&cobra.Command{
		Use:   "import FILE.yaml",
		Short: "Add every symbol listed in a YAML watchlist file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			symbols, err := parseWatchlistYAML(data)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			return addSymbols(cmd, opts, symbols)
		},
	})

	return wl
}

func addSymbols(cmd *cobra.Command, opts *options, symbols []string) error {
	store, err := storage.OpenWatchlistFile(cmd.Context(), opts.cfg.Watchlist.FilePath)
	if err != nil {
		return err
	}

	added := 0
	for _, s := range symbols {
		_, changed, err := store.Add(cmd.Context(), s)
		if err != nil {
			return fmt.Errorf("add %q: %w", s, err)
		}
		if changed {
			added++
		}
	}

	list, _ := store.List(cmd.Context())
	fmt.Fprintf(cmd.OutOrStdout(), "added %d, watchlist has %d symbols\n", added, len(list))
	return nil
}

// parseWatchlistYAML returns the normalized, deduplicated symbols of a YAML watchlist
func parseWatchlistYAML(data []byte) ([]string, error) {
	var wf watchlistYAML
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return nil, err
	}

	raw := make([]string, 0, len(wf.Watchlist))
	for _, it := range wf.Watchlist {
		raw = append(raw, it.Symbol)
	}

	out := watchlist.Dedupe(raw)
	if len(out) == 0 {
		return nil, fmt.Errorf("no symbols found in watchlist")
	}
	return out, nil
}
