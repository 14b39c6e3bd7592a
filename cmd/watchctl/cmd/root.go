// Package cmd - watchctl CLI commands
package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Topethedop/stock-dashboard/internal/pkg/config"
	"github.com/Topethedop/stock-dashboard/internal/pkg/logger"
)

// options shared by all subcommands
type options struct {
	watchlistFile string
	verbose       bool
	cfg           *config.Config
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "watchctl",
		Short: "Stock watchlist dashboard - CLI",
		Long: `Stock watchlist dashboard - CLI

Commands:
    watchlist list|add|import   - manage the persisted watchlist
    quote <SYMBOL>              - fetch one quote from the configured provider
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}

	root.PersistentFlags().StringVar(&opts.watchlistFile, "file", "", "watchlist file (default is $WATCHLIST_FILE or watchlist.txt)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newWatchlistCmd(opts))
	root.AddCommand(newQuoteCmd(opts))

	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// load reads .env and environment, then applies flag overrides
func (o *options) load() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if o.watchlistFile != "" {
		cfg.Watchlist.FilePath = o.watchlistFile
	}
	o.cfg = cfg

	level := zerolog.WarnLevel.String()
	if o.verbose {
		level = zerolog.DebugLevel.String()
	}
	return logger.Init(logger.Config{
		Level:       level,
		Format:      "pretty",
		ServiceName: "watchctl",
	})
}
