// Package main - watchctl CLI
// Watchlist maintenance and one-off quotes against the same storage the API uses.
//
// Usage:
//
//	go run ./cmd/watchctl watchlist list
//	go run ./cmd/watchctl watchlist add aapl msft
//	go run ./cmd/watchctl watchlist import watchlist.yaml
//	go run ./cmd/watchctl quote AAPL
package main

import (
	"os"

	"github.com/Topethedop/stock-dashboard/cmd/watchctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
