package watchlist

import "errors"

var (
	ErrEmptySymbol  = errors.New("ticker symbol is empty")
	ErrStorageWrite = errors.New("watchlist storage write failed")
	ErrStorageRead  = errors.New("watchlist storage read failed")
)
