package stock

import "errors"

// Domain errors
var (
	ErrProviderFailure = errors.New("market data provider failed")
)
