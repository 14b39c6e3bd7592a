package stock

import (
	"github.com/shopspring/decimal"
)

// Direction of a move since previous close
type Direction string

const (
	DirectionUp      Direction = "up"
	DirectionDown    Direction = "down"
	DirectionNeutral Direction = "neutral"
)

// RawQuote is what a market-data provider reports for a symbol.
// Zero values mean the provider had no data for the field.
type RawQuote struct {
	Symbol        string
	Price         float64
	PreviousClose float64
}

// Quote is the per-poll view of a watched symbol
type Quote struct {
	Symbol        string    `json:"symbol"`
	Price         float64   `json:"price"`
	ChangePercent float64   `json:"change_percent"`
	Direction     Direction `json:"direction"`
}

// Leaderboard holds the best and worst mover of one poll
type Leaderboard struct {
	TopGainer *Quote `json:"top_gainer"`
	TopLoser  *Quote `json:"top_loser"`
}

var hundred = decimal.NewFromInt(100)

// ChangePercent returns (price - previous) / previous * 100, or 0 when previous is 0.
func ChangePercent(price, previous float64) decimal.Decimal {
	prev := decimal.NewFromFloat(previous)
	if prev.IsZero() {
		return decimal.Zero
	}
	return decimal.NewFromFloat(price).Sub(prev).Div(prev).Mul(hundred)
}

// DirectionOf classifies a change percent
func DirectionOf(changePercent decimal.Decimal) Direction {
	switch changePercent.Sign() {
	case 1:
		return DirectionUp
	case -1:
		return DirectionDown
	default:
		return DirectionNeutral
	}
}

// ChangePercent returns the unrounded change since previous close.
// A missing previous close falls back to the price.
func (r RawQuote) ChangePercent() decimal.Decimal {
	previous := r.PreviousClose
	if previous == 0 {
		previous = r.Price
	}
	return ChangePercent(r.Price, previous)
}

// NewQuote derives a Quote from raw provider data.
// Direction comes from the unrounded change; only the reported figures are rounded.
func NewQuote(raw RawQuote) Quote {
	cp := raw.ChangePercent()

	return Quote{
		Symbol:        raw.Symbol,
		Price:         decimal.NewFromFloat(raw.Price).Round(2).InexactFloat64(),
		ChangePercent: cp.Round(2).InexactFloat64(),
		Direction:     DirectionOf(cp),
	}
}
