package dashboard

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/Topethedop/stock-dashboard/internal/domain/stock"
	"github.com/Topethedop/stock-dashboard/internal/domain/watchlist"
)

// Snapshot is the result of one poll
type Snapshot struct {
	Stocks      []stock.Quote     `json:"stocks"`
	Leaderboard stock.Leaderboard `json:"leaderboard"`
	Events      []string          `json:"events"`
}

// Config holds dashboard tuning
type Config struct {
	ThresholdPct float64
	LogCapacity  int
}

// Service aggregates quotes for the watchlist and owns the event log
type Service struct {
	watchlist watchlist.Repository
	provider  stock.QuoteProvider
	events    *EventLog
	threshold decimal.Decimal
	now       func() time.Time
}

// NewService creates a new dashboard service
func NewService(repo watchlist.Repository, provider stock.QuoteProvider, cfg Config) *Service {
	return &Service{
		watchlist: repo,
		provider:  provider,
		events:    NewEventLog(cfg.LogCapacity),
		threshold: decimal.NewFromFloat(cfg.ThresholdPct),
		now:       time.Now,
	}
}

// ProviderName names the configured quote provider
func (s *Service) ProviderName() string {
	return s.provider.Name()
}

// Watchlist returns the current watchlist
func (s *Service) Watchlist(ctx context.Context) ([]string, error) {
	return s.watchlist.List(ctx)
}

// AddTicker adds symbol to the watchlist and returns the resulting list
func (s *Service) AddTicker(ctx context.Context, symbol string) ([]string, error) {
	list, _, err := s.watchlist.Add(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("add ticker: %w", err)
	}
	return list, nil
}

// Poll fetches every watched symbol sequentially and builds a Snapshot.
// A provider error aborts the poll; events recorded before it are kept.
func (s *Service) Poll(ctx context.Context) (*Snapshot, error) {
	symbols, err := s.watchlist.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}

	start := s.now()
	quotes := make([]stock.Quote, 0, len(symbols))

	for _, symbol := range symbols {
		raw, err := s.provider.GetQuote(ctx, symbol)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", symbol, err)
		}

		q := stock.NewQuote(*raw)
		q.Symbol = symbol
		quotes = append(quotes, q)

		// threshold applies to the unrounded change
		if raw.ChangePercent().Abs().GreaterThanOrEqual(s.threshold) {
			entry := FormatEvent(s.now(), q)
			s.events.Append(entry)
			log.Info().
				Str("symbol", symbol).
				Float64("change_percent", q.ChangePercent).
				Msg("Large move recorded")
		}
	}

	log.Debug().
		Str("provider", s.provider.Name()).
		Int("symbols", len(symbols)).
		Dur("elapsed", s.now().Sub(start)).
		Msg("Poll complete")

	return &Snapshot{
		Stocks:      quotes,
		Leaderboard: BuildLeaderboard(quotes),
		Events:      s.events.Newest(),
	}, nil
}

// FormatEvent renders "[HH:MM:SS] SYMBOL spiked up X%" or "... dropped X%"
func FormatEvent(at time.Time, q stock.Quote) string {
	action := "dropped"
	if q.Direction == stock.DirectionUp {
		action = "spiked up"
	}
	return fmt.Sprintf("[%s] %s %s %s%%", at.Format("15:04:05"), q.Symbol, action, formatPercent(q.ChangePercent))
}

// formatPercent prints the shortest form with at least one fractional digit
func formatPercent(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
