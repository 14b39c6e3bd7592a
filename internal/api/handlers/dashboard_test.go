package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Topethedop/stock-dashboard/internal/api/middleware"
	"github.com/Topethedop/stock-dashboard/internal/domain/stock"
	"github.com/Topethedop/stock-dashboard/internal/domain/watchlist"
	"github.com/Topethedop/stock-dashboard/internal/service/dashboard"
)

type stubService struct {
	snap    *dashboard.Snapshot
	pollErr error
	addErr  error
	added   []string
}

func (s *stubService) Poll(ctx context.Context) (*dashboard.Snapshot, error) {
	return s.snap, s.pollErr
}

func (s *stubService) AddTicker(ctx context.Context, symbol string) ([]string, error) {
	if s.addErr != nil {
		return nil, s.addErr
	}
	s.added = append(s.added, symbol)
	return []string{watchlist.Normalize(symbol)}, nil
}

func (s *stubService) ProviderName() string { return "stub" }

func newTestEngine(svc DashboardService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDashboardHandler(svc)

	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("dashboard.html").Parse(`provider={{ .Provider }}`)))
	r.GET("/", h.Index)
	r.GET("/api/stocks", h.Stocks)
	r.POST("/api/add_ticker", h.AddTicker)
	return r
}

func postForm(r http.Handler, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/add_ticker", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDashboardHandler_Index(t *testing.T) {
	r := newTestEngine(&stubService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "provider=stub", w.Body.String())
}

func TestDashboardHandler_Stocks(t *testing.T) {
	t.Run("empty snapshot serializes nulls and empty lists", func(t *testing.T) {
		r := newTestEngine(&stubService{snap: &dashboard.Snapshot{
			Stocks: []stock.Quote{},
			Events: []string{},
		}})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stocks", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"stocks":[],"leaderboard":{"top_gainer":null,"top_loser":null},"events":[]}`,
			w.Body.String())
	})

	t.Run("populated snapshot", func(t *testing.T) {
		q := stock.Quote{Symbol: "AAPL", Price: 110, ChangePercent: 10, Direction: stock.DirectionUp}
		r := newTestEngine(&stubService{snap: &dashboard.Snapshot{
			Stocks:      []stock.Quote{q},
			Leaderboard: stock.Leaderboard{TopGainer: &q, TopLoser: &q},
			Events:      []string{"[10:00:00] AAPL spiked up 10.0%"},
		}})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stocks", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

		stocks := body["stocks"].([]any)
		require.Len(t, stocks, 1)
		first := stocks[0].(map[string]any)
		assert.Equal(t, "AAPL", first["symbol"])
		assert.Equal(t, 110.0, first["price"])
		assert.Equal(t, 10.0, first["change_percent"])
		assert.Equal(t, "up", first["direction"])
	})

	t.Run("reports symbol count for access log", func(t *testing.T) {
		h := NewDashboardHandler(&stubService{snap: &dashboard.Snapshot{
			Stocks: []stock.Quote{{Symbol: "AAPL"}, {Symbol: "MSFT"}},
			Events: []string{},
		}})

		var count any
		r := gin.New()
		r.Use(func(c *gin.Context) {
			c.Next()
			count, _ = c.Get(middleware.SymbolCountKey)
		})
		r.GET("/api/stocks", h.Stocks)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stocks", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 2, count)
	})

	t.Run("provider failure is 502", func(t *testing.T) {
		r := newTestEngine(&stubService{pollErr: fmt.Errorf("fetch AAPL: %w", stock.ErrProviderFailure)})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stocks", nil))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "EXTERNAL_API_ERROR")
	})

	t.Run("other failure is 500", func(t *testing.T) {
		r := newTestEngine(&stubService{pollErr: errors.New("unexpected")})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stocks", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestDashboardHandler_AddTicker(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &stubService{}
		r := newTestEngine(svc)

		w := postForm(r, url.Values{"ticker": {"aapl"}})

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"watchlist":["AAPL"]}`, w.Body.String())
		assert.Equal(t, []string{"aapl"}, svc.added)
	})

	t.Run("missing ticker", func(t *testing.T) {
		r := newTestEngine(&stubService{})

		w := postForm(r, url.Values{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("blank ticker", func(t *testing.T) {
		r := newTestEngine(&stubService{})

		w := postForm(r, url.Values{"ticker": {"   "}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		r := newTestEngine(&stubService{addErr: fmt.Errorf("add ticker: %w", watchlist.ErrStorageWrite)})

		w := postForm(r, url.Values{"ticker": {"msft"}})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "STORAGE_ERROR")
	})
}
