package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Topethedop/stock-dashboard/internal/api/middleware"
	"github.com/Topethedop/stock-dashboard/internal/api/response"
	"github.com/Topethedop/stock-dashboard/internal/domain/stock"
	"github.com/Topethedop/stock-dashboard/internal/domain/watchlist"
	"github.com/Topethedop/stock-dashboard/internal/service/dashboard"
)

// DashboardService is what the dashboard endpoints need from the service layer
type DashboardService interface {
	Poll(ctx context.Context) (*dashboard.Snapshot, error)
	AddTicker(ctx context.Context, symbol string) ([]string, error)
	ProviderName() string
}

// AddTickerResponse is the body of POST /api/add_ticker
type AddTickerResponse struct {
	Success   bool     `json:"success"`
	Watchlist []string `json:"watchlist"`
}

// DashboardHandler serves the dashboard page and its JSON API
type DashboardHandler struct {
	service DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Index handles GET /
func (h *DashboardHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Provider": h.service.ProviderName(),
	})
}

// Stocks handles GET /api/stocks
func (h *DashboardHandler) Stocks(c *gin.Context) {
	snap, err := h.service.Poll(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, stock.ErrProviderFailure):
			response.ExternalAPIError(c, h.service.ProviderName(), err)
		case errors.Is(err, watchlist.ErrStorageRead):
			response.StorageError(c, err)
		default:
			response.InternalError(c, err)
		}
		return
	}

	c.Set(middleware.SymbolCountKey, len(snap.Stocks))
	c.JSON(http.StatusOK, snap)
}

// AddTicker handles POST /api/add_ticker (form field "ticker")
func (h *DashboardHandler) AddTicker(c *gin.Context) {
	ticker, ok := c.GetPostForm("ticker")
	if !ok || strings.TrimSpace(ticker) == "" {
		response.ValidationError(c, []response.FieldError{
			{Field: "ticker", Message: "ticker is required"},
		})
		return
	}

	list, err := h.service.AddTicker(c.Request.Context(), ticker)
	if err != nil {
		if errors.Is(err, watchlist.ErrEmptySymbol) {
			response.ValidationError(c, []response.FieldError{
				{Field: "ticker", Message: err.Error()},
			})
			return
		}
		response.StorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, AddTickerResponse{
		Success:   true,
		Watchlist: list,
	})
}
