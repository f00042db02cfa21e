package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct{ store Pinger }

// NewHandler reports store reachability when store is non-nil.
func NewHandler(store Pinger) *Handler { return &Handler{store: store} }

func (h *Handler) Health(c echo.Context) error {
	body := map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	}
	if h.store == nil {
		return c.JSON(http.StatusOK, body)
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if err := h.store.PingContext(ctx); err != nil {
		body["status"] = "degraded"
		body["store"] = err.Error()
		return c.JSON(http.StatusServiceUnavailable, body)
	}
	body["store"] = "ok"
	return c.JSON(http.StatusOK, body)
}
