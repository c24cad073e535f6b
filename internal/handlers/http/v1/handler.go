// Package v1 serves the item service over HTTP
package v1

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KirkDiggler/gw2-api/internal/errors"
	"github.com/KirkDiggler/gw2-api/internal/services/items"
)

// maxBodyBytes bounds POSTed wire records
const maxBodyBytes = 1 << 20

// HandlerConfig holds dependencies for the item handler
type HandlerConfig struct {
	ItemService items.Service
	// ReadyCheck reports whether dependencies can serve traffic (optional)
	ReadyCheck func(ctx context.Context) error
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.ItemService == nil {
		return errors.InvalidArgument("item service is required")
	}
	return nil
}

// Handler serves the /v1 routes
type Handler struct {
	itemService items.Service
	readyCheck  func(ctx context.Context) error
}

// NewHandler creates a new item handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		itemService: cfg.ItemService,
		readyCheck:  cfg.ReadyCheck,
	}, nil
}

// Routes mounts the item routes on r
func (h *Handler) Routes(r chi.Router) {
	r.Get("/items", h.ListItems)
	r.Post("/items:convert", h.ConvertItem)
	r.Get("/items/{id}", h.GetItem)
	r.Get("/chatlinks/*", h.DecodeChatLink)
}

// Healthz reports liveness
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz reports readiness using the configured check
func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	if h.readyCheck != nil {
		if err := h.readyCheck(r.Context()); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Message: errors.GetMessage(err)})
			return
		}
	}
	respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
