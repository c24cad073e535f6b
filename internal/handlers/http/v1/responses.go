package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/KirkDiggler/gw2-api/internal/chatlink"
	"github.com/KirkDiggler/gw2-api/internal/entities/items"
	"github.com/KirkDiggler/gw2-api/internal/errors"
	"github.com/KirkDiggler/gw2-api/internal/logger"
	itemsvc "github.com/KirkDiggler/gw2-api/internal/services/items"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// HealthResponse is the body of the health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ItemResponse wraps one typed item with its variant name
type ItemResponse struct {
	Type     string         `json:"type"`
	Source   itemsvc.Source `json:"source,omitempty"`
	CachedAt *time.Time     `json:"cached_at,omitempty"`
	Item     items.Item     `json:"item"`
}

// ItemsResponse is the body of a batch lookup
type ItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

// ItemIDsResponse is the body of an id listing
type ItemIDsResponse struct {
	ItemIDs []int `json:"item_ids"`
}

// ChatLinkResponse is a decoded item chat link
type ChatLinkResponse struct {
	ItemID                int `json:"item_id"`
	Quantity              int `json:"quantity"`
	SkinID                int `json:"skin_id,omitempty"`
	SuffixItemID          int `json:"suffix_item_id,omitempty"`
	SecondarySuffixItemID int `json:"secondary_suffix_item_id,omitempty"`
}

func newItemResponse(item items.Item) ItemResponse {
	return ItemResponse{Type: items.TypeName(item), Item: item}
}

func newChatLinkResponse(link chatlink.Item) ChatLinkResponse {
	return ChatLinkResponse(link)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already sent.
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// respondError renders err with the status of its code. Internal failures
// are logged and answered with a generic message.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	message := errors.GetMessage(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).ErrorContext(r.Context(), "Request failed",
			"method", r.Method, "path", r.URL.Path, "code", code, "error", err)
		if code == errors.CodeInternal {
			message = "internal error"
		}
	}

	respondJSON(w, status, ErrorResponse{Code: code, Message: message})
}
