package v1

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/KirkDiggler/gw2-api/internal/chatlink"
	"github.com/KirkDiggler/gw2-api/internal/clients/gw2"
	"github.com/KirkDiggler/gw2-api/internal/errors"
	"github.com/KirkDiggler/gw2-api/internal/services/items"
)

// ListItems answers GET /v1/items. Without ids it lists every known item
// id; with ?ids=1,2,3 it returns those items in order.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("ids")
	if raw == "" {
		out, err := h.itemService.ListItemIDs(r.Context(), &items.ListItemIDsInput{})
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, ItemIDsResponse{ItemIDs: out.ItemIDs})
		return
	}

	ids, err := parseIDs(raw)
	if err != nil {
		respondError(w, r, err)
		return
	}

	out, err := h.itemService.GetItems(r.Context(), &items.GetItemsInput{ItemIDs: ids})
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := ItemsResponse{Items: make([]ItemResponse, len(out.Items))}
	for i, item := range out.Items {
		resp.Items[i] = newItemResponse(item)
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetItem answers GET /v1/items/{id}. ?refresh=true bypasses the cache.
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	refresh := false
	if v := r.URL.Query().Get("refresh"); v != "" {
		refresh, err = strconv.ParseBool(v)
		if err != nil {
			respondError(w, r, errors.InvalidArgumentf("refresh must be a boolean, got %q", v))
			return
		}
	}

	out, err := h.itemService.GetItem(r.Context(), &items.GetItemInput{ItemID: id, Refresh: refresh})
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := newItemResponse(out.Item)
	resp.Source = out.Source
	if !out.CachedAt.IsZero() {
		cachedAt := out.CachedAt
		resp.CachedAt = &cachedAt
	}
	respondJSON(w, http.StatusOK, resp)
}

// ConvertItem answers POST /v1/items:convert with the typed form of the
// posted item_details record
func (h *Handler) ConvertItem(w http.ResponseWriter, r *http.Request) {
	record := &gw2.ItemDetails{}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(record); err != nil {
		respondError(w, r, errors.WrapWithCode(err, errors.CodeInvalidArgument, "request body is not an item record"))
		return
	}

	out, err := h.itemService.ConvertRecord(r.Context(), &items.ConvertRecordInput{Record: record})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, newItemResponse(out.Item))
}

// DecodeChatLink answers GET /v1/chatlinks/{code}. The code may be sent with
// or without the surrounding [& and ]; base64 codes can contain '/', so the
// whole remaining path is the code.
func (h *Handler) DecodeChatLink(w http.ResponseWriter, r *http.Request) {
	code, err := url.PathUnescape(chi.URLParam(r, "*"))
	if err != nil {
		respondError(w, r, errors.InvalidArgumentf("chat link %q is not a valid path segment", chi.URLParam(r, "*")))
		return
	}
	if !strings.HasPrefix(code, "[&") {
		code = "[&" + code + "]"
	}

	link, err := chatlink.Decode(code)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, newChatLinkResponse(link))
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id < 1 {
		return 0, errors.InvalidArgumentf("item id must be a positive integer, got %q", raw)
	}
	return id, nil
}

func parseIDs(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := parseID(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
