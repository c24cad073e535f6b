// Package gw2 is the client for the public Guild Wars 2 v1 item API
package gw2

//go:generate mockgen -destination=mock/mock_client.go -package=gw2mock github.com/KirkDiggler/gw2-api/internal/clients/gw2 Client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/KirkDiggler/gw2-api/internal/errors"
	"github.com/KirkDiggler/gw2-api/internal/metrics"
)

const (
	// DefaultBaseURL is the public v1 API root
	DefaultBaseURL = "https://api.guildwars2.com/v1/"

	endpointItemDetails = "item_details.json"
	endpointItems       = "items.json"

	maxErrorBody = 4 << 10
)

// SupportedLanguages are the languages the API translates item text into
var SupportedLanguages = []language.Tag{
	language.English,
	language.German,
	language.Spanish,
	language.French,
}

// Client fetches raw item records. Records are returned as the API sends
// them; see the converters package for the typed model.
type Client interface {
	// GetItemDetails fetches item_details.json for one item
	// Returns errors.InvalidArgument for ids below 1
	// Returns errors.NotFound when the API does not know the id
	// Returns errors.Unavailable when the API is down
	GetItemDetails(ctx context.Context, id int) (*ItemDetails, error)

	// ListItemIDs fetches every known item id
	ListItemIDs(ctx context.Context) ([]int, error)

	// Language is the base language code sent with every request
	Language() string
}

// Config contains configuration options for the GW2 client.
type Config struct {
	// BaseURL of the v1 API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// Language of item text (optional, defaults to "en")
	Language string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the client built from HTTPTimeout
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return errors.InvalidArgumentf("invalid base URL %q: %v", cfg.BaseURL, err)
	}

	lang, err := ParseLanguage(cfg.Language)
	if err != nil {
		return err
	}
	cfg.Language = lang

	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	return nil
}

// ParseLanguage resolves a BCP 47 tag to the base language code the API
// expects. Empty input gives "en".
func ParseLanguage(value string) (string, error) {
	if value == "" {
		return language.English.String(), nil
	}

	tag, err := language.Parse(value)
	if err != nil {
		return "", errors.InvalidArgumentf("invalid language %q", value)
	}

	base, _ := tag.Base()
	for _, supported := range SupportedLanguages {
		if supportedBase, _ := supported.Base(); supportedBase == base {
			return base.String(), nil
		}
	}
	return "", errors.InvalidArgumentf("language %q is not supported by the GW2 API", value)
}

type client struct {
	baseURL    string
	language   string
	httpClient *http.Client
}

// New creates a new GW2 client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:    cfg.BaseURL,
		language:   cfg.Language,
		httpClient: httpClient,
	}, nil
}

func (c *client) Language() string {
	return c.language
}

func (c *client) GetItemDetails(ctx context.Context, id int) (*ItemDetails, error) {
	if id < 1 {
		return nil, errors.InvalidArgumentf("item id must be positive, got %d", id)
	}

	query := url.Values{}
	query.Set("item_id", strconv.Itoa(id))
	query.Set("lang", c.language)

	var details ItemDetails
	if err := c.get(ctx, endpointItemDetails, query, &details); err != nil {
		return nil, errors.Wrapf(err, "failed to get item %d", id).WithMeta("item_id", id)
	}
	return &details, nil
}

func (c *client) ListItemIDs(ctx context.Context) ([]int, error) {
	var resp itemsResponse
	if err := c.get(ctx, endpointItems, nil, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}
	return resp.Items, nil
}

// get sends a GET to endpoint and decodes a 2xx body into out
func (c *client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	target := c.baseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return transportError(ctx, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Debug("Failed to close response body", "endpoint", endpoint, "error", closeErr)
		}
	}()

	metrics.APIRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode response")
	}
	return nil
}

// transportError maps a failed round trip. Context errors keep their own
// codes so callers can tell cancellation from an unreachable API.
func transportError(ctx context.Context, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		return errors.WrapWithCode(err, errors.CodeCanceled, "request canceled")
	case context.DeadlineExceeded:
		return errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "request timed out")
	}
	return errors.WrapWithCode(err, errors.CodeUnavailable, "GW2 API unreachable")
}

// statusError builds a coded error from a non-2xx response, using the
// API's error envelope text when there is one
func statusError(resp *http.Response) error {
	code := errors.FromHTTPStatus(resp.StatusCode)

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var envelope errorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Text != "" {
		return errors.Newf(code, "GW2 API: %s", envelope.Text).
			WithMeta("status", resp.StatusCode).
			WithMeta("api_error", envelope.Error)
	}

	return errors.Newf(code, "GW2 API returned %s", resp.Status).
		WithMeta("status", resp.StatusCode)
}
