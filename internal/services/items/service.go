// Package items defines the interface for item lookups
package items

//go:generate mockgen -destination=mock/mock_service.go -package=itemsmock github.com/KirkDiggler/gw2-api/internal/services/items Service

import (
	"context"
	"time"

	"github.com/KirkDiggler/gw2-api/internal/clients/gw2"
	"github.com/KirkDiggler/gw2-api/internal/entities/items"
)

// Source tells where an item record came from
type Source string

// Record sources
const (
	SourceCache Source = "cache"
	SourceAPI   Source = "api"
)

// Service defines the interface for item operations
type Service interface {
	// GetItem returns one typed item, reading through the cache
	GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error)

	// GetItems returns typed items in the order of the requested ids
	GetItems(ctx context.Context, input *GetItemsInput) (*GetItemsOutput, error)

	// ListItemIDs returns every item id the API knows
	ListItemIDs(ctx context.Context, input *ListItemIDsInput) (*ListItemIDsOutput, error)

	// ConvertRecord converts a caller supplied wire record without any
	// lookup
	ConvertRecord(ctx context.Context, input *ConvertRecordInput) (*ConvertRecordOutput, error)
}

// GetItemInput defines the request for getting an item
type GetItemInput struct {
	ItemID int
	// Refresh skips the cache read. The fetched record is still cached.
	Refresh bool
}

// GetItemOutput defines the response for getting an item
type GetItemOutput struct {
	Item     items.Item
	Source   Source
	CachedAt time.Time
}

// GetItemsInput defines the request for getting several items
type GetItemsInput struct {
	ItemIDs []int
}

// GetItemsOutput defines the response for getting several items
type GetItemsOutput struct {
	Items []items.Item
}

// ListItemIDsInput defines the request for listing item ids
type ListItemIDsInput struct{}

// ListItemIDsOutput defines the response for listing item ids
type ListItemIDsOutput struct {
	ItemIDs []int
}

// ConvertRecordInput defines the request for converting a record
type ConvertRecordInput struct {
	Record *gw2.ItemDetails
}

// ConvertRecordOutput defines the response for converting a record
type ConvertRecordOutput struct {
	Item items.Item
}
