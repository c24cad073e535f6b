// Package items provides the cache of raw GW2 item records
package items

//go:generate mockgen -destination=mock/mock_repository.go -package=itemsmock github.com/KirkDiggler/gw2-api/internal/repositories/items Repository

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/gw2-api/internal/clients/gw2"
	"github.com/KirkDiggler/gw2-api/internal/errors"
)

const (
	keyPrefix = "gw2:item:"

	errLanguageEmpty = "language cannot be empty"
	errItemIDInvalid = "item ID must be positive"
	errRecordNil     = "record cannot be nil"
)

// Repository stores wire records per language. Records are kept as the API
// sent them, so a change in conversion applies to cached items too.
type Repository interface {
	// Get retrieves a cached record
	// Returns errors.InvalidArgument for an empty language or id below 1
	// Returns errors.NotFound if the record is not cached or has expired
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores a record, replacing any cached copy
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Delete evicts a record. Deleting a record that is not cached is not an
	// error.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting a record
type GetInput struct {
	Language string
	ItemID   int
}

// GetOutput defines the output for getting a record
type GetOutput struct {
	Record   *gw2.ItemDetails
	CachedAt time.Time
}

// PutInput defines the input for storing a record
type PutInput struct {
	Language string
	ItemID   int
	Record   *gw2.ItemDetails
}

// PutOutput defines the output for storing a record
type PutOutput struct {
	CachedAt time.Time
}

// DeleteInput defines the input for evicting a record
type DeleteInput struct {
	Language string
	ItemID   int
}

// DeleteOutput defines the output for evicting a record
type DeleteOutput struct{}

// Key returns the cache key of a record
func Key(language string, itemID int) string {
	return fmt.Sprintf("%s%s:%d", keyPrefix, language, itemID)
}

// ErrNotCached is the error Get returns on a miss
func ErrNotCached(language string, itemID int) error {
	return errors.NotFoundf("item %d (%s) not cached", itemID, language)
}

func validateKey(language string, itemID int) error {
	if language == "" {
		return errors.InvalidArgument(errLanguageEmpty)
	}
	if itemID < 1 {
		return errors.InvalidArgument(errItemIDInvalid)
	}
	return nil
}

func validatePut(input PutInput) error {
	if err := validateKey(input.Language, input.ItemID); err != nil {
		return err
	}
	if input.Record == nil {
		return errors.InvalidArgument(errRecordNil)
	}
	return nil
}

// entry is what gets serialized to the cache
type entry struct {
	Record   *gw2.ItemDetails `json:"record"`
	CachedAt time.Time        `json:"cached_at"`
}
