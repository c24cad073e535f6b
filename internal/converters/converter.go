// Package converters turns GW2 item_details wire records into the typed item
// model.
//
// Every function here is pure. Dispatch tables are package-level maps that
// are never written after init, so conversions are safe to run from any
// number of goroutines. A nil record is a caller bug and fails with
// errors.InvalidArgument; anything the API sends that this package does not
// recognize degrades to a zero value or an Unknown variant and is reported
// through metrics and slog instead.
package converters

//go:generate mockgen -destination=mock/mock_converter.go -package=convertersmock github.com/KirkDiggler/gw2-api/internal/converters Converter

import (
	"github.com/KirkDiggler/gw2-api/internal/clients/gw2"
	"github.com/KirkDiggler/gw2-api/internal/entities/items"
	"github.com/KirkDiggler/gw2-api/internal/errors"
)

// Converter converts wire records into items
type Converter interface {
	// Convert converts a single record.
	// Returns errors.InvalidArgument for a nil record.
	Convert(record *gw2.ItemDetails) (items.Item, error)

	// ConvertAll converts records in order.
	// Returns errors.InvalidArgument, with the failing index in the error
	// meta, when any record is nil.
	ConvertAll(records []*gw2.ItemDetails) ([]items.Item, error)
}

type converter struct{}

// New returns the default Converter
func New() Converter {
	return &converter{}
}

func (c *converter) Convert(record *gw2.ItemDetails) (items.Item, error) {
	return ConvertItem(record)
}

func (c *converter) ConvertAll(records []*gw2.ItemDetails) ([]items.Item, error) {
	out := make([]items.Item, 0, len(records))
	for i, record := range records {
		item, err := ConvertItem(record)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", i).WithMeta("index", i)
		}
		out = append(out, item)
	}
	return out, nil
}
