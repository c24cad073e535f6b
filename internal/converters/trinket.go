package converters

import (
	"github.com/KirkDiggler/gw2-api/internal/clients/gw2"
	"github.com/KirkDiggler/gw2-api/internal/entities/items"
	"github.com/KirkDiggler/gw2-api/internal/errors"
)

type trinketConverter func(*gw2.Trinket) items.Trinket

func newTrinket[T any, P interface {
	*T
	items.Trinket
}](*gw2.Trinket) items.Trinket {
	return P(new(T))
}

var trinketConverters = map[string]trinketConverter{
	"Accessory": newTrinket[items.Accessory],
	"Amulet":    newTrinket[items.Amulet],
	"Ring":      newTrinket[items.Ring],
}

// ConvertTrinket converts the trinket sub-record of record. Trinkets have
// no skin.
func ConvertTrinket(record *gw2.ItemDetails) (items.Trinket, error) {
	if record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}

	wire := record.Trinket
	if wire == nil {
		return &items.UnknownTrinket{}, nil
	}

	trinket := lookup(trinketConverters, wire.Type, kindTrinketType, newTrinket[items.UnknownTrinket])(wire)

	base := trinket.Trinket()
	base.InfixUpgrade = optionalInfix(wire.InfixUpgrade)
	applyUpgrades(&base.UpgradeSlots, &wire.Upgrades)

	return trinket, nil
}
