package converters

import (
	"github.com/KirkDiggler/gw2-api/internal/clients/gw2"
	"github.com/KirkDiggler/gw2-api/internal/entities/items"
	"github.com/KirkDiggler/gw2-api/internal/errors"
)

type upgradeComponentConverter func(*gw2.UpgradeComponent) items.UpgradeComponent

func newUpgradeComponent[T any, P interface {
	*T
	items.UpgradeComponent
}](*gw2.UpgradeComponent) items.UpgradeComponent {
	return P(new(T))
}

var upgradeComponentConverters = map[string]upgradeComponentConverter{
	"Default": newUpgradeComponent[items.DefaultUpgradeComponent],
	"Gem":     newUpgradeComponent[items.Gem],
	"Rune":    convertRune,
	"Sigil":   newUpgradeComponent[items.Sigil],
}

// ConvertUpgradeComponent converts the upgrade_component sub-record of
// record
func ConvertUpgradeComponent(record *gw2.ItemDetails) (items.UpgradeComponent, error) {
	if record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}

	wire := record.UpgradeComponent
	if wire == nil {
		return &items.UnknownUpgradeComponent{}, nil
	}

	upgrade := lookup(upgradeComponentConverters, wire.Type, kindUpgradeComponentType,
		newUpgradeComponent[items.UnknownUpgradeComponent])(wire)

	base := upgrade.UpgradeComponent()
	base.UpgradeFlags = ConvertUpgradeComponentFlags(wire.Flags)
	base.InfusionUpgradeFlags = ConvertInfusionSlotFlags(wire.InfusionUpgradeFlags)
	base.InfixUpgrade = optionalInfix(wire.InfixUpgrade)
	base.Suffix = wire.Suffix

	return upgrade, nil
}

func convertRune(wire *gw2.UpgradeComponent) items.UpgradeComponent {
	r := &items.Rune{}
	if len(wire.Bonuses) > 0 {
		r.Bonuses = append([]string(nil), wire.Bonuses...)
	}
	return r
}
