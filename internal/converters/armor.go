package converters

import (
	"github.com/KirkDiggler/gw2-api/internal/clients/gw2"
	"github.com/KirkDiggler/gw2-api/internal/entities/items"
	"github.com/KirkDiggler/gw2-api/internal/errors"
)

type armorConverter func(*gw2.Armor) items.Armor

func newArmor[T any, P interface {
	*T
	items.Armor
}](*gw2.Armor) items.Armor {
	return P(new(T))
}

var armorConverters = map[string]armorConverter{
	"Boots":       newArmor[items.Boots],
	"Coat":        newArmor[items.Coat],
	"Gloves":      newArmor[items.Gloves],
	"Helm":        newArmor[items.Helm],
	"HelmAquatic": newArmor[items.HelmAquatic],
	"Leggings":    newArmor[items.Leggings],
	"Shoulders":   newArmor[items.Shoulders],
}

// ConvertArmor converts the armor sub-record of record
func ConvertArmor(record *gw2.ItemDetails) (items.Armor, error) {
	if record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}

	wire := record.Armor
	if wire == nil {
		return &items.UnknownArmor{}, nil
	}

	armor := lookup(armorConverters, wire.Type, kindArmorType, newArmor[items.UnknownArmor])(wire)

	base := armor.Armor()
	base.DefaultSkinID = parseInt("default_skin", record.DefaultSkin)
	base.WeightClass = ConvertWeightClass(wire.WeightClass)
	base.Defense = parseInt("armor.defense", wire.Defense)
	base.InfixUpgrade = optionalInfix(wire.InfixUpgrade)
	applyUpgrades(&base.UpgradeSlots, &wire.Upgrades)

	return armor, nil
}
