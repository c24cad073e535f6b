package converters

import (
	"github.com/KirkDiggler/gw2-api/internal/clients/gw2"
	"github.com/KirkDiggler/gw2-api/internal/entities/items"
	"github.com/KirkDiggler/gw2-api/internal/errors"
)

type weaponConverter func(*gw2.Weapon) items.Weapon

// newWeapon builds an empty weapon variant. No weapon type carries fields of
// its own.
func newWeapon[T any, P interface {
	*T
	items.Weapon
}](*gw2.Weapon) items.Weapon {
	return P(new(T))
}

var weaponConverters = map[string]weaponConverter{
	"Axe":          newWeapon[items.Axe],
	"Dagger":       newWeapon[items.Dagger],
	"Focus":        newWeapon[items.Focus],
	"Greatsword":   newWeapon[items.Greatsword],
	"Hammer":       newWeapon[items.Hammer],
	"Harpoon":      newWeapon[items.Harpoon],
	"LongBow":      newWeapon[items.LongBow],
	"Mace":         newWeapon[items.Mace],
	"Pistol":       newWeapon[items.Pistol],
	"Rifle":        newWeapon[items.Rifle],
	"Scepter":      newWeapon[items.Scepter],
	"Shield":       newWeapon[items.Shield],
	"ShortBow":     newWeapon[items.ShortBow],
	"Speargun":     newWeapon[items.Speargun],
	"Staff":        newWeapon[items.Staff],
	"Sword":        newWeapon[items.Sword],
	"Torch":        newWeapon[items.Torch],
	"Trident":      newWeapon[items.Trident],
	"Warhorn":      newWeapon[items.Warhorn],
	"Toy":          newWeapon[items.Toy],
	"TwoHandedToy": newWeapon[items.TwoHandedToy],
	"SmallBundle":  newWeapon[items.SmallBundle],
	"LargeBundle":  newWeapon[items.LargeBundle],
}

// ConvertWeapon converts the weapon sub-record of record. Item fields from
// the top level are left to ConvertItem, except the default skin.
func ConvertWeapon(record *gw2.ItemDetails) (items.Weapon, error) {
	if record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}

	wire := record.Weapon
	if wire == nil {
		return &items.UnknownWeapon{}, nil
	}

	weapon := lookup(weaponConverters, wire.Type, kindWeaponType, newWeapon[items.UnknownWeapon])(wire)

	base := weapon.Weapon()
	base.DefaultSkinID = parseInt("default_skin", record.DefaultSkin)
	base.DamageType = ConvertDamageType(wire.DamageType)
	base.MinimumPower = parseInt("weapon.min_power", wire.MinPower)
	base.MaximumPower = parseInt("weapon.max_power", wire.MaxPower)
	base.Defense = parseInt("weapon.defense", wire.Defense)
	base.InfixUpgrade = optionalInfix(wire.InfixUpgrade)
	applyUpgrades(&base.UpgradeSlots, &wire.Upgrades)

	return weapon, nil
}
