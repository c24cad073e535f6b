package items

// Trinket is implemented by every trinket variant
type Trinket interface {
	Upgradable
	Trinket() *TrinketBase
}

// TrinketBase holds the fields every trinket carries
type TrinketBase struct {
	Base
	UpgradeSlots
	InfixUpgrade *InfixUpgrade `json:"infix_upgrade,omitempty"`
}

// Trinket returns the trinket fields
func (t *TrinketBase) Trinket() *TrinketBase {
	return t
}

// Accessory is an earring or accessory
type Accessory struct{ TrinketBase }

// Amulet is an amulet
type Amulet struct{ TrinketBase }

// Ring is a ring
type Ring struct{ TrinketBase }

// UnknownTrinket is used for trinket types this module does not know
type UnknownTrinket struct{ TrinketBase }
