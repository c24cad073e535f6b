package items

// UpgradeComponent is implemented by every upgrade component variant
type UpgradeComponent interface {
	Item
	UpgradeComponent() *UpgradeComponentBase
}

// UpgradeComponentBase holds the fields every upgrade component carries
type UpgradeComponentBase struct {
	Base
	UpgradeFlags         UpgradeComponentFlags `json:"upgrade_flags"`
	InfusionUpgradeFlags InfusionSlotFlags     `json:"infusion_upgrade_flags"`
	InfixUpgrade         *InfixUpgrade         `json:"infix_upgrade,omitempty"`
	Suffix               string                `json:"suffix,omitempty"`
}

// UpgradeComponent returns the upgrade component fields
func (u *UpgradeComponentBase) UpgradeComponent() *UpgradeComponentBase {
	return u
}

// DefaultUpgradeComponent is a generic upgrade such as an infusion or jewel
type DefaultUpgradeComponent struct{ UpgradeComponentBase }

// Gem is a universal upgrade gem
type Gem struct{ UpgradeComponentBase }

// Rune is an armor upgrade with set bonuses
type Rune struct {
	UpgradeComponentBase
	Bonuses []string `json:"bonuses,omitempty"`
}

// Sigil is a weapon upgrade
type Sigil struct{ UpgradeComponentBase }

// UnknownUpgradeComponent is used for upgrade types this module does not know
type UnknownUpgradeComponent struct{ UpgradeComponentBase }
