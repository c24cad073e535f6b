package items

// Armor is implemented by every armor variant
type Armor interface {
	Skinnable
	Upgradable
	Armor() *ArmorBase
}

// ArmorBase holds the fields every armor piece carries
type ArmorBase struct {
	Base
	SkinInfo
	UpgradeSlots
	WeightClass  WeightClass   `json:"weight_class"`
	Defense      int           `json:"defense"`
	InfixUpgrade *InfixUpgrade `json:"infix_upgrade,omitempty"`
}

// Armor returns the armor fields
func (a *ArmorBase) Armor() *ArmorBase {
	return a
}

// Boots is foot armor
type Boots struct{ ArmorBase }

// Coat is chest armor
type Coat struct{ ArmorBase }

// Gloves is hand armor
type Gloves struct{ ArmorBase }

// Helm is head armor
type Helm struct{ ArmorBase }

// HelmAquatic is an underwater breather
type HelmAquatic struct{ ArmorBase }

// Leggings is leg armor
type Leggings struct{ ArmorBase }

// Shoulders is shoulder armor
type Shoulders struct{ ArmorBase }

// UnknownArmor is used for armor types this module does not know
type UnknownArmor struct{ ArmorBase }
