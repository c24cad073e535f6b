package items

// Weapon is implemented by every weapon variant
type Weapon interface {
	Skinnable
	Upgradable
	Weapon() *WeaponBase
}

// WeaponBase holds the fields every weapon carries
type WeaponBase struct {
	Base
	SkinInfo
	UpgradeSlots
	DamageType   DamageType    `json:"damage_type"`
	MinimumPower int           `json:"min_power"`
	MaximumPower int           `json:"max_power"`
	Defense      int           `json:"defense"`
	InfixUpgrade *InfixUpgrade `json:"infix_upgrade,omitempty"`
}

// Weapon returns the weapon fields
func (w *WeaponBase) Weapon() *WeaponBase {
	return w
}

// Axe is a one-handed axe
type Axe struct{ WeaponBase }

// Dagger is a dagger
type Dagger struct{ WeaponBase }

// Focus is an off-hand focus
type Focus struct{ WeaponBase }

// Greatsword is a two-handed greatsword
type Greatsword struct{ WeaponBase }

// Hammer is a two-handed hammer
type Hammer struct{ WeaponBase }

// Harpoon is an underwater spear
type Harpoon struct{ WeaponBase }

// LongBow is a longbow
type LongBow struct{ WeaponBase }

// Mace is a mace
type Mace struct{ WeaponBase }

// Pistol is a pistol
type Pistol struct{ WeaponBase }

// Rifle is a rifle
type Rifle struct{ WeaponBase }

// Scepter is a scepter
type Scepter struct{ WeaponBase }

// Shield is a shield
type Shield struct{ WeaponBase }

// ShortBow is a short bow
type ShortBow struct{ WeaponBase }

// Speargun is an underwater speargun
type Speargun struct{ WeaponBase }

// Staff is a staff
type Staff struct{ WeaponBase }

// Sword is a one-handed sword
type Sword struct{ WeaponBase }

// Torch is an off-hand torch
type Torch struct{ WeaponBase }

// Trident is an underwater trident
type Trident struct{ WeaponBase }

// Warhorn is an off-hand warhorn
type Warhorn struct{ WeaponBase }

// Toy is a one-handed toy weapon
type Toy struct{ WeaponBase }

// TwoHandedToy is a two-handed toy weapon
type TwoHandedToy struct{ WeaponBase }

// SmallBundle is a small environmental bundle
type SmallBundle struct{ WeaponBase }

// LargeBundle is a large environmental bundle
type LargeBundle struct{ WeaponBase }

// UnknownWeapon is used for weapon types this module does not know
type UnknownWeapon struct{ WeaponBase }
