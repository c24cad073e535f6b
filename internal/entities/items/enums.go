package items

// Rarity is the rarity tier of an item
type Rarity int

// Rarities in ascending order. RarityUnknown is the zero value.
const (
	RarityUnknown Rarity = iota
	RarityJunk
	RarityBasic
	RarityFine
	RarityMasterwork
	RarityRare
	RarityExotic
	RarityAscended
	RarityLegendary
)

var rarityNames = [...]string{"Unknown", "Junk", "Basic", "Fine", "Masterwork", "Rare", "Exotic", "Ascended", "Legendary"}

// String returns the rarity name
func (r Rarity) String() string {
	return enumName(int(r), rarityNames[:])
}

// MarshalText encodes the rarity as its name
func (r Rarity) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// DamageType is the damage type of a weapon
type DamageType int

// Damage types. DamageTypeUnknown is the zero value.
const (
	DamageTypeUnknown DamageType = iota
	DamageTypeChoking
	DamageTypeFire
	DamageTypeIce
	DamageTypeLightning
	DamageTypePhysical
)

var damageTypeNames = [...]string{"Unknown", "Choking", "Fire", "Ice", "Lightning", "Physical"}

// String returns the damage type name
func (d DamageType) String() string {
	return enumName(int(d), damageTypeNames[:])
}

// MarshalText encodes the damage type as its name
func (d DamageType) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// WeightClass is the weight class of armor
type WeightClass int

// Weight classes. WeightClassUnknown is the zero value.
const (
	WeightClassUnknown WeightClass = iota
	WeightClassClothing
	WeightClassLight
	WeightClassMedium
	WeightClassHeavy
)

var weightClassNames = [...]string{"Unknown", "Clothing", "Light", "Medium", "Heavy"}

// String returns the weight class name
func (w WeightClass) String() string {
	return enumName(int(w), weightClassNames[:])
}

// MarshalText encodes the weight class as its name
func (w WeightClass) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// AttributeKind is one of the ten stats an infix upgrade can modify
type AttributeKind int

// Attribute kinds. AttributeUnknown is the zero value.
const (
	AttributeUnknown AttributeKind = iota
	AttributeAgonyResistance
	AttributeBoonDuration
	AttributeConditionDamage
	AttributeConditionDuration
	AttributeCritDamage
	AttributeHealing
	AttributePower
	AttributePrecision
	AttributeToughness
	AttributeVitality
)

var attributeNames = [...]string{
	"Unknown",
	"AgonyResistance",
	"BoonDuration",
	"ConditionDamage",
	"ConditionDuration",
	"CritDamage",
	"Healing",
	"Power",
	"Precision",
	"Toughness",
	"Vitality",
}

// String returns the attribute name
func (a AttributeKind) String() string {
	return enumName(int(a), attributeNames[:])
}

// MarshalText encodes the attribute as its name
func (a AttributeKind) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func enumName(v int, names []string) string {
	if v < 0 || v >= len(names) {
		return names[0]
	}
	return names[v]
}
