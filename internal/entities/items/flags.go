package items

import (
	"encoding/json"
	"strings"
)

// GameTypes is the set of game modes an item can be used in
type GameTypes uint32

// Game type bits
const (
	GameTypeActivity GameTypes = 1 << iota
	GameTypeDungeon
	GameTypePve
	GameTypePvp
	GameTypePvpLobby
	GameTypeWvw
)

var gameTypeNames = []string{"Activity", "Dungeon", "Pve", "Pvp", "PvpLobby", "Wvw"}

// Has reports whether every bit of flag is set
func (g GameTypes) Has(flag GameTypes) bool { return g&flag == flag }

// Names lists the set flags in bit order
func (g GameTypes) Names() []string { return flagNames(uint32(g), gameTypeNames) }

func (g GameTypes) String() string { return strings.Join(g.Names(), "|") }

// MarshalJSON encodes the set as a list of names
func (g GameTypes) MarshalJSON() ([]byte, error) { return json.Marshal(g.Names()) }

// ItemFlags is the set of behavior flags of an item
type ItemFlags uint32

// Item flag bits
const (
	ItemFlagAccountBindOnUse ItemFlags = 1 << iota
	ItemFlagAccountBound
	ItemFlagHideSuffix
	ItemFlagMonsterOnly
	ItemFlagNoMysticForge
	ItemFlagNoSalvage
	ItemFlagNoSell
	ItemFlagNotUpgradeable
	ItemFlagNoUnderwater
	ItemFlagSoulbindOnAcquire
	ItemFlagSoulBindOnUse
	ItemFlagUnique
)

var itemFlagNames = []string{
	"AccountBindOnUse",
	"AccountBound",
	"HideSuffix",
	"MonsterOnly",
	"NoMysticForge",
	"NoSalvage",
	"NoSell",
	"NotUpgradeable",
	"NoUnderwater",
	"SoulbindOnAcquire",
	"SoulBindOnUse",
	"Unique",
}

// Has reports whether every bit of flag is set
func (f ItemFlags) Has(flag ItemFlags) bool { return f&flag == flag }

// Names lists the set flags in bit order
func (f ItemFlags) Names() []string { return flagNames(uint32(f), itemFlagNames) }

func (f ItemFlags) String() string { return strings.Join(f.Names(), "|") }

// MarshalJSON encodes the set as a list of names
func (f ItemFlags) MarshalJSON() ([]byte, error) { return json.Marshal(f.Names()) }

// ItemRestrictions is the set of races and professions allowed to use an
// item. An empty set means no restriction.
type ItemRestrictions uint32

// Restriction bits
const (
	RestrictionAsura ItemRestrictions = 1 << iota
	RestrictionCharr
	RestrictionHuman
	RestrictionNorn
	RestrictionSylvari
	RestrictionElementalist
	RestrictionEngineer
	RestrictionGuardian
	RestrictionMesmer
	RestrictionNecromancer
	RestrictionRanger
	RestrictionRevenant
	RestrictionThief
	RestrictionWarrior
)

var restrictionNames = []string{
	"Asura",
	"Charr",
	"Human",
	"Norn",
	"Sylvari",
	"Elementalist",
	"Engineer",
	"Guardian",
	"Mesmer",
	"Necromancer",
	"Ranger",
	"Revenant",
	"Thief",
	"Warrior",
}

// Has reports whether every bit of flag is set
func (r ItemRestrictions) Has(flag ItemRestrictions) bool { return r&flag == flag }

// Names lists the set flags in bit order
func (r ItemRestrictions) Names() []string { return flagNames(uint32(r), restrictionNames) }

func (r ItemRestrictions) String() string { return strings.Join(r.Names(), "|") }

// MarshalJSON encodes the set as a list of names
func (r ItemRestrictions) MarshalJSON() ([]byte, error) { return json.Marshal(r.Names()) }

// InfusionSlotFlags is the set of infusion kinds a slot accepts
type InfusionSlotFlags uint32

// Infusion slot bits
const (
	InfusionSlotAgony InfusionSlotFlags = 1 << iota
	InfusionSlotDefense
	InfusionSlotOffense
	InfusionSlotUtility
	InfusionSlotInfusion
	InfusionSlotEnrichment
)

var infusionSlotNames = []string{"Agony", "Defense", "Offense", "Utility", "Infusion", "Enrichment"}

// Has reports whether every bit of flag is set
func (f InfusionSlotFlags) Has(flag InfusionSlotFlags) bool { return f&flag == flag }

// Names lists the set flags in bit order
func (f InfusionSlotFlags) Names() []string { return flagNames(uint32(f), infusionSlotNames) }

func (f InfusionSlotFlags) String() string { return strings.Join(f.Names(), "|") }

// MarshalJSON encodes the set as a list of names
func (f InfusionSlotFlags) MarshalJSON() ([]byte, error) { return json.Marshal(f.Names()) }

// UpgradeComponentFlags is the set of equipment an upgrade fits into
type UpgradeComponentFlags uint32

// Upgrade component bits
const (
	UpgradeAxe UpgradeComponentFlags = 1 << iota
	UpgradeDagger
	UpgradeFocus
	UpgradeGreatsword
	UpgradeHammer
	UpgradeHarpoon
	UpgradeLongBow
	UpgradeMace
	UpgradePistol
	UpgradeRifle
	UpgradeScepter
	UpgradeShield
	UpgradeShortBow
	UpgradeSpeargun
	UpgradeStaff
	UpgradeSword
	UpgradeTorch
	UpgradeTrident
	UpgradeWarhorn
	UpgradeHeavyArmor
	UpgradeMediumArmor
	UpgradeLightArmor
	UpgradeTrinket
)

var upgradeComponentNames = []string{
	"Axe",
	"Dagger",
	"Focus",
	"Greatsword",
	"Hammer",
	"Harpoon",
	"LongBow",
	"Mace",
	"Pistol",
	"Rifle",
	"Scepter",
	"Shield",
	"ShortBow",
	"Speargun",
	"Staff",
	"Sword",
	"Torch",
	"Trident",
	"Warhorn",
	"HeavyArmor",
	"MediumArmor",
	"LightArmor",
	"Trinket",
}

// Has reports whether every bit of flag is set
func (f UpgradeComponentFlags) Has(flag UpgradeComponentFlags) bool { return f&flag == flag }

// Names lists the set flags in bit order
func (f UpgradeComponentFlags) Names() []string {
	return flagNames(uint32(f), upgradeComponentNames)
}

func (f UpgradeComponentFlags) String() string { return strings.Join(f.Names(), "|") }

// MarshalJSON encodes the set as a list of names
func (f UpgradeComponentFlags) MarshalJSON() ([]byte, error) { return json.Marshal(f.Names()) }

func flagNames(v uint32, names []string) []string {
	out := []string{}
	for i, name := range names {
		if v&(1<<uint(i)) != 0 {
			out = append(out, name)
		}
	}
	return out
}
