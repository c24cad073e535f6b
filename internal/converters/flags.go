package converters

import (
	"github.com/KirkDiggler/gw2-api/internal/entities/items"
)

var gameTypes = map[string]items.GameTypes{
	"Activity": items.GameTypeActivity,
	"Dungeon":  items.GameTypeDungeon,
	"Pve":      items.GameTypePve,
	"Pvp":      items.GameTypePvp,
	"PvpLobby": items.GameTypePvpLobby,
	"Wvw":      items.GameTypeWvw,
}

var itemFlags = map[string]items.ItemFlags{
	"AccountBindOnUse":  items.ItemFlagAccountBindOnUse,
	"AccountBound":      items.ItemFlagAccountBound,
	"HideSuffix":        items.ItemFlagHideSuffix,
	"MonsterOnly":       items.ItemFlagMonsterOnly,
	"NoMysticForge":     items.ItemFlagNoMysticForge,
	"NoSalvage":         items.ItemFlagNoSalvage,
	"NoSell":            items.ItemFlagNoSell,
	"NotUpgradeable":    items.ItemFlagNotUpgradeable,
	"NoUnderwater":      items.ItemFlagNoUnderwater,
	"SoulbindOnAcquire": items.ItemFlagSoulbindOnAcquire,
	"SoulBindOnUse":     items.ItemFlagSoulBindOnUse,
	"Unique":            items.ItemFlagUnique,
}

var restrictions = map[string]items.ItemRestrictions{
	"Asura":        items.RestrictionAsura,
	"Charr":        items.RestrictionCharr,
	"Human":        items.RestrictionHuman,
	"Norn":         items.RestrictionNorn,
	"Sylvari":      items.RestrictionSylvari,
	"Elementalist": items.RestrictionElementalist,
	"Engineer":     items.RestrictionEngineer,
	"Guardian":     items.RestrictionGuardian,
	"Mesmer":       items.RestrictionMesmer,
	"Necromancer":  items.RestrictionNecromancer,
	"Ranger":       items.RestrictionRanger,
	"Revenant":     items.RestrictionRevenant,
	"Thief":        items.RestrictionThief,
	"Warrior":      items.RestrictionWarrior,
}

var infusionSlotFlags = map[string]items.InfusionSlotFlags{
	"Agony":      items.InfusionSlotAgony,
	"Defense":    items.InfusionSlotDefense,
	"Offense":    items.InfusionSlotOffense,
	"Utility":    items.InfusionSlotUtility,
	"Infusion":   items.InfusionSlotInfusion,
	"Enrichment": items.InfusionSlotEnrichment,
}

var upgradeComponentFlags = map[string]items.UpgradeComponentFlags{
	"Axe":         items.UpgradeAxe,
	"Dagger":      items.UpgradeDagger,
	"Focus":       items.UpgradeFocus,
	"Greatsword":  items.UpgradeGreatsword,
	"Hammer":      items.UpgradeHammer,
	"Harpoon":     items.UpgradeHarpoon,
	"LongBow":     items.UpgradeLongBow,
	"Mace":        items.UpgradeMace,
	"Pistol":      items.UpgradePistol,
	"Rifle":       items.UpgradeRifle,
	"Scepter":     items.UpgradeScepter,
	"Shield":      items.UpgradeShield,
	"ShortBow":    items.UpgradeShortBow,
	"Speargun":    items.UpgradeSpeargun,
	"Staff":       items.UpgradeStaff,
	"Sword":       items.UpgradeSword,
	"Torch":       items.UpgradeTorch,
	"Trident":     items.UpgradeTrident,
	"Warhorn":     items.UpgradeWarhorn,
	"HeavyArmor":  items.UpgradeHeavyArmor,
	"MediumArmor": items.UpgradeMediumArmor,
	"LightArmor":  items.UpgradeLightArmor,
	"Trinket":     items.UpgradeTrinket,
}

// ConvertGameType converts a single game type name. Unknown names give 0.
func ConvertGameType(value string) items.GameTypes {
	return convertFlag(gameTypes, value, kindGameType)
}

// ConvertGameTypes ORs every game type in values
func ConvertGameTypes(values []string) items.GameTypes {
	return convertFlags(values, ConvertGameType)
}

// ConvertItemFlag converts a single item flag name. Unknown names give 0.
func ConvertItemFlag(value string) items.ItemFlags {
	return convertFlag(itemFlags, value, kindItemFlag)
}

// ConvertItemFlags ORs every item flag in values
func ConvertItemFlags(values []string) items.ItemFlags {
	return convertFlags(values, ConvertItemFlag)
}

// ConvertItemRestriction converts a single restriction name. Unknown names
// give 0.
func ConvertItemRestriction(value string) items.ItemRestrictions {
	return convertFlag(restrictions, value, kindRestriction)
}

// ConvertItemRestrictions ORs every restriction in values
func ConvertItemRestrictions(values []string) items.ItemRestrictions {
	return convertFlags(values, ConvertItemRestriction)
}

// ConvertInfusionSlotFlag converts a single infusion slot flag. Unknown
// names give 0.
func ConvertInfusionSlotFlag(value string) items.InfusionSlotFlags {
	return convertFlag(infusionSlotFlags, value, kindInfusionSlotFlag)
}

// ConvertInfusionSlotFlags ORs every infusion slot flag in values
func ConvertInfusionSlotFlags(values []string) items.InfusionSlotFlags {
	return convertFlags(values, ConvertInfusionSlotFlag)
}

// ConvertUpgradeComponentFlag converts a single upgrade component flag.
// Unknown names give 0.
func ConvertUpgradeComponentFlag(value string) items.UpgradeComponentFlags {
	return convertFlag(upgradeComponentFlags, value, kindUpgradeComponentFlag)
}

// ConvertUpgradeComponentFlags ORs every upgrade component flag in values
func ConvertUpgradeComponentFlags(values []string) items.UpgradeComponentFlags {
	return convertFlags(values, ConvertUpgradeComponentFlag)
}

func convertFlag[T ~uint32](table map[string]T, value, kind string) T {
	if flag, ok := table[value]; ok {
		return flag
	}
	reportUnknown(kind, value)
	return 0
}

func convertFlags[T ~uint32](values []string, convert func(string) T) T {
	var out T
	for _, v := range values {
		out |= convert(v)
	}
	return out
}
