package converters

import (
	"github.com/KirkDiggler/gw2-api/internal/entities/items"
)

var rarities = map[string]items.Rarity{
	"Junk":       items.RarityJunk,
	"Basic":      items.RarityBasic,
	"Fine":       items.RarityFine,
	"Masterwork": items.RarityMasterwork,
	"Rare":       items.RarityRare,
	"Exotic":     items.RarityExotic,
	"Ascended":   items.RarityAscended,
	"Legendary":  items.RarityLegendary,
}

var damageTypes = map[string]items.DamageType{
	"Choking":   items.DamageTypeChoking,
	"Fire":      items.DamageTypeFire,
	"Ice":       items.DamageTypeIce,
	"Lightning": items.DamageTypeLightning,
	"Physical":  items.DamageTypePhysical,
}

var weightClasses = map[string]items.WeightClass{
	"Clothing": items.WeightClassClothing,
	"Light":    items.WeightClassLight,
	"Medium":   items.WeightClassMedium,
	"Heavy":    items.WeightClassHeavy,
}

var attributeKinds = map[string]items.AttributeKind{
	"AgonyResistance":   items.AttributeAgonyResistance,
	"BoonDuration":      items.AttributeBoonDuration,
	"ConditionDamage":   items.AttributeConditionDamage,
	"ConditionDuration": items.AttributeConditionDuration,
	"CritDamage":        items.AttributeCritDamage,
	"Healing":           items.AttributeHealing,
	"Power":             items.AttributePower,
	"Precision":         items.AttributePrecision,
	"Toughness":         items.AttributeToughness,
	"Vitality":          items.AttributeVitality,
}

// ConvertRarity converts a rarity literal. Unknown and empty values give
// RarityUnknown.
func ConvertRarity(value string) items.Rarity {
	return convertEnum(rarities, value, kindRarity)
}

// ConvertDamageType converts a damage_type literal
func ConvertDamageType(value string) items.DamageType {
	return convertEnum(damageTypes, value, kindDamageType)
}

// ConvertWeightClass converts a weight_class literal
func ConvertWeightClass(value string) items.WeightClass {
	return convertEnum(weightClasses, value, kindWeightClass)
}

// ConvertAttributeKind converts an infix attribute name
func ConvertAttributeKind(value string) items.AttributeKind {
	return convertEnum(attributeKinds, value, kindAttribute)
}

// convertEnum maps value through table. An empty value is an absent field
// and is not reported.
func convertEnum[T any](table map[string]T, value, kind string) T {
	if v, ok := table[value]; ok {
		return v
	}
	if value != "" {
		reportUnknown(kind, value)
	}
	var zero T
	return zero
}
