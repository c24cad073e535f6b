// Package items holds the typed Guild Wars 2 item model.
//
// Every item variant embeds Base. Families of related variants share a
// category interface (Weapon, Armor, Consumable, ...) and each family has
// exactly one Unknown variant for discriminators this module does not
// recognize yet. Skinnable and Upgradable are capabilities that cut across
// families.
package items

import "reflect"

// Item is implemented by every item variant
type Item interface {
	ItemBase() *Base
}

// TypeName returns the variant name of an item, such as "Sword"
func TypeName(item Item) string {
	t := reflect.TypeOf(item)
	if t == nil {
		return ""
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// Base holds the fields common to all items
type Base struct {
	ID           int              `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	Level        int              `json:"level"`
	Rarity       Rarity           `json:"rarity"`
	VendorValue  int              `json:"vendor_value"`
	GameTypes    GameTypes        `json:"game_types"`
	Flags        ItemFlags        `json:"flags"`
	Restrictions ItemRestrictions `json:"restrictions"`
	Icon         Icon             `json:"icon"`
	ChatLink     string           `json:"chat_link,omitempty"`
}

// ItemBase returns the common item fields
func (b *Base) ItemBase() *Base {
	return b
}

// Icon references an image on the render service
type Icon struct {
	FileID        int    `json:"file_id,omitempty"`
	FileSignature string `json:"file_signature,omitempty"`
	URL           string `json:"url,omitempty"`
}

// Skinnable is implemented by items that have a default skin
type Skinnable interface {
	Item
	Skin() *SkinInfo
}

// SkinInfo holds the default skin of a skinnable item
type SkinInfo struct {
	DefaultSkinID int `json:"default_skin_id,omitempty"`
}

// Skin returns the skin fields
func (s *SkinInfo) Skin() *SkinInfo {
	return s
}

// Upgradable is implemented by items that accept upgrade components and
// infusions
type Upgradable interface {
	Item
	Upgrades() *UpgradeSlots
}

// UpgradeSlots holds the upgrades applied to an upgradable item
type UpgradeSlots struct {
	SuffixItemID          int            `json:"suffix_item_id,omitempty"`
	SecondarySuffixItemID int            `json:"secondary_suffix_item_id,omitempty"`
	InfusionSlots         []InfusionSlot `json:"infusion_slots,omitempty"`
}

// Upgrades returns the upgrade fields
func (u *UpgradeSlots) Upgrades() *UpgradeSlots {
	return u
}

// InfusionSlot is a slot for an infusion. ItemID is 0 for an empty slot.
type InfusionSlot struct {
	ItemID int               `json:"item_id,omitempty"`
	Flags  InfusionSlotFlags `json:"flags"`
}

// InfixUpgrade is the fixed stat bonus of an item
type InfixUpgrade struct {
	Buff       *CombatBuff       `json:"buff,omitempty"`
	Attributes []CombatAttribute `json:"attributes,omitempty"`
}

// CombatBuff is a skill applied by an infix upgrade
type CombatBuff struct {
	SkillID     int    `json:"skill_id,omitempty"`
	Description string `json:"description,omitempty"`
}

// CombatAttribute is a single stat modifier
type CombatAttribute struct {
	Kind     AttributeKind `json:"kind"`
	Modifier int           `json:"modifier"`
}

// Backpack is a back piece
type Backpack struct {
	Base
	SkinInfo
	UpgradeSlots
	InfixUpgrade *InfixUpgrade `json:"infix_upgrade,omitempty"`
}

// Bag is an inventory bag
type Bag struct {
	Base
	Size         int  `json:"size"`
	NoSellOrSort bool `json:"no_sell_or_sort"`
}

// CraftingMaterial is a crafting ingredient
type CraftingMaterial struct {
	Base
}

// Miniature is a mini pet
type Miniature struct {
	Base
}

// TraitGuide is a trait unlock item
type TraitGuide struct {
	Base
}

// Trophy is a trophy item
type Trophy struct {
	Base
}

// UnknownItem is used for top-level types this module does not know
type UnknownItem struct {
	Base
}
