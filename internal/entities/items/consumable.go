package items

import "time"

// Consumable is implemented by every consumable variant
type Consumable interface {
	Item
	Consumable() *ConsumableBase
}

// ConsumableBase holds the fields every consumable carries
type ConsumableBase struct {
	Base
}

// Consumable returns the consumable fields
func (c *ConsumableBase) Consumable() *ConsumableBase {
	return c
}

// AppearanceChanger changes the appearance of a character
type AppearanceChanger struct{ ConsumableBase }

// Alcohol is a drink
type Alcohol struct{ ConsumableBase }

// ContractNpc summons an NPC
type ContractNpc struct{ ConsumableBase }

// Food grants a nourishment effect
type Food struct {
	ConsumableBase
	Effect   string        `json:"effect,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}

// GenericConsumable is a consumable with an effect and no family
type GenericConsumable struct {
	ConsumableBase
	Effect   string        `json:"effect,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}

// HalloweenConsumable is a seasonal consumable
type HalloweenConsumable struct{ ConsumableBase }

// ImmediateConsumable takes effect when acquired
type ImmediateConsumable struct{ ConsumableBase }

// Transmutation applies one of its skins to an item
type Transmutation struct {
	ConsumableBase
	SkinIDs []int `json:"skin_ids,omitempty"`
}

// UnTransmutation restores the default skin of an item
type UnTransmutation struct{ ConsumableBase }

// UpgradeRemoval removes an upgrade from an item
type UpgradeRemoval struct{ ConsumableBase }

// Utility grants an enhancement effect
type Utility struct {
	ConsumableBase
	Effect   string        `json:"effect,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}

// UnknownConsumable is used for consumable types this module does not know
type UnknownConsumable struct{ ConsumableBase }

// Unlocker is implemented by consumables that unlock account content
type Unlocker interface {
	Consumable
	Unlocker() *UnlockerBase
}

// UnlockerBase holds the fields every unlocker carries
type UnlockerBase struct {
	ConsumableBase
}

// Unlocker returns the unlocker fields
func (u *UnlockerBase) Unlocker() *UnlockerBase {
	return u
}

// BagSlotUnlocker unlocks a bag slot
type BagSlotUnlocker struct{ UnlockerBase }

// BankTabUnlocker unlocks a bank tab
type BankTabUnlocker struct{ UnlockerBase }

// CollectibleCapacityUnlocker raises collectible storage capacity
type CollectibleCapacityUnlocker struct{ UnlockerBase }

// ContentUnlocker unlocks account content
type ContentUnlocker struct{ UnlockerBase }

// CraftingRecipeUnlocker unlocks one or more recipes
type CraftingRecipeUnlocker struct {
	UnlockerBase
	RecipeID       int   `json:"recipe_id,omitempty"`
	ExtraRecipeIDs []int `json:"extra_recipe_ids,omitempty"`
}

// DyeUnlocker unlocks a dye color
type DyeUnlocker struct {
	UnlockerBase
	ColorID int `json:"color_id,omitempty"`
}

// UnknownUnlocker is used for unlock types this module does not know
type UnknownUnlocker struct{ UnlockerBase }
