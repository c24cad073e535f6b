// Package builders provides test data builders for wire records
package builders

import (
	"strconv"

	"github.com/KirkDiggler/gw2-api/internal/clients/gw2"
)

// ItemDetailsBuilder provides a fluent interface for building test
// ItemDetails records
type ItemDetailsBuilder struct {
	record *gw2.ItemDetails
}

// NewItemDetailsBuilder creates a builder for a basic level 80 trophy
func NewItemDetailsBuilder() *ItemDetailsBuilder {
	return &ItemDetailsBuilder{
		record: &gw2.ItemDetails{
			ItemID:      "1",
			Name:        "Test Item",
			Type:        "Trophy",
			Level:       "80",
			Rarity:      "Basic",
			VendorValue: "0",
		},
	}
}

// WithID sets the item id
func (b *ItemDetailsBuilder) WithID(id int) *ItemDetailsBuilder {
	b.record.ItemID = strconv.Itoa(id)
	return b
}

// WithName sets the item name
func (b *ItemDetailsBuilder) WithName(name string) *ItemDetailsBuilder {
	b.record.Name = name
	return b
}

// WithType sets the top-level type discriminator
func (b *ItemDetailsBuilder) WithType(itemType string) *ItemDetailsBuilder {
	b.record.Type = itemType
	return b
}

// WithRarity sets the rarity literal
func (b *ItemDetailsBuilder) WithRarity(rarity string) *ItemDetailsBuilder {
	b.record.Rarity = rarity
	return b
}

// WithDefaultSkin sets the top-level default skin
func (b *ItemDetailsBuilder) WithDefaultSkin(skinID int) *ItemDetailsBuilder {
	b.record.DefaultSkin = strconv.Itoa(skinID)
	return b
}

// WithFlags sets the item flags
func (b *ItemDetailsBuilder) WithFlags(flags ...string) *ItemDetailsBuilder {
	b.record.Flags = flags
	return b
}

// WithIcon sets the icon file reference
func (b *ItemDetailsBuilder) WithIcon(fileID int, signature string) *ItemDetailsBuilder {
	b.record.IconFileID = strconv.Itoa(fileID)
	b.record.IconFileSignature = signature
	return b
}

// WithWeapon makes the record a weapon of weaponType. Optional edits run on
// the sub-record.
func (b *ItemDetailsBuilder) WithWeapon(weaponType string, edits ...func(*gw2.Weapon)) *ItemDetailsBuilder {
	b.record.Type = "Weapon"
	b.record.Weapon = &gw2.Weapon{Type: weaponType}
	for _, edit := range edits {
		edit(b.record.Weapon)
	}
	return b
}

// WithArmor makes the record armor of armorType
func (b *ItemDetailsBuilder) WithArmor(armorType, weightClass string, edits ...func(*gw2.Armor)) *ItemDetailsBuilder {
	b.record.Type = "Armor"
	b.record.Armor = &gw2.Armor{Type: armorType, WeightClass: weightClass}
	for _, edit := range edits {
		edit(b.record.Armor)
	}
	return b
}

// WithConsumable makes the record a consumable of consumableType
func (b *ItemDetailsBuilder) WithConsumable(consumableType string, edits ...func(*gw2.Consumable)) *ItemDetailsBuilder {
	b.record.Type = "Consumable"
	b.record.Consumable = &gw2.Consumable{Type: consumableType}
	for _, edit := range edits {
		edit(b.record.Consumable)
	}
	return b
}

// Build returns the record
func (b *ItemDetailsBuilder) Build() *gw2.ItemDetails {
	return b.record
}
