package testutils

import (
	"github.com/KirkDiggler/gw2-api/internal/clients/gw2"
	"github.com/KirkDiggler/gw2-api/internal/testutils/builders"
)

// Item ids used across fixtures
const (
	SwordItemID = 1234
	FoodItemID  = 12452
	ZapItemID   = 46762
)

// SwordRecord is a rare sword with a sigil and a default skin
func SwordRecord() *gw2.ItemDetails {
	return builders.NewItemDetailsBuilder().
		WithID(SwordItemID).
		WithName("Berserker's Sword").
		WithRarity("Rare").
		WithDefaultSkin(123).
		WithWeapon("Sword", func(w *gw2.Weapon) {
			w.DamageType = "Physical"
			w.MinPower = "900"
			w.MaxPower = "1100"
			w.Defense = "0"
			w.SuffixItemID = "24574"
		}).
		Build()
}

// FoodRecord is a one hour magic find food
func FoodRecord() *gw2.ItemDetails {
	return builders.NewItemDetailsBuilder().
		WithID(FoodItemID).
		WithName("Bowl of Fruit Salad with Mint Garnish").
		WithRarity("Fine").
		WithConsumable("Food", func(c *gw2.Consumable) {
			c.Description = "+10% Magic Find"
			c.DurationMs = "3600000"
		}).
		Build()
}

// ZapRecord is a plain trophy with no sub-record
func ZapRecord() *gw2.ItemDetails {
	return builders.NewItemDetailsBuilder().
		WithID(ZapItemID).
		WithName("Zap").
		WithType("Trophy").
		WithFlags("SoulbindOnAcquire", "NoSell").
		Build()
}
