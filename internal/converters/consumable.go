package converters

import (
	"time"

	"github.com/KirkDiggler/gw2-api/internal/clients/gw2"
	"github.com/KirkDiggler/gw2-api/internal/entities/items"
	"github.com/KirkDiggler/gw2-api/internal/errors"
)

type consumableConverter func(*gw2.Consumable) items.Consumable

func newConsumable[T any, P interface {
	*T
	items.Consumable
}](*gw2.Consumable) items.Consumable {
	return P(new(T))
}

var consumableConverters = map[string]consumableConverter{
	"AppearanceChange": newConsumable[items.AppearanceChanger],
	"Booze":            newConsumable[items.Alcohol],
	"ContractNpc":      newConsumable[items.ContractNpc],
	"Food":             convertFood,
	"Generic":          convertGenericConsumable,
	"Halloween":        newConsumable[items.HalloweenConsumable],
	"Immediate":        newConsumable[items.ImmediateConsumable],
	"Transmutation":    convertTransmutation,
	"Unlock":           convertUnlocker,
	"UnTransmutation":  newConsumable[items.UnTransmutation],
	"UpgradeRemoval":   newConsumable[items.UpgradeRemoval],
	"Utility":          convertUtility,
}

type unlockerConverter func(*gw2.Consumable) items.Unlocker

func newUnlocker[T any, P interface {
	*T
	items.Unlocker
}](*gw2.Consumable) items.Unlocker {
	return P(new(T))
}

var unlockerConverters = map[string]unlockerConverter{
	"BagSlot":             newUnlocker[items.BagSlotUnlocker],
	"BankTab":             newUnlocker[items.BankTabUnlocker],
	"CollectibleCapacity": newUnlocker[items.CollectibleCapacityUnlocker],
	"Content":             newUnlocker[items.ContentUnlocker],
	"CraftingRecipe":      convertCraftingRecipeUnlocker,
	"Dye":                 convertDyeUnlocker,
}

// ConvertConsumable converts the consumable sub-record of record. Unlock
// consumables dispatch a second time on unlock_type.
func ConvertConsumable(record *gw2.ItemDetails) (items.Consumable, error) {
	if record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}

	wire := record.Consumable
	if wire == nil {
		return &items.UnknownConsumable{}, nil
	}

	return lookup(consumableConverters, wire.Type, kindConsumableType, newConsumable[items.UnknownConsumable])(wire), nil
}

func convertUnlocker(wire *gw2.Consumable) items.Consumable {
	return lookup(unlockerConverters, wire.UnlockType, kindUnlockType, newUnlocker[items.UnknownUnlocker])(wire)
}

func consumableDuration(wire *gw2.Consumable) time.Duration {
	if wire.DurationMs == "" && wire.Duration != "" {
		return parseDurationMs("consumable.duration", wire.Duration)
	}
	return parseDurationMs("consumable.duration_ms", wire.DurationMs)
}

func convertFood(wire *gw2.Consumable) items.Consumable {
	return &items.Food{
		Effect:   wire.Description,
		Duration: consumableDuration(wire),
	}
}

func convertUtility(wire *gw2.Consumable) items.Consumable {
	return &items.Utility{
		Effect:   wire.Description,
		Duration: consumableDuration(wire),
	}
}

func convertGenericConsumable(wire *gw2.Consumable) items.Consumable {
	return &items.GenericConsumable{
		Effect:   wire.Description,
		Duration: consumableDuration(wire),
	}
}

func convertTransmutation(wire *gw2.Consumable) items.Consumable {
	return &items.Transmutation{
		SkinIDs: parseInts("consumable.skins", wire.Skins),
	}
}

func convertCraftingRecipeUnlocker(wire *gw2.Consumable) items.Unlocker {
	return &items.CraftingRecipeUnlocker{
		RecipeID:       parseInt("consumable.recipe_id", wire.RecipeID),
		ExtraRecipeIDs: parseInts("consumable.extra_recipe_ids", wire.ExtraRecipeIDs),
	}
}

func convertDyeUnlocker(wire *gw2.Consumable) items.Unlocker {
	return &items.DyeUnlocker{
		ColorID: parseInt("consumable.color_id", wire.ColorID),
	}
}
