package converters

import (
	"fmt"

	"github.com/KirkDiggler/gw2-api/internal/chatlink"
	"github.com/KirkDiggler/gw2-api/internal/clients/gw2"
	"github.com/KirkDiggler/gw2-api/internal/entities/items"
	"github.com/KirkDiggler/gw2-api/internal/errors"
	"github.com/KirkDiggler/gw2-api/internal/metrics"
)

// IconURLTemplate is the render service path of an icon, formatted with the
// file signature then the file id
const IconURLTemplate = "https://render.guildwars2.com/file/%s/%d.png"

type itemConverter func(*gw2.ItemDetails) (items.Item, error)

// category lifts a category converter into an itemConverter
func category[T items.Item](convert func(*gw2.ItemDetails) (T, error)) itemConverter {
	return func(record *gw2.ItemDetails) (items.Item, error) {
		item, err := convert(record)
		if err != nil {
			return nil, err
		}
		return item, nil
	}
}

func newItem[T any, P interface {
	*T
	items.Item
}](*gw2.ItemDetails) (items.Item, error) {
	return P(new(T)), nil
}

var itemConverters = map[string]itemConverter{
	"Armor":            category(ConvertArmor),
	"Back":             convertBackpack,
	"Bag":              convertBag,
	"Consumable":       category(ConvertConsumable),
	"Container":        category(ConvertContainer),
	"CraftingMaterial": newItem[items.CraftingMaterial],
	"Gathering":        category(ConvertGatheringTool),
	"Gizmo":            category(ConvertGizmo),
	"MiniPet":          newItem[items.Miniature],
	"Tool":             category(ConvertTool),
	"Trait":            newItem[items.TraitGuide],
	"Trinket":          category(ConvertTrinket),
	"Trophy":           newItem[items.Trophy],
	"UpgradeComponent": category(ConvertUpgradeComponent),
	"Weapon":           category(ConvertWeapon),
}

// ConvertItem converts a complete item_details record. The top-level type
// picks the variant, then the common fields, icon and chat link are filled
// in whatever the variant turned out to be.
func ConvertItem(record *gw2.ItemDetails) (items.Item, error) {
	if record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}

	item, err := lookup(itemConverters, record.Type, kindItemType, newItem[items.UnknownItem])(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to convert item %s", record.ItemID)
	}

	base := item.ItemBase()
	base.ID = parseInt("item_id", record.ItemID)
	base.Name = record.Name
	base.Description = record.Description
	base.Level = parseInt("level", record.Level)
	base.Rarity = ConvertRarity(record.Rarity)
	base.VendorValue = parseInt("vendor_value", record.VendorValue)
	base.GameTypes = ConvertGameTypes(record.GameTypes)
	base.Flags = ConvertItemFlags(record.Flags)
	base.Restrictions = ConvertItemRestrictions(record.Restrictions)
	base.Icon = convertIcon(record)
	base.ChatLink = itemChatLink(item)

	metrics.ItemConversionsTotal.WithLabelValues(items.TypeName(item)).Inc()

	return item, nil
}

func convertBackpack(record *gw2.ItemDetails) (items.Item, error) {
	back := &items.Backpack{}
	back.DefaultSkinID = parseInt("default_skin", record.DefaultSkin)
	if wire := record.Back; wire != nil {
		back.InfixUpgrade = optionalInfix(wire.InfixUpgrade)
		applyUpgrades(&back.UpgradeSlots, &wire.Upgrades)
	}
	return back, nil
}

func convertBag(record *gw2.ItemDetails) (items.Item, error) {
	bag := &items.Bag{}
	if wire := record.Bag; wire != nil {
		bag.Size = parseInt("bag.size", wire.Size)
		bag.NoSellOrSort = parseBool("bag.no_sell_or_sort", wire.NoSellOrSort)
	}
	return bag, nil
}

// convertIcon builds the icon reference. The URL needs both halves.
func convertIcon(record *gw2.ItemDetails) items.Icon {
	icon := items.Icon{
		FileID:        parseInt("icon_file_id", record.IconFileID),
		FileSignature: record.IconFileSignature,
	}
	if icon.FileID != 0 && icon.FileSignature != "" {
		icon.URL = fmt.Sprintf(IconURLTemplate, icon.FileSignature, icon.FileID)
	}
	return icon
}

// itemChatLink encodes the item and its upgrades. The default skin is not
// part of the link; the game applies it from the item id.
func itemChatLink(item items.Item) string {
	link := chatlink.Item{
		ItemID:   item.ItemBase().ID,
		Quantity: 1,
	}
	if link.ItemID == 0 {
		return ""
	}
	if upgradable, ok := item.(items.Upgradable); ok {
		slots := upgradable.Upgrades()
		link.SuffixItemID = slots.SuffixItemID
		link.SecondarySuffixItemID = slots.SecondarySuffixItemID
	}
	if err := link.Validate(); err != nil {
		reportMalformed(kindMalformedChatLink, "chat_link", err.Error())
		return ""
	}
	return link.Encode()
}
