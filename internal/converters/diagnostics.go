package converters

import (
	"log/slog"

	"github.com/KirkDiggler/gw2-api/internal/metrics"
)

// Kinds of wire literal reported when a converter falls back to a default
const (
	kindItemType             = "item_type"
	kindWeaponType           = "weapon_type"
	kindArmorType            = "armor_type"
	kindTrinketType          = "trinket_type"
	kindConsumableType       = "consumable_type"
	kindUnlockType           = "unlock_type"
	kindContainerType        = "container_type"
	kindGizmoType            = "gizmo_type"
	kindGatheringType        = "gathering_type"
	kindToolType             = "tool_type"
	kindUpgradeComponentType = "upgrade_component_type"
	kindRarity               = "rarity"
	kindDamageType           = "damage_type"
	kindWeightClass          = "weight_class"
	kindAttribute            = "attribute"
	kindGameType             = "game_type"
	kindItemFlag             = "item_flag"
	kindRestriction          = "restriction"
	kindInfusionSlotFlag     = "infusion_slot_flag"
	kindUpgradeComponentFlag = "upgrade_component_flag"
	kindMalformedNumber      = "malformed_number"
	kindMalformedBool        = "malformed_bool"
	kindMalformedChatLink    = "malformed_chat_link"
)

// reportUnknown records a wire literal that has no mapping. The converted
// value is unaffected.
func reportUnknown(kind, value string) {
	metrics.ConversionUnknownTotal.WithLabelValues(kind).Inc()
	slog.Warn("Unknown value from GW2 API, using default", "kind", kind, "value", value)
}

// reportMalformed records a scalar field that could not be parsed
func reportMalformed(kind, field, value string) {
	metrics.ConversionUnknownTotal.WithLabelValues(kind).Inc()
	slog.Debug("Malformed value from GW2 API, leaving default", "field", field, "value", value)
}

// lookup returns the table entry for key, or fallback after reporting the
// miss. Keys match exactly, including case.
func lookup[F any](table map[string]F, key, kind string, fallback F) F {
	if f, ok := table[key]; ok {
		return f
	}
	reportUnknown(kind, key)
	return fallback
}
