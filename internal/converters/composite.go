package converters

import (
	"github.com/KirkDiggler/gw2-api/internal/clients/gw2"
	"github.com/KirkDiggler/gw2-api/internal/entities/items"
	"github.com/KirkDiggler/gw2-api/internal/errors"
)

const (
	errRecordNil    = "item record is required"
	errSlotNil      = "infusion slot is required"
	errInfixNil     = "infix upgrade is required"
	errAttributeNil = "combat attribute is required"
	errBuffNil      = "combat buff is required"
)

// ConvertInfusionSlot converts a single infusion slot
func ConvertInfusionSlot(slot *gw2.InfusionSlot) (items.InfusionSlot, error) {
	if slot == nil {
		return items.InfusionSlot{}, errors.InvalidArgument(errSlotNil)
	}
	return infusionSlot(slot), nil
}

// ConvertInfusionSlots converts every slot of an infusion_slots list. A nil
// list converts to nil.
func ConvertInfusionSlots(slots []gw2.InfusionSlot) []items.InfusionSlot {
	if len(slots) == 0 {
		return nil
	}
	out := make([]items.InfusionSlot, len(slots))
	for i := range slots {
		out[i] = infusionSlot(&slots[i])
	}
	return out
}

// ConvertInfixUpgrade converts an infix_upgrade sub-record. The buff and
// attributes convert independently of each other.
func ConvertInfixUpgrade(infix *gw2.InfixUpgrade) (*items.InfixUpgrade, error) {
	if infix == nil {
		return nil, errors.InvalidArgument(errInfixNil)
	}
	return infixUpgrade(infix), nil
}

// ConvertCombatAttribute converts one stat modifier. Unrecognized attribute
// names keep their modifier with AttributeUnknown as the kind.
func ConvertCombatAttribute(attr *gw2.Attribute) (items.CombatAttribute, error) {
	if attr == nil {
		return items.CombatAttribute{}, errors.InvalidArgument(errAttributeNil)
	}
	return combatAttribute(attr), nil
}

// ConvertCombatBuff converts the buff of an infix upgrade
func ConvertCombatBuff(buff *gw2.Buff) (*items.CombatBuff, error) {
	if buff == nil {
		return nil, errors.InvalidArgument(errBuffNil)
	}
	return combatBuff(buff), nil
}

func infusionSlot(slot *gw2.InfusionSlot) items.InfusionSlot {
	return items.InfusionSlot{
		ItemID: parseInt("infusion_slots.item_id", slot.ItemID),
		Flags:  ConvertInfusionSlotFlags(slot.Flags),
	}
}

func infixUpgrade(infix *gw2.InfixUpgrade) *items.InfixUpgrade {
	out := &items.InfixUpgrade{}
	if infix.Buff != nil {
		out.Buff = combatBuff(infix.Buff)
	}
	if len(infix.Attributes) > 0 {
		out.Attributes = make([]items.CombatAttribute, len(infix.Attributes))
		for i := range infix.Attributes {
			out.Attributes[i] = combatAttribute(&infix.Attributes[i])
		}
	}
	return out
}

// optionalInfix converts infix when present
func optionalInfix(infix *gw2.InfixUpgrade) *items.InfixUpgrade {
	if infix == nil {
		return nil
	}
	return infixUpgrade(infix)
}

func combatAttribute(attr *gw2.Attribute) items.CombatAttribute {
	return items.CombatAttribute{
		Kind:     ConvertAttributeKind(attr.Attribute),
		Modifier: parseInt("attributes.modifier", attr.Modifier),
	}
}

func combatBuff(buff *gw2.Buff) *items.CombatBuff {
	return &items.CombatBuff{
		SkillID:     parseInt("buff.skill_id", buff.SkillID),
		Description: buff.Description,
	}
}

// applyUpgrades copies the suffix ids and infusion slots of an upgradable
// sub-record
func applyUpgrades(dst *items.UpgradeSlots, src *gw2.Upgrades) {
	dst.SuffixItemID = parseInt("suffix_item_id", src.SuffixItemID)
	dst.SecondarySuffixItemID = parseInt("secondary_suffix_item_id", src.SecondarySuffixItemID)
	dst.InfusionSlots = ConvertInfusionSlots(src.InfusionSlots)
}
