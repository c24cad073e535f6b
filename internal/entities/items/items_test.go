package items_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gw2-api/internal/entities/items"
)

type ItemsTestSuite struct {
	suite.Suite
}

func TestItemsSuite(t *testing.T) {
	suite.Run(t, new(ItemsTestSuite))
}

func (s *ItemsTestSuite) TestCapabilities() {
	testCases := []struct {
		name       string
		item       items.Item
		skinnable  bool
		upgradable bool
	}{
		{"sword", &items.Sword{}, true, true},
		{"boots", &items.Boots{}, true, true},
		{"backpack", &items.Backpack{}, true, true},
		{"ring", &items.Ring{}, false, true},
		{"mining pick", &items.MiningPick{}, true, false},
		{"food", &items.Food{}, false, false},
		{"sigil", &items.Sigil{}, false, false},
		{"trophy", &items.Trophy{}, false, false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, skinnable := tc.item.(items.Skinnable)
			_, upgradable := tc.item.(items.Upgradable)
			s.Equal(tc.skinnable, skinnable)
			s.Equal(tc.upgradable, upgradable)
		})
	}
}

func (s *ItemsTestSuite) TestCategoryInterfaces() {
	var weapon items.Weapon = &items.UnknownWeapon{}
	weapon.Weapon().MinimumPower = 10
	s.Equal(10, weapon.Weapon().MinimumPower)

	var unlocker items.Unlocker = &items.DyeUnlocker{ColorID: 5}
	var consumable items.Consumable = unlocker
	consumable.ItemBase().Name = "Dye"
	s.Equal("Dye", unlocker.ItemBase().Name)
}

func (s *ItemsTestSuite) TestTypeName() {
	s.Equal("Sword", items.TypeName(&items.Sword{}))
	s.Equal("CraftingRecipeUnlocker", items.TypeName(&items.CraftingRecipeUnlocker{}))
	s.Equal("", items.TypeName(nil))
}

func (s *ItemsTestSuite) TestEnumStrings() {
	s.Equal("Exotic", items.RarityExotic.String())
	s.Equal("Unknown", items.Rarity(99).String())
	s.Equal("Physical", items.DamageTypePhysical.String())
	s.Equal("Heavy", items.WeightClassHeavy.String())
	s.Equal("CritDamage", items.AttributeCritDamage.String())
}

func (s *ItemsTestSuite) TestFlagNames() {
	flags := items.ItemFlagNoSell | items.ItemFlagSoulbindOnAcquire
	s.Equal([]string{"NoSell", "SoulbindOnAcquire"}, flags.Names())
	s.Equal("NoSell|SoulbindOnAcquire", flags.String())
	s.True(flags.Has(items.ItemFlagNoSell))
	s.False(flags.Has(items.ItemFlagUnique))

	s.Empty(items.GameTypes(0).Names())
	s.Equal("Pve|Wvw", (items.GameTypePve | items.GameTypeWvw).String())
}

func (s *ItemsTestSuite) TestMarshalJSON() {
	sword := &items.Sword{}
	sword.ID = 1234
	sword.Rarity = items.RarityRare
	sword.Flags = items.ItemFlagNoSell
	sword.DamageType = items.DamageTypePhysical

	data, err := json.Marshal(sword)
	s.Require().NoError(err)

	var decoded map[string]any
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal(float64(1234), decoded["id"])
	s.Equal("Rare", decoded["rarity"])
	s.Equal("Physical", decoded["damage_type"])
	s.Equal([]any{"NoSell"}, decoded["flags"])
	s.Equal([]any{}, decoded["game_types"])
}
