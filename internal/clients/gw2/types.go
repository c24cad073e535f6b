package gw2

// ItemDetails is the item_details.json payload as the API sends it.
// Scalars arrive as strings and flag sets as string arrays; conversion to
// typed values happens in the converters, never here.
type ItemDetails struct {
	ItemID            string   `json:"item_id"`
	Name              string   `json:"name"`
	Description       string   `json:"description,omitempty"`
	Type              string   `json:"type"`
	Level             string   `json:"level"`
	Rarity            string   `json:"rarity"`
	VendorValue       string   `json:"vendor_value"`
	IconFileID        string   `json:"icon_file_id,omitempty"`
	IconFileSignature string   `json:"icon_file_signature,omitempty"`
	DefaultSkin       string   `json:"default_skin,omitempty"`
	GameTypes         []string `json:"game_types,omitempty"`
	Flags             []string `json:"flags,omitempty"`
	Restrictions      []string `json:"restrictions,omitempty"`

	// Only the sub-record matching Type is populated.
	Armor            *Armor            `json:"armor,omitempty"`
	Back             *Back             `json:"back,omitempty"`
	Bag              *Bag              `json:"bag,omitempty"`
	Consumable       *Consumable       `json:"consumable,omitempty"`
	Container        *Container        `json:"container,omitempty"`
	Gathering        *Gathering        `json:"gathering,omitempty"`
	Gizmo            *Gizmo            `json:"gizmo,omitempty"`
	Tool             *Tool             `json:"tool,omitempty"`
	Trinket          *Trinket          `json:"trinket,omitempty"`
	UpgradeComponent *UpgradeComponent `json:"upgrade_component,omitempty"`
	Weapon           *Weapon           `json:"weapon,omitempty"`
}

// Upgrades holds the fields shared by every upgradable sub-record
type Upgrades struct {
	InfusionSlots         []InfusionSlot `json:"infusion_slots,omitempty"`
	InfixUpgrade          *InfixUpgrade  `json:"infix_upgrade,omitempty"`
	SuffixItemID          string         `json:"suffix_item_id,omitempty"`
	SecondarySuffixItemID string         `json:"secondary_suffix_item_id,omitempty"`
}

// Weapon is the weapon sub-record
type Weapon struct {
	Type       string `json:"type"`
	DamageType string `json:"damage_type"`
	MinPower   string `json:"min_power"`
	MaxPower   string `json:"max_power"`
	Defense    string `json:"defense"`
	Upgrades
}

// Armor is the armor sub-record
type Armor struct {
	Type        string `json:"type"`
	WeightClass string `json:"weight_class"`
	Defense     string `json:"defense"`
	Upgrades
}

// Back is the back item sub-record
type Back struct {
	Upgrades
}

// Trinket is the trinket sub-record
type Trinket struct {
	Type string `json:"type"`
	Upgrades
}

// Bag is the bag sub-record
type Bag struct {
	NoSellOrSort string `json:"no_sell_or_sort"`
	Size         string `json:"size"`
}

// Consumable is the consumable sub-record. Unlock fields are only sent for
// Type "Unlock", effect fields for food, utility and generic consumables.
type Consumable struct {
	Type           string   `json:"type"`
	Description    string   `json:"description,omitempty"`
	DurationMs     string   `json:"duration_ms,omitempty"`
	// Duration is an older spelling of duration_ms, read when that is empty
	Duration       string   `json:"duration,omitempty"`
	UnlockType     string   `json:"unlock_type,omitempty"`
	RecipeID       string   `json:"recipe_id,omitempty"`
	ExtraRecipeIDs []string `json:"extra_recipe_ids,omitempty"`
	ColorID        string   `json:"color_id,omitempty"`
	Skins          []string `json:"skins,omitempty"`
}

// Container is the container sub-record
type Container struct {
	Type string `json:"type"`
}

// Gathering is the gathering tool sub-record
type Gathering struct {
	Type string `json:"type"`
}

// Gizmo is the gizmo sub-record
type Gizmo struct {
	Type string `json:"type"`
}

// Tool is the tool sub-record
type Tool struct {
	Type    string `json:"type"`
	Charges string `json:"charges"`
}

// UpgradeComponent is the upgrade component sub-record
type UpgradeComponent struct {
	Type                 string        `json:"type"`
	Flags                []string      `json:"flags,omitempty"`
	InfusionUpgradeFlags []string      `json:"infusion_upgrade_flags,omitempty"`
	InfixUpgrade         *InfixUpgrade `json:"infix_upgrade,omitempty"`
	Suffix               string        `json:"suffix,omitempty"`
	Bonuses              []string      `json:"bonuses,omitempty"`
}

// InfusionSlot is one entry of infusion_slots
type InfusionSlot struct {
	Flags  []string `json:"flags,omitempty"`
	ItemID string   `json:"item_id,omitempty"`
}

// InfixUpgrade is the infix_upgrade sub-record
type InfixUpgrade struct {
	Buff       *Buff       `json:"buff,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

// Buff is the buff granted by an infix upgrade
type Buff struct {
	SkillID     string `json:"skill_id"`
	Description string `json:"description,omitempty"`
}

// Attribute is one stat modifier of an infix upgrade
type Attribute struct {
	Attribute string `json:"attribute"`
	Modifier  string `json:"modifier"`
}

// itemsResponse is the items.json envelope
type itemsResponse struct {
	Items []int `json:"items"`
}

// errorResponse is the envelope the API sends with non-2xx responses
type errorResponse struct {
	Error   int    `json:"error"`
	Product int    `json:"product,omitempty"`
	Module  int    `json:"module,omitempty"`
	Line    int    `json:"line,omitempty"`
	Text    string `json:"text"`
}
