package entities

// Rarity grades items and materials
type Rarity string

// Rarity grades from common to legendary
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// IsValid checks if the rarity is a known grade
func (r Rarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	default:
		return false
	}
}

// StyleNormal is the default cosmetic style for enemies and materials.
// Loot generated from a non-normal enemy inherits the enemy's style.
const StyleNormal = "normal"

// MaxMaterialSlots is the number of material sockets on an item
const MaxMaterialSlots = 3

// Material is a craftable stat-modifying component. Its StatModifiers are a
// delta whose components must sum to 0 within tolerance (balance law).
type Material struct {
	ID            string `json:"id"`
	Rarity        Rarity `json:"rarity"`
	Theme         string `json:"theme"`
	StyleID       string `json:"style_id"`
	StatModifiers Stats  `json:"stat_modifiers"`
}

// AppliedMaterial is a material socketed into an item slot
type AppliedMaterial struct {
	Material  Material `json:"material"`
	SlotIndex int      `json:"slot_index"` // [0, MaxMaterialSlots)
}

// Item is a piece of equipment. BaseStats are normalized; CurrentStats are
// the derived absolute values for the item's level, rarity, and materials.
type Item struct {
	ID           string                               `json:"id"`
	Name         string                               `json:"name,omitempty"`
	Level        int                                  `json:"level"`
	Rarity       Rarity                               `json:"rarity"`
	BaseStats    Stats                                `json:"base_stats"`
	Materials    [MaxMaterialSlots]*AppliedMaterial   `json:"materials"`
	CurrentStats Stats                                `json:"current_stats"`
}

// AppliedMaterials returns the socketed materials in slot order
func (i *Item) AppliedMaterials() []Material {
	out := make([]Material, 0, MaxMaterialSlots)
	for _, am := range i.Materials {
		if am != nil {
			out = append(out, am.Material)
		}
	}
	return out
}

// ApplyMaterial sockets a material at the given slot. The slot must be in
// range and unoccupied.
func (i *Item) ApplyMaterial(m Material, slot int) bool {
	if slot < 0 || slot >= MaxMaterialSlots || i.Materials[slot] != nil {
		return false
	}
	i.Materials[slot] = &AppliedMaterial{Material: m, SlotIndex: slot}
	return true
}
