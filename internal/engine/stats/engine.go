// Package stats derives absolute item and equipment stats from normalized
// bases, levels, rarity multipliers, and material deltas. All functions are
// pure; balancing lives here so combat and crafting agree on power numbers.
package stats

import (
	"math"

	"github.com/wanderforge/wander-api/internal/entities"
	"github.com/wanderforge/wander-api/internal/errors"
)

// statPointsPerLevel converts a normalized base into absolute stats:
// one level is worth 10 stat points spread across the vector.
const statPointsPerLevel = 10.0

// rarityMultipliers scale a normalized base before level conversion
var rarityMultipliers = map[entities.Rarity]float64{
	entities.RarityCommon:    1.0,
	entities.RarityUncommon:  1.25,
	entities.RarityRare:      1.5,
	entities.RarityEpic:      1.75,
	entities.RarityLegendary: 2.0,
}

// RarityMultiplier returns the stat multiplier for a rarity grade
func RarityMultiplier(r entities.Rarity) (float64, error) {
	m, ok := rarityMultipliers[r]
	if !ok {
		return 0, errors.InvalidArgumentf("unknown rarity: %q", r)
	}
	return m, nil
}

// ComputeItemStats derives absolute stats from a normalized base, a level,
// and up to three socketed materials:
//
//	result = base * level * 10 + sum(material deltas)
//
// with each component rounded to 2 decimals. Results are not clamped;
// negative components are valid (self-damage themes).
func ComputeItemStats(base entities.Stats, level int, materials []entities.Material) (entities.Stats, error) {
	if level < 1 {
		return entities.Stats{}, errors.InvalidArgumentf("item level must be at least 1, got %d", level)
	}
	if !base.IsNormalized() {
		return entities.Stats{}, errors.InvalidArgumentf(
			"base stats must sum to 1.0 within %.2f tolerance, got %.4f",
			entities.NormalizedTolerance, base.Sum())
	}
	if len(materials) > entities.MaxMaterialSlots {
		return entities.Stats{}, errors.InvalidArgumentf(
			"at most %d materials may be applied, got %d",
			entities.MaxMaterialSlots, len(materials))
	}

	result := base.Scale(float64(level) * statPointsPerLevel)
	for _, m := range materials {
		result = result.Add(m.StatModifiers)
	}
	return result.Rounded(), nil
}

// ComputeItemStatsForLevel derives an item's stats at an arbitrary level,
// applying the item's rarity multiplier to its normalized base first.
func ComputeItemStatsForLevel(item *entities.Item, level int) (entities.Stats, error) {
	multiplier, err := RarityMultiplier(item.Rarity)
	if err != nil {
		return entities.Stats{}, err
	}
	return ComputeItemStats(item.BaseStats.Scale(multiplier), level, item.AppliedMaterials())
}

// EquipmentStats is the aggregate of a loadout
type EquipmentStats struct {
	Total      entities.Stats
	BySlot     map[entities.EquipmentSlot]entities.Stats
	ItemCount  int
	TotalLevel int
}

// ComputeEquipmentStats aggregates equipped item stats. The per-slot map
// holds a zero vector for empty slots; the total is the rounded sum of all
// per-item computed stats. Aggregation is additive and order-independent.
func ComputeEquipmentStats(equipped []entities.EquippedItem) (*EquipmentStats, error) {
	if len(equipped) > entities.NumEquipmentSlots {
		return nil, errors.InvalidArgumentf(
			"at most %d items may be equipped, got %d",
			entities.NumEquipmentSlots, len(equipped))
	}

	bySlot := make(map[entities.EquipmentSlot]entities.Stats, entities.NumEquipmentSlots)
	for _, slot := range entities.AllEquipmentSlots() {
		bySlot[slot] = entities.Stats{}
	}

	out := &EquipmentStats{BySlot: bySlot}
	seen := make(map[entities.EquipmentSlot]bool, len(equipped))

	for _, eq := range equipped {
		if !eq.Slot.IsValid() {
			return nil, errors.InvalidArgumentf("unknown equipment slot: %q", eq.Slot)
		}
		if seen[eq.Slot] {
			return nil, errors.InvalidArgumentf("duplicate equipment slot: %q", eq.Slot)
		}
		seen[eq.Slot] = true

		if eq.Item == nil {
			continue
		}

		itemStats, err := ComputeItemStatsForLevel(eq.Item, eq.Item.Level)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to compute stats for item %s", eq.Item.ID)
		}

		out.BySlot[eq.Slot] = itemStats
		out.Total = out.Total.Add(itemStats)
		out.ItemCount++
		out.TotalLevel += eq.Item.Level
	}

	out.Total = out.Total.Rounded()
	return out, nil
}

// ValidateMaterialModifiers checks the balance law over a set of materials
// applied to one item. The running combined sum is checked after each
// material, so the error names whichever material first pushes the
// cumulative sum outside tolerance, along with that material's own sum.
func ValidateMaterialModifiers(materials []entities.Material) error {
	const floatSlack = 1e-9

	cumulative := 0.0
	for _, m := range materials {
		sum := m.StatModifiers.Sum()
		cumulative += sum
		if math.Abs(cumulative) > entities.NormalizedTolerance+floatSlack {
			return errors.InvalidArgumentf(
				"material %s has unbalanced stat modifiers: sum is %g, must be 0 within %.2f",
				m.ID, sum, entities.NormalizedTolerance).
				WithMeta("material_id", m.ID).
				WithMeta("modifier_sum", sum)
		}
	}
	return nil
}
