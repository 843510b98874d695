// Package reward turns a combat victory into loot, gold, and experience.
// Selection is a pure function over weighted tables plus an injected roller.
package reward

import (
	"github.com/wanderforge/wander-api/internal/entities"
	"github.com/wanderforge/wander-api/internal/errors"
	"github.com/wanderforge/wander-api/internal/pkg/rng"
)

// Drop count bounds per victory
const (
	DefaultDropCount = 1
	MaxDropCount     = 10
)

// Currency and XP formula constants. Both payouts are strictly monotonic in
// combat level; the exact constants are a balancing choice.
const (
	goldPerTier  = 25
	goldPerLevel = 8
	xpPerTier    = 50
	xpPerLevel   = 12

	levelsPerTier = 10
)

// Drop is one selected loot entry with its final cosmetic style
type Drop struct {
	MaterialID string          `json:"material_id"`
	Rarity     entities.Rarity `json:"rarity"`
	Theme      string          `json:"theme"`
	StyleID    string          `json:"style_id"`
}

// Rewards is the full victory settlement
type Rewards struct {
	Drops []Drop `json:"drops"`
	Gold  int64  `json:"gold"`
	XP    int64  `json:"xp"`
}

// TierForLevel buckets a combat level into a loot/enemy tier: levels 1-10
// are tier 1, 11-20 tier 2, and so on.
func TierForLevel(level int) int {
	if level < 1 {
		return 1
	}
	return (level-1)/levelsPerTier + 1
}

// Gold computes the gold payout for defeating an enemy of the given tier at
// the given combat level.
func Gold(enemyTier, combatLevel int) int64 {
	return int64(goldPerTier*enemyTier + goldPerLevel*combatLevel)
}

// XP computes the experience payout for defeating an enemy of the given
// tier at the given combat level.
func XP(enemyTier, combatLevel int) int64 {
	return int64(xpPerTier*enemyTier + xpPerLevel*combatLevel)
}

// ResolveStyle applies style inheritance: loot generated from a non-normal
// enemy carries the enemy's cosmetic style instead of the requested one.
func ResolveStyle(requestedStyle, enemyStyle string) string {
	if enemyStyle != "" && enemyStyle != entities.StyleNormal {
		return enemyStyle
	}
	if requestedStyle == "" {
		return entities.StyleNormal
	}
	return requestedStyle
}

// SelectLoot filters the pool entries down to the tier for the given combat
// level, scales each entry's base weight by the tier-weight multiplier, and
// draws count entries (with replacement) using the roller. An empty filtered
// pool yields no drops, not an error.
func SelectLoot(
	entries []entities.LootPoolEntry,
	tierWeights entities.TierWeights,
	combatLevel int,
	requestedStyle string,
	enemyStyle string,
	count int,
	roller rng.Roller,
) ([]Drop, error) {
	if count == 0 {
		count = DefaultDropCount
	}
	if count < 1 || count > MaxDropCount {
		return nil, errors.InvalidArgumentf(
			"drop count must be between 1 and %d, got %d", MaxDropCount, count)
	}

	tier := TierForLevel(combatLevel)
	style := ResolveStyle(requestedStyle, enemyStyle)

	type candidate struct {
		entry  entities.LootPoolEntry
		weight float64
	}

	var pool []candidate
	var totalWeight float64
	for _, e := range entries {
		if e.Tier != tier || e.Weight <= 0 {
			continue
		}
		multiplier, ok := tierWeights[e.Tier]
		if !ok {
			multiplier = 1.0
		}
		w := float64(e.Weight) * multiplier
		if w <= 0 {
			continue
		}
		pool = append(pool, candidate{entry: e, weight: w})
		totalWeight += w
	}

	if len(pool) == 0 {
		return nil, nil
	}

	drops := make([]Drop, 0, count)
	for i := 0; i < count; i++ {
		roll := roller.Float64() * totalWeight
		picked := pool[len(pool)-1].entry
		for _, c := range pool {
			if roll < c.weight {
				picked = c.entry
				break
			}
			roll -= c.weight
		}
		drops = append(drops, Drop{
			MaterialID: picked.MaterialID,
			Rarity:     picked.Rarity,
			Theme:      picked.Theme,
			StyleID:    style,
		})
	}

	return drops, nil
}
