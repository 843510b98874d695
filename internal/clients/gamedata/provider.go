package gamedata

import (
	"context"

	"github.com/wanderforge/wander-api/internal/clients/external"
	"github.com/wanderforge/wander-api/internal/entities"
	"github.com/wanderforge/wander-api/internal/errors"
	"github.com/wanderforge/wander-api/internal/pkg/rng"
)

// Enemy tier scaling: each tier past the first adds half of the base combat
// stats and doubles down on HP.
const (
	tierStatStep = 0.5
	tierHPStep   = 1.0
)

// Config holds the dependencies for the catalog-backed providers
type Config struct {
	Catalog *Catalog
	Roller  rng.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Catalog == nil {
		return errors.InvalidArgument("catalog is required")
	}
	if c.Roller == nil {
		return errors.InvalidArgument("roller is required")
	}
	return nil
}

// Provider serves location and enemy lookups from a loaded catalog
type Provider struct {
	catalog *Catalog
	roller  rng.Roller
}

// NewProvider creates catalog-backed location and enemy providers
func NewProvider(cfg *Config) (*Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Provider{
		catalog: cfg.Catalog,
		roller:  cfg.Roller,
	}, nil
}

var (
	_ external.LocationProvider = (*Provider)(nil)
	_ external.EnemyProvider    = (*Provider)(nil)
)

// MatchingEnemyPools returns the enemy pool IDs at a location whose level
// range covers the combat level
func (p *Provider) MatchingEnemyPools(_ context.Context, locationID string, combatLevel int) ([]string, error) {
	loc, ok := p.catalog.locations[locationID]
	if !ok {
		return nil, errors.NotFound("location not found").WithMeta("location_id", locationID)
	}

	var ids []string
	for _, pool := range loc.enemyPools {
		if levelInRange(combatLevel, pool.MinLevel, pool.MaxLevel) {
			ids = append(ids, pool.ID)
		}
	}
	return ids, nil
}

// EnemyPoolMembers returns the weighted members of the given pools
func (p *Provider) EnemyPoolMembers(_ context.Context, poolIDs []string) ([]entities.EnemyPoolMember, error) {
	var members []entities.EnemyPoolMember
	for _, id := range poolIDs {
		members = append(members, p.catalog.enemyPools[id]...)
	}
	return members, nil
}

// SelectRandomEnemy draws one enemy type ID from weighted members
func (p *Provider) SelectRandomEnemy(members []entities.EnemyPoolMember) (string, error) {
	total := 0
	for _, m := range members {
		if m.Weight > 0 {
			total += m.Weight
		}
	}
	if total == 0 {
		return "", errors.NotFound("no enemies available in pool")
	}

	roll := p.roller.IntN(total)
	for _, m := range members {
		if m.Weight <= 0 {
			continue
		}
		if roll < m.Weight {
			return m.EnemyTypeID, nil
		}
		roll -= m.Weight
	}
	// Unreachable: roll < total by construction.
	return members[len(members)-1].EnemyTypeID, nil
}

// MatchingLootPools returns the loot pool IDs for a location and level
func (p *Provider) MatchingLootPools(_ context.Context, locationID string, combatLevel int) ([]string, error) {
	loc, ok := p.catalog.locations[locationID]
	if !ok {
		return nil, errors.NotFound("location not found").WithMeta("location_id", locationID)
	}

	var ids []string
	for _, pool := range loc.lootPools {
		if levelInRange(combatLevel, pool.MinLevel, pool.MaxLevel) {
			ids = append(ids, pool.ID)
		}
	}
	return ids, nil
}

// LootPoolEntries returns the weighted entries of the given pools
func (p *Provider) LootPoolEntries(_ context.Context, poolIDs []string) ([]entities.LootPoolEntry, error) {
	var entries []entities.LootPoolEntry
	for _, id := range poolIDs {
		entries = append(entries, p.catalog.lootPools[id]...)
	}
	return entries, nil
}

// TierWeights returns the tier-weight multiplier table
func (p *Provider) TierWeights(_ context.Context) (entities.TierWeights, error) {
	return p.catalog.tierWeights, nil
}

// FindType returns the base definition for an enemy type
func (p *Provider) FindType(_ context.Context, enemyTypeID string) (*external.EnemyDefinition, error) {
	doc, ok := p.catalog.enemyTypes[enemyTypeID]
	if !ok {
		return nil, errors.NotFound("enemy type not found").WithMeta("enemy_type_id", enemyTypeID)
	}

	styleID := doc.StyleID
	if styleID == "" {
		styleID = entities.StyleNormal
	}

	return &external.EnemyDefinition{
		ID:           doc.ID,
		Name:         doc.Name,
		StyleID:      styleID,
		DialogueTone: doc.DialogueTone,
		BaseStats:    doc.BaseStats.toStats(),
		BaseHP:       doc.BaseHP,
	}, nil
}

// RealizedStats instantiates an enemy type at a tier
func (p *Provider) RealizedStats(ctx context.Context, enemyTypeID string, tier int) (*external.RealizedEnemyStats, error) {
	def, err := p.FindType(ctx, enemyTypeID)
	if err != nil {
		return nil, err
	}
	if tier < 1 {
		tier = 1
	}

	statScale := 1.0 + tierStatStep*float64(tier-1)
	hpScale := 1.0 + tierHPStep*float64(tier-1)
	scaled := def.BaseStats.Scale(statScale)

	return &external.RealizedEnemyStats{
		AtkPower: scaled.AtkPower,
		DefPower: scaled.DefPower,
		HP:       int(float64(def.BaseHP) * hpScale),
	}, nil
}

// WeaponPattern returns a weapon dial profile by pattern ID, with band
// widths converted to centidegrees
func (p *Provider) WeaponPattern(patternID string) (*external.WeaponProfile, error) {
	doc, ok := p.catalog.weaponPatterns[patternID]
	if !ok {
		return nil, errors.NotFound("weapon pattern not found").WithMeta("pattern_id", patternID)
	}

	return &external.WeaponProfile{
		PatternID: doc.ID,
		SpinRate:  doc.SpinRate,
		Bands: entities.ZoneBands{
			Injure: doc.Bands.Injure * 100,
			Miss:   doc.Bands.Miss * 100,
			Graze:  doc.Bands.Graze * 100,
			Normal: doc.Bands.Normal * 100,
			Crit:   doc.Bands.Crit * 100,
		},
	}, nil
}

func levelInRange(level, minLevel, maxLevel int) bool {
	if minLevel > 0 && level < minLevel {
		return false
	}
	if maxLevel > 0 && level > maxLevel {
		return false
	}
	return true
}
