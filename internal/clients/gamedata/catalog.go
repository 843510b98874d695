// Package gamedata implements the location and enemy provider contracts on
// top of static YAML catalogs. Catalogs describe locations with their enemy
// and loot pools, enemy types, weapon patterns, and the tier-weight table.
package gamedata

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/wanderforge/wander-api/internal/entities"
	"github.com/wanderforge/wander-api/internal/errors"
)

// Catalog file names expected under the data directory
const (
	locationsFile = "locations.yaml"
	enemiesFile   = "enemies.yaml"
	weaponsFile   = "weapons.yaml"
	tiersFile     = "tiers.yaml"
)

// statsDoc is the YAML shape of a stat vector
type statsDoc struct {
	AtkPower    float64 `yaml:"atk_power"`
	AtkAccuracy float64 `yaml:"atk_accuracy"`
	DefPower    float64 `yaml:"def_power"`
	DefAccuracy float64 `yaml:"def_accuracy"`
}

func (d statsDoc) toStats() entities.Stats {
	return entities.Stats{
		AtkPower:    d.AtkPower,
		AtkAccuracy: d.AtkAccuracy,
		DefPower:    d.DefPower,
		DefAccuracy: d.DefAccuracy,
	}
}

type enemyPoolMemberDoc struct {
	EnemyType string `yaml:"enemy_type"`
	Weight    int    `yaml:"weight"`
}

type enemyPoolDoc struct {
	ID       string               `yaml:"id"`
	MinLevel int                  `yaml:"min_level"`
	MaxLevel int                  `yaml:"max_level"`
	Members  []enemyPoolMemberDoc `yaml:"members"`
}

type lootEntryDoc struct {
	MaterialID string `yaml:"material_id"`
	Rarity     string `yaml:"rarity"`
	Theme      string `yaml:"theme"`
	Tier       int    `yaml:"tier"`
	Weight     int    `yaml:"weight"`
}

type lootPoolDoc struct {
	ID       string         `yaml:"id"`
	MinLevel int            `yaml:"min_level"`
	MaxLevel int            `yaml:"max_level"`
	Entries  []lootEntryDoc `yaml:"entries"`
}

type locationDoc struct {
	ID         string         `yaml:"id"`
	Name       string         `yaml:"name"`
	EnemyPools []enemyPoolDoc `yaml:"enemy_pools"`
	LootPools  []lootPoolDoc  `yaml:"loot_pools"`
}

type locationsDoc struct {
	Locations []locationDoc `yaml:"locations"`
}

type enemyTypeDoc struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	StyleID      string   `yaml:"style_id"`
	DialogueTone string   `yaml:"dialogue_tone"`
	BaseStats    statsDoc `yaml:"base_stats"`
	BaseHP       int      `yaml:"base_hp"`
}

type enemiesDoc struct {
	EnemyTypes []enemyTypeDoc `yaml:"enemy_types"`
}

type bandsDoc struct {
	Injure int `yaml:"injure"`
	Miss   int `yaml:"miss"`
	Graze  int `yaml:"graze"`
	Normal int `yaml:"normal"`
	Crit   int `yaml:"crit"`
}

type weaponPatternDoc struct {
	ID       string   `yaml:"id"`
	SpinRate float64  `yaml:"spin_rate"`
	Bands    bandsDoc `yaml:"bands"` // widths in whole degrees
}

type weaponsDoc struct {
	WeaponPatterns []weaponPatternDoc `yaml:"weapon_patterns"`
}

type tiersDoc struct {
	TierWeights map[int]float64 `yaml:"tier_weights"`
}

// location is the loaded, indexed form of a locationDoc
type location struct {
	id         string
	name       string
	enemyPools []enemyPoolDoc
	lootPools  []lootPoolDoc
}

// Catalog holds the loaded game data, indexed by ID
type Catalog struct {
	locations      map[string]*location
	enemyPools     map[string][]entities.EnemyPoolMember
	lootPools      map[string][]entities.LootPoolEntry
	enemyTypes     map[string]enemyTypeDoc
	weaponPatterns map[string]weaponPatternDoc
	tierWeights    entities.TierWeights
}

// LoadCatalog reads and indexes the YAML catalogs under dir
func LoadCatalog(dir string) (*Catalog, error) {
	c := &Catalog{
		locations:      make(map[string]*location),
		enemyPools:     make(map[string][]entities.EnemyPoolMember),
		lootPools:      make(map[string][]entities.LootPoolEntry),
		enemyTypes:     make(map[string]enemyTypeDoc),
		weaponPatterns: make(map[string]weaponPatternDoc),
		tierWeights:    make(entities.TierWeights),
	}

	var locs locationsDoc
	if err := readYAML(filepath.Join(dir, locationsFile), &locs); err != nil {
		return nil, err
	}
	for _, doc := range locs.Locations {
		loc := &location{
			id:         doc.ID,
			name:       doc.Name,
			enemyPools: doc.EnemyPools,
			lootPools:  doc.LootPools,
		}
		c.locations[doc.ID] = loc

		for _, pool := range doc.EnemyPools {
			members := make([]entities.EnemyPoolMember, 0, len(pool.Members))
			for _, m := range pool.Members {
				members = append(members, entities.EnemyPoolMember{
					PoolID:      pool.ID,
					EnemyTypeID: m.EnemyType,
					Weight:      m.Weight,
				})
			}
			c.enemyPools[pool.ID] = members
		}

		for _, pool := range doc.LootPools {
			entries := make([]entities.LootPoolEntry, 0, len(pool.Entries))
			for _, e := range pool.Entries {
				entries = append(entries, entities.LootPoolEntry{
					PoolID:     pool.ID,
					MaterialID: e.MaterialID,
					Rarity:     entities.Rarity(e.Rarity),
					Theme:      e.Theme,
					Tier:       e.Tier,
					Weight:     e.Weight,
				})
			}
			c.lootPools[pool.ID] = entries
		}
	}

	var enemies enemiesDoc
	if err := readYAML(filepath.Join(dir, enemiesFile), &enemies); err != nil {
		return nil, err
	}
	for _, doc := range enemies.EnemyTypes {
		c.enemyTypes[doc.ID] = doc
	}

	var weapons weaponsDoc
	if err := readYAML(filepath.Join(dir, weaponsFile), &weapons); err != nil {
		return nil, err
	}
	for _, doc := range weapons.WeaponPatterns {
		if total := doc.Bands.Injure + doc.Bands.Miss + doc.Bands.Graze + doc.Bands.Normal + doc.Bands.Crit; total != 360 {
			return nil, errors.InvalidArgumentf(
				"weapon pattern %s bands must total 360 degrees, got %d", doc.ID, total)
		}
		c.weaponPatterns[doc.ID] = doc
	}

	var tiers tiersDoc
	if err := readYAML(filepath.Join(dir, tiersFile), &tiers); err != nil {
		return nil, err
	}
	for tier, weight := range tiers.TierWeights {
		c.tierWeights[tier] = weight
	}

	return c, nil
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path) // #nosec G304 // catalog dir is operator-controlled
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
