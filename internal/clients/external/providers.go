// Package external defines the collaborator contracts the combat core
// consumes: location/enemy/loot resolution and per-user equipment reads.
// Production implementations live elsewhere (gamedata catalogs, the profile
// service); the combat orchestrator only sees these interfaces.
package external

import (
	"context"

	"github.com/wanderforge/wander-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_providers.go -package=externalmock github.com/wanderforge/wander-api/internal/clients/external LocationProvider,EquipmentProvider,EnemyProvider

// RealizedEnemyStats is an enemy definition instantiated at a tier
type RealizedEnemyStats struct {
	AtkPower float64
	DefPower float64
	HP       int
}

// EnemyDefinition is the static description of an enemy type
type EnemyDefinition struct {
	ID           string
	Name         string
	StyleID      string
	DialogueTone string
	BaseStats    entities.Stats
	BaseHP       int
}

// WeaponProfile is the dial configuration of an equipped weapon
type WeaponProfile struct {
	PatternID string
	SpinRate  float64
	Bands     entities.ZoneBands // base pattern widths, before accuracy scaling
}

// LocationProvider resolves a real-world location into enemy and loot pools.
// Selection methods take the weighted rows explicitly so callers control the
// randomness source.
type LocationProvider interface {
	// MatchingEnemyPools returns the enemy pool IDs available at a
	// location for a combat level.
	// Returns errors.NotFound for an unknown location.
	MatchingEnemyPools(ctx context.Context, locationID string, combatLevel int) ([]string, error)

	// EnemyPoolMembers returns the weighted members of the given pools
	EnemyPoolMembers(ctx context.Context, poolIDs []string) ([]entities.EnemyPoolMember, error)

	// SelectRandomEnemy draws one enemy type ID from weighted members.
	// Returns errors.NotFound when members is empty.
	SelectRandomEnemy(members []entities.EnemyPoolMember) (string, error)

	// MatchingLootPools returns the loot pool IDs for a location and level
	MatchingLootPools(ctx context.Context, locationID string, combatLevel int) ([]string, error)

	// LootPoolEntries returns the weighted entries of the given pools
	LootPoolEntries(ctx context.Context, poolIDs []string) ([]entities.LootPoolEntry, error)

	// TierWeights returns the tier-weight multiplier table
	TierWeights(ctx context.Context) (entities.TierWeights, error)
}

// EquipmentProvider reads a user's equipped loadout. The combat core never
// mutates equipment.
type EquipmentProvider interface {
	// EquippedStats returns the user's aggregate stats from equipment
	EquippedStats(ctx context.Context, userID string) (entities.Stats, error)

	// EquippedWeapon returns the user's weapon dial configuration, or the
	// default profile when no weapon is equipped.
	EquippedWeapon(ctx context.Context, userID string) (*WeaponProfile, error)
}

// EnemyProvider resolves enemy type IDs into definitions and tier-scaled
// combat stats.
type EnemyProvider interface {
	// FindType returns the base definition for an enemy type.
	// Returns errors.NotFound for an unknown ID.
	FindType(ctx context.Context, enemyTypeID string) (*EnemyDefinition, error)

	// RealizedStats instantiates an enemy type at a tier
	RealizedStats(ctx context.Context, enemyTypeID string, tier int) (*RealizedEnemyStats, error)
}
