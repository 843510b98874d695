package combat

import (
	"github.com/wanderforge/wander-api/internal/engine/reward"
	"github.com/wanderforge/wander-api/internal/engine/timing"
	"github.com/wanderforge/wander-api/internal/entities"
)

// StartCombatInput contains parameters for starting a combat session
type StartCombatInput struct {
	UserID      string
	LocationID  string
	CombatLevel int
}

// StartCombatOutput contains the created session
type StartCombatOutput struct {
	Session *entities.CombatSession
}

// ExecuteAttackInput contains parameters for resolving one timed tap
type ExecuteAttackInput struct {
	SessionID string
	TapDegree float64 // degrees, [0, 360)
}

// ExecuteAttackOutput contains the resolved exchange and the updated session
type ExecuteAttackOutput struct {
	Session *entities.CombatSession

	Zone       timing.Zone
	Multiplier float64
	// CritBonusMultiplier is the extra crit roll, zero outside the crit
	// zone. It is already included in Multiplier.
	CritBonusMultiplier float64

	DamageToEnemy int
	SelfDamage    int // injure-zone damage the player dealt themselves
	CounterDamage int // enemy counterattack damage, zero when the enemy died
}

// CompleteCombatInput contains parameters for closing a session
type CompleteCombatInput struct {
	SessionID string
	Result    entities.CombatResult

	// RequestedStyle is the cosmetic style for generated drops; enemy
	// style inheritance may override it. Empty means "normal".
	RequestedStyle string

	// DropCount is the number of loot draws on victory; zero means the
	// default of one.
	DropCount int
}

// CompleteCombatOutput contains the settlement. Rewards is nil unless the
// result was a victory.
type CompleteCombatOutput struct {
	Session *entities.CombatSession
	Rewards *reward.Rewards
	History *entities.PlayerCombatHistory
}

// GetCombatSessionInput contains parameters for reading a session
type GetCombatSessionInput struct {
	SessionID string
}

// GetCombatSessionOutput contains the session snapshot
type GetCombatSessionOutput struct {
	Session *entities.CombatSession
}
