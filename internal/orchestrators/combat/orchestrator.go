// Package combat implements the combat orchestrator: a session-scoped state
// machine that turns timed dial taps into damage exchanges and settles
// rewards on completion.
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/wanderforge/wander-api/internal/orchestrators/combat Service

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wanderforge/wander-api/internal/clients/external"
	"github.com/wanderforge/wander-api/internal/engine/history"
	"github.com/wanderforge/wander-api/internal/engine/reward"
	"github.com/wanderforge/wander-api/internal/engine/timing"
	"github.com/wanderforge/wander-api/internal/entities"
	"github.com/wanderforge/wander-api/internal/errors"
	"github.com/wanderforge/wander-api/internal/pkg/idgen"
	"github.com/wanderforge/wander-api/internal/pkg/rng"
	combathistory "github.com/wanderforge/wander-api/internal/repositories/combat_history"
	combatsession "github.com/wanderforge/wander-api/internal/repositories/combat_session"
	"github.com/wanderforge/wander-api/internal/repositories/currency"
)

const (
	// Player HP curve
	playerBaseHP     = 100
	playerHPPerLevel = 10

	// missCounterScale decides how hard the enemy counters a missed tap.
	// A miss leaves the player fully exposed, so the counter lands at
	// full strength. Set below 1.0 to soften missed-tap counters.
	missCounterScale = 1.0

	// Default session lifetime; the store enforces expiry.
	DefaultSessionTTL = 30 * time.Minute
)

// Service defines the interface for combat operations
type Service interface {
	// StartCombat resolves the location, picks an enemy, snapshots the
	// player's equipment, and opens a session.
	StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error)

	// ExecuteAttack resolves one timed tap against the active session
	ExecuteAttack(ctx context.Context, input *ExecuteAttackInput) (*ExecuteAttackOutput, error)

	// CompleteCombat settles rewards and history and closes the session
	CompleteCombat(ctx context.Context, input *CompleteCombatInput) (*CompleteCombatOutput, error)

	// GetCombatSession returns a read-only session snapshot
	GetCombatSession(ctx context.Context, input *GetCombatSessionInput) (*GetCombatSessionOutput, error)
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	SessionRepo       combatsession.Repository
	HistoryRepo       combathistory.Repository
	LocationProvider  external.LocationProvider
	EquipmentProvider external.EquipmentProvider
	EnemyProvider     external.EnemyProvider
	CurrencyLedger    currency.Ledger
	IDGenerator       idgen.Generator
	Roller            rng.Roller

	// SessionTTL overrides the default session lifetime when nonzero
	SessionTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.HistoryRepo == nil {
		vb.RequiredField("HistoryRepo")
	}
	if c.LocationProvider == nil {
		vb.RequiredField("LocationProvider")
	}
	if c.EquipmentProvider == nil {
		vb.RequiredField("EquipmentProvider")
	}
	if c.EnemyProvider == nil {
		vb.RequiredField("EnemyProvider")
	}
	if c.CurrencyLedger == nil {
		vb.RequiredField("CurrencyLedger")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type orchestrator struct {
	sessionRepo  combatsession.Repository
	historyRepo  combathistory.Repository
	locations    external.LocationProvider
	equipment    external.EquipmentProvider
	enemies      external.EnemyProvider
	ledger       currency.Ledger
	idGen        idgen.Generator
	roller       rng.Roller
	sessionTTL   time.Duration
	sessionLocks *lockTable
}

// NewOrchestrator creates a new combat orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.SessionTTL
	if ttl == 0 {
		ttl = DefaultSessionTTL
	}

	return &orchestrator{
		sessionRepo:  cfg.SessionRepo,
		historyRepo:  cfg.HistoryRepo,
		locations:    cfg.LocationProvider,
		equipment:    cfg.EquipmentProvider,
		enemies:      cfg.EnemyProvider,
		ledger:       cfg.CurrencyLedger,
		idGen:        cfg.IDGenerator,
		roller:       cfg.Roller,
		sessionTTL:   ttl,
		sessionLocks: newLockTable(),
	}, nil
}

// StartCombat resolves everything a session needs up front, the enemy pool
// pick and the equipment snapshot in parallel, then claims the user's
// active slot. The claim itself is the atomic insert-if-absent in the
// session repository, so concurrent starts for the same user race safely.
func (o *orchestrator) StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if input.UserID == "" {
		vb.RequiredField("UserID")
	}
	if input.LocationID == "" {
		vb.RequiredField("LocationID")
	}
	if input.CombatLevel < 1 {
		vb.InvalidField("CombatLevel", "must be at least 1")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	tier := reward.TierForLevel(input.CombatLevel)

	var (
		enemy       *entities.EnemySnapshot
		playerStats entities.Stats
		weapon      *external.WeaponProfile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		enemy, err = o.resolveEnemy(gctx, input.LocationID, input.CombatLevel, tier)
		return err
	})
	g.Go(func() error {
		var err error
		playerStats, err = o.equipment.EquippedStats(gctx, input.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to read equipped stats")
		}
		weapon, err = o.equipment.EquippedWeapon(gctx, input.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to read equipped weapon")
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	bands, err := timing.AdjustedBands(weapon.Bands, playerStats.AtkAccuracy)
	if err != nil {
		return nil, errors.Wrap(err, "failed to adjust weapon bands")
	}

	maxHP := playerBaseHP + playerHPPerLevel*input.CombatLevel
	session := &entities.CombatSession{
		ID:          o.idGen.Generate(),
		UserID:      input.UserID,
		LocationID:  input.LocationID,
		CombatLevel: input.CombatLevel,
		Enemy:       *enemy,
		PlayerStats: playerStats,
		Weapon: entities.WeaponConfig{
			PatternID: weapon.PatternID,
			SpinRate:  weapon.SpinRate,
			Bands:     bands,
		},
		PlayerHP:    maxHP,
		PlayerMaxHP: maxHP,
		EnemyHP:     enemy.MaxHP,
		TurnNumber:  0,
		Status:      entities.SessionActive,
	}

	created, err := o.sessionRepo.Create(ctx, combatsession.CreateInput{
		Session: session,
		TTL:     o.sessionTTL,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("combat session started",
		"session_id", created.Session.ID,
		"user_id", input.UserID,
		"location_id", input.LocationID,
		"enemy_type_id", enemy.EnemyTypeID,
		"combat_level", input.CombatLevel,
	)

	return &StartCombatOutput{Session: created.Session}, nil
}

// resolveEnemy picks a weighted random enemy from the location's pools and
// freezes its tier-scaled stats into a snapshot.
func (o *orchestrator) resolveEnemy(ctx context.Context, locationID string, combatLevel, tier int) (*entities.EnemySnapshot, error) {
	poolIDs, err := o.locations.MatchingEnemyPools(ctx, locationID, combatLevel)
	if err != nil {
		return nil, err
	}

	members, err := o.locations.EnemyPoolMembers(ctx, poolIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load enemy pool members")
	}

	enemyTypeID, err := o.locations.SelectRandomEnemy(members)
	if err != nil {
		return nil, err
	}

	def, err := o.enemies.FindType(ctx, enemyTypeID)
	if err != nil {
		return nil, err
	}

	realized, err := o.enemies.RealizedStats(ctx, enemyTypeID, tier)
	if err != nil {
		return nil, errors.Wrap(err, "failed to realize enemy stats")
	}

	return &entities.EnemySnapshot{
		EnemyTypeID:  def.ID,
		Name:         def.Name,
		AtkPower:     realized.AtkPower,
		DefPower:     realized.DefPower,
		MaxHP:        realized.HP,
		Tier:         tier,
		StyleID:      def.StyleID,
		DialogueTone: def.DialogueTone,
	}, nil
}

// ExecuteAttack resolves one timed tap. Calls against the same session are
// serialized by a per-session lock so turn numbers are strictly sequential
// and HP mutations never interleave.
func (o *orchestrator) ExecuteAttack(ctx context.Context, input *ExecuteAttackInput) (*ExecuteAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID cannot be empty")
	}
	if input.TapDegree < 0 || input.TapDegree >= 360 {
		return nil, errors.InvalidArgumentf(
			"tap degree must be in [0, 360), got %v", input.TapDegree)
	}

	unlock := o.sessionLocks.Lock(input.SessionID)
	defer unlock()

	got, err := o.sessionRepo.Get(ctx, combatsession.GetInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}
	session := got.Session

	if session.Status.IsTerminal() {
		return nil, errors.FailedPrecondition("combat session is not active").
			WithMeta("session_id", session.ID).
			WithMeta("status", string(session.Status))
	}

	zone, err := timing.DetermineHitZone(input.TapDegree, session.Weapon.Bands)
	if err != nil {
		return nil, err
	}

	out := &ExecuteAttackOutput{
		Zone:       zone,
		Multiplier: zone.Multiplier(),
	}
	if zone == timing.ZoneCrit {
		out.CritBonusMultiplier = timing.CritBonus(o.roller)
		out.Multiplier += out.CritBonusMultiplier
	}

	playerAtk := session.PlayerStats.AtkPower
	playerDef := session.PlayerStats.DefPower

	switch zone {
	case timing.ZoneInjure:
		// The player hurts themselves; the enemy is untouched.
		out.SelfDamage = -int(math.Round(playerAtk * out.Multiplier))
	case timing.ZoneMiss:
		// Nothing lands, no damage floor.
	default:
		raw := playerAtk*out.Multiplier - session.Enemy.DefPower
		out.DamageToEnemy = int(math.Round(raw))
		if out.DamageToEnemy < 1 {
			out.DamageToEnemy = 1
		}
	}

	session.EnemyHP -= out.DamageToEnemy
	if session.EnemyHP <= 0 {
		session.EnemyHP = 0
		session.Status = entities.SessionVictory
	} else {
		counterScale := 1.0
		if zone == timing.ZoneMiss {
			counterScale = missCounterScale
		}
		out.CounterDamage = counterAttackDamage(session.Enemy.AtkPower, playerDef, counterScale)
	}

	session.PlayerHP -= out.SelfDamage + out.CounterDamage
	if session.PlayerHP <= 0 {
		session.PlayerHP = 0
		if session.Status == entities.SessionActive {
			session.Status = entities.SessionDefeat
		}
	}

	if session.Status == entities.SessionActive {
		session.TurnNumber++
	}

	updated, err := o.sessionRepo.Update(ctx, combatsession.UpdateInput{Session: session})
	if err != nil {
		return nil, err
	}
	out.Session = updated.Session

	slog.Info("attack resolved",
		"session_id", session.ID,
		"zone", string(zone),
		"damage_to_enemy", out.DamageToEnemy,
		"counter_damage", out.CounterDamage,
		"player_hp", out.Session.PlayerHP,
		"enemy_hp", out.Session.EnemyHP,
		"status", string(out.Session.Status),
	)

	return out, nil
}

// counterAttackDamage is the enemy's answering blow: attack scaled by the
// exposure factor, less the player's defense, floored at 1.
func counterAttackDamage(enemyAtk, playerDef, scale float64) int {
	dmg := int(math.Round(enemyAtk*scale - playerDef))
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// CompleteCombat settles a finished fight: on victory it generates loot and
// grants gold and XP, always records history, then closes the session. The
// currency grants and the history write carry the session ID as idempotency
// key and session closure is delete-if-present, so a retried completion
// never re-rewards or double-counts; an already-closed session fails with
// NotFound.
func (o *orchestrator) CompleteCombat(ctx context.Context, input *CompleteCombatInput) (*CompleteCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID cannot be empty")
	}
	if !input.Result.IsValid() {
		return nil, errors.InvalidArgumentf(
			"result must be %q or %q, got %q",
			entities.ResultVictory, entities.ResultDefeat, input.Result)
	}

	unlock := o.sessionLocks.Lock(input.SessionID)
	defer unlock()

	got, err := o.sessionRepo.Get(ctx, combatsession.GetInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}
	session := got.Session

	out := &CompleteCombatOutput{}

	if input.Result == entities.ResultVictory {
		rewards, rewardErr := o.settleVictory(ctx, session, input.RequestedStyle, input.DropCount)
		if rewardErr != nil {
			return nil, rewardErr
		}
		out.Rewards = rewards
	}

	hist, err := o.recordHistory(ctx, session, input.Result)
	if err != nil {
		return nil, err
	}
	out.History = hist

	if _, err := o.sessionRepo.Complete(ctx, combatsession.CompleteInput{SessionID: session.ID}); err != nil {
		return nil, err
	}

	closed := *session
	closed.Status = entities.SessionStatus(input.Result)
	out.Session = &closed

	slog.Info("combat session completed",
		"session_id", session.ID,
		"user_id", session.UserID,
		"result", string(input.Result),
		"turns", session.TurnNumber,
	)

	return out, nil
}

// settleVictory generates loot from the location's pools and grants gold
// and XP keyed on the session ID so retries apply at most once.
func (o *orchestrator) settleVictory(ctx context.Context, session *entities.CombatSession, requestedStyle string, dropCount int) (*reward.Rewards, error) {
	poolIDs, err := o.locations.MatchingLootPools(ctx, session.LocationID, session.CombatLevel)
	if err != nil {
		return nil, err
	}

	entries, err := o.locations.LootPoolEntries(ctx, poolIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load loot pool entries")
	}

	tierWeights, err := o.locations.TierWeights(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load tier weights")
	}

	drops, err := reward.SelectLoot(
		entries, tierWeights,
		session.CombatLevel,
		requestedStyle, session.Enemy.StyleID,
		dropCount, o.roller,
	)
	if err != nil {
		return nil, err
	}

	rewards := &reward.Rewards{
		Drops: drops,
		Gold:  reward.Gold(session.Enemy.Tier, session.CombatLevel),
		XP:    reward.XP(session.Enemy.Tier, session.CombatLevel),
	}

	grants := []struct {
		currency string
		amount   int64
	}{
		{currency.Gold, rewards.Gold},
		{currency.XP, rewards.XP},
	}
	for _, grant := range grants {
		if _, err := o.ledger.AddCurrency(ctx, currency.AddInput{
			UserID:         session.UserID,
			Currency:       grant.currency,
			Amount:         grant.amount,
			Reason:         "combat_victory",
			IdempotencyKey: session.ID,
		}); err != nil {
			return nil, errors.Wrapf(err, "failed to grant %s", grant.currency)
		}
	}

	return rewards, nil
}

// recordHistory loads or lazily initializes the per-location history row
// and applies the streak update, keyed on the session ID so a retried
// completion counts the fight once.
func (o *orchestrator) recordHistory(ctx context.Context, session *entities.CombatSession, result entities.CombatResult) (*entities.PlayerCombatHistory, error) {
	prior := entities.PlayerCombatHistory{
		UserID:     session.UserID,
		LocationID: session.LocationID,
	}
	got, err := o.historyRepo.Get(ctx, combathistory.GetInput{
		UserID:     session.UserID,
		LocationID: session.LocationID,
	})
	switch {
	case err == nil:
		prior = *got.History
	case errors.IsNotFound(err):
		// First fight at this location, start from zero.
	default:
		return nil, errors.Wrap(err, "failed to load combat history")
	}

	updated := history.Record(prior, result)
	stored, err := o.historyRepo.Upsert(ctx, combathistory.UpsertInput{
		History:        &updated,
		IdempotencyKey: session.ID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store combat history")
	}
	return stored.History, nil
}

// GetCombatSession returns a read-only snapshot of a session
func (o *orchestrator) GetCombatSession(ctx context.Context, input *GetCombatSessionInput) (*GetCombatSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID cannot be empty")
	}

	got, err := o.sessionRepo.Get(ctx, combatsession.GetInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}
	return &GetCombatSessionOutput{Session: got.Session}, nil
}

// lockTable hands out one mutex per session ID so writers to the same
// session are serialized. Entries are reference counted and dropped when
// the last holder releases, keeping the table bounded by live sessions.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[string]*sessionLock)}
}

// Lock acquires the mutex for a session ID and returns its release func
func (t *lockTable) Lock(sessionID string) func() {
	t.mu.Lock()
	l, ok := t.locks[sessionID]
	if !ok {
		l = &sessionLock{}
		t.locks[sessionID] = l
	}
	l.refs++
	t.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		t.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(t.locks, sessionID)
		}
		t.mu.Unlock()
	}
}
