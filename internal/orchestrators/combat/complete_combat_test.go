package combat_test

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/wanderforge/wander-api/internal/entities"
	"github.com/wanderforge/wander-api/internal/errors"
	"github.com/wanderforge/wander-api/internal/orchestrators/combat"
	combathistory "github.com/wanderforge/wander-api/internal/repositories/combat_history"
	combatsession "github.com/wanderforge/wander-api/internal/repositories/combat_session"
	"github.com/wanderforge/wander-api/internal/repositories/currency"
)

func (s *OrchestratorTestSuite) expectLootPools(session *entities.CombatSession) {
	s.mockLocations.EXPECT().
		MatchingLootPools(s.ctx, session.LocationID, session.CombatLevel).
		Return([]string{"lootpool_low"}, nil)
	s.mockLocations.EXPECT().
		LootPoolEntries(s.ctx, []string{"lootpool_low"}).
		Return([]entities.LootPoolEntry{
			{PoolID: "lootpool_low", MaterialID: "mat_iron", Rarity: entities.RarityCommon, Theme: "metal", Tier: 1, Weight: 100},
		}, nil)
	s.mockLocations.EXPECT().
		TierWeights(s.ctx).
		Return(entities.TierWeights{1: 1.0}, nil)
}

func (s *OrchestratorTestSuite) expectGrant(session *entities.CombatSession, curr string, amount int64) {
	s.mockLedger.EXPECT().
		AddCurrency(s.ctx, currency.AddInput{
			UserID:         session.UserID,
			Currency:       curr,
			Amount:         amount,
			Reason:         "combat_victory",
			IdempotencyKey: session.ID,
		}).
		Return(&currency.AddOutput{Balance: amount, Applied: true}, nil)
}

func (s *OrchestratorTestSuite) expectHistoryUpsert() {
	s.mockHistory.EXPECT().
		Upsert(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input combathistory.UpsertInput) (*combathistory.UpsertOutput, error) {
			s.Equal("session-1", input.IdempotencyKey, "history writes are keyed on the session")
			return &combathistory.UpsertOutput{History: input.History, Applied: true}, nil
		})
}

func (s *OrchestratorTestSuite) TestCompleteCombat_Victory() {
	session := s.activeSession()
	session.Status = entities.SessionVictory
	session.EnemyHP = 0

	s.expectSessionGet(session)
	s.expectLootPools(session)
	s.roller.Floats = []float64{0.0}

	// Tier 1 at level 1: gold 25+8, xp 50+12.
	s.expectGrant(session, currency.Gold, 33)
	s.expectGrant(session, currency.XP, 62)

	s.mockHistory.EXPECT().
		Get(s.ctx, combathistory.GetInput{UserID: "user_1", LocationID: "loc_riverside"}).
		Return(nil, errors.NotFound("no combat history"))
	s.expectHistoryUpsert()

	s.mockSessions.EXPECT().
		Complete(s.ctx, combatsession.CompleteInput{SessionID: "session-1"}).
		Return(&combatsession.CompleteOutput{Session: session}, nil)

	output, err := s.orchestrator.CompleteCombat(s.ctx, &combat.CompleteCombatInput{
		SessionID: "session-1",
		Result:    entities.ResultVictory,
	})
	s.Require().NoError(err)

	s.Require().NotNil(output.Rewards)
	s.Equal(int64(33), output.Rewards.Gold)
	s.Equal(int64(62), output.Rewards.XP)
	s.Require().Len(output.Rewards.Drops, 1)
	s.Equal("mat_iron", output.Rewards.Drops[0].MaterialID)
	s.Equal(entities.StyleNormal, output.Rewards.Drops[0].StyleID)

	// First fight at this location starts the record from zero.
	s.Equal(1, output.History.TotalAttempts)
	s.Equal(1, output.History.Victories)
	s.Equal(1, output.History.CurrentStreak)
	s.Equal(1, output.History.LongestStreak)

	s.Equal(entities.SessionVictory, output.Session.Status)
}

func (s *OrchestratorTestSuite) TestCompleteCombat_StyleInheritance() {
	session := s.activeSession()
	session.Enemy.StyleID = "golden"

	s.expectSessionGet(session)
	s.expectLootPools(session)
	s.roller.Floats = []float64{0.0}
	s.expectGrant(session, currency.Gold, 33)
	s.expectGrant(session, currency.XP, 62)
	s.mockHistory.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("no combat history"))
	s.expectHistoryUpsert()
	s.mockSessions.EXPECT().
		Complete(s.ctx, gomock.Any()).
		Return(&combatsession.CompleteOutput{Session: session}, nil)

	output, err := s.orchestrator.CompleteCombat(s.ctx, &combat.CompleteCombatInput{
		SessionID:      "session-1",
		Result:         entities.ResultVictory,
		RequestedStyle: "shadow",
	})
	s.Require().NoError(err)

	// The golden enemy overrides the requested style on its drops.
	s.Require().Len(output.Rewards.Drops, 1)
	s.Equal("golden", output.Rewards.Drops[0].StyleID)
}

func (s *OrchestratorTestSuite) TestCompleteCombat_Defeat() {
	session := s.activeSession()
	session.Status = entities.SessionDefeat
	session.PlayerHP = 0

	s.expectSessionGet(session)

	prior := &entities.PlayerCombatHistory{
		UserID:        "user_1",
		LocationID:    "loc_riverside",
		TotalAttempts: 3,
		Victories:     2,
		Defeats:       1,
		CurrentStreak: 2,
		LongestStreak: 2,
	}
	s.mockHistory.EXPECT().
		Get(s.ctx, combathistory.GetInput{UserID: "user_1", LocationID: "loc_riverside"}).
		Return(&combathistory.GetOutput{History: prior}, nil)
	s.expectHistoryUpsert()

	s.mockSessions.EXPECT().
		Complete(s.ctx, combatsession.CompleteInput{SessionID: "session-1"}).
		Return(&combatsession.CompleteOutput{Session: session}, nil)

	output, err := s.orchestrator.CompleteCombat(s.ctx, &combat.CompleteCombatInput{
		SessionID: "session-1",
		Result:    entities.ResultDefeat,
	})
	s.Require().NoError(err)

	s.Nil(output.Rewards, "defeat pays nothing")

	// Defeat resets the streak but keeps the longest.
	s.Equal(4, output.History.TotalAttempts)
	s.Equal(2, output.History.Defeats)
	s.Equal(0, output.History.CurrentStreak)
	s.Equal(2, output.History.LongestStreak)

	s.Equal(entities.SessionDefeat, output.Session.Status)
}

func (s *OrchestratorTestSuite) TestCompleteCombat_AlreadyClosed() {
	s.mockSessions.EXPECT().
		Get(s.ctx, combatsession.GetInput{SessionID: "session-closed"}).
		Return(nil, errors.NotFound("session not found"))

	_, err := s.orchestrator.CompleteCombat(s.ctx, &combat.CompleteCombatInput{
		SessionID: "session-closed",
		Result:    entities.ResultVictory,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err), "a second completion must fail, never re-reward")
}

func (s *OrchestratorTestSuite) TestCompleteCombat_LostRaceOnClosure() {
	// Another caller closed the session between our read and our close.
	// The grants were idempotent, so surfacing NotFound is safe.
	session := s.activeSession()
	s.expectSessionGet(session)
	s.expectLootPools(session)
	s.roller.Floats = []float64{0.0}
	s.expectGrant(session, currency.Gold, 33)
	s.expectGrant(session, currency.XP, 62)
	s.mockHistory.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("no combat history"))
	s.expectHistoryUpsert()

	s.mockSessions.EXPECT().
		Complete(s.ctx, combatsession.CompleteInput{SessionID: "session-1"}).
		Return(nil, errors.NotFound("session not found"))

	_, err := s.orchestrator.CompleteCombat(s.ctx, &combat.CompleteCombatInput{
		SessionID: "session-1",
		Result:    entities.ResultVictory,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestCompleteCombat_RetryAfterTransientFailureCountsOnce() {
	// Closure fails transiently after grants and history succeeded; the
	// boundary retries the whole completion. Both writes are keyed on the
	// session ID, so the fight must still count exactly once.
	session := s.activeSession()
	s.roller.Floats = []float64{0.0}

	// Miniature stores mirroring the Redis idempotency markers.
	grantKeys := map[string]bool{}
	s.mockLedger.EXPECT().
		AddCurrency(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input currency.AddInput) (*currency.AddOutput, error) {
			key := input.IdempotencyKey + ":" + input.Currency
			if grantKeys[key] {
				return &currency.AddOutput{Balance: input.Amount, Applied: false}, nil
			}
			grantKeys[key] = true
			return &currency.AddOutput{Balance: input.Amount, Applied: true}, nil
		}).
		Times(4)

	var stored *entities.PlayerCombatHistory
	recordKeys := map[string]bool{}
	s.mockHistory.EXPECT().
		Get(s.ctx, combathistory.GetInput{UserID: "user_1", LocationID: "loc_riverside"}).
		DoAndReturn(func(_ context.Context, _ combathistory.GetInput) (*combathistory.GetOutput, error) {
			if stored == nil {
				return nil, errors.NotFound("no combat history")
			}
			return &combathistory.GetOutput{History: stored}, nil
		}).
		Times(2)
	s.mockHistory.EXPECT().
		Upsert(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input combathistory.UpsertInput) (*combathistory.UpsertOutput, error) {
			if recordKeys[input.IdempotencyKey] {
				return &combathistory.UpsertOutput{History: stored, Applied: false}, nil
			}
			recordKeys[input.IdempotencyKey] = true
			stored = input.History
			return &combathistory.UpsertOutput{History: stored, Applied: true}, nil
		}).
		Times(2)

	s.expectSessionGet(session)
	s.expectLootPools(session)
	s.mockSessions.EXPECT().
		Complete(s.ctx, combatsession.CompleteInput{SessionID: "session-1"}).
		Return(nil, errors.Unavailable("redis connection reset"))

	_, err := s.orchestrator.CompleteCombat(s.ctx, &combat.CompleteCombatInput{
		SessionID: "session-1",
		Result:    entities.ResultVictory,
	})
	s.Require().Error(err)

	s.expectSessionGet(session)
	s.expectLootPools(session)
	s.mockSessions.EXPECT().
		Complete(s.ctx, combatsession.CompleteInput{SessionID: "session-1"}).
		Return(&combatsession.CompleteOutput{Session: session}, nil)

	output, err := s.orchestrator.CompleteCombat(s.ctx, &combat.CompleteCombatInput{
		SessionID: "session-1",
		Result:    entities.ResultVictory,
	})
	s.Require().NoError(err)

	s.Equal(1, output.History.TotalAttempts)
	s.Equal(1, output.History.Victories)
	s.Equal(1, output.History.CurrentStreak)
	s.Equal(1, output.History.LongestStreak)
}

func (s *OrchestratorTestSuite) TestCompleteCombat_EmptyLootPool() {
	session := s.activeSession()
	s.expectSessionGet(session)

	s.mockLocations.EXPECT().
		MatchingLootPools(s.ctx, session.LocationID, session.CombatLevel).
		Return(nil, nil)
	s.mockLocations.EXPECT().
		LootPoolEntries(s.ctx, gomock.Nil()).
		Return(nil, nil)
	s.mockLocations.EXPECT().
		TierWeights(s.ctx).
		Return(entities.TierWeights{}, nil)

	s.expectGrant(session, currency.Gold, 33)
	s.expectGrant(session, currency.XP, 62)
	s.mockHistory.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("no combat history"))
	s.expectHistoryUpsert()
	s.mockSessions.EXPECT().
		Complete(s.ctx, gomock.Any()).
		Return(&combatsession.CompleteOutput{Session: session}, nil)

	output, err := s.orchestrator.CompleteCombat(s.ctx, &combat.CompleteCombatInput{
		SessionID: "session-1",
		Result:    entities.ResultVictory,
	})
	s.Require().NoError(err)

	// Gold and XP still pay out even when no materials drop.
	s.Require().NotNil(output.Rewards)
	s.Empty(output.Rewards.Drops)
	s.Equal(int64(33), output.Rewards.Gold)
}

func (s *OrchestratorTestSuite) TestCompleteCombat_InvalidResult() {
	_, err := s.orchestrator.CompleteCombat(s.ctx, &combat.CompleteCombatInput{
		SessionID: "session-1",
		Result:    entities.CombatResult("draw"),
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
