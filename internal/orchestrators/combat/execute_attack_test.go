package combat_test

import (
	"github.com/wanderforge/wander-api/internal/engine/timing"
	"github.com/wanderforge/wander-api/internal/entities"
	"github.com/wanderforge/wander-api/internal/errors"
	"github.com/wanderforge/wander-api/internal/orchestrators/combat"
	combatsession "github.com/wanderforge/wander-api/internal/repositories/combat_session"
)

func (s *OrchestratorTestSuite) expectSessionGet(session *entities.CombatSession) {
	s.mockSessions.EXPECT().
		Get(s.ctx, combatsession.GetInput{SessionID: session.ID}).
		Return(&combatsession.GetOutput{Session: session}, nil)
}

func (s *OrchestratorTestSuite) TestExecuteAttack_NormalHit() {
	session := s.activeSession()
	s.expectSessionGet(session)
	s.expectSessionUpdate()

	// Tap at 200 degrees lands in the normal zone (boundaries at
	// 30/80/150/280/360).
	output, err := s.orchestrator.ExecuteAttack(s.ctx, &combat.ExecuteAttackInput{
		SessionID: "session-1",
		TapDegree: 200,
	})
	s.Require().NoError(err)

	s.Equal(timing.ZoneNormal, output.Zone)
	s.Equal(1.0, output.Multiplier)
	s.Zero(output.CritBonusMultiplier)

	// 20*1.0 - 4 = 16 to the enemy; counter 12 - 5 = 7.
	s.Equal(16, output.DamageToEnemy)
	s.Equal(7, output.CounterDamage)
	s.Zero(output.SelfDamage)

	s.Equal(14, output.Session.EnemyHP)
	s.Equal(103, output.Session.PlayerHP)
	s.Equal(entities.SessionActive, output.Session.Status)
	s.Equal(1, output.Session.TurnNumber)
}

func (s *OrchestratorTestSuite) TestExecuteAttack_Graze() {
	session := s.activeSession()
	s.expectSessionGet(session)
	s.expectSessionUpdate()

	output, err := s.orchestrator.ExecuteAttack(s.ctx, &combat.ExecuteAttackInput{
		SessionID: "session-1",
		TapDegree: 100,
	})
	s.Require().NoError(err)

	s.Equal(timing.ZoneGraze, output.Zone)
	// 20*0.6 - 4 = 8.
	s.Equal(8, output.DamageToEnemy)
	s.Equal(22, output.Session.EnemyHP)
	s.Equal(1, output.Session.TurnNumber)
}

func (s *OrchestratorTestSuite) TestExecuteAttack_MissTakesFullCounter() {
	session := s.activeSession()
	s.expectSessionGet(session)
	s.expectSessionUpdate()

	output, err := s.orchestrator.ExecuteAttack(s.ctx, &combat.ExecuteAttackInput{
		SessionID: "session-1",
		TapDegree: 50,
	})
	s.Require().NoError(err)

	s.Equal(timing.ZoneMiss, output.Zone)
	s.Zero(output.DamageToEnemy, "a miss deals nothing, not the damage floor")
	s.Equal(30, output.Session.EnemyHP)

	// The counter lands at full strength on a miss.
	s.Equal(7, output.CounterDamage)
	s.Equal(103, output.Session.PlayerHP)
	s.Equal(1, output.Session.TurnNumber)
}

func (s *OrchestratorTestSuite) TestExecuteAttack_InjureIsCumulative() {
	session := s.activeSession()
	s.expectSessionGet(session)
	s.expectSessionUpdate()

	output, err := s.orchestrator.ExecuteAttack(s.ctx, &combat.ExecuteAttackInput{
		SessionID: "session-1",
		TapDegree: 10,
	})
	s.Require().NoError(err)

	s.Equal(timing.ZoneInjure, output.Zone)
	s.Zero(output.DamageToEnemy)
	s.Equal(30, output.Session.EnemyHP)

	// Self-damage round(20 * -0.5) = 10, plus the counter of 7.
	s.Equal(10, output.SelfDamage)
	s.Equal(7, output.CounterDamage)
	s.Equal(93, output.Session.PlayerHP)
	s.Equal(1, output.Session.TurnNumber)
}

func (s *OrchestratorTestSuite) TestExecuteAttack_CritVictory() {
	session := s.activeSession()
	s.expectSessionGet(session)
	s.expectSessionUpdate()
	s.roller.Floats = []float64{0.5}

	output, err := s.orchestrator.ExecuteAttack(s.ctx, &combat.ExecuteAttackInput{
		SessionID: "session-1",
		TapDegree: 300,
	})
	s.Require().NoError(err)

	s.Equal(timing.ZoneCrit, output.Zone)
	s.Equal(0.5, output.CritBonusMultiplier)
	s.Equal(2.1, output.Multiplier)

	// 20*2.1 - 4 = 38, overkill on 30 HP.
	s.Equal(38, output.DamageToEnemy)
	s.Equal(0, output.Session.EnemyHP, "HP clamps at zero")
	s.Equal(entities.SessionVictory, output.Session.Status)

	// A dead enemy does not counter, and terminal exchanges do not
	// advance the turn counter.
	s.Zero(output.CounterDamage)
	s.Equal(110, output.Session.PlayerHP)
	s.Equal(0, output.Session.TurnNumber)
}

func (s *OrchestratorTestSuite) TestExecuteAttack_DamageFloor() {
	session := s.activeSession()
	// A heavily armored enemy still takes at least 1 on a landed hit.
	session.Enemy.DefPower = 50
	s.expectSessionGet(session)
	s.expectSessionUpdate()

	output, err := s.orchestrator.ExecuteAttack(s.ctx, &combat.ExecuteAttackInput{
		SessionID: "session-1",
		TapDegree: 200,
	})
	s.Require().NoError(err)
	s.Equal(1, output.DamageToEnemy)
	s.Equal(29, output.Session.EnemyHP)
}

func (s *OrchestratorTestSuite) TestExecuteAttack_Defeat() {
	session := s.activeSession()
	session.PlayerHP = 5
	s.expectSessionGet(session)
	s.expectSessionUpdate()

	output, err := s.orchestrator.ExecuteAttack(s.ctx, &combat.ExecuteAttackInput{
		SessionID: "session-1",
		TapDegree: 200,
	})
	s.Require().NoError(err)

	s.Equal(16, output.DamageToEnemy)
	s.Equal(7, output.CounterDamage)
	s.Equal(0, output.Session.PlayerHP, "HP clamps at zero")
	s.Equal(entities.SessionDefeat, output.Session.Status)
	s.Equal(0, output.Session.TurnNumber)
}

func (s *OrchestratorTestSuite) TestExecuteAttack_TurnNumbersAreSequential() {
	session := s.activeSession()
	for turn := 1; turn <= 3; turn++ {
		s.expectSessionGet(session)
		s.expectSessionUpdate()

		output, err := s.orchestrator.ExecuteAttack(s.ctx, &combat.ExecuteAttackInput{
			SessionID: "session-1",
			TapDegree: 50, // misses keep both sides alive
		})
		s.Require().NoError(err)
		s.Equal(turn, output.Session.TurnNumber)
		session = output.Session
	}
}

func (s *OrchestratorTestSuite) TestExecuteAttack_NotActive() {
	session := s.activeSession()
	session.Status = entities.SessionVictory
	s.expectSessionGet(session)

	_, err := s.orchestrator.ExecuteAttack(s.ctx, &combat.ExecuteAttackInput{
		SessionID: "session-1",
		TapDegree: 200,
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestExecuteAttack_SessionMissing() {
	s.mockSessions.EXPECT().
		Get(s.ctx, combatsession.GetInput{SessionID: "session-gone"}).
		Return(nil, errors.NotFound("session not found"))

	_, err := s.orchestrator.ExecuteAttack(s.ctx, &combat.ExecuteAttackInput{
		SessionID: "session-gone",
		TapDegree: 200,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestExecuteAttack_TapOutOfRange() {
	for _, tap := range []float64{-0.01, 360, 720} {
		_, err := s.orchestrator.ExecuteAttack(s.ctx, &combat.ExecuteAttackInput{
			SessionID: "session-1",
			TapDegree: tap,
		})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	}
}
