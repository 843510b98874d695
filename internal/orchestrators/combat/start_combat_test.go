package combat_test

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/wanderforge/wander-api/internal/clients/external"
	"github.com/wanderforge/wander-api/internal/entities"
	"github.com/wanderforge/wander-api/internal/errors"
	"github.com/wanderforge/wander-api/internal/orchestrators/combat"
	combatsession "github.com/wanderforge/wander-api/internal/repositories/combat_session"
)

func (s *OrchestratorTestSuite) expectEnemyResolution(locationID string, level, tier int) {
	s.mockLocations.EXPECT().
		MatchingEnemyPools(gomock.Any(), locationID, level).
		Return([]string{"pool_low"}, nil)
	s.mockLocations.EXPECT().
		EnemyPoolMembers(gomock.Any(), []string{"pool_low"}).
		Return([]entities.EnemyPoolMember{
			{PoolID: "pool_low", EnemyTypeID: "enemy_river_wolf", Weight: 100},
		}, nil)
	s.mockLocations.EXPECT().
		SelectRandomEnemy(gomock.Any()).
		Return("enemy_river_wolf", nil)
	s.mockEnemies.EXPECT().
		FindType(gomock.Any(), "enemy_river_wolf").
		Return(&external.EnemyDefinition{
			ID:           "enemy_river_wolf",
			Name:         "River Wolf",
			StyleID:      entities.StyleNormal,
			DialogueTone: "feral",
			BaseHP:       30,
		}, nil)
	s.mockEnemies.EXPECT().
		RealizedStats(gomock.Any(), "enemy_river_wolf", tier).
		Return(&external.RealizedEnemyStats{AtkPower: 12, DefPower: 4, HP: 30}, nil)
}

func (s *OrchestratorTestSuite) expectEquipment(userID string, stats entities.Stats) {
	s.mockEquipment.EXPECT().
		EquippedStats(gomock.Any(), userID).
		Return(stats, nil)
	s.mockEquipment.EXPECT().
		EquippedWeapon(gomock.Any(), userID).
		Return(&external.WeaponProfile{
			PatternID: "pattern_single_arc",
			SpinRate:  1.0,
			Bands:     entities.ZoneBands{Injure: 3000, Miss: 5000, Graze: 7000, Normal: 13000, Crit: 8000},
		}, nil)
}

func (s *OrchestratorTestSuite) TestStartCombat() {
	playerStats := entities.Stats{AtkPower: 20, AtkAccuracy: 0, DefPower: 5, DefAccuracy: 0}
	s.expectEnemyResolution("loc_riverside", 1, 1)
	s.expectEquipment("user_1", playerStats)

	s.mockSessions.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input combatsession.CreateInput) (*combatsession.CreateOutput, error) {
			session := input.Session
			s.Equal("user_1", session.UserID)
			s.Equal("loc_riverside", session.LocationID)
			s.Equal(entities.SessionActive, session.Status)
			s.Equal(0, session.TurnNumber)

			// Level 1: 100 base plus 10 per level.
			s.Equal(110, session.PlayerMaxHP)
			s.Equal(110, session.PlayerHP)
			s.Equal(30, session.EnemyHP)
			s.Equal(30, session.Enemy.MaxHP)
			s.Equal(1, session.Enemy.Tier)
			s.Equal(playerStats, session.PlayerStats)

			// Accuracy zero keeps the base pattern intact, and the
			// adjusted bands still cover the full dial.
			s.Equal(entities.CircleCentidegrees, session.Weapon.Bands.Total())
			s.Equal(3000, session.Weapon.Bands.Injure)

			stamped := *session
			stamped.CreatedAt = fixedNow
			stamped.ExpiresAt = fixedNow.Add(combat.DefaultSessionTTL)
			return &combatsession.CreateOutput{Session: &stamped}, nil
		})

	output, err := s.orchestrator.StartCombat(s.ctx, &combat.StartCombatInput{
		UserID:      "user_1",
		LocationID:  "loc_riverside",
		CombatLevel: 1,
	})
	s.Require().NoError(err)
	s.Require().NotNil(output.Session)
	s.Equal("enemy_river_wolf", output.Session.Enemy.EnemyTypeID)
	s.Equal(fixedNow, output.Session.CreatedAt)
}

func (s *OrchestratorTestSuite) TestStartCombat_AccuracyShrinksUnfavorableZones() {
	playerStats := entities.Stats{AtkPower: 20, AtkAccuracy: 100, DefPower: 5, DefAccuracy: 0}
	s.expectEnemyResolution("loc_riverside", 1, 1)
	s.expectEquipment("user_1", playerStats)

	s.mockSessions.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input combatsession.CreateInput) (*combatsession.CreateOutput, error) {
			bands := input.Session.Weapon.Bands
			// Accuracy 100 halves the unfavorable widths.
			s.Equal(1500, bands.Injure)
			s.Equal(2500, bands.Miss)
			s.Equal(3500, bands.Graze)
			s.Greater(bands.Normal, 13000)
			s.Greater(bands.Crit, 8000)
			s.Equal(entities.CircleCentidegrees, bands.Total())
			return &combatsession.CreateOutput{Session: input.Session}, nil
		})

	_, err := s.orchestrator.StartCombat(s.ctx, &combat.StartCombatInput{
		UserID:      "user_1",
		LocationID:  "loc_riverside",
		CombatLevel: 1,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestStartCombat_TierFromLevel() {
	playerStats := entities.Stats{AtkPower: 20}
	// Level 15 lands in tier 2.
	s.expectEnemyResolution("loc_riverside", 15, 2)
	s.expectEquipment("user_1", playerStats)

	s.mockSessions.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input combatsession.CreateInput) (*combatsession.CreateOutput, error) {
			s.Equal(2, input.Session.Enemy.Tier)
			s.Equal(250, input.Session.PlayerMaxHP)
			return &combatsession.CreateOutput{Session: input.Session}, nil
		})

	_, err := s.orchestrator.StartCombat(s.ctx, &combat.StartCombatInput{
		UserID:      "user_1",
		LocationID:  "loc_riverside",
		CombatLevel: 15,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestStartCombat_AlreadyInCombat() {
	s.expectEnemyResolution("loc_riverside", 1, 1)
	s.expectEquipment("user_1", entities.Stats{AtkPower: 20})

	s.mockSessions.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, errors.AlreadyExists("user already has an active combat session"))

	_, err := s.orchestrator.StartCombat(s.ctx, &combat.StartCombatInput{
		UserID:      "user_1",
		LocationID:  "loc_riverside",
		CombatLevel: 1,
	})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *OrchestratorTestSuite) TestStartCombat_UnknownLocation() {
	s.mockLocations.EXPECT().
		MatchingEnemyPools(gomock.Any(), "loc_nowhere", 1).
		Return(nil, errors.NotFound("location not found"))
	// Equipment reads may still run; the errgroup cancels after the first
	// failure but both goroutines start.
	s.mockEquipment.EXPECT().
		EquippedStats(gomock.Any(), "user_1").
		Return(entities.Stats{}, nil).
		AnyTimes()
	s.mockEquipment.EXPECT().
		EquippedWeapon(gomock.Any(), "user_1").
		Return(&external.WeaponProfile{
			PatternID: "pattern_single_arc",
			Bands:     entities.ZoneBands{Injure: 3000, Miss: 5000, Graze: 7000, Normal: 13000, Crit: 8000},
		}, nil).
		AnyTimes()

	_, err := s.orchestrator.StartCombat(s.ctx, &combat.StartCombatInput{
		UserID:      "user_1",
		LocationID:  "loc_nowhere",
		CombatLevel: 1,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestStartCombat_Validation() {
	testCases := []struct {
		name  string
		input *combat.StartCombatInput
	}{
		{"missing user", &combat.StartCombatInput{LocationID: "loc_riverside", CombatLevel: 1}},
		{"missing location", &combat.StartCombatInput{UserID: "user_1", CombatLevel: 1}},
		{"level zero", &combat.StartCombatInput{UserID: "user_1", LocationID: "loc_riverside"}},
		{"negative level", &combat.StartCombatInput{UserID: "user_1", LocationID: "loc_riverside", CombatLevel: -3}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.StartCombat(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}
