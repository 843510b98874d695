package entities

import "time"

// SessionStatus tracks the combat state machine. Active transitions to
// Victory or Defeat; both are terminal.
type SessionStatus string

// Combat session states
const (
	SessionActive  SessionStatus = "active"
	SessionVictory SessionStatus = "victory"
	SessionDefeat  SessionStatus = "defeat"
)

// IsTerminal reports whether the session can no longer accept attacks
func (s SessionStatus) IsTerminal() bool {
	return s == SessionVictory || s == SessionDefeat
}

// CombatResult is the caller-reported outcome passed to combat completion
type CombatResult string

// Combat results
const (
	ResultVictory CombatResult = "victory"
	ResultDefeat  CombatResult = "defeat"
)

// IsValid checks if the result is a known outcome
func (r CombatResult) IsValid() bool {
	return r == ResultVictory || r == ResultDefeat
}

// CircleCentidegrees is the full weapon dial in hundredths of a degree
const CircleCentidegrees = 36000

// ZoneBands holds the five hit-zone widths in centidegrees (hundredths of a
// degree), in dial order. Integer widths keep the full-circle invariant
// exact: the five widths always sum to CircleCentidegrees.
type ZoneBands struct {
	Injure int `json:"injure"`
	Miss   int `json:"miss"`
	Graze  int `json:"graze"`
	Normal int `json:"normal"`
	Crit   int `json:"crit"`
}

// Total returns the summed width of all five zones in centidegrees
func (b ZoneBands) Total() int {
	return b.Injure + b.Miss + b.Graze + b.Normal + b.Crit
}

// WeaponConfig is the weapon snapshot a combat session fights with: the
// pattern it was derived from, the dial spin rate, and the accuracy-adjusted
// zone bands.
type WeaponConfig struct {
	PatternID string    `json:"pattern_id"`
	SpinRate  float64   `json:"spin_rate"`
	Bands     ZoneBands `json:"bands"`
}

// EnemySnapshot freezes the opponent at session start so later catalog
// changes cannot affect a fight in progress.
type EnemySnapshot struct {
	EnemyTypeID  string  `json:"enemy_type_id"`
	Name         string  `json:"name,omitempty"`
	AtkPower     float64 `json:"atk_power"`
	DefPower     float64 `json:"def_power"`
	MaxHP        int     `json:"max_hp"`
	Tier         int     `json:"tier"`
	StyleID      string  `json:"style_id"`
	DialogueTone string  `json:"dialogue_tone,omitempty"`
}

// CombatSession is the per-user combat state. Created by StartCombat,
// mutated only by ExecuteAttack, closed by CompleteCombat.
type CombatSession struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	LocationID  string        `json:"location_id"`
	CombatLevel int           `json:"combat_level"`
	Enemy       EnemySnapshot `json:"enemy"`
	PlayerStats Stats         `json:"player_stats"`
	Weapon      WeaponConfig  `json:"weapon"`
	PlayerHP    int           `json:"player_hp"`
	PlayerMaxHP int           `json:"player_max_hp"`
	EnemyHP     int           `json:"enemy_hp"`
	TurnNumber  int           `json:"turn_number"`
	Status      SessionStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	ExpiresAt   time.Time     `json:"expires_at"`
}
