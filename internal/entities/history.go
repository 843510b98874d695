package entities

// PlayerCombatHistory is the per-(user, location) attempt and streak record.
// Initialized lazily on a player's first combat at a location.
type PlayerCombatHistory struct {
	UserID        string `json:"user_id"`
	LocationID    string `json:"location_id"`
	TotalAttempts int    `json:"total_attempts"`
	Victories     int    `json:"victories"`
	Defeats       int    `json:"defeats"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
}
