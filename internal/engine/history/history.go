// Package history updates the per-(user, location) combat counter record.
package history

import (
	"github.com/wanderforge/wander-api/internal/entities"
)

// Record applies one combat outcome to a history record and returns the
// updated copy. Attempts always increment; a victory extends the current
// streak (and the longest, when surpassed); a defeat resets it to zero.
func Record(h entities.PlayerCombatHistory, result entities.CombatResult) entities.PlayerCombatHistory {
	h.TotalAttempts++

	switch result {
	case entities.ResultVictory:
		h.Victories++
		h.CurrentStreak++
		if h.CurrentStreak > h.LongestStreak {
			h.LongestStreak = h.CurrentStreak
		}
	case entities.ResultDefeat:
		h.Defeats++
		h.CurrentStreak = 0
	}

	return h
}
