package game

import (
	"war/meta"
	"war/utils"
)

// IsSatisfied evaluates the mission against the current registry. Unknown missions are never satisfied.
func (m Mission) IsSatisfied(reg *Registry, playerColor string) bool {
	territories := reg.All()

	switch m {
	case ConquerTerritories:
		// Counts owned territories, not conquests made during the session
		owned := utils.Count(territories, func(t Territory) bool {
			return t.Owned(playerColor)
		})
		return owned >= ConquerTarget
	case EliminateColor:
		// The target color is fixed, even when it is the player's own
		return utils.FindIndexFunc(territories, func(t Territory) bool {
			return t.Owned(meta.ELIMINATION_COLOR)
		}) < 0
	case HoldTerritories:
		held := utils.Count(territories, func(t Territory) bool {
			return t.Owned(playerColor) && t.Troops >= HoldMinTroops
		})
		return held >= HoldTarget
	default:
		return false
	}
}
