package game

import (
	"war/meta"
)

// Mission identifies a session-long win condition.
type Mission int

const (
	ConquerTerritories Mission = iota // 0
	EliminateColor                    // 1
	HoldTerritories                   // 2
)

const (
	// ConquerTarget is how many territories the player must own.
	ConquerTarget = 3
	// HoldTarget is how many territories the player must hold with HoldMinTroops each.
	HoldTarget    = 5
	HoldMinTroops = 3
)

var missionDescriptions = map[Mission]string{
	ConquerTerritories: "Conquer 3 enemy territories",
	EliminateColor:     "Eliminate all territories of a specific color",
	HoldTerritories:    "Hold 5 territories with at least 3 troops each",
}

// DrawMission picks one of the meta.NUM_MISSIONS missions uniformly.
func DrawMission(dice Randomizer) Mission {
	return Mission(dice.Intn(meta.NUM_MISSIONS))
}

// Describe returns the mission text, or "" for an unknown mission.
func (m Mission) Describe() string {
	return missionDescriptions[m]
}

func (m Mission) String() string {
	switch m {
	case ConquerTerritories:
		return "conquer_territories"
	case EliminateColor:
		return "eliminate_color"
	case HoldTerritories:
		return "hold_territories"
	default:
		return "unknown"
	}
}
