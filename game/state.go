package game

import (
	"fmt"
)

// AttackOutcome reports one resolved combat round with post-attack troop counts.
type AttackOutcome struct {
	AttackRoll     int
	DefenseRoll    int
	AttackerWon    bool // Defender lost a troop
	Conquered      bool // Defender changed hands
	AttackerTroops int
	DefenderTroops int
	DefenderColor  string // Owner of the defending territory after the attack
}

// Attack resolves a single dice round between two distinct territories. Ownership is the caller's concern.
func Attack(attacker, defender *Territory, rules Rules, dice Randomizer) (AttackOutcome, error) {
	if attacker.Troops < rules.MinAttackTroops() {
		return AttackOutcome{}, fmt.Errorf("cannot attack from %q with %d troops: %w", attacker.Name, attacker.Troops, ErrInsufficientTroops)
	}

	attackRoll := RollDie(dice, rules.DieFaces())
	defenseRoll := RollDie(dice, rules.DieFaces())

	attackerLosses, defenderLosses := rules.DetermineAttackOutcome(attackRoll, defenseRoll)

	attacker.Troops -= attackerLosses
	defender.Troops -= defenderLosses

	conquered := false
	if defenderLosses > 0 && defender.Troops <= 0 {
		// Capture the territory with a single occupying troop
		defender.Color = attacker.Color
		defender.Troops = 1
		attacker.Troops--
		conquered = true
	}

	return AttackOutcome{
		AttackRoll:     attackRoll,
		DefenseRoll:    defenseRoll,
		AttackerWon:    defenderLosses > 0,
		Conquered:      conquered,
		AttackerTroops: attacker.Troops,
		DefenderTroops: defender.Troops,
		DefenderColor:  defender.Color,
	}, nil
}
