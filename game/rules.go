package game

type Rules interface {
	// MinAttackTroops is the smallest troop count a territory needs to launch an attack
	MinAttackTroops() int
	DieFaces() int
	DetermineAttackOutcome(attackRoll, defenseRoll int) (attackerLosses, defenderLosses int)
}
