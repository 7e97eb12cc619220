package game

type StandardRules struct {
	MinAttack int
	Faces     int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		MinAttack: 2,
		Faces:     6,
	}
}

func (sr *StandardRules) MinAttackTroops() int {
	return sr.MinAttack
}

func (sr *StandardRules) DieFaces() int {
	return sr.Faces
}

func (sr *StandardRules) DetermineAttackOutcome(attackRoll, defenseRoll int) (attackerLosses, defenderLosses int) {
	// Ties go to the defender
	if attackRoll > defenseRoll {
		return 0, 1
	}
	return 1, 0
}
