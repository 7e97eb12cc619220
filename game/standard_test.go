package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardRules(t *testing.T) {
	rules := NewStandardRules()

	require.Equal(t, 2, rules.MinAttackTroops())
	require.Equal(t, 6, rules.DieFaces())

	t.Run("determining attack outcome", func(t *testing.T) {
		cases := []struct {
			attack, defense            int
			attackerLoss, defenderLoss int
		}{
			{6, 1, 0, 1},
			{2, 1, 0, 1},
			{3, 3, 1, 0},
			{1, 6, 1, 0},
		}
		for _, c := range cases {
			attackerLoss, defenderLoss := rules.DetermineAttackOutcome(c.attack, c.defense)
			require.Equal(t, c.attackerLoss, attackerLoss, "attack %d vs defense %d", c.attack, c.defense)
			require.Equal(t, c.defenderLoss, defenderLoss, "attack %d vs defense %d", c.attack, c.defense)
		}
	})
}
