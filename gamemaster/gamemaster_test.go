package gamemaster

import (
	"testing"
	"war/game"

	"github.com/stretchr/testify/require"
)

type scriptedDice struct {
	draws []int
}

func (d *scriptedDice) Intn(n int) int {
	v := d.draws[0]
	d.draws = d.draws[1:]
	return v
}

func newRegistry(t *testing.T) *game.Registry {
	reg, err := game.NewRegistry([]game.Territory{
		{Name: "Brasil", Color: "azul", Troops: 5},
		{Name: "Chile", Color: "vermelho", Troops: 1},
		{Name: "Peru", Color: "azul", Troops: 1},
		{Name: "Bolivia", Color: "verde", Troops: 3},
		{Name: "Uruguai", Color: "vermelho", Troops: 2},
	})
	require.NoError(t, err)
	return reg
}

func TestNewGameMaster(t *testing.T) {
	reg := newRegistry(t)
	gm := NewGameMaster(reg, "azul", game.NewStandardRules(), &scriptedDice{})

	require.Same(t, reg, gm.Registry())
	require.Equal(t, "azul", gm.Player())
}

func TestGameMasterAttack(t *testing.T) {
	t.Run("conquering an enemy territory", func(t *testing.T) {
		reg := newRegistry(t)
		gm := NewGameMaster(reg, "azul", game.NewStandardRules(), &scriptedDice{draws: []int{5, 0}})

		got, err := gm.Attack("Brasil", "Chile")

		require.NoError(t, err)
		require.True(t, got.Conquered)
		chile, _ := reg.FindByName("Chile")
		require.Equal(t, game.Territory{Name: "Chile", Color: "azul", Troops: 1}, *chile)
		brasil, _ := reg.FindByName("Brasil")
		require.Equal(t, 4, brasil.Troops)
	})

	t.Run("rejecting unknown territories", func(t *testing.T) {
		reg := newRegistry(t)
		before := reg.Hash()
		gm := NewGameMaster(reg, "azul", game.NewStandardRules(), &scriptedDice{})

		_, err := gm.Attack("Argentina", "Chile")
		require.ErrorIs(t, err, game.ErrInvalidTerritoryName)

		_, err = gm.Attack("Brasil", "chile")
		require.ErrorIs(t, err, game.ErrInvalidTerritoryName)

		require.Equal(t, before, reg.Hash(), "Registry should not change")
	})

	t.Run("rejecting self attack", func(t *testing.T) {
		reg := newRegistry(t)
		before := reg.Hash()
		gm := NewGameMaster(reg, "azul", game.NewStandardRules(), &scriptedDice{})

		_, err := gm.Attack("Brasil", "Brasil")

		require.ErrorIs(t, err, game.ErrSelfAttack)
		require.Equal(t, before, reg.Hash(), "Registry should not change")
	})

	t.Run("rejecting attacks from territories the player does not control", func(t *testing.T) {
		reg := newRegistry(t)
		before := reg.Hash()
		gm := NewGameMaster(reg, "azul", game.NewStandardRules(), &scriptedDice{})

		_, err := gm.Attack("Bolivia", "Chile")

		require.ErrorIs(t, err, game.ErrUnauthorizedAttacker)
		require.Equal(t, before, reg.Hash(), "Registry should not change")
	})

	t.Run("rejecting attacks without enough troops", func(t *testing.T) {
		reg := newRegistry(t)
		before := reg.Hash()
		gm := NewGameMaster(reg, "azul", game.NewStandardRules(), &scriptedDice{})

		_, err := gm.Attack("Peru", "Chile")

		require.ErrorIs(t, err, game.ErrInsufficientTroops)
		require.Equal(t, before, reg.Hash(), "Registry should not change")
	})
}

func TestGameMasterCheckMission(t *testing.T) {
	reg := newRegistry(t)
	gm := NewGameMaster(reg, "azul", game.NewStandardRules(), &scriptedDice{draws: []int{5, 0, 5, 0}})

	require.False(t, gm.CheckMission(game.ConquerTerritories))
	require.False(t, gm.CheckMission(game.EliminateColor))

	_, err := gm.Attack("Brasil", "Chile")
	require.NoError(t, err)
	require.True(t, gm.CheckMission(game.ConquerTerritories), "Three azul territories should satisfy")

	_, err = gm.Attack("Brasil", "Uruguai")
	require.NoError(t, err)
	require.False(t, gm.CheckMission(game.EliminateColor), "Uruguai still has one troop")
}
