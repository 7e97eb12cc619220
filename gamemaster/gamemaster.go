package gamemaster

import (
	"fmt"
	"war/game"

	"github.com/rs/zerolog/log"
)

// GameMaster validates the player's actions and resolves them against the registry.
type GameMaster struct {
	registry *game.Registry
	player   string
	rules    game.Rules
	dice     game.Randomizer
}

// NewGameMaster initializes a new GameMaster for the given player color.
func NewGameMaster(registry *game.Registry, player string, rules game.Rules, dice game.Randomizer) *GameMaster {
	return &GameMaster{
		registry: registry,
		player:   player,
		rules:    rules,
		dice:     dice,
	}
}

func (gm *GameMaster) Registry() *game.Registry {
	return gm.registry
}

func (gm *GameMaster) Player() string {
	return gm.player
}

// Attack resolves an attack between two territories named by the player.
func (gm *GameMaster) Attack(origin, destination string) (game.AttackOutcome, error) {
	attacker, ok := gm.registry.FindByName(origin)
	if !ok {
		return game.AttackOutcome{}, fmt.Errorf("origin %q: %w", origin, game.ErrInvalidTerritoryName)
	}
	defender, ok := gm.registry.FindByName(destination)
	if !ok {
		return game.AttackOutcome{}, fmt.Errorf("destination %q: %w", destination, game.ErrInvalidTerritoryName)
	}

	if attacker == defender {
		return game.AttackOutcome{}, fmt.Errorf("%q: %w", origin, game.ErrSelfAttack)
	}

	// Validate that the attack comes from the player's own army
	if !attacker.Owned(gm.player) {
		return game.AttackOutcome{}, fmt.Errorf("%q is held by %q: %w", origin, attacker.Color, game.ErrUnauthorizedAttacker)
	}

	outcome, err := game.Attack(attacker, defender, gm.rules, gm.dice)
	if err != nil {
		return game.AttackOutcome{}, err
	}

	log.Info().
		Str("origin", origin).
		Str("destination", destination).
		Int("attack_roll", outcome.AttackRoll).
		Int("defense_roll", outcome.DefenseRoll).
		Bool("conquered", outcome.Conquered).
		Int("attacker_troops", outcome.AttackerTroops).
		Int("defender_troops", outcome.DefenderTroops).
		Msg("attack resolved")

	return outcome, nil
}

// CheckMission determines if the player has completed the mission.
func (gm *GameMaster) CheckMission(mission game.Mission) bool {
	done := mission.IsSatisfied(gm.registry, gm.player)
	log.Info().Stringer("mission", mission).Bool("satisfied", done).Msg("mission checked")
	return done
}
