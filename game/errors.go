package game

import "errors"

var (
	ErrRegistryAllocation   = errors.New("cannot allocate territory registry")
	ErrInvalidTerritoryName = errors.New("invalid territory")
	ErrUnauthorizedAttacker = errors.New("attacker not controlled by player")
	ErrInsufficientTroops   = errors.New("not enough troops to attack")
	ErrSelfAttack           = errors.New("territory cannot attack itself")
)
