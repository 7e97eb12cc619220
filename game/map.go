package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"war/meta"
	"war/utils"
)

type Territory struct {
	Name   string // Unique name, used as the lookup key for attacks
	Color  string // Army color of the owner
	Troops int
}

// Owned reports whether the territory belongs to the given army color (exact match).
func (t Territory) Owned(color string) bool {
	return t.Color == color
}

// Registry holds the fixed, ordered set of territories of a session.
type Registry struct {
	territories []*Territory
}

// NewRegistry creates a registry from exactly meta.NUM_TERRITORIES territories, kept in the given order.
func NewRegistry(territories []Territory) (*Registry, error) {
	if len(territories) != meta.NUM_TERRITORIES {
		return nil, fmt.Errorf("%w: got %d territories, want %d", ErrRegistryAllocation, len(territories), meta.NUM_TERRITORIES)
	}
	names := make([]string, 0, len(territories))
	reg := &Registry{territories: make([]*Territory, 0, len(territories))}
	for _, t := range territories {
		if t.Name == "" {
			return nil, fmt.Errorf("%w: empty territory name", ErrRegistryAllocation)
		}
		if utils.FindIndex(names, t.Name) >= 0 {
			return nil, fmt.Errorf("%w: duplicate territory %q", ErrRegistryAllocation, t.Name)
		}
		if t.Troops < 1 {
			return nil, fmt.Errorf("%w: territory %q needs at least one troop, got %d", ErrRegistryAllocation, t.Name, t.Troops)
		}
		names = append(names, t.Name)
		territory := t
		reg.territories = append(reg.territories, &territory)
	}
	return reg, nil
}

func (r *Registry) Len() int {
	return len(r.territories)
}

// At returns the territory at position i in creation order.
func (r *Registry) At(i int) *Territory {
	return r.territories[i]
}

// FindByName returns the first territory whose name equals name exactly.
func (r *Registry) FindByName(name string) (*Territory, bool) {
	i := utils.FindIndexFunc(r.territories, func(t *Territory) bool {
		return t.Name == name
	})
	if i < 0 {
		return nil, false
	}
	return r.territories[i], true
}

// All returns a snapshot of the territories in creation order.
func (r *Registry) All() []Territory {
	all := make([]Territory, len(r.territories))
	for i, t := range r.territories {
		all[i] = *t
	}
	return all
}

// Hash fingerprints names, colors and troop counts in order.
func (r *Registry) Hash() StateHash {
	hasher := fnv.New64a()

	for _, t := range r.territories {
		hasher.Write([]byte(t.Name))
		hasher.Write([]byte{0})
		hasher.Write([]byte(t.Color))
		hasher.Write([]byte{0})
		binary.Write(hasher, binary.LittleEndian, int64(t.Troops))
	}

	return StateHash(hasher.Sum64())
}

type StateHash uint64
