package game

import (
	"golang.org/x/exp/rand"
)

// Randomizer draws uniform integers in [0, n). *rand.Rand satisfies it; tests inject scripted draws.
type Randomizer interface {
	Intn(n int) int
}

// NewRandomizer returns a pseudo-random source seeded with seed.
func NewRandomizer(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RollDie draws a uniform value in [1, faces].
func RollDie(dice Randomizer, faces int) int {
	return dice.Intn(faces) + 1
}
