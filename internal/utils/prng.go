// internal/utils/prng.go
package utils

import (
	"go-tower-sim/internal/defs"
	"math/rand"
	"time"
)

// PRNGService wraps a seeded math/rand source so every random decision in a
// session comes from one injectable stream.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService creates a service with the given seed.
// A zero seed picks one from the clock.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the stream was started from.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random number in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// ChooseWeighted picks an archetype from a spawn table: sum the weights,
// draw a number in that range and walk the table until it is covered.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnWeight) defs.EnemyArchetype {
	if len(entries) == 0 {
		return defs.EnemyBasic
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}

	if totalWeight <= 0 {
		return entries[0].Archetype
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.Archetype
		}
		upto += entry.Weight
	}

	return entries[len(entries)-1].Archetype
}
