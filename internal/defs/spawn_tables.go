// internal/defs/spawn_tables.go
package defs

// SpawnWeight is one entry of a wave's spawn table.
// Weight is the relative chance of the archetype being picked.
type SpawnWeight struct {
	Archetype EnemyArchetype `json:"archetype"`
	Weight    int            `json:"weight"`
}

const (
	basicStartWeight = 100
	basicWeightDecay = 5
	basicMinWeight   = 30

	fastUnlockWave   = 3
	fastStartWeight  = 20
	fastWeightGrowth = 5
	fastMaxWeight    = 60

	heavyUnlockWave   = 6
	heavyStartWeight  = 10
	heavyWeightGrowth = 4
	heavyMaxWeight    = 40
)

// SpawnWeights returns the spawn table for a wave. Archetypes with no
// chance yet are left out.
func SpawnWeights(wave int) []SpawnWeight {
	weights := []SpawnWeight{{
		Archetype: EnemyBasic,
		Weight:    max(basicMinWeight, basicStartWeight-basicWeightDecay*max(0, wave-1)),
	}}
	if wave >= fastUnlockWave {
		weights = append(weights, SpawnWeight{
			Archetype: EnemyFast,
			Weight:    min(fastMaxWeight, fastStartWeight+fastWeightGrowth*(wave-fastUnlockWave)),
		})
	}
	if wave >= heavyUnlockWave {
		weights = append(weights, SpawnWeight{
			Archetype: EnemyHeavy,
			Weight:    min(heavyMaxWeight, heavyStartWeight+heavyWeightGrowth*(wave-heavyUnlockWave)),
		})
	}
	return weights
}
