// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Health int     `json:"health" yaml:"health"`
	Speed  float64 `json:"speed" yaml:"speed"` // world units per second
	Reward int     `json:"reward" yaml:"reward"`
	Score  int     `json:"score" yaml:"score"`

	Visuals Visuals `json:"visuals" yaml:"visuals"`
}

// DefaultEnemyDefs are the authored enemy stats.
func DefaultEnemyDefs() map[EnemyArchetype]EnemyDefinition {
	return map[EnemyArchetype]EnemyDefinition{
		EnemyBasic: {
			ID: EnemyBasic.String(), Name: "Zombie",
			Health: 100, Speed: 1.0, Reward: 10, Score: 5,
			Visuals: Visuals{Color: color.RGBA{200, 200, 200, 255}, RadiusFactor: 1.0},
		},
		EnemyFast: {
			ID: EnemyFast.String(), Name: "Hellhound",
			Health: 200, Speed: 1.5, Reward: 25, Score: 10,
			Visuals: Visuals{Color: color.RGBA{220, 40, 40, 255}, RadiusFactor: 0.8},
		},
		EnemyHeavy: {
			ID: EnemyHeavy.String(), Name: "Tank",
			Health: 500, Speed: 0.6, Reward: 40, Score: 20,
			Visuals: Visuals{Color: color.RGBA{40, 80, 220, 255}, RadiusFactor: 1.3},
		},
	}
}
