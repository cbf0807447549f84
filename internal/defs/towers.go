// internal/defs/towers.go
package defs

import (
	"image/color"
)

// TowerLevel is one authored upgrade tier. UpgradeCost is what it costs to
// reach this tier from the one below; it is ignored on tier 0.
type TowerLevel struct {
	Damage      int     `json:"damage" yaml:"damage"`
	Range       float64 `json:"range" yaml:"range"`
	FireRate    float64 `json:"fire_rate" yaml:"fire_rate"` // Shots per second
	UpgradeCost int     `json:"upgrade_cost" yaml:"upgrade_cost"`
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Cost        int          `json:"cost" yaml:"cost"`
	Levels      []TowerLevel `json:"levels" yaml:"levels"`
	Visuals     Visuals      `json:"visuals" yaml:"visuals"`
}

// MaxLevel is the highest reachable upgrade level.
func (d TowerDefinition) MaxLevel() int {
	return len(d.Levels) - 1
}

// Stats returns the combat stats at the given level.
func (d TowerDefinition) Stats(level int) (TowerLevel, bool) {
	if level < 0 || level >= len(d.Levels) {
		return TowerLevel{}, false
	}
	return d.Levels[level], true
}

// UpgradeCost is the price of going from level to level+1.
// ok is false when level is already the maximum.
func (d TowerDefinition) UpgradeCost(level int) (cost int, ok bool) {
	if level < 0 || level >= d.MaxLevel() {
		return 0, false
	}
	return d.Levels[level+1].UpgradeCost, true
}

// TotalInvestment is the base cost plus every upgrade paid to reach level.
func (d TowerDefinition) TotalInvestment(level int) int {
	total := d.Cost
	for i := 1; i <= level && i < len(d.Levels); i++ {
		total += d.Levels[i].UpgradeCost
	}
	return total
}

// DefaultTowerDefs are the authored tower tables.
func DefaultTowerDefs() map[TowerArchetype]TowerDefinition {
	return map[TowerArchetype]TowerDefinition{
		TowerBasic: {
			ID:          TowerBasic.String(),
			Name:        "Basic Tower",
			Description: "Standard shot",
			Cost:        30,
			Levels: []TowerLevel{
				{Damage: 3, Range: 2.5, FireRate: 1.0},
				{Damage: 5, Range: 3.0, FireRate: 1.1, UpgradeCost: 15},
				{Damage: 8, Range: 3.5, FireRate: 1.3, UpgradeCost: 25},
			},
			Visuals: Visuals{Color: color.RGBA{50, 100, 255, 255}, RadiusFactor: 1.0},
		},
		TowerSniper: {
			ID:          TowerSniper.String(),
			Name:        "Sniper Tower",
			Description: "High damage, slow fire",
			Cost:        50,
			Levels: []TowerLevel{
				{Damage: 4, Range: 4.0, FireRate: 0.6},
				{Damage: 8, Range: 5.0, FireRate: 0.42, UpgradeCost: 35},
				{Damage: 15, Range: 6.5, FireRate: 0.48, UpgradeCost: 45},
			},
			Visuals: Visuals{Color: color.RGBA{160, 160, 160, 255}, RadiusFactor: 0.9},
		},
		TowerRapid: {
			ID:          TowerRapid.String(),
			Name:        "Rapid Tower",
			Description: "Fast, low damage shots",
			Cost:        65,
			Levels: []TowerLevel{
				{Damage: 2, Range: 2.5, FireRate: 1.5},
				{Damage: 3, Range: 2.8, FireRate: 2.55, UpgradeCost: 45},
				{Damage: 5, Range: 3.0, FireRate: 3.0, UpgradeCost: 50},
			},
			Visuals: Visuals{Color: color.RGBA{50, 200, 50, 255}, RadiusFactor: 0.8},
		},
	}
}
