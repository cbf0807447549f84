package defs

import (
	"errors"
	"fmt"
)

var ErrInvalidDefinition = errors.New("invalid definition")

// Library is the set of enemy and tower tables a session plays with.
type Library struct {
	Enemies map[EnemyArchetype]EnemyDefinition
	Towers  map[TowerArchetype]TowerDefinition
}

// DefaultLibrary returns a fresh copy of the authored tables.
func DefaultLibrary() *Library {
	return &Library{
		Enemies: DefaultEnemyDefs(),
		Towers:  DefaultTowerDefs(),
	}
}

func (l *Library) Enemy(a EnemyArchetype) (EnemyDefinition, bool) {
	def, ok := l.Enemies[a]
	return def, ok
}

func (l *Library) Tower(a TowerArchetype) (TowerDefinition, bool) {
	def, ok := l.Towers[a]
	return def, ok
}

// Validate checks that every archetype has a usable table.
func (l *Library) Validate() error {
	for _, a := range EnemyArchetypes {
		def, ok := l.Enemies[a]
		if !ok {
			return fmt.Errorf("enemy %s: missing: %w", a, ErrInvalidDefinition)
		}
		if def.Health <= 0 || def.Speed <= 0 || def.Reward < 0 || def.Score < 0 {
			return fmt.Errorf("enemy %s: health and speed must be positive, rewards non-negative: %w", a, ErrInvalidDefinition)
		}
	}
	for _, a := range TowerArchetypes {
		def, ok := l.Towers[a]
		if !ok {
			return fmt.Errorf("tower %s: missing: %w", a, ErrInvalidDefinition)
		}
		if def.Cost <= 0 || len(def.Levels) == 0 {
			return fmt.Errorf("tower %s: needs a positive cost and at least one level: %w", a, ErrInvalidDefinition)
		}
		for i, lvl := range def.Levels {
			if lvl.FireRate <= 0 || lvl.Range <= 0 || lvl.Damage < 0 {
				return fmt.Errorf("tower %s level %d: bad combat stats: %w", a, i, ErrInvalidDefinition)
			}
			if i > 0 && lvl.UpgradeCost < 0 {
				return fmt.Errorf("tower %s level %d: negative upgrade cost: %w", a, i, ErrInvalidDefinition)
			}
		}
	}
	return nil
}
