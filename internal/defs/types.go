// internal/defs/types.go
package defs

import (
	"fmt"
	"image/color"
)

// EnemyArchetype is the closed set of enemy kinds.
type EnemyArchetype uint8

const (
	EnemyBasic EnemyArchetype = iota
	EnemyFast
	EnemyHeavy
)

// EnemyArchetypes lists every enemy kind in table order.
var EnemyArchetypes = []EnemyArchetype{EnemyBasic, EnemyFast, EnemyHeavy}

func (a EnemyArchetype) String() string {
	switch a {
	case EnemyBasic:
		return "basic"
	case EnemyFast:
		return "fast"
	case EnemyHeavy:
		return "heavy"
	}
	return fmt.Sprintf("enemy(%d)", uint8(a))
}

// ParseEnemyArchetype maps a definition ID back to its archetype.
func ParseEnemyArchetype(id string) (EnemyArchetype, error) {
	for _, a := range EnemyArchetypes {
		if a.String() == id {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown enemy archetype %q", id)
}

// TowerArchetype is the closed set of tower kinds.
type TowerArchetype uint8

const (
	TowerBasic TowerArchetype = iota
	TowerSniper
	TowerRapid
)

// TowerArchetypes lists every tower kind in table order.
var TowerArchetypes = []TowerArchetype{TowerBasic, TowerSniper, TowerRapid}

func (a TowerArchetype) String() string {
	switch a {
	case TowerBasic:
		return "basic"
	case TowerSniper:
		return "sniper"
	case TowerRapid:
		return "rapid"
	}
	return fmt.Sprintf("tower(%d)", uint8(a))
}

// ParseTowerArchetype maps a definition ID back to its archetype.
func ParseTowerArchetype(id string) (TowerArchetype, error) {
	for _, a := range TowerArchetypes {
		if a.String() == id {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown tower archetype %q", id)
}

// Visuals contains parameters for rendering an enemy or tower.
type Visuals struct {
	Color        color.RGBA `json:"color" yaml:"color"`
	RadiusFactor float64    `json:"radius_factor" yaml:"radius_factor"`
}
