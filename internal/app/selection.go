package app

import (
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/grid"
)

// SelectArchetype picks the archetype the next PlaceSelected builds and
// drops any tower selection.
func (g *Game) SelectArchetype(a defs.TowerArchetype) error {
	const op = "select"
	if !g.StateSystem.Running() {
		return g.reject(op, ErrSessionNotRunning)
	}
	if _, ok := g.Defs.Tower(a); !ok {
		return g.reject(op, ErrUnknownArchetype)
	}
	g.selectedArchetype = a
	g.hasArchetype = true
	g.selectedTower = 0
	return nil
}

// SelectTowerAt selects the tower standing on (x, z).
func (g *Game) SelectTowerAt(x, z int) (types.EntityID, error) {
	const op = "select"
	if !g.StateSystem.Running() {
		return 0, g.reject(op, ErrSessionNotRunning)
	}
	id, ok := g.ECS.TowerAt(grid.Cell{X: x, Z: z})
	if !ok {
		return 0, g.reject(op, ErrNoTowerAtCell)
	}
	g.selectedTower = id
	return id, nil
}

func (g *Game) ClearSelection() {
	g.hasArchetype = false
	g.selectedTower = 0
}

// SelectedArchetype returns the archetype chosen for placement, if any.
func (g *Game) SelectedArchetype() (defs.TowerArchetype, bool) {
	return g.selectedArchetype, g.hasArchetype
}

// SelectedTower returns the selected tower, or zero.
func (g *Game) SelectedTower() types.EntityID {
	return g.selectedTower
}

func (g *Game) PlaceSelected(x, z int) (types.EntityID, error) {
	if !g.hasArchetype {
		return 0, g.reject("place", ErrNoSelection)
	}
	return g.PlaceTower(g.selectedArchetype, x, z)
}

func (g *Game) UpgradeSelected() error {
	if g.selectedTower == 0 {
		return g.reject("upgrade", ErrNoSelection)
	}
	return g.UpgradeTower(g.selectedTower)
}

func (g *Game) SellSelected() (int, error) {
	if g.selectedTower == 0 {
		return 0, g.reject("sell", ErrNoSelection)
	}
	return g.SellTower(g.selectedTower)
}
