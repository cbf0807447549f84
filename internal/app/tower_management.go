// internal/app/tower_management.go
package app

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/economy"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/grid"
)

// CheckPlacement reports why a tower of the given archetype could not be
// placed on (x, z) right now, or nil if it could. Cell legality is checked
// before occupancy, then funds.
func (g *Game) CheckPlacement(a defs.TowerArchetype, x, z int) error {
	if !g.StateSystem.Running() {
		return ErrSessionNotRunning
	}
	def, ok := g.Defs.Tower(a)
	if !ok {
		return ErrUnknownArchetype
	}
	if g.Path.IsPath(x, z) || !g.Path.IsBuildable(x, z) {
		return ErrIllegalCell
	}
	if _, taken := g.ECS.TowerAt(grid.Cell{X: x, Z: z}); taken {
		return ErrCellOccupied
	}
	if !g.Ledger.CanAfford(def.Cost) {
		return ErrInsufficientFunds
	}
	return nil
}

// PlaceTower buys a tower and puts it on (x, z).
func (g *Game) PlaceTower(a defs.TowerArchetype, x, z int) (types.EntityID, error) {
	const op = "place"
	if err := g.CheckPlacement(a, x, z); err != nil {
		return 0, g.reject(op, err)
	}

	def, _ := g.Defs.Tower(a)
	if err := g.Ledger.Spend(def.Cost); err != nil {
		return 0, g.reject(op, err)
	}

	cell := grid.Cell{X: x, Z: z}
	id := g.createTowerEntity(a, def, cell)
	g.logger.Printf("Placed %s at %s for %d", def.Name, cell, def.Cost)
	g.dispatch(event.TowerPlaced, event.TowerData{
		TowerID:   id,
		Archetype: a,
		Cell:      cell,
		Amount:    def.Cost,
	})
	return id, nil
}

func (g *Game) createTowerEntity(a defs.TowerArchetype, def defs.TowerDefinition, cell grid.Cell) types.EntityID {
	stats, _ := def.Stats(0)
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{Vec3: cell.Center(config.TowerHeight)}
	g.ECS.Towers[id] = &component.Tower{
		Archetype:  a,
		Cell:       cell,
		Investment: def.Cost,
	}
	g.ECS.Combats[id] = &component.Combat{
		Damage:   stats.Damage,
		Range:    stats.Range,
		FireRate: stats.FireRate,
	}
	return id
}

// UpgradeTower buys the next level of a tower. Only the derived stats
// change; the tower's cooldown carries on.
func (g *Game) UpgradeTower(id types.EntityID) error {
	const op = "upgrade"
	if !g.StateSystem.Running() {
		return g.reject(op, ErrSessionNotRunning)
	}
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return g.reject(op, ErrNoSuchTower)
	}
	def, ok := g.Defs.Tower(tower.Archetype)
	if !ok {
		return g.reject(op, ErrUnknownArchetype)
	}
	cost, ok := economy.UpgradeCost(def, tower.Level)
	if !ok {
		return g.reject(op, ErrMaxLevel)
	}
	if err := g.Ledger.Spend(cost); err != nil {
		return g.reject(op, err)
	}

	tower.Level++
	tower.Investment += cost
	stats, _ := def.Stats(tower.Level)
	if combat, ok := g.ECS.Combats[id]; ok {
		combat.Damage = stats.Damage
		combat.Range = stats.Range
		combat.FireRate = stats.FireRate
	}

	g.logger.Printf("Upgraded %s at %s to level %d for %d", def.Name, tower.Cell, tower.Level, cost)
	g.dispatch(event.TowerUpgraded, event.TowerData{
		TowerID:   id,
		Archetype: tower.Archetype,
		Cell:      tower.Cell,
		Level:     tower.Level,
		Amount:    cost,
	})
	return nil
}

// SellTower removes a tower and refunds part of everything paid for it.
func (g *Game) SellTower(id types.EntityID) (int, error) {
	const op = "sell"
	if !g.StateSystem.Running() {
		return 0, g.reject(op, ErrSessionNotRunning)
	}
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return 0, g.reject(op, ErrNoSuchTower)
	}

	refund := economy.SellRefund(tower.Investment, config.RefundFraction)
	if err := g.Ledger.Credit(refund); err != nil {
		return 0, g.reject(op, err)
	}
	g.ECS.RemoveTower(id)
	if g.selectedTower == id {
		g.selectedTower = 0
	}

	g.logger.Printf("Sold tower at %s for %d", tower.Cell, refund)
	g.dispatch(event.TowerSold, event.TowerData{
		TowerID:   id,
		Archetype: tower.Archetype,
		Cell:      tower.Cell,
		Level:     tower.Level,
		Amount:    refund,
	})
	return refund, nil
}
