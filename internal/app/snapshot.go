// internal/app/snapshot.go
package app

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/economy"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/grid"
)

type EnemyView struct {
	ID        types.EntityID
	Archetype defs.EnemyArchetype
	Position  grid.Vec3
	Health    int
	MaxHealth int
}

type TowerView struct {
	ID          types.EntityID
	Archetype   defs.TowerArchetype
	Cell        grid.Cell
	Level       int
	MaxLevel    int
	Damage      int
	Range       float64
	FireRate    float64
	TargetID    types.EntityID // last enemy shot at, zero when it is gone
	Investment  int
	UpgradeCost int // zero at max level
	SellValue   int
}

type ProjectileView struct {
	ID       types.EntityID
	Position grid.Vec3
	TargetID types.EntityID
}

// Snapshot is a read-only copy of the session for the presentation layer.
// Entity slices are ordered by ID.
type Snapshot struct {
	SessionID      string
	Time           float64
	State          component.GameState
	WavePhase      component.WavePhase
	Wave           int
	WaveTarget     int
	WaveSpawned    int
	NextWaveIn     float64
	Money          int
	Score          int
	Kills          int
	Escapes        int
	MaxEscapes     int
	LivesRemaining int

	SelectedArchetype defs.TowerArchetype
	HasArchetype      bool
	SelectedTower     types.EntityID

	Enemies     []EnemyView
	Towers      []TowerView
	Projectiles []ProjectileView
}

func (g *Game) Snapshot() Snapshot {
	wave := g.ECS.Wave
	s := Snapshot{
		SessionID:         g.ID,
		Time:              g.ECS.GameTime,
		State:             g.ECS.GameState,
		WavePhase:         wave.Phase,
		Wave:              wave.Number,
		WaveTarget:        wave.TargetCount,
		WaveSpawned:       wave.Spawned,
		NextWaveIn:        g.WaveSystem.NextWaveIn(),
		Money:             g.Ledger.Money(),
		Score:             g.Ledger.Score(),
		Kills:             g.Ledger.Kills(),
		Escapes:           g.Ledger.Escapes(),
		MaxEscapes:        g.Ledger.MaxEscapes(),
		LivesRemaining:    g.Ledger.LivesRemaining(),
		SelectedArchetype: g.selectedArchetype,
		HasArchetype:      g.hasArchetype,
		SelectedTower:     g.selectedTower,
	}

	for _, id := range entity.SortedIDs(g.ECS.Enemies) {
		enemy := g.ECS.Enemies[id]
		view := EnemyView{ID: id, Archetype: enemy.Archetype}
		if pos, ok := g.ECS.Positions[id]; ok {
			view.Position = pos.Vec3
		}
		if health, ok := g.ECS.Healths[id]; ok {
			view.Health, view.MaxHealth = health.Value, health.Max
		}
		s.Enemies = append(s.Enemies, view)
	}

	for _, id := range entity.SortedIDs(g.ECS.Towers) {
		tower := g.ECS.Towers[id]
		view := TowerView{
			ID:         id,
			Archetype:  tower.Archetype,
			Cell:       tower.Cell,
			Level:      tower.Level,
			Investment: tower.Investment,
			SellValue:  economy.SellRefund(tower.Investment, config.RefundFraction),
		}
		if def, ok := g.Defs.Tower(tower.Archetype); ok {
			view.MaxLevel = def.MaxLevel()
			view.UpgradeCost, _ = economy.UpgradeCost(def, tower.Level)
		}
		if combat, ok := g.ECS.Combats[id]; ok {
			view.Damage, view.Range, view.FireRate = combat.Damage, combat.Range, combat.FireRate
			if g.ECS.LiveEnemy(combat.TargetID) != nil {
				view.TargetID = combat.TargetID
			}
		}
		s.Towers = append(s.Towers, view)
	}

	for _, id := range entity.SortedIDs(g.ECS.Projectiles) {
		view := ProjectileView{ID: id, TargetID: g.ECS.Projectiles[id].TargetID}
		if pos, ok := g.ECS.Positions[id]; ok {
			view.Position = pos.Vec3
		}
		s.Projectiles = append(s.Projectiles, view)
	}
	return s
}
