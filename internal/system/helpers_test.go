package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/economy"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
	"go-tower-sim/pkg/grid"
	"io"
	"log"
)

type world struct {
	ecs        *entity.ECS
	ledger     *economy.Ledger
	dispatcher *event.Dispatcher
	events     *event.Queue
	logger     *log.Logger
}

func newWorld() *world {
	w := &world{
		ecs:        entity.NewECS(),
		ledger:     economy.NewLedger(200, 3),
		dispatcher: event.NewDispatcher(),
		events:     event.NewQueue(),
		logger:     log.New(io.Discard, "", 0),
	}
	w.dispatcher.SubscribeAll(w.events)
	w.ecs.GameState = component.Running
	return w
}

// addEnemy places a live enemy walking the given waypoints from the first one.
func (w *world) addEnemy(hp int, speed float64, waypoints ...grid.Vec3) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{Vec3: waypoints[0]}
	w.ecs.Velocities[id] = &component.Velocity{Speed: speed}
	w.ecs.Paths[id] = &component.Path{Waypoints: waypoints, CurrentIndex: 1}
	w.ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	w.ecs.Enemies[id] = &component.Enemy{Archetype: defs.EnemyBasic, Wave: 1, Reward: 10, Score: 5, Alive: true}
	return id
}

// addTower places a tower on a cell with explicit combat stats.
func (w *world) addTower(cell grid.Cell, damage int, rangeRadius, fireRate float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Towers[id] = &component.Tower{Archetype: defs.TowerBasic, Cell: cell}
	w.ecs.Combats[id] = &component.Combat{Damage: damage, Range: rangeRadius, FireRate: fireRate}
	return id
}

func (w *world) countEvents(t event.EventType) int {
	n := 0
	for _, e := range w.events.Drain() {
		if e.Type == t {
			n++
		}
	}
	return n
}
