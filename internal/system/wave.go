// internal/system/wave.go
package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/economy"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/utils"
	"go-tower-sim/pkg/grid"
	"log"
)

// WaveSystem paces waves: a rest period, then one enemy per spawn interval
// until the wave's quota is out, then a wait for the field to clear.
type WaveSystem struct {
	ecs             *entity.ECS
	path            *grid.Path
	library         *defs.Library
	ledger          *economy.Ledger
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	logger          *log.Logger
}

func NewWaveSystem(ecs *entity.ECS, path *grid.Path, library *defs.Library, ledger *economy.Ledger,
	rng *utils.PRNGService, eventDispatcher *event.Dispatcher, logger *log.Logger) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		path:            path,
		library:         library,
		ledger:          ledger,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// Reset puts the director at the start of wave 1, resting.
func (s *WaveSystem) Reset() {
	*s.ecs.Wave = component.Wave{
		Number:      1,
		TargetCount: defs.EnemiesForWave(1),
		Phase:       component.WaveResting,
	}
	s.ledger.SetWave(1)
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	switch wave.Phase {
	case component.WaveResting:
		wave.WaveTimer += deltaTime
		if wave.WaveTimer >= config.WaveDelay {
			s.startWave()
		}
	case component.WaveSpawning:
		if wave.Spawned < wave.TargetCount {
			wave.SpawnTimer += deltaTime
			if wave.SpawnTimer >= wave.SpawnInterval {
				s.spawnEnemy()
				wave.SpawnTimer = 0
			}
		} else if len(s.ecs.Enemies) == 0 {
			s.endWave()
		}
	}
}

// NextWaveIn is the rest time left before the next wave, zero while spawning.
func (s *WaveSystem) NextWaveIn() float64 {
	wave := s.ecs.Wave
	if wave.Phase != component.WaveResting {
		return 0
	}
	return max(0, config.WaveDelay-wave.WaveTimer)
}

func (s *WaveSystem) startWave() {
	wave := s.ecs.Wave
	wave.Phase = component.WaveSpawning
	wave.WaveTimer = 0
	wave.SpawnTimer = 0
	wave.Spawned = 0
	wave.SpawnInterval = defs.SpawnInterval(wave.Number, s.rng)

	s.logger.Printf("Wave %d started: %d enemies every %.2fs", wave.Number, wave.TargetCount, wave.SpawnInterval)
	emit(s.eventDispatcher, s.ecs, event.WaveStarted, event.WaveData{Wave: wave.Number, TargetCount: wave.TargetCount})
}

func (s *WaveSystem) endWave() {
	wave := s.ecs.Wave
	cleared := wave.Number

	wave.Phase = component.WaveResting
	wave.Number++
	wave.TargetCount = max(wave.TargetCount, defs.EnemiesForWave(wave.Number))
	wave.Spawned = 0
	wave.SpawnTimer = 0
	wave.WaveTimer = 0
	s.ledger.SetWave(wave.Number)

	s.logger.Printf("Wave %d cleared", cleared)
	emit(s.eventDispatcher, s.ecs, event.WaveCleared, event.WaveData{Wave: cleared, TargetCount: wave.TargetCount})
}

func (s *WaveSystem) spawnEnemy() {
	wave := s.ecs.Wave
	archetype := s.rng.ChooseWeighted(defs.SpawnWeights(wave.Number))
	def, ok := s.library.Enemy(archetype)
	if !ok {
		s.logger.Printf("Error: Enemy definition not found for archetype: %s", archetype)
		wave.Spawned++
		return
	}
	stats := defs.ScaleEnemy(def, wave.Number)

	id := s.ecs.NewEntity()
	start := s.path.Start()
	s.ecs.Positions[id] = &component.Position{Vec3: start}
	s.ecs.Velocities[id] = &component.Velocity{Speed: stats.Speed}
	s.ecs.Paths[id] = &component.Path{Waypoints: s.path.Waypoints(), CurrentIndex: 1}
	s.ecs.Healths[id] = &component.Health{Value: stats.Health, Max: stats.Health}
	s.ecs.Enemies[id] = &component.Enemy{
		Archetype: archetype,
		Wave:      wave.Number,
		Reward:    stats.Reward,
		Score:     stats.Score,
		Alive:     true,
	}
	wave.Spawned++

	emit(s.eventDispatcher, s.ecs, event.EnemySpawned, event.EnemyData{
		EnemyID:   id,
		Archetype: archetype,
		Position:  start,
		Reward:    stats.Reward,
		Score:     stats.Score,
	})
}
