package system

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/utils"
	"go-tower-sim/pkg/grid"
	"testing"
)

func newWaveSystem(w *world, seed int64) *WaveSystem {
	s := NewWaveSystem(w.ecs, grid.DefaultPath(), defs.DefaultLibrary(), w.ledger,
		utils.NewPRNGService(seed), w.dispatcher, w.logger)
	s.Reset()
	return s
}

func TestWaveRestsBeforeSpawning(t *testing.T) {
	w := newWorld()
	s := newWaveSystem(w, 1)

	s.Update(4.9)
	if w.ecs.Wave.Phase != component.WaveResting {
		t.Fatalf("expected resting at 4.9s, got %v", w.ecs.Wave.Phase)
	}
	if got := s.NextWaveIn(); got <= 0 || got > 0.11 {
		t.Errorf("expected about 0.1s to the next wave, got %v", got)
	}

	s.Update(0.2)
	if w.ecs.Wave.Phase != component.WaveSpawning {
		t.Fatalf("expected spawning at 5.1s, got %v", w.ecs.Wave.Phase)
	}
	if len(w.ecs.Enemies) != 0 {
		t.Error("no enemy should spawn on the tick the wave starts")
	}
	if n := w.countEvents(event.WaveStarted); n != 1 {
		t.Errorf("expected one WaveStarted, got %d", n)
	}
	if s.NextWaveIn() != 0 {
		t.Error("countdown should be zero while spawning")
	}
}

func TestWaveSpawnsAtIntervalAndClears(t *testing.T) {
	w := newWorld()
	s := newWaveSystem(w, 1)
	s.Update(5)

	s.Update(0.5)
	s.Update(0.5)
	if len(w.ecs.Enemies) != 0 {
		t.Fatalf("spawned before the 1.5s interval elapsed")
	}
	s.Update(0.5)
	if len(w.ecs.Enemies) != 1 {
		t.Fatalf("expected the first spawn after 1.5s, got %d enemies", len(w.ecs.Enemies))
	}

	start := grid.DefaultPath().Start()
	for spawned := 2; spawned <= 5; spawned++ {
		for i := 0; i < 3; i++ {
			s.Update(0.5)
		}
		if w.ecs.Wave.Spawned != spawned {
			t.Fatalf("expected %d spawned, got %d", spawned, w.ecs.Wave.Spawned)
		}
	}
	if len(w.ecs.Enemies) != 5 {
		t.Fatalf("expected 5 live enemies, got %d", len(w.ecs.Enemies))
	}
	for id, enemy := range w.ecs.Enemies {
		if enemy.Archetype != defs.EnemyBasic {
			t.Errorf("wave 1 should only spawn basic enemies, got %v", enemy.Archetype)
		}
		if hp := w.ecs.Healths[id]; hp.Value != 100 || hp.Max != 100 {
			t.Errorf("unexpected wave 1 health %+v", hp)
		}
		if w.ecs.Positions[id].Vec3 != start {
			t.Errorf("enemy should spawn at the path start, got %v", w.ecs.Positions[id].Vec3)
		}
	}

	s.Update(10)
	if w.ecs.Wave.Spawned != 5 || w.ecs.Wave.Phase != component.WaveSpawning {
		t.Fatal("wave must not end while enemies are alive")
	}

	for _, id := range entity.SortedIDs(w.ecs.Enemies) {
		w.ecs.RemoveEnemy(id)
	}
	w.events.Drain()
	s.Update(0.5)

	wave := w.ecs.Wave
	if wave.Phase != component.WaveResting || wave.Number != 2 {
		t.Fatalf("expected resting before wave 2, got %v wave %d", wave.Phase, wave.Number)
	}
	if wave.TargetCount != 9 {
		t.Errorf("expected 9 enemies in wave 2, got %d", wave.TargetCount)
	}
	if w.ledger.Wave() != 2 {
		t.Errorf("ledger should mirror wave 2, got %d", w.ledger.Wave())
	}
	if n := w.countEvents(event.WaveCleared); n != 1 {
		t.Errorf("expected one WaveCleared, got %d", n)
	}
}

func TestWaveTargetCountNeverDecreases(t *testing.T) {
	w := newWorld()
	s := newWaveSystem(w, 1)

	prev := w.ecs.Wave.TargetCount
	for i := 0; i < 12; i++ {
		w.ecs.Wave.Phase = component.WaveSpawning
		w.ecs.Wave.Spawned = w.ecs.Wave.TargetCount
		s.Update(0.5)
		if w.ecs.Wave.TargetCount < prev {
			t.Fatalf("target count fell from %d to %d at wave %d", prev, w.ecs.Wave.TargetCount, w.ecs.Wave.Number)
		}
		prev = w.ecs.Wave.TargetCount
	}
}

func TestWaveSpawnsAreDeterministicForASeed(t *testing.T) {
	run := func() []defs.EnemyArchetype {
		w := newWorld()
		s := newWaveSystem(w, 42)
		w.ecs.Wave.Number = 18
		w.ecs.Wave.TargetCount = 30
		s.Update(5)

		var seq []defs.EnemyArchetype
		for w.ecs.Wave.Spawned < w.ecs.Wave.TargetCount {
			before := w.ecs.NextID
			s.Update(0.25)
			if w.ecs.NextID != before {
				seq = append(seq, w.ecs.Enemies[before].Archetype)
			}
		}
		return seq
	}

	a, b := run(), run()
	if len(a) != 30 || len(b) != 30 {
		t.Fatalf("expected 30 spawns per run, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("spawn %d differs between runs: %v vs %v", i, a[i], b[i])
		}
	}
}
