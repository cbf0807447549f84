package defs

import (
	"math"
	"testing"
)

type fixedRandom float64

func (f fixedRandom) Float64() float64 { return float64(f) }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEnemiesForWaveNeverDecreases(t *testing.T) {
	if got := EnemiesForWave(1); got != 5 {
		t.Errorf("wave 1: expected 5 enemies, got %d", got)
	}
	if got := EnemiesForWave(2); got != 9 {
		t.Errorf("wave 2: expected 9 enemies, got %d", got)
	}
	prev := EnemiesForWave(1)
	for wave := 2; wave <= 100; wave++ {
		cur := EnemiesForWave(wave)
		if cur < prev {
			t.Fatalf("wave %d has %d enemies, fewer than wave %d (%d)", wave, cur, wave-1, prev)
		}
		prev = cur
	}
}

func TestSpawnIntervalBands(t *testing.T) {
	tests := []struct {
		wave int
		rng  float64
		want float64
	}{
		{1, 0, 1.5},
		{5, 0, 1.5},
		{6, 0, 1.4},
		{10, 0, 1.0},
		{15, 0, 0.5},
		{16, 0, 0.4},
		{16, 0.5, 0.55},
		{40, 0.999, 0.4 + 0.3*0.999},
	}
	for _, tt := range tests {
		got := SpawnInterval(tt.wave, fixedRandom(tt.rng))
		if !almostEqual(got, tt.want) {
			t.Errorf("wave %d rng %.3f: expected %.3f, got %.3f", tt.wave, tt.rng, tt.want, got)
		}
	}
}

func TestSpawnIntervalDoesNotDrawEarly(t *testing.T) {
	// A nil source would panic if the flat or linear band touched it.
	for wave := 1; wave <= 15; wave++ {
		SpawnInterval(wave, nil)
	}
}

func TestWaveMultiplierTiers(t *testing.T) {
	if got := WaveMultiplier(1); got != 1 {
		t.Errorf("wave 1: expected 1, got %f", got)
	}
	if got := WaveMultiplier(10); !almostEqual(got, 1.9) {
		t.Errorf("wave 10: expected 1.9, got %f", got)
	}
	if got := WaveMultiplier(11); !almostEqual(got, 1.9*1.25) {
		t.Errorf("wave 11: expected %f, got %f", 1.9*1.25, got)
	}
	if got := WaveMultiplier(12); !almostEqual(got, 1.9*1.25*1.25) {
		t.Errorf("wave 12: expected compounding growth, got %f", got)
	}
	if got := WaveMultiplier(0); got != 1 {
		t.Errorf("wave 0 clamps to wave 1, got %f", got)
	}
}

func TestScaleEnemy(t *testing.T) {
	basic := DefaultEnemyDefs()[EnemyBasic]

	s := ScaleEnemy(basic, 1)
	if s.Health != 100 || s.Speed != 1.0 || s.Reward != 10 || s.Score != 5 {
		t.Errorf("wave 1 should keep base stats, got %+v", s)
	}

	s = ScaleEnemy(basic, 6)
	if s.Health != 150 || s.Reward != 15 {
		t.Errorf("wave 6: expected 150 hp and 15 reward, got %+v", s)
	}
	if !almostEqual(s.Speed, 1.1) {
		t.Errorf("wave 6: expected speed 1.1, got %f", s.Speed)
	}

	late := ScaleEnemy(basic, 40)
	if late.Speed != basic.Speed*2 {
		t.Errorf("speed must cap at 2x base, got %f", late.Speed)
	}
	if late.Score != basic.Score {
		t.Errorf("score is not wave scaled, got %d", late.Score)
	}
}

func TestSpawnWeightsUnlock(t *testing.T) {
	tests := []struct {
		wave  int
		kinds []EnemyArchetype
	}{
		{1, []EnemyArchetype{EnemyBasic}},
		{2, []EnemyArchetype{EnemyBasic}},
		{3, []EnemyArchetype{EnemyBasic, EnemyFast}},
		{6, []EnemyArchetype{EnemyBasic, EnemyFast, EnemyHeavy}},
	}
	for _, tt := range tests {
		got := SpawnWeights(tt.wave)
		if len(got) != len(tt.kinds) {
			t.Errorf("wave %d: expected %d entries, got %v", tt.wave, len(tt.kinds), got)
			continue
		}
		for i, k := range tt.kinds {
			if got[i].Archetype != k || got[i].Weight <= 0 {
				t.Errorf("wave %d entry %d: expected positive weight for %s, got %+v", tt.wave, i, k, got[i])
			}
		}
	}
}

func TestSpawnWeightsShiftTowardsTougherEnemies(t *testing.T) {
	early := SpawnWeights(6)
	late := SpawnWeights(20)
	if late[0].Weight >= early[0].Weight {
		t.Errorf("basic weight should shrink: %d -> %d", early[0].Weight, late[0].Weight)
	}
	if late[0].Weight != basicMinWeight {
		t.Errorf("basic weight should floor at %d, got %d", basicMinWeight, late[0].Weight)
	}
	if late[1].Weight <= early[1].Weight || late[2].Weight <= early[2].Weight {
		t.Errorf("fast and heavy weights should rise: %v -> %v", early, late)
	}
}
