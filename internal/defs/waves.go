package defs

import (
	"go-tower-sim/internal/config"
	"math"
)

// RandomSource is the slice of the PRNG the wave formulas need.
type RandomSource interface {
	Float64() float64
}

// EnemiesForWave is the target enemy count of a wave. It never decreases.
func EnemiesForWave(wave int) int {
	if wave <= 1 {
		return config.BaseWaveEnemies
	}
	return config.BaseWaveEnemies + config.EnemiesIncrementPerWave*wave
}

// SpawnInterval is the delay between two spawns of the given wave: flat
// early, shrinking linearly to a floor, then drawn from a band.
func SpawnInterval(wave int, rng RandomSource) float64 {
	switch {
	case wave <= config.FlatSpawnWaves:
		return config.InitialSpawnInterval
	case wave <= config.RandomSpawnWave:
		interval := config.InitialSpawnInterval - config.SpawnIntervalDecrement*float64(wave-config.FlatSpawnWaves)
		return math.Max(interval, config.MinSpawnInterval)
	}
	band := config.LateSpawnIntervalMax - config.LateSpawnIntervalMin
	return config.LateSpawnIntervalMin + band*rng.Float64()
}

// WaveMultiplier scales enemy stats: linear up to the tier wave, then
// compounding per wave.
func WaveMultiplier(wave int) float64 {
	if wave < 1 {
		wave = 1
	}
	if wave <= config.WaveScalingTier {
		return 1 + config.WaveScalingStep*float64(wave-1)
	}
	atTier := 1 + config.WaveScalingStep*float64(config.WaveScalingTier-1)
	return atTier * math.Pow(config.WaveScalingGrowth, float64(wave-config.WaveScalingTier))
}

// EnemyStats are the rolled stats of one spawned enemy.
type EnemyStats struct {
	Health int
	Speed  float64
	Reward int
	Score  int
}

// ScaleEnemy applies the wave multiplier to an archetype's base stats.
// Speed only takes a share of the multiplier and is capped.
func ScaleEnemy(def EnemyDefinition, wave int) EnemyStats {
	m := WaveMultiplier(wave)
	speedScale := math.Min(1+(m-1)*config.SpeedScalingShare, config.MaxSpeedScale)
	return EnemyStats{
		Health: int(math.Round(float64(def.Health) * m)),
		Speed:  def.Speed * speedScale,
		Reward: int(math.Round(float64(def.Reward) * m)),
		Score:  def.Score,
	}
}
