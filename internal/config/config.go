// internal/config/config.go
package config

import "image/color"

// Simulation tuning.
const (
	StartingMoney = 200
	MaxEscapes    = 10

	WaveDelay               = 5.0 // seconds of rest before each wave
	BaseWaveEnemies         = 5
	EnemiesIncrementPerWave = 2

	InitialSpawnInterval   = 1.5
	MinSpawnInterval       = 0.5
	SpawnIntervalDecrement = 0.1
	FlatSpawnWaves         = 5  // waves that keep the initial interval
	RandomSpawnWave        = 15 // waves past this draw the interval from a band
	LateSpawnIntervalMin   = 0.4
	LateSpawnIntervalMax   = 0.7

	WaveScalingStep   = 0.1  // linear multiplier growth per early wave
	WaveScalingTier   = 10   // last wave of linear growth
	WaveScalingGrowth = 1.25 // compounding factor past the tier
	SpeedScalingShare = 0.2  // fraction of the multiplier applied to speed
	MaxSpeedScale     = 2.0

	TowerHeight = 0.5

	ProjectileSpeed          = 15.0
	ProjectileLifetime       = 0.8
	ProjectileArrivalEpsilon = 0.3

	RefundFraction = 0.5
)

// Presentation.
const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	CellSize     = 40.0
	MaxDeltaTime = 0.06
	FastForward  = 2.0

	HUDHeight      = 60
	InfoPanelWidth = 260

	EnemyRadius      = 10.0
	ProjectileRadius = 4.0
	TowerRadius      = 14.0
	StrokeWidth      = 2.0
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	GroundColor      = color.RGBA{45, 60, 45, 255}
	PathColor        = color.RGBA{150, 110, 70, 255}
	BuildableColor   = color.RGBA{70, 100, 120, 220}
	HoverValidColor  = color.RGBA{50, 255, 50, 128}
	HoverBlockColor  = color.RGBA{255, 50, 50, 128}
	SelectionColor   = color.RGBA{255, 255, 0, 255}
	RangeColor       = color.RGBA{255, 255, 255, 40}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextWarnColor    = color.RGBA{255, 120, 80, 255}
	PanelColor       = color.RGBA{10, 10, 20, 200}
	HealthBackColor  = color.RGBA{120, 0, 0, 255}
	HealthGoodColor  = color.RGBA{0, 255, 0, 255}
	HealthMidColor   = color.RGBA{255, 255, 0, 255}
	HealthLowColor   = color.RGBA{255, 128, 0, 255}
	ProjectileColor  = color.RGBA{255, 200, 0, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
)

// SpeedButtonColors is indexed by the fast-forward state.
var SpeedButtonColors = []color.RGBA{
	{70, 130, 180, 220}, // x1
	{220, 60, 60, 220},  // x2
}
