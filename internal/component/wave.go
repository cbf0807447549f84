package component

// WavePhase is the state of the wave director.
type WavePhase int

const (
	WaveResting WavePhase = iota
	WaveSpawning
)

func (p WavePhase) String() string {
	if p == WaveSpawning {
		return "spawning"
	}
	return "resting"
}

// Wave holds the pacing state of the current wave.
type Wave struct {
	Number        int
	TargetCount   int
	Spawned       int
	Phase         WavePhase
	WaveTimer     float64 // rest time accumulated before the wave starts
	SpawnTimer    float64 // time accumulated since the last spawn
	SpawnInterval float64
}

// InProgress reports whether the wave has started and not been cleared.
func (w *Wave) InProgress() bool {
	return w.Phase == WaveSpawning
}
