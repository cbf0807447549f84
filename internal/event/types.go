// internal/event/types.go
package event

const (
	WaveStarted       EventType = "WaveStarted"
	WaveCleared       EventType = "WaveCleared" // all enemies spawned and gone
	EnemySpawned      EventType = "EnemySpawned"
	EnemyKilled       EventType = "EnemyKilled"
	EnemyEscaped      EventType = "EnemyEscaped" // reached the end of the path
	TowerFired        EventType = "TowerFired"
	ProjectileSpawned EventType = "ProjectileSpawned"
	ProjectileArrived EventType = "ProjectileArrived" // impact cue
	ProjectileExpired EventType = "ProjectileExpired"
	TowerPlaced       EventType = "TowerPlaced"
	TowerUpgraded     EventType = "TowerUpgraded"
	TowerSold         EventType = "TowerSold"
	PurchaseRejected  EventType = "PurchaseRejected"
	SessionStarted    EventType = "SessionStarted"
	SessionEnded      EventType = "SessionEnded"
)
