// component/movement.go
package component

import "go-tower-sim/pkg/grid"

// Position is the world position of an entity
type Position struct {
	grid.Vec3
}

// Velocity is the movement speed in world units per second
type Velocity struct {
	Speed float64
}

// Path is the waypoints an enemy walks and the one it is heading to
type Path struct {
	Waypoints    []grid.Vec3
	CurrentIndex int
}

// Finished reports whether every waypoint has been reached.
func (p *Path) Finished() bool {
	return p.CurrentIndex >= len(p.Waypoints)
}
