// component/tower.go
package component

import (
	"go-tower-sim/internal/defs"
	"go-tower-sim/pkg/grid"
)

type Tower struct {
	Archetype  defs.TowerArchetype
	Cell       grid.Cell // cell the tower stands on
	Level      int       // 0 is the unupgraded tower
	Investment int       // base cost plus every upgrade paid
}
