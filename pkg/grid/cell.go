// pkg/grid/cell.go
package grid

import (
	"fmt"
	"sort"
)

// Cell is a unit square on the map, addressed by integer X and Z.
type Cell struct {
	X, Z int
}

// Center returns the world position of the cell centre at the given height.
func (c Cell) Center(y float64) Vec3 {
	return Vec3{X: float64(c.X), Y: y, Z: float64(c.Z)}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Z)
}

// sortCells orders cells by Z then X, the order rows are drawn in.
func sortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Z != cells[j].Z {
			return cells[i].Z < cells[j].Z
		}
		return cells[i].X < cells[j].X
	})
}
