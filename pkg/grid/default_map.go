package grid

// PathHeight is the Y of every authored waypoint.
const PathHeight = 0.1

// DefaultWaypoints is the single authored route: enters on the left edge,
// snakes through the build area and leaves on the right.
func DefaultWaypoints() []Vec3 {
	pts := [][2]float64{
		{-9, 0}, {-7, 0}, {-5, 0}, {-4, 0},
		{-4, 1}, {-4, 3}, {-4, 5},
		{-3, 5}, {-1, 5}, {1, 5},
		{1, 4}, {1, 2}, {1, 0},
		{2, 0}, {4, 0},
		{4, 1}, {4, 3},
		{5, 3}, {7, 3}, {9, 3},
	}
	wps := make([]Vec3, len(pts))
	for i, pt := range pts {
		wps[i] = Vec3{X: pt[0], Y: PathHeight, Z: pt[1]}
	}
	return wps
}

// DefaultBuildable enumerates the square build area minus the cells the
// default route passes through.
func DefaultBuildable(route *Path) []Cell {
	const half = 4
	var cells []Cell
	for z := -half; z <= half; z++ {
		for x := -half; x <= half; x++ {
			if route.IsPath(x, z) {
				continue
			}
			cells = append(cells, Cell{X: x, Z: z})
		}
	}
	return cells
}

// DefaultPath builds the authored map.
func DefaultPath() *Path {
	wps := DefaultWaypoints()
	route := MustPath(wps, nil)
	return MustPath(wps, DefaultBuildable(route))
}
