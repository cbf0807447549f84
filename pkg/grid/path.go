// pkg/grid/path.go
package grid

import (
	"errors"
	"fmt"
	"go-tower-sim/pkg/utils"
)

var (
	ErrTooFewWaypoints = errors.New("path needs at least two waypoints")
	ErrDiagonalSegment = errors.New("path segment is not axis-aligned")
	ErrBuildableOnPath = errors.New("buildable cell lies on the path")
)

// Path is the immutable route enemies walk plus the cells towers may occupy.
// Both lookups are built once by NewPath.
type Path struct {
	waypoints []Vec3
	pathCells []Cell // walk order, de-duplicated
	onPath    map[Cell]struct{}
	buildable map[Cell]struct{}
}

// NewPath rasterizes the waypoint polyline into unit cells and records the
// authored buildable cells. Consecutive waypoints must share X or Z once
// rounded to the grid.
func NewPath(waypoints []Vec3, buildable []Cell) (*Path, error) {
	if len(waypoints) < 2 {
		return nil, ErrTooFewWaypoints
	}

	p := &Path{
		waypoints: append([]Vec3(nil), waypoints...),
		onPath:    make(map[Cell]struct{}),
		buildable: make(map[Cell]struct{}, len(buildable)),
	}

	for i := 0; i < len(waypoints)-1; i++ {
		start, end := waypoints[i].Cell(), waypoints[i+1].Cell()
		if err := p.rasterize(start, end); err != nil {
			return nil, fmt.Errorf("segment %d %s->%s: %w", i, start, end, err)
		}
	}

	for _, c := range buildable {
		if _, ok := p.onPath[c]; ok {
			return nil, fmt.Errorf("cell %s: %w", c, ErrBuildableOnPath)
		}
		p.buildable[c] = struct{}{}
	}
	return p, nil
}

// MustPath is NewPath for compiled-in maps; a bad map is a programming error.
func MustPath(waypoints []Vec3, buildable []Cell) *Path {
	p, err := NewPath(waypoints, buildable)
	if err != nil {
		panic(err)
	}
	return p
}

// rasterize fills the inclusive cells between two axis-aligned endpoints.
func (p *Path) rasterize(start, end Cell) error {
	var step Cell
	var n int
	switch {
	case start.X == end.X:
		n = utils.Abs(end.Z - start.Z)
		step = Cell{Z: utils.Sign(end.Z - start.Z)}
	case start.Z == end.Z:
		n = utils.Abs(end.X - start.X)
		step = Cell{X: utils.Sign(end.X - start.X)}
	default:
		return ErrDiagonalSegment
	}

	c := start
	for i := 0; i <= n; i++ {
		p.addPathCell(c)
		c = Cell{X: c.X + step.X, Z: c.Z + step.Z}
	}
	return nil
}

func (p *Path) addPathCell(c Cell) {
	if _, ok := p.onPath[c]; ok {
		return
	}
	p.onPath[c] = struct{}{}
	p.pathCells = append(p.pathCells, c)
}

// IsPath reports whether the cell is occupied by the route.
func (p *Path) IsPath(x, z int) bool {
	_, ok := p.onPath[Cell{X: x, Z: z}]
	return ok
}

// IsBuildable reports whether the cell was authored as a tower slot.
func (p *Path) IsBuildable(x, z int) bool {
	_, ok := p.buildable[Cell{X: x, Z: z}]
	return ok
}

// Waypoints returns a copy of the route.
func (p *Path) Waypoints() []Vec3 {
	return append([]Vec3(nil), p.waypoints...)
}

// Len is the number of waypoints.
func (p *Path) Len() int {
	return len(p.waypoints)
}

// Start is the spawn point.
func (p *Path) Start() Vec3 {
	return p.waypoints[0]
}

// PathCells returns the route cells in walk order.
func (p *Path) PathCells() []Cell {
	return append([]Cell(nil), p.pathCells...)
}

// BuildableCells returns the tower slots sorted by row.
func (p *Path) BuildableCells() []Cell {
	cells := make([]Cell, 0, len(p.buildable))
	for c := range p.buildable {
		cells = append(cells, c)
	}
	sortCells(cells)
	return cells
}

// Bounds returns the smallest and largest cell coordinates used by the map.
func (p *Path) Bounds() (lo, hi Cell) {
	first := true
	visit := func(c Cell) {
		if first {
			lo, hi = c, c
			first = false
			return
		}
		lo.X, lo.Z = min(lo.X, c.X), min(lo.Z, c.Z)
		hi.X, hi.Z = max(hi.X, c.X), max(hi.Z, c.Z)
	}
	for _, c := range p.pathCells {
		visit(c)
	}
	for c := range p.buildable {
		visit(c)
	}
	return lo, hi
}
