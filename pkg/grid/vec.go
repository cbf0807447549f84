// pkg/grid/vec.go
package grid

import "math"

// Vec3 is a world-space point. The map lies on the XZ plane, Y is height.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the Euclidean distance between two points.
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Len()
}

// Normalize returns the unit vector of v, or the zero vector if v has no length.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// MoveTowards steps from v to target by at most maxStep and reports whether target was reached.
func (v Vec3) MoveTowards(target Vec3, maxStep float64) (Vec3, bool) {
	delta := target.Sub(v)
	dist := delta.Len()
	if dist <= maxStep {
		return target, true
	}
	return v.Add(delta.Scale(maxStep / dist)), false
}

// Cell returns the grid cell containing the point, rounding half up like the map authoring tools.
func (v Vec3) Cell() Cell {
	return Cell{X: roundHalfUp(v.X), Z: roundHalfUp(v.Z)}
}

func roundHalfUp(f float64) int {
	return int(math.Floor(f + 0.5))
}
