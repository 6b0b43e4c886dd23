package lattice

import (
	"fmt"
	"math"
)

// Vec is a position or displacement on the dance floor.
type Vec struct {
	X, Y float64
}

// V is a shorthand constructor for a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) String() string {
	return fmt.Sprintf("(%.3g,%.3g)", v.X, v.Y)
}

// Add returns v+w.
func (v Vec) Add(w Vec) Vec {
	return Vec{v.X + w.X, v.Y + w.Y}
}

// Sub returns v-w.
func (v Vec) Sub(w Vec) Vec {
	return Vec{v.X - w.X, v.Y - w.Y}
}

// Mul scales v by k.
func (v Vec) Mul(k float64) Vec {
	return Vec{v.X * k, v.Y * k}
}

// Dot returns the dot product of v and w.
func (v Vec) Dot(w Vec) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z-component of the cross product v×w. It is positive if w
// lies counter-clockwise of v.
func (v Vec) Cross(w Vec) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the Euclidean length of v.
func (v Vec) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between v and w.
func (v Vec) Distance(w Vec) float64 {
	return v.Sub(w).Length()
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec) Normalize() Vec {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// Rotate turns v counter-clockwise by t.
func (v Vec) Rotate(t Turns) Vec {
	s, c := math.Sincos(t.Radians())
	return Vec{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Lerp interpolates between v (at 0) and w (at 1).
func (v Vec) Lerp(w Vec, t float64) Vec {
	return v.Add(w.Sub(v).Mul(t))
}

// Midpoint returns the point halfway between v and w.
func (v Vec) Midpoint(w Vec) Vec {
	return v.Lerp(w, 0.5)
}

// Near reports whether v and w are within tol of each other.
func (v Vec) Near(w Vec, tol float64) bool {
	return v.Distance(w) <= tol
}

// --- Turns -----------------------------------------------------------------

// Turns is an unwrapped counter-clockwise angle; 1.0 is a full rotation and 0
// points along +x.
type Turns float64

// Radians converts t to radians.
func (t Turns) Radians() float64 {
	return 2 * math.Pi * float64(t)
}

// Unit returns the unit vector pointing in direction t.
func (t Turns) Unit() Vec {
	return Vec{1, 0}.Rotate(t)
}

// Towards returns the heading pointing from one position to another, in the
// range (-1/2, 1/2].
func Towards(from, to Vec) Turns {
	d := to.Sub(from)
	return Turns(math.Atan2(d.Y, d.X) / (2 * math.Pi))
}

// Align returns the heading equivalent to dir (modulo full turns) which is
// nearest to near. Ties are broken towards the larger value.
func Align(dir, near Turns) Turns {
	return dir + Turns(roundHalfUp(float64(near-dir)))
}

// IsFacing reports whether a dancer at pos, oriented by facing, looks at dst
// within maxTurns either side.
func IsFacing(pos Vec, facing Turns, dst Vec, maxTurns Turns) bool {
	dir := dst.Sub(pos).Normalize()
	return facing.Unit().Dot(dir) > math.Cos(maxTurns.Radians())
}

// SameSide reports whether two positions lie on the same side of the set.
func SameSide(p, q Vec) bool {
	return p.X*q.X > 0
}

func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
