// Package geometry provides the single-precision algebra primitives the
// renderer is built on: Vec3/Point/Normal/Vec2, Ray and Transform.
package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Epsilon is the absolute tolerance used by IsClose across the renderer.
const Epsilon float32 = 1e-4

// isClose reports whether two float32 values differ by less than Epsilon.
func isClose(a, b float32) bool {
	return math32.Abs(a-b) < Epsilon
}

// UnableToNormalizeError is returned when a zero-length Vec3 or Normal is
// normalized.
type UnableToNormalizeError struct {
	Norm float32
}

func (e *UnableToNormalizeError) Error() string {
	return fmt.Sprintf("geometry: unable to normalize vector with norm %v", e.Norm)
}

// Vec3 is a linear displacement: translations do not affect it.
type Vec3 struct {
	X, Y, Z float32
}

// NewVec3 builds a Vec3 from components.
func NewVec3(x, y, z float32) Vec3 { return Vec3{x, y, z} }

func (v Vec3) String() string { return fmt.Sprintf("Vec3(%g, %g, %g)", v.X, v.Y, v.Z) }

// IsClose reports whether v and other are equal within Epsilon.
func (v Vec3) IsClose(other Vec3) bool {
	return isClose(v.X, other.X) && isClose(v.Y, other.Y) && isClose(v.Z, other.Z)
}

// Add returns v+other.
func (v Vec3) Add(other Vec3) Vec3 { return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z} }

// Sub returns v-other.
func (v Vec3) Sub(other Vec3) Vec3 { return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z} }

// Mul returns v scaled by a scalar.
func (v Vec3) Mul(scalar float32) Vec3 { return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar} }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of v and other.
func (v Vec3) Dot(other Vec3) float32 { return v.X*other.X + v.Y*other.Y + v.Z*other.Z }

// Cross returns the cross product of v and other.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// SquaredNorm returns |v|^2.
func (v Vec3) SquaredNorm() float32 { return v.Dot(v) }

// Norm returns |v|.
func (v Vec3) Norm() float32 { return math32.Sqrt(v.SquaredNorm()) }

// Normalize returns v scaled to unit length, or UnableToNormalizeError if v
// is the zero vector.
func (v Vec3) Normalize() (Vec3, error) {
	n := v.Norm()
	if n <= 0 {
		return Vec3{}, &UnableToNormalizeError{Norm: n}
	}
	return v.Mul(1 / n), nil
}

// Point is an affine position: translations apply to it.
type Point struct {
	X, Y, Z float32
}

// NewPoint builds a Point from components.
func NewPoint(x, y, z float32) Point { return Point{x, y, z} }

func (p Point) String() string { return fmt.Sprintf("Point(%g, %g, %g)", p.X, p.Y, p.Z) }

// IsClose reports whether p and other are equal within Epsilon.
func (p Point) IsClose(other Point) bool {
	return isClose(p.X, other.X) && isClose(p.Y, other.Y) && isClose(p.Z, other.Z)
}

// Add returns p translated by v.
func (p Point) Add(v Vec3) Point { return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z} }

// SubPoint returns the displacement from other to p.
func (p Point) SubPoint(other Point) Vec3 {
	return Vec3{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// SubVec subtracts a displacement from p.
func (p Point) SubVec(v Vec3) Point { return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z} }

// ToVec3 reinterprets p's components as a Vec3 (used by the sphere solver,
// which needs the origin as a linear quantity).
func (p Point) ToVec3() Vec3 { return Vec3{p.X, p.Y, p.Z} }

// Normal transforms by the inverse-transpose of a Transform's linear part
// and is only guaranteed unit length after Normalize.
type Normal struct {
	X, Y, Z float32
}

// NewNormal builds a Normal from components.
func NewNormal(x, y, z float32) Normal { return Normal{x, y, z} }

func (n Normal) String() string { return fmt.Sprintf("Normal(%g, %g, %g)", n.X, n.Y, n.Z) }

// IsClose reports whether n and other are equal within Epsilon.
func (n Normal) IsClose(other Normal) bool {
	return isClose(n.X, other.X) && isClose(n.Y, other.Y) && isClose(n.Z, other.Z)
}

// Neg returns -n.
func (n Normal) Neg() Normal { return Normal{-n.X, -n.Y, -n.Z} }

// Mul returns n scaled by a scalar.
func (n Normal) Mul(scalar float32) Normal { return Normal{n.X * scalar, n.Y * scalar, n.Z * scalar} }

// Dot returns the dot product of n and other.
func (n Normal) Dot(other Normal) float32 { return n.X*other.X + n.Y*other.Y + n.Z*other.Z }

// SquaredNorm returns |n|^2.
func (n Normal) SquaredNorm() float32 { return n.Dot(n) }

// Norm returns |n|.
func (n Normal) Norm() float32 { return math32.Sqrt(n.SquaredNorm()) }

// Normalize returns n scaled to unit length, or UnableToNormalizeError if n
// is the zero normal.
func (n Normal) Normalize() (Normal, error) {
	l := n.Norm()
	if l <= 0 {
		return Normal{}, &UnableToNormalizeError{Norm: l}
	}
	return n.Mul(1 / l), nil
}

// ToVec3 reinterprets n's components as a Vec3, used where a direction
// computed from a normal must participate in linear-vector algebra (ONB
// construction, mirror reflection).
func (n Normal) ToVec3() Vec3 { return Vec3{n.X, n.Y, n.Z} }

// Vec2 holds a parametric surface coordinate (u, v).
type Vec2 struct {
	U, V float32
}

// NewVec2 builds a Vec2 from components.
func NewVec2(u, v float32) Vec2 { return Vec2{u, v} }

// IsClose reports whether uv and other are equal within Epsilon.
func (uv Vec2) IsClose(other Vec2) bool {
	return isClose(uv.U, other.U) && isClose(uv.V, other.V)
}

// ONB is a right-handed orthonormal basis built from a surface normal.
type ONB struct {
	E1, E2, E3 Vec3
}

// CreateONBFromNormal builds an orthonormal basis whose E3 axis is the
// (already normalized) surface normal, following the branchless
// construction of Duff et al., "Building an Orthonormal Basis, Revisited".
func CreateONBFromNormal(n Normal) ONB {
	s := float32(1)
	if n.Z < 0 {
		s = -1
	}
	a := -1 / (s + n.Z)
	b := n.X * n.Y * a
	return ONB{
		E1: Vec3{X: 1 + s*n.X*n.X*a, Y: s * b, Z: -s * n.X},
		E2: Vec3{X: b, Y: s + n.Y*n.Y*a, Z: -n.Y},
		E3: n.ToVec3(),
	}
}
