package geometry

import "github.com/chewxy/math32"

// matrix4 is a 4x4 row-major matrix of float32.
type matrix4 [4][4]float32

var identityMatrix4 = matrix4{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

func (m matrix4) mul(other matrix4) matrix4 {
	var out matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[i][k] * other[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

func (m matrix4) isClose(other matrix4) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !isClose(m[i][j], other[i][j]) {
				return false
			}
		}
	}
	return true
}

// Transform is an invertible affine 4x4 transform, keeping its inverse
// alongside so composition and application never invoke numerical inversion.
type Transform struct {
	m    matrix4
	invm matrix4
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{m: identityMatrix4, invm: identityMatrix4}
}

// IsConsistent reports whether M*M^-1 is (numerically) the identity.
func (t Transform) IsConsistent() bool {
	return t.m.mul(t.invm).isClose(identityMatrix4)
}

// IsClose compares both the forward and inverse matrices.
func (t Transform) IsClose(other Transform) bool {
	return t.m.isClose(other.m) && t.invm.isClose(other.invm)
}

// Inverse returns T^-1 by swapping the cached matrices; O(1).
func (t Transform) Inverse() Transform {
	return Transform{m: t.invm, invm: t.m}
}

// Compose returns t∘other: applying the result to a vector is equivalent to
// applying other first, then t.
func (t Transform) Compose(other Transform) Transform {
	return Transform{
		m:    t.m.mul(other.m),
		invm: other.invm.mul(t.invm),
	}
}

// ApplyVec3 applies the linear 3x3 part of M to v.
func (t Transform) ApplyVec3(v Vec3) Vec3 {
	m := t.m
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// ApplyNormal applies the linear part of M^-1, transposed, to n.
func (t Transform) ApplyNormal(n Normal) Normal {
	m := t.invm
	return Normal{
		X: m[0][0]*n.X + m[1][0]*n.Y + m[2][0]*n.Z,
		Y: m[0][1]*n.X + m[1][1]*n.Y + m[2][1]*n.Z,
		Z: m[0][2]*n.X + m[1][2]*n.Y + m[2][2]*n.Z,
	}
}

// ApplyPoint applies the full affine transform to p, performing the
// perspective divide when w != 1.
func (t Transform) ApplyPoint(p Point) Point {
	m := t.m
	x := m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3]
	y := m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3]
	z := m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3]
	w := m[3][0]*p.X + m[3][1]*p.Y + m[3][2]*p.Z + m[3][3]
	if w == 1 {
		return Point{x, y, z}
	}
	return Point{x / w, y / w, z / w}
}

// ApplyRay transforms a ray's origin and direction, leaving tmin/tmax/depth
// untouched.
func (t Transform) ApplyRay(r Ray) Ray {
	return Ray{
		Origin: t.ApplyPoint(r.Origin),
		Dir:    t.ApplyVec3(r.Dir),
		TMin:   r.TMin,
		TMax:   r.TMax,
		Depth:  r.Depth,
	}
}

// Translation builds a translation transform.
func Translation(v Vec3) Transform {
	return Transform{
		m: matrix4{
			{1, 0, 0, v.X},
			{0, 1, 0, v.Y},
			{0, 0, 1, v.Z},
			{0, 0, 0, 1},
		},
		invm: matrix4{
			{1, 0, 0, -v.X},
			{0, 1, 0, -v.Y},
			{0, 0, 1, -v.Z},
			{0, 0, 0, 1},
		},
	}
}

// Scaling builds a component-wise scaling transform; v.X, v.Y, v.Z must be
// nonzero.
func Scaling(v Vec3) Transform {
	return Transform{
		m: matrix4{
			{v.X, 0, 0, 0},
			{0, v.Y, 0, 0},
			{0, 0, v.Z, 0},
			{0, 0, 0, 1},
		},
		invm: matrix4{
			{1 / v.X, 0, 0, 0},
			{0, 1 / v.Y, 0, 0},
			{0, 0, 1 / v.Z, 0},
			{0, 0, 0, 1},
		},
	}
}

// RotationX builds a rotation of theta radians about the X axis.
func RotationX(theta float32) Transform {
	c, s := math32.Cos(theta), math32.Sin(theta)
	return Transform{
		m: matrix4{
			{1, 0, 0, 0},
			{0, c, -s, 0},
			{0, s, c, 0},
			{0, 0, 0, 1},
		},
		invm: matrix4{
			{1, 0, 0, 0},
			{0, c, s, 0},
			{0, -s, c, 0},
			{0, 0, 0, 1},
		},
	}
}

// RotationY builds a rotation of theta radians about the Y axis.
func RotationY(theta float32) Transform {
	c, s := math32.Cos(theta), math32.Sin(theta)
	return Transform{
		m: matrix4{
			{c, 0, s, 0},
			{0, 1, 0, 0},
			{-s, 0, c, 0},
			{0, 0, 0, 1},
		},
		invm: matrix4{
			{c, 0, -s, 0},
			{0, 1, 0, 0},
			{s, 0, c, 0},
			{0, 0, 0, 1},
		},
	}
}

// RotationZ builds a rotation of theta radians about the Z axis.
func RotationZ(theta float32) Transform {
	c, s := math32.Cos(theta), math32.Sin(theta)
	return Transform{
		m: matrix4{
			{c, -s, 0, 0},
			{s, c, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		},
		invm: matrix4{
			{c, s, 0, 0},
			{-s, c, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		},
	}
}
