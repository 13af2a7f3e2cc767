// Package material bundles a surface's local scattering model (BRDF) with
// its emissive pigment.
package material

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/andrely/gorustracer/pkg/color"
	"github.com/andrely/gorustracer/pkg/geometry"
	"github.com/andrely/gorustracer/pkg/random"
)

// DefaultSpecularThresholdRad is the angular tolerance Specular uses to
// decide whether an eval direction lies on the mirror reflection.
const DefaultSpecularThresholdRad = math.Pi / 1800

// BRDF is a local scattering model.
type BRDF interface {
	// Pigment returns the surface color at uv, independent of direction.
	Pigment(uv geometry.Vec2) color.Color
	// Eval returns the reflected radiance factor for the given directions.
	Eval(normal geometry.Normal, inDir, outDir geometry.Vec3, uv geometry.Vec2) color.Color
	// Scatter draws an importance-sampled outgoing ray from a hit.
	Scatter(pcg *random.Pcg, inDir geometry.Vec3, hitPoint geometry.Point, normal geometry.Normal, nextDepth uint32) geometry.Ray
}

// DiffuseBRDF is an ideal Lambertian reflector.
type DiffuseBRDF struct {
	Pig color.Pigment
}

// Pigment implements BRDF.
func (b DiffuseBRDF) Pigment(uv geometry.Vec2) color.Color { return b.Pig.GetColor(uv) }

// Eval implements BRDF: pigment(uv) / pi, independent of direction.
func (b DiffuseBRDF) Eval(normal geometry.Normal, inDir, outDir geometry.Vec3, uv geometry.Vec2) color.Color {
	return b.Pig.GetColor(uv).Scale(1 / math32.Pi)
}

// Scatter implements BRDF: cosine-weighted hemisphere sampling around the
// surface normal using the Duff et al. ONB.
func (b DiffuseBRDF) Scatter(pcg *random.Pcg, inDir geometry.Vec3, hitPoint geometry.Point, normal geometry.Normal, nextDepth uint32) geometry.Ray {
	onb := geometry.CreateONBFromNormal(normal)

	u1 := pcg.NextFloat32()
	u2 := pcg.NextFloat32()

	cosTheta := math32.Sqrt(u1)
	sinTheta := math32.Sqrt(1 - u1)
	phi := 2 * math32.Pi * u2

	dir := onb.E1.Mul(math32.Cos(phi) * cosTheta).
		Add(onb.E2.Mul(math32.Sin(phi) * cosTheta)).
		Add(onb.E3.Mul(sinTheta))

	return geometry.Ray{
		Origin: hitPoint,
		Dir:    dir,
		TMin:   1e-3,
		TMax:   math32.Inf(1),
		Depth:  nextDepth,
	}
}

// SpecularBRDF is an ideal mirror.
type SpecularBRDF struct {
	Pig          color.Pigment
	ThresholdRad float32
}

// threshold returns ThresholdRad, defaulting to DefaultSpecularThresholdRad
// when unset.
func (b SpecularBRDF) threshold() float32 {
	if b.ThresholdRad == 0 {
		return DefaultSpecularThresholdRad
	}
	return b.ThresholdRad
}

// Pigment implements BRDF.
func (b SpecularBRDF) Pigment(uv geometry.Vec2) color.Color { return b.Pig.GetColor(uv) }

// Eval implements BRDF: pigment(uv) when inDir and outDir are within
// threshold of mirror-symmetric about normal, BLACK otherwise.
func (b SpecularBRDF) Eval(normal geometry.Normal, inDir, outDir geometry.Vec3, uv geometry.Vec2) color.Color {
	nIn, err := inDir.Normalize()
	if err != nil {
		return color.Black
	}
	nOut, err := outDir.Normalize()
	if err != nil {
		return color.Black
	}
	n := normal.ToVec3()

	reflected := nIn.Sub(n.Mul(2 * n.Dot(nIn)))
	angle := math32.Acos(math32.Min(reflected.Dot(nOut), 1))

	if angle < b.threshold() {
		return b.Pig.GetColor(uv)
	}
	return color.Black
}

// Scatter implements BRDF: perfect mirror reflection d' = d - 2(n.d)n.
func (b SpecularBRDF) Scatter(pcg *random.Pcg, inDir geometry.Vec3, hitPoint geometry.Point, normal geometry.Normal, nextDepth uint32) geometry.Ray {
	nDir, err := inDir.Normalize()
	if err != nil {
		nDir = inDir
	}
	n := normal.ToVec3()

	reflected := nDir.Sub(n.Mul(2 * n.Dot(nDir)))

	return geometry.Ray{
		Origin: hitPoint,
		Dir:    reflected,
		TMin:   1e-5,
		TMax:   math32.Inf(1),
		Depth:  nextDepth,
	}
}
