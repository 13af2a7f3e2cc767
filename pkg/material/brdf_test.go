package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrely/gorustracer/pkg/color"
	"github.com/andrely/gorustracer/pkg/geometry"
	"github.com/andrely/gorustracer/pkg/random"
)

func TestDiffuseBRDFEvalIsConstant(t *testing.T) {
	brdf := DiffuseBRDF{Pig: color.Uniform{Color: color.New(1, 2, 3)}}
	uv := geometry.NewVec2(0.3, 0.7)
	n := geometry.NewNormal(0, 0, 1)
	got := brdf.Eval(n, geometry.NewVec3(1, 0, 0), geometry.NewVec3(-1, 0, 0), uv)
	want := color.New(1, 2, 3).Scale(1 / 3.14159265)
	assert.True(t, got.IsClose(want))
}

func TestDiffuseBRDFScatterStaysInHemisphere(t *testing.T) {
	brdf := DiffuseBRDF{Pig: color.Uniform{Color: color.White}}
	pcg := random.NewDefaultPcg()
	n, err := geometry.NewNormal(0, 0, 1).Normalize()
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		ray := brdf.Scatter(pcg, geometry.NewVec3(0, 0, -1), geometry.NewPoint(0, 0, 0), n, 3)
		assert.Greater(t, ray.Dir.Dot(n.ToVec3()), float32(0))
		assert.Equal(t, uint32(3), ray.Depth)
		assert.InDelta(t, float32(1e-3), ray.TMin, 1e-9)
	}
}

func TestSpecularBRDFEvalMirrorDirection(t *testing.T) {
	brdf := SpecularBRDF{Pig: color.Uniform{Color: color.New(0.5, 0.5, 0.5)}}
	n := geometry.NewNormal(0, 0, 1)
	uv := geometry.NewVec2(0, 0)

	in := geometry.NewVec3(1, 0, -1)
	out := geometry.NewVec3(1, 0, 1)
	assert.True(t, brdf.Eval(n, in, out, uv).IsClose(color.New(0.5, 0.5, 0.5)))

	offAxis := geometry.NewVec3(0, 1, 1)
	assert.True(t, brdf.Eval(n, in, offAxis, uv).IsClose(color.Black))
}

func TestSpecularBRDFScatterReflects(t *testing.T) {
	brdf := SpecularBRDF{Pig: color.Uniform{Color: color.White}}
	n := geometry.NewNormal(0, 0, 1)

	ray := brdf.Scatter(nil, geometry.NewVec3(1, 0, -1), geometry.NewPoint(0, 0, 0), n, 1)
	want, err := geometry.NewVec3(1, 0, 1).Normalize()
	require.NoError(t, err)
	assert.True(t, ray.Dir.IsClose(want))
	assert.InDelta(t, float32(1e-5), ray.TMin, 1e-9)
}
