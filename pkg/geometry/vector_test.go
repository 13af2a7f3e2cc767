package geometry

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 1, 1)
	b := NewVec3(2, 2, 2)
	assert.Equal(t, NewVec3(3, 3, 3), a.Add(b))
	assert.Equal(t, NewVec3(-1, -1, -1), a.Sub(b))
	assert.Equal(t, NewVec3(2, 2, 2), a.Mul(2))
	assert.Equal(t, float32(5), NewVec3(1, 1, 1).Dot(NewVec3(2, 1, 2)))
	assert.Equal(t, NewVec3(1, 0, -1), NewVec3(1, 1, 1).Cross(NewVec3(2, 1, 2)))
}

func TestVec3Normalize(t *testing.T) {
	v, err := NewVec3(1, 2, 1).Normalize()
	require.NoError(t, err)
	assert.True(t, v.IsClose(NewVec3(0.40824829, 0.81649658, 0.40824829)))

	_, err = NewVec3(0, 0, 0).Normalize()
	require.Error(t, err)
	var nerr *UnableToNormalizeError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, float32(0), nerr.Norm)
}

func TestPointArithmetic(t *testing.T) {
	p := NewPoint(1, 1, 1)
	v := NewVec3(2, 2, 2)
	assert.Equal(t, NewPoint(3, 3, 3), p.Add(v))
	assert.Equal(t, NewVec3(-1, 0, 1), NewPoint(1, 2, 3).SubPoint(NewPoint(2, 2, 2)))
}

func TestNormalArithmetic(t *testing.T) {
	n := NewNormal(1, -2, 3)
	assert.Equal(t, float32(14), n.SquaredNorm())
	assert.Equal(t, NewNormal(-1, 2, -3), n.Neg())
}

func TestNormalNormalize(t *testing.T) {
	n, err := NewNormal(4, 12, 6).Normalize()
	require.NoError(t, err)
	assert.True(t, n.IsClose(NewNormal(2./7., 6./7., 3./7.)))

	_, err = NewNormal(0, 0, 0).Normalize()
	require.Error(t, err)
}

func TestONBIsRightHandedAndOrthonormal(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const n = 2000
	for i := 0; i < n; i++ {
		normal, _ := NewNormal(
			float32(rng.Float64())*2-1,
			float32(rng.Float64())*2-1,
			float32(rng.Float64())*2-1,
		).Normalize()
		onb := CreateONBFromNormal(normal)

		assert.InDelta(t, 1.0, float64(onb.E1.Norm()), 1e-3)
		assert.InDelta(t, 1.0, float64(onb.E2.Norm()), 1e-3)
		assert.InDelta(t, 1.0, float64(onb.E3.Norm()), 1e-3)
		assert.InDelta(t, 0.0, float64(onb.E1.Dot(onb.E2)), 1e-3)
		assert.InDelta(t, 0.0, float64(onb.E1.Dot(onb.E3)), 1e-3)
		assert.InDelta(t, 0.0, float64(onb.E2.Dot(onb.E3)), 1e-3)

		cross := onb.E1.Cross(onb.E2)
		assert.True(t, cross.IsClose(onb.E3))
	}
}
