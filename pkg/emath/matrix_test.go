package emath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNormal(t *testing.T) {
	assert.True(t, IsNormal(1.0))
	assert.True(t, IsNormal(-2.5))
	assert.True(t, IsNormal(smallestNormal))

	assert.False(t, IsNormal(0))
	assert.False(t, IsNormal(math.Copysign(0, -1)))
	assert.False(t, IsNormal(math.NaN()))
	assert.False(t, IsNormal(math.Inf(1)))
	assert.False(t, IsNormal(math.Inf(-1)))
	assert.False(t, IsNormal(smallestNormal/2))
	assert.False(t, IsNormal(math.SmallestNonzeroFloat64))
}

func TestMat3Inverse(t *testing.T) {
	m := Mat3{
		2, 0, 1,
		1, 3, 0,
		0, 1, 4,
	}
	inv, err := m.Inverse()
	require.NoError(t, err)

	id := m.Mult(inv)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, id[3*i+j], 1e-12)
		}
	}

	_, err = Mat3{1, 2, 3, 2, 4, 6, 0, 0, 1}.Inverse()
	assert.Error(t, err)
}

func TestPseudoInverse(t *testing.T) {
	m := Mat3{
		0.8598, -0.2848, -0.0857,
		-0.5618, 1.3606, 0.2195,
		-0.1002, 0.1773, 0.7137,
	}

	// Three channel camera: the fourth column of the result is zero, and the
	// first three columns are the plain inverse.
	pinv, err := PseudoInverse(m.Extend43())
	require.NoError(t, err)
	inv, err := m.Inverse()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, inv[3*i+j], pinv[i][j], 1e-9)
		}
		assert.Equal(t, 0.0, pinv[i][3])
	}

	// Four genuine channels: pinv * m is still the identity
	m4 := Mat4x3{
		{0.9, -0.3, -0.1},
		{-0.5, 1.3, 0.2},
		{-0.1, 0.2, 0.7},
		{0.3, 0.4, 0.3},
	}
	pinv, err = PseudoInverse(m4)
	require.NoError(t, err)
	v := Vec3{0.3, 0.5, 0.7}
	back := pinv.Apply(m4.Apply(v))
	for i := range v {
		assert.InDelta(t, v[i], back[i], 1e-9)
	}

	_, err = PseudoInverse(Mat4x3{})
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	m := Mat3x4{
		{1, 0, 0, 1},
		{0, 2, 0, 0},
		{0, 0, 3, 0},
	}
	assert.Equal(t, Vec3{2, 2, 3}, m.Apply(Vec4{1, 1, 1, 1}))

	n := Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	assert.Equal(t, Vec3{6, 15, 24}, n.Apply(Vec3{1, 1, 1}))
	assert.Equal(t, Vec4{6, 15, 24, 0}, n.Extend43().Apply(Vec3{1, 1, 1}))
	assert.Equal(t, Vec3{6, 15, 24}, n.Extend34().Apply(Vec4{1, 1, 1, 100}))
}

func TestString(t *testing.T) {
	assert.Equal(t, "[ 0.500000, -1.000000,  2.000000]", Vec3{0.5, -1, 2}.String())
	assert.Equal(t, "[ 1.000000,  0.000000,  0.000000,  0.250000]", Vec4{1, 0, 0, 0.25}.String())

	m := Mat3{1, 0, 0, 0, 1, 0, 0, 0, -1}
	assert.Equal(t,
		"[ 1.000000,  0.000000,  0.000000]\n"+
			"[ 0.000000,  1.000000,  0.000000]\n"+
			"[ 0.000000,  0.000000, -1.000000]\n",
		m.String())
}
