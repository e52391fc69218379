// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/eigenplay/matrix"
	"github.com/stretchr/testify/require"
)

func TestMat2_MulVec_Identity(t *testing.T) {
	v := matrix.Vec2{X: 3, Y: -4}
	require.Equal(t, v, matrix.Identity().MulVec(v))
}

func TestMat2_Mul(t *testing.T) {
	a := matrix.Mat2{{1, 2}, {3, 4}}
	b := matrix.Mat2{{2, 0}, {1, 2}}
	// A*B = [[1*2+2*1,1*0+2*2],[3*2+4*1,3*0+4*2]] = [[4,4],[10,8]]
	require.Equal(t, matrix.Mat2{{4, 4}, {10, 8}}, a.Mul(b))
	require.Equal(t, a, a.Mul(matrix.Identity()))
}

func TestMat2_TransposeDetTrace(t *testing.T) {
	a := matrix.Mat2{{1, 2}, {3, 4}}
	require.Equal(t, matrix.Mat2{{1, 3}, {2, 4}}, a.Transpose())
	require.Equal(t, -2.0, a.Det())
	require.Equal(t, 5.0, a.Trace())
	require.InDelta(t, math.Sqrt(30), a.FrobeniusNorm(), 1e-12)
}

func TestMat2_FromColumns(t *testing.T) {
	m := matrix.FromColumns(matrix.Vec2{X: 1, Y: 2}, matrix.Vec2{X: 3, Y: 4})
	require.Equal(t, matrix.Mat2{{1, 3}, {2, 4}}, m)

	c1, err := m.Column(1)
	require.NoError(t, err)
	require.Equal(t, matrix.Vec2{X: 3, Y: 4}, c1)
}

func TestMat2_Column_OutOfRange(t *testing.T) {
	m := matrix.Identity()
	_, err := m.Column(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Column(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestMat2_SetColumn(t *testing.T) {
	m := matrix.Identity()
	require.NoError(t, m.SetColumn(0, matrix.Vec2{X: 5, Y: 6}))
	require.Equal(t, matrix.Mat2{{5, 0}, {6, 1}}, m)

	err := m.SetColumn(1, matrix.Vec2{X: math.NaN(), Y: 0})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Equal(t, matrix.Mat2{{5, 0}, {6, 1}}, m, "rejected write must not touch m")

	require.ErrorIs(t, m.SetColumn(3, matrix.Vec2{}), matrix.ErrOutOfRange)
}

func TestMat2_Rotation(t *testing.T) {
	r := matrix.Rotation(math.Pi / 2)
	got := r.MulVec(matrix.Vec2{X: 1})
	require.InDelta(t, 0, got.X, 1e-15)
	require.InDelta(t, 1, got.Y, 1e-15)
	require.InDelta(t, 1, r.Det(), 1e-15)
	require.True(t, matrix.AllClose(matrix.Identity(), r.Mul(r.Transpose()), 1e-15))
}

func TestAllClose(t *testing.T) {
	a := matrix.Diag(1, 2)
	b := matrix.Diag(1+1e-12, 2)
	require.True(t, matrix.AllClose(a, b, matrix.DefaultEpsilon))
	require.False(t, matrix.AllClose(a, matrix.Diag(1.1, 2), matrix.DefaultEpsilon))

	nan := matrix.Mat2{{math.NaN(), 0}, {0, 2}}
	require.False(t, matrix.AllClose(nan, nan, 1), "NaN never compares close")
}

func TestVec2_Kernels(t *testing.T) {
	v := matrix.Vec2{X: 3, Y: 4}
	w := matrix.Vec2{X: 1, Y: -2}

	require.Equal(t, matrix.Vec2{X: 4, Y: 2}, v.Add(w))
	require.Equal(t, matrix.Vec2{X: 2, Y: 6}, v.Sub(w))
	require.Equal(t, matrix.Vec2{X: 6, Y: 8}, v.Scale(2))
	require.Equal(t, -5.0, v.Dot(w))
	require.Equal(t, -10.0, v.Cross(w))
	require.Equal(t, 5.0, v.Len())
	require.InDelta(t, math.Hypot(2, 6), v.Dist(w), 1e-12)
	require.Equal(t, matrix.Vec2{X: -4, Y: 3}, v.Perp())
	require.True(t, v.IsFinite())
	require.False(t, matrix.Vec2{X: math.Inf(1)}.IsFinite())
}

func TestStringers(t *testing.T) {
	require.Equal(t, "(1, -2)", matrix.Vec2{X: 1, Y: -2}.String())
	require.Equal(t, "[1, 0] [0, 1]", matrix.Identity().String())
}
